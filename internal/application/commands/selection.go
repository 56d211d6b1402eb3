package commands

import (
	"context"
	"fmt"

	"treecreator/internal/application"
	"treecreator/internal/domain"
)

// SelectionResult contains the result of a selection change
type SelectionResult struct {
	Count   int
	Primary string
	Message string
}

// SelectMode names the selection strategies
type SelectMode string

const (
	SelectModeSingle   SelectMode = "single"
	SelectModeAdd      SelectMode = "add"
	SelectModeToggle   SelectMode = "toggle"
	SelectModeRange    SelectMode = "range"
	SelectModeBranch   SelectMode = "branch"
	SelectModeChildren SelectMode = "children"
)

// SelectCommand changes the current selection
type SelectCommand struct {
	project *domain.Project
	Mode    SelectMode
	NodeID  string
	// EndID is the second endpoint for range selection
	EndID string
}

// NewSelectCommand creates a new SelectCommand
func NewSelectCommand(project *domain.Project, mode SelectMode, nodeID, endID string) *SelectCommand {
	return &SelectCommand{
		project: project,
		Mode:    mode,
		NodeID:  nodeID,
		EndID:   endID,
	}
}

// Validate checks if the selection change is valid
func (c *SelectCommand) Validate() error {
	if err := application.ValidateRequired("nodeID", c.NodeID); err != nil {
		return err
	}
	if !c.project.Registry.Has(c.NodeID) {
		return &application.ValidationError{
			Field:   "nodeID",
			Message: fmt.Sprintf("node %s does not exist", c.NodeID),
		}
	}
	if c.Mode == SelectModeRange {
		if err := application.ValidateRequired("targetID", c.EndID); err != nil {
			return err
		}
	}
	return nil
}

// Execute runs the selection command
func (c *SelectCommand) Execute(ctx context.Context) (*SelectionResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	sel := c.project.Selection
	var err error
	switch c.Mode {
	case SelectModeSingle:
		sel.SelectSingle(c.NodeID)
	case SelectModeAdd:
		sel.Add(c.NodeID, false)
	case SelectModeToggle:
		sel.Toggle(c.NodeID)
	case SelectModeRange:
		err = sel.SelectRange(c.NodeID, c.EndID, c.project.Registry)
	case SelectModeBranch:
		err = sel.SelectBranch(c.NodeID, c.project.Registry)
	case SelectModeChildren:
		err = sel.SelectChildren(c.NodeID, c.project.Registry)
	default:
		err = fmt.Errorf("unknown selection mode %q", c.Mode)
	}
	if err != nil {
		return nil, err
	}

	return &SelectionResult{
		Count:   sel.Count(),
		Primary: sel.Primary,
		Message: fmt.Sprintf("%d nodes selected", sel.Count()),
	}, nil
}

// SelectByFilterCommand selects nodes by kind or status across the tree
type SelectByFilterCommand struct {
	project *domain.Project
	// Kind filters by node kind when non-empty
	Kind domain.Kind
	// Status filters by status when Kind is empty
	Status domain.Status
	// ScopeID restricts a kind filter to one subtree
	ScopeID string
}

// NewSelectByFilterCommand creates a new SelectByFilterCommand
func NewSelectByFilterCommand(project *domain.Project, kind domain.Kind, status domain.Status, scopeID string) *SelectByFilterCommand {
	return &SelectByFilterCommand{
		project: project,
		Kind:    kind,
		Status:  status,
		ScopeID: scopeID,
	}
}

// Execute runs the filter selection
func (c *SelectByFilterCommand) Execute(ctx context.Context) (*SelectionResult, error) {
	sel := c.project.Selection
	if c.Kind != "" {
		sel.SelectByKind(c.Kind, c.ScopeID, c.project.Registry)
	} else {
		sel.SelectByStatus(c.Status, c.project.Registry)
	}
	return &SelectionResult{
		Count:   sel.Count(),
		Primary: sel.Primary,
		Message: fmt.Sprintf("%d nodes selected", sel.Count()),
	}, nil
}
