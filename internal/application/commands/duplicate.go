package commands

import (
	"context"
	"fmt"

	"treecreator/internal/application"
	"treecreator/internal/domain"
)

// DuplicateResult contains the result of a duplication
type DuplicateResult struct {
	NewRootID string
	Copied    int
	Message   string
}

// DuplicateBranchCommand clones a node and its whole subtree. An empty
// target folder defaults to the source's own parent; an empty name goes
// through the sibling conflict policy.
type DuplicateBranchCommand struct {
	project        *domain.Project
	NodeID         string
	TargetParentID string
	NewName        string
}

// NewDuplicateBranchCommand creates a new DuplicateBranchCommand
func NewDuplicateBranchCommand(project *domain.Project, nodeID, targetParentID, newName string) *DuplicateBranchCommand {
	return &DuplicateBranchCommand{
		project:        project,
		NodeID:         nodeID,
		TargetParentID: targetParentID,
		NewName:        newName,
	}
}

// Validate checks if the duplication is valid
func (c *DuplicateBranchCommand) Validate() error {
	if err := application.ValidateRequired("nodeID", c.NodeID); err != nil {
		return err
	}
	if c.NodeID == domain.RootNodeID {
		return &application.ValidationError{
			Field:   "nodeID",
			Message: "the root node cannot be duplicated",
		}
	}
	n := c.project.Registry.Find(c.NodeID)
	if n == nil {
		return &application.ValidationError{
			Field:   "nodeID",
			Message: fmt.Sprintf("node %s does not exist", c.NodeID),
		}
	}
	if c.NewName != "" {
		if err := application.ValidateNodeName("newName", c.NewName, n.Kind); err != nil {
			return err
		}
	}
	if c.TargetParentID != "" {
		target := c.project.Registry.Find(c.TargetParentID)
		if target == nil {
			return &application.ValidationError{
				Field:   "targetID",
				Message: fmt.Sprintf("target %s does not exist", c.TargetParentID),
			}
		}
		if !target.IsFolder() {
			return &application.ValidationError{
				Field:   "targetID",
				Message: fmt.Sprintf("target %s is not a folder", c.TargetParentID),
			}
		}
	}
	return nil
}

// Execute runs the duplicate command
func (c *DuplicateBranchCommand) Execute(ctx context.Context) (*DuplicateResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	newID, err := c.project.DuplicateBranch(c.NodeID, c.TargetParentID, c.NewName)
	if err != nil {
		return nil, fmt.Errorf("failed to duplicate: %w", err)
	}

	copied := 1 + len(c.project.Registry.Descendants(newID))
	clone := c.project.Registry.Find(newID)
	return &DuplicateResult{
		NewRootID: newID,
		Copied:    copied,
		Message:   fmt.Sprintf("Duplicated as %q (%d nodes)", clone.Name, copied),
	}, nil
}

// EstimateDuplicationCommand reports how large a pending duplication would
// be, for pre-flight confirmation prompts
type EstimateDuplicationCommand struct {
	project *domain.Project
	NodeIDs []string
}

// NewEstimateDuplicationCommand creates a new EstimateDuplicationCommand
func NewEstimateDuplicationCommand(project *domain.Project, nodeIDs []string) *EstimateDuplicationCommand {
	return &EstimateDuplicationCommand{project: project, NodeIDs: nodeIDs}
}

// Execute computes the estimate. Read-only.
func (c *EstimateDuplicationCommand) Execute(ctx context.Context) (domain.DuplicationEstimate, error) {
	if len(c.NodeIDs) == 0 {
		return domain.DuplicationEstimate{}, &application.ValidationError{
			Field:   "nodeID",
			Message: "no nodes given",
		}
	}
	return c.project.Registry.EstimateDuplicationSize(c.NodeIDs, true), nil
}
