package commands

import (
	"context"
	"fmt"

	"treecreator/internal/application"
	"treecreator/internal/domain"
)

// StatusResult contains the result of a status change
type StatusResult struct {
	NodeID  string
	Status  domain.Status
	Message string
}

// SetStatusCommand sets a node's progress status. Raw input is normalized
// through the status synonyms; unrecognized values degrade to no status.
type SetStatusCommand struct {
	project  *domain.Project
	NodeID   string
	RawValue string
}

// NewSetStatusCommand creates a new SetStatusCommand
func NewSetStatusCommand(project *domain.Project, nodeID, rawValue string) *SetStatusCommand {
	return &SetStatusCommand{
		project:  project,
		NodeID:   nodeID,
		RawValue: rawValue,
	}
}

// Validate checks if the status operation is valid
func (c *SetStatusCommand) Validate() error {
	if err := application.ValidateRequired("nodeID", c.NodeID); err != nil {
		return err
	}
	if c.project.Registry.Find(c.NodeID) == nil {
		return &application.ValidationError{
			Field:   "nodeID",
			Message: fmt.Sprintf("node %s does not exist", c.NodeID),
		}
	}
	return nil
}

// Execute runs the status command
func (c *SetStatusCommand) Execute(ctx context.Context) (*StatusResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	status := domain.ParseStatus(c.RawValue)
	if err := c.project.SetStatus(c.NodeID, status); err != nil {
		return nil, fmt.Errorf("failed to set status: %w", err)
	}

	return &StatusResult{
		NodeID:  c.NodeID,
		Status:  status,
		Message: fmt.Sprintf("Status set to %s", status.DisplayText()),
	}, nil
}

// CycleStatusCommand advances a node through the status cycle
type CycleStatusCommand struct {
	project *domain.Project
	NodeID  string
}

// NewCycleStatusCommand creates a new CycleStatusCommand
func NewCycleStatusCommand(project *domain.Project, nodeID string) *CycleStatusCommand {
	return &CycleStatusCommand{project: project, NodeID: nodeID}
}

// Validate checks if the cycle operation is valid
func (c *CycleStatusCommand) Validate() error {
	if err := application.ValidateRequired("nodeID", c.NodeID); err != nil {
		return err
	}
	if c.project.Registry.Find(c.NodeID) == nil {
		return &application.ValidationError{
			Field:   "nodeID",
			Message: fmt.Sprintf("node %s does not exist", c.NodeID),
		}
	}
	return nil
}

// Execute runs the cycle command
func (c *CycleStatusCommand) Execute(ctx context.Context) (*StatusResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	status, err := c.project.CycleStatus(c.NodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to cycle status: %w", err)
	}

	return &StatusResult{
		NodeID:  c.NodeID,
		Status:  status,
		Message: fmt.Sprintf("Status set to %s", status.DisplayText()),
	}, nil
}
