package commands

import (
	"context"
	"fmt"

	"treecreator/internal/application"
	"treecreator/internal/domain"
)

// RenameResult contains the result of a rename operation
type RenameResult struct {
	NodeID  string
	OldName string
	NewName string
	Message string
}

// RenameNodeCommand renames a node
type RenameNodeCommand struct {
	project *domain.Project
	NodeID  string
	NewName string
}

// NewRenameNodeCommand creates a new RenameNodeCommand
func NewRenameNodeCommand(project *domain.Project, nodeID, newName string) *RenameNodeCommand {
	return &RenameNodeCommand{
		project: project,
		NodeID:  nodeID,
		NewName: newName,
	}
}

// Validate checks if the rename operation is valid
func (c *RenameNodeCommand) Validate() error {
	if err := application.ValidateRequired("nodeID", c.NodeID); err != nil {
		return err
	}
	if err := application.ValidateRequired("name", c.NewName); err != nil {
		return err
	}
	if c.NodeID == domain.RootNodeID {
		return &application.ValidationError{
			Field:   "nodeID",
			Message: "the root node cannot be renamed",
		}
	}
	n := c.project.Registry.Find(c.NodeID)
	if n == nil {
		return &application.ValidationError{
			Field:   "nodeID",
			Message: fmt.Sprintf("node %s does not exist", c.NodeID),
		}
	}
	return application.ValidateNodeName("name", c.NewName, n.Kind)
}

// Execute runs the rename command
func (c *RenameNodeCommand) Execute(ctx context.Context) (*RenameResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	oldName := c.project.Registry.Find(c.NodeID).Name
	if err := c.project.RenameNode(c.NodeID, c.NewName); err != nil {
		return nil, fmt.Errorf("failed to rename node: %w", err)
	}

	return &RenameResult{
		NodeID:  c.NodeID,
		OldName: oldName,
		NewName: c.NewName,
		Message: fmt.Sprintf("Renamed %q to %q", oldName, c.NewName),
	}, nil
}
