package commands

import (
	"context"
	"fmt"

	"treecreator/internal/application"
	"treecreator/internal/domain"
)

// DeleteResult contains the result of a delete operation
type DeleteResult struct {
	DeletedID    string
	RemovedCount int
	Message      string
}

// DeleteNodeCommand removes a node. Deleting a non-empty folder requires the
// recursive flag; children are never silently orphaned.
type DeleteNodeCommand struct {
	project   *domain.Project
	NodeID    string
	Recursive bool
}

// NewDeleteNodeCommand creates a new DeleteNodeCommand
func NewDeleteNodeCommand(project *domain.Project, nodeID string, recursive bool) *DeleteNodeCommand {
	return &DeleteNodeCommand{
		project:   project,
		NodeID:    nodeID,
		Recursive: recursive,
	}
}

// Validate checks if the delete operation is valid
func (c *DeleteNodeCommand) Validate() error {
	if err := application.ValidateRequired("nodeID", c.NodeID); err != nil {
		return err
	}
	if c.NodeID == domain.RootNodeID {
		return &application.DeleteError{
			ID:     c.NodeID,
			Reason: "the root node cannot be deleted",
		}
	}
	n := c.project.Registry.Find(c.NodeID)
	if n == nil {
		return &application.DeleteError{
			ID:     c.NodeID,
			Reason: "node does not exist",
		}
	}
	if !c.Recursive && n.HasChildren() {
		return &application.DeleteError{
			ID:     c.NodeID,
			Reason: fmt.Sprintf("folder has %d children, use recursive delete", len(n.ChildrenIDs)),
		}
	}
	return nil
}

// Execute runs the delete command
func (c *DeleteNodeCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	removed := 1 + len(c.project.Registry.Descendants(c.NodeID))
	if !c.Recursive {
		removed = 1
	}
	name := c.project.Registry.Find(c.NodeID).Name

	if err := c.project.DeleteNode(c.NodeID, c.Recursive); err != nil {
		return nil, &application.DeleteError{ID: c.NodeID, Reason: err.Error()}
	}

	return &DeleteResult{
		DeletedID:    c.NodeID,
		RemovedCount: removed,
		Message:      fmt.Sprintf("Deleted %s (%d nodes)", name, removed),
	}, nil
}
