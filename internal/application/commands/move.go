package commands

import (
	"context"

	"treecreator/internal/application"
	"treecreator/internal/domain"
)

// MoveResult contains the result of a move operation
type MoveResult struct {
	NodeID  string
	NewPath string
	Message string
}

// MoveNodeCommand re-parents a node under a new folder
type MoveNodeCommand struct {
	project     *domain.Project
	NodeID      string
	NewParentID string
}

// NewMoveNodeCommand creates a new MoveNodeCommand
func NewMoveNodeCommand(project *domain.Project, nodeID, newParentID string) *MoveNodeCommand {
	return &MoveNodeCommand{
		project:     project,
		NodeID:      nodeID,
		NewParentID: newParentID,
	}
}

// Validate checks if the move operation is valid
func (c *MoveNodeCommand) Validate() error {
	if err := application.ValidateRequired("nodeID", c.NodeID); err != nil {
		return err
	}
	if err := application.ValidateRequired("parentID", c.NewParentID); err != nil {
		return err
	}
	if c.NodeID == domain.RootNodeID {
		return &application.MoveError{
			SourceID: c.NodeID,
			DestID:   c.NewParentID,
			Reason:   "the root node cannot be moved",
		}
	}
	n := c.project.Registry.Find(c.NodeID)
	if n == nil {
		return &application.MoveError{
			SourceID: c.NodeID,
			DestID:   c.NewParentID,
			Reason:   "source does not exist",
		}
	}
	dest := c.project.Registry.Find(c.NewParentID)
	if dest == nil {
		return &application.MoveError{
			SourceID: c.NodeID,
			DestID:   c.NewParentID,
			Reason:   "destination does not exist",
		}
	}
	if !dest.IsFolder() {
		return &application.MoveError{
			SourceID: c.NodeID,
			DestID:   c.NewParentID,
			Reason:   "destination is not a folder",
		}
	}
	if c.NodeID == c.NewParentID || c.project.Registry.IsDescendant(c.NewParentID, c.NodeID) {
		return &application.MoveError{
			SourceID: c.NodeID,
			DestID:   c.NewParentID,
			Reason:   "destination is inside the moved branch",
		}
	}
	return nil
}

// Execute runs the move command
func (c *MoveNodeCommand) Execute(ctx context.Context) (*MoveResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.project.MoveNode(c.NodeID, c.NewParentID); err != nil {
		return nil, &application.MoveError{
			SourceID: c.NodeID,
			DestID:   c.NewParentID,
			Reason:   err.Error(),
		}
	}

	path := c.project.Registry.Path(c.NodeID)
	return &MoveResult{
		NodeID:  c.NodeID,
		NewPath: path,
		Message: "Moved to " + path,
	}, nil
}
