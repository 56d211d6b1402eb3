package commands

import (
	"context"
	"fmt"

	"treecreator/internal/application"
	"treecreator/internal/domain"
)

// CommentResult contains the result of adding a comment
type CommentResult struct {
	NodeID    string
	CommentID string
	Message   string
}

// AddCommentCommand attaches a dated comment to a node
type AddCommentCommand struct {
	project *domain.Project
	NodeID  string
	Text    string
	Author  string
}

// NewAddCommentCommand creates a new AddCommentCommand
func NewAddCommentCommand(project *domain.Project, nodeID, text, author string) *AddCommentCommand {
	return &AddCommentCommand{
		project: project,
		NodeID:  nodeID,
		Text:    text,
		Author:  author,
	}
}

// Validate checks if the comment operation is valid
func (c *AddCommentCommand) Validate() error {
	if err := application.ValidateRequired("nodeID", c.NodeID); err != nil {
		return err
	}
	if err := application.ValidateRequired("text", c.Text); err != nil {
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

// Execute runs the comment command
func (c *AddCommentCommand) Execute(ctx context.Context) (*CommentResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	commentID, err := c.project.AddComment(c.NodeID, c.Text, c.Author)
	if err != nil {
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}

	node := c.project.Registry.Find(c.NodeID)
	return &CommentResult{
		NodeID:    c.NodeID,
		CommentID: commentID,
		Message:   fmt.Sprintf("Added comment to %s", node.Name),
	}, nil
}
