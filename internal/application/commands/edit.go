package commands

import (
	"context"
	"fmt"

	"treecreator/internal/application"
	"treecreator/internal/domain"
)

// EditResult contains the result of a field edit
type EditResult struct {
	NodeID  string
	Field   string
	Message string
}

// EditFieldCommand writes one of a node's editable fields. Editing the name
// field renames the node with full name validation.
type EditFieldCommand struct {
	project *domain.Project
	NodeID  string
	Field   string
	Content string
}

// NewEditFieldCommand creates a new EditFieldCommand
func NewEditFieldCommand(project *domain.Project, nodeID, field, content string) *EditFieldCommand {
	return &EditFieldCommand{
		project: project,
		NodeID:  nodeID,
		Field:   field,
		Content: content,
	}
}

// Validate checks if the edit operation is valid
func (c *EditFieldCommand) Validate() error {
	if err := application.ValidateRequired("nodeID", c.NodeID); err != nil {
		return err
	}
	if err := application.ValidateEditorField("field", c.Field); err != nil {
		return err
	}
	n := c.project.Registry.Find(c.NodeID)
	if n == nil {
		return &application.ValidationError{
			Field:   "nodeID",
			Message: fmt.Sprintf("node %s does not exist", c.NodeID),
		}
	}
	if c.Field == domain.FieldName {
		return application.ValidateNodeName("content", c.Content, n.Kind)
	}
	return nil
}

// Execute runs the edit command
func (c *EditFieldCommand) Execute(ctx context.Context) (*EditResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.project.EditField(c.NodeID, c.Field, c.Content); err != nil {
		return nil, fmt.Errorf("failed to edit field: %w", err)
	}

	return &EditResult{
		NodeID:  c.NodeID,
		Field:   c.Field,
		Message: fmt.Sprintf("Updated %s", c.Field),
	}, nil
}
