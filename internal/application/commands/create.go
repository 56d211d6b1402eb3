package commands

import (
	"context"
	"fmt"

	"treecreator/internal/application"
	"treecreator/internal/domain"
)

// CreateResult contains the result of creating a node
type CreateResult struct {
	NodeID  string
	Name    string
	Message string
}

// CreateNodeCommand creates a file or folder under a parent folder
type CreateNodeCommand struct {
	project  *domain.Project
	Name     string
	Kind     domain.Kind
	ParentID string
	Template string
}

// NewCreateNodeCommand creates a new CreateNodeCommand. An empty parent ID
// targets the root.
func NewCreateNodeCommand(project *domain.Project, name string, kind domain.Kind, parentID string) *CreateNodeCommand {
	return &CreateNodeCommand{
		project:  project,
		Name:     name,
		Kind:     kind,
		ParentID: parentID,
	}
}

// WithTemplate pre-fills the new node from a named template (readme, config,
// script, documentation). The node kind is then derived from the name.
func (c *CreateNodeCommand) WithTemplate(templateType string) *CreateNodeCommand {
	c.Template = templateType
	return c
}

// Validate checks if the create operation is valid
func (c *CreateNodeCommand) Validate() error {
	if err := application.ValidateRequired("name", c.Name); err != nil {
		return err
	}
	if c.Template == "" {
		if err := application.ValidateNodeName("name", c.Name, c.Kind); err != nil {
			return err
		}
	}
	if c.ParentID != "" {
		parent := c.project.Registry.Find(c.ParentID)
		if parent == nil {
			return &application.ValidationError{
				Field:   "parentID",
				Message: fmt.Sprintf("parent %s does not exist", c.ParentID),
			}
		}
		if !parent.IsFolder() {
			return &application.ValidationError{
				Field:   "parentID",
				Message: fmt.Sprintf("parent %s is not a folder", c.ParentID),
			}
		}
	}
	return nil
}

// Execute runs the create command
func (c *CreateNodeCommand) Execute(ctx context.Context) (*CreateResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var id string
	var err error
	if c.Template != "" {
		id, err = c.project.CreateTemplateNode(c.Template, c.Name, c.ParentID)
	} else {
		id, err = c.project.CreateNode(c.Name, c.Kind, c.ParentID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create node: %w", err)
	}

	created := c.project.Registry.Find(id)
	return &CreateResult{
		NodeID:  id,
		Name:    created.Name,
		Message: fmt.Sprintf("Created %s: %s", created.Kind, created.Name),
	}, nil
}
