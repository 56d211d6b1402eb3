package commands

import (
	"context"
	"fmt"

	"treecreator/internal/application"
	"treecreator/internal/domain"
)

// ClipboardResult contains the result of a clipboard operation
type ClipboardResult struct {
	NodeIDs []string
	Message string
}

// CopyNodesCommand stages nodes for duplication on paste
type CopyNodesCommand struct {
	project *domain.Project
	NodeIDs []string
}

// NewCopyNodesCommand creates a new CopyNodesCommand. With no explicit ids
// the current selection is staged.
func NewCopyNodesCommand(project *domain.Project, nodeIDs []string) *CopyNodesCommand {
	return &CopyNodesCommand{project: project, NodeIDs: nodeIDs}
}

// Execute runs the copy command
func (c *CopyNodesCommand) Execute(ctx context.Context) (*ClipboardResult, error) {
	ids := c.NodeIDs
	if len(ids) == 0 {
		ids = c.project.Selection.IDs()
	}
	if err := c.project.Clipboard.Copy(ids, c.project.Registry); err != nil {
		return nil, err
	}
	return &ClipboardResult{
		NodeIDs: ids,
		Message: fmt.Sprintf("Copied %d nodes", len(ids)),
	}, nil
}

// CutNodesCommand stages nodes for relocation on paste
type CutNodesCommand struct {
	project *domain.Project
	NodeIDs []string
}

// NewCutNodesCommand creates a new CutNodesCommand
func NewCutNodesCommand(project *domain.Project, nodeIDs []string) *CutNodesCommand {
	return &CutNodesCommand{project: project, NodeIDs: nodeIDs}
}

// Execute runs the cut command
func (c *CutNodesCommand) Execute(ctx context.Context) (*ClipboardResult, error) {
	ids := c.NodeIDs
	if len(ids) == 0 {
		ids = c.project.Selection.IDs()
	}
	if err := c.project.Clipboard.Cut(ids, c.project.Registry); err != nil {
		return nil, err
	}
	return &ClipboardResult{
		NodeIDs: ids,
		Message: fmt.Sprintf("Cut %d nodes", len(ids)),
	}, nil
}

// PasteNodesCommand applies the staged clipboard operation into a target
// folder
type PasteNodesCommand struct {
	project        *domain.Project
	TargetParentID string
}

// NewPasteNodesCommand creates a new PasteNodesCommand
func NewPasteNodesCommand(project *domain.Project, targetParentID string) *PasteNodesCommand {
	return &PasteNodesCommand{project: project, TargetParentID: targetParentID}
}

// Validate checks if the paste is valid
func (c *PasteNodesCommand) Validate() error {
	if c.project.Clipboard.IsEmpty() {
		return application.ErrClipboardEmpty
	}
	if err := application.ValidateRequired("targetID", c.TargetParentID); err != nil {
		return err
	}
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
	return nil
}

// Execute runs the paste command
func (c *PasteNodesCommand) Execute(ctx context.Context) (*ClipboardResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	ids, err := c.project.Paste(c.TargetParentID)
	if err != nil {
		return nil, fmt.Errorf("failed to paste: %w", err)
	}

	return &ClipboardResult{
		NodeIDs: ids,
		Message: fmt.Sprintf("Pasted %d nodes", len(ids)),
	}, nil
}
