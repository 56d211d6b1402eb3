package commands

import (
	"context"
	"fmt"

	"treecreator/internal/application"
	"treecreator/internal/domain"
)

// HistoryResult contains the result of an undo or redo
type HistoryResult struct {
	Label   string
	Message string
}

// UndoCommand restores the state before the last mutation
type UndoCommand struct {
	project *domain.Project
}

// NewUndoCommand creates a new UndoCommand
func NewUndoCommand(project *domain.Project) *UndoCommand {
	return &UndoCommand{project: project}
}

// Execute runs the undo command
func (c *UndoCommand) Execute(ctx context.Context) (*HistoryResult, error) {
	if !c.project.History.CanUndo() {
		return nil, application.ErrNothingToUndo
	}
	label, err := c.project.Undo()
	if err != nil {
		return nil, fmt.Errorf("failed to undo: %w", err)
	}
	return &HistoryResult{
		Label:   label,
		Message: "Undid: " + label,
	}, nil
}

// RedoCommand reapplies the last undone mutation
type RedoCommand struct {
	project *domain.Project
}

// NewRedoCommand creates a new RedoCommand
func NewRedoCommand(project *domain.Project) *RedoCommand {
	return &RedoCommand{project: project}
}

// Execute runs the redo command
func (c *RedoCommand) Execute(ctx context.Context) (*HistoryResult, error) {
	if !c.project.History.CanRedo() {
		return nil, application.ErrNothingToRedo
	}
	label, err := c.project.Redo()
	if err != nil {
		return nil, fmt.Errorf("failed to redo: %w", err)
	}
	return &HistoryResult{
		Label:   label,
		Message: "Redid: " + label,
	}, nil
}
