package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrRootProtected    = errors.New("root node is protected")
	ErrCannotMove       = errors.New("cannot move")
	ErrCannotDelete     = errors.New("cannot delete")
	ErrNothingToUndo    = errors.New("nothing to undo")
	ErrNothingToRedo    = errors.New("nothing to redo")
	ErrClipboardEmpty   = errors.New("clipboard is empty")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// MoveError represents a move-related failure
type MoveError struct {
	SourceID string
	DestID   string
	Reason   string
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("cannot move %s to %s: %s", e.SourceID, e.DestID, e.Reason)
}

func (e *MoveError) Is(target error) bool {
	return target == ErrCannotMove
}

// DeleteError represents a delete-related failure, typically a non-empty
// folder deleted without the recursive flag
type DeleteError struct {
	ID     string
	Reason string
}

func (e *DeleteError) Error() string {
	return fmt.Sprintf("cannot delete %s: %s", e.ID, e.Reason)
}

func (e *DeleteError) Is(target error) bool {
	return target == ErrCannotDelete
}

// StructuralError reports tree integrity violations found during validation
// or load
type StructuralError struct {
	Violations []string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("tree structure is invalid (%d violations)", len(e.Violations))
}
