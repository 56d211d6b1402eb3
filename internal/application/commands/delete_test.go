package commands

import (
	"context"
	"errors"
	"testing"

	"treecreator/internal/application"
)

func TestDeleteNodeCommand_Validate(t *testing.T) {
	tests := []struct {
		name      string
		node      string
		recursive bool
		wantErr   bool
		errMsg    string
	}{
		{
			name:      "delete file",
			node:      "a.md",
			recursive: false,
			wantErr:   false,
		},
		{
			name:      "delete empty folder",
			node:      "src",
			recursive: false,
			wantErr:   false,
		},
		{
			name:      "delete non-empty folder without recursive",
			node:      "docs",
			recursive: false,
			wantErr:   true,
			errMsg:    "recursive",
		},
		{
			name:      "delete non-empty folder recursive",
			node:      "docs",
			recursive: true,
			wantErr:   false,
		},
		{
			name:      "delete root",
			node:      "root",
			recursive: true,
			wantErr:   true,
			errMsg:    "root node cannot be deleted",
		},
		{
			name:      "missing node",
			node:      "ghost",
			recursive: false,
			wantErr:   true,
			errMsg:    "does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ids := testProject(t)
			node := tt.node
			if id, ok := ids[tt.node]; ok {
				node = id
			}
			cmd := NewDeleteNodeCommand(p, node, tt.recursive)
			err := cmd.Validate()

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.errMsg)
					return
				}
				if !contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestDeleteNodeCommand_Execute(t *testing.T) {
	p, ids := testProject(t)

	cmd := NewDeleteNodeCommand(p, ids["docs"], true)
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.RemovedCount != 2 {
		t.Errorf("removed = %d, want 2 (docs and a.md)", result.RemovedCount)
	}
	if p.Registry.Has(ids["docs"]) || p.Registry.Has(ids["a.md"]) {
		t.Error("nodes survived delete")
	}
	if issues := p.Registry.ValidateIntegrity(); len(issues) > 0 {
		t.Errorf("integrity issues after delete: %v", issues)
	}
}

func TestDeleteNodeCommand_ErrorsMatchSentinel(t *testing.T) {
	p, ids := testProject(t)

	cmd := NewDeleteNodeCommand(p, ids["docs"], false)
	_, err := cmd.Execute(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, application.ErrCannotDelete) {
		t.Errorf("error does not match ErrCannotDelete: %v", err)
	}
}

func TestDeleteNodeCommand_DropsNodeFromSelection(t *testing.T) {
	p, ids := testProject(t)
	p.Selection.SelectSingle(ids["a.md"])

	cmd := NewDeleteNodeCommand(p, ids["a.md"], false)
	if _, err := cmd.Execute(context.Background()); err != nil {
		t.Fatal(err)
	}
	if p.Selection.IsSelected(ids["a.md"]) {
		t.Error("deleted node still selected")
	}
}
