package commands

import (
	"context"
	"errors"
	"testing"

	"treecreator/internal/application"
	"treecreator/internal/domain"
)

func TestMoveNodeCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		dest    string
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid file to folder",
			source:  "a.md",
			dest:    "src",
			wantErr: false,
		},
		{
			name:    "valid folder to folder",
			source:  "docs",
			dest:    "src",
			wantErr: false,
		},
		{
			name:    "empty source ID",
			source:  "",
			dest:    "src",
			wantErr: true,
			errMsg:  "node ID is required",
		},
		{
			name:    "empty destination ID",
			source:  "a.md",
			dest:    "",
			wantErr: true,
			errMsg:  "parent ID is required",
		},
		{
			name:    "root as source",
			source:  "root",
			dest:    "src",
			wantErr: true,
			errMsg:  "root node cannot be moved",
		},
		{
			name:    "destination is a file",
			source:  "docs",
			dest:    "a.md",
			wantErr: true,
			errMsg:  "not a folder",
		},
		{
			name:    "destination inside moved branch",
			source:  "docs",
			dest:    "docs",
			wantErr: true,
			errMsg:  "inside the moved branch",
		},
		{
			name:    "missing source",
			source:  "ghost",
			dest:    "src",
			wantErr: true,
			errMsg:  "source does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ids := testProject(t)
			source := tt.source
			if id, ok := ids[tt.source]; ok {
				source = id
			}
			dest := tt.dest
			if id, ok := ids[tt.dest]; ok {
				dest = id
			}
			cmd := NewMoveNodeCommand(p, source, dest)
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

func TestMoveNodeCommand_Execute(t *testing.T) {
	p, ids := testProject(t)

	cmd := NewMoveNodeCommand(p, ids["a.md"], ids["src"])
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Registry.Find(ids["a.md"]).ParentID != ids["src"] {
		t.Error("node not moved")
	}
	if result.NewPath != "test/src/a.md" {
		t.Errorf("new path = %q", result.NewPath)
	}
}

func TestMoveNodeCommand_ErrorsMatchSentinel(t *testing.T) {
	p, ids := testProject(t)

	cmd := NewMoveNodeCommand(p, ids["docs"], ids["docs"])
	_, err := cmd.Execute(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, application.ErrCannotMove) {
		t.Errorf("error does not match ErrCannotMove: %v", err)
	}
	var moveErr *application.MoveError
	if !errors.As(err, &moveErr) {
		t.Fatalf("error type = %T", err)
	}
	if moveErr.SourceID != ids["docs"] {
		t.Errorf("source in error = %q", moveErr.SourceID)
	}
}

func TestMoveNodeCommand_CyclePreventionLeavesTreeIntact(t *testing.T) {
	p, ids := testProject(t)
	sub, err := p.CreateNode("sub", domain.KindFolder, ids["docs"])
	if err != nil {
		t.Fatal(err)
	}

	cmd := NewMoveNodeCommand(p, ids["docs"], sub)
	if _, err := cmd.Execute(context.Background()); err == nil {
		t.Fatal("expected error moving a folder into its own descendant")
	}
	if issues := p.Registry.ValidateIntegrity(); len(issues) > 0 {
		t.Errorf("rejected move corrupted the tree: %v", issues)
	}
	if p.Registry.Find(ids["docs"]).ParentID != domain.RootNodeID {
		t.Error("rejected move changed the parent")
	}
}
