package commands

import (
	"context"
	"strings"
	"testing"

	"treecreator/internal/domain"
)

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}

// testProject builds a project with root/{docs/{a.md}, src} for command
// tests and returns it plus node ids by name.
func testProject(t *testing.T) (*domain.Project, map[string]string) {
	t.Helper()
	p := domain.NewProject("test")
	ids := map[string]string{"root": domain.RootNodeID}

	docs, err := p.CreateNode("docs", domain.KindFolder, "")
	if err != nil {
		t.Fatal(err)
	}
	ids["docs"] = docs

	a, err := p.CreateNode("a.md", domain.KindFile, docs)
	if err != nil {
		t.Fatal(err)
	}
	ids["a.md"] = a

	src, err := p.CreateNode("src", domain.KindFolder, "")
	if err != nil {
		t.Fatal(err)
	}
	ids["src"] = src
	return p, ids
}

func TestCreateNodeCommand_Validate(t *testing.T) {
	tests := []struct {
		name     string
		nodeName string
		kind     domain.Kind
		parent   string
		wantErr  bool
		errMsg   string
	}{
		{
			name:     "valid file under root",
			nodeName: "notes.md",
			kind:     domain.KindFile,
			parent:   "",
			wantErr:  false,
		},
		{
			name:     "valid folder under folder",
			nodeName: "sub",
			kind:     domain.KindFolder,
			parent:   "docs",
			wantErr:  false,
		},
		{
			name:     "empty name",
			nodeName: "",
			kind:     domain.KindFile,
			parent:   "",
			wantErr:  true,
			errMsg:   "name is required",
		},
		{
			name:     "forbidden characters",
			nodeName: "a/b",
			kind:     domain.KindFile,
			parent:   "",
			wantErr:  true,
			errMsg:   "invalid characters",
		},
		{
			name:     "missing parent",
			nodeName: "x",
			kind:     domain.KindFile,
			parent:   "ghost",
			wantErr:  true,
			errMsg:   "does not exist",
		},
		{
			name:     "file as parent",
			nodeName: "x",
			kind:     domain.KindFile,
			parent:   "a.md",
			wantErr:  true,
			errMsg:   "not a folder",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ids := testProject(t)
			parent := tt.parent
			if id, ok := ids[tt.parent]; ok {
				parent = id
			}
			cmd := NewCreateNodeCommand(p, tt.nodeName, tt.kind, parent)
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

func TestCreateNodeCommand_Execute(t *testing.T) {
	p, ids := testProject(t)

	cmd := NewCreateNodeCommand(p, "chapter", domain.KindFolder, ids["docs"])
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.NodeID == "" {
		t.Fatal("no node id in result")
	}
	created := p.Registry.Find(result.NodeID)
	if created == nil || created.ParentID != ids["docs"] {
		t.Error("node not created under the requested parent")
	}
	if !contains(result.Message, "chapter") {
		t.Errorf("message = %q", result.Message)
	}
}

func TestCreateNodeCommand_Template(t *testing.T) {
	p, ids := testProject(t)

	cmd := NewCreateNodeCommand(p, "README.md", domain.KindFile, ids["src"]).
		WithTemplate("readme")
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	created := p.Registry.Find(result.NodeID)
	if created == nil {
		t.Fatal("template node not created")
	}
	if !contains(created.Fields.MarkdownShort, "## Description") {
		t.Errorf("markdown = %q, want readme template content", created.Fields.MarkdownShort)
	}
	if len(created.Tags) == 0 || created.Tags[0] != "template-readme" {
		t.Errorf("tags = %v, want template tag", created.Tags)
	}
}

func TestCreateNodeCommand_ResolvesNameConflict(t *testing.T) {
	p, ids := testProject(t)

	cmd := NewCreateNodeCommand(p, "a.md", domain.KindFile, ids["docs"])
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Name != "a.md (copia)" {
		t.Errorf("conflicting name = %q, want suffix applied", result.Name)
	}
}
