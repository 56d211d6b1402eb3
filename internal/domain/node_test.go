package domain

import (
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name     string
		nodeName string
		kind     Kind
		wantErr  bool
		errMsg   string
	}{
		{
			name:     "valid file name",
			nodeName: "notes.md",
			kind:     KindFile,
			wantErr:  false,
		},
		{
			name:     "valid folder name",
			nodeName: "chapter one",
			kind:     KindFolder,
			wantErr:  false,
		},
		{
			name:     "empty name",
			nodeName: "",
			kind:     KindFile,
			wantErr:  true,
			errMsg:   "empty",
		},
		{
			name:     "whitespace only name",
			nodeName: "   ",
			kind:     KindFile,
			wantErr:  true,
			errMsg:   "empty",
		},
		{
			name:     "forbidden slash",
			nodeName: "a/b",
			kind:     KindFile,
			wantErr:  true,
			errMsg:   "invalid characters",
		},
		{
			name:     "forbidden angle bracket",
			nodeName: "a<b",
			kind:     KindFile,
			wantErr:  true,
			errMsg:   "invalid characters",
		},
		{
			name:     "folder with extension dot",
			nodeName: "docs.md",
			kind:     KindFolder,
			wantErr:  true,
			errMsg:   "extension",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.nodeName, tt.kind)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.errMsg)
					return
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in   string
		want Status
	}{
		{"completed", StatusCompleted},
		{"✅", StatusCompleted},
		{"done", StatusCompleted},
		{"in_progress", StatusInProgress},
		{"⬜", StatusInProgress},
		{"pending", StatusPending},
		{"❌", StatusPending},
		{"", StatusNone},
		{"garbage", StatusNone},
	}
	for _, tt := range tests {
		if got := ParseStatus(tt.in); got != tt.want {
			t.Errorf("ParseStatus(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestStatusGlyphRoundTrip(t *testing.T) {
	for _, s := range AllStatuses() {
		if got := ParseStatus(s.Glyph()); got != s {
			t.Errorf("ParseStatus(Glyph(%v)) = %v", s, got)
		}
	}
}

func TestNextStatusCycle(t *testing.T) {
	got := StatusNone
	for i := 0; i < len(AllStatuses()); i++ {
		got = NextStatus(got)
	}
	if got != StatusNone {
		t.Errorf("status cycle did not return to none, got %v", got)
	}
}

func TestNewFileNode(t *testing.T) {
	n, err := NewFileNode("readme", "parent-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.ID == "" {
		t.Error("expected generated id")
	}
	if n.Kind != KindFile {
		t.Errorf("kind = %v, want file", n.Kind)
	}
	if n.ParentID != "parent-1" {
		t.Errorf("parent = %q", n.ParentID)
	}
	if !strings.HasPrefix(n.Fields.MarkdownShort, "# ") {
		t.Errorf("expected markdown stub, got %q", n.Fields.MarkdownShort)
	}
	if n.Status != StatusNone {
		t.Errorf("new node status = %v, want none", n.Status)
	}
}

func TestNewTemplateNode(t *testing.T) {
	tests := []struct {
		template string
		name     string
		wantKind Kind
		wantCode bool
	}{
		{"readme", "README.md", KindFile, false},
		{"config", "settings.json", KindFile, true},
		{"script", "deploy.sh", KindFile, true},
		{"documentation", "docs", KindFolder, false},
		{"bogus", "notes.md", KindFile, false},
	}

	for _, tt := range tests {
		n, err := NewTemplateNode(tt.template, tt.name, "parent-1")
		if err != nil {
			t.Fatalf("NewTemplateNode(%q): %v", tt.template, err)
		}
		if n.Kind != tt.wantKind {
			t.Errorf("%q kind = %v, want %v", tt.template, n.Kind, tt.wantKind)
		}
		if !strings.HasPrefix(n.Fields.MarkdownShort, "# "+tt.name) {
			t.Errorf("%q markdown = %q", tt.template, n.Fields.MarkdownShort)
		}
		if (n.Fields.Code != "") != tt.wantCode {
			t.Errorf("%q code filled = %v, want %v", tt.template, n.Fields.Code != "", tt.wantCode)
		}
		wantTag := "template-" + tt.template
		found := false
		for _, tag := range n.Tags {
			if tag == wantTag {
				found = true
			}
		}
		if !found {
			t.Errorf("%q tags = %v, want %q", tt.template, n.Tags, wantTag)
		}
	}
}

func TestNodeRename(t *testing.T) {
	n, _ := NewFileNode("old", "")
	before := n.ModifiedAt

	if err := n.Rename("new name"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Name != "new name" || n.Fields.Name != "new name" {
		t.Errorf("rename did not propagate: %q / %q", n.Name, n.Fields.Name)
	}
	if n.ModifiedAt.Before(before) {
		t.Error("rename did not touch modified timestamp")
	}

	if err := n.Rename("bad/name"); err == nil {
		t.Error("expected error for forbidden characters")
	}
	if n.Name != "new name" {
		t.Errorf("failed rename mutated node: %q", n.Name)
	}
}

func TestNodeEditField(t *testing.T) {
	n, _ := NewFileNode("doc", "")

	tests := []struct {
		field   string
		content string
		wantErr bool
	}{
		{FieldMarkdownShort, "# summary", false},
		{FieldExplanation, "long text", false},
		{FieldCode, "print(1)", false},
		{FieldName, "renamed", false},
		{"bogus", "x", true},
	}
	for _, tt := range tests {
		err := n.EditField(tt.field, tt.content)
		if tt.wantErr && err == nil {
			t.Errorf("EditField(%q) expected error", tt.field)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("EditField(%q) unexpected error: %v", tt.field, err)
		}
	}

	if got, _ := n.Field(FieldExplanation); got != "long text" {
		t.Errorf("explanation = %q", got)
	}
	if n.Name != "renamed" {
		t.Errorf("edit of name field did not rename, got %q", n.Name)
	}
}

func TestNodeCloneDefaultsToCopiaSuffix(t *testing.T) {
	n, _ := NewFileNode("report", "")
	n.Status = StatusCompleted
	n.Fields.Code = "x = 1"
	n.Tags = []string{"a"}

	c := n.Clone("", false)
	if c.ID == n.ID {
		t.Error("clone shares id with source")
	}
	if c.Name != "report (copia)" {
		t.Errorf("clone name = %q", c.Name)
	}
	if c.Status != StatusCompleted || c.Fields.Code != "x = 1" {
		t.Error("clone did not copy content")
	}

	c.Tags[0] = "b"
	if n.Tags[0] != "a" {
		t.Error("clone shares tag slice with source")
	}
}
