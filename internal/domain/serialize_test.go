package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	p := NewProject("demo")
	folderID, _ := p.CreateNode("docs", KindFolder, "")
	fileID, _ := p.CreateNode("readme", KindFile, folderID)
	if err := p.SetStatus(fileID, StatusCompleted); err != nil {
		t.Fatal(err)
	}
	if err := p.EditField(fileID, FieldExplanation, "long form text\nsecond line"); err != nil {
		t.Fatal(err)
	}
	p.Registry.Find(fileID).AddTag("important")

	data, err := EncodeProject(p)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	got, issues, err := DecodeProject(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(issues) > 0 {
		t.Fatalf("integrity issues after round trip: %v", issues)
	}

	if got.Registry.Len() != p.Registry.Len() {
		t.Fatalf("len = %d, want %d", got.Registry.Len(), p.Registry.Len())
	}
	file := got.Registry.Find(fileID)
	if file == nil {
		t.Fatal("file lost in round trip")
	}
	if file.Status != StatusCompleted {
		t.Errorf("status = %v", file.Status)
	}
	if file.Fields.Explanation != "long form text\nsecond line" {
		t.Errorf("explanation = %q", file.Fields.Explanation)
	}
	if len(file.Tags) != 1 || file.Tags[0] != "important" {
		t.Errorf("tags = %v", file.Tags)
	}
	if file.ParentID != folderID {
		t.Errorf("parent = %q, want %q", file.ParentID, folderID)
	}
	if got.Meta.Name != "demo" {
		t.Errorf("project name = %q", got.Meta.Name)
	}
}

func TestEncodeWritesCurrentFormatVersion(t *testing.T) {
	data, err := EncodeProject(NewProject("demo"))
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	if doc["format_version"] != FormatVersion {
		t.Errorf("format_version = %v, want %s", doc["format_version"], FormatVersion)
	}
	if doc["root_id"] != RootNodeID {
		t.Errorf("root_id = %v", doc["root_id"])
	}
}

func TestEncodeStoresStatusGlyphs(t *testing.T) {
	p := NewProject("demo")
	id, _ := p.CreateNode("task", KindFile, "")
	if err := p.SetStatus(id, StatusCompleted); err != nil {
		t.Fatal(err)
	}

	data, err := EncodeProject(p)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"status": "✅"`) {
		t.Error("completed status not stored as its glyph")
	}
}

func TestDecodeLegacyDocument(t *testing.T) {
	legacy := `{
		"version": "3.0",
		"root_id": "old-root",
		"nodes": {
			"old-root": {
				"id": "old-root",
				"name": "legacy project",
				"type": "folder",
				"children": ["n1"]
			},
			"n1": {
				"id": "n1",
				"name": "chapter",
				"type": "file",
				"status": "✅",
				"parent_id": "old-root",
				"children": [],
				"content": "first line summary\nrest of the body\nmore"
			}
		}
	}`

	p, issues, err := DecodeProject([]byte(legacy))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(issues) > 0 {
		t.Fatalf("integrity issues: %v", issues)
	}

	// The legacy uuid root is adopted onto the conventional root id.
	root := p.Root()
	if root == nil {
		t.Fatal("root missing after migration")
	}
	if root.Name != "legacy project" {
		t.Errorf("root name = %q", root.Name)
	}

	n := p.Registry.Find("n1")
	if n == nil {
		t.Fatal("node lost in migration")
	}
	if n.ParentID != RootNodeID {
		t.Errorf("parent = %q, want adopted root id", n.ParentID)
	}
	if n.Fields.MarkdownShort != "first line summary" {
		t.Errorf("markdown_short = %q, want first line of legacy content", n.Fields.MarkdownShort)
	}
	if n.Fields.Explanation != "" {
		t.Errorf("explanation = %q, migration must leave it empty", n.Fields.Explanation)
	}
	if n.Fields.Code != "" {
		t.Errorf("code = %q, migration must leave it empty", n.Fields.Code)
	}
	if n.Status != StatusCompleted {
		t.Errorf("status = %v", n.Status)
	}
}

func TestDecodeSurfacesAllIntegrityViolations(t *testing.T) {
	broken := `{
		"format_version": "4.0",
		"root_id": "root",
		"nodes": {
			"root": {"id": "root", "name": "p", "type": "folder", "children": ["ghost", "a"]},
			"a": {"id": "a", "name": "a", "type": "file", "parent_id": "nowhere", "children": []}
		}
	}`

	p, issues, err := DecodeProject([]byte(broken))
	if err != nil {
		t.Fatalf("decode must not refuse a structurally broken tree: %v", err)
	}
	if p == nil {
		t.Fatal("no project returned alongside the violations")
	}
	if len(issues) < 2 {
		t.Errorf("issues = %v, want every violation reported", issues)
	}
	// The degraded project keeps reporting the damage.
	if got := p.Validate(); len(got) != len(issues) {
		t.Errorf("Validate() = %v, want the same violations", got)
	}
}

func TestDecodeRejectsMalformedJSON(t *testing.T) {
	if _, _, err := DecodeProject([]byte("{not json")); err == nil {
		t.Error("expected parse error")
	}
}

func TestDecodeMissingRootNode(t *testing.T) {
	doc := `{"format_version": "4.0", "root_id": "gone", "nodes": {}}`
	if _, _, err := DecodeProject([]byte(doc)); err == nil {
		t.Error("expected error for missing root node")
	}
}

func TestIsLegacyVersion(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{"", true},
		{"3.0", true},
		{"3.9", true},
		{"4.0", false},
		{"10.0", false},
		{"garbage", true},
	}
	for _, tt := range tests {
		if got := isLegacyVersion(tt.version); got != tt.want {
			t.Errorf("isLegacyVersion(%q) = %v, want %v", tt.version, got, tt.want)
		}
	}
}
