package views

import (
	"testing"

	"treecreator/internal/domain"
)

// buildContext assembles a small project: root/{docs/{a.md, b.md}, src}
func buildContext(t *testing.T) (*Context, map[string]string) {
	t.Helper()
	p := domain.NewProject("demo")

	ids := map[string]string{"root": domain.RootNodeID}
	var err error
	if ids["docs"], err = p.CreateNode("docs", domain.KindFolder, ""); err != nil {
		t.Fatal(err)
	}
	if ids["a.md"], err = p.CreateNode("a.md", domain.KindFile, ids["docs"]); err != nil {
		t.Fatal(err)
	}
	if ids["b.md"], err = p.CreateNode("b.md", domain.KindFile, ids["docs"]); err != nil {
		t.Fatal(err)
	}
	if ids["src"], err = p.CreateNode("src", domain.KindFolder, ""); err != nil {
		t.Fatal(err)
	}

	return &Context{Project: p}, ids
}

func rowIDs(rows []browserRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.node.Name
	}
	return out
}

func TestFlattenTreeCollapsed(t *testing.T) {
	ctx, _ := buildContext(t)

	rows := flattenTree(ctx.Project.Registry, map[string]bool{domain.RootNodeID: true})

	got := rowIDs(rows)
	want := []string{"docs", "src"}
	if len(got) != len(want) {
		t.Fatalf("flattenTree() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %q, want %q", i, got[i], want[i])
		}
	}
	for _, row := range rows {
		if row.depth != 0 {
			t.Errorf("top-level row %q has depth %d, want 0", row.node.Name, row.depth)
		}
	}
}

func TestFlattenTreeExpanded(t *testing.T) {
	ctx, ids := buildContext(t)

	expanded := map[string]bool{domain.RootNodeID: true, ids["docs"]: true}
	rows := flattenTree(ctx.Project.Registry, expanded)

	got := rowIDs(rows)
	want := []string{"docs", "a.md", "b.md", "src"}
	if len(got) != len(want) {
		t.Fatalf("flattenTree() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %q, want %q", i, got[i], want[i])
		}
	}

	if rows[1].depth != 1 || rows[2].depth != 1 {
		t.Errorf("children of docs should have depth 1, got %d and %d", rows[1].depth, rows[2].depth)
	}
}

func TestBrowserTargetFolder(t *testing.T) {
	ctx, ids := buildContext(t)
	m := NewBrowserModel(ctx)
	m.expanded[ids["docs"]] = true
	m.refreshRows()

	// Cursor starts on docs, a folder
	if got := m.targetFolderID(); got != ids["docs"] {
		t.Errorf("targetFolderID() on folder = %q, want %q", got, ids["docs"])
	}

	// Move onto a.md, a file: its parent folder is the target
	m.pager.SetCursor(1)
	if got := m.targetFolderID(); got != ids["docs"] {
		t.Errorf("targetFolderID() on file = %q, want parent %q", got, ids["docs"])
	}
}

func TestBrowserActionIDs(t *testing.T) {
	ctx, ids := buildContext(t)
	m := NewBrowserModel(ctx)

	// Nothing marked: falls back to the cursor node
	got := m.actionIDs()
	if len(got) != 1 || got[0] != ids["docs"] {
		t.Errorf("actionIDs() = %v, want [%s]", got, ids["docs"])
	}

	// Marked nodes win over the cursor
	ctx.Project.Selection.SelectSingle(ids["a.md"])
	ctx.Project.Selection.Add(ids["b.md"], false)
	got = m.actionIDs()
	if len(got) != 2 {
		t.Fatalf("actionIDs() with marks = %v, want 2 ids", got)
	}
}

func TestBrowserReloadDropsDeletedRows(t *testing.T) {
	ctx, ids := buildContext(t)
	m := NewBrowserModel(ctx)
	m.expanded[ids["docs"]] = true
	m.refreshRows()

	if len(m.rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(m.rows))
	}

	if err := ctx.Project.DeleteNode(ids["docs"], true); err != nil {
		t.Fatal(err)
	}
	m.refreshRows()

	if len(m.rows) != 1 {
		t.Errorf("expected 1 row after deleting docs, got %d", len(m.rows))
	}
	if m.pager.Cursor() >= len(m.rows) {
		t.Errorf("cursor %d out of range after refresh", m.pager.Cursor())
	}
}

func TestPaginatorWindow(t *testing.T) {
	p := NewPaginator(3)
	p.SetTotal(7)

	if start, end := p.VisibleRange(); start != 0 || end != 3 {
		t.Errorf("VisibleRange() = %d..%d, want 0..3", start, end)
	}

	p.SetCursor(5)
	if start, end := p.VisibleRange(); start != 3 || end != 6 {
		t.Errorf("VisibleRange() after cursor move = %d..%d, want 3..6", start, end)
	}
	if p.CurrentPage() != 2 {
		t.Errorf("CurrentPage() = %d, want 2", p.CurrentPage())
	}

	p.Resize(10)
	if start, end := p.VisibleRange(); start != 0 || end != 7 {
		t.Errorf("VisibleRange() after resize = %d..%d, want 0..7", start, end)
	}
}
