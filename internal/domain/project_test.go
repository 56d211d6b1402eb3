package domain

import (
	"strings"
	"testing"
)

func TestNewProject(t *testing.T) {
	p := NewProject("demo")

	root := p.Root()
	if root == nil {
		t.Fatal("project has no root")
	}
	if root.ID != RootNodeID {
		t.Errorf("root id = %q, want %q", root.ID, RootNodeID)
	}
	if root.Name != "demo" || !root.IsFolder() {
		t.Errorf("root = %q kind=%v", root.Name, root.Kind)
	}
	if p.Dirty() {
		t.Error("fresh project marked dirty")
	}
	if p.History.CanUndo() {
		t.Error("fresh project offers undo")
	}
}

func TestProjectCreateNode(t *testing.T) {
	p := NewProject("demo")

	id, err := p.CreateNode("notes", KindFile, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n := p.Registry.Find(id)
	if n == nil || n.ParentID != RootNodeID {
		t.Fatal("node not created under root")
	}
	if !p.Dirty() {
		t.Error("create did not mark project dirty")
	}

	// Same name in the same folder gets the conflict suffix.
	id2, err := p.CreateNode("notes", KindFile, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := p.Registry.Find(id2).Name; got != "notes (copia)" {
		t.Errorf("conflicting name = %q", got)
	}

	if _, err := p.CreateNode("x", KindFile, "ghost"); err == nil {
		t.Error("expected error for missing parent")
	}
}

func TestProjectRootIsProtected(t *testing.T) {
	p := NewProject("demo")
	folderID, _ := p.CreateNode("sub", KindFolder, "")

	if err := p.MoveNode(RootNodeID, folderID); err == nil {
		t.Error("moving the root must fail")
	}
	if err := p.RenameNode(RootNodeID, "other"); err == nil {
		t.Error("renaming the root must fail")
	}
	if err := p.DeleteNode(RootNodeID, true); err == nil {
		t.Error("deleting the root must fail")
	}
	if _, err := p.DuplicateBranch(RootNodeID, folderID, ""); err == nil {
		t.Error("duplicating the root must fail")
	}
}

func TestProjectUndoRedoFlow(t *testing.T) {
	p := NewProject("demo")

	id, err := p.CreateNode("draft", KindFile, "")
	if err != nil {
		t.Fatal(err)
	}

	label, err := p.Undo()
	if err != nil {
		t.Fatalf("undo: %v", err)
	}
	if !strings.Contains(label, "create") {
		t.Errorf("label = %q", label)
	}
	if p.Registry.Has(id) {
		t.Error("undo did not remove created node")
	}

	if _, err := p.Redo(); err != nil {
		t.Fatalf("redo: %v", err)
	}
	if !p.Registry.Has(id) {
		t.Error("redo did not restore created node")
	}
}

func TestProjectUndoDropsSelectionOfUndoneNode(t *testing.T) {
	p := NewProject("demo")
	id, _ := p.CreateNode("draft", KindFile, "")
	p.Selection.SelectSingle(id)

	if _, err := p.Undo(); err != nil {
		t.Fatal(err)
	}
	if p.Selection.IsSelected(id) {
		t.Error("selection still references undone node")
	}
}

func TestProjectUndoRestoresSelectionAndClipboard(t *testing.T) {
	p := NewProject("demo")
	keepID, _ := p.CreateNode("keep", KindFile, "")
	goneID, _ := p.CreateNode("gone", KindFile, "")

	p.Selection.SelectSingle(goneID)
	if err := p.Clipboard.Copy([]string{keepID}, p.Registry); err != nil {
		t.Fatal(err)
	}

	if err := p.DeleteNode(goneID, false); err != nil {
		t.Fatal(err)
	}
	if p.Selection.HasSelection() {
		t.Fatal("delete left the removed node selected")
	}

	if _, err := p.Undo(); err != nil {
		t.Fatal(err)
	}
	if !p.Registry.Has(goneID) {
		t.Fatal("undo did not restore the deleted node")
	}
	if !p.Selection.IsSelected(goneID) || p.Selection.Primary != goneID {
		t.Errorf("selection after undo: ids=%v primary=%q, want the deleted node selected again",
			p.Selection.IDs(), p.Selection.Primary)
	}
	if !p.Clipboard.Contains(keepID) || p.Clipboard.Mode != ClipboardCopy {
		t.Errorf("clipboard after undo: ids=%v mode=%v", p.Clipboard.IDs, p.Clipboard.Mode)
	}

	if _, err := p.Redo(); err != nil {
		t.Fatal(err)
	}
	if p.Selection.IsSelected(goneID) {
		t.Error("redo restored a selection of the re-deleted node")
	}
}

func TestProjectDeleteSelection(t *testing.T) {
	p := NewProject("demo")
	folderID, _ := p.CreateNode("folder", KindFolder, "")
	aID, _ := p.CreateNode("a", KindFile, folderID)
	bID, _ := p.CreateNode("b", KindFile, folderID)

	p.Selection.Add(aID, true)
	p.Selection.Add(bID, false)

	removed, err := p.DeleteSelection(false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed != 2 {
		t.Errorf("removed = %d, want 2", removed)
	}
	if p.Selection.HasSelection() {
		t.Error("selection not cleared after delete")
	}
	if p.Registry.Has(aID) || p.Registry.Has(bID) {
		t.Error("selected nodes survived")
	}
	if !p.Registry.Has(folderID) {
		t.Error("parent folder was deleted")
	}
}

func TestProjectCopyPasteSelection(t *testing.T) {
	p := NewProject("demo")
	srcID, _ := p.CreateNode("source", KindFolder, "")
	dstID, _ := p.CreateNode("dest", KindFolder, "")
	fileID, _ := p.CreateNode("doc", KindFile, srcID)

	p.Selection.SelectSingle(fileID)
	if err := p.CopySelection(); err != nil {
		t.Fatalf("copy: %v", err)
	}
	ids, err := p.Paste(dstID)
	if err != nil {
		t.Fatalf("paste: %v", err)
	}
	if len(ids) != 1 {
		t.Fatalf("pasted %d, want 1", len(ids))
	}
	if p.Registry.Find(ids[0]).ParentID != dstID {
		t.Error("paste target wrong")
	}
	if !p.Registry.Has(fileID) {
		t.Error("copy paste removed the original")
	}
}

func TestProjectCutPasteSelection(t *testing.T) {
	p := NewProject("demo")
	srcID, _ := p.CreateNode("source", KindFolder, "")
	dstID, _ := p.CreateNode("dest", KindFolder, "")
	fileID, _ := p.CreateNode("doc", KindFile, srcID)

	p.Selection.SelectSingle(fileID)
	if err := p.CutSelection(); err != nil {
		t.Fatalf("cut: %v", err)
	}
	if _, err := p.Paste(dstID); err != nil {
		t.Fatalf("paste: %v", err)
	}
	if p.Registry.Find(fileID).ParentID != dstID {
		t.Error("cut paste did not move the node")
	}
	if !p.Clipboard.IsEmpty() {
		t.Error("clipboard kept contents after cut paste")
	}
}

func TestProjectCycleStatus(t *testing.T) {
	p := NewProject("demo")
	id, _ := p.CreateNode("task", KindFile, "")

	want := []Status{StatusPending, StatusInProgress, StatusCompleted, StatusNone}
	for _, w := range want {
		got, err := p.CycleStatus(id)
		if err != nil {
			t.Fatal(err)
		}
		if got != w {
			t.Errorf("cycled to %v, want %v", got, w)
		}
	}
}

func TestProjectValidate(t *testing.T) {
	p := NewProject("demo")
	id, _ := p.CreateNode("a", KindFile, "")
	if issues := p.Validate(); len(issues) > 0 {
		t.Errorf("fresh project has issues: %v", issues)
	}

	p.Registry.Find(id).ParentID = "ghost"
	if issues := p.Validate(); len(issues) == 0 {
		t.Error("corruption not reported")
	}
}
