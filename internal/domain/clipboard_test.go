package domain

import (
	"strings"
	"testing"
)

func TestClipboardCopyPaste(t *testing.T) {
	r, ns := testTree(t)
	c := NewClipboard()

	if err := c.Copy([]string{ns["a"].ID}, r); err != nil {
		t.Fatalf("copy: %v", err)
	}
	if c.Mode != ClipboardCopy || c.IsEmpty() {
		t.Fatalf("mode=%v empty=%v", c.Mode, c.IsEmpty())
	}

	ids, err := c.Paste(ns["src"].ID, r)
	if err != nil {
		t.Fatalf("paste: %v", err)
	}
	if len(ids) != 1 {
		t.Fatalf("pasted %d nodes, want 1", len(ids))
	}
	pasted := r.Find(ids[0])
	if pasted.ParentID != ns["src"].ID || pasted.ID == ns["a"].ID {
		t.Error("copy paste must create a new node under the target")
	}
	if !r.Has(ns["a"].ID) {
		t.Error("copy paste removed the original")
	}

	// Copy stays staged: a second paste produces another copy.
	if c.IsEmpty() {
		t.Fatal("clipboard cleared after copy paste")
	}
	more, err := c.Paste(ns["src"].ID, r)
	if err != nil {
		t.Fatalf("second paste: %v", err)
	}
	if len(more) != 1 || more[0] == ids[0] {
		t.Error("second paste did not create a distinct copy")
	}
}

func TestClipboardCutPaste(t *testing.T) {
	r, ns := testTree(t)
	c := NewClipboard()

	if err := c.Cut([]string{ns["a"].ID}, r); err != nil {
		t.Fatalf("cut: %v", err)
	}
	ids, err := c.Paste(ns["src"].ID, r)
	if err != nil {
		t.Fatalf("paste: %v", err)
	}
	if len(ids) != 1 || ids[0] != ns["a"].ID {
		t.Fatalf("cut paste ids = %v, want the moved id", ids)
	}
	if r.Find(ns["a"].ID).ParentID != ns["src"].ID {
		t.Error("cut paste did not move the node")
	}
	if !c.IsEmpty() {
		t.Error("clipboard must clear after a cut paste")
	}
	if issues := r.ValidateIntegrity(); len(issues) > 0 {
		t.Errorf("integrity issues: %v", issues)
	}
}

func TestClipboardCutPasteIntoOwnSubtreeFails(t *testing.T) {
	r, ns := testTree(t)
	c := NewClipboard()

	if err := c.Cut([]string{ns["docs"].ID}, r); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Paste(ns["docs"].ID, r); err == nil {
		t.Fatal("expected error pasting a cut node into its own subtree")
	}
}

func TestClipboardRejectsRoot(t *testing.T) {
	r, _ := testTree(t)
	c := NewClipboard()
	if err := c.Copy([]string{RootNodeID}, r); err == nil {
		t.Error("copying the root must fail")
	}
	if err := c.Cut([]string{RootNodeID}, r); err == nil {
		t.Error("cutting the root must fail")
	}
	if err := c.Copy(nil, r); err == nil {
		t.Error("copying nothing must fail")
	}
}

func TestClipboardRecordsSourceParent(t *testing.T) {
	r, ns := testTree(t)
	c := NewClipboard()

	if err := c.Copy([]string{ns["a"].ID}, r); err != nil {
		t.Fatal(err)
	}
	if c.SourceParentID != ns["a"].ParentID {
		t.Errorf("source parent = %q, want %q", c.SourceParentID, ns["a"].ParentID)
	}

	// Multi-node operations have no single source parent.
	if err := c.Cut([]string{ns["a"].ID, ns["b"].ID}, r); err != nil {
		t.Fatal(err)
	}
	if c.SourceParentID != "" {
		t.Errorf("source parent = %q, want empty for multi-node cut", c.SourceParentID)
	}

	if err := c.Copy([]string{ns["a"].ID}, r); err != nil {
		t.Fatal(err)
	}
	c.Clear()
	if c.SourceParentID != "" {
		t.Error("Clear kept the source parent")
	}
}

func TestClipboardPasteValidatesTarget(t *testing.T) {
	r, ns := testTree(t)
	c := NewClipboard()

	if _, err := c.Paste(ns["src"].ID, r); err == nil || !strings.Contains(err.Error(), "empty") {
		t.Errorf("empty clipboard paste: %v", err)
	}

	if err := c.Copy([]string{ns["a"].ID}, r); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Paste(ns["readme"].ID, r); err == nil || !strings.Contains(err.Error(), "not a folder") {
		t.Errorf("file target paste: %v", err)
	}
	if _, err := c.Paste("ghost", r); err == nil || !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("missing target paste: %v", err)
	}
}

func TestClipboardPasteSkipsDeletedNodes(t *testing.T) {
	r, ns := testTree(t)
	c := NewClipboard()

	if err := c.Copy([]string{ns["a"].ID, ns["b"].ID}, r); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Delete(ns["b"].ID, false); err != nil {
		t.Fatal(err)
	}

	ids, err := c.Paste(ns["src"].ID, r)
	if err != nil {
		t.Fatalf("paste: %v", err)
	}
	if len(ids) != 1 {
		t.Errorf("pasted %d nodes, want only the surviving one", len(ids))
	}
}
