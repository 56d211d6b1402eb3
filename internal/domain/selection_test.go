package domain

import (
	"testing"
)

func TestSelectionSingleAndToggle(t *testing.T) {
	s := NewSelection()

	s.SelectSingle("n1")
	if !s.IsSelected("n1") || s.Primary != "n1" || s.Count() != 1 {
		t.Errorf("after single select: primary=%q count=%d", s.Primary, s.Count())
	}
	if s.Type != SelectionSingle {
		t.Errorf("type = %v", s.Type)
	}

	s.Toggle("n2")
	if s.Count() != 2 || s.Type != SelectionMultiple {
		t.Errorf("after toggle on: count=%d type=%v", s.Count(), s.Type)
	}
	if s.Primary != "n1" {
		t.Errorf("toggle must not steal primary, got %q", s.Primary)
	}

	s.Toggle("n2")
	if s.IsSelected("n2") || s.Count() != 1 {
		t.Error("toggle off failed")
	}
}

func TestSelectionRemovePromotesNewPrimary(t *testing.T) {
	s := NewSelection()
	s.Add("n1", true)
	s.Add("n2", false)

	s.Remove("n1")
	if s.Primary != "n2" {
		t.Errorf("primary = %q, want n2", s.Primary)
	}

	s.Remove("n2")
	if s.HasSelection() || s.Primary != "" {
		t.Error("selection should be empty")
	}
}

func TestSelectRange(t *testing.T) {
	r, ns := testTree(t)
	s := NewSelection()

	// root's children in order: docs, src, readme.
	if err := s.SelectRange(ns["docs"].ID, ns["readme"].ID, r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Count() != 3 || s.Type != SelectionRange {
		t.Errorf("count=%d type=%v", s.Count(), s.Type)
	}
	if s.Primary != ns["docs"].ID {
		t.Errorf("primary = %q, want range start", s.Primary)
	}

	// Reversed endpoints select the same span.
	if err := s.SelectRange(ns["readme"].ID, ns["docs"].ID, r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Count() != 3 {
		t.Errorf("reversed range count = %d", s.Count())
	}
}

func TestSelectRangeRejectsNonSiblings(t *testing.T) {
	r, ns := testTree(t)
	s := NewSelection()
	s.SelectSingle(ns["readme"].ID)

	if err := s.SelectRange(ns["a"].ID, ns["readme"].ID, r); err == nil {
		t.Fatal("expected error for non-sibling endpoints")
	}
	if !s.IsSelected(ns["readme"].ID) || s.Count() != 1 {
		t.Error("failed range selection mutated the selection")
	}
}

func TestSelectBranch(t *testing.T) {
	r, ns := testTree(t)
	s := NewSelection()

	if err := s.SelectBranch(ns["docs"].ID, r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, name := range []string{"docs", "a", "b"} {
		if !s.IsSelected(ns[name].ID) {
			t.Errorf("%s not selected", name)
		}
	}
	if s.Primary != ns["docs"].ID {
		t.Errorf("primary = %q, want branch root", s.Primary)
	}
	if s.IsSelected(ns["readme"].ID) {
		t.Error("branch selection leaked outside the branch")
	}
}

func TestSelectChildren(t *testing.T) {
	r, ns := testTree(t)
	s := NewSelection()

	if err := s.SelectChildren(ns["docs"].ID, r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Count() != 2 || s.IsSelected(ns["docs"].ID) {
		t.Errorf("count=%d, parent selected=%v", s.Count(), s.IsSelected(ns["docs"].ID))
	}
}

func TestSelectByKindScoped(t *testing.T) {
	r, ns := testTree(t)
	s := NewSelection()

	s.SelectByKind(KindFile, ns["docs"].ID, r)
	if s.Count() != 2 {
		t.Errorf("scoped file count = %d, want 2", s.Count())
	}

	s.SelectByKind(KindFile, "", r)
	if s.Count() != 4 {
		t.Errorf("global file count = %d, want 4", s.Count())
	}

	s.SelectByKind(KindFolder, "", r)
	if s.Count() != 3 {
		t.Errorf("global folder count = %d, want 3", s.Count())
	}
}

func TestSelectByStatus(t *testing.T) {
	r, ns := testTree(t)
	ns["a"].Status = StatusCompleted
	ns["main"].Status = StatusCompleted
	s := NewSelection()

	s.SelectByStatus(StatusCompleted, r)
	if s.Count() != 2 {
		t.Errorf("count = %d, want 2", s.Count())
	}
}

func TestInvert(t *testing.T) {
	r, ns := testTree(t)
	s := NewSelection()
	s.SelectSingle(ns["readme"].ID)

	s.Invert(r)
	if s.IsSelected(ns["readme"].ID) {
		t.Error("inverted selection still holds original")
	}
	if s.Count() != r.Len()-1 {
		t.Errorf("count = %d, want %d", s.Count(), r.Len()-1)
	}
}

func TestPruneDropsDeletedNodes(t *testing.T) {
	r, ns := testTree(t)
	s := NewSelection()
	s.Add(ns["a"].ID, true)
	s.Add(ns["readme"].ID, false)

	if _, err := r.Delete(ns["a"].ID, false); err != nil {
		t.Fatal(err)
	}
	s.Prune(r)

	if s.IsSelected(ns["a"].ID) {
		t.Error("deleted node still selected")
	}
	if !s.IsSelected(ns["readme"].ID) {
		t.Error("surviving node dropped")
	}
	if s.Primary != ns["readme"].ID {
		t.Errorf("primary = %q, want survivor", s.Primary)
	}
}

func TestSelectionStats(t *testing.T) {
	r, ns := testTree(t)
	ns["a"].Status = StatusCompleted
	ns["b"].Status = StatusInProgress
	s := NewSelection()
	if err := s.SelectBranch(ns["docs"].ID, r); err != nil {
		t.Fatal(err)
	}

	st := s.Stats(r)
	if st.Total != 3 || st.Files != 2 || st.Folders != 1 {
		t.Errorf("stats = %+v", st)
	}
	if st.Completed != 1 || st.InProgress != 1 {
		t.Errorf("status stats = %+v", st)
	}
}
