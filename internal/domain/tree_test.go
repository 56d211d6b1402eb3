package domain

import (
	"strings"
	"testing"
)

func TestMove(t *testing.T) {
	tests := []struct {
		name    string
		node    string
		dest    string
		wantErr string
	}{
		{
			name: "file into sibling folder",
			node: "readme",
			dest: "docs",
		},
		{
			name: "folder into folder",
			node: "docs",
			dest: "src",
		},
		{
			name:    "into itself",
			node:    "docs",
			dest:    "docs",
			wantErr: "into itself",
		},
		{
			name:    "into own descendant",
			node:    "root",
			dest:    "docs",
			wantErr: "descendant",
		},
		{
			name:    "into a file",
			node:    "readme",
			dest:    "a",
			wantErr: "not a folder",
		},
		{
			name:    "missing node",
			node:    "",
			dest:    "docs",
			wantErr: "does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ns := testTree(t)
			nodeID := tt.node
			if n, ok := ns[tt.node]; ok {
				nodeID = n.ID
			}
			err := r.Move(nodeID, ns[tt.dest].ID)

			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %q", tt.wantErr, err.Error())
				}
				if issues := r.ValidateIntegrity(); len(issues) > 0 {
					t.Errorf("failed move corrupted the tree: %v", issues)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			moved := r.Find(nodeID)
			if moved.ParentID != ns[tt.dest].ID {
				t.Errorf("parent = %q, want %q", moved.ParentID, ns[tt.dest].ID)
			}
			if issues := r.ValidateIntegrity(); len(issues) > 0 {
				t.Errorf("integrity issues after move: %v", issues)
			}
		})
	}
}

func TestMoveDetachesFromOldParent(t *testing.T) {
	r, ns := testTree(t)
	if err := r.Move(ns["a"].ID, ns["src"].ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, cid := range ns["docs"].ChildrenIDs {
		if cid == ns["a"].ID {
			t.Error("moved node still listed under old parent")
		}
	}
}

func TestResolveNameConflict(t *testing.T) {
	r, ns := testTree(t)

	if got := r.ResolveNameConflict("fresh", ns["docs"].ID); got != "fresh" {
		t.Errorf("unused name changed to %q", got)
	}
	if got := r.ResolveNameConflict("a", ns["docs"].ID); got != "a (copia)" {
		t.Errorf("first conflict = %q, want %q", got, "a (copia)")
	}

	copia, _ := NewFileNode("a (copia)", "")
	if err := r.Attach(copia, ns["docs"].ID); err != nil {
		t.Fatal(err)
	}
	if got := r.ResolveNameConflict("a", ns["docs"].ID); got != "a (copia 2)" {
		t.Errorf("second conflict = %q, want %q", got, "a (copia 2)")
	}
}

func TestDuplicateBranch(t *testing.T) {
	r, ns := testTree(t)
	before := r.Len()

	newID, mapping, err := r.DuplicateBranch(ns["docs"].ID, ns["src"].ID, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Len() != before+3 {
		t.Errorf("len = %d, want %d", r.Len(), before+3)
	}
	if len(mapping) != 3 {
		t.Errorf("mapping has %d entries, want 3", len(mapping))
	}

	clone := r.Find(newID)
	if clone == nil {
		t.Fatal("clone root missing")
	}
	if clone.ParentID != ns["src"].ID {
		t.Errorf("clone parent = %q, want src", clone.ParentID)
	}
	if clone.Name != "docs" {
		t.Errorf("clone name = %q, want original name in conflict-free target", clone.Name)
	}

	// Children were recloned with fresh ids, same names, order preserved.
	kids := r.ChildrenOf(newID)
	if len(kids) != 2 || kids[0].Name != "a" || kids[1].Name != "b" {
		t.Fatalf("clone children = %v", kids)
	}
	for _, k := range kids {
		if k.ID == ns["a"].ID || k.ID == ns["b"].ID {
			t.Error("clone child shares id with original")
		}
	}

	if issues := r.ValidateIntegrity(); len(issues) > 0 {
		t.Errorf("integrity issues after duplicate: %v", issues)
	}
}

func TestDuplicateBranchIntoSameParentGetsCopiaName(t *testing.T) {
	r, ns := testTree(t)

	newID, _, err := r.DuplicateBranch(ns["docs"].ID, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := r.Find(newID).Name; got != "docs (copia)" {
		t.Errorf("clone name = %q, want %q", got, "docs (copia)")
	}
	if r.Find(newID).ParentID != ns["root"].ID {
		t.Error("empty target should default to the source's parent")
	}
}

func TestDuplicateBranchIntoOwnSubtreeFails(t *testing.T) {
	r, ns := testTree(t)
	_, _, err := r.DuplicateBranch(ns["root"].ID, ns["docs"].ID, "")
	if err == nil {
		t.Fatal("expected error duplicating into own subtree")
	}
}

func TestDuplicateThenDeleteIsNeutral(t *testing.T) {
	r, ns := testTree(t)
	before := r.Len()

	newID, _, err := r.DuplicateBranch(ns["docs"].ID, ns["src"].ID, "")
	if err != nil {
		t.Fatalf("duplicate: %v", err)
	}
	if _, err := r.Delete(newID, true); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if r.Len() != before {
		t.Errorf("len = %d, want %d", r.Len(), before)
	}
	if issues := r.ValidateIntegrity(); len(issues) > 0 {
		t.Errorf("integrity issues: %v", issues)
	}
}

func TestDuplicateNodesSkipsNodesInsideClonedBranch(t *testing.T) {
	r, ns := testTree(t)

	// docs and its child a selected together: a must not be cloned twice.
	ids := []string{ns["a"].ID, ns["docs"].ID}
	roots, mapping, err := r.DuplicateNodes(ids, ns["src"].ID, true, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(roots) != 1 {
		t.Errorf("new roots = %d, want 1", len(roots))
	}
	if len(mapping) != 3 {
		t.Errorf("mapping has %d entries, want 3 (docs, a, b)", len(mapping))
	}
}

func TestDuplicateNodesFlat(t *testing.T) {
	r, ns := testTree(t)

	roots, _, err := r.DuplicateNodes([]string{ns["a"].ID, ns["readme"].ID}, ns["src"].ID, true, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(roots) != 2 {
		t.Fatalf("new roots = %d, want 2", len(roots))
	}
	for _, id := range roots {
		if r.Find(id).ParentID != ns["src"].ID {
			t.Error("clone not parented under target")
		}
	}
}

func TestEstimateDuplicationSize(t *testing.T) {
	r, ns := testTree(t)

	est := r.EstimateDuplicationSize([]string{ns["docs"].ID}, true)
	if est.TotalNodes != 3 || est.Folders != 1 || est.Files != 2 {
		t.Errorf("estimate = %+v", est)
	}
	if est.MaxDepth != 1 {
		t.Errorf("max depth = %d, want 1", est.MaxDepth)
	}

	flat := r.EstimateDuplicationSize([]string{ns["docs"].ID}, false)
	if flat.TotalNodes != 1 {
		t.Errorf("flat estimate = %+v", flat)
	}
}

func TestValidateCapacity(t *testing.T) {
	r, ns := testTree(t)

	ok, _ := r.ValidateCapacity(ns["docs"].ID, 1, 10)
	if !ok {
		t.Error("expected capacity for 1 more child")
	}
	ok, reason := r.ValidateCapacity(ns["docs"].ID, 9, 10)
	if ok {
		t.Error("expected capacity rejection")
	}
	if !strings.Contains(reason, "over the limit") {
		t.Errorf("reason = %q", reason)
	}
}
