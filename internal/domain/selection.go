package domain

import (
	"fmt"
	"sort"
)

// SelectionType describes how the current selection was built.
type SelectionType string

const (
	SelectionSingle   SelectionType = "single"
	SelectionMultiple SelectionType = "multiple"
	SelectionRange    SelectionType = "range"
)

// Selection tracks the currently selected node ids plus one primary id. The
// ids are weak references into a Registry: deletions must be followed by
// Prune so the selection never points at a missing node.
type Selection struct {
	ids     map[string]bool
	Primary string
	Type    SelectionType
}

// NewSelection creates an empty selection.
func NewSelection() *Selection {
	return &Selection{ids: make(map[string]bool), Type: SelectionSingle}
}

// IsSelected reports whether a node id is selected.
func (s *Selection) IsSelected(id string) bool { return s.ids[id] }

// Count returns the number of selected ids.
func (s *Selection) Count() int { return len(s.ids) }

// HasSelection reports whether anything is selected.
func (s *Selection) HasSelection() bool { return len(s.ids) > 0 }

// IDs returns the selected ids, sorted for deterministic iteration.
func (s *Selection) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.ids = make(map[string]bool)
	s.Primary = ""
	s.Type = SelectionSingle
}

func (s *Selection) deriveType() {
	if s.Type == SelectionRange && len(s.ids) > 1 {
		return
	}
	if len(s.ids) > 1 {
		s.Type = SelectionMultiple
	} else {
		s.Type = SelectionSingle
	}
}

// SelectSingle replaces the selection with exactly one node, the primary.
func (s *Selection) SelectSingle(id string) {
	s.Clear()
	s.Add(id, true)
}

// Add selects a node. The first added node, or one added with makePrimary,
// becomes the primary selection.
func (s *Selection) Add(id string, makePrimary bool) {
	s.ids[id] = true
	if makePrimary || s.Primary == "" {
		s.Primary = id
	}
	s.deriveType()
}

// Remove deselects a node. If it was primary, another selected id takes
// over.
func (s *Selection) Remove(id string) {
	delete(s.ids, id)
	if s.Primary == id {
		s.Primary = ""
		for _, rest := range s.IDs() {
			s.Primary = rest
			break
		}
	}
	s.deriveType()
}

// Toggle flips a node's selected state.
func (s *Selection) Toggle(id string) {
	if s.IsSelected(id) {
		s.Remove(id)
	} else {
		s.Add(id, false)
	}
}

// SelectRange selects the inclusive span between two siblings in their
// parent's display order. The two nodes must share a parent; otherwise the
// selection is left unchanged and an error describes why.
func (s *Selection) SelectRange(startID, endID string, r *Registry) error {
	start := r.Find(startID)
	end := r.Find(endID)
	if start == nil || end == nil {
		return fmt.Errorf("range endpoints must exist")
	}
	if start.ParentID != end.ParentID {
		return fmt.Errorf("range endpoints must be siblings")
	}

	var siblings []string
	if start.ParentID != "" {
		parent := r.Find(start.ParentID)
		if parent == nil {
			return fmt.Errorf("parent %s does not exist", start.ParentID)
		}
		siblings = parent.ChildrenIDs
	} else {
		for _, root := range r.Roots() {
			siblings = append(siblings, root.ID)
		}
	}

	startIdx, endIdx := -1, -1
	for i, id := range siblings {
		if id == startID {
			startIdx = i
		}
		if id == endID {
			endIdx = i
		}
	}
	if startIdx < 0 || endIdx < 0 {
		return fmt.Errorf("range endpoints not found among siblings")
	}
	lo, hi := startIdx, endIdx
	if lo > hi {
		lo, hi = hi, lo
	}

	s.Clear()
	s.Type = SelectionRange
	for i := lo; i <= hi; i++ {
		s.Add(siblings[i], i == startIdx)
	}
	return nil
}

// SelectBranch selects a node and all of its descendants, the branch root as
// primary.
func (s *Selection) SelectBranch(rootID string, r *Registry) error {
	if !r.Has(rootID) {
		return fmt.Errorf("node %s does not exist", rootID)
	}
	s.Clear()
	r.WalkPreOrder(rootID, func(n *Node) bool {
		s.Add(n.ID, n.ID == rootID)
		return true
	})
	return nil
}

// SelectChildren selects the direct children of a folder.
func (s *Selection) SelectChildren(parentID string, r *Registry) error {
	if !r.Has(parentID) {
		return fmt.Errorf("node %s does not exist", parentID)
	}
	s.Clear()
	for _, c := range r.ChildrenOf(parentID) {
		s.Add(c.ID, false)
	}
	return nil
}

// SelectByKind selects every node of the given kind, optionally scoped to a
// subtree rooted at scopeParentID.
func (s *Selection) SelectByKind(kind Kind, scopeParentID string, r *Registry) {
	s.Clear()
	if scopeParentID != "" {
		r.WalkPreOrder(scopeParentID, func(n *Node) bool {
			if n.Kind == kind {
				s.Add(n.ID, false)
			}
			return true
		})
		return
	}
	for _, n := range r.All() {
		if n.Kind == kind {
			s.Add(n.ID, false)
		}
	}
}

// SelectByStatus selects every node with the given status.
func (s *Selection) SelectByStatus(status Status, r *Registry) {
	s.Clear()
	for _, n := range r.All() {
		if n.Status == status {
			s.Add(n.ID, false)
		}
	}
}

// Invert complements the selection against the full registry.
func (s *Selection) Invert(r *Registry) {
	current := s.ids
	s.Clear()
	for _, id := range r.IDs() {
		if !current[id] {
			s.Add(id, false)
		}
	}
}

// Prune drops selected ids that no longer exist in the registry. Called
// after every deletion; selection never blocks a delete.
func (s *Selection) Prune(r *Registry) {
	for id := range s.ids {
		if !r.Has(id) {
			s.Remove(id)
		}
	}
}

// SelectionStats summarizes a selection by kind and status.
type SelectionStats struct {
	Total      int
	Files      int
	Folders    int
	Completed  int
	InProgress int
	Pending    int
}

// Stats computes counts over the selected nodes that still exist.
func (s *Selection) Stats(r *Registry) SelectionStats {
	var st SelectionStats
	for id := range s.ids {
		n := r.Find(id)
		if n == nil {
			continue
		}
		st.Total++
		if n.IsFolder() {
			st.Folders++
		} else {
			st.Files++
		}
		switch n.Status {
		case StatusCompleted:
			st.Completed++
		case StatusInProgress:
			st.InProgress++
		case StatusPending:
			st.Pending++
		}
	}
	return st
}
