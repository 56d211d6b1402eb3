package domain

import (
	"fmt"
	"time"
)

// DefaultMaxUndoLevels bounds the number of snapshots the history keeps.
const DefaultMaxUndoLevels = 50

// Snapshot is a full deep copy of the tree plus the selection and clipboard
// at one point in time, labelled with the operation that produced the next
// state.
type Snapshot struct {
	Label     string
	TakenAt   time.Time
	nodes     map[string]*Node
	selection selectionState
	clipboard clipboardState
}

type selectionState struct {
	ids     []string
	primary string
	kind    SelectionType
}

func captureSelection(s *Selection) selectionState {
	return selectionState{ids: s.IDs(), primary: s.Primary, kind: s.Type}
}

func (st selectionState) restore(s *Selection) {
	s.ids = make(map[string]bool, len(st.ids))
	for _, id := range st.ids {
		s.ids[id] = true
	}
	s.Primary = st.primary
	s.Type = st.kind
}

type clipboardState struct {
	ids          []string
	mode         ClipboardMode
	sourceParent string
	stagedAt     time.Time
}

func captureClipboard(c *Clipboard) clipboardState {
	return clipboardState{
		ids:          append([]string(nil), c.IDs...),
		mode:         c.Mode,
		sourceParent: c.SourceParentID,
		stagedAt:     c.StagedAt,
	}
}

func (st clipboardState) restore(c *Clipboard) {
	c.IDs = append([]string(nil), st.ids...)
	c.Mode = st.mode
	c.SourceParentID = st.sourceParent
	c.StagedAt = st.stagedAt
}

// History implements undo and redo as a bounded list of snapshots with a
// cursor. A new snapshot taken while the cursor is not at the end truncates
// the redo branch.
type History struct {
	snapshots []Snapshot
	cursor    int
	maxLevels int
}

// NewHistory creates a history bounded to maxLevels snapshots. A
// non-positive limit falls back to DefaultMaxUndoLevels.
func NewHistory(maxLevels int) *History {
	if maxLevels <= 0 {
		maxLevels = DefaultMaxUndoLevels
	}
	return &History{cursor: -1, maxLevels: maxLevels}
}

// CanUndo reports whether an undo step is available.
func (h *History) CanUndo() bool { return h.cursor > 0 }

// CanRedo reports whether a redo step is available.
func (h *History) CanRedo() bool { return h.cursor >= 0 && h.cursor < len(h.snapshots)-1 }

// Len returns the number of stored snapshots.
func (h *History) Len() int { return len(h.snapshots) }

// Labels returns the snapshot labels oldest first, for history listings.
func (h *History) Labels() []string {
	out := make([]string, len(h.snapshots))
	for i, s := range h.snapshots {
		out[i] = s.Label
	}
	return out
}

// Clear drops every snapshot.
func (h *History) Clear() {
	h.snapshots = nil
	h.cursor = -1
}

// Record takes a snapshot of the registry, selection and clipboard labelled
// with the operation that just ran. The owner records a baseline right after
// creating or loading the tree, so the cursor always points at the snapshot
// matching the live state. Undoing past a point becomes impossible once its
// snapshot ages out of the level limit.
func (h *History) Record(label string, r *Registry, sel *Selection, clip *Clipboard) {
	if h.cursor < len(h.snapshots)-1 {
		h.snapshots = h.snapshots[:h.cursor+1]
	}
	h.snapshots = append(h.snapshots, Snapshot{
		Label:     label,
		TakenAt:   time.Now(),
		nodes:     snapshotNodes(r),
		selection: captureSelection(sel),
		clipboard: captureClipboard(clip),
	})
	if len(h.snapshots) > h.maxLevels {
		h.snapshots = h.snapshots[1:]
	}
	h.cursor = len(h.snapshots) - 1
}

// syncDerived folds the live selection and clipboard into the snapshot at
// the cursor. Selection and clipboard change without a history record of
// their own; syncing just before a new record or an undo step keeps the
// stored pre-mutation state complete.
func (h *History) syncDerived(sel *Selection, clip *Clipboard) {
	if h.cursor < 0 || h.cursor >= len(h.snapshots) {
		return
	}
	h.snapshots[h.cursor].selection = captureSelection(sel)
	h.snapshots[h.cursor].clipboard = captureClipboard(clip)
}

// Undo restores the previous snapshot into the registry, selection and
// clipboard and returns its label.
func (h *History) Undo(r *Registry, sel *Selection, clip *Clipboard) (string, error) {
	if !h.CanUndo() {
		return "", fmt.Errorf("nothing to undo")
	}
	h.syncDerived(sel, clip)
	h.cursor--
	h.restore(r, sel, clip)
	return h.snapshots[h.cursor+1].Label, nil
}

// Redo reapplies the snapshot undone last and returns its label.
func (h *History) Redo(r *Registry, sel *Selection, clip *Clipboard) (string, error) {
	if !h.CanRedo() {
		return "", fmt.Errorf("nothing to redo")
	}
	h.cursor++
	h.restore(r, sel, clip)
	return h.snapshots[h.cursor].Label, nil
}

func (h *History) restore(r *Registry, sel *Selection, clip *Clipboard) {
	snap := h.snapshots[h.cursor]
	restoreNodes(r, snap.nodes)
	snap.selection.restore(sel)
	snap.clipboard.restore(clip)
}

func snapshotNodes(r *Registry) map[string]*Node {
	out := make(map[string]*Node, r.Len())
	for _, n := range r.All() {
		out[n.ID] = n.deepCopy()
	}
	return out
}

func restoreNodes(r *Registry, nodes map[string]*Node) {
	fresh := make(map[string]*Node, len(nodes))
	for id, n := range nodes {
		fresh[id] = n.deepCopy()
	}
	r.nodes = fresh
}
