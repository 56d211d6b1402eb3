package domain

import (
	"fmt"
	"time"
)

// ClipboardMode distinguishes a copy from a cut.
type ClipboardMode string

const (
	ClipboardCopy ClipboardMode = "copy"
	ClipboardCut  ClipboardMode = "cut"
)

// Clipboard holds node ids staged for a paste. Ids are weak references into
// the registry; a paste skips ids that have disappeared since the copy.
// SourceParentID is recorded only when exactly one node is staged, so a UI
// can offer "paste back where it came from".
type Clipboard struct {
	IDs            []string
	Mode           ClipboardMode
	SourceParentID string
	StagedAt       time.Time
}

// NewClipboard creates an empty clipboard.
func NewClipboard() *Clipboard {
	return &Clipboard{}
}

// IsEmpty reports whether the clipboard holds anything.
func (c *Clipboard) IsEmpty() bool { return len(c.IDs) == 0 }

// Contains reports whether a node id is staged.
func (c *Clipboard) Contains(id string) bool {
	for _, staged := range c.IDs {
		if staged == id {
			return true
		}
	}
	return false
}

// Clear empties the clipboard.
func (c *Clipboard) Clear() {
	c.IDs = nil
	c.Mode = ""
	c.SourceParentID = ""
	c.StagedAt = time.Time{}
}

// Copy stages node ids for duplication on paste. The root node cannot be
// staged.
func (c *Clipboard) Copy(ids []string, r *Registry) error {
	return c.stage(ids, ClipboardCopy, r)
}

// Cut stages node ids for relocation on paste.
func (c *Clipboard) Cut(ids []string, r *Registry) error {
	return c.stage(ids, ClipboardCut, r)
}

func (c *Clipboard) stage(ids []string, mode ClipboardMode, r *Registry) error {
	if len(ids) == 0 {
		return fmt.Errorf("nothing to %s", mode)
	}
	staged := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == RootNodeID {
			return fmt.Errorf("cannot %s the root node", mode)
		}
		staged = append(staged, id)
	}
	c.IDs = staged
	c.Mode = mode
	c.SourceParentID = ""
	if len(staged) == 1 {
		if n := r.Find(staged[0]); n != nil {
			c.SourceParentID = n.ParentID
		}
	}
	c.StagedAt = time.Now()
	return nil
}

// Paste applies the staged operation against a target folder. Copy clones
// the staged branches into the target and leaves the clipboard intact so
// repeated pastes produce repeated copies. Cut moves the staged nodes and
// clears the clipboard. Returns the ids now living under the target: clone
// roots for a copy, the moved ids for a cut.
func (c *Clipboard) Paste(targetParentID string, r *Registry) ([]string, error) {
	if c.IsEmpty() {
		return nil, fmt.Errorf("clipboard is empty")
	}
	target := r.Find(targetParentID)
	if target == nil {
		return nil, fmt.Errorf("target %s does not exist", targetParentID)
	}
	if !target.IsFolder() {
		return nil, fmt.Errorf("target %s is not a folder", targetParentID)
	}

	switch c.Mode {
	case ClipboardCopy:
		newIDs, _, err := r.DuplicateNodes(c.liveIDs(r), targetParentID, true, true)
		if err != nil {
			return nil, err
		}
		return newIDs, nil
	case ClipboardCut:
		moved := make([]string, 0, len(c.IDs))
		for _, id := range c.liveIDs(r) {
			if id == targetParentID || r.IsDescendant(targetParentID, id) {
				return nil, fmt.Errorf("cannot move %s into its own subtree", id)
			}
			if err := r.Move(id, targetParentID); err != nil {
				return nil, err
			}
			moved = append(moved, id)
		}
		c.Clear()
		return moved, nil
	default:
		return nil, fmt.Errorf("unknown clipboard mode %q", c.Mode)
	}
}

// liveIDs filters the staged ids down to those still present.
func (c *Clipboard) liveIDs(r *Registry) []string {
	out := make([]string, 0, len(c.IDs))
	for _, id := range c.IDs {
		if r.Has(id) {
			out = append(out, id)
		}
	}
	return out
}
