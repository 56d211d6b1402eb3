package domain

import (
	"fmt"
	"time"
)

// FormatVersion is the serialization format written by this version.
const FormatVersion = "4.0"

// ProjectMeta describes the project itself.
type ProjectMeta struct {
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Author      string    `json:"author,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	ModifiedAt  time.Time `json:"modified_at"`
}

// Settings holds per-project tunables.
type Settings struct {
	MaxUndoLevels int  `json:"max_undo_levels"`
	MaxChildren   int  `json:"max_children"`
	BackupOnSave  bool `json:"backup_on_save"`
}

// DefaultSettings returns the settings a fresh project starts with.
func DefaultSettings() Settings {
	return Settings{
		MaxUndoLevels: DefaultMaxUndoLevels,
		MaxChildren:   DefaultMaxChildren,
		BackupOnSave:  true,
	}
}

// Project is the aggregate root: the node registry plus selection, clipboard
// and undo history, under one metadata record. Every mutation goes through a
// Project method so a history snapshot is taken and the modified timestamp
// kept current.
type Project struct {
	Meta      ProjectMeta
	Settings  Settings
	Registry  *Registry
	Selection *Selection
	Clipboard *Clipboard
	History   *History

	dirty bool
}

// NewProject creates a project with a single root folder and a baseline
// history snapshot.
func NewProject(name string) *Project {
	now := time.Now().UTC()
	p := &Project{
		Meta: ProjectMeta{
			Name:       name,
			CreatedAt:  now,
			ModifiedAt: now,
		},
		Settings:  DefaultSettings(),
		Registry:  NewRegistry(),
		Selection: NewSelection(),
		Clipboard: NewClipboard(),
	}
	p.History = NewHistory(p.Settings.MaxUndoLevels)
	p.Registry.Save(NewRootNode(name))
	p.History.Record("init", p.Registry, p.Selection, p.Clipboard)
	return p
}

// AssembleProject wraps an already-populated registry, as after a load. The
// history baseline is the loaded state.
func AssembleProject(meta ProjectMeta, settings Settings, r *Registry) *Project {
	if settings.MaxUndoLevels <= 0 {
		settings = DefaultSettings()
	}
	p := &Project{
		Meta:      meta,
		Settings:  settings,
		Registry:  r,
		Selection: NewSelection(),
		Clipboard: NewClipboard(),
		History:   NewHistory(settings.MaxUndoLevels),
	}
	p.History.Record("load", p.Registry, p.Selection, p.Clipboard)
	return p
}

// Root returns the project's root node.
func (p *Project) Root() *Node { return p.Registry.Find(RootNodeID) }

// Dirty reports whether the project has unsaved changes.
func (p *Project) Dirty() bool { return p.dirty }

// MarkSaved clears the dirty flag after a successful persist.
func (p *Project) MarkSaved() { p.dirty = false }

// committed finalizes a mutation: the pre-mutation snapshot picks up any
// selection or clipboard changes made since it was recorded, then the
// derived state is pruned against the mutated registry and a new snapshot
// is taken.
func (p *Project) committed(label string) {
	p.History.syncDerived(p.Selection, p.Clipboard)
	p.Selection.Prune(p.Registry)
	p.pruneClipboard()
	p.Meta.ModifiedAt = time.Now().UTC()
	p.dirty = true
	p.History.Record(label, p.Registry, p.Selection, p.Clipboard)
}

// CreateNode creates a node under a parent folder, resolving name conflicts
// among the new siblings, and returns its id.
func (p *Project) CreateNode(name string, kind Kind, parentID string) (string, error) {
	if parentID == "" {
		parentID = RootNodeID
	}
	if !p.Registry.Has(parentID) {
		return "", fmt.Errorf("parent %s does not exist", parentID)
	}
	resolved := p.Registry.ResolveNameConflict(name, parentID)
	var n *Node
	var err error
	if kind == KindFolder {
		n, err = NewFolderNode(resolved, parentID)
	} else {
		n, err = NewFileNode(resolved, parentID)
	}
	if err != nil {
		return "", err
	}
	if err := p.Registry.Attach(n, parentID); err != nil {
		return "", err
	}
	p.committed("create " + resolved)
	return n.ID, nil
}

// CreateTemplateNode creates a node from a named template under the given
// parent and records a history snapshot. The kind is derived from the name.
func (p *Project) CreateTemplateNode(templateType, name, parentID string) (string, error) {
	if parentID == "" {
		parentID = RootNodeID
	}
	if !p.Registry.Has(parentID) {
		return "", fmt.Errorf("parent %s does not exist", parentID)
	}
	resolved := p.Registry.ResolveNameConflict(name, parentID)
	n, err := NewTemplateNode(templateType, resolved, parentID)
	if err != nil {
		return "", err
	}
	if err := p.Registry.Attach(n, parentID); err != nil {
		return "", err
	}
	p.committed("create " + resolved)
	return n.ID, nil
}

// RenameNode renames a node. The root keeps the project's name and cannot be
// renamed directly.
func (p *Project) RenameNode(id, newName string) error {
	if id == RootNodeID {
		return fmt.Errorf("cannot rename the root node")
	}
	n := p.Registry.Find(id)
	if n == nil {
		return fmt.Errorf("node %s does not exist", id)
	}
	if err := n.Rename(newName); err != nil {
		return err
	}
	p.committed("rename " + newName)
	return nil
}

// SetStatus sets a node's progress status.
func (p *Project) SetStatus(id string, status Status) error {
	n := p.Registry.Find(id)
	if n == nil {
		return fmt.Errorf("node %s does not exist", id)
	}
	n.SetStatus(status)
	p.committed("status " + n.Name)
	return nil
}

// CycleStatus advances a node through the status cycle and returns the new
// status.
func (p *Project) CycleStatus(id string) (Status, error) {
	n := p.Registry.Find(id)
	if n == nil {
		return StatusNone, fmt.Errorf("node %s does not exist", id)
	}
	next := NextStatus(n.Status)
	n.SetStatus(next)
	p.committed("status " + n.Name)
	return next, nil
}

// EditField writes one of the node's editable fields.
func (p *Project) EditField(id, field, content string) error {
	n := p.Registry.Find(id)
	if n == nil {
		return fmt.Errorf("node %s does not exist", id)
	}
	if err := n.EditField(field, content); err != nil {
		return err
	}
	p.committed("edit " + field + " of " + n.Name)
	return nil
}

// AddComment attaches a dated comment to a node and returns the comment id.
func (p *Project) AddComment(id, text, author string) (string, error) {
	n := p.Registry.Find(id)
	if n == nil {
		return "", fmt.Errorf("node %s does not exist", id)
	}
	commentID := n.AddComment(text, author)
	p.committed("comment on " + n.Name)
	return commentID, nil
}

// MoveNode moves a node under a new parent folder.
func (p *Project) MoveNode(id, newParentID string) error {
	if id == RootNodeID {
		return fmt.Errorf("cannot move the root node")
	}
	if err := p.Registry.Move(id, newParentID); err != nil {
		return err
	}
	p.committed("move " + id)
	return nil
}

// DuplicateBranch clones a node and its whole subtree and returns the clone
// root id.
func (p *Project) DuplicateBranch(id, targetParentID, newName string) (string, error) {
	if id == RootNodeID {
		return "", fmt.Errorf("cannot duplicate the root node")
	}
	newID, _, err := p.Registry.DuplicateBranch(id, targetParentID, newName)
	if err != nil {
		return "", err
	}
	p.committed("duplicate " + id)
	return newID, nil
}

// DuplicateSelection clones every selected node into the target folder.
func (p *Project) DuplicateSelection(targetParentID string) ([]string, error) {
	ids := p.Selection.IDs()
	if len(ids) == 0 {
		return nil, fmt.Errorf("nothing selected")
	}
	newIDs, _, err := p.Registry.DuplicateNodes(ids, targetParentID, true, true)
	if err != nil {
		return nil, err
	}
	p.committed(fmt.Sprintf("duplicate %d nodes", len(ids)))
	return newIDs, nil
}

// DeleteNode removes a node. Non-recursive deletion of a non-empty folder
// fails. The root cannot be deleted. The selection and clipboard drop the
// removed ids.
func (p *Project) DeleteNode(id string, recursive bool) error {
	if id == RootNodeID {
		return fmt.Errorf("cannot delete the root node")
	}
	n := p.Registry.Find(id)
	if n == nil {
		return fmt.Errorf("node %s does not exist", id)
	}
	name := n.Name
	deleted, err := p.Registry.Delete(id, recursive)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("node %s does not exist", id)
	}
	p.committed("delete " + name)
	return nil
}

// DeleteSelection removes every selected node, deepest first so parents are
// still present when their descendants go.
func (p *Project) DeleteSelection(recursive bool) (int, error) {
	ids := p.Selection.IDs()
	if len(ids) == 0 {
		return 0, fmt.Errorf("nothing selected")
	}
	for _, id := range ids {
		if id == RootNodeID {
			return 0, fmt.Errorf("cannot delete the root node")
		}
	}
	removed := 0
	for _, id := range ids {
		if !p.Registry.Has(id) {
			continue
		}
		if _, err := p.Registry.Delete(id, recursive); err != nil {
			return removed, err
		}
		removed++
	}
	p.committed(fmt.Sprintf("delete %d nodes", removed))
	return removed, nil
}

// CopySelection stages the selected ids for a copy paste.
func (p *Project) CopySelection() error {
	return p.Clipboard.Copy(p.Selection.IDs(), p.Registry)
}

// CutSelection stages the selected ids for a move paste.
func (p *Project) CutSelection() error {
	return p.Clipboard.Cut(p.Selection.IDs(), p.Registry)
}

// Paste applies the staged clipboard operation into the target folder.
func (p *Project) Paste(targetParentID string) ([]string, error) {
	ids, err := p.Clipboard.Paste(targetParentID, p.Registry)
	if err != nil {
		return nil, err
	}
	p.committed(fmt.Sprintf("paste %d nodes", len(ids)))
	return ids, nil
}

// Undo restores the registry, selection and clipboard to the state before
// the last mutation and returns its label.
func (p *Project) Undo() (string, error) {
	label, err := p.History.Undo(p.Registry, p.Selection, p.Clipboard)
	if err != nil {
		return "", err
	}
	p.Meta.ModifiedAt = time.Now().UTC()
	p.dirty = true
	return label, nil
}

// Redo reapplies the last undone mutation, restoring all three state parts,
// and returns its label.
func (p *Project) Redo() (string, error) {
	label, err := p.History.Redo(p.Registry, p.Selection, p.Clipboard)
	if err != nil {
		return "", err
	}
	p.Meta.ModifiedAt = time.Now().UTC()
	p.dirty = true
	return label, nil
}

func (p *Project) pruneClipboard() {
	if p.Clipboard.IsEmpty() {
		return
	}
	live := p.Clipboard.liveIDs(p.Registry)
	if len(live) == 0 {
		p.Clipboard.Clear()
		return
	}
	p.Clipboard.IDs = live
}

// Validate runs the structural integrity checks over the whole tree.
func (p *Project) Validate() []string {
	issues := p.Registry.ValidateIntegrity()
	if p.Root() == nil {
		issues = append(issues, "root node is missing")
	}
	return issues
}

// Stats summarizes the project tree.
func (p *Project) Stats() Statistics {
	return p.Registry.Stats()
}
