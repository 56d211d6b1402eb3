package domain

import (
	"fmt"
	"sort"
	"time"
)

// DefaultMaxChildren is the soft ceiling on children per folder used by
// ValidateCapacity when the caller does not configure one.
const DefaultMaxChildren = 1000

// nameConflictAttempts bounds the "(copia N)" retry loop before falling back
// to a timestamp suffix.
const nameConflictAttempts = 1000

// Move re-parents a node under a new folder. It fails, leaving the registry
// untouched, when either id is missing, the destination is not a folder, or
// the destination is the node itself or one of its descendants.
func (r *Registry) Move(nodeID, newParentID string) error {
	n := r.Find(nodeID)
	if n == nil {
		return fmt.Errorf("node %s does not exist", nodeID)
	}
	newParent := r.Find(newParentID)
	if newParent == nil {
		return fmt.Errorf("destination %s does not exist", newParentID)
	}
	if !newParent.IsFolder() {
		return fmt.Errorf("destination %s is not a folder", newParentID)
	}
	if nodeID == newParentID {
		return fmt.Errorf("cannot move a node into itself")
	}
	if r.IsDescendant(newParentID, nodeID) {
		return fmt.Errorf("cannot move a node into its own descendant")
	}

	if oldParent := r.Find(n.ParentID); oldParent != nil {
		oldParent.RemoveChild(nodeID)
	}
	n.ParentID = newParentID
	newParent.AddChild(nodeID)
	n.Touch()
	return nil
}

// siblingNames collects the names of a folder's direct children.
func (r *Registry) siblingNames(parentID string) map[string]bool {
	names := make(map[string]bool)
	for _, c := range r.ChildrenOf(parentID) {
		names[c.Name] = true
	}
	return names
}

// ResolveNameConflict returns a name unique among the children of the target
// folder. A conflicting name gets " (copia)", then " (copia 2)" and so on;
// past the attempt bound a timestamp suffix is the escape valve for
// pathological inputs.
func (r *Registry) ResolveNameConflict(name, targetParentID string) string {
	existing := r.siblingNames(targetParentID)
	if !existing[name] {
		return name
	}
	for i := 1; i <= nameConflictAttempts; i++ {
		var candidate string
		if i == 1 {
			candidate = name + " (copia)"
		} else {
			candidate = fmt.Sprintf("%s (copia %d)", name, i)
		}
		if !existing[candidate] {
			return candidate
		}
	}
	return fmt.Sprintf("%s (%d)", name, time.Now().UnixNano())
}

// DuplicateBranch recursively clones a node and all of its descendants into
// targetParentID (the original's own parent when empty), assigning fresh ids
// throughout and preserving child order. Only the clone's root receives
// newName (or the conflict-resolved default); descendants keep their names.
// Returns the new root id and the old-id to new-id mapping.
func (r *Registry) DuplicateBranch(nodeID, targetParentID, newName string) (string, map[string]string, error) {
	src := r.Find(nodeID)
	if src == nil {
		return "", nil, fmt.Errorf("node %s does not exist", nodeID)
	}
	if targetParentID == "" {
		targetParentID = src.ParentID
	}
	target := r.Find(targetParentID)
	if target == nil {
		return "", nil, fmt.Errorf("destination %s does not exist", targetParentID)
	}
	if !target.IsFolder() {
		return "", nil, fmt.Errorf("destination %s is not a folder", targetParentID)
	}
	if targetParentID == nodeID || r.IsDescendant(targetParentID, nodeID) {
		return "", nil, fmt.Errorf("cannot duplicate a node into itself")
	}

	if newName == "" {
		newName = r.ResolveNameConflict(src.Name, targetParentID)
	}

	mapping := make(map[string]string)
	rootID := r.cloneSubtree(src, targetParentID, newName, mapping)
	return rootID, mapping, nil
}

// cloneSubtree clones a node under parentID and recurses over its children,
// recording every old→new id pair in mapping.
func (r *Registry) cloneSubtree(src *Node, parentID, name string, mapping map[string]string) string {
	clone := src.Clone(name, false)
	clone.ParentID = parentID
	r.Save(clone)
	if parent := r.Find(parentID); parent != nil {
		parent.AddChild(clone.ID)
	}
	mapping[src.ID] = clone.ID

	for _, cid := range src.ChildrenIDs {
		child := r.Find(cid)
		if child == nil {
			continue
		}
		r.cloneSubtree(child, clone.ID, child.Name, mapping)
	}
	return clone.ID
}

// DuplicateNodes batch-duplicates several nodes into a target folder. With
// preserveHierarchy set, nodes are processed in ascending depth order and a
// node already cloned as part of an ancestor's branch is skipped rather than
// cloned twice. With autoResolveNames set, each new root's name goes through
// the conflict policy. Returns the ids of the new subtree roots and the full
// id mapping.
func (r *Registry) DuplicateNodes(nodeIDs []string, targetParentID string, preserveHierarchy, autoResolveNames bool) ([]string, map[string]string, error) {
	target := r.Find(targetParentID)
	if target == nil {
		return nil, nil, fmt.Errorf("destination %s does not exist", targetParentID)
	}
	if !target.IsFolder() {
		return nil, nil, fmt.Errorf("destination %s is not a folder", targetParentID)
	}
	for _, id := range nodeIDs {
		if !r.Has(id) {
			continue
		}
		if targetParentID == id || r.IsDescendant(targetParentID, id) {
			return nil, nil, fmt.Errorf("cannot duplicate node %s into itself", id)
		}
	}

	ordered := make([]string, 0, len(nodeIDs))
	for _, id := range nodeIDs {
		if r.Has(id) {
			ordered = append(ordered, id)
		}
	}
	if preserveHierarchy {
		sort.SliceStable(ordered, func(i, j int) bool {
			return r.Depth(ordered[i]) < r.Depth(ordered[j])
		})
	}

	var newRoots []string
	mapping := make(map[string]string)
	for _, id := range ordered {
		if _, done := mapping[id]; done {
			continue // already cloned inside an ancestor's branch
		}
		src := r.Find(id)
		if src == nil {
			continue
		}
		name := src.Name
		if autoResolveNames {
			name = r.ResolveNameConflict(name, targetParentID)
		}
		if src.IsFolder() && preserveHierarchy {
			newID := r.cloneSubtree(src, targetParentID, name, mapping)
			newRoots = append(newRoots, newID)
		} else {
			clone := src.Clone(name, false)
			clone.ParentID = targetParentID
			r.Save(clone)
			target.AddChild(clone.ID)
			mapping[id] = clone.ID
			newRoots = append(newRoots, clone.ID)
		}
	}
	return newRoots, mapping, nil
}

// DuplicationEstimate summarizes the size of a pending duplication for
// pre-flight confirmation.
type DuplicationEstimate struct {
	TotalNodes int
	Files      int
	Folders    int
	MaxDepth   int
}

// EstimateDuplicationSize counts the nodes a duplication would create.
// Read-only; includeRecursive counts whole branches rather than just the
// listed nodes.
func (r *Registry) EstimateDuplicationSize(nodeIDs []string, includeRecursive bool) DuplicationEstimate {
	est := DuplicationEstimate{}
	count := func(n *Node, depth int) {
		est.TotalNodes++
		if n.IsFolder() {
			est.Folders++
		} else {
			est.Files++
		}
		if depth > est.MaxDepth {
			est.MaxDepth = depth
		}
	}
	for _, id := range nodeIDs {
		n := r.Find(id)
		if n == nil {
			continue
		}
		count(n, 0)
		if !includeRecursive {
			continue
		}
		base := r.Depth(id)
		for _, d := range r.Descendants(id) {
			count(d, r.Depth(d.ID)-base)
		}
	}
	return est
}

// ValidateCapacity checks whether adding nodes to a folder would push it
// past the child-count ceiling. Soft guard only: the caller decides whether
// to warn or reject.
func (r *Registry) ValidateCapacity(targetParentID string, additional, maxChildren int) (bool, string) {
	if maxChildren <= 0 {
		maxChildren = DefaultMaxChildren
	}
	target := r.Find(targetParentID)
	if target == nil {
		return false, fmt.Sprintf("destination %s does not exist", targetParentID)
	}
	total := len(target.ChildrenIDs) + additional
	if total > maxChildren {
		return false, fmt.Sprintf("folder %q would hold %d children, over the limit of %d", target.Name, total, maxChildren)
	}
	return true, ""
}
