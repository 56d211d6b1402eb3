package domain

import (
	"fmt"
	"sort"
)

// Registry is the in-memory store owning every Node, keyed by id. Selection,
// Clipboard and History hold only id references into it. All operations keep
// both sides of the parent/child link consistent before returning.
type Registry struct {
	nodes map[string]*Node
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{nodes: make(map[string]*Node)}
}

// Save upserts a node and returns it.
func (r *Registry) Save(n *Node) *Node {
	r.nodes[n.ID] = n
	return n
}

// rekey changes a node's id and rewrites every reference to it.
func (r *Registry) rekey(oldID, newID string) {
	n := r.nodes[oldID]
	if n == nil {
		return
	}
	delete(r.nodes, oldID)
	n.ID = newID
	r.nodes[newID] = n
	for _, other := range r.nodes {
		if other.ParentID == oldID {
			other.ParentID = newID
		}
		for i, c := range other.ChildrenIDs {
			if c == oldID {
				other.ChildrenIDs[i] = newID
			}
		}
	}
}

// Find returns the node with the given id, or nil.
func (r *Registry) Find(id string) *Node {
	return r.nodes[id]
}

// Has reports whether a node with the given id exists.
func (r *Registry) Has(id string) bool {
	_, ok := r.nodes[id]
	return ok
}

// Len returns the number of stored nodes.
func (r *Registry) Len() int { return len(r.nodes) }

// All returns every stored node, ordered by id for deterministic iteration.
func (r *Registry) All() []*Node {
	out := make([]*Node, 0, len(r.nodes))
	for _, n := range r.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// IDs returns every stored id, sorted.
func (r *Registry) IDs() []string {
	out := make([]string, 0, len(r.nodes))
	for id := range r.nodes {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Roots returns all parentless nodes. Rendering assumes a single conventional
// root, but the data model tolerates several.
func (r *Registry) Roots() []*Node {
	var out []*Node
	for _, n := range r.All() {
		if n.ParentID == "" {
			out = append(out, n)
		}
	}
	return out
}

// ChildrenOf returns the direct children of a node in display order,
// skipping dangling ids.
func (r *Registry) ChildrenOf(id string) []*Node {
	n := r.Find(id)
	if n == nil {
		return nil
	}
	out := make([]*Node, 0, len(n.ChildrenIDs))
	for _, cid := range n.ChildrenIDs {
		if c := r.Find(cid); c != nil {
			out = append(out, c)
		}
	}
	return out
}

// Descendants returns every descendant of a node, breadth-first.
func (r *Registry) Descendants(id string) []*Node {
	var out []*Node
	seen := map[string]bool{id: true}
	queue := append([]string(nil), r.childIDs(id)...)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if seen[cur] {
			continue // corrupted data guard
		}
		seen[cur] = true
		n := r.Find(cur)
		if n == nil {
			continue
		}
		out = append(out, n)
		queue = append(queue, n.ChildrenIDs...)
	}
	return out
}

func (r *Registry) childIDs(id string) []string {
	if n := r.Find(id); n != nil {
		return n.ChildrenIDs
	}
	return nil
}

// WalkPreOrder visits a node and then its descendants, children in display
// order. The walk stops when fn returns false.
func (r *Registry) WalkPreOrder(id string, fn func(*Node) bool) {
	r.walkPre(id, fn, make(map[string]bool))
}

func (r *Registry) walkPre(id string, fn func(*Node) bool, seen map[string]bool) bool {
	if seen[id] {
		return true // corrupted data guard
	}
	seen[id] = true
	n := r.Find(id)
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, cid := range n.ChildrenIDs {
		if !r.walkPre(cid, fn, seen) {
			return false
		}
	}
	return true
}

// WalkPostOrder visits a node's descendants before the node itself.
func (r *Registry) WalkPostOrder(id string, fn func(*Node) bool) {
	r.walkPost(id, fn, make(map[string]bool))
}

func (r *Registry) walkPost(id string, fn func(*Node) bool, seen map[string]bool) bool {
	if seen[id] {
		return true
	}
	seen[id] = true
	n := r.Find(id)
	if n == nil {
		return true
	}
	for _, cid := range n.ChildrenIDs {
		if !r.walkPost(cid, fn, seen) {
			return false
		}
	}
	return fn(n)
}

// WalkBreadthFirst visits a node and its descendants level by level.
func (r *Registry) WalkBreadthFirst(id string, fn func(*Node) bool) {
	seen := make(map[string]bool)
	queue := []string{id}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if seen[cur] {
			continue
		}
		seen[cur] = true
		n := r.Find(cur)
		if n == nil {
			continue
		}
		if !fn(n) {
			return
		}
		queue = append(queue, n.ChildrenIDs...)
	}
}

// Depth returns the number of ancestors above a node. A root has depth 0.
// The walk carries a visited set so corrupted data cannot loop it.
func (r *Registry) Depth(id string) int {
	depth := 0
	seen := map[string]bool{id: true}
	n := r.Find(id)
	for n != nil && n.ParentID != "" {
		if seen[n.ParentID] {
			break
		}
		seen[n.ParentID] = true
		n = r.Find(n.ParentID)
		depth++
	}
	return depth
}

// IsDescendant reports whether id is a descendant of ancestorID, by walking
// the parent chain upward. A visited set guards against pre-existing cycles
// in corrupted data.
func (r *Registry) IsDescendant(id, ancestorID string) bool {
	seen := make(map[string]bool)
	cur := id
	for cur != "" {
		if seen[cur] {
			return false
		}
		seen[cur] = true
		n := r.Find(cur)
		if n == nil {
			return false
		}
		if n.ParentID == ancestorID {
			return true
		}
		cur = n.ParentID
	}
	return false
}

// PathComponents returns the node names from the root down to the node.
func (r *Registry) PathComponents(id string) []string {
	var rev []string
	seen := make(map[string]bool)
	cur := id
	for cur != "" && !seen[cur] {
		seen[cur] = true
		n := r.Find(cur)
		if n == nil {
			break
		}
		rev = append(rev, n.Name)
		cur = n.ParentID
	}
	out := make([]string, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		out = append(out, rev[i])
	}
	return out
}

// Path returns the slash-separated path of a node from its root.
func (r *Registry) Path(id string) string {
	comps := r.PathComponents(id)
	out := ""
	for i, c := range comps {
		if i > 0 {
			out += "/"
		}
		out += c
	}
	return out
}

// Attach links a node under a folder, updating both sides of the link. The
// parent must exist and be a folder.
func (r *Registry) Attach(n *Node, parentID string) error {
	parent := r.Find(parentID)
	if parent == nil {
		return fmt.Errorf("parent %s does not exist", parentID)
	}
	if !parent.IsFolder() {
		return fmt.Errorf("parent %s is not a folder", parentID)
	}
	n.ParentID = parentID
	r.Save(n)
	parent.AddChild(n.ID)
	return nil
}

// Delete removes a node. It detaches the node from its parent's children
// list and, when recursive, deletes every descendant depth-first. Deleting a
// folder that still has children with recursive unset fails; children are
// never silently orphaned. Returns whether the target existed.
func (r *Registry) Delete(id string, recursive bool) (bool, error) {
	n := r.Find(id)
	if n == nil {
		return false, nil
	}
	if !recursive && n.HasChildren() {
		return true, fmt.Errorf("node %s is not empty", id)
	}
	if recursive {
		for _, cid := range append([]string(nil), n.ChildrenIDs...) {
			if _, err := r.Delete(cid, true); err != nil {
				return true, err
			}
		}
	}
	if parent := r.Find(n.ParentID); parent != nil {
		parent.RemoveChild(id)
	}
	delete(r.nodes, id)
	return true, nil
}

// ValidateIntegrity checks the registry-level invariants and returns every
// violation found: dangling parent references, parents that are not folders,
// dangling or self-referential children entries, asymmetric links, and
// cycles in the parent chain. It never stops at the first problem.
func (r *Registry) ValidateIntegrity() []string {
	var errs []string
	for _, n := range r.All() {
		if n.ParentID != "" {
			parent := r.Find(n.ParentID)
			switch {
			case parent == nil:
				errs = append(errs, fmt.Sprintf("node %s references missing parent %s", n.ID, n.ParentID))
			case !parent.IsFolder():
				errs = append(errs, fmt.Sprintf("node %s has non-folder parent %s", n.ID, n.ParentID))
			default:
				linked := false
				for _, cid := range parent.ChildrenIDs {
					if cid == n.ID {
						linked = true
						break
					}
				}
				if !linked {
					errs = append(errs, fmt.Sprintf("node %s is not listed among children of parent %s", n.ID, n.ParentID))
				}
			}
		}
		for _, cid := range n.ChildrenIDs {
			if cid == n.ID {
				errs = append(errs, fmt.Sprintf("node %s lists itself as a child", n.ID))
				continue
			}
			child := r.Find(cid)
			if child == nil {
				errs = append(errs, fmt.Sprintf("node %s references missing child %s", n.ID, cid))
			} else if child.ParentID != n.ID {
				errs = append(errs, fmt.Sprintf("child %s of node %s records parent %q", cid, n.ID, child.ParentID))
			}
		}
		if cycle := r.parentChainCycle(n.ID); cycle {
			errs = append(errs, fmt.Sprintf("node %s is part of a parent-chain cycle", n.ID))
		}
	}
	return errs
}

func (r *Registry) parentChainCycle(id string) bool {
	seen := make(map[string]bool)
	cur := id
	for cur != "" {
		if seen[cur] {
			return true
		}
		seen[cur] = true
		n := r.Find(cur)
		if n == nil {
			return false
		}
		cur = n.ParentID
	}
	return false
}

// Statistics summarizes registry contents for stats displays.
type Statistics struct {
	TotalNodes int
	Files      int
	Folders    int
	ByStatus   map[Status]int
	MaxDepth   int
}

// Stats computes node counts by kind and status and the maximum tree depth.
func (r *Registry) Stats() Statistics {
	stats := Statistics{ByStatus: make(map[Status]int)}
	for _, n := range r.All() {
		stats.TotalNodes++
		if n.IsFolder() {
			stats.Folders++
		} else {
			stats.Files++
		}
		stats.ByStatus[n.Status]++
		if d := r.Depth(n.ID); d > stats.MaxDepth {
			stats.MaxDepth = d
		}
	}
	return stats
}
