package ports

import "treecreator/internal/domain"

// SearchHit is one row returned by an index query.
type SearchHit struct {
	NodeID  string
	Name    string
	Kind    domain.Kind
	Status  domain.Status
	Path    string
	Snippet string
}

// ProjectIndex is a queryable cache over a project tree, rebuilt from the
// in-memory registry after mutations. The registry stays the source of
// truth; queries never mutate the tree.
type ProjectIndex interface {
	Open(projectPath string) error
	Close() error

	// Rebuild replaces the entire index with the registry's current state.
	Rebuild(r *domain.Registry) error

	// Search matches names, tags and editor field content.
	Search(query string) ([]SearchHit, error)

	// ByStatus lists nodes carrying the given status.
	ByStatus(status domain.Status) ([]SearchHit, error)

	// ByTag lists nodes carrying the given tag.
	ByTag(tag string) ([]SearchHit, error)
}
