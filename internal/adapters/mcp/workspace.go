package mcp

import (
	"fmt"
	"sync"

	"treecreator/internal/domain"
	"treecreator/internal/ports"
)

// Workspace holds the live project shared by all MCP tool handlers.
// Write tools persist through the store after every successful mutation,
// so concurrent handlers serialize on the mutex.
type Workspace struct {
	mu      sync.Mutex
	project *domain.Project
	store   ports.ProjectStore
	index   ports.ProjectIndex
}

// NewWorkspace wraps a loaded project with its persistence backends.
// The index may be nil when no search index is configured.
func NewWorkspace(project *domain.Project, store ports.ProjectStore, index ports.ProjectIndex) *Workspace {
	return &Workspace{project: project, store: store, index: index}
}

// persist saves the project and refreshes the search index
func (w *Workspace) persist() error {
	if err := w.store.Save(w.project); err != nil {
		return fmt.Errorf("saving project: %w", err)
	}
	if w.index != nil {
		if err := w.index.Rebuild(w.project.Registry); err != nil {
			return fmt.Errorf("rebuilding index: %w", err)
		}
	}
	return nil
}
