package ports

import "treecreator/internal/domain"

// ProjectStore persists whole projects. Implementations must write
// atomically: a failed save leaves the previous file intact.
type ProjectStore interface {
	// Load reads and decodes the project, migrating older formats.
	Load() (*domain.Project, error)

	// Save encodes and writes the project. When backups are enabled the
	// previous file is rotated aside first.
	Save(p *domain.Project) error

	// Exists reports whether a project file is present.
	Exists() bool

	// Path returns the project file location, for display.
	Path() string

	// Backups lists available backup files, newest first.
	Backups() ([]string, error)
}
