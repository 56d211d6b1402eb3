package filesystem

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"treecreator/internal/domain"
	"treecreator/internal/ports"
)

const maxBackups = 5

// Store implements ports.ProjectStore on a single JSON file. Saves are
// atomic: the document is written to a temp file in the same directory and
// renamed over the target, so a crash mid-write never corrupts the project.
type Store struct {
	path string
}

// Ensure Store implements ProjectStore
var _ ports.ProjectStore = (*Store)(nil)

// NewStore creates a store for the given project file path
func NewStore(path string) *Store {
	// Expand ~ to home directory
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[1:])
	}
	return &Store{path: path}
}

// Path returns the project file location
func (s *Store) Path() string { return s.path }

// Exists reports whether the project file is present
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load reads and decodes the project, migrating older formats. A file with
// integrity violations still loads; the violations are logged and remain
// visible through the project's Validate.
func (s *Store) Load() (*domain.Project, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file: %w", err)
	}
	p, issues, err := domain.DecodeProject(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", s.path, err)
	}
	if len(issues) > 0 {
		log.Printf("loaded %s with %d integrity issues: %s", s.path, len(issues), strings.Join(issues, "; "))
	}
	return p, nil
}

// Save encodes and writes the project atomically. When backups are enabled
// in the project settings the previous file is rotated aside first.
func (s *Store) Save(p *domain.Project) error {
	data, err := domain.EncodeProject(p)
	if err != nil {
		return fmt.Errorf("failed to encode project: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}

	if p.Settings.BackupOnSave && s.Exists() {
		if err := s.rotateBackup(); err != nil {
			return err
		}
	}

	tmp, err := os.CreateTemp(dir, ".treecreator-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write project: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace project file: %w", err)
	}

	p.MarkSaved()
	return nil
}

// rotateBackup copies the current file aside as a timestamped .bak and
// prunes the oldest backups past the retention limit.
func (s *Store) rotateBackup() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("failed to read current file for backup: %w", err)
	}
	stamp := time.Now().UTC().Format("20060102-150405")
	bakPath := fmt.Sprintf("%s.%s.bak", s.path, stamp)
	if err := os.WriteFile(bakPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}

	backups, err := s.Backups()
	if err != nil {
		return err
	}
	for _, old := range backups[min(len(backups), maxBackups):] {
		os.Remove(old)
	}
	return nil
}

// Backups lists available backup files, newest first
func (s *Store) Backups() ([]string, error) {
	matches, err := filepath.Glob(s.path + ".*.bak")
	if err != nil {
		return nil, fmt.Errorf("failed to list backups: %w", err)
	}
	// Timestamped names sort chronologically.
	sort.Sort(sort.Reverse(sort.StringSlice(matches)))
	return matches, nil
}
