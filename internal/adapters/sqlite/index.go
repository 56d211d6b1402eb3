package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"treecreator/internal/domain"
	"treecreator/internal/ports"

	_ "github.com/mattn/go-sqlite3"
)

const schemaVersion = "1"

// Index implements ports.ProjectIndex using SQLite
type Index struct {
	db     *sql.DB
	dbPath string
}

// Ensure Index implements ProjectIndex
var _ ports.ProjectIndex = (*Index)(nil)

// NewIndex creates a new SQLite index
func NewIndex() *Index {
	return &Index{}
}

// Open initializes the index database next to the project file
func (idx *Index) Open(projectPath string) error {
	// Expand ~ in path
	if len(projectPath) > 0 && projectPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		projectPath = filepath.Join(home, projectPath[1:])
	}

	idx.dbPath = databasePath(projectPath)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(idx.dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite3", idx.dbPath+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	idx.db = db

	// Performance pragmas + schema in single batch (reduces round-trips)
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA cache_size = -64000;
		PRAGMA temp_store = MEMORY;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS nodes (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			kind TEXT NOT NULL,
			status TEXT NOT NULL,
			path TEXT NOT NULL,
			content TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS tags (
			node_id TEXT NOT NULL,
			tag TEXT NOT NULL,
			PRIMARY KEY (node_id, tag)
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_nodes_status ON nodes(status);
		CREATE INDEX IF NOT EXISTS idx_tags_tag ON tags(tag);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	_, err = db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// databasePath places the index beside the project file, hidden.
func databasePath(projectPath string) string {
	dir := filepath.Dir(projectPath)
	base := filepath.Base(projectPath)
	return filepath.Join(dir, "."+base+".index.db")
}

// Close closes the database connection
func (idx *Index) Close() error {
	if idx.db != nil {
		return idx.db.Close()
	}
	return nil
}

// Rebuild replaces the entire index with the registry's current state in
// one transaction
func (idx *Index) Rebuild(r *domain.Registry) error {
	tx, err := idx.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin rebuild: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM nodes`); err != nil {
		return fmt.Errorf("failed to clear nodes: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM tags`); err != nil {
		return fmt.Errorf("failed to clear tags: %w", err)
	}

	nodeStmt, err := tx.Prepare(`INSERT INTO nodes (id, name, kind, status, path, content) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer nodeStmt.Close()
	tagStmt, err := tx.Prepare(`INSERT INTO tags (node_id, tag) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare tag insert: %w", err)
	}
	defer tagStmt.Close()

	for _, n := range r.All() {
		content := strings.Join([]string{n.Fields.MarkdownShort, n.Fields.Explanation, n.Fields.Code}, "\n")
		if _, err := nodeStmt.Exec(n.ID, n.Name, string(n.Kind), string(n.Status), r.Path(n.ID), content); err != nil {
			return fmt.Errorf("failed to index node %s: %w", n.ID, err)
		}
		for _, tag := range n.Tags {
			if _, err := tagStmt.Exec(n.ID, tag); err != nil {
				return fmt.Errorf("failed to index tag %s: %w", tag, err)
			}
		}
	}

	return tx.Commit()
}

// Search matches names, paths and editor field content with a LIKE query
func (idx *Index) Search(query string) ([]ports.SearchHit, error) {
	pattern := "%" + escapeLike(query) + "%"
	rows, err := idx.db.Query(`
		SELECT id, name, kind, status, path, substr(content, 1, 120)
		FROM nodes
		WHERE name LIKE ? ESCAPE '\' OR path LIKE ? ESCAPE '\' OR content LIKE ? ESCAPE '\'
		ORDER BY path`, pattern, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("search query failed: %w", err)
	}
	defer rows.Close()
	return scanHits(rows)
}

// ByStatus lists nodes carrying the given status
func (idx *Index) ByStatus(status domain.Status) ([]ports.SearchHit, error) {
	rows, err := idx.db.Query(`
		SELECT id, name, kind, status, path, substr(content, 1, 120)
		FROM nodes WHERE status = ? ORDER BY path`, string(status))
	if err != nil {
		return nil, fmt.Errorf("status query failed: %w", err)
	}
	defer rows.Close()
	return scanHits(rows)
}

// ByTag lists nodes carrying the given tag
func (idx *Index) ByTag(tag string) ([]ports.SearchHit, error) {
	rows, err := idx.db.Query(`
		SELECT n.id, n.name, n.kind, n.status, n.path, substr(n.content, 1, 120)
		FROM nodes n JOIN tags t ON t.node_id = n.id
		WHERE t.tag = ? ORDER BY n.path`, tag)
	if err != nil {
		return nil, fmt.Errorf("tag query failed: %w", err)
	}
	defer rows.Close()
	return scanHits(rows)
}

func scanHits(rows *sql.Rows) ([]ports.SearchHit, error) {
	var hits []ports.SearchHit
	for rows.Next() {
		var h ports.SearchHit
		var kind, status string
		if err := rows.Scan(&h.NodeID, &h.Name, &kind, &status, &h.Path, &h.Snippet); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		h.Kind = domain.Kind(kind)
		h.Status = domain.Status(status)
		h.Snippet = strings.TrimSpace(h.Snippet)
		hits = append(hits, h)
	}
	return hits, rows.Err()
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
