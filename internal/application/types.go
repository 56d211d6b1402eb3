package application

import "treecreator/internal/domain"

// Re-export domain types for use by adapters
type (
	Node       = domain.Node
	Kind       = domain.Kind
	Status     = domain.Status
	Project    = domain.Project
	Statistics = domain.Statistics
)

const (
	KindFile   = domain.KindFile
	KindFolder = domain.KindFolder
)

// ParseKind normalizes a kind string
func ParseKind(s string) Kind {
	return domain.ParseKind(s)
}

// ParseStatus normalizes a status value, glyph, or synonym
func ParseStatus(s string) Status {
	return domain.ParseStatus(s)
}
