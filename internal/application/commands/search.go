package commands

import (
	"context"
	"sort"
	"strings"

	"treecreator/internal/domain"
	"treecreator/internal/ports"
)

// SearchResult wraps an index hit with a relevance score
type SearchResult struct {
	ports.SearchHit
	Score int
}

// SearchCommand searches the project with fuzzy matching. When an index is
// available it supplies the candidate rows; otherwise the registry is
// scanned directly.
type SearchCommand struct {
	project *domain.Project
	index   ports.ProjectIndex
	Query   string
}

// NewSearchCommand creates a new SearchCommand. index may be nil.
func NewSearchCommand(project *domain.Project, index ports.ProjectIndex, query string) *SearchCommand {
	return &SearchCommand{
		project: project,
		index:   index,
		Query:   query,
	}
}

// Execute runs the search command and returns scored, sorted results
func (c *SearchCommand) Execute(ctx context.Context) ([]SearchResult, error) {
	if len(c.Query) < 2 {
		return nil, nil
	}

	var hits []ports.SearchHit
	if c.index != nil {
		var err error
		hits, err = c.index.Search(c.Query)
		if err != nil {
			return nil, err
		}
	} else {
		hits = c.scanRegistry()
	}

	return FuzzySort(hits, c.Query), nil
}

// scanRegistry is the index-free fallback: every node whose name, tags or
// field content mentions the query becomes a candidate.
func (c *SearchCommand) scanRegistry() []ports.SearchHit {
	q := strings.ToLower(c.Query)
	var hits []ports.SearchHit
	for _, n := range c.project.Registry.All() {
		fields := []string{
			n.Name,
			n.Fields.MarkdownShort,
			n.Fields.Explanation,
			n.Fields.Code,
			strings.Join(n.Tags, " "),
		}
		snippet := ""
		for _, f := range fields {
			if f != "" && strings.Contains(strings.ToLower(f), q) {
				snippet = firstLineOf(f)
				break
			}
		}
		if snippet == "" && !fuzzyContains(strings.ToLower(strings.Join(fields, "\n")), q) {
			continue
		}
		if snippet == "" {
			snippet = n.Fields.MarkdownShort
		}
		hits = append(hits, ports.SearchHit{
			NodeID:  n.ID,
			Name:    n.Name,
			Kind:    n.Kind,
			Status:  n.Status,
			Path:    c.project.Registry.Path(n.ID),
			Snippet: snippet,
		})
	}
	return hits
}

func firstLineOf(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// fuzzyContains reports whether the query's characters appear in order.
func fuzzyContains(target, query string) bool {
	idx := 0
	for i := 0; i < len(target) && idx < len(query); i++ {
		if target[i] == query[idx] {
			idx++
		}
	}
	return idx == len(query)
}

// FuzzyScore calculates a relevance score for how well target matches query
func FuzzyScore(target, query string) int {
	target = strings.ToLower(target)
	query = strings.ToLower(query)

	if len(query) == 0 {
		return 0
	}

	// Check for exact substring match first (highest priority)
	if strings.Contains(target, query) {
		score := 100
		// Bonus if it starts with query
		if strings.HasPrefix(target, query) {
			score += 50
		}
		return score
	}

	// Fuzzy match: check if chars appear in order
	score := 0
	queryIdx := 0
	prevMatchIdx := -1

	for i := 0; i < len(target) && queryIdx < len(query); i++ {
		if target[i] == query[queryIdx] {
			if prevMatchIdx == i-1 {
				score += 10 // consecutive chars
			}
			if i == 0 {
				score += 15 // start of string
			}
			if i > 0 && (target[i-1] == ' ' || target[i-1] == '.' || target[i-1] == '-') {
				score += 10 // after separator
			}
			score += 1
			prevMatchIdx = i
			queryIdx++
		}
	}

	if queryIdx == len(query) {
		return score
	}
	return 0
}

// FuzzySort sorts search hits by relevance to the query
func FuzzySort(hits []ports.SearchHit, query string) []SearchResult {
	scored := make([]SearchResult, 0, len(hits))

	for _, h := range hits {
		s1 := FuzzyScore(h.Name, query)
		s2 := FuzzyScore(h.Path, query)
		s3 := FuzzyScore(h.Snippet, query)

		best := max(s1, s2, s3)

		if best > 0 {
			scored = append(scored, SearchResult{
				SearchHit: h,
				Score:     best,
			})
		}
	}

	// Sort by score descending
	sort.Slice(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}
