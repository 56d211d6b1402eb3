package commands

import (
	"context"
	"fmt"
	"strings"

	"treecreator/internal/domain"
)

// StatsCommand summarizes the project tree
type StatsCommand struct {
	project *domain.Project
}

// NewStatsCommand creates a new StatsCommand
func NewStatsCommand(project *domain.Project) *StatsCommand {
	return &StatsCommand{project: project}
}

// Execute computes the statistics. Read-only.
func (c *StatsCommand) Execute(ctx context.Context) (domain.Statistics, error) {
	return c.project.Stats(), nil
}

// FormatStats renders statistics as a printable block
func FormatStats(name string, st domain.Statistics) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Project: %s\n", name)
	fmt.Fprintf(&b, "Nodes:   %d (%d folders, %d files)\n", st.TotalNodes, st.Folders, st.Files)
	fmt.Fprintf(&b, "Depth:   %d\n", st.MaxDepth)
	for _, s := range domain.AllStatuses() {
		if n := st.ByStatus[s]; n > 0 {
			fmt.Fprintf(&b, "%-9s%d\n", s.DisplayText()+":", n)
		}
	}
	return b.String()
}

// ValidateTreeCommand runs the structural integrity checks
type ValidateTreeCommand struct {
	project *domain.Project
}

// NewValidateTreeCommand creates a new ValidateTreeCommand
func NewValidateTreeCommand(project *domain.Project) *ValidateTreeCommand {
	return &ValidateTreeCommand{project: project}
}

// Execute collects every violation; a healthy tree returns nil
func (c *ValidateTreeCommand) Execute(ctx context.Context) ([]string, error) {
	return c.project.Validate(), nil
}
