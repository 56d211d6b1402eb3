package commands

import (
	"context"
	"fmt"
	"strings"

	"treecreator/internal/application"
	"treecreator/internal/domain"
)

// ListChildrenCommand lists the direct children of a folder
type ListChildrenCommand struct {
	project  *domain.Project
	ParentID string
}

// NewListChildrenCommand creates a new ListChildrenCommand. An empty parent
// ID targets the root.
func NewListChildrenCommand(project *domain.Project, parentID string) *ListChildrenCommand {
	return &ListChildrenCommand{project: project, ParentID: parentID}
}

// Execute runs the list command
func (c *ListChildrenCommand) Execute(ctx context.Context) ([]*domain.Node, error) {
	parentID := c.ParentID
	if parentID == "" {
		parentID = domain.RootNodeID
	}
	if !c.project.Registry.Has(parentID) {
		return nil, &application.ValidationError{
			Field:   "parentID",
			Message: fmt.Sprintf("node %s does not exist", parentID),
		}
	}
	return c.project.Registry.ChildrenOf(parentID), nil
}

// OutlineLine is one rendered row of a tree outline
type OutlineLine struct {
	NodeID string
	Depth  int
	Text   string
}

// OutlineCommand renders the tree as an indented outline, children in
// display order
type OutlineCommand struct {
	project *domain.Project
	RootID  string
	// ShowStatus appends each node's status glyph
	ShowStatus bool
}

// NewOutlineCommand creates a new OutlineCommand. An empty root ID renders
// the whole tree.
func NewOutlineCommand(project *domain.Project, rootID string, showStatus bool) *OutlineCommand {
	return &OutlineCommand{project: project, RootID: rootID, ShowStatus: showStatus}
}

// Execute renders the outline
func (c *OutlineCommand) Execute(ctx context.Context) ([]OutlineLine, error) {
	rootID := c.RootID
	if rootID == "" {
		rootID = domain.RootNodeID
	}
	if !c.project.Registry.Has(rootID) {
		return nil, &application.ValidationError{
			Field:   "nodeID",
			Message: fmt.Sprintf("node %s does not exist", rootID),
		}
	}

	base := c.project.Registry.Depth(rootID)
	var lines []OutlineLine
	c.project.Registry.WalkPreOrder(rootID, func(n *domain.Node) bool {
		depth := c.project.Registry.Depth(n.ID) - base
		lines = append(lines, OutlineLine{
			NodeID: n.ID,
			Depth:  depth,
			Text:   strings.Repeat("  ", depth) + n.DisplayName(true, c.ShowStatus),
		})
		return true
	})
	return lines, nil
}

// RenderOutline joins outline lines into a printable block
func RenderOutline(lines []OutlineLine) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l.Text)
		b.WriteByte('\n')
	}
	return b.String()
}
