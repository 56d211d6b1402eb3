package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"treecreator/internal/adapters/tui/styles"
	"treecreator/internal/domain"
)

// DetailKeyMap defines key bindings for the detail view
type DetailKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Edit  key.Binding
	Close key.Binding
}

var DetailKeys = DetailKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Edit: key.NewBinding(
		key.WithKeys("enter", "e"),
		key.WithHelp("enter", "edit in $EDITOR"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("esc", "back"),
	),
}

// detailFields lists the editable fields in display order
var detailFields = []struct {
	name  string
	label string
}{
	{"markdown_short", "Summary"},
	{"explanation", "Explanation"},
	{"code", "Code"},
}

// DetailModel shows one node's fields and hands them to the external editor
type DetailModel struct {
	ViewState
	ctx    *Context
	nodeID string
	cursor int
}

// NewDetailModel creates a new detail view model
func NewDetailModel(ctx *Context) *DetailModel {
	return &DetailModel{ctx: ctx}
}

// SetTarget sets the node being inspected
func (m *DetailModel) SetTarget(nodeID string) {
	m.nodeID = nodeID
	m.cursor = 0
	m.ClearMessage()
}

// Init initializes the detail view
func (m *DetailModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the detail view
func (m *DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, DetailKeys.Close):
			return m, switchTo(SwitchToBrowserMsg{})

		case key.Matches(msg, DetailKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, DetailKeys.Down):
			if m.cursor < len(detailFields)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, DetailKeys.Edit):
			return m, switchTo(EditFieldMsg{
				NodeID: m.nodeID,
				Field:  detailFields[m.cursor].name,
			})
		}
	}

	return m, nil
}

// EditFieldMsg requests editing a node field in the external editor
type EditFieldMsg struct {
	NodeID string
	Field  string
}

func (m *DetailModel) fieldContent(n *domain.Node, field string) string {
	switch field {
	case "markdown_short":
		return n.Fields.MarkdownShort
	case "explanation":
		return n.Fields.Explanation
	case "code":
		return n.Fields.Code
	}
	return ""
}

// View renders the detail view
func (m *DetailModel) View() string {
	n := m.ctx.Project.Registry.Find(m.nodeID)
	if n == nil {
		return styles.App.Render(styles.ErrorMsg.Render("node no longer exists"))
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render(n.DisplayName(true, true)))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(m.ctx.Project.Registry.Path(m.nodeID)))
	b.WriteString("\n\n")

	for i, f := range detailFields {
		label := f.label
		if i == m.cursor {
			b.WriteString(styles.NodeSelected.Render(" " + label + " "))
		} else {
			b.WriteString(styles.InputLabel.Render(label))
		}
		b.WriteString("\n")
		b.WriteString(renderFieldPreview(m.fieldContent(n, f.name)))
		b.WriteString("\n")
	}

	if len(n.Tags) > 0 {
		b.WriteString(styles.InputLabel.Render("Tags"))
		b.WriteString("\n  ")
		b.WriteString(strings.Join(n.Tags, ", "))
		b.WriteString("\n")
	}

	if m.Message != "" {
		b.WriteString("\n")
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
	}

	b.WriteString("\n")
	b.WriteString(RenderHelpLine(DetailKeys.Down, DetailKeys.Edit, DetailKeys.Close))

	return styles.App.Render(b.String())
}

// renderFieldPreview shows the first few lines of a field, indented
func renderFieldPreview(content string) string {
	if content == "" {
		return styles.MutedText.Render("  (empty)") + "\n"
	}
	lines := strings.Split(content, "\n")
	const maxLines = 4
	var b strings.Builder
	for i, line := range lines {
		if i == maxLines {
			b.WriteString(styles.MutedText.Render(fmt.Sprintf("  ... %d more lines", len(lines)-maxLines)))
			b.WriteString("\n")
			break
		}
		b.WriteString("  " + line + "\n")
	}
	return b.String()
}
