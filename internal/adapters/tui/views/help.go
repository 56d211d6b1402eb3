package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"treecreator/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	width  int
	height int
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, switchTo(SwitchToBrowserMsg{})
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("TreeCreator Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("Project Tree Organizer"))
	b.WriteString("\n\n")

	// Navigation section
	b.WriteString(styles.InputLabel.Render("Navigation"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Move up/down"))
	b.WriteString(helpLine("h / ←", "Collapse / go to parent"))
	b.WriteString(helpLine("l / → / Enter", "Expand folder / open file"))
	b.WriteString(helpLine("space", "Mark/unmark node"))
	b.WriteString(helpLine("esc", "Clear marks"))
	b.WriteString("\n")

	// Tree section
	b.WriteString(styles.InputLabel.Render("Tree"))
	b.WriteString("\n")
	b.WriteString(helpLine("n", "New file/folder"))
	b.WriteString(helpLine("r", "Rename"))
	b.WriteString(helpLine("m", "Move to another folder"))
	b.WriteString(helpLine("d", "Delete (with subtree)"))
	b.WriteString(helpLine("t", "Cycle status"))
	b.WriteString(helpLine("e", "Edit fields in $EDITOR"))
	b.WriteString("\n")

	// Clipboard and history section
	b.WriteString(styles.InputLabel.Render("Clipboard & History"))
	b.WriteString("\n")
	b.WriteString(helpLine("c / x", "Copy / cut marked nodes"))
	b.WriteString(helpLine("p", "Paste into cursor folder"))
	b.WriteString(helpLine("u / Ctrl+R", "Undo / redo"))
	b.WriteString(helpLine("y", "Yank node ID to system clipboard"))
	b.WriteString("\n")

	// General section
	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("w", "Save project"))
	b.WriteString(helpLine("/", "Search"))
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n\n")

	// Status legend
	b.WriteString(styles.InputLabel.Render("Statuses"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  ❌ pending   ⬜ in progress   ✅ completed"))
	b.WriteString("\n\n")

	// Close hint
	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

// SetSize updates the view dimensions
func (m *HelpModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
