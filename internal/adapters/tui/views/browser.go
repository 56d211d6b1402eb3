package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"treecreator/internal/adapters/tui/styles"
	"treecreator/internal/application/commands"
	"treecreator/internal/domain"
)

// BrowserKeyMap defines key bindings for the browser view
type BrowserKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Enter  key.Binding
	Mark   key.Binding
	New    key.Binding
	Rename key.Binding
	Move   key.Binding
	Delete key.Binding
	Status key.Binding
	Edit   key.Binding
	Copy   key.Binding
	Cut    key.Binding
	Paste  key.Binding
	Undo   key.Binding
	Redo   key.Binding
	Save   key.Binding
	YankID key.Binding
	Search key.Binding
	Help   key.Binding
	Clear  key.Binding
	Quit   key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "collapse"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "expand"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "toggle/open"),
	),
	Mark: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "mark"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new"),
	),
	Rename: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "rename"),
	),
	Move: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "move"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Status: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "cycle status"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit fields"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy"),
	),
	Cut: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "cut"),
	),
	Paste: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "paste"),
	),
	Undo: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "undo"),
	),
	Redo: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "redo"),
	),
	Save: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "save"),
	),
	YankID: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "yank id"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Clear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear marks"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// browserRow is one visible line of the tree
type browserRow struct {
	node  *domain.Node
	depth int
}

// BrowserModel is the model for the tree browser view
type BrowserModel struct {
	ctx      *Context
	expanded map[string]bool
	rows     []browserRow
	pager    *Paginator

	width      int
	height     int
	message    string
	messageErr bool
}

// NewBrowserModel creates a new browser model
func NewBrowserModel(ctx *Context) *BrowserModel {
	m := &BrowserModel{
		ctx:      ctx,
		expanded: map[string]bool{domain.RootNodeID: true},
		pager:    NewPaginator(20),
	}
	m.refreshRows()
	return m
}

// Init initializes the browser
func (m *BrowserModel) Init() tea.Cmd {
	return nil
}

type errMsg struct {
	err error
}

type successMsg struct {
	message string
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case errMsg:
		m.message = msg.err.Error()
		m.messageErr = true
		m.refreshRows()
		return m, nil

	case successMsg:
		m.message = msg.message
		m.messageErr = false
		m.refreshRows()
		return m, nil

	case tea.KeyMsg:
		m.message = "" // Clear message on key press

		switch {
		case key.Matches(msg, BrowserKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, BrowserKeys.Up):
			m.pager.CursorUp()
			return m, nil

		case key.Matches(msg, BrowserKeys.Down):
			m.pager.CursorDown()
			return m, nil

		case key.Matches(msg, BrowserKeys.Left):
			if node := m.selectedNode(); node != nil {
				if node.Kind == domain.KindFolder && m.expanded[node.ID] {
					delete(m.expanded, node.ID)
					m.refreshRows()
				} else if node.ParentID != domain.RootNodeID {
					m.moveCursorTo(node.ParentID)
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Right), key.Matches(msg, BrowserKeys.Enter):
			if node := m.selectedNode(); node != nil {
				if node.Kind != domain.KindFolder {
					return m, switchTo(SwitchToDetailMsg{NodeID: node.ID})
				}
				if !m.expanded[node.ID] {
					m.expanded[node.ID] = true
					m.refreshRows()
				} else if key.Matches(msg, BrowserKeys.Enter) {
					delete(m.expanded, node.ID)
					m.refreshRows()
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Mark):
			if node := m.selectedNode(); node != nil {
				return m, m.toggleMark(node.ID)
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Clear):
			m.ctx.Project.Selection.Clear()
			return m, nil

		case key.Matches(msg, BrowserKeys.New):
			parentID := m.targetFolderID()
			return m, switchTo(SwitchToCreateMsg{ParentID: parentID})

		case key.Matches(msg, BrowserKeys.Rename):
			if node := m.selectedNode(); node != nil {
				return m, switchTo(SwitchToRenameMsg{NodeID: node.ID})
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Move):
			if node := m.selectedNode(); node != nil {
				return m, switchTo(SwitchToMoveMsg{NodeID: node.ID})
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Delete):
			if node := m.selectedNode(); node != nil {
				return m, switchTo(SwitchToDeleteMsg{NodeID: node.ID})
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Status):
			if node := m.selectedNode(); node != nil {
				return m, m.cycleStatus(node.ID)
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Edit):
			if node := m.selectedNode(); node != nil {
				return m, switchTo(SwitchToDetailMsg{NodeID: node.ID})
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Copy):
			return m, m.copyNodes()

		case key.Matches(msg, BrowserKeys.Cut):
			return m, m.cutNodes()

		case key.Matches(msg, BrowserKeys.Paste):
			return m, m.pasteNodes()

		case key.Matches(msg, BrowserKeys.Undo):
			return m, m.undo()

		case key.Matches(msg, BrowserKeys.Redo):
			return m, m.redo()

		case key.Matches(msg, BrowserKeys.Save):
			return m, m.save()

		case key.Matches(msg, BrowserKeys.YankID):
			if node := m.selectedNode(); node != nil {
				return m, m.yankID(node.ID)
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Search):
			return m, switchTo(SwitchToSearchMsg{})

		case key.Matches(msg, BrowserKeys.Help):
			return m, switchTo(SwitchToHelpMsg{})
		}
	}

	return m, nil
}

func switchTo(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func (m *BrowserModel) toggleMark(id string) tea.Cmd {
	return func() tea.Msg {
		cmd := commands.NewSelectCommand(m.ctx.Project, commands.SelectModeToggle, id, "")
		result, err := cmd.Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return successMsg{result.Message}
	}
}

func (m *BrowserModel) cycleStatus(id string) tea.Cmd {
	return func() tea.Msg {
		cmd := commands.NewCycleStatusCommand(m.ctx.Project, id)
		result, err := cmd.Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return successMsg{result.Message}
	}
}

// copyNodes stages the marked nodes, or the cursor node when nothing is marked
func (m *BrowserModel) copyNodes() tea.Cmd {
	ids := m.actionIDs()
	return func() tea.Msg {
		cmd := commands.NewCopyNodesCommand(m.ctx.Project, ids)
		result, err := cmd.Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return successMsg{result.Message}
	}
}

func (m *BrowserModel) cutNodes() tea.Cmd {
	ids := m.actionIDs()
	return func() tea.Msg {
		cmd := commands.NewCutNodesCommand(m.ctx.Project, ids)
		result, err := cmd.Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return successMsg{result.Message}
	}
}

func (m *BrowserModel) pasteNodes() tea.Cmd {
	targetID := m.targetFolderID()
	return func() tea.Msg {
		cmd := commands.NewPasteNodesCommand(m.ctx.Project, targetID)
		result, err := cmd.Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return successMsg{result.Message}
	}
}

func (m *BrowserModel) undo() tea.Cmd {
	return func() tea.Msg {
		cmd := commands.NewUndoCommand(m.ctx.Project)
		result, err := cmd.Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return successMsg{result.Message}
	}
}

func (m *BrowserModel) redo() tea.Cmd {
	return func() tea.Msg {
		cmd := commands.NewRedoCommand(m.ctx.Project)
		result, err := cmd.Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return successMsg{result.Message}
	}
}

func (m *BrowserModel) save() tea.Cmd {
	return func() tea.Msg {
		if err := m.ctx.Store.Save(m.ctx.Project); err != nil {
			return errMsg{err}
		}
		if m.ctx.Index != nil {
			if err := m.ctx.Index.Rebuild(m.ctx.Project.Registry); err != nil {
				return errMsg{err}
			}
		}
		return successMsg{fmt.Sprintf("Saved to %s", m.ctx.Store.Path())}
	}
}

func (m *BrowserModel) yankID(id string) tea.Cmd {
	return func() tea.Msg {
		if m.ctx.Clip == nil {
			return errMsg{fmt.Errorf("no system clipboard available")}
		}
		if err := m.ctx.Clip.WriteText(id); err != nil {
			return errMsg{err}
		}
		return successMsg{fmt.Sprintf("Copied %s", id)}
	}
}

// actionIDs returns the marked node IDs, falling back to the cursor node
func (m *BrowserModel) actionIDs() []string {
	if m.ctx.Project.Selection.HasSelection() {
		return m.ctx.Project.Selection.IDs()
	}
	if node := m.selectedNode(); node != nil {
		return []string{node.ID}
	}
	return nil
}

// targetFolderID returns the folder the cursor points at, or the cursor
// node's parent when the cursor is on a file
func (m *BrowserModel) targetFolderID() string {
	node := m.selectedNode()
	if node == nil {
		return domain.RootNodeID
	}
	if node.Kind == domain.KindFolder {
		return node.ID
	}
	return node.ParentID
}

func (m *BrowserModel) selectedNode() *domain.Node {
	cursor := m.pager.Cursor()
	if cursor >= 0 && cursor < len(m.rows) {
		return m.rows[cursor].node
	}
	return nil
}

func (m *BrowserModel) moveCursorTo(id string) {
	for i, row := range m.rows {
		if row.node.ID == id {
			m.pager.SetCursor(i)
			return
		}
	}
}

func (m *BrowserModel) refreshRows() {
	m.rows = flattenTree(m.ctx.Project.Registry, m.expanded)
	m.pager.SetTotal(len(m.rows))
}

// flattenTree lists the visible rows below the root, descending only into
// expanded folders
func flattenTree(r *domain.Registry, expanded map[string]bool) []browserRow {
	var rows []browserRow
	var walk func(id string, depth int)
	walk = func(id string, depth int) {
		for _, child := range r.ChildrenOf(id) {
			rows = append(rows, browserRow{node: child, depth: depth})
			if child.Kind == domain.KindFolder && expanded[child.ID] {
				walk(child.ID, depth+1)
			}
		}
	}
	walk(domain.RootNodeID, 0)
	return rows
}

// View renders the browser
func (m *BrowserModel) View() string {
	var b strings.Builder

	// Title
	title := m.ctx.Project.Meta.Name
	if title == "" {
		title = "TreeCreator"
	}
	b.WriteString(styles.Title.Render(title))
	if m.ctx.Project.Dirty() {
		b.WriteString(" ")
		b.WriteString(styles.DirtyMarker.String())
	}
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(m.subtitle()))
	b.WriteString("\n\n")

	// Tree
	if len(m.rows) == 0 {
		b.WriteString(styles.MutedText.Render("Empty project. Press n to create a node."))
		b.WriteString("\n")
	} else {
		start, end := m.pager.VisibleRange()
		for i := start; i < end; i++ {
			b.WriteString(m.renderRow(m.rows[i], i == m.pager.Cursor()))
			b.WriteString("\n")
		}
		if m.pager.TotalPages() > 1 {
			b.WriteString(styles.MutedText.Render(
				fmt.Sprintf("page %d/%d", m.pager.CurrentPage(), m.pager.TotalPages())))
			b.WriteString("\n")
		}
	}

	// Message
	if m.message != "" {
		b.WriteString("\n")
		b.WriteString(RenderMessage(m.message, m.messageErr))
	}

	// Help line
	b.WriteString("\n")
	b.WriteString(RenderHelpLine(
		BrowserKeys.Down, BrowserKeys.Mark, BrowserKeys.New, BrowserKeys.Status,
		BrowserKeys.Save, BrowserKeys.Search, BrowserKeys.Help, BrowserKeys.Quit,
	))

	return styles.App.Render(b.String())
}

func (m *BrowserModel) subtitle() string {
	st := m.ctx.Project.Registry.Stats()
	parts := fmt.Sprintf("%d folders, %d files", st.Folders, st.Files)
	if count := m.ctx.Project.Selection.Count(); count > 0 {
		parts += fmt.Sprintf(", %d marked", count)
	}
	if !m.ctx.Project.Clipboard.IsEmpty() {
		parts += fmt.Sprintf(", %d on clipboard (%s)",
			len(m.ctx.Project.Clipboard.IDs), m.ctx.Project.Clipboard.Mode)
	}
	return parts
}

func (m *BrowserModel) renderRow(row browserRow, isCursor bool) string {
	indent := strings.Repeat("  ", row.depth)

	// Prefix (expand indicator)
	var prefix string
	switch {
	case row.node.Kind != domain.KindFolder:
		prefix = styles.TreeLeaf
	case m.expanded[row.node.ID]:
		prefix = styles.TreeExpanded
	default:
		prefix = styles.TreeCollapsed
	}

	text := row.node.DisplayName(true, true)

	switch {
	case isCursor:
		text = styles.NodeSelected.Render(text)
	case m.ctx.Project.Selection.IsSelected(row.node.ID):
		text = styles.NodeMarked.Render(text)
	case m.ctx.Project.Clipboard.Contains(row.node.ID) && m.ctx.Project.Clipboard.Mode == domain.ClipboardCut:
		text = styles.NodeCut.Render(text)
	case row.node.Kind == domain.KindFolder:
		text = styles.NodeFolder.Render(text)
	default:
		text = styles.NodeFile.Foreground(styles.StatusColor(row.node.Status)).Render(text)
	}

	return indent + styles.TreeBranch.Render(prefix) + text
}

// SetSize updates the view dimensions
func (m *BrowserModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	// Leave room for the title, subtitle, message, and help chrome
	if rows := height - 9; rows > 4 {
		m.pager.Resize(rows)
	}
}

// Reload rebuilds the visible rows from the registry
func (m *BrowserModel) Reload() tea.Cmd {
	m.refreshRows()
	return nil
}

// Messages for view switching
type SwitchToCreateMsg struct {
	ParentID string
}

type SwitchToRenameMsg struct {
	NodeID string
}

type SwitchToMoveMsg struct {
	NodeID string
}

type SwitchToDeleteMsg struct {
	NodeID string
}

type SwitchToDetailMsg struct {
	NodeID string
}

type SwitchToSearchMsg struct{}

type SwitchToHelpMsg struct{}

type SwitchToBrowserMsg struct{}
