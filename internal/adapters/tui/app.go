package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"treecreator/internal/adapters/editor"
	"treecreator/internal/adapters/tui/views"
	"treecreator/internal/application/commands"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBrowser ViewState = iota
	ViewCreate
	ViewRename
	ViewMove
	ViewDelete
	ViewDetail
	ViewSearch
	ViewHelp
)

// App is the main TUI application model
type App struct {
	ctx    *views.Context
	editor *editor.Opener

	state   ViewState
	browser *views.BrowserModel
	create  *views.CreateModel
	rename  *views.RenameModel
	move    *views.MoveModel
	delete  *views.DeleteModel
	detail  *views.DetailModel
	search  *views.SearchModel
	help    *views.HelpModel

	// session holds the staged field content while the editor runs
	session      *editor.FieldSession
	sessionNode  string
	sessionField string

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(ctx *views.Context, ed *editor.Opener) *App {
	return &App{
		ctx:     ctx,
		editor:  ed,
		state:   ViewBrowser,
		browser: views.NewBrowserModel(ctx),
		create:  views.NewCreateModel(ctx),
		rename:  views.NewRenameModel(ctx),
		move:    views.NewMoveModel(ctx),
		delete:  views.NewDeleteModel(ctx),
		detail:  views.NewDetailModel(ctx),
		search:  views.NewSearchModel(ctx),
		help:    views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.browser.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.browser.SetSize(msg.Width, msg.Height)
		a.create.SetSize(msg.Width, msg.Height)
		a.rename.SetSize(msg.Width, msg.Height)
		a.move.SetSize(msg.Width, msg.Height)
		a.delete.SetSize(msg.Width, msg.Height)
		a.detail.SetSize(msg.Width, msg.Height)
		a.search.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToCreateMsg:
		a.state = ViewCreate
		a.create.SetParent(msg.ParentID)
		return a, a.create.Init()

	case views.SwitchToRenameMsg:
		a.state = ViewRename
		a.rename.SetTarget(msg.NodeID)
		return a, a.rename.Init()

	case views.SwitchToMoveMsg:
		a.state = ViewMove
		a.move.SetSource(msg.NodeID)
		return a, a.move.Init()

	case views.SwitchToDeleteMsg:
		a.state = ViewDelete
		a.delete.SetTarget(msg.NodeID)
		return a, nil

	case views.SwitchToDetailMsg:
		a.state = ViewDetail
		a.detail.SetTarget(msg.NodeID)
		return a, nil

	case views.SwitchToSearchMsg:
		a.state = ViewSearch
		a.search.Reset()
		return a, a.search.Init()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToBrowserMsg:
		a.state = ViewBrowser
		return a, a.browser.Reload()

	// Form view outcomes
	case views.CreateSuccessMsg:
		a.state = ViewBrowser
		return a, a.browser.Reload()

	case views.CreateErrMsg:
		a.create.SetError(msg.Err)
		return a, nil

	case views.MutationDoneMsg:
		a.state = ViewBrowser
		return a, a.browser.Reload()

	case views.MutationErrMsg:
		switch a.state {
		case ViewRename:
			a.rename.SetMessage(msg.Err.Error(), true)
		case ViewMove:
			a.move.SetMessage(msg.Err.Error(), true)
		case ViewDelete:
			a.delete.SetMessage(msg.Err.Error(), true)
		case ViewDetail:
			a.detail.SetMessage(msg.Err.Error(), true)
		}
		return a, nil

	case views.SearchSelectMsg:
		a.state = ViewDetail
		a.detail.SetTarget(msg.NodeID)
		return a, nil

	case views.EditFieldMsg:
		return a, a.openFieldEditor(msg.NodeID, msg.Field)

	case editorFinishedMsg:
		return a, a.finishFieldEdit(msg.err)
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewBrowser:
		_, cmd = a.browser.Update(msg)
	case ViewCreate:
		_, cmd = a.create.Update(msg)
	case ViewRename:
		_, cmd = a.rename.Update(msg)
	case ViewMove:
		_, cmd = a.move.Update(msg)
	case ViewDelete:
		_, cmd = a.delete.Update(msg)
	case ViewDetail:
		_, cmd = a.detail.Update(msg)
	case ViewSearch:
		_, cmd = a.search.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

type editorFinishedMsg struct{ err error }

// openFieldEditor stages the field content and hands the terminal to $EDITOR
func (a *App) openFieldEditor(nodeID, field string) tea.Cmd {
	if a.editor == nil {
		a.detail.SetMessage("no editor configured", true)
		return nil
	}
	n := a.ctx.Project.Registry.Find(nodeID)
	if n == nil {
		a.detail.SetMessage("node no longer exists", true)
		return nil
	}

	content := ""
	switch field {
	case "markdown_short":
		content = n.Fields.MarkdownShort
	case "explanation":
		content = n.Fields.Explanation
	case "code":
		content = n.Fields.Code
	}

	session, err := editor.NewFieldSession(n.Name, field, content)
	if err != nil {
		a.detail.SetMessage(err.Error(), true)
		return nil
	}

	cmd, err := a.editor.Command(session.Path)
	if err != nil {
		session.Cleanup()
		a.detail.SetMessage(err.Error(), true)
		return nil
	}

	a.session = session
	a.sessionNode = nodeID
	a.sessionField = field

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// finishFieldEdit reads the edited content back and applies it
func (a *App) finishFieldEdit(execErr error) tea.Cmd {
	session := a.session
	if session == nil {
		return nil
	}
	a.session = nil
	defer session.Cleanup()

	if execErr != nil {
		a.detail.SetMessage(fmt.Sprintf("editor failed: %v", execErr), true)
		return nil
	}

	content, err := session.Read()
	if err != nil {
		a.detail.SetMessage(err.Error(), true)
		return nil
	}

	cmd := commands.NewEditFieldCommand(a.ctx.Project, a.sessionNode, a.sessionField, content)
	result, err := cmd.Execute(context.Background())
	if err != nil {
		a.detail.SetMessage(err.Error(), true)
		return nil
	}

	a.detail.SetMessage(result.Message, false)
	return nil
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewCreate:
		return a.create.View()
	case ViewRename:
		return a.rename.View()
	case ViewMove:
		return a.move.View()
	case ViewDelete:
		return a.delete.View()
	case ViewDetail:
		return a.detail.View()
	case ViewSearch:
		return a.search.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.browser.View()
	}
}
