package views

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"treecreator/internal/application/commands"
)

// MoveModel is the model for the move view
type MoveModel struct {
	ViewState
	ctx    *Context
	nodeID string
	form   *InputForm
}

// NewMoveModel creates a new move view model
func NewMoveModel(ctx *Context) *MoveModel {
	return &MoveModel{
		ctx: ctx,
		form: NewInputForm(
			NewInputField("Destination folder ID:", "root", 64),
		),
	}
}

// SetSource sets the node being moved
func (m *MoveModel) SetSource(nodeID string) {
	m.nodeID = nodeID
	m.form.Reset()
	m.ClearMessage()
}

// Init initializes the move view
func (m *MoveModel) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages for the move view
func (m *MoveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.form.Keys.Cancel):
			return m, switchTo(SwitchToBrowserMsg{})

		case key.Matches(msg, m.form.Keys.Submit):
			return m, m.move()
		}
	}

	_, cmd := m.form.Update(msg)
	return m, cmd
}

func (m *MoveModel) move() tea.Cmd {
	destID := m.form.Value(0)
	return func() tea.Msg {
		cmd := commands.NewMoveNodeCommand(m.ctx.Project, m.nodeID, destID)
		result, err := cmd.Execute(context.Background())
		if err != nil {
			return MutationErrMsg{Err: err}
		}
		return MutationDoneMsg{Message: result.Message}
	}
}

// View renders the move view
func (m *MoveModel) View() string {
	v := NewViewBuilder()
	v.Title("Move")
	v.Line(RenderTargetInfo(m.ctx.Project.Registry, m.nodeID, "Moving"))
	v.BlankLine()
	v.Subtitle("Tip: yank a folder's ID in the browser with y, then paste it here.")
	v.Line(m.form.RenderField(0))
	v.BlankLine()
	v.Message(m.Message, m.MessageErr)
	v.Raw(m.form.RenderHelp("move"))
	return v.String()
}
