package views

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"treecreator/internal/application/commands"
)

// RenameModel is the model for the rename view
type RenameModel struct {
	ViewState
	ctx    *Context
	nodeID string
	form   *InputForm
}

// NewRenameModel creates a new rename view model
func NewRenameModel(ctx *Context) *RenameModel {
	return &RenameModel{
		ctx: ctx,
		form: NewInputForm(
			NewInputField("New name:", "", 100),
		),
	}
}

// SetTarget sets the node being renamed and prefills its current name
func (m *RenameModel) SetTarget(nodeID string) {
	m.nodeID = nodeID
	m.form.Reset()
	if n := m.ctx.Project.Registry.Find(nodeID); n != nil {
		m.form.SetValue(0, n.Name)
	}
	m.ClearMessage()
}

// Init initializes the rename view
func (m *RenameModel) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages for the rename view
func (m *RenameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.form.Keys.Cancel):
			return m, switchTo(SwitchToBrowserMsg{})

		case key.Matches(msg, m.form.Keys.Submit):
			return m, m.rename()
		}
	}

	_, cmd := m.form.Update(msg)
	return m, cmd
}

func (m *RenameModel) rename() tea.Cmd {
	newName := m.form.Value(0)
	return func() tea.Msg {
		cmd := commands.NewRenameNodeCommand(m.ctx.Project, m.nodeID, newName)
		result, err := cmd.Execute(context.Background())
		if err != nil {
			return MutationErrMsg{Err: err}
		}
		return MutationDoneMsg{Message: result.Message}
	}
}

// View renders the rename view
func (m *RenameModel) View() string {
	v := NewViewBuilder()
	v.Title("Rename")
	v.Line(RenderTargetInfo(m.ctx.Project.Registry, m.nodeID, "Renaming"))
	v.BlankLine()
	v.Line(m.form.RenderField(0))
	v.BlankLine()
	v.Message(m.Message, m.MessageErr)
	v.Raw(m.form.RenderHelp("rename"))
	return v.String()
}

// MutationDoneMsg reports a completed tree mutation from a form view
type MutationDoneMsg struct {
	Message string
}

// MutationErrMsg reports a failed tree mutation from a form view
type MutationErrMsg struct {
	Err error
}
