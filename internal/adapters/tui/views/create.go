package views

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"treecreator/internal/adapters/tui/styles"
	"treecreator/internal/application/commands"
	"treecreator/internal/domain"
)

// CreateKeyMap defines key bindings for the create view
type CreateKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
	Kind   key.Binding
}

var CreateKeys = CreateKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "create"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Kind: key.NewBinding(
		key.WithKeys("ctrl+k"),
		key.WithHelp("ctrl+k", "toggle kind"),
	),
}

// CreateModel is the model for the create view
type CreateModel struct {
	ViewState
	ctx      *Context
	parentID string
	kind     domain.Kind
	form     *InputForm
}

// NewCreateModel creates a new create view model
func NewCreateModel(ctx *Context) *CreateModel {
	return &CreateModel{
		ctx:  ctx,
		kind: domain.KindFile,
		form: NewInputForm(
			NewInputField("Name:", "chapter-01.md", 100),
		),
	}
}

// SetParent sets the folder the new node is created under
func (m *CreateModel) SetParent(parentID string) {
	m.parentID = parentID
	m.kind = domain.KindFile
	m.form.Reset()
	m.ClearMessage()
}

// Init initializes the create view
func (m *CreateModel) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages for the create view
func (m *CreateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, CreateKeys.Cancel):
			return m, switchTo(SwitchToBrowserMsg{})

		case key.Matches(msg, CreateKeys.Kind):
			if m.kind == domain.KindFile {
				m.kind = domain.KindFolder
			} else {
				m.kind = domain.KindFile
			}
			return m, nil

		case key.Matches(msg, CreateKeys.Submit):
			return m, m.create()
		}
	}

	_, cmd := m.form.Update(msg)
	return m, cmd
}

func (m *CreateModel) create() tea.Cmd {
	name := m.form.Value(0)
	return func() tea.Msg {
		cmd := commands.NewCreateNodeCommand(m.ctx.Project, name, m.kind, m.parentID)
		result, err := cmd.Execute(context.Background())
		if err != nil {
			return CreateErrMsg{Err: err}
		}
		return CreateSuccessMsg{Message: result.Message}
	}
}

// CreateSuccessMsg indicates successful creation
type CreateSuccessMsg struct {
	Message string
}

// CreateErrMsg indicates an error during creation
type CreateErrMsg struct {
	Err error
}

// View renders the create view
func (m *CreateModel) View() string {
	v := NewViewBuilder()

	if m.kind == domain.KindFolder {
		v.Title("Create Folder")
	} else {
		v.Title("Create File")
	}

	parent := m.parentID
	if parent == "" {
		parent = domain.RootNodeID
	}
	v.Line(RenderLabelValue("Parent", m.ctx.Project.Registry.Path(parent)))
	v.Line(RenderLabelValue("Kind", string(m.kind)+"  "+styles.MutedText.Render("(ctrl+k to toggle)")))
	v.BlankLine()

	v.Line(m.form.RenderField(0))
	v.BlankLine()

	v.Message(m.Message, m.MessageErr)

	v.Raw(fmt.Sprintf("%s  %s",
		m.form.RenderHelp("create"),
		styles.HelpKey.Render("ctrl+k")+" "+styles.HelpDesc.Render("toggle kind"),
	))

	return v.String()
}

// SetError shows a creation error in the view
func (m *CreateModel) SetError(err error) {
	m.SetMessage(err.Error(), true)
}
