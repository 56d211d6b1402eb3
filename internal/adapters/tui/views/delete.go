package views

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"treecreator/internal/adapters/tui/styles"
	"treecreator/internal/application/commands"
	"treecreator/internal/domain"
)

// DeleteModel is the model for the delete confirmation view
type DeleteModel struct {
	ConfirmationModel
	ctx *Context
}

// NewDeleteModel creates a new delete view model
func NewDeleteModel(ctx *Context) *DeleteModel {
	return &DeleteModel{
		ConfirmationModel: NewConfirmationModel(),
		ctx:               ctx,
	}
}

// Init initializes the delete view
func (m *DeleteModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the delete view
func (m *DeleteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg,
			func() tea.Msg { return m.doDelete() },
			func() tea.Msg { return SwitchToBrowserMsg{} },
		)
		if handled {
			return m, cmd
		}
	}

	return m, nil
}

func (m *DeleteModel) doDelete() tea.Msg {
	cmd := commands.NewDeleteNodeCommand(m.ctx.Project, m.TargetID, true)
	result, err := cmd.Execute(context.Background())
	if err != nil {
		return MutationErrMsg{Err: err}
	}
	return MutationDoneMsg{Message: result.Message}
}

// subtreeSize counts the node and its descendants
func (m *DeleteModel) subtreeSize() int {
	return 1 + len(m.ctx.Project.Registry.Descendants(m.TargetID))
}

// View renders the delete confirmation view
func (m *DeleteModel) View() string {
	v := NewViewBuilder()
	v.Title("Delete Confirmation")
	v.Line(styles.Subtitle.Render("The deletion can be undone with u in the browser."))
	v.BlankLine()
	v.Line(RenderTargetInfo(m.ctx.Project.Registry, m.TargetID, "Delete"))
	v.BlankLine()

	n := m.ctx.Project.Registry.Find(m.TargetID)
	if n != nil && n.Kind == domain.KindFolder && len(n.ChildrenIDs) > 0 {
		v.Muted(fmt.Sprintf("  The whole subtree goes with it (%d nodes).", m.subtreeSize()))
		v.BlankLine()
	}

	v.Message(m.Message, m.MessageErr)
	v.Raw(RenderConfirmPrompt("Are you sure?"))
	return v.String()
}
