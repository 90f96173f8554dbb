package views

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"folderswap/internal/application"
	"folderswap/internal/application/commands"
	"folderswap/internal/domain"
)

const (
	fieldSource = iota
	fieldTarget
)

// DirectoriesModel edits the source and target roots
type DirectoriesModel struct {
	ViewState
	ctx  context.Context
	dirs *application.DirectoryService
	form *InputForm
}

// NewDirectoriesModel creates the directory form
func NewDirectoriesModel(ctx context.Context, dirs *application.DirectoryService) *DirectoriesModel {
	return &DirectoriesModel{
		ctx:  ctx,
		dirs: dirs,
		form: NewInputForm(
			NewInputField("Source directory", "~/projects/archive", 0),
			NewInputField("Target directory", "~/projects/active", 0),
		),
	}
}

// Open fills the form with the current roots
func (m *DirectoriesModel) Open() tea.Cmd {
	pair := m.dirs.Pair()
	m.form.Load(pair.Source, pair.Target)
	m.ClearMessage()
	return m.form.Init()
}

// Init initializes the directory form
func (m *DirectoriesModel) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages for the directory form
func (m *DirectoriesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.form.Keys.Cancel):
			return m, func() tea.Msg { return SwitchToKeywordsMsg{} }
		case key.Matches(keyMsg, m.form.Keys.Submit):
			return m, m.save()
		}
	}

	_, cmd := m.form.Update(msg)
	return m, cmd
}

// save stores each edited root. The first failure keeps the form open with
// the offending field focused.
func (m *DirectoriesModel) save() tea.Cmd {
	fields := []struct {
		index int
		side  domain.Side
	}{
		{fieldSource, domain.SideSource},
		{fieldTarget, domain.SideTarget},
	}

	changed := false
	for _, f := range fields {
		if !m.form.Changed(f.index) {
			continue
		}
		_, err := commands.NewSetDirectoryCommand(m.dirs, f.side.String(), m.form.Value(f.index)).Execute(m.ctx)
		if err != nil {
			m.form.SetFocus(f.index)
			m.SetError(err)
			return nil
		}
		changed = true
	}

	message := ""
	if changed {
		message = "Directories saved"
		if err := m.dirs.Validate(); err != nil {
			message = "Directories saved, but " + err.Error()
		}
	}
	return func() tea.Msg { return SwitchToKeywordsMsg{Message: message} }
}

// View renders the directory form
func (m *DirectoriesModel) View() string {
	return NewViewBuilder().
		Title("Directories").
		Subtitle("Folders are moved between these two directories").
		Line(m.form.View()).
		Message(m.Message, m.MessageKind).
		Help(m.form.Keys.Tab, m.form.Keys.Submit, m.form.Keys.Cancel).
		String()
}
