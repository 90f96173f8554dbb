package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"folderswap/internal/adapters/tui/styles"
)

// ConfirmKeyMap defines key bindings for confirmation prompts
type ConfirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultConfirmKeys returns the default confirmation key bindings
var DefaultConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

// ConfirmationModel is an inline yes/no prompt about one subject
type ConfirmationModel struct {
	Subject string
	Action  string
	Keys    ConfirmKeyMap
	active  bool
}

// NewConfirmationModel creates a new confirmation model with default keys
func NewConfirmationModel() ConfirmationModel {
	return ConfirmationModel{
		Keys: DefaultConfirmKeys,
	}
}

// Ask opens the prompt for subject
func (m *ConfirmationModel) Ask(action, subject string) {
	m.Action = action
	m.Subject = subject
	m.active = true
}

// Active reports whether the prompt is waiting for an answer
func (m *ConfirmationModel) Active() bool {
	return m.active
}

// HandleKeyMsg processes key messages while the prompt is open.
// Any other key is swallowed so it cannot trigger list actions.
func (m *ConfirmationModel) HandleKeyMsg(msg tea.KeyMsg, onConfirm func() tea.Cmd) tea.Cmd {
	switch {
	case key.Matches(msg, m.Keys.Cancel):
		m.active = false
		return nil
	case key.Matches(msg, m.Keys.Confirm):
		m.active = false
		return onConfirm()
	}
	return nil
}

// View renders the prompt
func (m *ConfirmationModel) View() string {
	if !m.active {
		return ""
	}
	var b strings.Builder
	b.WriteString(styles.WarningMsg.Render(m.Action + " " + m.Subject + "?"))
	b.WriteString(" ")
	b.WriteString(styles.HelpKey.Render("y"))
	b.WriteString(styles.HelpDesc.Render(" to confirm, "))
	b.WriteString(styles.HelpKey.Render("n"))
	b.WriteString(styles.HelpDesc.Render(" to cancel"))
	return b.String()
}
