package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"folderswap/internal/adapters/tui/styles"
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

// CloseHelpMsg returns to the view that opened help
type CloseHelpMsg struct{}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
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
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, HelpKeys.Close) {
		return m, func() tea.Msg { return CloseHelpMsg{} }
	}
	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("folderswap help"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("Move keyword-tagged folders between a source and a target directory"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Keywords"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Move up/down"))
	b.WriteString(helpLine("← / →", "Previous/next page"))
	b.WriteString(helpLine("Enter", "Show matching folders"))
	b.WriteString(helpLine("/", "Filter keywords"))
	b.WriteString(helpLine("n", "Register a keyword"))
	b.WriteString(helpLine("x", "Delete keyword"))
	b.WriteString(helpLine("s / r", "Sort alphabetically / by registration"))
	b.WriteString(helpLine("d", "Set source and target directories"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Folders"))
	b.WriteString("\n")
	b.WriteString(helpLine("Space / Enter", "Move folder in or out of target"))
	b.WriteString(helpLine("y", "Copy folder path"))
	b.WriteString(helpLine("e", "Open folder in $EDITOR"))
	b.WriteString(helpLine("o", "Show folder in the file manager"))
	b.WriteString(helpLine("R", "Rescan directories"))
	b.WriteString(helpLine("Esc", "Back to keywords"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n")

	b.WriteString(styles.MutedText.Render("  Only one folder per keyword can be in target at a time."))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  Checking a folder moves the previous one back to source."))
	b.WriteString("\n\n")

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
