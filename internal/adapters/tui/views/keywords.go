package views

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"folderswap/internal/adapters/tui/styles"
	"folderswap/internal/application"
	"folderswap/internal/application/commands"
	"folderswap/internal/domain"
)

// KeywordsKeyMap defines key bindings for the keyword list
type KeywordsKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	PrevPage    key.Binding
	NextPage    key.Binding
	Open        key.Binding
	Search      key.Binding
	New         key.Binding
	Delete      key.Binding
	SortAlpha   key.Binding
	SortReg     key.Binding
	Directories key.Binding
	Help        key.Binding
	Quit        key.Binding
	Cancel      key.Binding
	Submit      key.Binding
}

var KeywordsKeys = KeywordsKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("left", "pgup"),
		key.WithHelp("←", "prev page"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("right", "pgdown"),
		key.WithHelp("→", "next page"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "folders"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new"),
	),
	Delete: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "delete"),
	),
	SortAlpha: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sort a-z"),
	),
	SortReg: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "registered order"),
	),
	Directories: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "directories"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "ok"),
	),
}

type keywordsMode int

const (
	keywordsBrowse keywordsMode = iota
	keywordsSearch
	keywordsAdd
)

// KeywordsModel lists registered keywords and edits the registry
type KeywordsModel struct {
	ViewState
	ctx      context.Context
	registry *application.KeywordRegistry
	dirs     *application.DirectoryService

	keywords domain.Keywords
	pager    *Paginator
	mode     keywordsMode
	input    textinput.Model
	query    string
	order    commands.KeywordOrder
	confirm  ConfirmationModel
}

// NewKeywordsModel creates the keyword list over registry
func NewKeywordsModel(ctx context.Context, registry *application.KeywordRegistry, dirs *application.DirectoryService) *KeywordsModel {
	input := textinput.New()
	input.CharLimit = 64

	m := &KeywordsModel{
		ctx:      ctx,
		registry: registry,
		dirs:     dirs,
		pager:    NewPaginator(10),
		input:    input,
		order:    commands.OrderRegister,
		confirm:  NewConfirmationModel(),
	}
	m.Refresh()
	if err := dirs.Validate(); err != nil {
		m.SetMessage("Source and target are not configured yet, press d to set them", MessageWarning)
	}
	return m
}

// Init initializes the keyword list
func (m *KeywordsModel) Init() tea.Cmd {
	return nil
}

// SetSize updates the view dimensions and page size
func (m *KeywordsModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.pager.SetPageSize(pageSizeFor(height))
}

// Refresh re-reads the registry's working view
func (m *KeywordsModel) Refresh() {
	m.setKeywords(m.registry.View())
}

func (m *KeywordsModel) setKeywords(k domain.Keywords) {
	m.keywords = k
	m.pager.SetTotal(len(k))
}

// Selected returns the keyword under the cursor
func (m *KeywordsModel) Selected() (string, bool) {
	i := m.pager.Cursor()
	if i < 0 || i >= len(m.keywords) {
		return "", false
	}
	return m.keywords[i], true
}

// Update handles messages for the keyword list
func (m *KeywordsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.mode != keywordsBrowse {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.confirm.Active() {
		return m, m.confirm.HandleKeyMsg(keyMsg, m.deleteSelected)
	}

	switch m.mode {
	case keywordsSearch:
		return m, m.updateSearch(keyMsg)
	case keywordsAdd:
		return m, m.updateAdd(keyMsg)
	}

	m.ClearMessage()

	switch {
	case key.Matches(keyMsg, KeywordsKeys.Quit):
		return m, tea.Quit

	case key.Matches(keyMsg, KeywordsKeys.Up):
		m.pager.CursorUp()

	case key.Matches(keyMsg, KeywordsKeys.Down):
		m.pager.CursorDown()

	case key.Matches(keyMsg, KeywordsKeys.PrevPage):
		m.pager.PrevPage()

	case key.Matches(keyMsg, KeywordsKeys.NextPage):
		m.pager.NextPage()

	case key.Matches(keyMsg, KeywordsKeys.Open):
		return m, m.open()

	case key.Matches(keyMsg, KeywordsKeys.Search):
		m.mode = keywordsSearch
		m.input.Placeholder = "filter keywords"
		m.input.SetValue(m.query)
		return m, m.input.Focus()

	case key.Matches(keyMsg, KeywordsKeys.New):
		m.mode = keywordsAdd
		m.input.Placeholder = "new keyword"
		m.input.SetValue("")
		return m, m.input.Focus()

	case key.Matches(keyMsg, KeywordsKeys.Delete):
		if kw, ok := m.Selected(); ok {
			m.confirm.Ask("Delete keyword", fmt.Sprintf("%q", kw))
		}

	case key.Matches(keyMsg, KeywordsKeys.SortAlpha):
		m.order = commands.OrderAlpha
		m.setKeywords(m.registry.SortAlphabetical())
		m.pager.SetCursor(0)

	case key.Matches(keyMsg, KeywordsKeys.SortReg):
		m.order = commands.OrderRegister
		m.query = ""
		view, err := m.registry.SortByRegister(m.ctx)
		if err != nil {
			m.SetError(err)
			return m, nil
		}
		m.setKeywords(view)
		m.pager.SetCursor(0)

	case key.Matches(keyMsg, KeywordsKeys.Cancel):
		if m.query != "" {
			m.query = ""
			m.applyFilter()
		}

	case key.Matches(keyMsg, KeywordsKeys.Directories):
		return m, func() tea.Msg { return SwitchToDirectoriesMsg{} }

	case key.Matches(keyMsg, KeywordsKeys.Help):
		return m, func() tea.Msg { return SwitchToHelpMsg{} }
	}

	return m, nil
}

// open switches to the folder toggles, refusing while the roots are unusable
func (m *KeywordsModel) open() tea.Cmd {
	kw, ok := m.Selected()
	if !ok {
		return nil
	}
	if err := m.dirs.Validate(); err != nil {
		m.SetMessage("Select source and target directories first: "+err.Error(), MessageWarning)
		return nil
	}
	return func() tea.Msg { return SwitchToFoldersMsg{Keyword: kw} }
}

// applyFilter re-runs the search and keeps an alphabetical order if chosen
func (m *KeywordsModel) applyFilter() {
	view := m.registry.Search(m.query)
	if m.order == commands.OrderAlpha {
		view = m.registry.SortAlphabetical()
	}
	m.setKeywords(view)
	m.pager.SetCursor(0)
}

func (m *KeywordsModel) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, KeywordsKeys.Cancel):
		m.mode = keywordsBrowse
		m.input.Blur()
		m.query = ""
		m.applyFilter()
		return nil
	case key.Matches(msg, KeywordsKeys.Submit):
		m.mode = keywordsBrowse
		m.input.Blur()
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != m.query {
		m.query = m.input.Value()
		m.applyFilter()
	}
	return cmd
}

func (m *KeywordsModel) updateAdd(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, KeywordsKeys.Cancel):
		m.mode = keywordsBrowse
		m.input.Blur()
		return nil
	case key.Matches(msg, KeywordsKeys.Submit):
		m.mode = keywordsBrowse
		m.input.Blur()
		m.add(m.input.Value())
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *KeywordsModel) add(word string) {
	result, err := commands.NewAddKeywordCommand(m.registry, word).Execute(m.ctx)
	if err != nil {
		m.SetError(err)
		return
	}

	// A successful add resets the registry view to the full list
	if result.Added {
		m.query = ""
		m.order = commands.OrderRegister
		m.Refresh()
		m.pager.SetCursor(len(m.keywords) - 1)
		m.SetMessage(result.Message, MessageInfo)
		return
	}
	m.SetMessage(result.Message, MessageWarning)
}

func (m *KeywordsModel) deleteSelected() tea.Cmd {
	kw, ok := m.Selected()
	if !ok {
		return nil
	}
	result, err := commands.NewRemoveKeywordCommand(m.registry, kw).Execute(m.ctx)
	if err != nil {
		m.SetError(err)
		return nil
	}
	m.Refresh()
	m.SetMessage(result.Message, MessageInfo)
	return nil
}

// View renders the keyword list
func (m *KeywordsModel) View() string {
	v := NewViewBuilder().
		Title("folderswap").
		Line(RenderDirectories(m.dirs.Pair())).
		BlankLine()

	switch m.mode {
	case keywordsSearch:
		v.Line(styles.InputLabel.Render("Search")).Line(styles.InputFocused.Render(m.input.View()))
	case keywordsAdd:
		v.Line(styles.InputLabel.Render("Register keyword")).Line(styles.InputFocused.Render(m.input.View()))
	default:
		v.Line(m.renderHeader())
	}

	if len(m.keywords) == 0 {
		if m.query != "" {
			v.Muted("No keywords match " + fmt.Sprintf("%q", m.query))
		} else {
			v.Muted("No keywords registered. Press n to add one.")
		}
	}

	start, end := m.pager.VisibleRange()
	for i := start; i < end; i++ {
		if i == m.pager.Cursor() {
			v.Line(styles.RowSelected.Render("> " + m.keywords[i]))
		} else {
			v.Line(styles.Row.Render("  " + m.keywords[i]))
		}
	}
	if info := RenderPageInfo(m.pager); info != "" {
		v.Line(info)
	}

	if prompt := m.confirm.View(); prompt != "" {
		v.BlankLine().Line(prompt)
	}
	v.Message(m.Message, m.MessageKind)

	switch m.mode {
	case keywordsSearch, keywordsAdd:
		v.Help(KeywordsKeys.Submit, KeywordsKeys.Cancel)
	default:
		v.Help(KeywordsKeys.Open, KeywordsKeys.Search, KeywordsKeys.New, KeywordsKeys.Delete,
			KeywordsKeys.SortAlpha, KeywordsKeys.SortReg, KeywordsKeys.Directories,
			KeywordsKeys.Help, KeywordsKeys.Quit)
	}

	return v.String()
}

func (m *KeywordsModel) renderHeader() string {
	order := "registered order"
	if m.order == commands.OrderAlpha {
		order = "alphabetical"
	}
	header := fmt.Sprintf("%d keywords, %s", len(m.keywords), order)
	if m.query != "" {
		header += fmt.Sprintf(", filter %q", m.query)
	}
	return styles.Subtitle.Render(header)
}
