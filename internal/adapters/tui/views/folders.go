package views

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"folderswap/internal/adapters/tui/styles"
	"folderswap/internal/application"
	"folderswap/internal/application/commands"
	"folderswap/internal/domain"
	"folderswap/internal/ports"
)

// FoldersKeyMap defines key bindings for the folder toggles
type FoldersKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Toggle   key.Binding
	Copy     key.Binding
	Edit     key.Binding
	Reveal   key.Binding
	Rescan   key.Binding
	Back     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var FoldersKeys = FoldersKeyMap{
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
	Toggle: key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("space", "toggle"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy path"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "open in editor"),
	),
	Reveal: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "file manager"),
	),
	Rescan: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "rescan"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "backspace"),
		key.WithHelp("esc", "back"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// FoldersModel shows one checkbox per folder matching a keyword.
// Checked means the folder lives in the target directory.
type FoldersModel struct {
	ViewState
	ctx    context.Context
	engine *application.SwapEngine
	dirs   *application.DirectoryService
	reveal ports.FolderRevealer

	keyword string
	index   *domain.FolderIndex
	pager   *Paginator

	scanning bool
	toggling bool

	// copyPath writes to the system clipboard; replaced in tests
	copyPath func(string) error
}

// NewFoldersModel creates the folder toggle view. reveal may be nil.
func NewFoldersModel(ctx context.Context, engine *application.SwapEngine, dirs *application.DirectoryService, reveal ports.FolderRevealer) *FoldersModel {
	return &FoldersModel{
		ctx:      ctx,
		engine:   engine,
		dirs:     dirs,
		reveal:   reveal,
		pager:    NewPaginator(10),
		copyPath: clipboard.WriteAll,
	}
}

type folderIndexMsg struct {
	keyword string
	index   *domain.FolderIndex
	err     error
}

type folderRevealedMsg struct {
	path string
	err  error
}

type folderToggledMsg struct {
	keyword string
	result  *commands.ToggleResult
	err     error
}

// Init initializes the folder view
func (m *FoldersModel) Init() tea.Cmd {
	return nil
}

// SetSize updates the view dimensions and page size
func (m *FoldersModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.pager.SetPageSize(pageSizeFor(height))
}

// Load shows keyword and starts scanning both roots
func (m *FoldersModel) Load(keyword string) tea.Cmd {
	m.keyword = keyword
	m.index = nil
	m.pager.Reset()
	m.ClearMessage()
	return m.scan()
}

// Keyword returns the keyword being shown
func (m *FoldersModel) Keyword() string {
	return m.keyword
}

// Index returns the last loaded folder index
func (m *FoldersModel) Index() *domain.FolderIndex {
	return m.index
}

func (m *FoldersModel) scan() tea.Cmd {
	keyword := m.keyword
	m.scanning = true
	return func() tea.Msg {
		idx, err := commands.NewListFoldersCommand(m.engine, m.dirs, keyword).Execute(m.ctx)
		return folderIndexMsg{keyword: keyword, index: idx, err: err}
	}
}

func (m *FoldersModel) toggle(entry domain.FolderEntry) tea.Cmd {
	keyword := m.keyword
	side := entry.Side.Opposite()
	m.toggling = true
	return func() tea.Msg {
		result, err := commands.NewToggleCommand(m.engine, m.dirs, keyword, entry.Name, side.String()).Execute(m.ctx)
		return folderToggledMsg{keyword: keyword, result: result, err: err}
	}
}

// Selected returns the entry under the cursor
func (m *FoldersModel) Selected() (domain.FolderEntry, bool) {
	if m.index == nil {
		return domain.FolderEntry{}, false
	}
	i := m.pager.Cursor()
	if i < 0 || i >= len(m.index.Entries) {
		return domain.FolderEntry{}, false
	}
	return m.index.Entries[i], true
}

// setIndex replaces the index, keeping the cursor on the same folder name
func (m *FoldersModel) setIndex(idx *domain.FolderIndex) {
	current, hadCurrent := m.Selected()
	m.index = idx
	m.pager.SetTotal(idx.Len())
	if !hadCurrent {
		return
	}
	for i, e := range idx.Entries {
		if e.Name == current.Name {
			m.pager.SetCursor(i)
			return
		}
	}
}

// Update handles messages for the folder view
func (m *FoldersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case folderIndexMsg:
		if msg.keyword != m.keyword {
			return m, nil
		}
		m.scanning = false
		if msg.err != nil {
			m.SetError(msg.err)
			return m, nil
		}
		m.setIndex(msg.index)
		return m, nil

	case folderToggledMsg:
		m.toggling = false
		if msg.keyword != m.keyword {
			return m, nil
		}
		if msg.err != nil {
			m.SetError(msg.err)
			return m, m.scan()
		}
		m.setIndex(msg.result.Index)
		m.SetMessage(msg.result.Message, MessageInfo)
		return m, nil

	case folderRevealedMsg:
		if msg.err != nil {
			m.SetMessage("File manager: "+msg.err.Error(), MessageError)
		} else {
			m.SetMessage("Opened "+msg.path, MessageInfo)
		}
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *FoldersModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, FoldersKeys.Quit):
		return tea.Quit

	case key.Matches(msg, FoldersKeys.Back):
		return func() tea.Msg { return SwitchToKeywordsMsg{} }

	case key.Matches(msg, FoldersKeys.Help):
		return func() tea.Msg { return SwitchToHelpMsg{} }

	case key.Matches(msg, FoldersKeys.Up):
		m.pager.CursorUp()

	case key.Matches(msg, FoldersKeys.Down):
		m.pager.CursorDown()

	case key.Matches(msg, FoldersKeys.PrevPage):
		m.pager.PrevPage()

	case key.Matches(msg, FoldersKeys.NextPage):
		m.pager.NextPage()

	case key.Matches(msg, FoldersKeys.Rescan):
		m.ClearMessage()
		return m.scan()

	case key.Matches(msg, FoldersKeys.Toggle):
		// One swap at a time; a second toggle would act on a stale index
		if m.toggling {
			return nil
		}
		if entry, ok := m.Selected(); ok {
			m.ClearMessage()
			return m.toggle(entry)
		}

	case key.Matches(msg, FoldersKeys.Copy):
		if entry, ok := m.Selected(); ok {
			if err := m.copyPath(entry.Path); err != nil {
				m.SetMessage("Copy failed: "+err.Error(), MessageError)
			} else {
				m.SetMessage("Copied "+entry.Path, MessageInfo)
			}
		}

	case key.Matches(msg, FoldersKeys.Edit):
		if entry, ok := m.Selected(); ok {
			return func() tea.Msg { return OpenEditorMsg{Path: entry.Path} }
		}

	case key.Matches(msg, FoldersKeys.Reveal):
		if entry, ok := m.Selected(); ok && m.reveal != nil {
			reveal := m.reveal
			return func() tea.Msg {
				return folderRevealedMsg{path: entry.Path, err: reveal.Reveal(entry.Path)}
			}
		}
	}
	return nil
}

// View renders the folder toggles
func (m *FoldersModel) View() string {
	v := NewViewBuilder().
		Title("Folders matching " + fmt.Sprintf("%q", m.keyword)).
		Line(RenderDirectories(m.dirs.Pair())).
		BlankLine()

	switch {
	case m.index == nil && m.scanning:
		v.Muted("Scanning...")
	case m.index == nil:
	case m.index.Len() == 0:
		v.Muted("No folder in source or target contains this keyword.")
	default:
		v.Line(styles.Subtitle.Render(fmt.Sprintf("%d folders, %d in target", m.index.Len(), len(m.index.InTarget()))))
		start, end := m.pager.VisibleRange()
		for i := start; i < end; i++ {
			v.Line(m.renderEntry(m.index.Entries[i], i == m.pager.Cursor()))
		}
		if info := RenderPageInfo(m.pager); info != "" {
			v.Line(info)
		}
	}

	v.Message(m.Message, m.MessageKind)
	v.Help(FoldersKeys.Toggle, FoldersKeys.Copy, FoldersKeys.Edit, FoldersKeys.Reveal, FoldersKeys.Rescan,
		FoldersKeys.Back, FoldersKeys.Help, FoldersKeys.Quit)
	return v.String()
}

func (m *FoldersModel) renderEntry(e domain.FolderEntry, selected bool) string {
	text := styles.Checkbox(e.InTarget()) + e.Name
	if selected {
		return styles.RowSelected.Render("> " + text)
	}
	return "  " + styles.SideStyle(e.InTarget()).Render(text) + " " + styles.MutedText.Render(e.Side.String())
}
