package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"folderswap/internal/adapters/tui/views"
	"folderswap/internal/bootstrap"
	"folderswap/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewKeywords ViewState = iota
	ViewFolders
	ViewDirectories
	ViewHelp
)

// App is the main TUI application model
type App struct {
	ctx    context.Context
	editor ports.EditorOpener

	state     ViewState
	prevState ViewState

	keywords    *views.KeywordsModel
	folders     *views.FoldersModel
	directories *views.DirectoriesModel
	help        *views.HelpModel
}

// NewApp creates a new TUI application. ed and reveal may be nil, which
// disables opening folders in an editor or the file manager.
func NewApp(ctx context.Context, svc *bootstrap.Services, ed ports.EditorOpener, reveal ports.FolderRevealer) *App {
	return &App{
		ctx:         ctx,
		editor:      ed,
		state:       ViewKeywords,
		keywords:    views.NewKeywordsModel(ctx, svc.Keywords, svc.Directories),
		folders:     views.NewFoldersModel(ctx, svc.Engine, svc.Directories, reveal),
		directories: views.NewDirectoriesModel(ctx, svc.Directories),
		help:        views.NewHelpModel(),
	}
}

// State returns the active view
func (a *App) State() ViewState {
	return a.state
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.keywords.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.keywords.SetSize(msg.Width, msg.Height)
		a.folders.SetSize(msg.Width, msg.Height)
		a.directories.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

	// View switching messages
	case views.SwitchToKeywordsMsg:
		a.state = ViewKeywords
		a.keywords.Refresh()
		if msg.Message != "" {
			a.keywords.SetMessage(msg.Message, views.MessageInfo)
		}
		return a, nil

	case views.SwitchToFoldersMsg:
		a.state = ViewFolders
		zerolog.Ctx(a.ctx).Debug().Str("keyword", msg.Keyword).Msg("showing folders")
		return a, a.folders.Load(msg.Keyword)

	case views.SwitchToDirectoriesMsg:
		a.state = ViewDirectories
		return a, a.directories.Open()

	case views.SwitchToHelpMsg:
		a.prevState = a.state
		a.state = ViewHelp
		return a, nil

	case views.CloseHelpMsg:
		a.state = a.prevState
		return a, nil

	case views.OpenEditorMsg:
		return a, a.openEditor(msg.Path)

	case views.EditorFinishedMsg:
		if msg.Err != nil {
			zerolog.Ctx(a.ctx).Warn().Err(msg.Err).Msg("editor failed")
			a.folders.SetMessage("Editor: "+msg.Err.Error(), views.MessageError)
		}
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewKeywords:
		_, cmd = a.keywords.Update(msg)
	case ViewFolders:
		_, cmd = a.folders.Update(msg)
	case ViewDirectories:
		_, cmd = a.directories.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

func (a *App) openEditor(path string) tea.Cmd {
	if a.editor == nil {
		return nil
	}

	cmd, err := a.editor.Command(path)
	if err != nil {
		return func() tea.Msg {
			return views.EditorFinishedMsg{Err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return views.EditorFinishedMsg{Err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewFolders:
		return a.folders.View()
	case ViewDirectories:
		return a.directories.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.keywords.View()
	}
}
