package tui

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"

	"folderswap/internal/adapters/filesystem"
	"folderswap/internal/adapters/jsonfile"
	"folderswap/internal/bootstrap"
	"folderswap/internal/domain"
)

type failingEditor struct{}

func (failingEditor) Command(string) (*exec.Cmd, error) {
	return nil, errors.New("no editor")
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
	root := t.TempDir()
	src, tgt := filepath.Join(root, "src"), filepath.Join(root, "tgt")
	require.NoError(t, os.MkdirAll(filepath.Join(src, "projectAlpha"), 0755))
	require.NoError(t, os.MkdirAll(tgt, 0755))

	svc, err := bootstrap.NewWithStore(ctx, jsonfile.NewStore(filepath.Join(root, "cfg")), filesystem.NewFolders())
	require.NoError(t, err)
	_, err = svc.Directories.Set(ctx, domain.SideSource, src)
	require.NoError(t, err)
	_, err = svc.Directories.Set(ctx, domain.SideTarget, tgt)
	require.NoError(t, err)
	_, err = svc.Keywords.Add(ctx, "project")
	require.NoError(t, err)

	return NewApp(ctx, svc, failingEditor{}, nil)
}

// feed sends msg and keeps delivering the resulting messages until the
// app settles
func feed(a *App, msg tea.Msg) {
	for i := 0; msg != nil && i < 10; i++ {
		_, cmd := a.Update(msg)
		if cmd == nil {
			return
		}
		msg = cmd()
	}
}

func TestApp_ViewSwitching(t *testing.T) {
	a := newTestApp(t)
	feed(a, tea.WindowSizeMsg{Width: 80, Height: 40})
	assert.Equal(t, ViewKeywords, a.State())

	feed(a, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ViewFolders, a.State())
	assert.Contains(t, a.View(), "[ ] projectAlpha")

	feed(a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	assert.Equal(t, ViewHelp, a.State())
	feed(a, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ViewFolders, a.State())

	feed(a, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ViewKeywords, a.State())

	feed(a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	assert.Equal(t, ViewDirectories, a.State())
	feed(a, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ViewKeywords, a.State())
}

func TestApp_EditorFailureIsReported(t *testing.T) {
	a := newTestApp(t)
	feed(a, tea.KeyMsg{Type: tea.KeyEnter})
	feed(a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})

	assert.Equal(t, ViewFolders, a.State())
	assert.Contains(t, a.View(), "no editor")
}

func TestApp_CtrlCQuits(t *testing.T) {
	a := newTestApp(t)
	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
