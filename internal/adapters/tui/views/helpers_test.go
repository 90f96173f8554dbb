package views

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"folderswap/internal/adapters/filesystem"
	"folderswap/internal/adapters/jsonfile"
	"folderswap/internal/bootstrap"
	"folderswap/internal/domain"
)

type testEnv struct {
	ctx      context.Context
	svc      *bootstrap.Services
	src, tgt string
}

// newTestEnv creates real source/target roots under a temp dir. When
// configure is false the roots exist but are not stored.
func newTestEnv(t *testing.T, configure bool, sourceFolders, targetFolders []string) *testEnv {
	t.Helper()
	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
	root := t.TempDir()

	env := &testEnv{ctx: ctx, src: filepath.Join(root, "src"), tgt: filepath.Join(root, "tgt")}
	require.NoError(t, os.MkdirAll(env.src, 0755))
	require.NoError(t, os.MkdirAll(env.tgt, 0755))
	for _, name := range sourceFolders {
		require.NoError(t, os.Mkdir(filepath.Join(env.src, name), 0755))
	}
	for _, name := range targetFolders {
		require.NoError(t, os.Mkdir(filepath.Join(env.tgt, name), 0755))
	}

	svc, err := bootstrap.NewWithStore(ctx, jsonfile.NewStore(filepath.Join(root, "cfg")), filesystem.NewFolders())
	require.NoError(t, err)
	env.svc = svc

	if configure {
		_, err := svc.Directories.Set(ctx, domain.SideSource, env.src)
		require.NoError(t, err)
		_, err = svc.Directories.Set(ctx, domain.SideTarget, env.tgt)
		require.NoError(t, err)
	}
	return env
}

func (e *testEnv) addKeywords(t *testing.T, words ...string) {
	t.Helper()
	for _, w := range words {
		_, err := e.svc.Keywords.Add(e.ctx, w)
		require.NoError(t, err)
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// typeText sends s one rune at a time
func typeText(m tea.Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// run executes cmd and returns its message, or nil for a nil command
func run(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
