package views

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folderswap/internal/domain"
)

func loadFolders(t *testing.T, env *testEnv, keyword string) *FoldersModel {
	t.Helper()
	m := NewFoldersModel(env.ctx, env.svc.Engine, env.svc.Directories, nil)
	m.Update(run(m.Load(keyword)))
	require.NotNil(t, m.Index())
	return m
}

func sides(idx *domain.FolderIndex) map[string]domain.Side {
	out := make(map[string]domain.Side)
	for _, e := range idx.Entries {
		out[e.Name] = e.Side
	}
	return out
}

func TestFoldersModel_ToggleIntoTarget(t *testing.T) {
	env := newTestEnv(t, true, []string{"projectAlpha", "notes"}, []string{"projectBeta"})
	m := loadFolders(t, env, "project")

	assert.Equal(t, map[string]domain.Side{
		"projectAlpha": domain.SideSource,
		"projectBeta":  domain.SideTarget,
	}, sides(m.Index()))
	assert.Contains(t, m.View(), "[x] projectBeta")

	_, cmd := m.Update(keyOf(tea.KeySpace))
	m.Update(run(cmd))

	assert.Equal(t, map[string]domain.Side{
		"projectAlpha": domain.SideTarget,
		"projectBeta":  domain.SideSource,
	}, sides(m.Index()))
	assert.DirExists(t, filepath.Join(env.tgt, "projectAlpha"))
	assert.DirExists(t, filepath.Join(env.src, "projectBeta"))

	entry, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "projectAlpha", entry.Name, "cursor follows the toggled folder")

	// untick moves it back without touching the other folder
	_, cmd = m.Update(keyOf(tea.KeyEnter))
	m.Update(run(cmd))
	assert.Empty(t, m.Index().InTarget())
}

func TestFoldersModel_CollisionShowsError(t *testing.T) {
	env := newTestEnv(t, true, []string{"projectAlpha", "projectBeta"}, []string{"projectBeta"})
	m := loadFolders(t, env, "project")

	// projectBeta exists on both sides and is reported in target;
	// moving it to source would overwrite the source copy
	m.Update(runes("j"))
	_, cmd := m.Update(keyOf(tea.KeySpace))
	m.Update(run(cmd))

	assert.Equal(t, MessageError, m.MessageKind)
	assert.Contains(t, m.Message, "already exists")
	assert.DirExists(t, filepath.Join(env.tgt, "projectBeta"))
}

func TestFoldersModel_CopyPath(t *testing.T) {
	env := newTestEnv(t, true, []string{"projectAlpha"}, nil)
	m := loadFolders(t, env, "project")

	var copied string
	m.copyPath = func(s string) error {
		copied = s
		return nil
	}

	m.Update(runes("y"))
	assert.Equal(t, filepath.Join(env.src, "projectAlpha"), copied)
	assert.Equal(t, MessageInfo, m.MessageKind)
}

func TestFoldersModel_KeysEmitMessages(t *testing.T) {
	env := newTestEnv(t, true, []string{"projectAlpha"}, nil)
	m := loadFolders(t, env, "project")

	_, cmd := m.Update(runes("e"))
	assert.Equal(t, OpenEditorMsg{Path: filepath.Join(env.src, "projectAlpha")}, run(cmd))

	_, cmd = m.Update(keyOf(tea.KeyEsc))
	assert.Equal(t, SwitchToKeywordsMsg{}, run(cmd))
}

func TestFoldersModel_StaleScanIgnored(t *testing.T) {
	env := newTestEnv(t, true, []string{"projectAlpha", "workLog"}, nil)
	m := NewFoldersModel(env.ctx, env.svc.Engine, env.svc.Directories, nil)

	stale := m.Load("project")
	m.Update(run(m.Load("work")))
	m.Update(run(stale))

	assert.Equal(t, "work", m.Index().Keyword)
	assert.Equal(t, []string{"workLog"}, m.Index().Names())
}

func TestFoldersModel_RescanDoesNotUnblockToggle(t *testing.T) {
	env := newTestEnv(t, true, []string{"projectAlpha", "projectBeta"}, nil)
	m := loadFolders(t, env, "project")

	_, pending := m.Update(keyOf(tea.KeySpace))
	require.NotNil(t, pending)

	_, rescan := m.Update(runes("R"))
	m.Update(run(rescan))

	m.Update(runes("j"))
	_, cmd := m.Update(keyOf(tea.KeySpace))
	assert.Nil(t, cmd, "second toggle waits for the first")

	m.Update(run(pending))
	_, cmd = m.Update(keyOf(tea.KeySpace))
	assert.NotNil(t, cmd)
}

type recordingRevealer struct {
	paths []string
}

func (r *recordingRevealer) Reveal(path string) error {
	r.paths = append(r.paths, path)
	return nil
}

func TestFoldersModel_RevealInFileManager(t *testing.T) {
	env := newTestEnv(t, true, nil, []string{"projectBeta"})
	rec := &recordingRevealer{}
	m := NewFoldersModel(env.ctx, env.svc.Engine, env.svc.Directories, rec)
	m.Update(run(m.Load("project")))

	_, cmd := m.Update(runes("o"))
	m.Update(run(cmd))
	assert.Equal(t, []string{filepath.Join(env.tgt, "projectBeta")}, rec.paths)
	assert.Equal(t, MessageInfo, m.MessageKind)
}
