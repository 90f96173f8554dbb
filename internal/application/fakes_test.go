package application

import (
	"context"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"folderswap/internal/domain"
)

// memFolders is an in-memory FolderStore holding a flat set of directories
type memFolders struct {
	dirs     map[string]bool
	renames  [][2]string
	failFrom map[string]error
}

func newMemFolders(dirs ...string) *memFolders {
	m := &memFolders{dirs: map[string]bool{}, failFrom: map[string]error{}}
	for _, d := range dirs {
		m.dirs[filepath.Clean(d)] = true
	}
	return m
}

func (m *memFolders) ListDirs(root string) ([]string, error) {
	root = filepath.Clean(root)
	var names []string
	for d := range m.dirs {
		if filepath.Dir(d) == root && d != root {
			names = append(names, filepath.Base(d))
		}
	}
	sort.Strings(names)
	return names, nil
}

func (m *memFolders) IsDir(path string) (bool, error) {
	return m.dirs[filepath.Clean(path)], nil
}

func (m *memFolders) Exists(path string) (bool, error) {
	return m.dirs[filepath.Clean(path)], nil
}

// Resolve maps ~ to /home/tester and relative paths under /work
func (m *memFolders) Resolve(path string) (string, error) {
	switch {
	case path == "~" || strings.HasPrefix(path, "~/"):
		return filepath.Join("/home/tester", path[1:]), nil
	case filepath.IsAbs(path):
		return filepath.Clean(path), nil
	default:
		return filepath.Join("/work", path), nil
	}
}

func (m *memFolders) Rename(src, dst string) error {
	src, dst = filepath.Clean(src), filepath.Clean(dst)
	if err, ok := m.failFrom[src]; ok {
		return err
	}
	delete(m.dirs, src)
	m.dirs[dst] = true
	m.renames = append(m.renames, [2]string{src, dst})
	return nil
}

func (m *memFolders) has(path string) bool {
	return m.dirs[filepath.Clean(path)]
}

// memConfig is an in-memory ConfigStore
type memConfig struct {
	pair     domain.DirectoryPair
	keywords domain.Keywords
	saves    int
	saveErr  error
}

func (m *memConfig) LoadDirectories(context.Context) (domain.DirectoryPair, error) {
	return m.pair, nil
}

func (m *memConfig) SaveDirectories(_ context.Context, pair domain.DirectoryPair) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.pair = pair
	return nil
}

func (m *memConfig) LoadKeywords(context.Context) (domain.Keywords, error) {
	return slices.Clone(m.keywords), nil
}

func (m *memConfig) SaveKeywords(_ context.Context, keywords domain.Keywords) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.keywords = slices.Clone(keywords)
	return nil
}

func (m *memConfig) Close() error { return nil }

func testContext(t *testing.T) context.Context {
	t.Helper()
	logger := zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel)
	return logger.WithContext(context.Background())
}
