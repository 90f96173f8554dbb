package filesystem

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gitlab.com/tozd/go/errors"

	"folderswap/internal/ports"
)

// Folders implements ports.FolderStore on the local filesystem
type Folders struct{}

var _ ports.FolderStore = (*Folders)(nil)

// NewFolders creates a new filesystem folder store
func NewFolders() *Folders {
	return &Folders{}
}

// ListDirs returns the sorted names of the immediate child directories of root.
// Symlinks to directories are listed; files and dangling links are skipped.
func (f *Folders) ListDirs(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, errors.Errorf("failed to read %s: %w", root, err)
	}

	var names []string
	for _, entry := range entries {
		switch {
		case entry.IsDir():
		case entry.Type()&os.ModeSymlink != 0:
			info, err := os.Stat(filepath.Join(root, entry.Name()))
			if err != nil || !info.IsDir() {
				continue
			}
		default:
			continue
		}
		names = append(names, entry.Name())
	}

	sort.Strings(names)
	return names, nil
}

// Resolve expands a leading ~ to the home directory and makes path absolute
func (f *Folders) Resolve(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Errorf("failed to resolve %s: %w", path, err)
	}
	return abs, nil
}

// IsDir reports whether path exists and is a directory
func (f *Folders) IsDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, errors.Errorf("failed to stat %s: %w", path, err)
	}
	return info.IsDir(), nil
}

// Exists reports whether anything exists at path, without following symlinks
func (f *Folders) Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, errors.Errorf("failed to stat %s: %w", path, err)
	}
	return true, nil
}

// Rename moves src to dst with a single rename call. It never copies, so a
// move across filesystems fails instead of leaving a partial tree behind.
func (f *Folders) Rename(src, dst string) error {
	if err := os.Rename(src, dst); err != nil {
		return errors.Errorf("failed to move folder: %w", err)
	}
	return nil
}
