package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"folderswap/internal/application"
	"folderswap/internal/domain"
	"folderswap/internal/ports"
)

const (
	DirectoriesFile = "directories.json"
	KeywordsFile    = "keywords.json"
)

// Store implements ports.ConfigStore with two JSON files in one directory
type Store struct {
	mu  sync.Mutex
	dir string
}

// Ensure Store implements ConfigStore
var _ ports.ConfigStore = (*Store)(nil)

// NewStore creates a store rooted at dir. The directory is created on the
// first save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the directory holding the JSON files
func (s *Store) Dir() string {
	return s.dir
}

// LoadDirectories reads directories.json. A missing file yields an empty pair.
func (s *Store) LoadDirectories(ctx context.Context) (domain.DirectoryPair, error) {
	var pair domain.DirectoryPair
	if err := s.read(ctx, DirectoriesFile, &pair); err != nil {
		if errors.Is(err, application.ErrConfigMissing) {
			return domain.DirectoryPair{}, nil
		}
		return domain.DirectoryPair{}, err
	}
	return pair, nil
}

// SaveDirectories overwrites directories.json
func (s *Store) SaveDirectories(ctx context.Context, pair domain.DirectoryPair) error {
	return s.write(ctx, DirectoriesFile, pair)
}

// LoadKeywords reads keywords.json. A missing file yields an empty list.
func (s *Store) LoadKeywords(ctx context.Context) (domain.Keywords, error) {
	var words []string
	if err := s.read(ctx, KeywordsFile, &words); err != nil {
		if errors.Is(err, application.ErrConfigMissing) {
			return domain.Keywords{}, nil
		}
		return nil, err
	}
	return domain.NewKeywords(words), nil
}

// SaveKeywords overwrites keywords.json
func (s *Store) SaveKeywords(ctx context.Context, keywords domain.Keywords) error {
	if keywords == nil {
		keywords = domain.Keywords{}
	}
	return s.write(ctx, KeywordsFile, keywords)
}

// Close is a no-op; every write is flushed before it returns
func (s *Store) Close() error {
	return nil
}

func (s *Store) read(ctx context.Context, name string, v any) error {
	path := filepath.Join(s.dir, name)

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		zerolog.Ctx(ctx).Debug().Str("path", path).Msg("config file missing, using defaults")
		return errors.WithDetails(application.ErrConfigMissing, "path", path)
	}
	if err != nil {
		return errors.Errorf("reading %s: %w", path, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return errors.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// write replaces the file through a temp file and rename so readers never
// see a half-written document
func (s *Store) write(ctx context.Context, name string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Errorf("encoding %s: %w", name, err)
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return errors.Errorf("creating config directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return errors.Errorf("writing %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return errors.Errorf("writing %s: %w", name, err)
	}

	path := filepath.Join(s.dir, name)
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Errorf("replacing %s: %w", path, err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("config saved")
	return nil
}
