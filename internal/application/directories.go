package application

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"folderswap/internal/domain"
	"folderswap/internal/ports"
)

// DirectoryService owns the configured DirectoryPair
type DirectoryService struct {
	mu    sync.Mutex
	store ports.ConfigStore
	fs    ports.FolderStore
	pair  domain.DirectoryPair
}

// NewDirectoryService loads the persisted directory pair from store
func NewDirectoryService(ctx context.Context, store ports.ConfigStore, fs ports.FolderStore) (*DirectoryService, error) {
	pair, err := store.LoadDirectories(ctx)
	if err != nil {
		return nil, errors.Errorf("loading directories: %w", err)
	}
	return &DirectoryService{store: store, fs: fs, pair: pair}, nil
}

// Pair returns the current directory pair
func (s *DirectoryService) Pair() domain.DirectoryPair {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pair
}

// Set points one side at path and persists the pair.
// The path must be an existing directory; ~ is expanded and it is stored
// absolute.
func (s *DirectoryService) Set(ctx context.Context, side domain.Side, path string) (domain.DirectoryPair, error) {
	if err := ValidateRequired("path", path); err != nil {
		return domain.DirectoryPair{}, err
	}

	abs, err := s.fs.Resolve(path)
	if err != nil {
		return domain.DirectoryPair{}, errors.Errorf("resolving %s: %w", path, err)
	}

	if err := ValidateRoot(s.fs, side, abs); err != nil {
		return domain.DirectoryPair{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.pair.With(side, abs)
	if err := s.store.SaveDirectories(ctx, next); err != nil {
		return domain.DirectoryPair{}, errors.Errorf("saving directories: %w", err)
	}
	s.pair = next

	zerolog.Ctx(ctx).Info().Stringer("side", side).Str("path", abs).Msg("directory set")
	return next, nil
}

// Validate checks the current pair is usable for swapping
func (s *DirectoryService) Validate() error {
	return ValidateDirectoryPair(s.fs, s.Pair())
}
