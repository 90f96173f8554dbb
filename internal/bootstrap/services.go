package bootstrap

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"folderswap/internal/adapters/filesystem"
	"folderswap/internal/adapters/jsonfile"
	"folderswap/internal/adapters/sqlite"
	"folderswap/internal/application"
	"folderswap/internal/config"
	"folderswap/internal/ports"
)

// Services is everything a front end needs, wired against one config store
type Services struct {
	Store       ports.ConfigStore
	Folders     ports.FolderStore
	Keywords    *application.KeywordRegistry
	Directories *application.DirectoryService
	Engine      *application.SwapEngine
}

// OpenStore opens the config store backend named in settings.
// Settings must already be resolved.
func OpenStore(ctx context.Context, settings config.Settings) (ports.ConfigStore, error) {
	switch settings.Store {
	case config.StoreJSON:
		return jsonfile.NewStore(settings.ConfigDir), nil
	case config.StoreSQLite:
		return sqlite.Open(ctx, filepath.Join(settings.ConfigDir, sqlite.DatabaseFile))
	default:
		return nil, errors.WithDetails(config.ErrUnknownStore, "store", settings.Store)
	}
}

// New opens the store and builds the services on top of it
func New(ctx context.Context, settings config.Settings) (*Services, error) {
	store, err := OpenStore(ctx, settings)
	if err != nil {
		return nil, err
	}

	svc, err := NewWithStore(ctx, store, filesystem.NewFolders())
	if err != nil {
		store.Close()
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Str("store", settings.Store).
		Str("config_dir", settings.ConfigDir).
		Msg("services ready")
	return svc, nil
}

// NewWithStore builds the services over an already opened store
func NewWithStore(ctx context.Context, store ports.ConfigStore, folders ports.FolderStore) (*Services, error) {
	keywords, err := application.NewKeywordRegistry(ctx, store)
	if err != nil {
		return nil, err
	}
	dirs, err := application.NewDirectoryService(ctx, store, folders)
	if err != nil {
		return nil, err
	}
	return &Services{
		Store:       store,
		Folders:     folders,
		Keywords:    keywords,
		Directories: dirs,
		Engine:      application.NewSwapEngine(folders),
	}, nil
}

// Close releases the config store
func (s *Services) Close() error {
	return s.Store.Close()
}
