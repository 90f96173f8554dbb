package ports

import (
	"context"

	"folderswap/internal/domain"
)

// ConfigStore persists the directory pair and the keyword list.
// Loading from an empty store yields zero values, not errors.
type ConfigStore interface {
	LoadDirectories(ctx context.Context) (domain.DirectoryPair, error)
	SaveDirectories(ctx context.Context, pair domain.DirectoryPair) error

	LoadKeywords(ctx context.Context) (domain.Keywords, error)
	SaveKeywords(ctx context.Context, keywords domain.Keywords) error

	Close() error
}
