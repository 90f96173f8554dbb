package application

import (
	"context"
	"slices"
	"sync"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"folderswap/internal/domain"
	"folderswap/internal/ports"
)

// KeywordRegistry is the ordered set of registered keywords plus the
// working view a front end displays (search filter or alphabetical sort).
// Every mutation of the full list is persisted before it returns.
type KeywordRegistry struct {
	mu    sync.Mutex
	store ports.ConfigStore
	all   domain.Keywords
	view  domain.Keywords
}

// NewKeywordRegistry loads the persisted keywords from store
func NewKeywordRegistry(ctx context.Context, store ports.ConfigStore) (*KeywordRegistry, error) {
	r := &KeywordRegistry{store: store}
	if err := r.reload(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *KeywordRegistry) reload(ctx context.Context) error {
	loaded, err := r.store.LoadKeywords(ctx)
	if err != nil {
		return errors.Errorf("loading keywords: %w", err)
	}
	r.all = domain.NewKeywords(loaded)
	r.view = slices.Clone(r.all)
	return nil
}

// Add registers word. Empty and duplicate words are ignored and reported
// as added=false with a nil error.
func (r *KeywordRegistry) Add(ctx context.Context, word string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next, err := r.all.Add(word)
	if err != nil {
		zerolog.Ctx(ctx).Debug().Str("keyword", word).Err(err).Msg("keyword not registered")
		return false, nil
	}

	if err := r.store.SaveKeywords(ctx, next); err != nil {
		return false, errors.Errorf("saving keywords: %w", err)
	}

	r.all = next
	r.view = slices.Clone(next)
	zerolog.Ctx(ctx).Info().Str("keyword", domain.NormalizeKeyword(word)).Msg("keyword registered")
	return true, nil
}

// Remove unregisters word. Unknown words are ignored.
func (r *KeywordRegistry) Remove(ctx context.Context, word string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next, ok := r.all.Remove(word)
	if !ok {
		return false, nil
	}

	if err := r.store.SaveKeywords(ctx, next); err != nil {
		return false, errors.Errorf("saving keywords: %w", err)
	}

	r.all = next
	r.view, _ = r.view.Remove(word)
	zerolog.Ctx(ctx).Info().Str("keyword", domain.NormalizeKeyword(word)).Msg("keyword removed")
	return true, nil
}

// Search filters the working view to keywords containing query.
// An empty query restores the full list in registration order.
func (r *KeywordRegistry) Search(query string) domain.Keywords {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.view = r.all.Search(query)
	return slices.Clone(r.view)
}

// SortAlphabetical sorts the working view. The persisted order is untouched.
func (r *KeywordRegistry) SortAlphabetical() domain.Keywords {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.view = r.view.SortedAlphabetically()
	return slices.Clone(r.view)
}

// SortByRegister discards the working view and reloads registration order
// from the store.
func (r *KeywordRegistry) SortByRegister(ctx context.Context) (domain.Keywords, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.reload(ctx); err != nil {
		return nil, err
	}
	return slices.Clone(r.view), nil
}

// List returns the keywords containing query, in registration order or
// alphabetically. It reads the full list only and leaves the working view
// alone, so concurrent callers never see each other's filters.
func (r *KeywordRegistry) List(query string, alphabetical bool) domain.Keywords {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := r.all.Search(query)
	if alphabetical {
		out = out.SortedAlphabetically()
	}
	return slices.Clone(out)
}

// All returns the full list in registration order
func (r *KeywordRegistry) All() domain.Keywords {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.all)
}

// View returns the current working view
func (r *KeywordRegistry) View() domain.Keywords {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.view)
}
