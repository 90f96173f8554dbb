package application

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"folderswap/internal/domain"
	"folderswap/internal/ports"
)

// SwapEngine builds folder indexes and moves folders between the roots.
//
// Build and SetSide hold the same lock, so the single-occupant check and the
// moves it triggers cannot interleave with another swap.
type SwapEngine struct {
	mu sync.Mutex
	fs ports.FolderStore
}

// NewSwapEngine creates a new SwapEngine
func NewSwapEngine(fs ports.FolderStore) *SwapEngine {
	return &SwapEngine{fs: fs}
}

// Build lists the folders under both roots whose name contains keyword
func (e *SwapEngine) Build(ctx context.Context, pair domain.DirectoryPair, keyword string) (*domain.FolderIndex, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.build(ctx, pair, keyword)
}

func (e *SwapEngine) build(ctx context.Context, pair domain.DirectoryPair, keyword string) (*domain.FolderIndex, error) {
	if err := ValidateRequired("keyword", keyword); err != nil {
		return nil, err
	}
	if err := ValidateDirectoryPair(e.fs, pair); err != nil {
		return nil, err
	}

	sourceNames, err := e.fs.ListDirs(pair.Source)
	if err != nil {
		return nil, &DirectoryError{Side: domain.SideSource, Path: pair.Source, Reason: err.Error()}
	}
	targetNames, err := e.fs.ListDirs(pair.Target)
	if err != nil {
		return nil, &DirectoryError{Side: domain.SideTarget, Path: pair.Target, Reason: err.Error()}
	}

	idx := domain.BuildFolderIndex(keyword, pair, sourceNames, targetNames)
	zerolog.Ctx(ctx).Debug().
		Str("keyword", keyword).
		Int("entries", idx.Len()).
		Int("in_target", len(idx.InTarget())).
		Msg("folder index built")
	return idx, nil
}

// move is one planned rename
type move struct {
	folder string
	from   string
	to     string
}

// SetSide moves folder to the desired side and returns the rebuilt index.
//
// Moving a folder into target evicts every other matching folder currently in
// target back to source. idx supplies the keyword and must contain folder;
// the moves are planned from a fresh listing taken under the engine lock, so
// a stale idx cannot leave two folders in target. When the folder is not
// present on the side it would move from, nothing happens and idx is
// returned as given. All planned moves are checked for collisions before the
// first rename; a rename failure rolls back the renames already done.
func (e *SwapEngine) SetSide(ctx context.Context, pair domain.DirectoryPair, idx *domain.FolderIndex, folder string, side domain.Side) (*domain.FolderIndex, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := ValidateDirectoryPair(e.fs, pair); err != nil {
		return nil, err
	}
	if err := ValidateFolderName(folder); err != nil {
		return nil, err
	}
	if idx == nil {
		return nil, &ValidationError{Field: "index", Message: "folder index is required"}
	}
	if _, ok := idx.Lookup(folder); !ok {
		return nil, errors.WithDetails(
			errors.Errorf("%w: %s is not indexed for keyword %q", ErrNotFound, folder, idx.Keyword),
			"folder", folder,
		)
	}

	current, err := e.build(ctx, pair, idx.Keyword)
	if err != nil {
		return nil, err
	}

	plan, err := e.plan(pair, current, folder, side)
	if err != nil {
		return nil, err
	}

	logger := zerolog.Ctx(ctx)
	if len(plan) == 0 {
		logger.Debug().Str("folder", folder).Stringer("side", side).Msg("folder already on requested side")
		return idx, nil
	}

	if err := e.apply(ctx, plan); err != nil {
		return nil, err
	}

	return e.build(ctx, pair, idx.Keyword)
}

// plan computes the renames for a SetSide call from the on-disk index current
// and checks every destination is free. An empty plan means the call is a
// no-op.
func (e *SwapEngine) plan(pair domain.DirectoryPair, current *domain.FolderIndex, folder string, side domain.Side) ([]move, error) {
	primary := move{
		folder: folder,
		from:   pair.FolderPath(side.Opposite(), folder),
		to:     pair.FolderPath(side, folder),
	}

	present, err := e.fs.Exists(primary.from)
	if err != nil {
		return nil, &MoveError{Folder: folder, From: primary.from, To: primary.to, Err: err}
	}
	if !present {
		return nil, nil
	}

	plan := []move{primary}

	if side == domain.SideTarget {
		for _, other := range current.InTarget() {
			if other.Name == folder {
				continue
			}
			evict := move{
				folder: other.Name,
				from:   pair.FolderPath(domain.SideTarget, other.Name),
				to:     pair.FolderPath(domain.SideSource, other.Name),
			}
			present, err := e.fs.Exists(evict.from)
			if err != nil {
				return nil, &MoveError{Folder: evict.folder, From: evict.from, To: evict.to, Err: err}
			}
			if present {
				plan = append(plan, evict)
			}
		}
	}

	for _, m := range plan {
		taken, err := e.fs.Exists(m.to)
		if err != nil {
			return nil, &MoveError{Folder: m.folder, From: m.from, To: m.to, Err: err}
		}
		if taken {
			return nil, &MoveError{Folder: m.folder, From: m.from, To: m.to, Collision: true}
		}
	}

	return plan, nil
}

// apply executes plan in order, undoing completed renames on failure
func (e *SwapEngine) apply(ctx context.Context, plan []move) error {
	logger := zerolog.Ctx(ctx)

	for i, m := range plan {
		if err := e.fs.Rename(m.from, m.to); err != nil {
			moveErr := &MoveError{Folder: m.folder, From: m.from, To: m.to, Err: err}
			if rbErr := e.rollback(ctx, plan[:i]); rbErr != nil {
				return errors.Join(moveErr, rbErr)
			}
			return moveErr
		}
		logger.Info().Str("folder", m.folder).Str("from", m.from).Str("to", m.to).Msg("folder moved")
	}
	return nil
}

func (e *SwapEngine) rollback(ctx context.Context, done []move) error {
	var errs []error
	for i := len(done) - 1; i >= 0; i-- {
		m := done[i]
		if err := e.fs.Rename(m.to, m.from); err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Str("folder", m.folder).Msg("rollback failed")
			errs = append(errs, errors.Errorf("rolling back %s: %w", m.folder, err))
			continue
		}
		zerolog.Ctx(ctx).Warn().Str("folder", m.folder).Msg("move rolled back")
	}
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}
