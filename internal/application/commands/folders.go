package commands

import (
	"context"
	"fmt"

	"gitlab.com/tozd/go/errors"

	"folderswap/internal/application"
	"folderswap/internal/domain"
)

// ListFoldersCommand builds the folder index for a keyword
type ListFoldersCommand struct {
	engine  *application.SwapEngine
	dirs    *application.DirectoryService
	Keyword string
}

// NewListFoldersCommand creates a new ListFoldersCommand
func NewListFoldersCommand(engine *application.SwapEngine, dirs *application.DirectoryService, keyword string) *ListFoldersCommand {
	return &ListFoldersCommand{engine: engine, dirs: dirs, Keyword: keyword}
}

// Execute runs the list folders command
func (c *ListFoldersCommand) Execute(ctx context.Context) (*domain.FolderIndex, error) {
	keyword := domain.NormalizeKeyword(c.Keyword)
	if err := application.ValidateRequired("keyword", keyword); err != nil {
		return nil, err
	}
	return c.engine.Build(ctx, c.dirs.Pair(), keyword)
}

// ToggleResult contains the result of moving a folder between roots
type ToggleResult struct {
	Folder  string
	Side    domain.Side
	Changed bool
	Index   *domain.FolderIndex
	Message string
}

// ToggleCommand moves a folder to a side. With Side unset it flips the
// folder's current side.
type ToggleCommand struct {
	engine  *application.SwapEngine
	dirs    *application.DirectoryService
	Keyword string
	Folder  string
	Side    string
}

// NewToggleCommand creates a new ToggleCommand
func NewToggleCommand(engine *application.SwapEngine, dirs *application.DirectoryService, keyword, folder, side string) *ToggleCommand {
	return &ToggleCommand{
		engine:  engine,
		dirs:    dirs,
		Keyword: keyword,
		Folder:  folder,
		Side:    side,
	}
}

// Validate checks the command arguments
func (c *ToggleCommand) Validate() error {
	if err := application.ValidateRequired("keyword", c.Keyword); err != nil {
		return err
	}
	if err := application.ValidateFolderName(c.Folder); err != nil {
		return err
	}
	if c.Side != "" {
		if _, err := domain.ParseSide(c.Side); err != nil {
			return &application.ValidationError{Field: "side", Message: err.Error()}
		}
	}
	return nil
}

// Execute runs the toggle command
func (c *ToggleCommand) Execute(ctx context.Context) (*ToggleResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	pair := c.dirs.Pair()
	idx, err := c.engine.Build(ctx, pair, domain.NormalizeKeyword(c.Keyword))
	if err != nil {
		return nil, err
	}

	entry, ok := idx.Lookup(c.Folder)
	if !ok {
		return nil, errors.Errorf("%w: no folder named %q matches %q", application.ErrNotFound, c.Folder, idx.Keyword)
	}

	side := entry.Side.Opposite()
	if c.Side != "" {
		side, _ = domain.ParseSide(c.Side)
	}

	next, err := c.engine.SetSide(ctx, pair, idx, c.Folder, side)
	if err != nil {
		return nil, err
	}

	result := &ToggleResult{
		Folder:  c.Folder,
		Side:    side,
		Changed: next != idx,
		Index:   next,
	}
	if result.Changed {
		result.Message = fmt.Sprintf("Moved %s to %s", c.Folder, side)
	} else {
		result.Message = fmt.Sprintf("%s is already in %s", c.Folder, side)
	}
	return result, nil
}
