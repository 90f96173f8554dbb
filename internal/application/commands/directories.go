package commands

import (
	"context"
	"fmt"

	"folderswap/internal/application"
	"folderswap/internal/domain"
)

// SetDirectoryResult contains the result of configuring a root
type SetDirectoryResult struct {
	Pair    domain.DirectoryPair
	Message string
}

// SetDirectoryCommand points the source or target root at a directory
type SetDirectoryCommand struct {
	dirs *application.DirectoryService
	Side string
	Path string
}

// NewSetDirectoryCommand creates a new SetDirectoryCommand
func NewSetDirectoryCommand(dirs *application.DirectoryService, side, path string) *SetDirectoryCommand {
	return &SetDirectoryCommand{dirs: dirs, Side: side, Path: path}
}

// Validate checks the side and path arguments
func (c *SetDirectoryCommand) Validate() error {
	if err := application.ValidateRequired("side", c.Side); err != nil {
		return err
	}
	if _, err := domain.ParseSide(c.Side); err != nil {
		return &application.ValidationError{Field: "side", Message: err.Error()}
	}
	return application.ValidateRequired("path", c.Path)
}

// Execute runs the set directory command
func (c *SetDirectoryCommand) Execute(ctx context.Context) (*SetDirectoryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	side, _ := domain.ParseSide(c.Side)

	pair, err := c.dirs.Set(ctx, side, c.Path)
	if err != nil {
		return nil, err
	}

	return &SetDirectoryResult{
		Pair:    pair,
		Message: fmt.Sprintf("%s directory set to %s", side, pair.Root(side)),
	}, nil
}
