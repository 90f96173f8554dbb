package application

import (
	"fmt"

	"gitlab.com/tozd/go/errors"

	"folderswap/internal/domain"
)

// Sentinel errors for common conditions
var (
	ErrConfigMissing        = errors.Base("config missing")
	ErrDirectoryUnavailable = errors.Base("directory unavailable")
	ErrNameCollision        = errors.Base("name collision")
	ErrMoveFailed           = errors.Base("move failed")
	ErrNotFound             = errors.Base("not found")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// DirectoryError reports a root that is unset or not a usable directory
type DirectoryError struct {
	Side   domain.Side
	Path   string
	Reason string
}

func (e *DirectoryError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s directory unavailable: %s", e.Side, e.Reason)
	}
	return fmt.Sprintf("%s directory %s unavailable: %s", e.Side, e.Path, e.Reason)
}

func (e *DirectoryError) Is(target error) bool {
	return target == ErrDirectoryUnavailable
}

// MoveError represents a failed folder move.
// Collision is set when the destination already existed and nothing moved.
type MoveError struct {
	Folder    string
	From      string
	To        string
	Collision bool
	Err       error
}

func (e *MoveError) Error() string {
	if e.Collision {
		return fmt.Sprintf("cannot move %s: %s already exists", e.Folder, e.To)
	}
	if e.Err != nil {
		return fmt.Sprintf("cannot move %s from %s to %s: %v", e.Folder, e.From, e.To, e.Err)
	}
	return fmt.Sprintf("cannot move %s from %s to %s", e.Folder, e.From, e.To)
}

func (e *MoveError) Is(target error) bool {
	if e.Collision {
		return target == ErrNameCollision
	}
	return target == ErrMoveFailed
}

func (e *MoveError) Unwrap() error {
	return e.Err
}
