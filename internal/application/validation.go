package application

import (
	"fmt"
	"path/filepath"
	"strings"

	"folderswap/internal/domain"
	"folderswap/internal/ports"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "folderName" -> "folder name")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"folderName": "folder name",
		"keyword":    "keyword",
		"path":       "path",
		"side":       "side",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ValidateFolderName checks that name is a single directory entry name.
// Names with separators or dot segments could address paths outside the roots.
func ValidateFolderName(name string) error {
	if err := ValidateRequired("folderName", name); err != nil {
		return err
	}
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return &ValidationError{
			Field:   "folderName",
			Message: fmt.Sprintf("%q is not a plain folder name", name),
		}
	}
	return nil
}

// ValidateDirectoryPair checks that both roots are set, exist as
// directories and are distinct.
func ValidateDirectoryPair(fs ports.FolderStore, pair domain.DirectoryPair) error {
	for _, side := range []domain.Side{domain.SideSource, domain.SideTarget} {
		if err := ValidateRoot(fs, side, pair.Root(side)); err != nil {
			return err
		}
	}

	if filepath.Clean(pair.Source) == filepath.Clean(pair.Target) {
		return &DirectoryError{
			Side:   domain.SideTarget,
			Path:   pair.Target,
			Reason: "source and target are the same directory",
		}
	}
	return nil
}

// ValidateRoot checks a single root path
func ValidateRoot(fs ports.FolderStore, side domain.Side, path string) error {
	if strings.TrimSpace(path) == "" {
		return &DirectoryError{Side: side, Reason: "not configured"}
	}

	ok, err := fs.IsDir(path)
	if err != nil {
		return &DirectoryError{Side: side, Path: path, Reason: err.Error()}
	}
	if !ok {
		return &DirectoryError{Side: side, Path: path, Reason: "not an existing directory"}
	}
	return nil
}
