package application

import "folderswap/internal/domain"

// Re-export domain types for use by adapters
type (
	Side          = domain.Side
	DirectoryPair = domain.DirectoryPair
	FolderEntry   = domain.FolderEntry
	FolderIndex   = domain.FolderIndex
	Keywords      = domain.Keywords
)

const (
	SideSource = domain.SideSource
	SideTarget = domain.SideTarget
)

// ParseSide parses "source" or "target"
func ParseSide(s string) (Side, error) {
	return domain.ParseSide(s)
}
