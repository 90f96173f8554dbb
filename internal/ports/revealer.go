package ports

// FolderRevealer shows a folder in the desktop file manager
type FolderRevealer interface {
	Reveal(path string) error
}
