package ports

// FolderStore is the filesystem surface the swap engine works against
type FolderStore interface {
	// ListDirs returns the names of the immediate child directories of root
	ListDirs(root string) ([]string, error)

	// IsDir reports whether path exists and is a directory
	IsDir(path string) (bool, error)

	// Exists reports whether anything exists at path
	Exists(path string) (bool, error)

	// Resolve turns a user-supplied path into a clean absolute one
	Resolve(path string) (string, error)

	// Rename moves src to dst in a single rename call
	Rename(src, dst string) error
}
