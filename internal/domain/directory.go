package domain

import "path/filepath"

// DirectoryPair holds the two roots folders are swapped between
type DirectoryPair struct {
	Source string `json:"source,omitempty"`
	Target string `json:"target,omitempty"`
}

// IsConfigured reports whether both roots are set
func (p DirectoryPair) IsConfigured() bool {
	return p.Source != "" && p.Target != ""
}

// Root returns the root path for a side
func (p DirectoryPair) Root(side Side) string {
	if side == SideTarget {
		return p.Target
	}
	return p.Source
}

// With returns a copy of the pair with the root for side replaced
func (p DirectoryPair) With(side Side, path string) DirectoryPair {
	if side == SideTarget {
		p.Target = path
	} else {
		p.Source = path
	}
	return p
}

// FolderPath returns the path a folder would have under the root for side
func (p DirectoryPair) FolderPath(side Side, name string) string {
	return filepath.Join(p.Root(side), name)
}
