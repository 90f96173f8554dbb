package domain

import (
	"slices"
	"sort"
)

// FolderEntry is one folder matching the active keyword
type FolderEntry struct {
	Name string
	Path string // Where the folder lives now
	Side Side
}

// InTarget reports whether the folder currently sits under the target root
func (e FolderEntry) InTarget() bool {
	return e.Side == SideTarget
}

// FolderIndex is the merged set of folders matching a keyword across both roots
type FolderIndex struct {
	Keyword string
	Entries []FolderEntry
}

// BuildFolderIndex merges the directory listings of both roots.
//
// Names are filtered by keyword and sorted on each side. Source-derived
// names come first, followed by names only present under target. A name
// listed under both roots is reported as Target.
func BuildFolderIndex(keyword string, pair DirectoryPair, sourceNames, targetNames []string) *FolderIndex {
	sourceMatches := FilterByKeyword(sourceNames, keyword)
	targetMatches := FilterByKeyword(targetNames, keyword)

	inTarget := make(map[string]bool, len(targetMatches))
	for _, name := range targetMatches {
		inTarget[name] = true
	}

	idx := &FolderIndex{Keyword: keyword}
	seen := make(map[string]bool, len(sourceMatches)+len(targetMatches))

	add := func(name string) {
		if seen[name] {
			return
		}
		seen[name] = true
		side := SideSource
		if inTarget[name] {
			side = SideTarget
		}
		idx.Entries = append(idx.Entries, FolderEntry{
			Name: name,
			Path: pair.FolderPath(side, name),
			Side: side,
		})
	}

	for _, name := range sourceMatches {
		add(name)
	}
	for _, name := range targetMatches {
		add(name)
	}

	return idx
}

// FilterByKeyword returns the sorted names that contain keyword
func FilterByKeyword(names []string, keyword string) []string {
	var out []string
	for _, name := range names {
		if MatchesKeyword(name, keyword) {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// Lookup returns the entry for name
func (idx *FolderIndex) Lookup(name string) (FolderEntry, bool) {
	if idx == nil {
		return FolderEntry{}, false
	}
	for _, e := range idx.Entries {
		if e.Name == name {
			return e, true
		}
	}
	return FolderEntry{}, false
}

// InTarget returns the entries currently under the target root
func (idx *FolderIndex) InTarget() []FolderEntry {
	if idx == nil {
		return nil
	}
	var out []FolderEntry
	for _, e := range idx.Entries {
		if e.InTarget() {
			out = append(out, e)
		}
	}
	return out
}

// Names returns entry names in index order
func (idx *FolderIndex) Names() []string {
	if idx == nil {
		return nil
	}
	names := make([]string, 0, len(idx.Entries))
	for _, e := range idx.Entries {
		names = append(names, e.Name)
	}
	return names
}

// Len returns the number of entries
func (idx *FolderIndex) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.Entries)
}

// Clone returns a deep copy
func (idx *FolderIndex) Clone() *FolderIndex {
	if idx == nil {
		return nil
	}
	return &FolderIndex{
		Keyword: idx.Keyword,
		Entries: slices.Clone(idx.Entries),
	}
}
