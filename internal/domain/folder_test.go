package domain

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testPair() DirectoryPair {
	return DirectoryPair{Source: "/src", Target: "/tgt"}
}

func TestBuildFolderIndex_Scenario(t *testing.T) {
	idx := BuildFolderIndex("project", testPair(),
		[]string{"projectAlpha", "notes"},
		[]string{"projectBeta", "music"},
	)

	assert.Equal(t, "project", idx.Keyword)
	assert.Equal(t, []FolderEntry{
		{Name: "projectAlpha", Path: filepath.Join("/src", "projectAlpha"), Side: SideSource},
		{Name: "projectBeta", Path: filepath.Join("/tgt", "projectBeta"), Side: SideTarget},
	}, idx.Entries)
}

func TestBuildFolderIndex_TargetPrecedence(t *testing.T) {
	idx := BuildFolderIndex("dup", testPair(),
		[]string{"dup-one"},
		[]string{"dup-one"},
	)

	if assert.Len(t, idx.Entries, 1) {
		assert.Equal(t, SideTarget, idx.Entries[0].Side)
		assert.Equal(t, filepath.Join("/tgt", "dup-one"), idx.Entries[0].Path)
	}
}

func TestBuildFolderIndex_DeterministicOrder(t *testing.T) {
	a := BuildFolderIndex("x", testPair(),
		[]string{"x-c", "x-a", "x-b"},
		[]string{"x-z", "x-y"},
	)
	b := BuildFolderIndex("x", testPair(),
		[]string{"x-b", "x-c", "x-a"},
		[]string{"x-y", "x-z"},
	)

	assert.Equal(t, []string{"x-a", "x-b", "x-c", "x-y", "x-z"}, a.Names())
	assert.Equal(t, a, b)
}

func TestBuildFolderIndex_CaseInsensitiveMatch(t *testing.T) {
	idx := BuildFolderIndex("ALPHA", testPair(), []string{"myAlphaDir", "beta"}, nil)
	assert.Equal(t, []string{"myAlphaDir"}, idx.Names())
}

func TestFolderIndex_Accessors(t *testing.T) {
	idx := BuildFolderIndex("p", testPair(), []string{"p1", "p2"}, []string{"p3"})

	e, ok := idx.Lookup("p2")
	assert.True(t, ok)
	assert.Equal(t, SideSource, e.Side)

	_, ok = idx.Lookup("missing")
	assert.False(t, ok)

	assert.Equal(t, 3, idx.Len())
	assert.Equal(t, []FolderEntry{{Name: "p3", Path: filepath.Join("/tgt", "p3"), Side: SideTarget}}, idx.InTarget())

	clone := idx.Clone()
	clone.Entries[0].Side = SideTarget
	assert.Equal(t, SideSource, idx.Entries[0].Side)

	var nilIdx *FolderIndex
	assert.Equal(t, 0, nilIdx.Len())
	assert.Nil(t, nilIdx.Names())
}

func TestParseSide(t *testing.T) {
	tests := []struct {
		in      string
		want    Side
		wantErr bool
	}{
		{"source", SideSource, false},
		{"TARGET", SideTarget, false},
		{" tgt ", SideTarget, false},
		{"src", SideSource, false},
		{"left", SideSource, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSide(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownSide)
				assert.Contains(t, err.Error(), "expected source or target")
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSide_StringAndOpposite(t *testing.T) {
	assert.Equal(t, "source", SideSource.String())
	assert.Equal(t, "target", SideTarget.String())
	assert.Equal(t, SideTarget, SideSource.Opposite())
	assert.Equal(t, SideSource, SideTarget.Opposite())
}

func TestDirectoryPair(t *testing.T) {
	var p DirectoryPair
	assert.False(t, p.IsConfigured())

	p = p.With(SideSource, "/a")
	assert.False(t, p.IsConfigured())

	p = p.With(SideTarget, "/b")
	assert.True(t, p.IsConfigured())
	assert.Equal(t, "/a", p.Root(SideSource))
	assert.Equal(t, filepath.Join("/b", "x"), p.FolderPath(SideTarget, "x"))
}
