package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestNormalizeKeyword(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Project", "project"},
		{"  MiXeD Case ", "mixed case"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeKeyword(tt.in))
		})
	}
}

func TestKeywords_AddIsIdempotent(t *testing.T) {
	var k Keywords

	k, err := k.Add("Alpha")
	require.NoError(t, err)

	k2, err := k.Add("alpha")
	assert.True(t, errors.Is(err, ErrDuplicateKeyword))
	assert.Equal(t, Keywords{"alpha"}, k2)

	_, err = k.Add("  ")
	assert.True(t, errors.Is(err, ErrEmptyKeyword))
}

func TestKeywords_AddDoesNotMutateReceiver(t *testing.T) {
	base := Keywords{"a"}
	next, err := base.Add("b")
	require.NoError(t, err)

	assert.Equal(t, Keywords{"a"}, base)
	assert.Equal(t, Keywords{"a", "b"}, next)
}

func TestKeywords_Remove(t *testing.T) {
	k := Keywords{"alpha", "beta", "gamma"}

	out, ok := k.Remove("beta")
	assert.True(t, ok)
	assert.Equal(t, Keywords{"alpha", "gamma"}, out)
	assert.Equal(t, Keywords{"alpha", "beta", "gamma"}, k)

	out, ok = k.Remove("delta")
	assert.False(t, ok)
	assert.Equal(t, k, out)
}

func TestKeywords_Search(t *testing.T) {
	k := Keywords{"project", "photos", "archive", "proj-old"}

	tests := []struct {
		name  string
		query string
		want  Keywords
	}{
		{"empty query returns everything in order", "", Keywords{"project", "photos", "archive", "proj-old"}},
		{"substring match keeps order", "pro", Keywords{"project", "proj-old"}},
		{"case insensitive", "PHO", Keywords{"photos"}},
		{"no match", "zzz", Keywords{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, k.Search(tt.query))
		})
	}
}

func TestKeywords_SortedAlphabetically(t *testing.T) {
	k := Keywords{"gamma", "Alpha", "beta"}

	assert.Equal(t, Keywords{"Alpha", "beta", "gamma"}, k.SortedAlphabetically())
	assert.Equal(t, Keywords{"gamma", "Alpha", "beta"}, k, "receiver must keep registration order")
}

func TestNewKeywords_DropsEmptiesAndDuplicates(t *testing.T) {
	got := NewKeywords([]string{"Beta", "", "alpha", "BETA", " gamma "})
	assert.Equal(t, Keywords{"beta", "alpha", "gamma"}, got)
}
