package domain

import (
	"slices"
	"strings"
)

// NormalizeKeyword lowercases a keyword and trims surrounding whitespace
func NormalizeKeyword(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// MatchesKeyword reports whether name contains keyword, ignoring case
func MatchesKeyword(name, keyword string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(keyword))
}

// Keywords is an ordered set of registered keywords.
// Order is registration order unless a caller re-sorts a copy.
type Keywords []string

// NewKeywords builds a Keywords set from raw strings, normalizing each
// entry and dropping empties and duplicates while keeping first-seen order.
func NewKeywords(words []string) Keywords {
	out := make(Keywords, 0, len(words))
	for _, w := range words {
		if next, err := out.Add(w); err == nil {
			out = next
		}
	}
	return out
}

// Contains reports whether word is registered (case-insensitive)
func (k Keywords) Contains(word string) bool {
	word = NormalizeKeyword(word)
	return slices.ContainsFunc(k, func(existing string) bool {
		return strings.EqualFold(existing, word)
	})
}

// Check returns ErrEmptyKeyword or ErrDuplicateKeyword when word cannot be added
func (k Keywords) Check(word string) error {
	word = NormalizeKeyword(word)
	if word == "" {
		return ErrEmptyKeyword
	}
	if k.Contains(word) {
		return ErrDuplicateKeyword
	}
	return nil
}

// Add returns a new set with the normalized word appended
func (k Keywords) Add(word string) (Keywords, error) {
	if err := k.Check(word); err != nil {
		return k, err
	}
	out := slices.Clone(k)
	return append(out, NormalizeKeyword(word)), nil
}

// Remove returns a new set without word and whether it was present
func (k Keywords) Remove(word string) (Keywords, bool) {
	word = NormalizeKeyword(word)
	idx := slices.Index(k, word)
	if idx < 0 {
		return k, false
	}
	out := slices.Clone(k)
	return slices.Delete(out, idx, idx+1), true
}

// Search returns the keywords containing query, in order.
// An empty query returns a copy of the full set.
func (k Keywords) Search(query string) Keywords {
	query = strings.ToLower(query)
	if query == "" {
		return slices.Clone(k)
	}
	out := Keywords{}
	for _, w := range k {
		if strings.Contains(strings.ToLower(w), query) {
			out = append(out, w)
		}
	}
	return out
}

// SortedAlphabetically returns a copy sorted case-insensitively
func (k Keywords) SortedAlphabetically() Keywords {
	out := slices.Clone(k)
	slices.SortStableFunc(out, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	return out
}
