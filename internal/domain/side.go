package domain

import (
	"strings"

	"gitlab.com/tozd/go/errors"
)

// Side identifies which root a folder currently lives under
type Side int

const (
	SideSource Side = iota
	SideTarget
)

func (s Side) String() string {
	switch s {
	case SideTarget:
		return "target"
	default:
		return "source"
	}
}

// Opposite returns the other side
func (s Side) Opposite() Side {
	if s == SideTarget {
		return SideSource
	}
	return SideTarget
}

// ParseSide parses "source" or "target" (case-insensitive)
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "source", "src":
		return SideSource, nil
	case "target", "tgt":
		return SideTarget, nil
	default:
		return SideSource, errors.Errorf("%w %q: expected source or target", ErrUnknownSide, s)
	}
}
