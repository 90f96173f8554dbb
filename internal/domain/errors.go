package domain

import "gitlab.com/tozd/go/errors"

var (
	ErrEmptyKeyword     = errors.Base("empty keyword")
	ErrDuplicateKeyword = errors.Base("duplicate keyword")
	ErrUnknownSide      = errors.Base("unknown side")
)
