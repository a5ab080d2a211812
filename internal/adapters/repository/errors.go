package repository

import "errors"

// Sentinel kinds for ranking store errors.
var (
	ErrInvalidLimit = errors.New("invalid top-n limit")
)
