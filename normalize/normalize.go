// Package normalize holds the field-level cleanup used when turning raw
// broker CSV cells into canonical trade values: tolerant numeric parsing,
// trade side inference, and symbol/tag/timestamp normalization.
//
// Every function here is pure. Per-cell problems come back as sentinel
// errors or zero values, never as substituted defaults, so callers can
// drop unusable rows instead of polluting downstream statistics.
package normalize

import "errors"

var (
	// ErrNotANumber marks a cell that cannot be read as a numeric value.
	ErrNotANumber = errors.New("normalize: not a number")

	// ErrBadTime marks a timestamp that is unparseable or fails the
	// sanity window (before year 2000, or in the future).
	ErrBadTime = errors.New("normalize: bad timestamp")
)
