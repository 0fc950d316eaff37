package cvec

import "errors"

var (
	// ErrSizeMismatch is returned when input or output buffer lengths differ.
	ErrSizeMismatch = errors.New("buffer size mismatch")

	// ErrNotInvertible is returned by Chain.Invert when a recorded operation
	// has no well-defined inverse.
	ErrNotInvertible = errors.New("operation chain is not invertible")

	// ErrZeroScalar is returned when constructing a NonZeroScalar from zero.
	ErrZeroScalar = errors.New("scalar must be non-zero")
)
