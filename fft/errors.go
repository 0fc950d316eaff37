package fft

import "errors"

var (
	// ErrInvalidSize is returned when the transform size is not a positive
	// power of two.
	ErrInvalidSize = errors.New("invalid transform size: must be a positive power of two")

	// ErrSizeMismatch is returned when an input or output buffer length does
	// not match the plan size.
	ErrSizeMismatch = errors.New("buffer size does not match plan size")
)
