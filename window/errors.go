package window

import "errors"

var (
	// ErrInvalidSize is returned when the window size is not positive.
	ErrInvalidSize = errors.New("invalid window size: must be positive")

	// ErrUnknownType is returned for an unrecognized window type.
	ErrUnknownType = errors.New("unknown window type")

	// ErrSizeMismatch is returned when the input and window lengths differ.
	ErrSizeMismatch = errors.New("input and window size mismatch")
)
