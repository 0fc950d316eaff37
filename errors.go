package spectrum

import "errors"

var (
	// ErrInvalidSize is returned by BinFrequencies when the transform size is
	// not positive. Compute and NewAnalyzer report invalid FFT sizes with a
	// wrapped fft.ErrInvalidSize instead.
	ErrInvalidSize = errors.New("invalid size: must be positive")

	// ErrInvalidSampleRate is returned when the sample rate is not positive.
	ErrInvalidSampleRate = errors.New("invalid sample rate: must be positive")
)
