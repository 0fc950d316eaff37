package spectrum

import "github.com/MeKo-Tech/algo-spectrum/window"

// Sides selects between a one-sided and a two-sided amplitude spectrum.
type Sides int

const (
	// OneSided keeps the non-negative-frequency bins k in [0, N/2]
	// (length N/2+1), doubling all bins except DC and Nyquist to account
	// for the folded-in negative-frequency energy.
	OneSided Sides = iota

	// TwoSided keeps all N bins with no doubling.
	TwoSided
)

// Options configures the spectrum pipeline.
type Options struct {
	// SampleRate in Hz. Must be positive.
	SampleRate float64

	// FFTSize is the transform length, a power of two.
	// Zero selects the next power of two >= the input length (minimum 1).
	FFTSize int

	// Window is the analysis window type.
	Window window.Type

	// Sides selects one- or two-sided output.
	Sides Sides
}

// Option is a function that modifies Options.
type Option func(*Options)

// DefaultOptions returns the default pipeline options: sample rate 1,
// automatic FFT size, rectangular window, one-sided output.
func DefaultOptions() Options {
	return Options{
		SampleRate: 1,
		FFTSize:    0,
		Window:     window.Rectangular,
		Sides:      OneSided,
	}
}

// WithSampleRate sets the sample rate in Hz.
func WithSampleRate(rate float64) Option {
	return func(o *Options) {
		o.SampleRate = rate
	}
}

// WithFFTSize fixes the transform length. It must be a power of two.
func WithFFTSize(size int) Option {
	return func(o *Options) {
		o.FFTSize = size
	}
}

// WithWindow sets the analysis window type.
func WithWindow(typ window.Type) Option {
	return func(o *Options) {
		o.Window = typ
	}
}

// WithSides selects one- or two-sided output.
func WithSides(sides Sides) Option {
	return func(o *Options) {
		o.Sides = sides
	}
}

func applyOptions(opts []Option) Options {
	base := DefaultOptions()
	for _, opt := range opts {
		opt(&base)
	}

	return base
}
