package spectrum

import (
	"fmt"

	"github.com/MeKo-Tech/algo-spectrum/cvec"
	"github.com/MeKo-Tech/algo-spectrum/fft"
	"github.com/MeKo-Tech/algo-spectrum/window"
)

// Analyzer runs the spectrum pipeline for repeated frames of one size,
// reusing a single FFT plan, window table, and scratch buffers across calls.
//
// Thread safety: an Analyzer is NOT safe for concurrent use because of its
// scratch buffers. For parallel analysis, create one Analyzer per goroutine.
type Analyzer struct {
	opts  Options
	plan  *fft.Plan
	win   []float64
	frame []float64
	x     *cvec.Buffer
}

// NewAnalyzer creates an analyzer for frames of the given size.
// The size must be a positive power of two. A WithFFTSize option is
// ignored in favor of the explicit size.
func NewAnalyzer(size int, opts ...Option) (*Analyzer, error) {
	o := applyOptions(opts)
	o.FFTSize = size

	if o.SampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	plan, err := fft.NewPlan(size)
	if err != nil {
		return nil, fmt.Errorf("creating FFT plan: %w", err)
	}

	win, err := window.New(o.Window, size)
	if err != nil {
		return nil, fmt.Errorf("building window: %w", err)
	}

	return &Analyzer{
		opts:  o,
		plan:  plan,
		win:   win,
		frame: make([]float64, size),
		x:     cvec.New(size),
	}, nil
}

// Len returns the frame size.
func (a *Analyzer) Len() int {
	return a.plan.Len()
}

// Spectrum analyzes one frame. Inputs shorter than the frame size are
// zero-padded, longer ones truncated. The returned Result does not share
// memory with the analyzer.
func (a *Analyzer) Spectrum(samples []float64) (*Result, error) {
	n := copy(a.frame, samples)
	for i := n; i < len(a.frame); i++ {
		a.frame[i] = 0
	}

	return analyzeFrame(a.plan, a.win, a.frame, a.x, a.opts)
}
