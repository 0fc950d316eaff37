package spectrum

import (
	"fmt"

	"github.com/MeKo-Tech/algo-spectrum/cvec"
	"github.com/MeKo-Tech/algo-spectrum/fft"
	"github.com/MeKo-Tech/algo-spectrum/window"
)

// Peak describes the dominant bin of an amplitude spectrum.
type Peak struct {
	Index     int
	Frequency float64
	Amplitude float64
	Phase     float64
}

// Result bundles the output of the spectrum pipeline. Frequencies, Amplitude,
// and Phase have length N/2+1 for one-sided output and N for two-sided.
type Result struct {
	Frequencies []float64
	Amplitude   []float64
	Phase       []float64
	Peak        Peak
}

// Compute runs the full analysis pipeline on a real signal: frame assembly
// (zero-padding or truncating to the FFT size), windowing, forward transform,
// amplitude scaling, phase extraction, frequency axis, and peak detection.
//
// With no explicit FFT size, the frame is the next power of two >= the input
// length (minimum 1). Oversized inputs are truncated.
func Compute(samples []float64, opts ...Option) (*Result, error) {
	o := applyOptions(opts)
	if o.SampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	size := o.FFTSize
	if size == 0 {
		size = fft.NextPow2(len(samples))
	}

	plan, err := fft.NewPlan(size)
	if err != nil {
		return nil, fmt.Errorf("creating FFT plan: %w", err)
	}

	win, err := window.New(o.Window, size)
	if err != nil {
		return nil, fmt.Errorf("building window: %w", err)
	}

	frame := make([]float64, size)
	copy(frame, samples)

	return analyzeFrame(plan, win, frame, cvec.New(size), o)
}

// analyzeFrame runs the pipeline on an assembled frame. The frame is windowed
// in place and x is overwritten with the transform output.
func analyzeFrame(plan *fft.Plan, win, frame []float64, x *cvec.Buffer, o Options) (*Result, error) {
	size := plan.Len()

	if err := window.ApplyInto(frame, frame, win); err != nil {
		return nil, err
	}

	if err := plan.ForwardInto(x, frame); err != nil {
		return nil, err
	}

	amp := amplitude(cvec.Abs(x), size, o.Sides)
	phase := cvec.Phase(x)[:len(amp)]

	freqs, err := BinFrequencies(size, o.SampleRate, o.Sides)
	if err != nil {
		return nil, err
	}

	idx := peakIndex(amp)

	return &Result{
		Frequencies: freqs,
		Amplitude:   amp,
		Phase:       phase,
		Peak: Peak{
			Index:     idx,
			Frequency: freqs[idx],
			Amplitude: amp[idx],
			Phase:     phase[idx],
		},
	}, nil
}

// amplitude scales raw magnitudes to the amplitude spectrum. One-sided output
// doubles every bin except DC and (for even sizes) Nyquist.
func amplitude(mag []float64, size int, sides Sides) []float64 {
	n := float64(size)

	if sides == TwoSided {
		amp := make([]float64, size)
		for k := range mag {
			amp[k] = mag[k] / n
		}

		return amp
	}

	m := size/2 + 1
	amp := make([]float64, m)

	for k := range m {
		a := mag[k] / n
		if k != 0 && !(size%2 == 0 && k == size/2) {
			a *= 2
		}

		amp[k] = a
	}

	return amp
}

// peakIndex selects the dominant bin, preferring tonal content over DC bias:
// the argmax over bins k >= 1 wins whenever any of those bins is strictly
// positive; otherwise the overall argmax (bin 0 for zero and pure-DC input).
func peakIndex(amp []float64) int {
	maxIdx := 0
	maxVal := amp[0]

	nonDCIdx := 0
	nonDCVal := 0.0
	seeded := false
	hasNonDC := false

	for k := 1; k < len(amp); k++ {
		v := amp[k]

		if !seeded || v > nonDCVal {
			nonDCIdx = k
			nonDCVal = v
			seeded = true
		}

		if v > 0 {
			hasNonDC = true
		}

		if v > maxVal {
			maxIdx = k
			maxVal = v
		}
	}

	if hasNonDC {
		return nonDCIdx
	}

	return maxIdx
}
