package spectrum

import (
	"errors"
	"math"
	"testing"

	"github.com/MeKo-Tech/algo-spectrum/cvec"
	"github.com/MeKo-Tech/algo-spectrum/fft"
	"github.com/MeKo-Tech/algo-spectrum/window"
)

func cvecFromParts(re, im []float64) *cvec.Buffer {
	b := cvec.New(len(re))
	copy(b.Re, re)
	copy(b.Im, im)

	return b
}

func resultsEqual(t *testing.T, got, want *Result, context string) {
	t.Helper()

	if len(got.Amplitude) != len(want.Amplitude) {
		t.Fatalf("%s: amplitude length %d, want %d", context, len(got.Amplitude), len(want.Amplitude))
	}

	for k := range want.Amplitude {
		if math.Abs(got.Amplitude[k]-want.Amplitude[k]) > 1e-12 {
			t.Errorf("%s: amp[%d] = %v, want %v", context, k, got.Amplitude[k], want.Amplitude[k])
		}
		if math.Abs(got.Phase[k]-want.Phase[k]) > 1e-12 {
			t.Errorf("%s: phase[%d] = %v, want %v", context, k, got.Phase[k], want.Phase[k])
		}
		if got.Frequencies[k] != want.Frequencies[k] {
			t.Errorf("%s: freq[%d] = %v, want %v", context, k, got.Frequencies[k], want.Frequencies[k])
		}
	}

	if got.Peak != want.Peak {
		t.Errorf("%s: peak = %+v, want %+v", context, got.Peak, want.Peak)
	}
}

func TestAnalyzer_MatchesCompute(t *testing.T) {
	a, err := NewAnalyzer(64, WithSampleRate(64), WithWindow(window.Hann))
	if err != nil {
		t.Fatalf("NewAnalyzer failed: %v", err)
	}

	if a.Len() != 64 {
		t.Fatalf("Len = %d, want 64", a.Len())
	}

	signals := [][]float64{
		sineWave(64, 8),
		sineWave(64, 3),
		sineWave(64, 8)[:40], // shorter frame, zero-padded
		make([]float64, 64),
	}

	for i, x := range signals {
		got, err := a.Spectrum(x)
		if err != nil {
			t.Fatalf("Spectrum #%d failed: %v", i, err)
		}

		want, err := Compute(x, WithSampleRate(64), WithWindow(window.Hann), WithFFTSize(64))
		if err != nil {
			t.Fatalf("Compute #%d failed: %v", i, err)
		}

		resultsEqual(t, got, want, "frame")
	}
}

func TestAnalyzer_ResultsDoNotShareMemory(t *testing.T) {
	a, err := NewAnalyzer(16)
	if err != nil {
		t.Fatalf("NewAnalyzer failed: %v", err)
	}

	first, err := a.Spectrum(sineWave(16, 2))
	if err != nil {
		t.Fatalf("Spectrum failed: %v", err)
	}

	saved := first.Amplitude[2]

	if _, err := a.Spectrum(make([]float64, 16)); err != nil {
		t.Fatalf("Spectrum failed: %v", err)
	}

	if first.Amplitude[2] != saved {
		t.Error("a later Spectrum call mutated an earlier Result")
	}
}

func TestAnalyzer_TruncatesLongInput(t *testing.T) {
	a, err := NewAnalyzer(64, WithSampleRate(64))
	if err != nil {
		t.Fatalf("NewAnalyzer failed: %v", err)
	}

	long := append(sineWave(64, 8), 99, 99, 99)

	res, err := a.Spectrum(long)
	if err != nil {
		t.Fatalf("Spectrum failed: %v", err)
	}

	if res.Peak.Index != 8 {
		t.Errorf("Peak.Index = %d, want 8", res.Peak.Index)
	}
}

func TestNewAnalyzer_Errors(t *testing.T) {
	if _, err := NewAnalyzer(48); !errors.Is(err, fft.ErrInvalidSize) {
		t.Errorf("size 48 error = %v, want fft.ErrInvalidSize", err)
	}

	if _, err := NewAnalyzer(64, WithSampleRate(-1)); !errors.Is(err, ErrInvalidSampleRate) {
		t.Errorf("bad rate error = %v, want ErrInvalidSampleRate", err)
	}

	if _, err := NewAnalyzer(64, WithWindow(window.Type(99))); !errors.Is(err, window.ErrUnknownType) {
		t.Errorf("bad window error = %v, want window.ErrUnknownType", err)
	}
}

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()

	if o.SampleRate != 1 || o.FFTSize != 0 || o.Window != window.Rectangular || o.Sides != OneSided {
		t.Errorf("DefaultOptions = %+v", o)
	}
}
