package fft

import (
	"fmt"

	"github.com/MeKo-Tech/algo-spectrum/cvec"
)

// Convolve computes the linear convolution of two real sequences through the
// frequency domain. The result has length len(x)+len(y)-1. An empty input
// yields a nil result.
//
// Both sequences are zero-padded to the next power of two, transformed,
// multiplied elementwise, and transformed back.
func Convolve(x, y []float64) ([]float64, error) {
	if len(x) == 0 || len(y) == 0 {
		return nil, nil
	}

	n := len(x) + len(y) - 1
	size := NextPow2(n)

	plan, err := NewPlan(size)
	if err != nil {
		return nil, fmt.Errorf("creating convolution plan: %w", err)
	}

	px := make([]float64, size)
	copy(px, x)
	py := make([]float64, size)
	copy(py, y)

	fx, err := plan.Forward(px)
	if err != nil {
		return nil, err
	}

	fy, err := plan.Forward(py)
	if err != nil {
		return nil, err
	}

	if err := cvec.MulInto(fx, fx, fy); err != nil {
		return nil, err
	}

	out, err := plan.Inverse(fx)
	if err != nil {
		return nil, err
	}

	return out.Re[:n], nil
}
