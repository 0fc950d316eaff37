package fft

import (
	"math"
	"math/bits"
)

// Plan holds the pre-computed tables for radix-2 transforms of one size:
// the bit-reversal permutation and the per-stage twiddle factor tables.
//
// Stage s (1-indexed, block size m = 2^s) stores m/2 twiddle factors
// (cos(-2πk/m), sin(-2πk/m)) for k in [0, m/2). The inverse transform reuses
// the same tables with the sign of the sine term flipped.
//
// A Plan is immutable after construction and safe for concurrent use.
type Plan struct {
	size   int
	stages int
	rev    []int
	cos    [][]float64
	sin    [][]float64
}

// NewPlan creates a transform plan for the given size.
// The size must be a positive power of two.
func NewPlan(size int) (*Plan, error) {
	if !IsPow2(size) {
		return nil, ErrInvalidSize
	}

	stages := bits.Len(uint(size)) - 1

	p := &Plan{
		size:   size,
		stages: stages,
		rev:    bitReversal(size),
		cos:    make([][]float64, stages),
		sin:    make([][]float64, stages),
	}

	for s := 1; s <= stages; s++ {
		m := 1 << s
		half := m >> 1
		cos := make([]float64, half)
		sin := make([]float64, half)

		for k := range half {
			sn, cs := math.Sincos(-2.0 * math.Pi * float64(k) / float64(m))
			cos[k] = cs
			sin[k] = sn
		}

		p.cos[s-1] = cos
		p.sin[s-1] = sin
	}

	return p, nil
}

// Len returns the transform size.
func (p *Plan) Len() int {
	return p.size
}

// bitReversal builds the bit-reversed index permutation for length n.
// For every next power of two the sequence so far is doubled in place and
// appended with each entry increased by one.
func bitReversal(n int) []int {
	rev := make([]int, n)
	for m := 1; m < n; m <<= 1 {
		for i := range m {
			rev[i] <<= 1
			rev[i+m] = rev[i] + 1
		}
	}

	return rev
}
