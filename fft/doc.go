// Package fft implements the radix-2 Cooley-Tukey discrete Fourier transform
// for power-of-two lengths.
//
// The package uses a plan-based API: create a Plan once per transform size,
// then call its transform methods repeatedly. The plan pre-computes the
// bit-reversal permutation and per-stage twiddle factor tables.
//
// The forward transform is unnormalized; the inverse transform scales by 1/N,
// so Inverse(Forward(x)) recovers x up to floating-point error.
//
// Plans are immutable after construction and safe for concurrent use; the
// transforms write only to their destination buffers.
package fft
