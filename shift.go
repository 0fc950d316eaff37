package spectrum

import "github.com/MeKo-Tech/algo-spectrum/cvec"

// Shift circularly rotates a real sequence by ⌊N/2⌋, moving the
// zero-frequency bin to the centre of the sequence.
func Shift(x []float64) []float64 {
	n := len(x)
	out := make([]float64, n)
	if n == 0 {
		return out
	}

	h := n / 2
	for i, v := range x {
		out[(i+h)%n] = v
	}

	return out
}

// ShiftComplex circularly rotates a complex sequence by ⌊N/2⌋.
func ShiftComplex(b *cvec.Buffer) *cvec.Buffer {
	n := b.Len()
	out := cvec.New(n)
	if n == 0 {
		return out
	}

	h := n / 2
	for i := range n {
		j := (i + h) % n
		out.Re[j] = b.Re[i]
		out.Im[j] = b.Im[i]
	}

	return out
}
