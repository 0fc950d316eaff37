package cvec

import "math"

// Scale returns a scaled by the real factor s in a new buffer.
func Scale(a *Buffer, s float64) *Buffer {
	dst := New(a.Len())
	// Equal lengths by construction, error is impossible.
	_ = ScaleInto(dst, a, s)

	return dst
}

// ScaleInto computes dst[i] = a[i] * s. dst may alias a.
func ScaleInto(dst, a *Buffer, s float64) error {
	n := a.Len()
	if dst.Len() != n {
		return ErrSizeMismatch
	}

	for i := range n {
		dst.Re[i] = a.Re[i] * s
		dst.Im[i] = a.Im[i] * s
	}

	return nil
}

// Add returns the elementwise sum a + b in a new buffer.
func Add(a, b *Buffer) (*Buffer, error) {
	dst := New(a.Len())
	if err := AddInto(dst, a, b); err != nil {
		return nil, err
	}

	return dst, nil
}

// AddInto computes dst[i] = a[i] + b[i]. dst may alias a or b.
func AddInto(dst, a, b *Buffer) error {
	n := a.Len()
	if b.Len() != n || dst.Len() != n {
		return ErrSizeMismatch
	}

	for i := range n {
		dst.Re[i] = a.Re[i] + b.Re[i]
		dst.Im[i] = a.Im[i] + b.Im[i]
	}

	return nil
}

// Sub returns the elementwise difference a - b in a new buffer.
func Sub(a, b *Buffer) (*Buffer, error) {
	dst := New(a.Len())
	if err := SubInto(dst, a, b); err != nil {
		return nil, err
	}

	return dst, nil
}

// SubInto computes dst[i] = a[i] - b[i]. dst may alias a or b.
func SubInto(dst, a, b *Buffer) error {
	n := a.Len()
	if b.Len() != n || dst.Len() != n {
		return ErrSizeMismatch
	}

	for i := range n {
		dst.Re[i] = a.Re[i] - b.Re[i]
		dst.Im[i] = a.Im[i] - b.Im[i]
	}

	return nil
}

// Mul returns the Hadamard (elementwise) product a * b in a new buffer.
func Mul(a, b *Buffer) (*Buffer, error) {
	dst := New(a.Len())
	if err := MulInto(dst, a, b); err != nil {
		return nil, err
	}

	return dst, nil
}

// MulInto computes the Hadamard product dst[i] = a[i] * b[i].
// dst may alias a or b.
func MulInto(dst, a, b *Buffer) error {
	n := a.Len()
	if b.Len() != n || dst.Len() != n {
		return ErrSizeMismatch
	}

	for i := range n {
		re := a.Re[i]*b.Re[i] - a.Im[i]*b.Im[i]
		im := a.Re[i]*b.Im[i] + a.Im[i]*b.Re[i]
		dst.Re[i] = re
		dst.Im[i] = im
	}

	return nil
}

// MulScalar returns a multiplied by the complex scalar (re, im) in a new buffer.
func MulScalar(a *Buffer, re, im float64) *Buffer {
	dst := New(a.Len())
	_ = MulScalarInto(dst, a, re, im)

	return dst
}

// MulScalarInto computes dst[i] = a[i] * (re + i*im). dst may alias a.
func MulScalarInto(dst, a *Buffer, re, im float64) error {
	n := a.Len()
	if dst.Len() != n {
		return ErrSizeMismatch
	}

	for i := range n {
		r := a.Re[i]*re - a.Im[i]*im
		m := a.Re[i]*im + a.Im[i]*re
		dst.Re[i] = r
		dst.Im[i] = m
	}

	return nil
}

// Div returns the elementwise quotient a / b in a new buffer.
// Division by a complex zero yields ±Inf/NaN per IEEE-754.
func Div(a, b *Buffer) (*Buffer, error) {
	dst := New(a.Len())
	if err := DivInto(dst, a, b); err != nil {
		return nil, err
	}

	return dst, nil
}

// DivInto computes dst[i] = a[i] / b[i]. dst may alias a or b.
func DivInto(dst, a, b *Buffer) error {
	n := a.Len()
	if b.Len() != n || dst.Len() != n {
		return ErrSizeMismatch
	}

	for i := range n {
		den := b.Re[i]*b.Re[i] + b.Im[i]*b.Im[i]
		re := (a.Re[i]*b.Re[i] + a.Im[i]*b.Im[i]) / den
		im := (a.Im[i]*b.Re[i] - a.Re[i]*b.Im[i]) / den
		dst.Re[i] = re
		dst.Im[i] = im
	}

	return nil
}

// DivScalar returns a divided by the complex scalar (re, im) in a new buffer.
func DivScalar(a *Buffer, re, im float64) *Buffer {
	dst := New(a.Len())
	_ = DivScalarInto(dst, a, re, im)

	return dst
}

// DivScalarInto computes dst[i] = a[i] / (re + i*im). dst may alias a.
func DivScalarInto(dst, a *Buffer, re, im float64) error {
	den := re*re + im*im

	return MulScalarInto(dst, a, re/den, -im/den)
}

// Conj returns the elementwise complex conjugate of a in a new buffer.
func Conj(a *Buffer) *Buffer {
	dst := New(a.Len())
	_ = ConjInto(dst, a)

	return dst
}

// ConjInto computes dst[i] = conj(a[i]). dst may alias a.
func ConjInto(dst, a *Buffer) error {
	n := a.Len()
	if dst.Len() != n {
		return ErrSizeMismatch
	}

	for i := range n {
		dst.Re[i] = a.Re[i]
		dst.Im[i] = -a.Im[i]
	}

	return nil
}

// Abs returns the elementwise magnitude |a| as a real slice.
func Abs(a *Buffer) []float64 {
	dst := make([]float64, a.Len())
	_ = AbsInto(dst, a)

	return dst
}

// AbsInto computes dst[i] = |a[i]| using math.Hypot, which avoids premature
// overflow for extreme magnitudes.
func AbsInto(dst []float64, a *Buffer) error {
	n := a.Len()
	if len(dst) != n {
		return ErrSizeMismatch
	}

	for i := range n {
		dst[i] = math.Hypot(a.Re[i], a.Im[i])
	}

	return nil
}

// Phase returns the elementwise argument of a as a real slice, in (-π, π].
func Phase(a *Buffer) []float64 {
	dst := make([]float64, a.Len())
	_ = PhaseInto(dst, a)

	return dst
}

// PhaseInto computes dst[i] = atan2(Im a[i], Re a[i]).
func PhaseInto(dst []float64, a *Buffer) error {
	n := a.Len()
	if len(dst) != n {
		return ErrSizeMismatch
	}

	for i := range n {
		dst[i] = math.Atan2(a.Im[i], a.Re[i])
	}

	return nil
}
