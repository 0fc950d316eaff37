package fft

import "github.com/MeKo-Tech/algo-spectrum/cvec"

// Forward computes the unnormalized forward DFT of a real input,
// interpreted as complex with zero imaginary part.
func (p *Plan) Forward(src []float64) (*cvec.Buffer, error) {
	dst := cvec.New(p.size)
	if err := p.ForwardInto(dst, src); err != nil {
		return nil, err
	}

	return dst, nil
}

// ForwardInto computes the unnormalized forward DFT of a real input into dst.
// dst must have the plan size and must not alias src; it is left untouched
// on error.
func (p *Plan) ForwardInto(dst *cvec.Buffer, src []float64) error {
	if len(src) != p.size || dst.Len() != p.size {
		return ErrSizeMismatch
	}

	for i, v := range src {
		j := p.rev[i]
		dst.Re[j] = v
		dst.Im[j] = 0
	}

	p.butterflies(dst.Re, dst.Im, false)

	return nil
}

// ForwardComplex computes the unnormalized forward DFT of a complex input.
func (p *Plan) ForwardComplex(src *cvec.Buffer) (*cvec.Buffer, error) {
	dst := cvec.New(p.size)
	if err := p.ForwardComplexInto(dst, src); err != nil {
		return nil, err
	}

	return dst, nil
}

// ForwardComplexInto computes the unnormalized forward DFT of src into dst.
// dst may be src itself for an in-place transform; it is left untouched
// on error.
func (p *Plan) ForwardComplexInto(dst, src *cvec.Buffer) error {
	if err := p.scatter(dst, src); err != nil {
		return err
	}

	p.butterflies(dst.Re, dst.Im, false)

	return nil
}

// Inverse computes the inverse DFT of src, normalized by 1/N.
func (p *Plan) Inverse(src *cvec.Buffer) (*cvec.Buffer, error) {
	dst := cvec.New(p.size)
	if err := p.InverseInto(dst, src); err != nil {
		return nil, err
	}

	return dst, nil
}

// InverseInto computes the inverse DFT of src into dst, normalized by 1/N.
// dst may be src itself for an in-place transform; it is left untouched
// on error.
func (p *Plan) InverseInto(dst, src *cvec.Buffer) error {
	if err := p.scatter(dst, src); err != nil {
		return err
	}

	p.butterflies(dst.Re, dst.Im, true)

	inv := 1.0 / float64(p.size)
	for i := range p.size {
		dst.Re[i] *= inv
		dst.Im[i] *= inv
	}

	return nil
}

// scatter applies the bit-reversal permutation while copying src into dst.
// When dst is src the permutation is applied by swapping in place.
func (p *Plan) scatter(dst, src *cvec.Buffer) error {
	if src.Len() != p.size || dst.Len() != p.size {
		return ErrSizeMismatch
	}

	if dst == src || (p.size > 0 && &dst.Re[0] == &src.Re[0]) {
		for i, j := range p.rev {
			if j > i {
				dst.Re[i], dst.Re[j] = dst.Re[j], dst.Re[i]
				dst.Im[i], dst.Im[j] = dst.Im[j], dst.Im[i]
			}
		}

		return nil
	}

	for i, j := range p.rev {
		dst.Re[j] = src.Re[i]
		dst.Im[j] = src.Im[i]
	}

	return nil
}

// butterflies runs the iterative Cooley-Tukey stages over bit-reversed data.
// The twiddle tables carry the forward sign convention exp(-2πik/m); the
// inverse flips the sign of the sine term.
func (p *Plan) butterflies(re, im []float64, inverse bool) {
	sign := 1.0
	if inverse {
		sign = -1.0
	}

	for s := range p.stages {
		cos := p.cos[s]
		sin := p.sin[s]
		m := 2 << s
		half := m >> 1

		for base := 0; base < p.size; base += m {
			for j := range half {
				wr := cos[j]
				wi := sign * sin[j]

				i := base + j
				k := i + half

				tr := wr*re[k] - wi*im[k]
				ti := wr*im[k] + wi*re[k]

				re[k] = re[i] - tr
				im[k] = im[i] - ti
				re[i] += tr
				im[i] += ti
			}
		}
	}
}
