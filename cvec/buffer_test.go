package cvec

import (
	"math"
	"testing"
)

const tolerance = 1e-12

func TestNew_Zeroed(t *testing.T) {
	b := New(8)

	if b.Len() != 8 {
		t.Fatalf("Len = %d, want 8", b.Len())
	}

	for i := range 8 {
		if b.Re[i] != 0 || b.Im[i] != 0 {
			t.Errorf("element %d not zero: (%v, %v)", i, b.Re[i], b.Im[i])
		}
	}
}

func TestNewFilled(t *testing.T) {
	b := NewFilled(4, 1.5, -2.5)

	for i := range 4 {
		if b.Re[i] != 1.5 || b.Im[i] != -2.5 {
			t.Errorf("element %d = (%v, %v), want (1.5, -2.5)", i, b.Re[i], b.Im[i])
		}
	}
}

func TestClone_Independent(t *testing.T) {
	a := NewFilled(4, 1, 2)
	c := a.Clone()

	c.Re[0] = 99
	c.Im[3] = -99

	if a.Re[0] != 1 || a.Im[3] != 2 {
		t.Errorf("clone shares memory with original")
	}
}

func TestZero(t *testing.T) {
	b := NewFilled(4, 3, 4)
	b.Zero()

	for i := range 4 {
		if b.Re[i] != 0 || b.Im[i] != 0 {
			t.Errorf("element %d not zeroed", i)
		}
	}
}

func TestComplexRoundTrip(t *testing.T) {
	x := []complex128{1 + 2i, -3 + 4i, 0, 5 - 6i}
	b := FromComplex(x)

	got := b.Complex()
	for i := range x {
		if got[i] != x[i] {
			t.Errorf("element %d = %v, want %v", i, got[i], x[i])
		}
	}
}

func TestCopy(t *testing.T) {
	src := NewFilled(4, 7, -1)
	dst := New(4)

	if err := Copy(dst, src); err != nil {
		t.Fatalf("Copy failed: %v", err)
	}

	for i := range 4 {
		if dst.Re[i] != 7 || dst.Im[i] != -1 {
			t.Errorf("element %d = (%v, %v), want (7, -1)", i, dst.Re[i], dst.Im[i])
		}
	}

	if err := Copy(New(3), src); err == nil {
		t.Error("Copy with mismatched length did not fail")
	}
}

func almostEqual(a, b, tol float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}

	return math.Abs(a-b) <= tol
}
