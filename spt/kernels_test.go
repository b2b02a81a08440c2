package spt

import (
	"math"
	"testing"
)

func TestKernelSymmetry(t *testing.T) {
	ks := []float64{0.05, 0.1, 1, 10}
	qs := []float64{0.01, 0.3, 2, 50}

	for _, k := range ks {
		for _, q := range qs {
			for _, r := range qs {
				if f1, f2 := F2(k, q, r), F2(k, r, q); f1 != f2 {
					t.Fatalf("F2 not symmetric at k=%v q=%v r=%v: %v vs %v", k, q, r, f1, f2)
				}

				if g1, g2 := G2(k, q, r), G2(k, r, q); g1 != g2 {
					t.Fatalf("G2 not symmetric at k=%v q=%v r=%v: %v vs %v", k, q, r, g1, g2)
				}
			}
		}
	}
}

func TestKernelEquilateral(t *testing.T) {
	// For k = q = r the closed forms reduce to F2 = 2/7, G2 = 1/14.
	for _, k := range []float64{0.01, 0.5, 3} {
		if got, want := F2(k, k, k), 2.0/7.0; math.Abs(got-want) > 1e-14 {
			t.Fatalf("F2 equilateral at k=%v: got %.16f want %.16f", k, got, want)
		}

		if got, want := G2(k, k, k), 1.0/14.0; math.Abs(got-want) > 1e-14 {
			t.Fatalf("G2 equilateral at k=%v: got %.16f want %.16f", k, got, want)
		}
	}
}

func TestKernelClampsTinyMomenta(t *testing.T) {
	// Zero loop momenta are clamped to QMin instead of dividing by zero.
	for _, f := range []float64{F2(0.1, 0, 0.1), G2(0.1, 0, 0.1), F2(0.1, 0, 0)} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			t.Fatalf("kernel not finite under clamping: %v", f)
		}
	}

	if got, want := F2(0.1, 0, 0.1), F2(0.1, QMin, 0.1); got != want {
		t.Fatalf("clamp mismatch: got %v want %v", got, want)
	}
}
