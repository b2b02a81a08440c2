package power

import (
	"errors"
	"math"
	"testing"
)

func TestPowerLawAt(t *testing.T) {
	p := PowerLaw{Amp: 2, Index: -1.5}

	if got, want := p.At(1.0), 2.0; math.Abs(got-want) > 1e-15 {
		t.Fatalf("At(1) = %v, want %v", got, want)
	}

	if got, want := p.At(4.0), 2*math.Pow(4, -1.5); math.Abs(got-want) > 1e-15 {
		t.Fatalf("At(4) = %v, want %v", got, want)
	}

	if got := p.At(0); got != 0 {
		t.Fatalf("At(0) = %v, want 0", got)
	}

	if got := p.At(-1); got != 0 {
		t.Fatalf("At(-1) = %v, want 0", got)
	}
}

func TestFuncAdapter(t *testing.T) {
	var s Spectrum = Func(func(k float64) float64 { return 3 * k })
	if got := s.At(2); got != 6 {
		t.Fatalf("Func adapter: got %v want 6", got)
	}
}

func TestTableInterpolatesPowerLawExactly(t *testing.T) {
	// A power law is linear in log-log, so piecewise-linear
	// interpolation must reproduce it everywhere, including the
	// extrapolated tails.
	ref := PowerLaw{Amp: 3, Index: -2}

	ks := []float64{1e-3, 1e-2, 1e-1, 1, 10}
	ps := make([]float64, len(ks))

	for i, k := range ks {
		ps[i] = ref.At(k)
	}

	tab, err := NewTable(ks, ps)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}

	for _, k := range []float64{1e-4, 3.7e-3, 1e-2, 0.55, 9.99, 250} {
		got := tab.At(k)
		want := ref.At(k)

		if math.Abs(got-want)/want > 1e-12 {
			t.Fatalf("At(%v) = %v, want %v", k, got, want)
		}
	}

	if got := tab.At(0); got != 0 {
		t.Fatalf("At(0) = %v, want 0", got)
	}
}

func TestTableInterpolationIsLocal(t *testing.T) {
	ks := []float64{1, 2, 4, 8}
	ps := []float64{1, 4, 2, 16}

	tab, err := NewTable(ks, ps)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}

	// Sample points are reproduced exactly.
	for i, k := range ks {
		if got := tab.At(k); math.Abs(got-ps[i])/ps[i] > 1e-12 {
			t.Fatalf("At(%v) = %v, want %v", k, got, ps[i])
		}
	}

	// Geometric midpoint of a log-log segment gives the geometric
	// mean of the endpoint powers.
	got := tab.At(math.Sqrt(2 * 4))
	want := math.Sqrt(4 * 2)

	if math.Abs(got-want)/want > 1e-12 {
		t.Fatalf("midpoint: got %v want %v", got, want)
	}
}

func TestTableRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		ks   []float64
		ps   []float64
	}{
		{"length mismatch", []float64{1, 2}, []float64{1}},
		{"too short", []float64{1}, []float64{1}},
		{"non-increasing", []float64{1, 1}, []float64{1, 2}},
		{"negative wavenumber", []float64{-1, 2}, []float64{1, 2}},
		{"non-positive power", []float64{1, 2}, []float64{1, 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewTable(tc.ks, tc.ps); !errors.Is(err, ErrBadTable) {
				t.Fatalf("want ErrBadTable, got %v", err)
			}
		})
	}
}
