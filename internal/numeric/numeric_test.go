package numeric

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	cases := []struct {
		value, min, max, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{0.5, 1, 0, 0.5}, // swapped bounds
		{3, 1, 0, 1},
	}

	for _, tc := range cases {
		if got := Clamp(tc.value, tc.min, tc.max); got != tc.want {
			t.Fatalf("Clamp(%v, %v, %v) = %v, want %v", tc.value, tc.min, tc.max, got, tc.want)
		}
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 0) {
		t.Fatal("default tolerance should accept 1e-13 offset")
	}
	if NearlyEqual(1.0, 1.001, 1e-6) {
		t.Fatal("0.1% mismatch accepted at 1e-6 tolerance")
	}
	if !NearlyEqual(1e10, 1e10*(1+1e-9), 1e-8) {
		t.Fatal("relative comparison failed for large magnitudes")
	}
	if !NearlyEqual(0, 0, 0) {
		t.Fatal("zeros must compare equal")
	}
}

func TestLogSpace(t *testing.T) {
	got := LogSpace(1e-3, 1e3, 7)
	if len(got) != 7 {
		t.Fatalf("length mismatch: got %d want 7", len(got))
	}

	if got[0] != 1e-3 || got[6] != 1e3 {
		t.Fatalf("endpoints mismatch: got %v, %v", got[0], got[6])
	}

	for i := 1; i < len(got); i++ {
		ratio := got[i] / got[i-1]
		if math.Abs(ratio-10) > 1e-9 {
			t.Fatalf("ratio at %d: got %v want 10", i, ratio)
		}
	}

	if LogSpace(0, 1, 5) != nil {
		t.Fatal("non-positive lower bound should return nil")
	}
	if LogSpace(1, 2, 1) != nil {
		t.Fatal("n < 2 should return nil")
	}
}
