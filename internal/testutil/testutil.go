// Package testutil holds shared assertion helpers for numeric tests.
package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-cosmo/internal/numeric"
)

// RequireNearlyEqual fails t unless got and want agree within eps,
// compared absolutely for small magnitudes and relatively otherwise.
func RequireNearlyEqual(t *testing.T, got, want, eps float64) {
	t.Helper()

	if !numeric.NearlyEqual(got, want, eps) {
		t.Fatalf("got %v, want %v (eps %v)", got, want, eps)
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or
// if any element pair exceeds eps.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	for i := range got {
		if !numeric.NearlyEqual(got[i], want[i], eps) {
			t.Fatalf("index %d: got %v, want %v (eps %v)", i, got[i], want[i], eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()

	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireAscending fails t unless the slice is strictly increasing.
func RequireAscending(t *testing.T, data []float64) {
	t.Helper()

	for i := 1; i < len(data); i++ {
		if data[i] <= data[i-1] {
			t.Fatalf("not strictly increasing at %d: %v after %v", i, data[i], data[i-1])
		}
	}
}
