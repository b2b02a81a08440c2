package power

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrBadTable reports invalid tabulated spectrum input.
var ErrBadTable = errors.New("power: invalid table")

// Table is a spectrum interpolated linearly in log k / log P from
// sampled points. Outside the sampled range it extrapolates with the
// power law defined by the end segments, which matches the physical
// expectation of power-law tails well away from the turnover.
type Table struct {
	logk []float64
	logp []float64
}

// NewTable builds an interpolated spectrum from parallel slices of
// wavenumbers and powers. The wavenumbers must be strictly increasing
// and positive, the powers positive, with at least two samples.
func NewTable(ks, ps []float64) (*Table, error) {
	if len(ks) != len(ps) {
		return nil, fmt.Errorf("%w: length mismatch", ErrBadTable)
	}

	if len(ks) < 2 {
		return nil, fmt.Errorf("%w: need at least two samples", ErrBadTable)
	}

	t := &Table{
		logk: make([]float64, len(ks)),
		logp: make([]float64, len(ps)),
	}

	prev := 0.0
	for i, k := range ks {
		if k <= 0 || k <= prev {
			return nil, fmt.Errorf("%w: wavenumbers must be positive and strictly increasing", ErrBadTable)
		}

		if ps[i] <= 0 {
			return nil, fmt.Errorf("%w: powers must be positive", ErrBadTable)
		}

		t.logk[i] = math.Log(k)
		t.logp[i] = math.Log(ps[i])
		prev = k
	}

	return t, nil
}

// At evaluates the interpolated spectrum at k. Non-positive k yields 0.
func (t *Table) At(k float64) float64 {
	if k <= 0 {
		return 0
	}

	x := math.Log(k)
	n := len(t.logk)

	// Index of the segment [i, i+1] containing x, clamped so that
	// out-of-range arguments reuse the first or last segment slope.
	i := sort.SearchFloat64s(t.logk, x) - 1
	if i < 0 {
		i = 0
	}

	if i > n-2 {
		i = n - 2
	}

	frac := (x - t.logk[i]) / (t.logk[i+1] - t.logk[i])

	return math.Exp(t.logp[i] + frac*(t.logp[i+1]-t.logp[i]))
}
