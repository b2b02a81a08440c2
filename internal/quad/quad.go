// Package quad implements globally adaptive Gauss–Kronrod quadrature in
// one and two dimensions with combined absolute/relative error control.
//
// Both integrators subdivide the worst interval (largest local error
// estimate) until the accumulated error satisfies
// max(epsabs, epsrel*|result|) or the subdivision budget is exhausted,
// in which case the best-effort estimate is returned together with
// ErrNotConverged.
//
// The rules are open (no endpoint evaluations), so integrands with
// integrable singularities on the domain boundary are acceptable.
// The package holds no state; concurrent calls are safe as long as the
// integrand itself is reentrant.
package quad

import (
	"container/heap"
	"errors"
	"fmt"
	"math"
)

// ErrNotConverged reports that the subdivision budget was exhausted
// before the requested tolerance was met. The returned value is still
// the best available estimate.
var ErrNotConverged = errors.New("quad: requested tolerance not reached")

const (
	maxIntervals1D = 2000
	maxCells2D     = 3000
)

type interval struct {
	a, b   float64
	c, d   float64 // second dimension, unused in 1D
	value  float64
	errEst float64
}

type intervalHeap []interval

func (h intervalHeap) Len() int           { return len(h) }
func (h intervalHeap) Less(i, j int) bool { return h[i].errEst > h[j].errEst }
func (h intervalHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *intervalHeap) Push(x any)        { *h = append(*h, x.(interval)) }

func (h *intervalHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]

	return x
}

func tolerance(epsrel, epsabs, value float64) float64 {
	tol := epsrel * math.Abs(value)
	if epsabs > tol {
		tol = epsabs
	}

	return tol
}

// Integrate approximates the integral of f over [a, b].
func Integrate(f func(float64) float64, a, b, epsrel, epsabs float64) (float64, error) {
	if a == b {
		return 0, nil
	}

	sign := 1.0
	if a > b {
		a, b = b, a
		sign = -1
	}

	v, e := gk15(f, a, b)
	segs := intervalHeap{{a: a, b: b, value: v, errEst: e}}
	heap.Init(&segs)

	total, totalErr := v, e

	for totalErr > tolerance(epsrel, epsabs, total) {
		if len(segs) >= maxIntervals1D {
			return sign * total, fmt.Errorf("%w: error estimate %.3e over [%g, %g]", ErrNotConverged, totalErr, a, b)
		}

		worst := heap.Pop(&segs).(interval)
		mid := 0.5 * (worst.a + worst.b)

		lv, le := gk15(f, worst.a, mid)
		rv, re := gk15(f, mid, worst.b)

		total += lv + rv - worst.value
		totalErr += le + re - worst.errEst

		heap.Push(&segs, interval{a: worst.a, b: mid, value: lv, errEst: le})
		heap.Push(&segs, interval{a: mid, b: worst.b, value: rv, errEst: re})
	}

	return sign * total, nil
}

// Integrate2D approximates the integral of f over the rectangle
// [lo[0], hi[0]] x [lo[1], hi[1]].
func Integrate2D(f func(x, y float64) float64, lo, hi [2]float64, epsrel, epsabs float64) (float64, error) {
	if lo[0] == hi[0] || lo[1] == hi[1] {
		return 0, nil
	}

	sign := 1.0

	for dim := 0; dim < 2; dim++ {
		if lo[dim] > hi[dim] {
			lo[dim], hi[dim] = hi[dim], lo[dim]
			sign = -sign
		}
	}

	v, e := gk15Tensor(f, lo[0], hi[0], lo[1], hi[1])
	cells := intervalHeap{{a: lo[0], b: hi[0], c: lo[1], d: hi[1], value: v, errEst: e}}
	heap.Init(&cells)

	total, totalErr := v, e

	for totalErr > tolerance(epsrel, epsabs, total) {
		if len(cells) >= maxCells2D {
			return sign * total, fmt.Errorf("%w: error estimate %.3e over 2D domain", ErrNotConverged, totalErr)
		}

		worst := heap.Pop(&cells).(interval)

		var left, right interval
		if worst.b-worst.a >= worst.d-worst.c {
			mid := 0.5 * (worst.a + worst.b)
			left = interval{a: worst.a, b: mid, c: worst.c, d: worst.d}
			right = interval{a: mid, b: worst.b, c: worst.c, d: worst.d}
		} else {
			mid := 0.5 * (worst.c + worst.d)
			left = interval{a: worst.a, b: worst.b, c: worst.c, d: mid}
			right = interval{a: worst.a, b: worst.b, c: mid, d: worst.d}
		}

		left.value, left.errEst = gk15Tensor(f, left.a, left.b, left.c, left.d)
		right.value, right.errEst = gk15Tensor(f, right.a, right.b, right.c, right.d)

		total += left.value + right.value - worst.value
		totalErr += left.errEst + right.errEst - worst.errEst

		heap.Push(&cells, left)
		heap.Push(&cells, right)
	}

	return sign * total, nil
}
