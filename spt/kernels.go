package spt

import "math"

// Integration limits for the loop integrals. Every wavenumber the
// integrators touch is confined to [QMin, QMax].
const (
	QMin = 1e-5
	QMax = 1e5
)

// F2 is the symmetric second-order density kernel F2(q, k-q), written
// in terms of the triangle side lengths k, q, r. The loop momenta are
// clamped to QMin to keep the inverse-square terms finite.
func F2(k, q, r float64) float64 {
	q = math.Max(q, QMin)
	r = math.Max(r, QMin)

	k2, q2, r2 := k*k, q*q, r*r

	// Grouping q2+r2 keeps the rounding identical under a q/r swap.
	d := k2 - (q2 + r2)

	return 5/7. + (1/14.)*d*d/(q2*r2) + (1/4.)*d*(1/q2+1/r2)
}

// G2 is the symmetric second-order velocity-divergence kernel, the
// same triangle form as F2 with the velocity coefficients.
func G2(k, q, r float64) float64 {
	q = math.Max(q, QMin)
	r = math.Max(r, QMin)

	k2, q2, r2 := k*k, q*q, r*r
	d := k2 - (q2 + r2)

	return 3/7. + (1/7.)*d*d/(q2*r2) + (1/4.)*d*(1/q2+1/r2)
}
