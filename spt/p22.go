package spt

import (
	"math"

	"github.com/cwbudde/algo-cosmo/internal/quad"
	"github.com/cwbudde/algo-cosmo/power"
)

// p22Integrand evaluates the mode-coupling integrand for one channel
// at a sample point of the (log u, v) rectangle. The substitution
// q = (k/2)(u-v), r = (k/2)(u+v) maps the triangle-constrained (q, r)
// convolution onto the rectangle u >= 1, 0 <= v <= 1, which is what
// makes the adaptive rule converge.
func p22Integrand(ch channel, plin power.Spectrum, k, logu, v float64) float64 {
	u := math.Exp(logu)
	q := (k / 2) * (u - v)
	r := (k / 2) * (u + v)

	var kernel float64

	switch ch {
	case chDD:
		f := F2(k, q, r)
		kernel = f * f
	case chDT:
		kernel = F2(k, q, r) * G2(k, q, r)
	case chTT:
		g := G2(k, q, r)
		kernel = g * g
	}

	return u * q * r * plin.At(q) * plin.At(r) * kernel
}

// p22 runs the 2D driver for one channel: domain
// log u in [0, log(2 qmax / k)], v in [0, 1], prefactor V = k/(2 pi^2),
// absolute target epsrel*P_L(k)/V so the scaled result tracks epsrel
// against P_L(k).
func (e *Evaluator) p22(ch channel, k float64) (float64, error) {
	if k <= 0 {
		return 0, nil
	}

	v0 := k / (2 * math.Pi * math.Pi)

	epsabs := 0.0
	if pk := e.plin.At(k); pk != 0 {
		epsabs = e.cfg.epsrel * math.Abs(pk) / v0
	}

	lo := [2]float64{0, 0}
	hi := [2]float64{math.Log(2 * e.cfg.qmax / k), 1}

	val, err := quad.Integrate2D(func(logu, v float64) float64 {
		return p22Integrand(ch, e.plin, k, logu, v)
	}, lo, hi, e.cfg.epsrel, epsabs)

	// A convergence failure from the engine passes through unmodified,
	// still carrying the best-effort estimate.
	return v0 * val, err
}
