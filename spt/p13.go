package spt

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-cosmo/internal/quad"
)

// bracketCoeffs holds the per-channel coefficients of the P13 angular
// bracket s(r), r = q/k. The closed form is
//
//	s(r) = a/r^2 - b + c r^2 - d r^4
//	     + (3/r^3) (r^2-1)^3 (e r^2 + f) ln((1+r)/|1-r|)
//
// with validated local expansions replacing it where it loses
// precision: a Taylor series below r = 1e-2, a linear expansion inside
// |r-1| < 1e-10 where the closed form is 0/0, and an inverse-power
// series above r = 100 where the leading terms cancel catastrophically.
// The numbers come straight from the angular integrals of the
// third-order kernels; they are tabulated, not derived here.
type bracketCoeffs struct {
	taylor  [4]float64 // c0 + c1 r^2 + c2 r^4 + c3 r^6
	atUnity [2]float64 // c0 + c1 (r-1)
	asym    [4]float64 // c0 + c1/r^2 + c2/r^4 + c3/r^6
	a, b    float64
	c, d    float64
	e, f    float64
}

var brackets = [3]bracketCoeffs{
	chDD: {
		taylor:  [4]float64{-168, 928. / 5, -4512. / 35, 416. / 21},
		atUnity: [2]float64{-88, 8},
		asym:    [4]float64{-488. / 5, 96. / 5, -160. / 21, -1376. / 1155},
		a:       12, b: 158, c: 100, d: 42, e: 7, f: 2,
	},
	chDT: {
		taylor:  [4]float64{-168, 416. / 5, -2976. / 35, 224. / 15},
		atUnity: [2]float64{-152, -56},
		asym:    [4]float64{-200, 2208. / 35, -1312. / 105, -1888. / 1155},
		a:       24, b: 202, c: 56, d: 30, e: 5, f: 4,
	},
	chTT: {
		taylor:  [4]float64{-56, -32. / 5, -96. / 7, 352. / 105},
		atUnity: [2]float64{-72, -40},
		asym:    [4]float64{-504. / 5, 1248. / 35, -608. / 105, -160. / 231},
		a:       12, b: 82, c: 4, d: 6, e: 1, f: 2,
	},
}

// bracket evaluates s(r) for one channel with the four-branch scheme.
func bracket(ch channel, r float64) float64 {
	co := &brackets[ch]

	switch {
	case r < 1e-2:
		r2 := r * r
		return co.taylor[0] + r2*(co.taylor[1]+r2*(co.taylor[2]+r2*co.taylor[3]))

	case math.Abs(r-1) < 1e-10:
		return co.atUnity[0] + co.atUnity[1]*(r-1)

	case r > 100:
		ir2 := 1 / (r * r)
		return co.asym[0] + ir2*(co.asym[1]+ir2*(co.asym[2]+ir2*co.asym[3]))

	default:
		r2 := r * r
		u := r2 - 1

		return co.a/r2 - co.b + co.c*r2 - co.d*r2*r2 +
			(3/(r2*r))*u*u*u*(co.e*r2+co.f)*math.Log((1+r)/math.Abs(1-r))
	}
}

// p13 runs the 1D driver for one channel over
// log q in [log QMin, log QMax]. The prefactor carries the channel's
// angular normalization: V = k^2 P_L(k) / (252 * 4 pi^2) for dd and dt,
// and k^2 P_L(k) / (84 * 4 pi^2) for tt.
func (e *Evaluator) p13(ch channel, k float64) (float64, error) {
	if k <= 0 {
		return 0, fmt.Errorf("%w: k = %g", ErrNonPositiveWavenumber, k)
	}

	pk := e.plin.At(k)
	if pk == 0 {
		// The prefactor scales with P_L(k), so the loop term vanishes
		// without integrating.
		return 0, nil
	}

	norm := 252.0
	if ch == chTT {
		norm = 84.0
	}

	v0 := k * k / (norm * 4 * math.Pi * math.Pi) * pk
	epsabs := e.cfg.epsrel * math.Abs(pk) / math.Abs(v0)

	val, err := quad.Integrate(func(logq float64) float64 {
		q := math.Exp(logq)
		return q * e.plin.At(q) * bracket(ch, q/k)
	}, math.Log(QMin), math.Log(QMax), e.cfg.epsrel, epsabs)

	return v0 * val, err
}
