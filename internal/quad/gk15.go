package quad

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// 15-point Kronrod abscissae on [-1, 1], ascending. The odd-indexed
// entries (plus the centre) are the embedded 7-point Gauss abscissae.
var nodes = [15]float64{
	-0.9914553711208126,
	-0.9491079123427585,
	-0.8648644233597691,
	-0.7415311855993944,
	-0.5860872354676911,
	-0.4058451513773972,
	-0.2077849550078985,
	0,
	0.2077849550078985,
	0.4058451513773972,
	0.5860872354676911,
	0.7415311855993944,
	0.8648644233597691,
	0.9491079123427585,
	0.9914553711208126,
}

var kronrodWeights = [15]float64{
	0.0229353220105292,
	0.0630920926299786,
	0.1047900103222502,
	0.1406532597155259,
	0.1690047266392679,
	0.1903505780647854,
	0.2044329400752989,
	0.2094821410847278,
	0.2044329400752989,
	0.1903505780647854,
	0.1690047266392679,
	0.1406532597155259,
	0.1047900103222502,
	0.0630920926299786,
	0.0229353220105292,
}

// gaussIdx selects the 7-point Gauss subset out of the 15 Kronrod nodes.
var gaussIdx = [7]int{1, 3, 5, 7, 9, 11, 13}

var gaussWeights = [7]float64{
	0.1294849661688697,
	0.2797053914892767,
	0.3818300505051189,
	0.4179591836734694,
	0.3818300505051189,
	0.2797053914892767,
	0.1294849661688697,
}

// gk15 evaluates the Gauss–Kronrod 15-point rule on [a, b] and returns
// the Kronrod estimate together with |K15 - G7| as the local error.
func gk15(f func(float64) float64, a, b float64) (float64, float64) {
	c := 0.5 * (a + b)
	h := 0.5 * (b - a)

	var fv [15]float64
	for i, x := range nodes {
		fv[i] = f(c + h*x)
	}

	k := h * vecmath.DotProduct(kronrodWeights[:], fv[:])

	g := 0.0
	for i, idx := range gaussIdx {
		g += gaussWeights[i] * fv[idx]
	}

	g *= h

	return k, math.Abs(k - g)
}

// gk15Tensor evaluates the tensor-product rule on the rectangle
// [xa, xb] x [ya, yb], contracting rows with the Kronrod weights and
// using the embedded Gauss subset in both dimensions for the error.
func gk15Tensor(f func(x, y float64) float64, xa, xb, ya, yb float64) (float64, float64) {
	cx := 0.5 * (xa + xb)
	hx := 0.5 * (xb - xa)
	cy := 0.5 * (ya + yb)
	hy := 0.5 * (yb - ya)

	var row [15]float64

	var rowK, rowG [15]float64

	for iy, y := range nodes {
		yy := cy + hy*y
		for ix, x := range nodes {
			row[ix] = f(cx+hx*x, yy)
		}

		rowK[iy] = vecmath.DotProduct(kronrodWeights[:], row[:])

		g := 0.0
		for i, idx := range gaussIdx {
			g += gaussWeights[i] * row[idx]
		}

		rowG[iy] = g
	}

	k := vecmath.DotProduct(kronrodWeights[:], rowK[:])

	g := 0.0
	for i, idx := range gaussIdx {
		g += gaussWeights[i] * rowG[idx]
	}

	area := hx * hy

	return area * k, math.Abs(area * (k - g))
}
