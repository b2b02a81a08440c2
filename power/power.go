package power

import "math"

// Spectrum is a linear power spectrum P(k), defined for k > 0.
//
// Implementations must be reentrant: the integrators evaluate a
// Spectrum from tight inner loops and, potentially, from multiple
// goroutines at once.
type Spectrum interface {
	At(k float64) float64
}

// Func adapts a plain function to the Spectrum interface.
type Func func(k float64) float64

// At evaluates the wrapped function.
func (f Func) At(k float64) float64 { return f(k) }

// PowerLaw is the analytic spectrum P(k) = Amp * k^Index.
type PowerLaw struct {
	Amp   float64
	Index float64
}

// At evaluates the power law at k. Non-positive k yields 0.
func (p PowerLaw) At(k float64) float64 {
	if k <= 0 {
		return 0
	}

	return p.Amp * math.Pow(k, p.Index)
}
