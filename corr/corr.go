// Package corr computes the real-space two-point correlation function
// of a power spectrum,
//
//	xi(r) = 1/(2 pi^2 r) * Integral k P(k) sin(kr) dk,
//
// by sampling k P(k) on a uniform wavenumber grid and evaluating the
// sine transform with a single FFT. The returned xi values live on the
// conjugate grid r_m = 2 pi m / (N dk); an optional Gaussian damping
// factor suppresses ringing from a hard cutoff at KMax.
package corr

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-cosmo/power"
)

// ErrBadConfig reports an unusable transform configuration.
var ErrBadConfig = errors.New("corr: invalid config")

const (
	defaultKMax    = 20.0
	defaultSamples = 4096
)

// Config holds the transform parameters.
type Config struct {
	// KMax is the upper wavenumber cutoff of the integral.
	KMax float64
	// Samples is the FFT length; rounded up to a power of two.
	Samples int
	// Damping, when positive, multiplies the integrand by
	// exp(-(k/Damping)^2) to soften the cutoff.
	Damping float64
}

// Result holds the correlation function on its separation grid.
// R is ascending; Xi[i] is the correlation at R[i].
type Result struct {
	R  []float64
	Xi []float64
}

func normalizeConfig(cfg Config) Config {
	if cfg.KMax <= 0 {
		cfg.KMax = defaultKMax
	}

	if cfg.Samples <= 0 {
		cfg.Samples = defaultSamples
	}

	cfg.Samples = nextPowerOf2(cfg.Samples)

	if cfg.Damping < 0 {
		cfg.Damping = 0
	}

	return cfg
}

// Compute evaluates the correlation function of p.
func Compute(p power.Spectrum, cfg Config) (Result, error) {
	if p == nil {
		return Result{}, fmt.Errorf("%w: nil spectrum", ErrBadConfig)
	}

	cfg = normalizeConfig(cfg)

	n := cfg.Samples
	if n < 4 {
		return Result{}, fmt.Errorf("%w: need at least 4 samples", ErrBadConfig)
	}

	dk := cfg.KMax / float64(n)

	in := make([]complex128, n)

	for j := 1; j < n; j++ {
		k := float64(j) * dk
		g := k * p.At(k)

		if cfg.Damping > 0 {
			x := k / cfg.Damping
			g *= math.Exp(-x * x)
		}

		in[j] = complex(g, 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return Result{}, err
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return Result{}, err
	}

	// Forward FFT follows the engineering sign convention
	// exp(-2 pi i j m / N), so the sine sum is -Im of bin m.
	half := n / 2
	r := make([]float64, half-1)
	xi := make([]float64, half-1)

	for m := 1; m < half; m++ {
		r[m-1] = 2 * math.Pi * float64(m) / (float64(n) * dk)
		xi[m-1] = imag(out[m])
	}

	vecmath.ScaleBlockInPlace(xi, -dk/(2*math.Pi*math.Pi))

	for i := range xi {
		xi[i] /= r[i]
	}

	return Result{R: r, Xi: xi}, nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
