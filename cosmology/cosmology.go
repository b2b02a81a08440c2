// Package cosmology holds the background cosmological parameter set.
//
// The perturbation-theory integrators carry a *Parameters reference as
// opaque context; none of the one-loop formulas consume it directly,
// but downstream extensions (growth factors, redshift evolution) will.
package cosmology

import (
	"errors"
	"fmt"
)

// ErrInvalidParameters reports an unphysical parameter combination.
var ErrInvalidParameters = errors.New("cosmology: invalid parameters")

// Parameters is a flat background cosmology.
type Parameters struct {
	H0     float64 // Hubble constant, km/s/Mpc
	OmegaM float64 // total matter density fraction
	OmegaB float64 // baryon density fraction
	OmegaL float64 // dark energy density fraction
	Ns     float64 // scalar spectral index
	Sigma8 float64 // power normalization at 8 Mpc/h
}

// Default returns a Planck-like parameter set.
func Default() Parameters {
	return Parameters{
		H0:     67.4,
		OmegaM: 0.315,
		OmegaB: 0.049,
		OmegaL: 0.685,
		Ns:     0.965,
		Sigma8: 0.811,
	}
}

// Validate checks the parameter set for obvious inconsistencies.
func (p Parameters) Validate() error {
	switch {
	case p.H0 <= 0:
		return fmt.Errorf("%w: H0 must be positive", ErrInvalidParameters)
	case p.OmegaM < 0 || p.OmegaB < 0 || p.OmegaL < 0:
		return fmt.Errorf("%w: density fractions must be non-negative", ErrInvalidParameters)
	case p.OmegaB > p.OmegaM:
		return fmt.Errorf("%w: baryons exceed total matter", ErrInvalidParameters)
	case p.Sigma8 < 0:
		return fmt.Errorf("%w: sigma8 must be non-negative", ErrInvalidParameters)
	}

	return nil
}
