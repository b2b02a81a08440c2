package spt

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-cosmo/cosmology"
	"github.com/cwbudde/algo-cosmo/power"
)

var (
	// ErrInvalidField reports a field index outside {Density, VelocityDivergence}.
	ErrInvalidField = errors.New("spt: invalid field indices")

	// ErrNonPositiveWavenumber reports k <= 0 where the loop integrals
	// are undefined.
	ErrNonPositiveWavenumber = errors.New("spt: wavenumber must be positive")

	// ErrZeroPower reports a vanishing linear spectrum where a ratio
	// against P_L(k) is required.
	ErrZeroPower = errors.New("spt: linear power vanishes at k")
)

// Field selects a perturbed field in the two-point queries.
type Field int

const (
	// Density is the matter density contrast.
	Density Field = 1
	// VelocityDivergence is the peculiar-velocity divergence.
	VelocityDivergence Field = 2
)

// channel indexes the three distinct field pairings. Exactly these
// three exist; the physics fixes the set permanently.
type channel int

const (
	chDD channel = iota
	chDT
	chTT
)

// channelFor maps a validated field pair to its channel. The pairing
// is symmetric, so only the product matters.
func channelFor(a, b Field) (channel, bool) {
	if (a != Density && a != VelocityDivergence) || (b != Density && b != VelocityDivergence) {
		return 0, false
	}

	switch a * b {
	case 1:
		return chDD, true
	case 2:
		return chDT, true
	default:
		return chTT, true
	}
}

const defaultTolerance = 1e-4

// Option configures an Evaluator.
type Option func(*config)

type config struct {
	epsrel float64
	qmax   float64
}

func defaultConfig() config {
	return config{
		epsrel: defaultTolerance,
		qmax:   QMax,
	}
}

// WithTolerance sets the relative error target of the loop integrals.
func WithTolerance(epsrel float64) Option {
	return func(c *config) {
		if epsrel > 0 {
			c.epsrel = epsrel
		}
	}
}

// WithMaxWavenumber sets the upper momentum cutoff of the P22 integral.
func WithMaxWavenumber(qmax float64) Option {
	return func(c *config) {
		if qmax > 0 {
			c.qmax = qmax
		}
	}
}

// Evaluator computes one-loop spectra against a fixed linear spectrum
// and cosmology. It is immutable after construction.
type Evaluator struct {
	cosmo *cosmology.Parameters
	plin  power.Spectrum
	cfg   config
}

// New builds an Evaluator. The cosmology is carried as opaque context
// and may be nil; the linear spectrum must not be. Both references are
// retained for the Evaluator's lifetime.
func New(cosmo *cosmology.Parameters, plin power.Spectrum, opts ...Option) *Evaluator {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return &Evaluator{cosmo: cosmo, plin: plin, cfg: cfg}
}

// Cosmology returns the parameter set the Evaluator was built with.
func (e *Evaluator) Cosmology() *cosmology.Parameters { return e.cosmo }

// P returns the one-loop corrected spectrum
// P_L(k) + P13_ab(k) + P22_ab(k).
func (e *Evaluator) P(k float64, a, b Field) (float64, error) {
	ch, ok := channelFor(a, b)
	if !ok {
		return 0, fmt.Errorf("%w: a = %d, b = %d", ErrInvalidField, a, b)
	}

	p13, err := e.p13(ch, k)
	if err != nil {
		return 0, err
	}

	p22, err := e.p22(ch, k)
	if err != nil {
		return 0, err
	}

	return e.plin.At(k) + p13 + p22, nil
}

// P22 returns the second-order mode-coupling term P22_ab(k).
func (e *Evaluator) P22(k float64, a, b Field) (float64, error) {
	ch, ok := channelFor(a, b)
	if !ok {
		return 0, fmt.Errorf("%w: a = %d, b = %d", ErrInvalidField, a, b)
	}

	return e.p22(ch, k)
}

// P13 returns the third-order propagator term P13_ab(k).
func (e *Evaluator) P13(k float64, a, b Field) (float64, error) {
	ch, ok := channelFor(a, b)
	if !ok {
		return 0, fmt.Errorf("%w: a = %d, b = %d", ErrInvalidField, a, b)
	}

	return e.p13(ch, k)
}

// G returns the growth-correction diagnostic
// 1 + P13_dd(k)/(2 P_L(k)).
func (e *Evaluator) G(k float64) (float64, error) {
	pk := e.plin.At(k)
	if pk == 0 {
		return 0, fmt.Errorf("%w: k = %g", ErrZeroPower, k)
	}

	p13, err := e.p13(chDD, k)
	if err != nil {
		return 0, err
	}

	return 1 + 0.5*p13/pk, nil
}
