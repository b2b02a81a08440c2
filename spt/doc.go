// Package spt computes one-loop matter power spectra in standard
// perturbation theory.
//
// Given a linear spectrum P_L(k), the nonlinear spectrum for a pair of
// fields a, b (density or velocity divergence) decomposes as
//
//	P_ab(k) = P_L(k) + P13_ab(k) + P22_ab(k)
//
// where P22 is a two-dimensional mode-coupling integral over the F2/G2
// kernels and P13 is a one-dimensional integral over a closed-form
// angular bracket evaluated piecewise to sidestep the removable
// singularity at q = k and catastrophic cancellation at small and
// large q/k.
//
// # Usage
//
// Construct an Evaluator once and query it for any k:
//
//	e := spt.New(&cosmo, plin, spt.WithTolerance(1e-4))
//	p, err := e.P(0.1, spt.Density, spt.Density)
//
// An Evaluator holds no mutable state and is safe for concurrent use
// provided the linear spectrum is reentrant. Each query is a fresh
// numerical evaluation; nothing is fitted, tabulated or cached.
package spt
