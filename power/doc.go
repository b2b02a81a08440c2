// Package power defines the linear matter power spectrum abstraction
// consumed by the perturbation-theory integrators, together with two
// concrete spectra: an analytic power law and a log-log interpolated
// table built from sampled (k, P) pairs.
//
// A Spectrum is expected to be finite and continuous on the wavenumber
// range the integrators probe (roughly 1e-5 to 1e5 in h/Mpc units) and
// safe for concurrent readers; all implementations in this package are
// immutable after construction.
package power
