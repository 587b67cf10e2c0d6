// Package cosmo defines core types, options, and sentinel errors
// for the cosmo subpackage of github.com/ntessore/cosmology.
package cosmo

import "errors"

// Sentinel errors for model construction and kernel evaluation.
var (
	// ErrHubbleValue indicates H0 is zero, negative, or not finite.
	ErrHubbleValue = errors.New("cosmo: Hubble constant must be positive and finite")

	// ErrNonFinite indicates a density or equation-of-state parameter is NaN or Inf.
	ErrNonFinite = errors.New("cosmo: model parameter must be finite")

	// ErrRedshiftDomain indicates a redshift outside the physical domain 1+z > 0.
	ErrRedshiftDomain = errors.New("cosmo: redshift must satisfy 1+z > 0")

	// ErrUnphysical indicates the parameter set yields a non-positive or
	// non-finite squared expansion rate at the evaluated redshift.
	ErrUnphysical = errors.New("cosmo: expansion rate squared is non-positive or non-finite")

	// ErrLengthMismatch indicates InvEfuncSeq received a destination slice
	// whose length differs from the redshift slice.
	ErrLengthMismatch = errors.New("cosmo: destination length must match redshift count")
)

// FlatnessEps is the curvature threshold below which a model is treated
// as spatially flat. Transverse-distance and volume formulas divide by
// √|Ok0|; below this threshold the flat forms are used instead.
const FlatnessEps = 1e-8

// DarkEnergyKind selects the dark-energy equation-of-state variant.
// It is a tagged kind dispatched in a single switch inside the kernel.
type DarkEnergyKind int

const (
	// Lambda is a cosmological constant: w = −1, f_de(z) = 1.
	Lambda DarkEnergyKind = iota

	// ConstantW is a constant equation of state w0:
	// f_de(z) = (1+z)^(3(1+w0)).
	ConstantW

	// EvolvingW is the CPL parameterization w(a) = w0 + wa(1−a):
	// f_de(z) = (1+z)^(3(1+w0+wa)) · exp(−3·wa·z/(1+z)).
	EvolvingW
)

// ModelOption configures optional Model parameters at construction.
type ModelOption func(*modelConfig)

// modelConfig collects the optional parameters before validation.
type modelConfig struct {
	ok0           float64
	ok0Set        bool
	ogamma0, onu0 float64
	w0, wa        float64
	kind          DarkEnergyKind
}

// WithCurvature pins the curvature density parameter Ok0 explicitly
// (free-curvature variant). When omitted, Ok0 is derived from the
// closure relation Ok0 = 1 − Om0 − Ode0 − Orad0.
func WithCurvature(ok0 float64) ModelOption {
	return func(c *modelConfig) {
		c.ok0 = ok0
		c.ok0Set = true
	}
}

// WithRadiation sets the photon (Ogamma0) and neutrino (Onu0) density
// parameters. Both default to zero; their sum Orad0 enters the kernel
// with the (1+z)⁴ scaling.
func WithRadiation(ogamma0, onu0 float64) ModelOption {
	return func(c *modelConfig) {
		c.ogamma0 = ogamma0
		c.onu0 = onu0
	}
}

// WithConstantW selects a constant dark-energy equation of state w0
// (wCDM). The default without options is w0 = −1, a cosmological
// constant.
func WithConstantW(w0 float64) ModelOption {
	return func(c *modelConfig) {
		c.w0 = w0
		c.wa = 0
		c.kind = ConstantW
	}
}

// WithEvolvingW selects the CPL evolving equation of state
// w(a) = w0 + wa(1−a).
func WithEvolvingW(w0, wa float64) ModelOption {
	return func(c *modelConfig) {
		c.w0 = w0
		c.wa = wa
		c.kind = EvolvingW
	}
}

// defaultModelConfig returns the configuration used when no options are
// passed: no radiation, derived curvature, cosmological-constant dark
// energy (w0 = −1, wa = 0).
func defaultModelConfig() modelConfig {
	return modelConfig{
		w0:   -1,
		wa:   0,
		kind: Lambda,
	}
}
