// Package distance defines options and sentinel errors for the
// distance subpackage of github.com/ntessore/cosmology.
package distance

import (
	"errors"

	"github.com/ntessore/cosmology/cosmo"
	"github.com/ntessore/cosmology/quad"
)

// Sentinel errors for distance operations. Kernel and quadrature
// failures (cosmo.ErrRedshiftDomain, cosmo.ErrUnphysical,
// quad.ErrTolerance, quad.ErrNonFiniteValue) propagate unchanged.
var (
	// ErrNilModel indicates a nil *cosmo.Model was passed to a measure.
	ErrNilModel = errors.New("distance: model is nil")

	// ErrNilMeasure indicates a nil Measure was passed to All.
	ErrNilMeasure = errors.New("distance: measure is nil")

	// ErrNonPositiveDistance indicates a distance modulus was requested
	// for a non-positive luminosity distance (e.g. at z = 0).
	ErrNonPositiveDistance = errors.New("distance: distance modulus requires a positive luminosity distance")
)

// Options configures the quadrature behind every measure.
//
// RelTol       – target relative error of the integral.
// AbsTol       – absolute error floor for results near zero.
// MaxIntervals – adaptive panel budget; exhausting it yields
// quad.ErrTolerance rather than an unconverged result.
//
// Zero fields fall back to the quad defaults (1e-10, 1e-12, 256),
// comfortably inside the 1e-8 relative contract of the measures.
type Options struct {
	RelTol       float64
	AbsTol       float64
	MaxIntervals int
}

// DefaultOptions returns an Options relying on the quad defaults.
func DefaultOptions() Options {
	return Options{}
}

// quadOptions translates Options for package quad.
func (o Options) quadOptions() quad.Options {
	return quad.Options{
		RelTol:       o.RelTol,
		AbsTol:       o.AbsTol,
		MaxIntervals: o.MaxIntervals,
	}
}

// Measure is the common shape of every query in this package: one
// model, one redshift, one result. All fans a Measure out over a
// redshift slice.
type Measure func(m *cosmo.Model, z float64, opts Options) (float64, error)
