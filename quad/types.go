// Package quad defines the integrand contract, options, and sentinel
// errors for the quad subpackage of github.com/ntessore/cosmology.
package quad

import "errors"

// Sentinel errors for quadrature operations.
var (
	// ErrBadTolerance indicates a NaN tolerance option.
	ErrBadTolerance = errors.New("quad: tolerance must not be NaN")

	// ErrNonFiniteBound indicates an integration bound that is NaN or Inf.
	ErrNonFiniteBound = errors.New("quad: integration bound must be finite")

	// ErrNonFiniteValue indicates the integrand produced a NaN or Inf value.
	ErrNonFiniteValue = errors.New("quad: integrand value is not finite")

	// ErrTolerance indicates the adaptive subdivision budget was exhausted
	// before the requested tolerance was reached.
	ErrTolerance = errors.New("quad: required tolerance not reached within the interval budget")
)

// Func is the batch integrand contract. The engine calls it with all
// node abscissae of one panel in xs and expects the integrand values
// written into out, where len(out) == len(xs). A returned error aborts
// the integration and is propagated to the caller unchanged.
type Func func(xs, out []float64) error

// Options configures adaptive integration.
//
// RelTol       – target relative error of the result.
// AbsTol       – target absolute error floor (guards results near zero).
// MaxIntervals – panel budget for adaptive bisection; once exceeded the
// engine reports ErrTolerance rather than returning a result that
// missed its target.
//
// Zero or negative fields are replaced by the defaults at entry.
type Options struct {
	RelTol       float64
	AbsTol       float64
	MaxIntervals int
}

// Default tolerances and budget. 1e-10 relative keeps distance measures
// comfortably inside the 1e-8 contract of the callers; 256 panels is
// far beyond what any smooth expansion history needs.
const (
	DefaultRelTol       = 1e-10
	DefaultAbsTol       = 1e-12
	DefaultMaxIntervals = 256
)

// DefaultOptions returns an Options with default settings:
// RelTol=1e-10, AbsTol=1e-12, MaxIntervals=256.
func DefaultOptions() Options {
	return Options{
		RelTol:       DefaultRelTol,
		AbsTol:       DefaultAbsTol,
		MaxIntervals: DefaultMaxIntervals,
	}
}
