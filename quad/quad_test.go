package quad_test

import (
	"errors"
	"math"
	"testing"

	"github.com/ntessore/cosmology/quad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scalar lifts a pointwise function into the batch Func contract.
func scalar(f func(x float64) float64) quad.Func {
	return func(xs, out []float64) error {
		for i, x := range xs {
			out[i] = f(x)
		}

		return nil
	}
}

// TestIntegrate_Polynomial verifies ∫[0,1] x² dx = 1/3; K15 is exact
// for polynomials up to degree 29, so one panel suffices.
func TestIntegrate_Polynomial(t *testing.T) {
	v, err := quad.Integrate(scalar(func(x float64) float64 { return x * x }), 0, 1, quad.DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3.0, v, 1e-14, "∫x² over [0,1]")
}

// TestIntegrate_Sine verifies ∫[0,π] sin x dx = 2.
func TestIntegrate_Sine(t *testing.T) {
	v, err := quad.Integrate(scalar(math.Sin), 0, math.Pi, quad.DefaultOptions())
	require.NoError(t, err)
	assert.InEpsilon(t, 2.0, v, 1e-12, "∫sin over [0,π]")
}

// TestIntegrate_ReversedBounds verifies b < a flips the sign.
func TestIntegrate_ReversedBounds(t *testing.T) {
	v, err := quad.Integrate(scalar(func(x float64) float64 { return x * x }), 1, 0, quad.DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, -1.0/3.0, v, 1e-14, "reversed bounds negate the integral")
}

// TestIntegrate_EmptyInterval verifies a == b returns 0 without
// touching the integrand.
func TestIntegrate_EmptyInterval(t *testing.T) {
	called := false
	f := quad.Func(func(xs, out []float64) error {
		called = true

		return nil
	})

	v, err := quad.Integrate(f, 2, 2, quad.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 0.0, v, "empty interval integrates to 0")
	assert.False(t, called, "integrand must not be evaluated")
}

// TestIntegrate_AdaptiveRefinement verifies a non-smooth integrand
// converges through bisection: ∫[0,1] √x dx = 2/3.
func TestIntegrate_AdaptiveRefinement(t *testing.T) {
	v, err := quad.Integrate(scalar(math.Sqrt), 0, 1, quad.DefaultOptions())
	require.NoError(t, err)
	assert.InEpsilon(t, 2.0/3.0, v, 1e-9, "∫√x needs adaptive panels near 0")
}

// TestIntegrate_BudgetExhausted verifies an impossible budget reports
// ErrTolerance instead of an unconverged value.
func TestIntegrate_BudgetExhausted(t *testing.T) {
	opts := quad.Options{RelTol: 1e-15, AbsTol: 1e-300, MaxIntervals: 1}
	_, err := quad.Integrate(scalar(func(x float64) float64 { return 1 / math.Sqrt(x) }), 0, 1, opts)
	assert.ErrorIs(t, err, quad.ErrTolerance, "budget of one panel cannot resolve x^-1/2")
}

// TestIntegrate_PropagatesIntegrandError verifies integrand errors
// surface unchanged through the engine.
func TestIntegrate_PropagatesIntegrandError(t *testing.T) {
	sentinel := errors.New("kernel failure")
	f := quad.Func(func(xs, out []float64) error { return sentinel })

	_, err := quad.Integrate(f, 0, 1, quad.DefaultOptions())
	assert.ErrorIs(t, err, sentinel, "integrand error must pass through")
}

// TestIntegrate_NonFiniteValue verifies NaN integrand output is
// reported, never folded into the sum.
func TestIntegrate_NonFiniteValue(t *testing.T) {
	_, err := quad.Integrate(scalar(func(x float64) float64 { return math.NaN() }), 0, 1, quad.DefaultOptions())
	assert.ErrorIs(t, err, quad.ErrNonFiniteValue)
}

// TestIntegrate_BadInputs verifies bound and tolerance validation.
func TestIntegrate_BadInputs(t *testing.T) {
	f := scalar(func(x float64) float64 { return x })

	_, err := quad.Integrate(f, 0, math.Inf(1), quad.DefaultOptions())
	assert.ErrorIs(t, err, quad.ErrNonFiniteBound, "infinite bound needs IntegrateToInf")

	_, err = quad.Integrate(f, math.NaN(), 1, quad.DefaultOptions())
	assert.ErrorIs(t, err, quad.ErrNonFiniteBound, "NaN bound")

	_, err = quad.Integrate(f, 0, 1, quad.Options{RelTol: math.NaN()})
	assert.ErrorIs(t, err, quad.ErrBadTolerance, "NaN tolerance")
}

// TestIntegrateToInf_Exponential verifies ∫[0,∞) e^(−x) dx = 1 through
// the rational substitution.
func TestIntegrateToInf_Exponential(t *testing.T) {
	v, err := quad.IntegrateToInf(scalar(func(x float64) float64 { return math.Exp(-x) }), 0, quad.DefaultOptions())
	require.NoError(t, err)
	assert.InEpsilon(t, 1.0, v, 1e-10, "∫e^-x over [0,∞)")
}

// TestIntegrateToInf_RationalTail verifies a power-law tail:
// ∫[a,∞) dx/(1+x)² = 1/(1+a).
func TestIntegrateToInf_RationalTail(t *testing.T) {
	f := scalar(func(x float64) float64 { return 1 / ((1 + x) * (1 + x)) })

	for _, a := range []float64{0, 1, 4} {
		v, err := quad.IntegrateToInf(f, a, quad.DefaultOptions())
		require.NoError(t, err, "a=%g", a)
		assert.InEpsilon(t, 1/(1+a), v, 1e-10, "tail integral from a=%g", a)
	}
}

// TestIntegrateToInf_BadBound verifies the finite-a contract.
func TestIntegrateToInf_BadBound(t *testing.T) {
	f := scalar(func(x float64) float64 { return math.Exp(-x) })
	_, err := quad.IntegrateToInf(f, math.Inf(1), quad.DefaultOptions())
	assert.ErrorIs(t, err, quad.ErrNonFiniteBound)
}

// TestDefaultOptions_Values pins the documented defaults.
func TestDefaultOptions_Values(t *testing.T) {
	opts := quad.DefaultOptions()
	assert.Equal(t, 1e-10, opts.RelTol)
	assert.Equal(t, 1e-12, opts.AbsTol)
	assert.Equal(t, 256, opts.MaxIntervals)
}
