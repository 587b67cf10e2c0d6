package cosmo

import (
	"fmt"
	"math"
)

// fde evaluates the dark-energy density scaling f_de(z), the factor by
// which the dark-energy density has grown since z = 0. Dispatch over
// the tagged kind replaces the inheritance tree a dynamic-dispatch
// design would use.
func (m *Model) fde(z float64) float64 {
	switch m.kind {
	case Lambda:
		// Cosmological constant: density does not dilute.
		return 1
	case ConstantW:
		return math.Pow(1+z, 3*(1+m.w0))
	case EvolvingW:
		zp1 := 1 + z
		return math.Pow(zp1, 3*(1+m.w0+m.wa)) * math.Exp(-3*m.wa*z/zp1)
	default:
		return 1
	}
}

// E2 evaluates the squared dimensionless expansion rate
//
//	E²(z) = Om0·(1+z)³ + Ok0·(1+z)² + Orad0·(1+z)⁴ + Ode0·f_de(z).
//
// Contracts:
//   - 1+z must be positive (ErrRedshiftDomain; NaN redshifts fail the
//     same check).
//   - the result must be positive and finite (ErrUnphysical otherwise);
//     an unphysical parameter set is reported, never returned as NaN.
//
// E(0) ≡ 1 by the normalization of the density parameters; z = 0
// short-circuits to the exact value rather than rounding the unit sum.
//
// Complexity: O(1), no allocation.
func (m *Model) E2(z float64) (float64, error) {
	if !(z > -1) {
		return 0, fmt.Errorf("%w: z=%g", ErrRedshiftDomain, z)
	}
	if z == 0 {
		return 1, nil
	}

	zp1 := 1 + z
	e2 := zp1*zp1*(m.ok0+zp1*(m.om0+zp1*(m.ogamma0+m.onu0))) + m.ode0*m.fde(z)
	if e2 <= 0 || math.IsNaN(e2) || math.IsInf(e2, 0) {
		return 0, fmt.Errorf("%w: E²(%g)=%g", ErrUnphysical, z, e2)
	}

	return e2, nil
}

// Efunc evaluates E(z) = H(z)/H0. Same contracts as E2.
func (m *Model) Efunc(z float64) (float64, error) {
	e2, err := m.E2(z)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(e2), nil
}

// InvEfunc evaluates 1/E(z), the integrand of every comoving-distance
// measure. Same contracts as E2; InvEfunc(0) is exactly 1.
func (m *Model) InvEfunc(z float64) (float64, error) {
	e2, err := m.E2(z)
	if err != nil {
		return 0, err
	}

	return 1 / math.Sqrt(e2), nil
}

// InvEfuncSeq evaluates 1/E over a whole redshift panel in one call,
// writing results into dst. This is the quadrature hot path: one call
// per Gauss–Kronrod panel, zero allocations.
//
// Contracts:
//   - len(dst) == len(zs) (ErrLengthMismatch).
//   - per-point contracts as E2; on the first failing point the error
//     is returned and dst is not fully populated.
//
// Complexity: O(len(zs)), no allocation.
func (m *Model) InvEfuncSeq(zs, dst []float64) error {
	if len(dst) != len(zs) {
		return ErrLengthMismatch
	}

	var (
		v   float64
		err error
	)
	for i, z := range zs {
		if v, err = m.InvEfunc(z); err != nil {
			return err
		}
		dst[i] = v
	}

	return nil
}

// H evaluates the Hubble parameter H(z) = H0·E(z) in km s⁻¹ Mpc⁻¹.
func (m *Model) H(z float64) (float64, error) {
	e, err := m.Efunc(z)
	if err != nil {
		return 0, err
	}

	return m.h0 * e, nil
}

// ScaleFactor returns a(z) = 1/(1+z), the scale-factor ratio between
// emission and observation. Redshifts with 1+z ≤ 0 are rejected with
// ErrRedshiftDomain.
func (m *Model) ScaleFactor(z float64) (float64, error) {
	if !(z > -1) {
		return 0, fmt.Errorf("%w: z=%g", ErrRedshiftDomain, z)
	}

	return 1 / (1 + z), nil
}
