package distance

import (
	"fmt"

	"github.com/ntessore/cosmology/cosmo"
	"github.com/ntessore/cosmology/quad"
)

// ageIntegrand returns the batch integrand 1/((1+z)·E(z)) shared by
// LookbackTime and Age. It rides on the vectorized kernel and performs
// no allocation of its own.
func ageIntegrand(m *cosmo.Model) quad.Func {
	return func(xs, out []float64) error {
		if err := m.InvEfuncSeq(xs, out); err != nil {
			return err
		}
		for i, x := range xs {
			out[i] /= 1 + x
		}

		return nil
	}
}

// LookbackTime computes the lookback time in Gyr,
//
//	t_L(z) = (1/H0) · ∫[0,z] dz' / ((1+z')·E(z')),
//
// the time elapsed between observing at z = 0 and emission at z.
//
// Contracts: as Comoving; z = 0 returns exactly 0, z in (−1, 0) is
// negative (time "forward" of today).
func LookbackTime(m *cosmo.Model, z float64, opts Options) (float64, error) {
	if m == nil {
		return 0, ErrNilModel
	}
	if !(z > -1) {
		return 0, fmt.Errorf("%w: z=%g", cosmo.ErrRedshiftDomain, z)
	}
	if z == 0 {
		return 0, nil
	}

	v, err := quad.Integrate(ageIntegrand(m), 0, z, opts.quadOptions())
	if err != nil {
		return 0, err
	}

	return m.HubbleTime() * v, nil
}

// Age computes the age of the universe at redshift z in Gyr,
//
//	t(z) = (1/H0) · ∫[z,∞) dz' / ((1+z')·E(z')).
//
// The improper bound goes through quad.IntegrateToInf, so there is no
// hard z-cutoff: the tail is resolved to the quadrature tolerance. A
// dark-energy history whose tail integral diverges surfaces as
// quad.ErrTolerance, never as a silently truncated age.
func Age(m *cosmo.Model, z float64, opts Options) (float64, error) {
	if m == nil {
		return 0, ErrNilModel
	}
	if !(z > -1) {
		return 0, fmt.Errorf("%w: z=%g", cosmo.ErrRedshiftDomain, z)
	}

	v, err := quad.IntegrateToInf(ageIntegrand(m), z, opts.quadOptions())
	if err != nil {
		return 0, err
	}

	return m.HubbleTime() * v, nil
}
