package distance

import (
	"fmt"
	"math"

	"github.com/ntessore/cosmology/cosmo"
	"github.com/ntessore/cosmology/quad"
)

// Comoving computes the line-of-sight comoving distance
//
//	D_C(z) = (c/H0) · ∫[0,z] dz'/E(z')
//
// in Mpc.
//
// Contracts:
//   - 1+z must be positive (cosmo.ErrRedshiftDomain).
//   - z = 0 returns exactly 0 without integrating.
//   - z in (−1, 0) integrates with reversed bound, so the result is
//     negative.
//
// Errors: cosmo.ErrUnphysical for unphysical parameter sets,
// quad.ErrTolerance when the panel budget runs out.
func Comoving(m *cosmo.Model, z float64, opts Options) (float64, error) {
	if m == nil {
		return 0, ErrNilModel
	}
	if !(z > -1) {
		return 0, fmt.Errorf("%w: z=%g", cosmo.ErrRedshiftDomain, z)
	}
	if z == 0 {
		return 0, nil
	}

	v, err := quad.Integrate(m.InvEfuncSeq, 0, z, opts.quadOptions())
	if err != nil {
		return 0, err
	}

	return m.HubbleDistance() * v, nil
}

// Transverse computes the transverse comoving distance D_M(z) in Mpc:
// D_C transformed by spatial curvature,
//
//	D_M = (D_H/√Ok0)·sinh(√Ok0·D_C/D_H)    Ok0 > 0 (open)
//	D_M = D_C                              |Ok0| < cosmo.FlatnessEps
//	D_M = (D_H/√|Ok0|)·sin(√|Ok0|·D_C/D_H) Ok0 < 0 (closed)
//
// The flat branch is taken directly for near-zero curvature, so the
// 1/√|Ok0| prefactor never blows up.
func Transverse(m *cosmo.Model, z float64, opts Options) (float64, error) {
	dc, err := Comoving(m, z, opts)
	if err != nil {
		return 0, err
	}
	if m.IsFlat() {
		return dc, nil
	}

	dh := m.HubbleDistance()
	sqrtOk := math.Sqrt(math.Abs(m.Ok0()))
	x := sqrtOk * dc / dh
	if m.Ok0() > 0 {
		return dh / sqrtOk * math.Sinh(x), nil
	}

	return dh / sqrtOk * math.Sin(x), nil
}

// Luminosity computes the luminosity distance D_L = (1+z)·D_M in Mpc.
func Luminosity(m *cosmo.Model, z float64, opts Options) (float64, error) {
	dm, err := Transverse(m, z, opts)
	if err != nil {
		return 0, err
	}

	return (1 + z) * dm, nil
}

// AngularDiameter computes the angular-diameter distance
// D_A = D_M/(1+z) in Mpc.
func AngularDiameter(m *cosmo.Model, z float64, opts Options) (float64, error) {
	dm, err := Transverse(m, z, opts)
	if err != nil {
		return 0, err
	}

	return dm / (1 + z), nil
}

// Modulus computes the distance modulus μ = 5·log10(D_L / 10 pc) in
// magnitudes. D_L ≤ 0 (in particular z = 0) is ErrNonPositiveDistance;
// a −Inf magnitude is never returned silently.
func Modulus(m *cosmo.Model, z float64, opts Options) (float64, error) {
	dl, err := Luminosity(m, z, opts)
	if err != nil {
		return 0, err
	}
	if dl <= 0 {
		return 0, fmt.Errorf("%w: D_L=%g Mpc", ErrNonPositiveDistance, dl)
	}

	// D_L in Mpc → pc is a factor 1e6; μ = 5·(log10(D_L[pc]) − 1).
	return 5 * (math.Log10(dl*1e6) - 1), nil
}

// ComovingVolume computes the comoving volume V_C(z) in Mpc³ enclosed
// within redshift z: (4π/3)·D_M³ for flat models, the Hogg (1999,
// eq. 29) curvature form otherwise.
func ComovingVolume(m *cosmo.Model, z float64, opts Options) (float64, error) {
	dm, err := Transverse(m, z, opts)
	if err != nil {
		return 0, err
	}
	if m.IsFlat() {
		return 4 * math.Pi / 3 * dm * dm * dm, nil
	}

	var (
		ok0    = m.Ok0()
		dh     = m.HubbleDistance()
		sqrtOk = math.Sqrt(math.Abs(ok0))
		x      = dm / dh
	)
	if ok0 > 0 {
		return 4 * math.Pi * dh * dh * dh / (2 * ok0) *
			(x*math.Sqrt(1+ok0*x*x) - math.Asinh(sqrtOk*x)/sqrtOk), nil
	}

	return 4 * math.Pi * dh * dh * dh / (2 * ok0) *
		(x*math.Sqrt(1+ok0*x*x) - math.Asin(sqrtOk*x)/sqrtOk), nil
}
