// Package distance computes integral distance and time measures for
// FLRW models: comoving, transverse, luminosity and angular-diameter
// distances, distance modulus, comoving volume, lookback time and age.
//
// What:
//
//   - Every measure is an integral of the cosmo kernel 1/E(z) (or
//     1/((1+z)E(z)) for times), evaluated by adaptive Gauss–Kronrod
//     quadrature from package quad.
//   - Distances are reported in Mpc, volumes in Mpc³, times in Gyr.
//   - All computes one measure over many redshifts with a bounded
//     worker pool; independent evaluations share the immutable model
//     with no locking.
//
// Why:
//
//   - D_C(z) = (c/H0)·∫[0,z] dz'/E(z') is the base measure; transverse,
//     luminosity and angular-diameter distances are curvature and
//     (1+z) transforms of it, so they come at the cost of one integral.
//   - Age needs ∫[z,∞); quad's rational substitution handles the
//     improper bound without a truncation cutoff.
//
// Edge cases:
//
//   - z = 0 returns 0 for every distance measure without integrating.
//   - z in (−1, 0) integrates with reversed bound and natural sign.
//   - |Ok0| < cosmo.FlatnessEps uses the flat-case formulas directly,
//     so near-flat curvature never divides by √Ok0 ≈ 0.
//
// Errors:
//
//   - ErrNilModel / ErrNilMeasure: nil inputs.
//   - ErrNonPositiveDistance: distance modulus of a non-positive D_L.
//   - cosmo.ErrRedshiftDomain, cosmo.ErrUnphysical, quad.ErrTolerance,
//     quad.ErrNonFiniteValue pass through unchanged; no numerical
//     failure is masked as a default value.
//
// Complexity: one adaptive integration per call; see package quad.
package distance
