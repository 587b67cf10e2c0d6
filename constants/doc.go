// Package constants provides the fixed physical constants used across
// the cosmology module, as untyped floating-point constants in SI units.
//
// What:
//
//   - CODATA 2018 defining constants: Planck (H), Boltzmann (KB), speed
//     of light (C), elementary charge (E).
//   - Measured constants: Newtonian gravitation (G).
//   - Derived constants: Stefan–Boltzmann (SigmaSB), carried as its
//     closed form 2π⁵k_B⁴/(15h³c²).
//   - Astronomical units: astronomical unit (AU, IAU 2012 exact),
//     megaparsec (Mpc, 648000/π au × 10⁶), Julian gigayear (Gyr).
//
// Why:
//
//   - Unit conversion when reporting distances in Mpc and times in Gyr.
//   - Critical-density and Hubble-scale derivations in package cosmo.
//
// The table is immutable by construction: every value is a Go constant,
// fixed at compile time and shared read-only by all components.
package constants
