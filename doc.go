// Package cosmology computes distances, times and expansion rates for
// FLRW universes — from physical constants to adaptive-quadrature
// distance measures.
//
// 🚀 What is cosmology?
//
//	A small, pure-Go numerical library that brings together:
//		• Physical constants: CODATA/IAU values for unit conversion
//		• FLRW models: immutable parameter sets with ΛCDM, wCDM and
//		  CPL (w0–wa) dark-energy variants
//		• Expansion kernel: E(z), 1/E(z), H(z) — scalar and vectorized
//		• Quadrature: adaptive Gauss–Kronrod (G7/K15) integration with
//		  strict error control
//		• Distance measures: comoving, transverse, luminosity,
//		  angular-diameter, distance modulus, comoving volume,
//		  lookback time and age
//
// ✨ Why choose cosmology?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – typed sentinel errors, no silent NaNs
//   - Pure Go – no cgo, no hidden deps
//   - Fast – allocation-free vectorized kernel on the quadrature hot path
//
// Under the hood, everything is organized under four subpackages:
//
//	constants/ — fixed physical constants (h, k_B, c, G, σ_sb, e, au, Mpc, Gyr)
//	cosmo/     — CosmologyModel construction + inverse E-function kernel
//	quad/      — adaptive Gauss–Kronrod quadrature primitive
//	distance/  — integral distance/time measures over cosmo + quad
//
// Quick example:
//
//	m, _ := cosmo.New(70, 0.3, 0.7)
//	dc, _ := distance.Comoving(m, 1.0, distance.DefaultOptions())
//	fmt.Printf("D_C(z=1) = %.1f Mpc\n", dc)
//
// Dive into the per-package doc.go files for contracts, complexity
// notes and the full error taxonomy.
//
//	go get github.com/ntessore/cosmology
package cosmology
