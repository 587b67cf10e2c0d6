// Package quad provides adaptive numerical quadrature over batch
// integrands, built on the Gauss–Kronrod G7/K15 rule.
//
// What:
//
//   - Integrate evaluates ∫[a,b] f(x) dx to a requested relative and
//     absolute tolerance; reversed bounds integrate with flipped sign.
//   - IntegrateToInf evaluates ∫[a,∞) f(x) dx through the rational
//     substitution x = a + t/(1−t), mapping the improper integral onto
//     [0,1) without a hard truncation cutoff.
//   - Func is a batch contract: the engine hands the integrand all 15
//     panel nodes in a single call, so vectorized integrands pay one
//     call per panel instead of one per node.
//
// Why:
//
//   - Distance measures in this module are integrals of 1/E(z); the
//     kernel is the hot path, and the batch contract keeps it
//     allocation-free and call-cheap.
//   - The K15 estimate embeds the G7 estimate, so every panel yields
//     both a value and an error estimate for free; adaptive bisection
//     then spends panels only where the integrand is hard.
//
// Algorithm:
//
//  1. Evaluate the whole interval as one G7/K15 panel.
//  2. While the summed error estimate exceeds
//     max(AbsTol, RelTol·|result|): bisect the panel with the largest
//     error estimate and re-evaluate both halves.
//  3. Fail with ErrTolerance once MaxIntervals panels exist without
//     reaching the target.
//
// Complexity: O(p) integrand panels of 15 nodes each, p ≤ MaxIntervals;
// memory O(p) for the interval list, zero allocation per panel.
//
// Errors:
//
//   - ErrBadTolerance:    a tolerance option is NaN.
//   - ErrNonFiniteBound:  an integration bound is NaN or Inf.
//   - ErrNonFiniteValue:  the integrand produced NaN or Inf.
//   - ErrTolerance:       the interval budget ran out before the target
//     tolerance was met.
//
// Integrand errors are propagated unchanged, so callers can test their
// own sentinels with errors.Is through the engine.
package quad
