// Package cosmo defines the FLRW cosmological model and its expansion
// kernel: E(z), 1/E(z) and friends, the quantities every distance and
// time measure integrates over.
//
// What:
//
//   - Model wraps a set of density parameters (matter, dark energy,
//     curvature, radiation) and a dark-energy equation of state.
//   - New builds an immutable Model; curvature is derived from the
//     closure relation Ok0 = 1 − Om0 − Ode0 − Orad0 unless pinned with
//     WithCurvature.
//   - E2, Efunc, InvEfunc evaluate the dimensionless expansion rate
//     E(z) = H(z)/H0; InvEfuncSeq evaluates a whole redshift panel
//     into a caller-provided buffer with zero allocations.
//   - Derived scales (Hubble distance, Hubble time, critical density)
//     are computed once at construction and served from the Model.
//
// Why:
//
//   - 1/E(z) is the hot path of every cosmological distance integral;
//     it is evaluated once per quadrature node, so it must be pure,
//     cheap and vectorizable.
//   - Dark-energy variants (ΛCDM, constant-w, CPL w0–wa) are a tagged
//     kind dispatched in a single switch, not an inheritance tree.
//
// Complexity:
//
//   - E2 / InvEfunc: O(1) per call, no allocation.
//   - InvEfuncSeq:   O(n) over the panel, no allocation.
//
// Errors:
//
//   - ErrHubbleValue:    H0 is zero, negative or not finite.
//   - ErrNonFinite:      a density or equation-of-state parameter is NaN/Inf.
//   - ErrRedshiftDomain: redshift with 1+z ≤ 0 (physically invalid).
//   - ErrUnphysical:     the parameter set yields E²(z) ≤ 0 or non-finite.
//   - ErrLengthMismatch: InvEfuncSeq destination length differs from input.
//
// Model is immutable after construction and safe for concurrent
// read-only use without locking.
package cosmo
