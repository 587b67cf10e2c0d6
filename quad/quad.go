package quad

import "math"

// Integrate computes ∫[a,b] f(x) dx by globally adaptive G7/K15
// quadrature.
//
// Contracts:
//   - a and b must be finite (ErrNonFiniteBound); a == b returns 0
//     without evaluating f; b < a integrates [b,a] with flipped sign.
//   - f follows the batch Func contract; a non-finite integrand value
//     is ErrNonFiniteValue, and integrand errors propagate unchanged.
//   - the result satisfies errEstimate ≤ max(AbsTol, RelTol·|result|),
//     or the call fails with ErrTolerance after MaxIntervals panels.
//
// Complexity: O(p·15) integrand evaluations and O(p²) worst-case scan
// work for p ≤ MaxIntervals panels; the node and value buffers are
// allocated once per call and reused across panels.
func Integrate(f Func, a, b float64, opts Options) (float64, error) {
	if err := normalize(&opts); err != nil {
		return 0, err
	}
	if math.IsNaN(a) || math.IsInf(a, 0) || math.IsNaN(b) || math.IsInf(b, 0) {
		return 0, ErrNonFiniteBound
	}
	if a == b {
		return 0, nil
	}

	sign := 1.0
	if b < a {
		a, b = b, a
		sign = -1.0
	}

	var (
		xs [panelNodes]float64
		fs [panelNodes]float64
	)

	value, errEst, err := evalPanel(f, a, b, xs[:], fs[:])
	if err != nil {
		return 0, err
	}
	panels := make([]interval, 1, 16)
	panels[0] = interval{a: a, b: b, value: value, errEst: errEst}

	for {
		var total, totalErr float64
		worst := 0
		for i := range panels {
			total += panels[i].value
			totalErr += panels[i].errEst
			if panels[i].errEst > panels[worst].errEst {
				worst = i
			}
		}

		if totalErr <= math.Max(opts.AbsTol, opts.RelTol*math.Abs(total)) {
			return sign * total, nil
		}
		if len(panels) >= opts.MaxIntervals {
			return 0, ErrTolerance
		}

		// Bisect the worst panel; the left half replaces it in place.
		w := panels[worst]
		mid := 0.5 * (w.a + w.b)

		lv, le, err := evalPanel(f, w.a, mid, xs[:], fs[:])
		if err != nil {
			return 0, err
		}
		rv, re, err := evalPanel(f, mid, w.b, xs[:], fs[:])
		if err != nil {
			return 0, err
		}

		panels[worst] = interval{a: w.a, b: mid, value: lv, errEst: le}
		panels = append(panels, interval{a: mid, b: w.b, value: rv, errEst: re})
	}
}

// IntegrateToInf computes ∫[a,∞) f(x) dx through the rational
// substitution x = a + t/(1−t), dx = dt/(1−t)², which maps [a,∞) onto
// [0,1). Gauss–Kronrod abscissae are interior, so the t = 1 endpoint
// is never evaluated; the improper bound costs no truncation cutoff,
// only the quadrature tolerance itself.
//
// Contracts: as Integrate, with a finite. The integrand must decay
// fast enough that (1−t)⁻²·f(x(t)) stays integrable; a divergent tail
// surfaces as ErrTolerance or ErrNonFiniteValue, never as a silent
// garbage value.
func IntegrateToInf(f Func, a float64, opts Options) (float64, error) {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return 0, ErrNonFiniteBound
	}

	var buf []float64
	g := func(ts, out []float64) error {
		if cap(buf) < len(ts) {
			buf = make([]float64, len(ts))
		}
		mapped := buf[:len(ts)]
		for i, t := range ts {
			mapped[i] = a + t/(1-t)
		}
		if err := f(mapped, out); err != nil {
			return err
		}
		for i, t := range ts {
			u := 1 - t
			out[i] /= u * u
		}

		return nil
	}

	return Integrate(g, 0, 1, opts)
}

// normalize fills zero-value options with defaults and rejects NaN
// tolerances.
func normalize(opts *Options) error {
	if math.IsNaN(opts.RelTol) || math.IsNaN(opts.AbsTol) {
		return ErrBadTolerance
	}
	if opts.RelTol <= 0 {
		opts.RelTol = DefaultRelTol
	}
	if opts.AbsTol <= 0 {
		opts.AbsTol = DefaultAbsTol
	}
	if opts.MaxIntervals <= 0 {
		opts.MaxIntervals = DefaultMaxIntervals
	}

	return nil
}
