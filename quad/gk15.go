package quad

import (
	"fmt"
	"math"
)

// G7/K15 abscissae and weights on [-1, 1] (QUADPACK dqk15 table).
// Abscissae are the positive half; the rule is symmetric. Odd indices
// of xgk are the embedded 7-point Gauss nodes.
var (
	xgk = [8]float64{
		0.991455371120813, // K15 only
		0.949107912342759, // G7 + K15
		0.864864423359769, // K15 only
		0.741531185599394, // G7 + K15
		0.586087235467691, // K15 only
		0.405845151377397, // G7 + K15
		0.207784955007898, // K15 only
		0.000000000000000, // center, G7 + K15
	}

	wgk = [8]float64{
		0.022935322010529,
		0.063092092629979,
		0.104790010322250,
		0.140653259715525,
		0.169004726639267,
		0.190350578064785,
		0.204432940075298,
		0.209482141084728,
	}

	// wg[i] weights the Gauss node at xgk[2i+1]; wg[3] weights the center.
	wg = [4]float64{
		0.129484966168870,
		0.279705391489277,
		0.381830050505119,
		0.417959183673469,
	}
)

// panelNodes is the number of abscissae per Gauss–Kronrod panel.
const panelNodes = 15

// interval is one adaptively refined panel: its bounds, K15 value and
// |K15 − G7| error estimate.
type interval struct {
	a, b   float64
	value  float64
	errEst float64
}

// evalPanel applies the G7/K15 rule to f on [a, b], reusing the
// caller's node and value buffers (len ≥ panelNodes each). It returns
// the K15 value and the |K15 − G7| error estimate.
//
// Node layout in xs: index 7 is the center; indices i and 14−i are the
// symmetric pair at ±xgk[i].
func evalPanel(f Func, a, b float64, xs, fs []float64) (value, errEst float64, err error) {
	center := 0.5 * (a + b)
	half := 0.5 * (b - a)

	xs = xs[:panelNodes]
	fs = fs[:panelNodes]
	for i := 0; i < 7; i++ {
		dx := half * xgk[i]
		xs[i] = center - dx
		xs[14-i] = center + dx
	}
	xs[7] = center

	// One integrand call per panel: the batch contract in action.
	if err = f(xs, fs); err != nil {
		return 0, 0, err
	}
	for i, v := range fs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, 0, fmt.Errorf("%w: f(%g)=%g", ErrNonFiniteValue, xs[i], v)
		}
	}

	var resK, resG float64
	for i := 0; i < 7; i++ {
		pair := fs[i] + fs[14-i]
		resK += wgk[i] * pair
		if i%2 == 1 {
			resG += wg[i/2] * pair
		}
	}
	resK += wgk[7] * fs[7]
	resG += wg[3] * fs[7]

	value = resK * half
	errEst = math.Abs((resK - resG) * half)

	return value, errEst, nil
}
