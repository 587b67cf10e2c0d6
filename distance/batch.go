package distance

import (
	"runtime"
	"sync"

	"github.com/ntessore/cosmology/cosmo"
)

// All evaluates one Measure over every redshift in zs and returns the
// results in input order. Evaluations are independent, so they are
// fanned out over a bounded worker pool; the immutable model is shared
// read-only with no locking.
//
// Contracts:
//   - m and f must be non-nil (ErrNilModel, ErrNilMeasure).
//   - on failure the error of the lowest failing index is returned and
//     no partial results are handed back.
//
// Complexity: O(len(zs)) measure evaluations across
// min(GOMAXPROCS, len(zs)) workers; result order is deterministic
// regardless of scheduling.
func All(m *cosmo.Model, zs []float64, f Measure, opts Options) ([]float64, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if f == nil {
		return nil, ErrNilMeasure
	}
	if len(zs) == 0 {
		return []float64{}, nil
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(zs) {
		workers = len(zs)
	}

	out := make([]float64, len(zs))
	errs := make([]error, len(zs))

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		// Strided partition: worker w owns indices w, w+workers, …
		go func(start int) {
			defer wg.Done()
			for i := start; i < len(zs); i += workers {
				out[i], errs[i] = f(m, zs[i], opts)
			}
		}(w)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}
