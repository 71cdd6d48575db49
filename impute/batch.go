// SPDX-License-Identifier: MIT
// Package impute: row-wise batch driver over Condition.

package impute

import (
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// ConditionAll completes every row of data independently against spec and
// returns the completed rows as a new matrix of the same shape.
//
// Rows bind positionally to spec.Names (data must have n columns). Each row
// is conditioned exactly as by Condition with an unnamed Row; rows do not
// interact, so the work is spread across Options.Workers goroutines
// (0 ⇒ GOMAXPROCS), each writing its own pre-sized output row. No locking:
// there is no shared write target.
//
// Options.WithCov is ignored here — per-row conditional covariances would
// multiply the output size by n; call Condition directly when they are
// needed for specific rows.
//
// Errors:
//   - ErrNilInput when data is nil.
//   - ErrDimensionMismatch when data has a column count ≠ len(spec.Names).
//   - Any Condition error for a row aborts the batch (first error wins).
//
// Determinism:
//   - Output row i depends only on input row i; the parallel schedule
//     cannot reorder or perturb results.
//
// Complexity:
//   - Time O(r · k³) worst case over r rows; Space O(r·n) for the output.
func ConditionAll(spec Spec, data *mat.Dense, opts Options) (*mat.Dense, error) {
	if data == nil {
		return nil, imputeErrorf(opConditionAll, ErrNilInput)
	}
	if err := validateSpec(spec); err != nil {
		return nil, imputeErrorf(opConditionAll, err)
	}
	rows, cols := data.Dims()
	n := len(spec.Names)
	if cols != n {
		return nil, imputeErrorf(opConditionAll, ErrDimensionMismatch)
	}

	workers := opts.Workers
	if workers <= DefaultWorkers {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > rows {
		workers = rows
	}

	// Pre-sized output indexed by row number; disjoint slots per goroutine.
	out := mat.NewDense(rows, n, nil)
	rowOpts := Options{WithCov: false}

	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < rows; i++ {
		i := i
		g.Go(func() error {
			vals := make([]float64, n)
			mat.Row(vals, i, data)
			resolved, err := resolveRow(spec, Row{Values: vals})
			if err != nil {
				return imputeErrorf(opConditionAll, err)
			}
			res, err := condition(spec, resolved, rowOpts)
			if err != nil {
				return imputeErrorf(opConditionAll, err)
			}
			out.SetRow(i, res.Completed)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
