// Package impute completes partially observed data rows against a
// model-implied mean vector and covariance matrix, using the
// multivariate-normal conditioning (Schur complement) formula.
//
// 🚀 What is impute?
//
//	A fitted structural model implies a joint mean μ and covariance Σ over
//	its manifest (and latent) variables.  Given a row where some entries
//	are observed and the rest are missing, the conditional distribution of
//	the missing block is again normal, with
//	  mean       μ_m + Σ_mo·Σ_oo⁻¹·(x_o − μ_o)
//	  covariance Σ_mm − Σ_mo·Σ_oo⁻¹·Σ_om
//	This is the standard tool for scoring latent variables and filling
//	missing manifest values from a fitted model.
//
// ✨ Key features:
//   - NaN-as-missing row encoding; named or positional rows
//   - optional full conditional covariance (Options.WithCov)
//   - typed failures (ErrSingularCovariance, ErrInvalidInput, ...) instead
//     of silent NaN propagation
//   - row-parallel batch driver (ConditionAll) with a pre-sized output
//     matrix and no shared mutable state
//
// ⚙️ Usage:
//
//	spec := impute.Spec{
//	  Names: []string{"x", "y"},
//	  Mean:  []float64{0, 0},
//	  Cov:   mat.NewSymDense(2, []float64{1, 0.5, 0.5, 1}),
//	}
//	row := impute.Row{Values: []float64{2, impute.Missing()}}
//
//	opts := impute.DefaultOptions()
//	opts.WithCov = true
//	res, err := impute.Condition(spec, row, opts)
//	// res.Completed[1] == 1.0, res.Cov.At(1,1) == 0.75
//
// Performance:
//
//   - Time:   O(k³) per row for k observed variables
//   - Memory: O(n²) with WithCov, O(n) without
//
// See example_test.go for runnable examples.
package impute
