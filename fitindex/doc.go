// Package fitindex derives the standard model-fit indices of structural
// equation modeling from the sufficient statistics of a fitted model and
// its independence baseline.
//
// 🚀 What is fitindex?
//
//	A fitted SEM reports a chi-square, degrees of freedom, a parameter
//	count, and observed/implied covariance matrices.  Practitioners judge
//	the model through ~40 conventional transformations of those numbers:
//	incremental indices against the independence baseline (NFI, TLI, CFI,
//	RFI, IFI), noncentrality-based indices (RMSEA, F0, McDonald),
//	residual-based indices (RMR, SRMR), the GFI family, information
//	criteria (AIC/BIC/CAIC in chi-square and deviance variants, BCC,
//	ECVI, MECVI), and Hoelter's critical N.
//
// ✨ Key features:
//   - one pure function, fixed output order, bit-identical repeated calls
//   - mandatory guards: CFI clipped at 1.0, RMSEA radicand clamped at 0
//   - typed failure (ErrSingularCorrelation) when the GFI family cannot
//     invert the model-implied matrix
//   - RMSEA confidence interval via a noncentral-χ² search, with a
//     configurable λ ceiling and graceful NaN degradation per bound
//
// ⚙️ Usage:
//
//	idx, err := fitindex.Compute(summary, baseline)
//	rmsea, _ := idx.Value(fitindex.IndexRMSEA)
//
//	iv, err := fitindex.RMSEAInterval(summary, fitindex.DefaultCIOptions())
//	// iv.Lower / iv.Upper, NaN when a bound could not be bracketed
//
// Callers must tolerate NaN entries: indices whose formula is undefined
// for the given inputs (df = 0, degenerate baseline, unreported deviance)
// degrade to NaN instead of failing the call.
//
// See example_test.go for runnable examples.
package fitindex
