// SPDX-License-Identifier: MIT

package fitindex

// Test-Bridge (White-Box) for the noncentrality kernels.
//
// Purpose:
//   - Expose the UNEXPORTED noncentral chi-square CDF and the λ bisection
//     to fitindex_test ONLY, without widening the production API.
//
// Behavior & Determinism:
//   - Thin pass-through wrappers; no side effects.

// NoncentralChiSquareCDF_TestOnly forwards to noncentralChiSquareCDF.
func NoncentralChiSquareCDF_TestOnly(x, df, lambda float64) float64 {
	return noncentralChiSquareCDF(x, df, lambda)
}

// SolveNoncentrality_TestOnly forwards to solveNoncentrality.
func SolveNoncentrality_TestOnly(chi, df, target, ceiling, tol float64, maxIter int) float64 {
	return solveNoncentrality(chi, df, target, ceiling, tol, maxIter)
}
