// SPDX-License-Identifier: MIT
// Package fitindex: RMSEA confidence interval via a one-dimensional
// noncentrality search over the noncentral chi-square distribution.

package fitindex

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// Confidence-interval defaults (single source of truth).
const (
	// DefaultConfidence is the conventional two-sided RMSEA interval level.
	DefaultConfidence = 0.90

	// DefaultCITol is the absolute λ tolerance at which bisection stops.
	DefaultCITol = 1e-9

	// DefaultCIMaxIter caps the bisection iterations per bound.
	DefaultCIMaxIter = 200

	// seriesTol terminates the noncentral-CDF Poisson series once the
	// accumulated mixture weight is within seriesTol of one.
	seriesTol = 1e-12

	// seriesMaxTerms caps the Poisson series length for pathological λ.
	seriesMaxTerms = 10000
)

// DefaultLambdaCeiling returns the default upper search bound for the
// noncentrality parameter: max(N, 4·Chi).
//
// The bound is an inherited heuristic from common RMSEA implementations,
// carried without a derivation — it is a search ceiling, not a proven bound
// on λ. Override it through CIOptions.LambdaCeiling when a model's
// noncentrality can plausibly exceed it.
func DefaultLambdaCeiling(n int, chi float64) float64 {
	return math.Max(float64(n), 4*chi)
}

// CIOptions configures RMSEAInterval.
//
// Fields:
//   - Confidence    — two-sided interval level in (0,1); 0 means
//     DefaultConfidence.
//   - LambdaCeiling — upper search bound for λ; 0 means
//     DefaultLambdaCeiling(N, Chi).
//   - Tol           — bisection tolerance on λ; 0 means DefaultCITol.
//   - MaxIter       — bisection iteration cap; 0 means DefaultCIMaxIter.
type CIOptions struct {
	Confidence    float64
	LambdaCeiling float64
	Tol           float64
	MaxIter       int
}

// DefaultCIOptions returns the canonical defaults: a 90% interval with the
// max(N, 4·Chi) search ceiling.
func DefaultCIOptions() CIOptions {
	return CIOptions{Confidence: DefaultConfidence}
}

// Interval is a two-sided RMSEA confidence interval. A bound the
// noncentrality search could not bracket is NaN; the other bound is still
// valid.
type Interval struct {
	Lower      float64
	Upper      float64
	Confidence float64
}

// RMSEAInterval computes the confidence interval for the RMSEA point
// estimate of sum.
//
// Description:
//
//	For each bound, solve for the noncentrality parameter λ such that the
//	noncentral chi-square CDF at the observed chi-square equals the
//	requested tail probability ((1+c)/2 for the lower bound, (1−c)/2 for
//	the upper), then map λ back through RMSEA = sqrt(λ/(N·df)).  The CDF
//	is strictly decreasing in λ, so bisection over [0, ceiling] suffices.
//
// Degradation policy:
//   - A bound whose bracket shows no sign change is NaN (the caller sees a
//     missing value for that bound only).
//   - ErrCIUnavailable is returned only when both bounds are unavailable,
//     or when df = 0 makes the interval meaningless.
//
// Errors:
//   - ErrNilInput, ErrInvalidInput from validation.
//   - ErrInvalidInput for a Confidence outside (0,1).
//   - ErrCIUnavailable per the degradation policy above.
//
// Determinism:
//   - Fixed bisection schedule; identical inputs yield identical bounds.
//
// Complexity:
//   - Time O(MaxIter · series) per bound; Space O(1).
func RMSEAInterval(sum Summary, opts CIOptions) (Interval, error) {
	if err := validateSummary(sum); err != nil {
		return Interval{}, fitindexErrorf(opRMSEAInterval, err)
	}

	conf := opts.Confidence
	if conf == 0 {
		conf = DefaultConfidence
	}
	if conf <= 0 || conf >= 1 {
		return Interval{}, fitindexErrorf(opRMSEAInterval, ErrInvalidInput)
	}
	if sum.DF == 0 {
		return Interval{}, fitindexErrorf(opRMSEAInterval, ErrCIUnavailable)
	}

	ceiling := opts.LambdaCeiling
	if ceiling <= 0 {
		ceiling = DefaultLambdaCeiling(sum.N, sum.ChiSquare)
	}
	tol := opts.Tol
	if tol <= 0 {
		tol = DefaultCITol
	}
	maxIter := opts.MaxIter
	if maxIter <= 0 {
		maxIter = DefaultCIMaxIter
	}

	var (
		chi = sum.ChiSquare
		df  = float64(sum.DF)
		n   = float64(sum.N)
	)

	// Lower bound solves the upper tail target, and vice versa: larger λ
	// shifts mass right, so the CDF at chi falls as λ grows.
	lowerLambda := solveNoncentrality(chi, df, (1+conf)/2, ceiling, tol, maxIter)
	upperLambda := solveNoncentrality(chi, df, (1-conf)/2, ceiling, tol, maxIter)

	iv := Interval{
		Lower:      lambdaToRMSEA(lowerLambda, n, df),
		Upper:      lambdaToRMSEA(upperLambda, n, df),
		Confidence: conf,
	}
	if math.IsNaN(iv.Lower) && math.IsNaN(iv.Upper) {
		return iv, fitindexErrorf(opRMSEAInterval, ErrCIUnavailable)
	}

	return iv, nil
}

// lambdaToRMSEA maps a noncentrality parameter to the RMSEA scale; NaN
// passes through as the missing-bound marker.
func lambdaToRMSEA(lambda, n, df float64) float64 {
	if math.IsNaN(lambda) {
		return lambda
	}

	return math.Sqrt(lambda / (n * df))
}

// solveNoncentrality finds λ ∈ [0, ceiling] with F(chi; df, λ) = target by
// bisection, exploiting that F is strictly decreasing in λ. Returns NaN
// when the bracket [0, ceiling] shows no sign change.
func solveNoncentrality(chi, df, target, ceiling, tol float64, maxIter int) float64 {
	lo, hi := 0.0, ceiling
	fLo := noncentralChiSquareCDF(chi, df, lo) - target
	fHi := noncentralChiSquareCDF(chi, df, hi) - target

	// F decreases in λ: a root needs fLo ≥ 0 ≥ fHi.
	if fLo < 0 || fHi > 0 {
		return math.NaN()
	}
	if fLo == 0 {
		return lo
	}
	if fHi == 0 {
		return hi
	}

	var mid, fMid float64
	for iter := 0; iter < maxIter && hi-lo > tol; iter++ {
		mid = 0.5 * (lo + hi)
		fMid = noncentralChiSquareCDF(chi, df, mid) - target
		if fMid > 0 {
			lo = mid
		} else {
			hi = mid
		}
	}

	return 0.5 * (lo + hi)
}

// noncentralChiSquareCDF evaluates P(X ≤ x) for X ~ χ²(df, λ) via the
// Poisson-mixture series
//
//	F(x; df, λ) = Σ_j  e^{−λ/2}·(λ/2)^j / j!  ·  P(df/2 + j, x/2)
//
// where P is the regularized lower incomplete gamma. Weights are built by
// the recurrence w_{j+1} = w_j·(λ/2)/(j+1); the series stops once the
// accumulated weight reaches 1 − seriesTol (remaining terms are bounded by
// the unclaimed weight, so the truncation error is below seriesTol).
func noncentralChiSquareCDF(x, df, lambda float64) float64 {
	if x <= 0 {
		return 0
	}
	if lambda <= 0 {
		return mathext.GammaIncReg(df/2, x/2)
	}

	half := lambda / 2
	weight := math.Exp(-half)
	if weight == 0 {
		// exp(−λ/2) underflowed: the mixture mass sits so far above any
		// representable x that the CDF is indistinguishable from zero.
		return 0
	}
	var cdf, used float64
	for j := 0; j < seriesMaxTerms; j++ {
		cdf += weight * mathext.GammaIncReg(df/2+float64(j), x/2)
		used += weight
		if 1-used < seriesTol {
			break
		}
		weight *= half / float64(j+1)
	}

	return math.Min(cdf, 1)
}
