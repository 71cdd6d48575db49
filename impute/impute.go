// SPDX-License-Identifier: MIT
// Package impute: multivariate-normal conditioning of partially observed
// rows against a joint moment specification (Schur-complement imputation).

package impute

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opCondition    = "Condition"
	opConditionAll = "ConditionAll"
)

// imputeErrorf wraps err with an operation tag, preserving the original
// error via %w. Use only when err != nil.
func imputeErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Condition completes one partially observed row under the joint moment
// specification spec.
//
// Description:
//
//	Given mean μ and covariance Σ over n variables and a row with some
//	entries observed and some missing (NaN), the missing block is replaced
//	by its conditional mean under the multivariate normal:
//
//	    E[x_m | x_o] = μ_m + Σ_mo · Σ_oo⁻¹ · (x_o − μ_o)
//
//	and, when Options.WithCov is set, the missing block of the returned
//	covariance is the Schur complement:
//
//	    Cov[x_m | x_o] = Σ_mm − Σ_mo · Σ_oo⁻¹ · Σ_om
//
// Algorithm Outline:
//  1. Validate spec (shape, unique names, finite entries) and resolve the
//     row onto the canonical variable order.
//  2. Partition indices into observed/missing, preserving canonical order.
//  3. Fast paths: no missing entry — return the row and Σ unchanged;
//     no observed entry — return μ and Σ unchanged (no evidence).
//  4. Factorize Σ_oo by Cholesky (SPD). Failure reports
//     ErrSingularCovariance instead of propagating NaN.
//  5. Solve for the conditional mean, and optionally the Schur complement,
//     then assemble the full-length result in canonical order.
//
// Errors:
//   - ErrNilInput, ErrDimensionMismatch, ErrNameMismatch, ErrInvalidInput
//     from validation.
//   - ErrSingularCovariance when Σ_oo is not positive definite.
//
// Determinism:
//   - Partition and assembly follow the canonical variable order; identical
//     inputs yield bit-identical outputs.
//
// Complexity:
//   - Time O(k³ + k·m + m²) for k observed and m missing variables;
//     Space O(n²) when WithCov is set, O(n) otherwise.
func Condition(spec Spec, row Row, opts Options) (Result, error) {
	if err := validateSpec(spec); err != nil {
		return Result{}, imputeErrorf(opCondition, err)
	}
	vals, err := resolveRow(spec, row)
	if err != nil {
		return Result{}, imputeErrorf(opCondition, err)
	}

	res, err := condition(spec, vals, opts)
	if err != nil {
		return Result{}, imputeErrorf(opCondition, err)
	}

	return res, nil
}

// condition is the validated kernel behind Condition and ConditionAll.
// vals must already be in canonical order with NaN marking missing entries.
func condition(spec Spec, vals []float64, opts Options) (Result, error) {
	n := len(spec.Names)

	// Partition indices in canonical order (reproducibility).
	obs := make([]int, 0, n)
	mis := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if IsMissing(vals[i]) {
			mis = append(mis, i)
		} else {
			obs = append(obs, i)
		}
	}

	// Fast path: nothing to infer — the row is already complete.
	if len(mis) == 0 {
		return assembleResult(spec, vals, nil, nil, opts), nil
	}
	// Fast path: no evidence — fall back to the prior moments.
	if len(obs) == 0 {
		completed := make([]float64, n)
		copy(completed, spec.Mean)

		return assembleResult(spec, completed, nil, nil, opts), nil
	}

	k, m := len(obs), len(mis)

	// Extract blocks: Σ_oo (k×k symmetric), Σ_mo (m×k), deviations d = x_o − μ_o.
	sigmaOO := mat.NewSymDense(k, nil)
	for a := 0; a < k; a++ {
		for b := a; b < k; b++ {
			sigmaOO.SetSym(a, b, spec.Cov.At(obs[a], obs[b]))
		}
	}
	sigmaMO := mat.NewDense(m, k, nil)
	for a := 0; a < m; a++ {
		for b := 0; b < k; b++ {
			sigmaMO.Set(a, b, spec.Cov.At(mis[a], obs[b]))
		}
	}
	dev := mat.NewVecDense(k, nil)
	for a := 0; a < k; a++ {
		dev.SetVec(a, vals[obs[a]]-spec.Mean[obs[a]])
	}

	// Factorize Σ_oo. A positive-definite observed block is required; a
	// collinear or degenerate block must surface as a typed failure.
	var chol mat.Cholesky
	if ok := chol.Factorize(sigmaOO); !ok {
		return Result{}, ErrSingularCovariance
	}

	// w = Σ_oo⁻¹ · d, conditional mean of the missing block = μ_m + Σ_mo · w.
	var w mat.VecDense
	if err := chol.SolveVecTo(&w, dev); err != nil {
		return Result{}, ErrSingularCovariance
	}
	var adj mat.VecDense
	adj.MulVec(sigmaMO, &w)

	completed := make([]float64, n)
	copy(completed, vals)
	for a := 0; a < m; a++ {
		completed[mis[a]] = spec.Mean[mis[a]] + adj.AtVec(a)
	}

	// Conditional covariance of the missing block, only when requested:
	// Σ_mm − Σ_mo · Σ_oo⁻¹ · Σ_om.
	var condMM *mat.Dense
	if opts.WithCov {
		var b mat.Dense // b = Σ_oo⁻¹ · Σ_om, shape k×m
		if err := chol.SolveTo(&b, sigmaMO.T()); err != nil {
			return Result{}, ErrSingularCovariance
		}
		condMM = mat.NewDense(m, m, nil)
		condMM.Mul(sigmaMO, &b)
		for a := 0; a < m; a++ {
			for c := 0; c < m; c++ {
				condMM.Set(a, c, spec.Cov.At(mis[a], mis[c])-condMM.At(a, c))
			}
		}
	}

	return assembleResult(spec, completed, mis, condMM, opts), nil
}

// assembleResult builds the full-length Result in canonical order.
//
// When opts.WithCov is set, the returned matrix keeps the observed block
// and the cross blocks from the input covariance and overwrites the
// missing block with condMM (nil condMM means Σ is returned unchanged,
// which covers both fast paths). The missing block is symmetrized from its
// upper triangle so floating-point round-off cannot leak asymmetry.
func assembleResult(spec Spec, completed []float64, mis []int, condMM *mat.Dense, opts Options) Result {
	names := make([]string, len(spec.Names))
	copy(names, spec.Names)
	res := Result{Names: names, Completed: completed}
	if !opts.WithCov {
		return res
	}

	n := len(spec.Names)
	cov := mat.NewSymDense(n, nil)
	cov.CopySym(spec.Cov)
	if condMM != nil {
		for a := 0; a < len(mis); a++ {
			for c := a; c < len(mis); c++ {
				cov.SetSym(mis[a], mis[c], 0.5*(condMM.At(a, c)+condMM.At(c, a)))
			}
		}
	}
	res.Cov = cov

	return res
}
