// SPDX-License-Identifier: MIT
// Package: fitindex
//
// Purpose:
//   - Provide a single, canonical source of truth for summary-bundle checks.
//   - Keep Compute/RMSEAInterval minimal by delegating consistency and
//     finiteness checks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap
//     uniformly with an operation tag.
//
// Determinism & Performance:
//   - All checks are pure and deterministic; the covariance scans run on
//     the upper triangle only.

package fitindex

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateSummary checks the scalar part of the bundle plus both
// covariance matrices. Deviance is allowed to be NaN (unreported) but not
// ±Inf.
//
// Errors: ErrNilInput, ErrInvalidInput.
// Complexity: O(p²).
func validateSummary(sum Summary) error {
	if sum.ObservedCov == nil || sum.ImpliedCov == nil {
		return validatorErrorf("validateSummary", ErrNilInput)
	}
	if sum.N <= 0 || sum.Parameters < 0 || sum.Manifests <= 0 || sum.Latents < 0 || sum.DF < 0 {
		return validatorErrorf("validateSummary: counts", ErrInvalidInput)
	}
	if !isFinite(sum.ChiSquare) || sum.ChiSquare < 0 {
		return validatorErrorf("validateSummary: chi-square", ErrInvalidInput)
	}
	if math.IsInf(sum.Deviance, 0) {
		return validatorErrorf("validateSummary: deviance", ErrInvalidInput)
	}
	if sum.ObservedCov.SymmetricDim() != sum.Manifests || sum.ImpliedCov.SymmetricDim() != sum.Manifests {
		return validatorErrorf("validateSummary: covariance order", ErrInvalidInput)
	}
	p := sum.Manifests
	for i := 0; i < p; i++ {
		for j := i; j < p; j++ {
			if !isFinite(sum.ObservedCov.At(i, j)) || !isFinite(sum.ImpliedCov.At(i, j)) {
				return validatorErrorf("validateSummary: covariance", ErrInvalidInput)
			}
		}
	}

	return nil
}

// validateBaseline checks the independence-model statistics.
//
// Errors: ErrInvalidInput.
// Complexity: O(1).
func validateBaseline(base Baseline) error {
	if !isFinite(base.ChiSquare) || base.ChiSquare < 0 || base.DF < 0 {
		return validatorErrorf("validateBaseline", ErrInvalidInput)
	}

	return nil
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
