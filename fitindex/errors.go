// SPDX-License-Identifier: MIT
// Package fitindex: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// fitindex package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user-triggered
// error conditions.

package fitindex

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "fitindex: ..." for consistency and to
// allow easy grepping across logs. Wrap with an operation tag at the facade
// only; callers match with errors.Is.

var (
	// ErrNilInput indicates a nil observed or model-implied covariance in
	// the summary bundle.
	ErrNilInput = errors.New("fitindex: nil input")

	// ErrInvalidInput signals an inconsistent or non-finite summary bundle:
	// nonpositive sample size, negative counts, negative or non-finite
	// chi-square, or NaN/Inf in a covariance matrix. Deviance is exempt —
	// NaN deviance is a legal "not reported" marker.
	ErrInvalidInput = errors.New("fitindex: invalid summary bundle")

	// ErrSingularCorrelation is returned by the GFI family when the
	// model-implied matrix is not invertible. Reported, not a crash.
	ErrSingularCorrelation = errors.New("fitindex: model-implied matrix is singular")

	// ErrCIUnavailable indicates that neither RMSEA confidence bound could
	// be bracketed by the noncentrality search. A single unavailable bound
	// degrades to NaN without this error.
	ErrCIUnavailable = errors.New("fitindex: confidence interval unavailable")
)
