// SPDX-License-Identifier: MIT
// Package impute: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the impute
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions.

package impute

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "impute: ..." for consistency and to allow
// easy grepping across logs. Do not %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil input -> non-finite input -> dimension/name-set mismatch
// -> name resolution -> singular observed block.

var (
	// ErrNilInput indicates a nil moment specification, nil covariance, or
	// nil data matrix was passed into a public entry point.
	ErrNilInput = errors.New("impute: nil input")

	// ErrInvalidInput signals a NaN or ±Inf value in the mean or covariance,
	// or a ±Inf value in an observation row. NaN in a row is not an error:
	// it marks the entry as missing.
	ErrInvalidInput = errors.New("impute: non-finite value in input")

	// ErrDimensionMismatch indicates incompatible sizes between the mean,
	// the covariance, and an observation row, or duplicate variable names.
	ErrDimensionMismatch = errors.New("impute: dimension mismatch")

	// ErrNameMismatch indicates a named observation row whose name set is
	// not a permutation of the specification's variable names.
	ErrNameMismatch = errors.New("impute: row names do not match specification")

	// ErrSingularCovariance is returned when the observed-observed covariance
	// block is not positive definite, so the conditioning solve cannot
	// proceed. Reported instead of silently producing NaN/Inf.
	ErrSingularCovariance = errors.New("impute: observed covariance block is singular")
)
