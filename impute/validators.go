// SPDX-License-Identifier: MIT
// Package: impute
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep Condition/ConditionAll minimal by delegating shape/name/finiteness
//     checks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap
//     uniformly with an operation tag.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate at most one index map.
//   - Finiteness scan of the covariance runs on the upper triangle only
//     (SymDense stores a symmetric view; the lower triangle mirrors it).

package impute

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateSpec checks the Spec invariants: non-nil covariance, consistent
// lengths, unique names, and finite mean/covariance entries.
//
// Errors: ErrNilInput, ErrDimensionMismatch, ErrInvalidInput.
// Complexity: O(n²) dominated by the covariance scan.
func validateSpec(spec Spec) error {
	if spec.Cov == nil {
		return validatorErrorf("validateSpec", ErrNilInput)
	}
	n := spec.Cov.SymmetricDim()
	if len(spec.Names) != n || len(spec.Mean) != n {
		return validatorErrorf("validateSpec", ErrDimensionMismatch)
	}
	// Duplicate-name scan: the canonical order must be a true index.
	seen := make(map[string]struct{}, n)
	for _, name := range spec.Names {
		if _, dup := seen[name]; dup {
			return validatorErrorf("validateSpec: duplicate name", ErrDimensionMismatch)
		}
		seen[name] = struct{}{}
	}
	// Finiteness: garbage-in is rejected, not silently propagated.
	for i := 0; i < n; i++ {
		if !isFinite(spec.Mean[i]) {
			return validatorErrorf("validateSpec: mean", ErrInvalidInput)
		}
		for j := i; j < n; j++ {
			if !isFinite(spec.Cov.At(i, j)) {
				return validatorErrorf("validateSpec: covariance", ErrInvalidInput)
			}
		}
	}

	return nil
}

// resolveRow maps a Row onto the canonical variable order of spec and
// returns its values in that order. NaN entries pass through as "missing";
// ±Inf entries are rejected.
//
// Unnamed rows bind positionally (length must equal n). Named rows must be
// a permutation of spec.Names.
//
// Errors: ErrDimensionMismatch (length), ErrNameMismatch (unknown or
// repeated row name), ErrInvalidInput (±Inf entry).
// Complexity: O(n) plus one map lookup per named entry.
func resolveRow(spec Spec, row Row) ([]float64, error) {
	n := len(spec.Names)
	if len(row.Values) != n {
		return nil, validatorErrorf("resolveRow", ErrDimensionMismatch)
	}
	for _, v := range row.Values {
		if math.IsInf(v, 0) {
			return nil, validatorErrorf("resolveRow", ErrInvalidInput)
		}
	}

	// Positional binding: the caller asserts canonical order.
	if row.Names == nil {
		out := make([]float64, n)
		copy(out, row.Values)

		return out, nil
	}

	// Named binding: names must form a permutation of spec.Names.
	if len(row.Names) != n {
		return nil, validatorErrorf("resolveRow", ErrNameMismatch)
	}
	index := make(map[string]int, n)
	for i, name := range spec.Names {
		index[name] = i
	}
	out := make([]float64, n)
	placed := make([]bool, n)
	for i, name := range row.Names {
		pos, ok := index[name]
		if !ok || placed[pos] {
			return nil, validatorErrorf("resolveRow", ErrNameMismatch)
		}
		placed[pos] = true
		out[pos] = row.Values[i]
	}

	return out, nil
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
