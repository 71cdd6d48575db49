// SPDX-License-Identifier: MIT
// Package ram: sentinel error set (unified, consistent).
// All operations return these sentinels; tests check them via errors.Is.

package ram

import "errors"

var (
	// ErrNilModel indicates a model with a nil A, S, or M component.
	ErrNilModel = errors.New("ram: nil model component")

	// ErrShapeMismatch indicates A/S/M dimensions inconsistent with the
	// combined manifest+latent variable count, or duplicate names.
	ErrShapeMismatch = errors.New("ram: shape mismatch")

	// ErrSingularModel is returned when I−A is not invertible, so the
	// model implies no finite moments.
	ErrSingularModel = errors.New("ram: I−A is singular")

	// ErrUnknownVariable indicates a name not present in the model.
	ErrUnknownVariable = errors.New("ram: unknown variable")
)
