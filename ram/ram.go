// SPDX-License-Identifier: MIT
// Package ram: RAM-representation adapter at the external-engine boundary.
// Whatever representation the optimizer reports, normalization into
// (A, S, M, manifest, latent) happens here, before the numeric cores ever
// see the data — the cores stay representation-agnostic.

package ram

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/jishanling/umx/fitindex"
	"github.com/jishanling/umx/impute"
)

// Operation name constants for unified error wrapping.
const (
	opImpliedMoments = "ImpliedMoments"
	opMomentSpec     = "MomentSpec"
	opSummarize      = "Summarize"
)

// ramErrorf wraps err with an operation tag, preserving the original error
// via %w. Use only when err != nil.
func ramErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Model is a structural model in RAM form over t = len(Manifest)+len(Latent)
// variables, ordered manifest-first then latent.
//
//   - A holds the asymmetric (one-headed) paths: A[i,j] is the path from
//     variable j into variable i.
//   - S holds the symmetric (two-headed) paths: residual variances and
//     covariances.
//   - M holds the means/intercepts, one per variable.
type Model struct {
	A        *mat.Dense
	S        *mat.SymDense
	M        []float64
	Manifest []string
	Latent   []string
}

// Index returns the position of name in the model's variable order
// (manifests first, then latents).
//
// Errors: ErrUnknownVariable.
func (m Model) Index(name string) (int, error) {
	for i, v := range m.Manifest {
		if v == name {
			return i, nil
		}
	}
	for i, v := range m.Latent {
		if v == name {
			return len(m.Manifest) + i, nil
		}
	}

	return 0, ErrUnknownVariable
}

// validate checks component presence, shape consistency, and name
// uniqueness across the combined manifest+latent order.
func (m Model) validate() error {
	if m.A == nil || m.S == nil || m.M == nil {
		return ErrNilModel
	}
	t := len(m.Manifest) + len(m.Latent)
	if t == 0 || len(m.Manifest) == 0 {
		return ErrShapeMismatch
	}
	ar, ac := m.A.Dims()
	if ar != t || ac != t || m.S.SymmetricDim() != t || len(m.M) != t {
		return ErrShapeMismatch
	}
	seen := make(map[string]struct{}, t)
	for _, name := range append(append([]string{}, m.Manifest...), m.Latent...) {
		if _, dup := seen[name]; dup {
			return ErrShapeMismatch
		}
		seen[name] = struct{}{}
	}

	return nil
}

// ImpliedMoments computes the model-implied mean and covariance of the
// manifest variables:
//
//	Σ̂ = F·(I−A)⁻¹·S·(I−A)⁻ᵀ·Fᵀ
//	μ̂ = F·(I−A)⁻¹·M
//
// where F selects the manifest block of the combined order.
//
// The manifest block of the propagated covariance is symmetrized from the
// average of mirrored entries so floating-point round-off cannot leak
// asymmetry into downstream consumers.
//
// Errors:
//   - ErrNilModel, ErrShapeMismatch from validation.
//   - ErrSingularModel when I−A is not invertible.
//
// Complexity: O(t³) for the inversion and propagation.
func (m Model) ImpliedMoments() ([]float64, *mat.SymDense, error) {
	if err := m.validate(); err != nil {
		return nil, nil, ramErrorf(opImpliedMoments, err)
	}
	t := len(m.Manifest) + len(m.Latent)

	// IA = I − A.
	ia := mat.NewDense(t, t, nil)
	for i := 0; i < t; i++ {
		for j := 0; j < t; j++ {
			v := -m.A.At(i, j)
			if i == j {
				v++
			}
			ia.Set(i, j, v)
		}
	}
	var inv mat.Dense
	if err := inv.Inverse(ia); err != nil {
		return nil, nil, ramErrorf(opImpliedMoments, ErrSingularModel)
	}

	// Full propagated covariance E = (I−A)⁻¹·S·(I−A)⁻ᵀ.
	var tmp, full mat.Dense
	tmp.Mul(&inv, m.S)
	full.Mul(&tmp, inv.T())

	// Manifest selection + symmetrization.
	p := len(m.Manifest)
	cov := mat.NewSymDense(p, nil)
	for i := 0; i < p; i++ {
		for j := i; j < p; j++ {
			cov.SetSym(i, j, 0.5*(full.At(i, j)+full.At(j, i)))
		}
	}

	// Implied means: manifest block of (I−A)⁻¹·M.
	mv := mat.NewVecDense(t, m.M)
	var mu mat.VecDense
	mu.MulVec(&inv, mv)
	mean := make([]float64, p)
	for i := 0; i < p; i++ {
		mean[i] = mu.AtVec(i)
	}

	return mean, cov, nil
}

// MomentSpec assembles the impute.Spec implied by the model, ready for
// row-wise conditioning of partially observed manifest data.
//
// Errors: as ImpliedMoments.
func (m Model) MomentSpec() (impute.Spec, error) {
	mean, cov, err := m.ImpliedMoments()
	if err != nil {
		return impute.Spec{}, ramErrorf(opMomentSpec, err)
	}
	names := make([]string, len(m.Manifest))
	copy(names, m.Manifest)

	return impute.Spec{Names: names, Mean: mean, Cov: cov}, nil
}

// FitStats carries the optimizer-reported scalars attached to a fitted RAM
// model: everything Summarize needs beyond the model structure itself.
type FitStats struct {
	N           int
	Parameters  int
	Deviance    float64 // NaN when the engine does not report −2lnL
	ChiSquare   float64
	DF          int
	ObservedCov *mat.SymDense
}

// Summarize builds the read-only fitindex.Summary bundle for a fitted
// model: implied moments come from the RAM structure, scalars from the
// engine's fit statistics.
//
// Errors:
//   - ErrNilModel, ErrShapeMismatch, ErrSingularModel from ImpliedMoments.
//   - ErrShapeMismatch when ObservedCov order differs from the manifest
//     count (fitindex would reject it later; failing here keeps the
//     boundary contract tight).
func (m Model) Summarize(fit FitStats) (fitindex.Summary, error) {
	_, implied, err := m.ImpliedMoments()
	if err != nil {
		return fitindex.Summary{}, ramErrorf(opSummarize, err)
	}
	if fit.ObservedCov == nil || fit.ObservedCov.SymmetricDim() != len(m.Manifest) {
		return fitindex.Summary{}, ramErrorf(opSummarize, ErrShapeMismatch)
	}

	return fitindex.Summary{
		N:           fit.N,
		Parameters:  fit.Parameters,
		Manifests:   len(m.Manifest),
		Latents:     len(m.Latent),
		Deviance:    fit.Deviance,
		ChiSquare:   fit.ChiSquare,
		DF:          fit.DF,
		ObservedCov: fit.ObservedCov,
		ImpliedCov:  implied,
	}, nil
}
