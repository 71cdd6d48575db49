// Package ram normalizes the output of an external SEM optimization engine
// — a model in RAM (Reticular Action Model) form — into the plain numeric
// bundles the impute and fitindex packages consume.
//
// 🚀 Why a boundary package?
//
//	Optimization engines report fitted models in engine-specific shapes.
//	RAM form is the common denominator: an asymmetric path matrix A, a
//	symmetric covariance matrix S, a mean vector M, and the split into
//	manifest and latent variables.  One normalization step here keeps the
//	numeric cores representation-agnostic.
//
// ✨ Key operations:
//   - Model.ImpliedMoments — F(I−A)⁻¹ propagation of means and covariances
//   - Model.MomentSpec     — the impute.Spec implied by a fitted model
//   - Model.Summarize      — the fitindex.Summary bundle for fit indices
//
// ⚙️ Usage:
//
//	spec, err := model.MomentSpec()          // feed impute.Condition
//	sum, err  := model.Summarize(fitStats)   // feed fitindex.Compute
//
// Variable order is manifest-first then latent; Model.Index resolves a
// name to its position in that order.
package ram
