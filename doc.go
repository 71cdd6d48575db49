// Package umx provides the numeric core behind structural-equation-model
// (SEM) reporting: conditional-moment imputation of partially observed
// rows, and the standard family of model-fit indices.
//
// 🚀 What is umx?
//
//	A convenience layer over an external SEM optimization engine.  The
//	engine fits the model; this library turns its output into numbers a
//	report can carry:
//		• impute/   — Schur-complement completion of partially observed rows
//		  against model-implied moments, with a row-parallel batch driver
//		• fitindex/ — ~40 closed-form fit indices (RMSEA, CFI, TLI, GFI,
//		  information criteria, Hoelter) plus the RMSEA confidence interval
//		• ram/      — normalization of the engine's RAM-form model into the
//		  plain moment/summary bundles the cores consume
//
// ✨ Why choose umx?
//
//   - Typed failures — singular blocks and garbage inputs surface as
//     errors.Is-matchable sentinels, never silent NaN propagation
//   - Deterministic — pure functions, fixed evaluation orders, repeated
//     identical calls return bit-identical results
//   - Engine-agnostic — the cores see only mean vectors, covariance
//     matrices, and scalar sufficient statistics
//
// The optimizer itself (model definition, maximum-likelihood fitting,
// standard errors, convergence diagnostics) is an external collaborator,
// as are all formatting, plotting, and file-export layers.
//
// Dive into each package's doc.go and example_test.go for usage, and
// examples/ for complete end-to-end programs.
package umx
