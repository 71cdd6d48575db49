// Package impute defines the moment specification, observation row, and
// option types consumed by Condition and ConditionAll.
package impute

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Spec is a joint moment specification over n named variables: a mean vector
// and a symmetric covariance matrix sharing one canonical variable order.
//
// Invariants (enforced by validation, not by construction):
//   - len(Names) == len(Mean) == Cov.SymmetricDim()
//   - Names contains no duplicates
//   - Mean and Cov contain only finite values
//
// Symmetry itself is structural: *mat.SymDense cannot represent an
// asymmetric matrix.
type Spec struct {
	// Names lists the variables in canonical order. The order fixes the
	// meaning of positional (unnamed) rows and of every returned vector.
	Names []string

	// Mean is the joint mean, indexed like Names.
	Mean []float64

	// Cov is the joint covariance, rows/cols indexed like Names.
	Cov *mat.SymDense
}

// Row is a partially observed data row. Values[i] == NaN marks entry i as
// missing; every other entry must be finite.
//
// If Names is nil, Values binds positionally to Spec.Names (lengths must
// match). If Names is non-nil, it must be a permutation of Spec.Names and
// Values[i] is the observation for Names[i].
type Row struct {
	Names  []string
	Values []float64
}

// Result is the outcome of conditioning one row.
//
// Completed has one entry per specification variable, in canonical order:
// observed entries keep their original value, missing entries carry the
// conditional mean given the observed ones.
//
// Cov is nil unless Options.WithCov was set. When present it is the full
// n×n joint matrix: the observed block is copied from the input covariance,
// the missing block is the Schur complement, and the cross blocks are copied
// from the input covariance so the joint conditional structure survives
// later consumption.
type Result struct {
	Names     []string
	Completed []float64
	Cov       *mat.SymDense
}

// DefaultWorkers is the worker-count sentinel meaning "one worker per
// available CPU" in ConditionAll.
const DefaultWorkers = 0

// Options configures Condition and ConditionAll.
//
// Fields:
//   - WithCov — also assemble the conditional covariance matrix per row.
//     Costs an extra O(k·m²) solve and an O(n²) assembly.
//   - Workers — upper bound on concurrent rows in ConditionAll.
//     DefaultWorkers (0) means GOMAXPROCS.
type Options struct {
	WithCov bool
	Workers int
}

// DefaultOptions returns the canonical defaults: mean-only completion,
// one worker per CPU.
func DefaultOptions() Options {
	return Options{WithCov: false, Workers: DefaultWorkers}
}

// Missing returns the sentinel value marking an unobserved row entry.
func Missing() float64 { return math.NaN() }

// IsMissing reports whether v marks an unobserved row entry.
func IsMissing(v float64) bool { return math.IsNaN(v) }
