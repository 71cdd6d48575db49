// Package fitindex defines the summary bundle, the named index list, and
// the confidence-interval option types consumed by Compute and
// RMSEAInterval.
package fitindex

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Summary is the read-only bundle describing one fitted model, as reported
// by an external optimization engine. It is a pure value: Compute never
// mutates it and carries no state between calls.
//
// Deviance (−2·log-likelihood) may be NaN when the engine does not report
// it; the deviance-based information criteria then come out NaN while
// everything else still computes.
type Summary struct {
	N          int     // sample size
	Parameters int     // free-parameter count k
	Manifests  int     // manifest-variable count p
	Latents    int     // latent-variable count
	Deviance   float64 // −2 lnL, NaN when unreported
	ChiSquare  float64 // fitted-model chi-square
	DF         int     // fitted-model degrees of freedom

	ObservedCov *mat.SymDense // sample covariance of the manifests (p×p)
	ImpliedCov  *mat.SymDense // model-implied covariance (p×p)
}

// Baseline carries the independence-model statistics used by the
// incremental (baseline-comparison) indices.
type Baseline struct {
	ChiSquare float64
	DF        int
}

// Index names, in the fixed output order of Compute. The order is part of
// the contract: reporting layers print Indices front to back.
const (
	IndexN            = "N"
	IndexParameters   = "Parameters"
	IndexManifests    = "Manifests"
	IndexLatents      = "Latents"
	IndexDeviance     = "Deviance"
	IndexChiSquare    = "ChiSquare"
	IndexDF           = "DF"
	IndexPChiSquare   = "PChiSquare"
	IndexChiPerDF     = "ChiPerDF"
	IndexBaselineChi  = "BaselineChi"
	IndexBaselineDF   = "BaselineDF"
	IndexNFI          = "NFI"
	IndexTLI          = "TLI"
	IndexCFI          = "CFI"
	IndexRFI          = "RFI"
	IndexIFI          = "IFI"
	IndexPNFI         = "PNFI"
	IndexPRATIO       = "PRATIO"
	IndexPCFI         = "PCFI"
	IndexNCP          = "NCP"
	IndexF0           = "F0"
	IndexMcDonald     = "McDonald"
	IndexRMSEA        = "RMSEA"
	IndexRMR          = "RMR"
	IndexSRMR         = "SRMR"
	IndexGFI          = "GFI"
	IndexAGFI         = "AGFI"
	IndexPGFI         = "PGFI"
	IndexAICChi       = "AICChi"
	IndexAICDeviance  = "AICDeviance"
	IndexBICChi       = "BICChi"
	IndexBICDeviance  = "BICDeviance"
	IndexCAICChi      = "CAICChi"
	IndexCAICDeviance = "CAICDeviance"
	IndexBCC          = "BCC"
	IndexECVI         = "ECVI"
	IndexMECVI        = "MECVI"
	IndexHoelterCN05  = "HoelterCN05"
	IndexHoelterCN01  = "HoelterCN01"
)

// indexOrder is the single source of truth for the output order.
var indexOrder = []string{
	IndexN, IndexParameters, IndexManifests, IndexLatents, IndexDeviance,
	IndexChiSquare, IndexDF, IndexPChiSquare, IndexChiPerDF,
	IndexBaselineChi, IndexBaselineDF,
	IndexNFI, IndexTLI, IndexCFI, IndexRFI, IndexIFI,
	IndexPNFI, IndexPRATIO, IndexPCFI,
	IndexNCP, IndexF0, IndexMcDonald, IndexRMSEA,
	IndexRMR, IndexSRMR,
	IndexGFI, IndexAGFI, IndexPGFI,
	IndexAICChi, IndexAICDeviance, IndexBICChi, IndexBICDeviance,
	IndexCAICChi, IndexCAICDeviance,
	IndexBCC, IndexECVI, IndexMECVI,
	IndexHoelterCN05, IndexHoelterCN01,
}

// Indices is a fixed-order list of named scalar fit indices. Entries may be
// NaN where a finiteness guard fired (e.g. zero degrees of freedom);
// callers must tolerate NaN, never assume every entry is defined.
type Indices struct {
	values map[string]float64
}

// Names returns the index names in canonical reporting order.
// The returned slice is a copy; mutating it cannot disturb the contract.
func (x Indices) Names() []string {
	out := make([]string, len(indexOrder))
	copy(out, indexOrder)

	return out
}

// Len returns the number of indices.
func (x Indices) Len() int { return len(indexOrder) }

// Value returns the scalar for name and whether the name is known.
// A known name with a NaN value returns (NaN, true).
func (x Indices) Value(name string) (float64, bool) {
	v, ok := x.values[name]

	return v, ok
}

// At returns the i-th (name, value) pair in canonical order.
// Out-of-range i yields ("", NaN) rather than a panic.
func (x Indices) At(i int) (string, float64) {
	if i < 0 || i >= len(indexOrder) {
		return "", math.NaN()
	}
	name := indexOrder[i]

	return name, x.values[name]
}
