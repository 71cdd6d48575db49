// SPDX-License-Identifier: MIT
// Package fitindex: closed-form model-fit indices from sufficient
// statistics of a fitted model and its independence baseline.

package fitindex

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opCompute       = "Compute"
	opRMSEAInterval = "RMSEAInterval"
)

// Hoelter critical-N significance levels (two conventional cut-offs).
const (
	hoelterAlpha05 = 0.05
	hoelterAlpha01 = 0.01
)

// fitindexErrorf wraps err with an operation tag, preserving the original
// error via %w. Use only when err != nil.
func fitindexErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Compute derives the full fixed-order index list from a fitted-model
// summary and its independence baseline.
//
// Description:
//
//	Every index is a closed-form function of the bundle: no iteration, no
//	randomness, no state between calls.  Indices whose formula is undefined
//	for the given inputs (zero degrees of freedom, degenerate baseline,
//	unreported deviance, ...) come out NaN rather than failing the whole
//	call; only a structurally broken bundle or a singular model-implied
//	matrix is an error.
//
// Guards (mandatory, covered by tests):
//   - CFI is clipped to a maximum of 1.0; the raw ratio can exceed it.
//   - RMSEA clamps its radicand at zero: well-fitting models would
//     otherwise take the square root of a negative number.
//   - The GFI family inverts the model-implied matrix and reports
//     ErrSingularCorrelation when it is not invertible.
//
// Errors:
//   - ErrNilInput, ErrInvalidInput from validation.
//   - ErrSingularCorrelation from the GFI block.
//
// Determinism:
//   - Pure arithmetic in a fixed evaluation order; repeated identical
//     calls return bit-identical values.
//
// Complexity:
//   - Time O(p³) dominated by the p×p inversion; Space O(p²).
func Compute(sum Summary, base Baseline) (Indices, error) {
	if err := validateSummary(sum); err != nil {
		return Indices{}, fitindexErrorf(opCompute, err)
	}
	if err := validateBaseline(base); err != nil {
		return Indices{}, fitindexErrorf(opCompute, err)
	}

	var (
		n    = float64(sum.N)
		k    = float64(sum.Parameters)
		p    = float64(sum.Manifests)
		chi  = sum.ChiSquare
		df   = float64(sum.DF)
		bChi = base.ChiSquare
		bDF  = float64(base.DF)
		nan  = math.NaN()
	)

	out := make(map[string]float64, len(indexOrder))
	out[IndexN] = n
	out[IndexParameters] = k
	out[IndexManifests] = p
	out[IndexLatents] = float64(sum.Latents)
	out[IndexDeviance] = sum.Deviance
	out[IndexChiSquare] = chi
	out[IndexDF] = df
	out[IndexBaselineChi] = bChi
	out[IndexBaselineDF] = bDF

	// p.Chi = 1 − CDF_χ²(Chi, df); undefined for df = 0 (saturated model).
	if sum.DF > 0 {
		out[IndexPChiSquare] = 1 - distuv.ChiSquared{K: df}.CDF(chi)
		out[IndexChiPerDF] = chi / df
	} else {
		out[IndexPChiSquare] = nan
		out[IndexChiPerDF] = nan
	}

	// Baseline-comparison (incremental) indices.
	out[IndexNFI] = nan
	out[IndexTLI] = nan
	out[IndexCFI] = nan
	out[IndexRFI] = nan
	out[IndexIFI] = nan
	out[IndexPRATIO] = nan
	out[IndexPNFI] = nan
	out[IndexPCFI] = nan
	if bChi > 0 {
		out[IndexNFI] = (bChi - chi) / bChi
	}
	if sum.DF > 0 && base.DF > 0 {
		baseRatio := bChi / bDF
		if baseRatio != 1 {
			out[IndexTLI] = (baseRatio - chi/df) / (baseRatio - 1)
		}
		if bChi > 0 {
			out[IndexRFI] = 1 - (chi/df)/baseRatio
		}
	}
	if bChi-bDF > 0 {
		// Clip at 1.0: the raw ratio exceeds it whenever the model fits
		// better than its degrees of freedom (standard convention).
		out[IndexCFI] = math.Min(1, 1-(chi-df)/(bChi-bDF))
	}
	if bChi-df != 0 {
		out[IndexIFI] = (bChi - chi) / (bChi - df)
	}
	if base.DF > 0 {
		out[IndexPRATIO] = df / bDF
		out[IndexPNFI] = out[IndexPRATIO] * out[IndexNFI]
		out[IndexPCFI] = out[IndexPRATIO] * out[IndexCFI]
	}

	// Noncentrality family. The max(...,0) clamps are mandatory: a
	// well-fitting model yields Chi < df and a negative raw radicand.
	ncp := math.Max(chi-df, 0)
	out[IndexNCP] = ncp
	out[IndexF0] = ncp / n
	out[IndexMcDonald] = math.Exp(-0.5 * ncp / n)
	if sum.DF > 0 {
		out[IndexRMSEA] = math.Sqrt(math.Max((chi/n)/df-1/n, 0))
	} else {
		out[IndexRMSEA] = nan
	}

	// Residual-based indices from the observed/implied covariance pair.
	rmr, srmr := residualIndices(sum.ObservedCov, sum.ImpliedCov)
	out[IndexRMR] = rmr
	out[IndexSRMR] = srmr

	// GFI family: requires the inverse of the model-implied matrix.
	gfi, err := goodnessOfFit(sum.ObservedCov, sum.ImpliedCov)
	if err != nil {
		return Indices{}, fitindexErrorf(opCompute, err)
	}
	out[IndexGFI] = gfi
	halfPP1 := p * (p + 1) / 2
	if sum.DF > 0 {
		out[IndexAGFI] = 1 - (halfPP1/df)*(1-gfi)
		out[IndexPGFI] = (df / halfPP1) * gfi
	} else {
		out[IndexAGFI] = nan
		out[IndexPGFI] = nan
	}

	// Information criteria, chi-square and deviance variants. Penalty
	// terms: 2k, k·ln N, k·(ln N + 1). NaN deviance propagates into the
	// deviance variants untouched.
	logN := math.Log(n)
	out[IndexAICChi] = chi + 2*k
	out[IndexAICDeviance] = sum.Deviance + 2*k
	out[IndexBICChi] = chi + k*logN
	out[IndexBICDeviance] = sum.Deviance + k*logN
	out[IndexCAICChi] = chi + k*(logN+1)
	out[IndexCAICDeviance] = sum.Deviance + k*(logN+1)

	// Browne–Cudeck family. The scale factor N/(N−p−2) is undefined for
	// tiny samples; the guarded entries degrade to NaN.
	out[IndexBCC] = nan
	out[IndexMECVI] = nan
	if n-p-2 > 0 {
		bcc := chi + 2*k*n/(n-p-2)
		out[IndexBCC] = bcc
		out[IndexMECVI] = bcc / n
	}
	out[IndexECVI] = (chi + 2*k) / n

	// Hoelter critical N: largest sample size at which the model would
	// still be accepted at the given significance level.
	out[IndexHoelterCN05] = hoelterCN(chi, sum.DF, n, hoelterAlpha05)
	out[IndexHoelterCN01] = hoelterCN(chi, sum.DF, n, hoelterAlpha01)

	return Indices{values: out}, nil
}

// residualIndices computes RMR and SRMR over the lower triangle (diagonal
// included) of the residual matrix S − Σ̂.
//
// SRMR standardizes each residual by sqrt(s_ii·s_jj); a nonpositive
// observed variance makes the standardization undefined, so SRMR degrades
// to NaN while RMR still computes.
func residualIndices(observed, implied *mat.SymDense) (rmr, srmr float64) {
	p := observed.SymmetricDim()
	count := float64(p*(p+1)) / 2
	var sumSq, sumStd float64
	stdOK := true
	for i := 0; i < p; i++ {
		for j := 0; j <= i; j++ {
			r := observed.At(i, j) - implied.At(i, j)
			sumSq += r * r
			scale := observed.At(i, i) * observed.At(j, j)
			if scale <= 0 {
				stdOK = false
				continue
			}
			sumStd += r * r / scale
		}
	}
	rmr = math.Sqrt(sumSq / count)
	if stdOK {
		srmr = math.Sqrt(sumStd / count)
	} else {
		srmr = math.NaN()
	}

	return rmr, srmr
}

// goodnessOfFit computes Jöreskog's ML-based GFI:
//
//	GFI = 1 − tr[(Σ̂⁻¹S − I)²] / tr[(Σ̂⁻¹S)²]
//
// Errors: ErrSingularCorrelation when Σ̂ is not invertible.
func goodnessOfFit(observed, implied *mat.SymDense) (float64, error) {
	p := implied.SymmetricDim()
	var inv mat.Dense
	if err := inv.Inverse(implied); err != nil {
		return 0, ErrSingularCorrelation
	}
	var t mat.Dense
	t.Mul(&inv, observed)

	// tr(A²) = Σ_ij a_ij·a_ji, with A = T − I for the numerator and A = T
	// for the denominator. Fixed i→j order.
	var num, den float64
	for i := 0; i < p; i++ {
		for j := 0; j < p; j++ {
			tij, tji := t.At(i, j), t.At(j, i)
			den += tij * tji
			if i == j {
				num += (tij - 1) * (tji - 1)
			} else {
				num += tij * tji
			}
		}
	}
	if den == 0 {
		return math.NaN(), nil
	}

	return 1 - num/den, nil
}

// hoelterCN computes Hoelter's critical N at significance level alpha:
// the integer part of χ²_crit(1−alpha, df) / (Chi/(N−1)) plus one.
// Undefined (NaN) for df = 0, Chi = 0, or N ≤ 1.
func hoelterCN(chi float64, df int, n, alpha float64) float64 {
	if df <= 0 || chi <= 0 || n <= 1 {
		return math.NaN()
	}
	crit := distuv.ChiSquared{K: float64(df)}.Quantile(1 - alpha)

	return math.Floor(crit/(chi/(n-1))) + 1
}
