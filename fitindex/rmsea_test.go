package fitindex_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/jishanling/umx/fitindex"
)

// ciSummary builds a bundle with the given chi-square and df over the
// reference matrices.
func ciSummary(chi float64, df int) fitindex.Summary {
	return fitindex.Summary{
		N:           100,
		Parameters:  5,
		Manifests:   2,
		Latents:     0,
		Deviance:    math.NaN(),
		ChiSquare:   chi,
		DF:          df,
		ObservedCov: mat.NewSymDense(2, []float64{1, 0, 0, 1}),
		ImpliedCov:  mat.NewSymDense(2, []float64{1, 0, 0, 1}),
	}
}

// TestNoncentralCDF_CentralLimit verifies that λ=0 reproduces the central
// chi-square CDF.
func TestNoncentralCDF_CentralLimit(t *testing.T) {
	for _, df := range []float64{1, 5, 10, 30} {
		for _, x := range []float64{0.5, 2, 10, 50} {
			want := distuv.ChiSquared{K: df}.CDF(x)
			got := fitindex.NoncentralChiSquareCDF_TestOnly(x, df, 0)
			assert.InDelta(t, want, got, 1e-12, "df=%v x=%v", df, x)
		}
	}
}

// TestNoncentralCDF_Properties verifies the shape facts the bisection
// relies on: values in [0,1], strictly decreasing in λ, zero at x≤0.
func TestNoncentralCDF_Properties(t *testing.T) {
	const x, df = 12.0, 6.0
	prev := 2.0
	for _, lambda := range []float64{0, 1, 5, 20, 80} {
		v := fitindex.NoncentralChiSquareCDF_TestOnly(x, df, lambda)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
		assert.Less(t, v, prev, "CDF must decrease as λ grows (λ=%v)", lambda)
		prev = v
	}

	assert.Equal(t, 0.0, fitindex.NoncentralChiSquareCDF_TestOnly(0, df, 3))
	assert.Equal(t, 0.0, fitindex.NoncentralChiSquareCDF_TestOnly(-1, df, 3))
}

// TestSolveNoncentrality_RoundTrip verifies that the bisection recovers a
// λ whose CDF hits the target within tolerance.
func TestSolveNoncentrality_RoundTrip(t *testing.T) {
	const (
		chi    = 20.0
		df     = 10.0
		target = 0.5
	)
	lambda := fitindex.SolveNoncentrality_TestOnly(chi, df, target, 100, 1e-12, 200)
	require.False(t, math.IsNaN(lambda))
	back := fitindex.NoncentralChiSquareCDF_TestOnly(chi, df, lambda)
	assert.InDelta(t, target, back, 1e-9)
}

// TestRMSEAInterval_BracketsPointEstimate verifies that when both bounds
// exist the interval straddles the point estimate sqrt(NCP/(N·df)).
func TestRMSEAInterval_BracketsPointEstimate(t *testing.T) {
	sum := ciSummary(20, 10) // point RMSEA = sqrt(10/1000) = 0.1

	iv, err := fitindex.RMSEAInterval(sum, fitindex.DefaultCIOptions())
	require.NoError(t, err)

	require.False(t, math.IsNaN(iv.Lower))
	require.False(t, math.IsNaN(iv.Upper))
	assert.Equal(t, 0.90, iv.Confidence)
	assert.Less(t, iv.Lower, 0.1)
	assert.Greater(t, iv.Upper, 0.1)
}

// TestRMSEAInterval_GoodFitLowerBound verifies graceful degradation: a
// well-fitting model (Chi < df) has no lower-bound root, so Lower is NaN
// while Upper still computes and the call succeeds.
func TestRMSEAInterval_GoodFitLowerBound(t *testing.T) {
	sum := ciSummary(5, 10)

	iv, err := fitindex.RMSEAInterval(sum, fitindex.DefaultCIOptions())
	require.NoError(t, err)

	assert.True(t, math.IsNaN(iv.Lower), "no sign change for the lower bound")
	require.False(t, math.IsNaN(iv.Upper))
	assert.Greater(t, iv.Upper, 0.0)
}

// TestRMSEAInterval_Unavailable verifies ErrCIUnavailable when neither
// bound can be bracketed: good fit (no lower root) plus a ceiling too
// small for the upper root.
func TestRMSEAInterval_Unavailable(t *testing.T) {
	sum := ciSummary(5, 10)
	opts := fitindex.DefaultCIOptions()
	opts.LambdaCeiling = 1e-6

	iv, err := fitindex.RMSEAInterval(sum, opts)
	assert.ErrorIs(t, err, fitindex.ErrCIUnavailable)
	assert.True(t, math.IsNaN(iv.Lower))
	assert.True(t, math.IsNaN(iv.Upper))
}

// TestRMSEAInterval_ZeroDF verifies the saturated-model rejection.
func TestRMSEAInterval_ZeroDF(t *testing.T) {
	_, err := fitindex.RMSEAInterval(ciSummary(0, 0), fitindex.DefaultCIOptions())
	assert.ErrorIs(t, err, fitindex.ErrCIUnavailable)
}

// TestRMSEAInterval_BadConfidence verifies rejection of confidence levels
// outside (0,1).
func TestRMSEAInterval_BadConfidence(t *testing.T) {
	opts := fitindex.DefaultCIOptions()
	opts.Confidence = 1.5

	_, err := fitindex.RMSEAInterval(ciSummary(20, 10), opts)
	assert.ErrorIs(t, err, fitindex.ErrInvalidInput)
}

// TestDefaultLambdaCeiling pins the documented heuristic max(N, 4·Chi).
func TestDefaultLambdaCeiling(t *testing.T) {
	assert.Equal(t, 100.0, fitindex.DefaultLambdaCeiling(100, 20))
	assert.Equal(t, 200.0, fitindex.DefaultLambdaCeiling(100, 50))
}
