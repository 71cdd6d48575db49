package impute_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/jishanling/umx/impute"
)

// TestConditionAll_MatchesSequential verifies that the parallel batch
// driver produces exactly the per-row Condition results, row by row.
func TestConditionAll_MatchesSequential(t *testing.T) {
	spec := twoVarSpec()
	data := mat.NewDense(4, 2, []float64{
		2, impute.Missing(),
		impute.Missing(), -1,
		0.5, 0.25,
		impute.Missing(), impute.Missing(),
	})

	out, err := impute.ConditionAll(spec, data, impute.DefaultOptions())
	require.NoError(t, err)

	rows, cols := out.Dims()
	require.Equal(t, 4, rows)
	require.Equal(t, 2, cols)

	for i := 0; i < rows; i++ {
		vals := make([]float64, cols)
		mat.Row(vals, i, data)
		want, errRow := impute.Condition(spec, impute.Row{Values: vals}, impute.DefaultOptions())
		require.NoError(t, errRow)
		for j := 0; j < cols; j++ {
			assert.InDelta(t, want.Completed[j], out.At(i, j), 1e-12, "row %d col %d", i, j)
		}
	}
}

// TestConditionAll_WorkerCounts verifies that the worker bound does not
// change results (rows own disjoint output slots).
func TestConditionAll_WorkerCounts(t *testing.T) {
	spec := twoVarSpec()
	data := mat.NewDense(8, 2, nil)
	for i := 0; i < 8; i++ {
		data.Set(i, 0, float64(i)-3.5)
		data.Set(i, 1, impute.Missing())
	}

	opts := impute.DefaultOptions()
	opts.Workers = 1
	serial, err := impute.ConditionAll(spec, data, opts)
	require.NoError(t, err)

	opts.Workers = 4
	parallel, err := impute.ConditionAll(spec, data, opts)
	require.NoError(t, err)

	assert.True(t, mat.Equal(serial, parallel), "worker count must not perturb results")
}

// TestConditionAll_Errors covers the batch-level rejection paths.
func TestConditionAll_Errors(t *testing.T) {
	spec := twoVarSpec()

	t.Run("nil data", func(t *testing.T) {
		_, err := impute.ConditionAll(spec, nil, impute.DefaultOptions())
		assert.ErrorIs(t, err, impute.ErrNilInput)
	})

	t.Run("column mismatch", func(t *testing.T) {
		_, err := impute.ConditionAll(spec, mat.NewDense(2, 3, nil), impute.DefaultOptions())
		assert.ErrorIs(t, err, impute.ErrDimensionMismatch)
	})

	t.Run("bad row aborts the batch", func(t *testing.T) {
		data := mat.NewDense(2, 2, []float64{
			1, 2,
			math.Inf(-1), 0,
		})
		_, err := impute.ConditionAll(spec, data, impute.DefaultOptions())
		assert.ErrorIs(t, err, impute.ErrInvalidInput)
	})
}
