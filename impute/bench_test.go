package impute_test

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/jishanling/umx/impute"
)

// benchSpec builds an n-variable AR(1)-style specification: Σ[i,j]=ρ^|i−j|.
// Positive definite for |ρ|<1, so every observed block factorizes.
func benchSpec(n int) impute.Spec {
	const rho = 0.6
	names := make([]string, n)
	mean := make([]float64, n)
	cov := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		names[i] = string(rune('a' + i%26))
		if i >= 26 {
			names[i] = names[i] + string(rune('0'+i/26))
		}
		for j := i; j < n; j++ {
			v := 1.0
			for k := i; k < j; k++ {
				v *= rho
			}
			cov.SetSym(i, j, v)
		}
	}

	return impute.Spec{Names: names, Mean: mean, Cov: cov}
}

// benchRow marks every third entry missing.
func benchRow(n int) []float64 {
	vals := make([]float64, n)
	for i := range vals {
		if i%3 == 0 {
			vals[i] = impute.Missing()
		} else {
			vals[i] = float64(i%7) - 3
		}
	}

	return vals
}

func BenchmarkCondition_10Vars(b *testing.B) {
	spec := benchSpec(10)
	row := impute.Row{Values: benchRow(10)}
	opts := impute.DefaultOptions()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := impute.Condition(spec, row, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCondition_50VarsWithCov(b *testing.B) {
	spec := benchSpec(50)
	row := impute.Row{Values: benchRow(50)}
	opts := impute.DefaultOptions()
	opts.WithCov = true

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := impute.Condition(spec, row, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkConditionAll_1000Rows(b *testing.B) {
	const n = 20
	spec := benchSpec(n)
	data := mat.NewDense(1000, n, nil)
	for i := 0; i < 1000; i++ {
		data.SetRow(i, benchRow(n))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := impute.ConditionAll(spec, data, impute.DefaultOptions()); err != nil {
			b.Fatal(err)
		}
	}
}
