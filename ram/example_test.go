package ram_test

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/jishanling/umx/fitindex"
	"github.com/jishanling/umx/impute"
	"github.com/jishanling/umx/ram"
)

// ExampleModel_MomentSpec derives the implied moments of a one-factor model
// and uses them to complete a partially observed row.
func ExampleModel_MomentSpec() {
	a := mat.NewDense(3, 3, nil)
	a.Set(0, 2, 0.8) // x1 ← L
	a.Set(1, 2, 0.5) // x2 ← L

	s := mat.NewSymDense(3, nil)
	s.SetSym(0, 0, 0.36)
	s.SetSym(1, 1, 0.75)
	s.SetSym(2, 2, 1)

	m := ram.Model{
		A:        a,
		S:        s,
		M:        []float64{0, 0, 0.5},
		Manifest: []string{"x1", "x2"},
		Latent:   []string{"L"},
	}

	spec, err := m.MomentSpec()
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	row := impute.Row{Values: []float64{1, impute.Missing()}}
	res, err := impute.Condition(spec, row, impute.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("E[x2|x1=1] = %.2f\n", res.Completed[1])
	// Output:
	// E[x2|x1=1] = 0.49
}

// ExampleModel_Summarize bridges a fitted model into the fit-index battery.
func ExampleModel_Summarize() {
	a := mat.NewDense(3, 3, nil)
	a.Set(0, 2, 0.8)
	a.Set(1, 2, 0.5)

	s := mat.NewSymDense(3, nil)
	s.SetSym(0, 0, 0.36)
	s.SetSym(1, 1, 0.75)
	s.SetSym(2, 2, 1)

	m := ram.Model{
		A:        a,
		S:        s,
		M:        []float64{0, 0, 0.5},
		Manifest: []string{"x1", "x2"},
		Latent:   []string{"L"},
	}

	fit := ram.FitStats{
		N:           100,
		Parameters:  5,
		Deviance:    math.NaN(), // engine did not report −2lnL
		ChiSquare:   10,
		DF:          5,
		ObservedCov: mat.NewSymDense(2, []float64{1, 0.3, 0.3, 1}),
	}

	sum, err := m.Summarize(fit)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	ix, err := fitindex.Compute(sum, fitindex.Baseline{ChiSquare: 100, DF: 10})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	rmsea, _ := ix.Value(fitindex.IndexRMSEA)
	fmt.Printf("RMSEA = %.2f\n", rmsea)
	// Output:
	// RMSEA = 0.10
}
