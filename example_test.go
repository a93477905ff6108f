package ergm_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/ergm/gof"
	"github.com/katalvlaran/ergm/matrix"
	"github.com/katalvlaran/ergm/model"
	"github.com/katalvlaran/ergm/simulate"
	"github.com/katalvlaran/ergm/terms"
)

// Example walks the full pipeline: ingest an adjacency matrix, fit an
// edges-only model, simulate from the fit, and evaluate goodness of
// fit. With a single dyad-independent term the estimate is the log
// odds of the observed density, ln(5/1) here.
func Example() {
	adj := [][]float64{
		{0, 1, 1, 1},
		{1, 0, 1, 1},
		{1, 1, 0, 0},
		{1, 1, 0, 0},
	}
	g, _ := matrix.FromAdjacency(adj)

	m, _ := model.New(terms.Edges())
	res, _ := model.Fit(context.Background(), g, m)
	fmt.Printf("edges: %.4f\n", res.Coef[0])
	fmt.Printf("converged: %v\n", res.Converged)

	set, _ := simulate.Simulate(context.Background(), res.Model, g.N(),
		simulate.WithSamples(25), simulate.WithSeed(7))
	fmt.Printf("samples: %d\n", set.Len())

	rep, _ := gof.Evaluate(g, set)
	fmt.Printf("gof tables: %d\n", len(rep.Stats))
	// Output:
	// edges: 1.6094
	// converged: true
	// samples: 25
	// gof tables: 3
}
