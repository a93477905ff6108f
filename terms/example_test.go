package terms_test

import (
	"fmt"

	"github.com/katalvlaran/ergm/core"
	"github.com/katalvlaran/ergm/terms"
)

// ExampleChanges evaluates a two-term model's change statistics on the
// path 0–1–2: tying (0,2) adds one edge and closes one triangle.
func ExampleChanges() {
	g, _ := core.NewGraph(3)
	_ = g.Set(0, 1)
	_ = g.Set(1, 2)

	ts := []terms.Term{terms.Edges(), terms.GWESP(0.5)}
	if err := terms.Bind(g, ts); err != nil {
		fmt.Println("bind:", err)

		return
	}

	delta := terms.Changes(g, 0, 2, ts, make([]float64, len(ts)))
	fmt.Println(terms.Names(ts))
	fmt.Printf("Δg = [%.0f %.0f]\n", delta[0], delta[1])
	// Output:
	// [edges gwesp(0.50)]
	// Δg = [1 3]
}
