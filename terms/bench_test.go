package terms_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/ergm/core"
	"github.com/katalvlaran/ergm/terms"
)

// benchGraph builds a 100-vertex Bernoulli(0.1) graph with covariates.
func benchGraph(b *testing.B) *core.Graph {
	b.Helper()
	const n = 100
	rng := rand.New(rand.NewSource(42))
	g, err := core.NewBernoulliGraph(n, 0.1, rng)
	if err != nil {
		b.Fatal(err)
	}
	num := make([]float64, n)
	for v := range num {
		num[v] = rng.NormFloat64()
	}
	if err = g.SetNumeric("x", num); err != nil {
		b.Fatal(err)
	}

	return g
}

// BenchmarkGWESP_Change measures the dependent term's per-proposal cost,
// the dominant term in the sampler's inner loop.
func BenchmarkGWESP_Change(b *testing.B) {
	g := benchGraph(b)
	term := terms.GWESP(0.5)
	if err := terms.Bind(g, []terms.Term{term}); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for k := 0; k < b.N; k++ {
		_ = term.Change(g, k%100, (k+7)%100)
	}
}

// BenchmarkGWESP_Stat measures full recomputation, the cost Change avoids.
func BenchmarkGWESP_Stat(b *testing.B) {
	g := benchGraph(b)
	term := terms.GWESP(0.5)
	if err := terms.Bind(g, []terms.Term{term}); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for k := 0; k < b.N; k++ {
		_ = term.Stat(g)
	}
}

// BenchmarkChanges_FourTerms measures a realistic model's Δg vector.
func BenchmarkChanges_FourTerms(b *testing.B) {
	g := benchGraph(b)
	cat := make([]string, 100)
	for v := range cat {
		cat[v] = string(rune('a' + v%3))
	}
	if err := g.SetCategory("c", cat); err != nil {
		b.Fatal(err)
	}

	ts := []terms.Term{terms.Edges(), terms.AbsDiff("x"), terms.NodeMatch("c"), terms.GWESP(0.5)}
	if err := terms.Bind(g, ts); err != nil {
		b.Fatal(err)
	}
	dst := make([]float64, len(ts))

	b.ResetTimer()
	for k := 0; k < b.N; k++ {
		_ = terms.Changes(g, k%100, (k+7)%100, ts, dst)
	}
}
