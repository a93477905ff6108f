// Package terms: the geometrically weighted edgewise-shared-partner term.
package terms

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ergm/core"
)

// gwespTerm implements GWESP with fixed decay α.
//
// Statistic (Hunter 2007 parameterization):
//
//	GWESP(y) = Σ over ties (i,j) of w(sp(i,j))
//	w(k)     = e^α · (1 − (1 − e^{−α})^k)
//
// where sp(i,j) is the number of shared partners of the tie's
// endpoints. w(0) = 0 and w saturates geometrically, so the first
// shared partner of a tie counts most and further ones ever less —
// triadic closure without the degeneracy of a raw triangle count.
type gwespTerm struct {
	decay float64
	w     []float64 // w[0..kMax] precomputed; grown on Bind
}

// GWESP returns the geometrically weighted edgewise-shared-partner
// term with fixed decay alpha >= 0. Construction panics with
// ErrBadDecay on a negative, NaN or infinite decay (programmer error,
// matching option-validation style elsewhere in this module).
func GWESP(alpha float64) Term {
	if alpha < 0 || math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		panic(ErrBadDecay)
	}

	return &gwespTerm{decay: alpha, w: weightTable(alpha, 0)}
}

// weightTable precomputes w(0..kMax). kMax = n-2 suffices for a graph
// on n vertices: a tie cannot have more shared partners than that.
func weightTable(alpha float64, kMax int) []float64 {
	w := make([]float64, kMax+1)
	scale := math.Exp(alpha)
	base := 1 - math.Exp(-alpha)
	pow := 1.0 // base^k
	for k := 0; k <= kMax; k++ {
		w[k] = scale * (1 - pow)
		pow *= base
	}

	return w
}

func (t *gwespTerm) Name() string { return fmt.Sprintf("gwesp(%.2f)", t.decay) }

// CloneTerm returns a duplicate with its own weight table.
func (t *gwespTerm) CloneTerm() Term {
	return &gwespTerm{decay: t.decay, w: weightTable(t.decay, len(t.w)-1)}
}

// Bind sizes the weight table for the graph's order.
func (t *gwespTerm) Bind(g *core.Graph) error {
	if kMax := g.N() - 2; kMax >= len(t.w) {
		t.w = weightTable(t.decay, kMax)
	}

	return nil
}

// weight returns w(k), extending the table if an unbound term meets a
// larger graph than anticipated.
func (t *gwespTerm) weight(k int) float64 {
	if k >= len(t.w) {
		t.w = weightTable(t.decay, k)
	}

	return t.w[k]
}

// Stat sums w(sp) over all ties.
//
// Complexity: O(edges · n)
func (t *gwespTerm) Stat(g *core.Graph) float64 {
	sum := 0.0
	for _, d := range g.Edges() {
		sp, _ := g.SharedPartners(d.I, d.J) // valid dyad from Edges
		sum += t.weight(sp)
	}

	return sum
}

// Change computes the GWESP increment for tying (i, j), the dyad's own
// state masked. Three effects:
//
//  1. The new tie itself enters with w(cn), cn = |N(i) ∩ N(j)|.
//  2. Each common neighbor k turns the existing tie (i,k) from sp to
//     sp+1 shared partners: += w(sp+1) − w(sp).
//  3. Symmetrically for each existing tie (j,k).
//
// Shared-partner counts in 2 and 3 exclude the masked dyad's
// contribution: j cannot be a shared partner of (i,k) via the tie
// (i,j) that does not exist in y⁻, likewise i for (j,k).
//
// Complexity: O(n²) worst case, O(n·cn) typical.
func (t *gwespTerm) Change(g *core.Graph, i, j int) float64 {
	n := g.N()
	delta := 0.0
	cn := 0
	for k := 0; k < n; k++ {
		if k == i || k == j || !g.Has(i, k) || !g.Has(j, k) {
			continue
		}
		cn++
		spIK := sharedExcluding(g, i, k, j)
		spJK := sharedExcluding(g, j, k, i)
		delta += t.weight(spIK+1) - t.weight(spIK)
		delta += t.weight(spJK+1) - t.weight(spJK)
	}

	return delta + t.weight(cn)
}

// sharedExcluding counts shared partners of (a, b) skipping vertex excl.
func sharedExcluding(g *core.Graph, a, b, excl int) int {
	n := g.N()
	sp := 0
	for m := 0; m < n; m++ {
		if m == a || m == b || m == excl {
			continue
		}
		if g.Has(a, m) && g.Has(b, m) {
			sp++
		}
	}

	return sp
}
