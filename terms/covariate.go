// Package terms: dyad-independent terms — edges and vertex-covariate terms.
package terms

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ergm/core"
)

// edgesTerm counts ties. The ERGM analog of an intercept.
type edgesTerm struct{}

// Edges returns the edge-count term. Its change statistic is
// identically 1: every new tie adds exactly one edge.
func Edges() Term { return edgesTerm{} }

func (edgesTerm) Name() string { return "edges" }

func (edgesTerm) Stat(g *core.Graph) float64 { return float64(g.EdgeCount()) }

func (edgesTerm) Change(_ *core.Graph, _, _ int) float64 { return 1 }

func (edgesTerm) DyadIndependent() {}

// absDiffTerm sums |xᵢ − xⱼ| over ties for one numeric column.
type absDiffTerm struct {
	attr string
	col  []float64 // bound column; nil until Bind
}

// AbsDiff returns the absolute-difference term for the numeric
// covariate column attr. A negative coefficient means ties form
// preferentially between similar vertices (homophily on a scale).
// The term must be bound to a graph carrying the column before use.
func AbsDiff(attr string) Term { return &absDiffTerm{attr: attr} }

func (t *absDiffTerm) Name() string { return "absdiff." + t.attr }

// Bind caches the column so per-dyad evaluation is two slice reads.
func (t *absDiffTerm) Bind(g *core.Graph) error {
	col, err := g.Numeric(t.attr)
	if err != nil {
		return fmt.Errorf("%w: numeric %q", ErrUnknownAttr, t.attr)
	}
	t.col = col

	return nil
}

func (t *absDiffTerm) Stat(g *core.Graph) float64 {
	if t.col == nil {
		panic(ErrNotBound) // programmer error: Bind was skipped
	}
	sum := 0.0
	for _, d := range g.Edges() {
		sum += math.Abs(t.col[d.I] - t.col[d.J])
	}

	return sum
}

func (t *absDiffTerm) Change(_ *core.Graph, i, j int) float64 {
	if t.col == nil {
		panic(ErrNotBound) // programmer error: Bind was skipped
	}

	return math.Abs(t.col[i] - t.col[j])
}

func (t *absDiffTerm) DyadIndependent() {}

// CloneTerm returns an unbound duplicate for an independent chain.
func (t *absDiffTerm) CloneTerm() Term { return &absDiffTerm{attr: t.attr} }

// nodeMatchTerm counts ties whose endpoints share a category.
type nodeMatchTerm struct {
	attr string
	col  []string // bound column; nil until Bind
}

// NodeMatch returns the categorical-match term for the column attr:
// the number of ties whose endpoints carry the same category. A
// positive coefficient is categorical homophily.
// The term must be bound to a graph carrying the column before use.
func NodeMatch(attr string) Term { return &nodeMatchTerm{attr: attr} }

func (t *nodeMatchTerm) Name() string { return "nodematch." + t.attr }

// Bind caches the column so per-dyad evaluation is two slice reads.
func (t *nodeMatchTerm) Bind(g *core.Graph) error {
	col, err := g.Category(t.attr)
	if err != nil {
		return fmt.Errorf("%w: categorical %q", ErrUnknownAttr, t.attr)
	}
	t.col = col

	return nil
}

func (t *nodeMatchTerm) Stat(g *core.Graph) float64 {
	if t.col == nil {
		panic(ErrNotBound) // programmer error: Bind was skipped
	}
	sum := 0.0
	for _, d := range g.Edges() {
		if t.col[d.I] == t.col[d.J] {
			sum++
		}
	}

	return sum
}

func (t *nodeMatchTerm) Change(_ *core.Graph, i, j int) float64 {
	if t.col == nil {
		panic(ErrNotBound) // programmer error: Bind was skipped
	}
	if t.col[i] == t.col[j] {
		return 1
	}

	return 0
}

func (t *nodeMatchTerm) DyadIndependent() {}

// CloneTerm returns an unbound duplicate for an independent chain.
func (t *nodeMatchTerm) CloneTerm() Term { return &nodeMatchTerm{attr: t.attr} }
