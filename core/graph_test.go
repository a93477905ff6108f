// SPDX-License-Identifier: MIT

package core_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/ergm/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewGraph_BadOrder verifies that NewGraph rejects n < 1.
func TestNewGraph_BadOrder(t *testing.T) {
	_, err := core.NewGraph(0)
	assert.ErrorIs(t, err, core.ErrBadOrder, "n=0 must error ErrBadOrder")

	_, err = core.NewGraph(-3)
	assert.ErrorIs(t, err, core.ErrBadOrder, "negative n must error ErrBadOrder")
}

// TestDyadIndex_RoundTrip checks that DyadIndex enumerates the flat
// triangular layout in exactly AllDyads order, covering every cell once.
func TestDyadIndex_RoundTrip(t *testing.T) {
	const n = 7
	ds := core.AllDyads(n)
	require.Len(t, ds, core.DyadCount(n), "AllDyads must cover the dyad universe")

	for want, d := range ds {
		assert.Equal(t, want, core.DyadIndex(d.I, d.J, n),
			"DyadIndex must match AllDyads position for %v", d)
	}
}

// TestNewDyad_Canonical verifies canonicalization and self-loop rejection.
func TestNewDyad_Canonical(t *testing.T) {
	d, err := core.NewDyad(5, 2)
	require.NoError(t, err)
	assert.Equal(t, core.Dyad{I: 2, J: 5}, d, "endpoints must be stored I < J")

	_, err = core.NewDyad(3, 3)
	assert.ErrorIs(t, err, core.ErrSelfLoop, "i == j must error ErrSelfLoop")
}

// TestGraph_SetUnsetToggle exercises the O(1) mutation surface and the
// incremental edge/degree bookkeeping.
func TestGraph_SetUnsetToggle(t *testing.T) {
	g, err := core.NewGraph(4)
	require.NoError(t, err)

	require.NoError(t, g.Set(0, 1))
	require.NoError(t, g.Set(1, 0)) // duplicate, no-op
	require.NoError(t, g.Set(2, 3))
	assert.Equal(t, 2, g.EdgeCount(), "two distinct ties")
	assert.True(t, g.Has(1, 0), "Has must be orientation-free")

	d0, err := g.Degree(0)
	require.NoError(t, err)
	assert.Equal(t, 1, d0)

	state, err := g.Toggle(0, 1)
	require.NoError(t, err)
	assert.False(t, state, "toggling a tied dyad removes the tie")
	assert.Equal(t, 1, g.EdgeCount())

	require.NoError(t, g.Unset(2, 3))
	require.NoError(t, g.Unset(2, 3)) // absent, no-op
	assert.Equal(t, 0, g.EdgeCount())

	for i := 0; i < 4; i++ {
		d, dErr := g.Degree(i)
		require.NoError(t, dErr)
		assert.Zero(t, d, "all degrees must return to zero")
	}
}

// TestGraph_InvalidDyads verifies the validated mutation surface.
func TestGraph_InvalidDyads(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)

	assert.ErrorIs(t, g.Set(0, 3), core.ErrVertexRange)
	assert.ErrorIs(t, g.Set(-1, 1), core.ErrVertexRange)
	assert.ErrorIs(t, g.Set(1, 1), core.ErrSelfLoop)

	_, err = g.Toggle(2, 2)
	assert.ErrorIs(t, err, core.ErrSelfLoop)

	_, err = g.Degree(9)
	assert.ErrorIs(t, err, core.ErrVertexRange)

	assert.False(t, g.Has(0, 5), "out-of-range Has reports false, never panics")
	assert.False(t, g.Has(1, 1), "self-loop Has reports false")
}

// TestGraph_NeighborsAndSharedPartners checks neighbor enumeration and
// the shared-partner count on a small hand-built triangle-plus-tail.
//
//	0─1
//	│╳│   (0-1, 0-2, 1-2, 1-3)
//	2 3
func TestGraph_NeighborsAndSharedPartners(t *testing.T) {
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.Set(0, 1))
	require.NoError(t, g.Set(0, 2))
	require.NoError(t, g.Set(1, 2))
	require.NoError(t, g.Set(1, 3))

	nbr, err := g.Neighbors(1, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 3}, nbr, "neighbors ascend")

	sp, err := g.SharedPartners(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, sp, "vertex 2 is the only shared partner of (0,1)")

	sp, err = g.SharedPartners(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, sp, "vertex 1 bridges the absent dyad (2,3)")

	_, err = g.SharedPartners(0, 0)
	assert.ErrorIs(t, err, core.ErrSelfLoop)
}

// TestGraph_EdgesOrder verifies Edges enumerates ties in DyadIndex order.
func TestGraph_EdgesOrder(t *testing.T) {
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.Set(2, 3))
	require.NoError(t, g.Set(0, 3))
	require.NoError(t, g.Set(0, 1))

	want := []core.Dyad{{I: 0, J: 1}, {I: 0, J: 3}, {I: 2, J: 3}}
	assert.Equal(t, want, g.Edges())
}

// TestGraph_CloneIndependence verifies the clone contract: adjacency is
// copied, covariate columns are shared.
func TestGraph_CloneIndependence(t *testing.T) {
	g, err := core.NewGraph(3, core.WithNumeric("seniority", []float64{1, 2, 3}))
	require.NoError(t, err)
	require.NoError(t, g.Set(0, 1))

	c := g.Clone()
	_, err = c.Toggle(0, 1)
	require.NoError(t, err)
	require.NoError(t, c.Set(1, 2))

	assert.True(t, g.Has(0, 1), "mutating the clone must not touch the original")
	assert.False(t, g.Has(1, 2))
	assert.Equal(t, 1, g.EdgeCount(), "original keeps its single tie")
	assert.Equal(t, 1, c.EdgeCount(), "clone toggled one off, set one on")
	assert.False(t, c.Has(0, 1))
	assert.True(t, c.Has(1, 2))

	col, err := c.Numeric("seniority")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, col, "covariates travel with the clone")
}

// TestGraph_CloneEmpty verifies CloneEmpty drops ties but keeps order
// and covariates.
func TestGraph_CloneEmpty(t *testing.T) {
	g, err := core.NewGraph(5, core.WithCategory("party", []string{"D", "R", "D", "I", "R"}))
	require.NoError(t, err)
	require.NoError(t, g.Set(0, 4))

	e := g.CloneEmpty()
	assert.Equal(t, 5, e.N())
	assert.Zero(t, e.EdgeCount())

	col, err := e.Category("party")
	require.NoError(t, err)
	assert.Equal(t, "I", col[3])
}

// TestSameOrder covers the vertex-set invariant helper.
func TestSameOrder(t *testing.T) {
	g5a, err := core.NewGraph(5)
	require.NoError(t, err)
	g5b, err := core.NewGraph(5)
	require.NoError(t, err)
	g6, err := core.NewGraph(6)
	require.NoError(t, err)

	assert.NoError(t, core.SameOrder(g5a, g5b))
	assert.ErrorIs(t, core.SameOrder(g5a, g6), core.ErrOrderMismatch)
	assert.ErrorIs(t, core.SameOrder(nil, g6), core.ErrNilGraph)
}

// TestNewBernoulliGraph_Determinism verifies identical seeds produce
// identical graphs and that validation errors fire.
func TestNewBernoulliGraph_Determinism(t *testing.T) {
	a, err := core.NewBernoulliGraph(12, 0.4, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	b, err := core.NewBernoulliGraph(12, 0.4, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	assert.Equal(t, a.Edges(), b.Edges(), "same seed must reproduce the same graph")

	c, err := core.NewBernoulliGraph(12, 0.4, rand.New(rand.NewSource(8)))
	require.NoError(t, err)
	assert.NotEqual(t, a.Edges(), c.Edges(), "different seeds should differ (12 vertices, 66 dyads)")

	_, err = core.NewBernoulliGraph(12, 1.5, rand.New(rand.NewSource(7)))
	assert.ErrorIs(t, err, core.ErrBadProbability)

	_, err = core.NewBernoulliGraph(12, 0.4, nil)
	assert.ErrorIs(t, err, core.ErrNilRand)
}

// TestNewBernoulliGraph_Extremes checks the degenerate probabilities.
func TestNewBernoulliGraph_Extremes(t *testing.T) {
	empty, err := core.NewBernoulliGraph(6, 0, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Zero(t, empty.EdgeCount())

	full, err := core.NewBernoulliGraph(6, 1, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, core.DyadCount(6), full.EdgeCount())
}
