// SPDX-License-Identifier: MIT

// Package core: the Graph type and its adjacency operations.
package core

// Graph is an undirected simple graph over a fixed vertex set
// {0, …, n-1}. Adjacency is stored as a flat upper-triangular bool
// slice; degrees and the edge count are maintained incrementally so
// Degree, EdgeCount and Density are O(1).
//
// Graph is NOT safe for concurrent mutation. Each MCMC chain owns its
// private Graph; concurrent chains never share one (see mcmc and
// simulate package docs).
type Graph struct {
	n     int
	adj   []bool
	deg   []int
	edges int

	// covariate columns, shared (not copied) across Clones
	numeric  map[string][]float64
	category map[string][]string
}

// NewGraph constructs an empty graph on n vertices.
// Returns ErrBadOrder when n < 1, or the first option error.
func NewGraph(n int, opts ...Option) (*Graph, error) {
	if n < 1 {
		return nil, ErrBadOrder
	}
	g := &Graph{
		n:   n,
		adj: make([]bool, DyadCount(n)),
		deg: make([]int, n),
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// N reports the (fixed) number of vertices.
//
// Complexity: O(1)
func (g *Graph) N() int { return g.n }

// EdgeCount reports the current number of edges.
//
// Complexity: O(1)
func (g *Graph) EdgeCount() int { return g.edges }

// Density reports edges / DyadCount(n), in [0, 1].
//
// Complexity: O(1)
func (g *Graph) Density() float64 {
	return float64(g.edges) / float64(DyadCount(g.n))
}

// Has reports whether the dyad (i, j) is tied.
// Out-of-range indices and self-loops report false; mutation methods
// are the validated surface.
//
// Complexity: O(1)
func (g *Graph) Has(i, j int) bool {
	if i == j || i < 0 || j < 0 || i >= g.n || j >= g.n {
		return false
	}
	if i > j {
		i, j = j, i
	}

	return g.adj[DyadIndex(i, j, g.n)]
}

// check validates the dyad (i, j) and returns its canonical flat index.
func (g *Graph) check(i, j int) (int, error) {
	if i < 0 || j < 0 || i >= g.n || j >= g.n {
		return 0, ErrVertexRange
	}
	if i == j {
		return 0, ErrSelfLoop
	}
	if i > j {
		i, j = j, i
	}

	return DyadIndex(i, j, g.n), nil
}

// Set ties the dyad (i, j). Setting an existing tie is a no-op.
// Returns ErrVertexRange or ErrSelfLoop on invalid input.
//
// Complexity: O(1)
func (g *Graph) Set(i, j int) error {
	idx, err := g.check(i, j)
	if err != nil {
		return err
	}
	if !g.adj[idx] {
		g.adj[idx] = true
		g.deg[i]++
		g.deg[j]++
		g.edges++
	}

	return nil
}

// Unset removes the tie on dyad (i, j). Removing an absent tie is a no-op.
// Returns ErrVertexRange or ErrSelfLoop on invalid input.
//
// Complexity: O(1)
func (g *Graph) Unset(i, j int) error {
	idx, err := g.check(i, j)
	if err != nil {
		return err
	}
	if g.adj[idx] {
		g.adj[idx] = false
		g.deg[i]--
		g.deg[j]--
		g.edges--
	}

	return nil
}

// Toggle flips the state of dyad (i, j) and reports the NEW state.
// Returns ErrVertexRange or ErrSelfLoop on invalid input.
//
// Complexity: O(1)
func (g *Graph) Toggle(i, j int) (bool, error) {
	idx, err := g.check(i, j)
	if err != nil {
		return false, err
	}
	if g.adj[idx] {
		g.adj[idx] = false
		g.deg[i]--
		g.deg[j]--
		g.edges--
	} else {
		g.adj[idx] = true
		g.deg[i]++
		g.deg[j]++
		g.edges++
	}

	return g.adj[idx], nil
}

// Degree reports the number of ties incident to vertex i.
// Returns ErrVertexRange on invalid input.
//
// Complexity: O(1)
func (g *Graph) Degree(i int) (int, error) {
	if i < 0 || i >= g.n {
		return 0, ErrVertexRange
	}

	return g.deg[i], nil
}

// Neighbors appends the neighbors of vertex i (ascending) to buf and
// returns the extended slice. Pass a reused buf to avoid allocation in
// hot loops; pass nil for a fresh slice.
// Returns ErrVertexRange on invalid input.
//
// Complexity: O(n)
func (g *Graph) Neighbors(i int, buf []int) ([]int, error) {
	if i < 0 || i >= g.n {
		return nil, ErrVertexRange
	}
	for j := 0; j < g.n; j++ {
		if j != i && g.Has(i, j) {
			buf = append(buf, j)
		}
	}

	return buf, nil
}

// SharedPartners reports |N(i) ∩ N(j)|: the number of vertices adjacent
// to both endpoints of the dyad (i, j). The dyad's own state does not
// enter the count.
// Returns ErrVertexRange or ErrSelfLoop on invalid input.
//
// Complexity: O(n)
func (g *Graph) SharedPartners(i, j int) (int, error) {
	if _, err := g.check(i, j); err != nil {
		return 0, err
	}
	sp := 0
	for k := 0; k < g.n; k++ {
		if k != i && k != j && g.Has(i, k) && g.Has(j, k) {
			sp++
		}
	}

	return sp, nil
}

// Edges returns every tied dyad in DyadIndex order.
//
// Complexity: O(n²)
func (g *Graph) Edges() []Dyad {
	out := make([]Dyad, 0, g.edges)
	idx := 0
	for i := 0; i < g.n-1; i++ {
		for j := i + 1; j < g.n; j++ {
			if g.adj[idx] {
				out = append(out, Dyad{I: i, J: j})
			}
			idx++
		}
	}

	return out
}

// Clone returns a graph with copied adjacency and degree state.
// Covariate columns are shared, not copied: they are immutable inputs
// fixed at ingestion, while adjacency is per-chain mutable state.
//
// Complexity: O(n²)
func (g *Graph) Clone() *Graph {
	c := &Graph{
		n:        g.n,
		adj:      make([]bool, len(g.adj)),
		deg:      make([]int, len(g.deg)),
		edges:    g.edges,
		numeric:  g.numeric,
		category: g.category,
	}
	copy(c.adj, g.adj)
	copy(c.deg, g.deg)

	return c
}

// CloneEmpty returns an edgeless graph on the same vertex set,
// sharing covariate columns with the receiver.
//
// Complexity: O(n²) for the fresh adjacency slice.
func (g *Graph) CloneEmpty() *Graph {
	return &Graph{
		n:        g.n,
		adj:      make([]bool, len(g.adj)),
		deg:      make([]int, g.n),
		numeric:  g.numeric,
		category: g.category,
	}
}

// SameOrder reports whether g and h are graphs on vertex sets of equal
// size. Returns ErrNilGraph when either is nil.
// Every cross-graph operation in this module must pass through here:
// the ERGM invariant is one fixed vertex set across observed and
// simulated graphs.
func SameOrder(g, h *Graph) error {
	if g == nil || h == nil {
		return ErrNilGraph
	}
	if g.n != h.n {
		return ErrOrderMismatch
	}

	return nil
}
