// SPDX-License-Identifier: MIT

// Package core: seeded random graph construction.
package core

import "math/rand"

// NewBernoulliGraph constructs a graph on n vertices in which every
// dyad is tied independently with probability p, drawn from rng.
//
// Dyads are visited in DyadIndex order and consume exactly one rng
// draw each, so the result is fully determined by (n, p, rng state).
// The rng is required even for p == 0 or p == 1 to keep stream
// consumption uniform across probabilities.
//
// Returns ErrBadOrder, ErrBadProbability or ErrNilRand on invalid input.
//
// Complexity: O(n²)
func NewBernoulliGraph(n int, p float64, rng *rand.Rand) (*Graph, error) {
	if n < 1 {
		return nil, ErrBadOrder
	}
	if p < 0 || p > 1 {
		return nil, ErrBadProbability
	}
	if rng == nil {
		return nil, ErrNilRand
	}
	g, err := NewGraph(n)
	if err != nil {
		return nil, err
	}
	idx := 0
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				g.adj[idx] = true
				g.deg[i]++
				g.deg[j]++
				g.edges++
			}
			idx++
		}
	}

	return g, nil
}
