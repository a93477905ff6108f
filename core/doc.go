// SPDX-License-Identifier: MIT

// Package core provides the fundamental graph primitives for exponential
// random graph modeling: an undirected simple Graph over a fixed vertex
// set, the Dyad (unordered vertex pair) universe, and per-vertex numeric
// and categorical covariates.
//
// Design:
//
//   - The vertex set is fixed at construction and never grows or shrinks.
//     Every estimation and simulation routine in this module relies on the
//     invariant that observed and simulated graphs share one vertex set;
//     Graph.SameOrder enforces it wherever two graphs meet.
//   - Adjacency lives in a flat upper-triangular bool slice indexed by
//     DyadIndex, so Has/Set/Unset/Toggle are O(1) with no allocation.
//     MCMC chains toggle millions of dyads; a map-backed adjacency would
//     dominate the sampler's cost.
//   - Degrees are maintained incrementally, so Degree is O(1) too.
//   - Covariate columns (numeric or categorical) are attached by name and
//     validated against the vertex count. Clone shares covariate columns
//     and copies adjacency: covariates are immutable inputs, adjacency is
//     the chain's mutable state.
//
// No self-loops, no multi-edges, no edge weights, no directedness:
// the dyad universe of a graph on n vertices has exactly n(n-1)/2 cells,
// each either present or absent.
//
// Errors:
//
//	ErrBadOrder       - vertex count < 1 at construction.
//	ErrNilGraph       - nil *Graph passed to a package function.
//	ErrVertexRange    - vertex index outside [0, n).
//	ErrSelfLoop       - dyad endpoints are equal.
//	ErrOrderMismatch  - two graphs with different vertex counts were combined.
//	ErrAttrNotFound   - named covariate column is absent.
//	ErrAttrLength     - covariate column length differs from the vertex count.
//	ErrBadProbability - tie probability outside [0, 1].
//	ErrNilRand        - nil random stream passed where one is required.
package core
