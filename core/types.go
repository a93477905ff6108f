// SPDX-License-Identifier: MIT

// Package core: sentinel errors, the Dyad value type, and dyad-index
// arithmetic shared by every package in this module.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrBadOrder indicates a vertex count < 1 at construction.
	ErrBadOrder = errors.New("core: vertex count must be >= 1")

	// ErrNilGraph indicates a nil *Graph was passed to a package function.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrVertexRange indicates a vertex index outside [0, n).
	ErrVertexRange = errors.New("core: vertex index out of range")

	// ErrSelfLoop indicates a dyad with equal endpoints.
	ErrSelfLoop = errors.New("core: self-loop dyad not allowed")

	// ErrOrderMismatch indicates two graphs of different order were combined.
	ErrOrderMismatch = errors.New("core: graphs have different vertex counts")

	// ErrAttrNotFound indicates a named covariate column is absent.
	ErrAttrNotFound = errors.New("core: covariate column not found")

	// ErrAttrLength indicates a covariate column whose length differs
	// from the graph's vertex count.
	ErrAttrLength = errors.New("core: covariate column length mismatch")

	// ErrBadProbability indicates a tie probability outside [0, 1].
	ErrBadProbability = errors.New("core: probability must lie in [0, 1]")

	// ErrNilRand indicates a nil *rand.Rand where a stream is required.
	ErrNilRand = errors.New("core: random stream is nil")
)

// Dyad is an unordered pair of distinct vertex indices, stored
// canonically with I < J. A Dyad is the unit of state in ERGM
// sampling: a potential edge, present or absent.
type Dyad struct {
	I, J int
}

// NewDyad returns the canonical Dyad for the pair (i, j).
// Returns ErrSelfLoop when i == j; vertex range is not checked here
// because a Dyad is graph-independent.
func NewDyad(i, j int) (Dyad, error) {
	if i == j {
		return Dyad{}, ErrSelfLoop
	}
	if i > j {
		i, j = j, i
	}

	return Dyad{I: i, J: j}, nil
}

// DyadCount reports the size of the dyad universe for a graph on
// n vertices: n(n-1)/2.
func DyadCount(n int) int {
	return n * (n - 1) / 2
}

// DyadIndex maps the canonical dyad (i, j), i < j, on n vertices to its
// position in the flat upper-triangular layout:
//
//	index = i·n − i(i+1)/2 + (j − i − 1)
//
// Row i occupies positions for j = i+1..n-1, rows packed in order.
// The caller must guarantee 0 <= i < j < n.
func DyadIndex(i, j, n int) int {
	return i*n - i*(i+1)/2 + j - i - 1
}

// AllDyads returns every dyad of a graph on n vertices in DyadIndex
// order: (0,1), (0,2), …, (0,n-1), (1,2), …, (n-2,n-1).
// This order is fixed and relied upon by estimation code.
func AllDyads(n int) []Dyad {
	ds := make([]Dyad, 0, DyadCount(n))
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			ds = append(ds, Dyad{I: i, J: j})
		}
	}

	return ds
}
