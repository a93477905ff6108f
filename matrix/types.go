// SPDX-License-Identifier: MIT

// Package matrix: sentinel errors and functional options.
// All ingestion failures surface as one of the sentinels below; tests
// match them via errors.Is. Panics are reserved for programmer errors
// (nonsensical option parameters).
package matrix

import (
	"errors"
	"math"
)

var (
	// ErrNilMatrix is returned for a nil or zero-row input matrix.
	ErrNilMatrix = errors.New("matrix: input matrix is nil or empty")

	// ErrNilGraph is returned for a nil input graph.
	ErrNilGraph = errors.New("matrix: graph is nil")

	// ErrNotSquare is returned when some row's length differs from the
	// number of rows.
	ErrNotSquare = errors.New("matrix: input is not square")

	// ErrAsymmetric is returned in strict mode when a[i][j] != a[j][i].
	ErrAsymmetric = errors.New("matrix: input is not symmetric")

	// ErrDiagonal is returned in strict mode for a nonzero diagonal
	// cell; the graph carries no self-loops.
	ErrDiagonal = errors.New("matrix: nonzero diagonal entry")

	// ErrBadCell is returned for NaN or infinite cells in any mode, and
	// for non-binary off-diagonal cells in strict mode.
	ErrBadCell = errors.New("matrix: cell value out of range")

	// ErrBadEpsilon reports a negative or NaN epsilon; used as a panic
	// value since a bad threshold is a programmer error.
	ErrBadEpsilon = errors.New("matrix: epsilon must be finite and non-negative")
)

// DefaultEpsilon is the magnitude threshold below which a cell counts
// as zero in collapse mode.
const DefaultEpsilon = 1e-9

type options struct {
	collapse bool
	epsilon  float64
}

func defaultOptions() options {
	return options{epsilon: DefaultEpsilon}
}

// Option configures FromAdjacency.
type Option func(*options)

// WithCollapse switches ingestion to collapse mode: nonzero cells
// become ties and ties are OR-symmetrized.
func WithCollapse() Option {
	return func(o *options) { o.collapse = true }
}

// WithEpsilon sets the zero threshold used by collapse mode. Panics
// with ErrBadEpsilon for a negative, NaN, or infinite value.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(ErrBadEpsilon)
	}
	return func(o *options) { o.epsilon = eps }
}
