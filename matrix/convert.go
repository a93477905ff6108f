// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/ergm/core"
)

// FromAdjacency builds an undirected binary graph from a square
// adjacency matrix.
//
// In strict mode the matrix must already be a valid undirected
// adjacency structure: symmetric, hollow, with every cell 0 or 1.
// With WithCollapse, any cell of magnitude above the epsilon threshold
// counts as a tie, ties are OR-symmetrized, and the diagonal is
// ignored. NaN and infinite cells are rejected in both modes.
func FromAdjacency(a [][]float64, opts ...Option) (*core.Graph, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := len(a)
	if n == 0 {
		return nil, ErrNilMatrix
	}
	for i, row := range a {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), n, ErrNotSquare)
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if math.IsNaN(a[i][j]) || math.IsInf(a[i][j], 0) {
				return nil, fmt.Errorf("cell (%d,%d): %w", i, j, ErrBadCell)
			}
		}
	}

	if !o.collapse {
		if err := validateStrict(a); err != nil {
			return nil, err
		}
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			tie := false
			if o.collapse {
				tie = math.Abs(a[i][j]) > o.epsilon || math.Abs(a[j][i]) > o.epsilon
			} else {
				tie = a[i][j] == 1
			}
			if tie {
				if err = g.Set(i, j); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

// FromAdjacencyInt is FromAdjacency for integer matrices, the usual
// shape of count data. Cells convert exactly to float64 and follow the
// same mode rules, so a count matrix wants WithCollapse.
func FromAdjacencyInt(a [][]int, opts ...Option) (*core.Graph, error) {
	f := make([][]float64, len(a))
	for i, row := range a {
		f[i] = make([]float64, len(row))
		for j, v := range row {
			f[i][j] = float64(v)
		}
	}

	return FromAdjacency(f, opts...)
}

// validateStrict enforces the strict-mode shape: binary cells,
// symmetry, zero diagonal.
func validateStrict(a [][]float64) error {
	n := len(a)
	for i := 0; i < n; i++ {
		if a[i][i] != 0 {
			return fmt.Errorf("cell (%d,%d): %w", i, i, ErrDiagonal)
		}
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if a[i][j] != 0 && a[i][j] != 1 {
				return fmt.Errorf("cell (%d,%d) = %v: %w", i, j, a[i][j], ErrBadCell)
			}
			if a[i][j] != a[j][i] {
				return fmt.Errorf("cells (%d,%d) and (%d,%d): %w", i, j, j, i, ErrAsymmetric)
			}
		}
	}

	return nil
}

// ToAdjacency renders g as a dense symmetric 0/1 matrix with a zero
// diagonal. The result round-trips through FromAdjacency.
func ToAdjacency(g *core.Graph) ([][]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	n := g.N()
	a := make([][]float64, n)
	for i := range a {
		a[i] = make([]float64, n)
	}
	for _, d := range g.Edges() {
		a[d.I][d.J] = 1
		a[d.J][d.I] = 1
	}

	return a, nil
}

// AttachAttrs bulk-loads vertex covariate columns onto g. Columns are
// applied in sorted name order, so a length error always points at the
// same column. Either map may be nil.
func AttachAttrs(g *core.Graph, numeric map[string][]float64, category map[string][]string) error {
	if g == nil {
		return ErrNilGraph
	}

	for _, name := range sortedKeys(numeric) {
		if err := g.SetNumeric(name, numeric[name]); err != nil {
			return fmt.Errorf("numeric %q: %w", name, err)
		}
	}
	for _, name := range sortedKeys(category) {
		if err := g.SetCategory(name, category[name]); err != nil {
			return fmt.Errorf("category %q: %w", name, err)
		}
	}

	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
