// SPDX-License-Identifier: MIT

// Package core: per-vertex covariate columns and construction options.
package core

// Option configures a Graph at construction. An Option returning a
// non-nil error aborts NewGraph with that error.
type Option func(*Graph) error

// WithNumeric attaches a numeric covariate column at construction.
// Equivalent to calling SetNumeric on the fresh graph.
func WithNumeric(name string, col []float64) Option {
	return func(g *Graph) error { return g.SetNumeric(name, col) }
}

// WithCategory attaches a categorical covariate column at construction.
// Equivalent to calling SetCategory on the fresh graph.
func WithCategory(name string, col []string) Option {
	return func(g *Graph) error { return g.SetCategory(name, col) }
}

// SetNumeric attaches (or replaces) the numeric covariate column name.
// The column is copied; its length must equal the vertex count
// (ErrAttrLength otherwise).
func (g *Graph) SetNumeric(name string, col []float64) error {
	if len(col) != g.n {
		return ErrAttrLength
	}
	if g.numeric == nil {
		g.numeric = make(map[string][]float64, 1)
	}
	c := make([]float64, g.n)
	copy(c, col)
	g.numeric[name] = c

	return nil
}

// SetCategory attaches (or replaces) the categorical covariate column
// name. The column is copied; its length must equal the vertex count
// (ErrAttrLength otherwise).
func (g *Graph) SetCategory(name string, col []string) error {
	if len(col) != g.n {
		return ErrAttrLength
	}
	if g.category == nil {
		g.category = make(map[string][]string, 1)
	}
	c := make([]string, g.n)
	copy(c, col)
	g.category[name] = c

	return nil
}

// Numeric returns the numeric covariate column name, or ErrAttrNotFound.
// The returned slice is the stored column: callers must treat it as
// read-only. Terms cache it once per bind and index it per dyad.
func (g *Graph) Numeric(name string) ([]float64, error) {
	col, ok := g.numeric[name]
	if !ok {
		return nil, ErrAttrNotFound
	}

	return col, nil
}

// Category returns the categorical covariate column name, or
// ErrAttrNotFound. The returned slice is read-only by convention.
func (g *Graph) Category(name string) ([]string, error) {
	col, ok := g.category[name]
	if !ok {
		return nil, ErrAttrNotFound
	}

	return col, nil
}

// NumericNames lists the attached numeric covariate column names in
// unspecified order.
func (g *Graph) NumericNames() []string {
	names := make([]string, 0, len(g.numeric))
	for name := range g.numeric {
		names = append(names, name)
	}

	return names
}

// CategoryNames lists the attached categorical covariate column names
// in unspecified order.
func (g *Graph) CategoryNames() []string {
	names := make([]string, 0, len(g.category))
	for name := range g.category {
		names = append(names, name)
	}

	return names
}
