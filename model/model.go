// Package model: the Model type — an ordered term list plus coefficients.
package model

import (
	"github.com/katalvlaran/ergm/terms"
)

// Model is an ordered list of ERGM terms plus an optional coefficient
// vector of equal length. A Model starts unfitted: coefficients may be
// set freely (for simulation at chosen parameters) until Fit produces
// a fitted Model, which is immutable.
type Model struct {
	ts     []terms.Term
	coef   []float64
	fitted bool
}

// New constructs an unfitted model from the given terms.
// Returns terms.ErrNoTerms for an empty list.
func New(ts ...terms.Term) (*Model, error) {
	if len(ts) == 0 {
		return nil, terms.ErrNoTerms
	}
	own := make([]terms.Term, len(ts))
	copy(own, ts)

	return &Model{ts: own}, nil
}

// newFitted builds the immutable result model inside Fit.
func newFitted(ts []terms.Term, coef []float64) *Model {
	c := make([]float64, len(coef))
	copy(c, coef)

	return &Model{ts: ts, coef: c, fitted: true}
}

// NTerms reports the number of terms.
func (m *Model) NTerms() int { return len(m.ts) }

// Names returns the term names in model order.
func (m *Model) Names() []string { return terms.Names(m.ts) }

// Terms returns an independently bindable copy of the term list
// (stateful terms duplicated via terms.Copy), safe to hand to a chain.
func (m *Model) Terms() []terms.Term { return terms.Copy(m.ts) }

// Coef returns a copy of the coefficient vector, or nil if unset.
func (m *Model) Coef() []float64 {
	if m.coef == nil {
		return nil
	}
	out := make([]float64, len(m.coef))
	copy(out, m.coef)

	return out
}

// SetCoef sets the coefficient vector on an unfitted model (the
// simulate-at-chosen-parameters path).
// Returns ErrImmutable on a fitted model, ErrTermMismatch on a
// misaligned vector.
func (m *Model) SetCoef(theta []float64) error {
	if m.fitted {
		return ErrImmutable
	}
	if len(theta) != len(m.ts) {
		return ErrTermMismatch
	}
	c := make([]float64, len(theta))
	copy(c, theta)
	m.coef = c

	return nil
}

// Fitted reports whether this model came out of Fit.
func (m *Model) Fitted() bool { return m.fitted }
