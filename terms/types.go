// Package terms: the Term interface, sentinel errors, and vector helpers.
package terms

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ergm/core"
)

// Sentinel errors for term construction and binding.
var (
	// ErrNoTerms indicates an empty term list where one or more terms
	// are required.
	ErrNoTerms = errors.New("terms: at least one term is required")

	// ErrUnknownAttr indicates a covariate term referencing a column
	// absent from the target graph.
	ErrUnknownAttr = errors.New("terms: covariate column not found on graph")

	// ErrBadDecay indicates a GWESP decay parameter that is negative,
	// NaN or infinite.
	ErrBadDecay = errors.New("terms: decay must be finite and >= 0")

	// ErrNotBound indicates a covariate term evaluated before Bind.
	ErrNotBound = errors.New("terms: term evaluated before Bind")

	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("terms: graph is nil")
)

// Term is one coordinate of an ERGM's sufficient-statistic vector.
//
// Stat must recompute the statistic from the full graph. Change must
// return the statistic's increment when dyad (i, j) goes from untied to
// tied, every other dyad fixed, the dyad's own state masked. Change
// must not mutate g. Both may assume 0 <= i, j < g.N() and i != j: the
// sampler and estimator only produce valid dyads, and the property
// tests pin the Stat/Change consistency contract.
type Term interface {
	// Name identifies the term in fitted-coefficient output,
	// e.g. "edges", "absdiff.seniority", "gwesp(0.50)".
	Name() string

	// Stat computes the full-graph sufficient statistic.
	Stat(g *core.Graph) float64

	// Change computes g(y⁺ᵢⱼ) − g(y⁻ᵢⱼ) without mutating g.
	Change(g *core.Graph, i, j int) float64
}

// Binder is implemented by terms that must resolve vertex covariates
// against a concrete graph before evaluation. Bind may be called more
// than once; each call rebinds to the given graph.
type Binder interface {
	Bind(g *core.Graph) error
}

// DyadIndependent is implemented by terms whose Change does not depend
// on the state of any other dyad. For a model built solely from such
// terms the likelihood factorizes over dyads and maximum-likelihood
// estimation reduces to logistic regression — no sampling needed.
type DyadIndependent interface {
	DyadIndependent()
}

// Cloner is implemented by stateful terms (those carrying bound
// columns or lookup tables). CloneTerm returns an unbound duplicate.
type Cloner interface {
	CloneTerm() Term
}

// Copy returns a term list safe to bind independently of ts: stateful
// terms are duplicated unbound, stateless terms are shared. Every
// sampler takes its terms through Copy so concurrent chains never
// share bind state.
func Copy(ts []Term) []Term {
	out := make([]Term, len(ts))
	for k, t := range ts {
		if c, ok := t.(Cloner); ok {
			out[k] = c.CloneTerm()
		} else {
			out[k] = t
		}
	}

	return out
}

// Bind resolves every covariate term in ts against g.
// Returns ErrNilGraph, ErrNoTerms, or the first bind failure wrapped
// with the offending term's name.
func Bind(g *core.Graph, ts []Term) error {
	if g == nil {
		return ErrNilGraph
	}
	if len(ts) == 0 {
		return ErrNoTerms
	}
	for _, t := range ts {
		b, ok := t.(Binder)
		if !ok {
			continue
		}
		if err := b.Bind(g); err != nil {
			return fmt.Errorf("terms: bind %q: %w", t.Name(), err)
		}
	}

	return nil
}

// Independent reports whether every term in ts is dyad-independent.
func Independent(ts []Term) bool {
	for _, t := range ts {
		if _, ok := t.(DyadIndependent); !ok {
			return false
		}
	}

	return true
}

// Names returns the term names in model order.
func Names(ts []Term) []string {
	out := make([]string, len(ts))
	for k, t := range ts {
		out[k] = t.Name()
	}

	return out
}

// Stats recomputes the full sufficient-statistic vector g(y).
func Stats(g *core.Graph, ts []Term) []float64 {
	out := make([]float64, len(ts))
	for k, t := range ts {
		out[k] = t.Stat(g)
	}

	return out
}

// Changes fills dst with the change-statistic vector for dyad (i, j)
// and returns it. dst must have length len(ts); pass a reused slice to
// keep the sampler's inner loop allocation-free.
func Changes(g *core.Graph, i, j int, ts []Term, dst []float64) []float64 {
	for k, t := range ts {
		dst[k] = t.Change(g, i, j)
	}

	return dst
}
