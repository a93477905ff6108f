// Package simulate: single-chain sampling and the concurrent fan-out.
package simulate

import (
	"context"
	"math/rand"
	"sync"

	"github.com/katalvlaran/ergm/core"
	"github.com/katalvlaran/ergm/mcmc"
	"github.com/katalvlaran/ergm/model"
)

// Simulate draws opts.Samples graphs on n vertices from m's
// distribution at its current coefficients. Deterministic given the
// seed; see the package documentation for the chain layout.
//
// Returns model.ErrModelNil, model.ErrNoCoef, ErrBadOrder,
// ErrOptionViolation, core.ErrOrderMismatch (WithStart order ≠ n), a
// bind error for covariate terms without columns, or ctx.Err() on
// cancellation.
func Simulate(ctx context.Context, m *model.Model, n int, opts ...Option) (*SampleSet, error) {
	if m == nil {
		return nil, model.ErrModelNil
	}
	coef := m.Coef()
	if coef == nil {
		return nil, model.ErrNoCoef
	}
	if n < 2 {
		return nil, ErrBadOrder
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	start := o.Start
	if start == nil {
		var err error
		if start, err = core.NewGraph(n); err != nil {
			return nil, err
		}
	} else if start.N() != n {
		return nil, core.ErrOrderMismatch
	}

	chain, err := mcmc.NewChain(start, m.Terms(), coef, rand.New(rand.NewSource(o.Seed)))
	if err != nil {
		return nil, err
	}

	if err = chain.Advance(ctx, o.BurnIn); err != nil {
		return nil, err
	}
	set := &SampleSet{
		Graphs: make([]*core.Graph, 0, o.Samples),
		Coef:   coef,
		Seed:   o.Seed,
	}
	for s := 0; s < o.Samples; s++ {
		if err = chain.Advance(ctx, o.Interval); err != nil {
			return nil, err
		}
		set.Graphs = append(set.Graphs, chain.Graph())
	}

	return set, nil
}

// Replicates runs r independent simulations concurrently and returns
// their SampleSets in replicate order. Replicate k uses seed+k, so the
// result is exactly the r single Simulate calls at those seeds — just
// faster. Chains share no mutable state (each clones the start graph
// and copies the term list).
//
// The first error cancels nothing: every replicate runs to completion
// or to ctx cancellation on its own, and the first non-nil error is
// returned.
func Replicates(ctx context.Context, m *model.Model, n, r int, opts ...Option) ([]*SampleSet, error) {
	if r < 1 {
		return nil, ErrBadReplicates
	}

	sets := make([]*SampleSet, r)
	errs := make([]error, r)
	var wg sync.WaitGroup
	for k := 0; k < r; k++ {
		wg.Add(1)
		go func(k int) {
			defer wg.Done()
			// per-replicate options: derived seed appended last so it
			// overrides any caller WithSeed deterministically
			local := make([]Option, 0, len(opts)+1)
			local = append(local, opts...)
			local = append(local, withDerivedSeed(k, opts))
			sets[k], errs[k] = Simulate(ctx, m, n, local...)
		}(k)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return sets, nil
}

// withDerivedSeed resolves the caller's base seed (default or
// WithSeed) and offsets it by the replicate index.
func withDerivedSeed(k int, opts []Option) Option {
	base := DefaultOptions()
	for _, opt := range opts {
		opt(&base)
	}

	return WithSeed(base.Seed + int64(k))
}
