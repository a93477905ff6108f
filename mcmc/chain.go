// Package mcmc: the Chain type and its stepping loop.
package mcmc

import (
	"context"
	"errors"
	"math"
	"math/rand"

	"github.com/katalvlaran/ergm/core"
	"github.com/katalvlaran/ergm/terms"
)

// Sentinel errors for chain construction and control.
var (
	// ErrNilGraph is returned for a nil start graph.
	ErrNilGraph = errors.New("mcmc: start graph is nil")

	// ErrBadOrder is returned for a start graph with fewer than two
	// vertices: the dyad universe is empty, there is nothing to sample.
	ErrBadOrder = errors.New("mcmc: graph needs at least two vertices")

	// ErrNilRand is returned for a nil random stream.
	ErrNilRand = errors.New("mcmc: random stream is nil")

	// ErrThetaLength is returned when len(theta) != len(terms).
	ErrThetaLength = errors.New("mcmc: coefficient length differs from term count")
)

// Chain is a Metropolis–Hastings sampler over graphs on a fixed vertex
// set, targeting the ERGM with the current coefficient vector. It owns
// a private copy of the start graph and maintains the sufficient-
// statistic vector incrementally.
type Chain struct {
	g     *core.Graph
	ts    []terms.Term
	theta []float64
	rng   *rand.Rand

	stats []float64 // current g(y), updated per accepted toggle
	delta []float64 // scratch Δg

	proposed uint64
	accepted uint64
}

// NewChain constructs a chain starting from a clone of g. The term list
// is copied (terms.Copy) and bound against the clone, so concurrent
// chains built from one list never share state; theta must align with
// the term list.
// Returns ErrNilGraph, ErrBadOrder, ErrNilRand, ErrThetaLength, or a
// bind error (terms.ErrNoTerms, terms.ErrUnknownAttr).
func NewChain(g *core.Graph, ts []terms.Term, theta []float64, rng *rand.Rand) (*Chain, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.N() < 2 {
		return nil, ErrBadOrder
	}
	if rng == nil {
		return nil, ErrNilRand
	}
	if len(theta) != len(ts) {
		return nil, ErrThetaLength
	}
	own := g.Clone()
	ownTs := terms.Copy(ts) // private bind state per chain
	if err := terms.Bind(own, ownTs); err != nil {
		return nil, err
	}
	th := make([]float64, len(theta))
	copy(th, theta)

	return &Chain{
		g:     own,
		ts:    ownTs,
		theta: th,
		rng:   rng,
		stats: terms.Stats(own, ownTs),
		delta: make([]float64, len(ts)),
	}, nil
}

// Step performs one proposal: pick a dyad uniformly, compute the
// toggle's log probability ratio, accept or reject.
//
// Complexity: O(cost of the model's change statistics), O(n²) worst
// case with GWESP, O(1) for dyad-independent models.
func (c *Chain) Step() {
	n := c.g.N()
	// uniform dyad: i uniform over n, j uniform over the other n-1
	i := c.rng.Intn(n)
	j := c.rng.Intn(n - 1)
	if j >= i {
		j++
	}

	present := c.g.Has(i, j)
	sign := 1.0
	if present {
		sign = -1
	}

	terms.Changes(c.g, i, j, c.ts, c.delta)
	logRatio := 0.0
	for k, d := range c.delta {
		logRatio += c.theta[k] * sign * d
	}

	c.proposed++
	if logRatio < 0 && math.Log(c.rng.Float64()) >= logRatio {
		return // rejected
	}

	if _, err := c.g.Toggle(i, j); err != nil {
		panic(err) // unreachable: (i, j) is a valid dyad by construction
	}
	for k, d := range c.delta {
		c.stats[k] += sign * d
	}
	c.accepted++
}

// Run advances the chain k steps without cancellation checks.
func (c *Chain) Run(k int) {
	for s := 0; s < k; s++ {
		c.Step()
	}
}

// Advance runs k steps, checking ctx at every iteration boundary and
// returning ctx.Err() if cancelled mid-run. The chain remains valid
// and resumable after cancellation.
func (c *Chain) Advance(ctx context.Context, k int) error {
	for s := 0; s < k; s++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		c.Step()
	}

	return nil
}

// SetTheta replaces the coefficient vector, keeping graph state and
// statistics. Used by the estimator between Newton iterations.
// Returns ErrThetaLength on a misaligned vector.
func (c *Chain) SetTheta(theta []float64) error {
	if len(theta) != len(c.ts) {
		return ErrThetaLength
	}
	copy(c.theta, theta)

	return nil
}

// Stats returns a copy of the current sufficient-statistic vector.
func (c *Chain) Stats() []float64 {
	out := make([]float64, len(c.stats))
	copy(out, c.stats)

	return out
}

// Graph returns a clone of the chain's current graph state.
func (c *Chain) Graph() *core.Graph { return c.g.Clone() }

// EdgeCount reports the current graph's edge count without cloning.
func (c *Chain) EdgeCount() int { return c.g.EdgeCount() }

// N reports the vertex count of the chain's graph.
func (c *Chain) N() int { return c.g.N() }

// Proposed reports the total number of proposals made.
func (c *Chain) Proposed() uint64 { return c.proposed }

// Accepted reports the number of accepted proposals.
func (c *Chain) Accepted() uint64 { return c.accepted }

// AcceptanceRate reports accepted/proposed, or 0 before any proposal.
func (c *Chain) AcceptanceRate() float64 {
	if c.proposed == 0 {
		return 0
	}

	return float64(c.accepted) / float64(c.proposed)
}
