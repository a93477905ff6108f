// Package mcmc implements the Metropolis–Hastings Markov chain over the
// space of graphs on a fixed vertex set, the sampling engine shared by
// model fitting (model.Fit) and simulation (simulate.Simulate).
//
// Algorithm (one Step):
//
//  1. Propose one dyad uniformly at random from the n(n-1)/2 universe.
//  2. Compute the change-statistic vector Δg for toggling it, via the
//     terms package's incremental contract — no full recomputation.
//  3. Accept with probability min(1, exp(θ·±Δg)): the sign is +Δg when
//     the proposal adds the tie, −Δg when it removes it.
//  4. On acceptance, toggle the dyad and fold ±Δg into the running
//     sufficient-statistic vector.
//
// The proposal is symmetric (uniform over dyads regardless of state),
// so the acceptance ratio is exactly the ERGM probability ratio and the
// chain's stationary distribution is the model at θ.
//
// Determinism: a Chain consumes randomness only from the *rand.Rand
// passed at construction — two rng draws per proposal for the dyad, one
// more only when the log-ratio is negative. Identical (graph, terms, θ,
// seed) inputs reproduce identical trajectories. There is no package
// state and no global seed.
//
// Concurrency: one Chain is strictly sequential — each step depends on
// the previous graph state. Independent chains with independent rng
// streams may run concurrently; NewChain clones the start graph so
// chains never share mutable state.
//
// Errors:
//
//	ErrNilGraph    - nil start graph.
//	ErrNilRand     - nil random stream.
//	ErrThetaLength - coefficient vector length differs from term count.
package mcmc
