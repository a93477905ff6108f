// Package simulate draws graph samples from an ERGM with fixed
// coefficients — either a model fitted by model.Fit or one whose
// coefficients were set by hand.
//
// Simulate runs one Metropolis–Hastings chain (mcmc package): a
// burn-in from the start graph, then N retained samples spaced by a
// configurable number of inter-sample steps to reduce autocorrelation.
// The result is a pure function of (model, vertex count, start graph,
// seed, burn-in, interval, N): identical inputs reproduce the
// identical SampleSet, graph for graph.
//
// Replicates fans out r independent chains concurrently, one goroutine
// each, with per-replicate seeds derived as seed+0, seed+1, …. Chains
// share nothing mutable: each clones the start graph and copies the
// term list, so the fan-out is embarrassingly parallel by
// construction. Replicate k of an r-replicate run is the same as a
// single Simulate at seed+k.
//
// Models with covariate terms need a start graph carrying the columns:
// pass one via WithStart. The default start is the empty graph, which
// has no covariates, so such models fail the bind with
// terms.ErrUnknownAttr — by design, rather than simulating from
// half-defined statistics.
//
// Errors:
//
//	model.ErrModelNil  - nil model.
//	model.ErrNoCoef    - model has no coefficients to simulate from.
//	ErrBadOrder        - vertex count < 1.
//	ErrOptionViolation - invalid option value.
//	core.ErrOrderMismatch - WithStart graph order differs from n.
package simulate
