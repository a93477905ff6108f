// Package ergm is your in-memory playground for fitting, simulating and
// judging Exponential Random Graph Models — from graph primitives to the
// MCMC-MLE estimation core.
//
// 🚀 What is ergm?
//
//	A compact, deterministic library that brings together:
//		• Core primitives: a fixed-vertex-set simple graph with O(1) dyad toggles
//		• Model terms: edges, absolute covariate difference, covariate match, GWESP
//		• Sampling: a Metropolis–Hastings chain over graph space
//		• Estimation: MCMC maximum likelihood with a damped Newton–Raphson update
//		• Simulation: seeded, reproducible graph draws from a fitted model
//		• Goodness-of-fit: degree, shared-partner and geodesic distributions
//
// ✨ Why choose ergm?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – every chain takes an explicit random stream, no globals
//   - Honest failure modes – degenerate and non-convergent fits are errors,
//     never silently accepted estimates
//   - Extensible – custom Term implementations and OnIteration hooks
//
// Under the hood, everything is organized under small subpackages:
//
//	core/     — fundamental Graph, Dyad and vertex-covariate primitives
//	terms/    — sufficient statistics and their incremental change statistics
//	mcmc/     — the Metropolis–Hastings chain shared by fitting and simulation
//	model/    — Model, MCMC-MLE Fit, standard errors, diagnostics
//	simulate/ — SampleSet generation, independent concurrent replicates
//	gof/      — goodness-of-fit percentile reports
//	matrix/   — adjacency-matrix and covariate-table ingestion
//
// Quick ASCII example:
//
//	    0───1
//	    │ ╲ │
//	    2───3
//
//	a four-vertex graph with five of six possible ties; the edges-only
//	model fits θ̂ = logit(5/6) in closed form.
//
// Dive into the package docs for full examples: start with model.Fit and
// simulate.Simulate, then judge the result with gof.Evaluate.
//
//	go get github.com/katalvlaran/ergm
package ergm
