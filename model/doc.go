// Package model defines the ERGM Model type and its maximum-likelihood
// estimator.
//
// An exponential random graph model assigns a graph y on a fixed
// vertex set probability
//
//	P(Y = y; θ) = exp(θ·g(y)) / c(θ)
//
// where g(y) is the vector of sufficient statistics (one per term,
// see the terms package) and c(θ) sums exp(θ·g) over all 2^(n(n-1)/2)
// graphs — intractable for any interesting n, which is why fitting
// goes through sampling.
//
// Fit implements MCMC maximum likelihood in the Geyer–Thompson /
// Hunter–Handcock style:
//
//  1. Initialize θ₀ at the maximum pseudolikelihood estimate: logistic
//     regression of each dyad's tie indicator on its change-statistic
//     vector, fitted by iteratively reweighted least squares. For a
//     model of dyad-independent terms this IS the maximum-likelihood
//     estimate (the likelihood factorizes over dyads), so Fit returns
//     it directly with no sampling — in particular the edges-only model
//     fits θ̂ = logit(density) in closed form.
//  2. Otherwise iterate: run the Metropolis–Hastings chain at the
//     current θ (burn-in, then a thinned sample of M graphs); form the
//     sample mean ḡ and covariance of the statistics; take the damped
//     Newton–Raphson step θ ← θ + γ·Cov⁻¹(g(y_obs) − ḡ); stop when the
//     step norm falls below tolerance.
//
// Failure modes are errors, never silent estimates:
//
//   - ErrDegenerateModel — the observed graph is empty or complete (its
//     statistics sit on the boundary of the convex hull, the MLE does
//     not exist), or the chain collapses toward the empty/complete
//     graph during sampling. Dense graphs with shared-partner terms
//     are the classic trigger.
//   - ErrNonConvergence — the iteration cap is reached with the step
//     norm still above tolerance, or the sampled statistics drift
//     monotonically away from the observed vector instead of
//     oscillating around it. The returned FitResult still carries the
//     last θ and the full iteration trace for diagnosis; remediation
//     (simpler terms, different decay, smaller graph) is the caller's
//     decision.
//
// Standard errors come from the inverse of the statistic covariance at
// the final θ (the Fisher information of an exponential family).
//
// Determinism: Fit derives all randomness from WithSeed; no global
// state. Attach WithOnIteration to watch the trajectory.
package model
