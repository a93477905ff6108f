// Package model: the MCMC maximum-likelihood estimator.
package model

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/ergm/core"
	"github.com/katalvlaran/ergm/mcmc"
	"github.com/katalvlaran/ergm/terms"
)

// Fit estimates the model's coefficients on the observed graph g by
// MCMC maximum likelihood (see the package documentation for the
// algorithm and the failure policy).
//
// The input model is not mutated; the returned FitResult carries a new
// fitted, immutable Model. On ErrNonConvergence — and on
// ErrDegenerateModel detected during sampling — the FitResult is still
// returned alongside the error with the last coefficients and the full
// iteration trace.
//
// Fit is deterministic given WithSeed. Cancellation via ctx stops the
// chain at an iteration boundary and returns ctx.Err().
func Fit(ctx context.Context, g *core.Graph, m *Model, opts ...FitOption) (*FitResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if m == nil {
		return nil, ErrModelNil
	}
	o := DefaultFitOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	ts := m.Terms()
	if err := terms.Bind(g, ts); err != nil {
		return nil, err
	}

	// An empty or complete observed graph puts g(y_obs) on the boundary
	// of the convex hull of attainable statistics: the MLE does not
	// exist and any sampler collapses immediately.
	if total := core.DyadCount(g.N()); g.EdgeCount() == 0 || g.EdgeCount() == total {
		return nil, fmt.Errorf("%w: observed graph is %s", ErrDegenerateModel, emptyOrComplete(g))
	}

	theta, se, ok := mple(g, ts)
	if !ok {
		return nil, fmt.Errorf("model: pseudolikelihood initializer failed (collinear or separated terms): %w", ErrNonConvergence)
	}

	names := terms.Names(ts)
	if terms.Independent(ts) {
		// the likelihood factorizes over dyads: MPLE is the MLE, exactly
		return &FitResult{
			Names:     names,
			Coef:      theta,
			StdErr:    se,
			Converged: true,
			Model:     newFitted(ts, theta),
		}, nil
	}

	return fitMCMC(ctx, g, ts, names, theta, &o)
}

// fitMCMC runs the sampling loop for dyad-dependent models.
func fitMCMC(ctx context.Context, g *core.Graph, ts []terms.Term, names []string, theta []float64, o *FitOptions) (*FitResult, error) {
	p := len(ts)
	gObs := terms.Stats(g, ts)
	totalDyads := float64(core.DyadCount(g.N()))

	chain, err := mcmc.NewChain(g, ts, theta, rand.New(rand.NewSource(o.Seed)))
	if err != nil {
		return nil, err
	}

	samples := mat.NewDense(o.SampleSize, p, nil)
	col := make([]float64, o.SampleSize)
	mean := make([]float64, p)
	diff := mat.NewVecDense(p, nil)
	step := mat.NewVecDense(p, nil)
	cov := mat.NewSymDense(p, nil)
	var chol mat.Cholesky

	res := &FitResult{Names: names, Coef: theta}
	prevDist := math.Inf(1)
	drift := 0

	for iter := 1; iter <= o.MaxIter; iter++ {
		if err = chain.SetTheta(theta); err != nil {
			return nil, err
		}
		if err = chain.Advance(ctx, o.BurnIn); err != nil {
			return nil, err
		}

		// collect the thinned sample, watching for collapse
		collapsed := 0
		for s := 0; s < o.SampleSize; s++ {
			if err = chain.Advance(ctx, o.Thinning); err != nil {
				return nil, err
			}
			samples.SetRow(s, chain.Stats())
			ec := float64(chain.EdgeCount())
			if ec <= o.DegenerateMargin*totalDyads || ec >= (1-o.DegenerateMargin)*totalDyads {
				collapsed++
			}
		}
		if float64(collapsed) >= o.DegenerateShare*float64(o.SampleSize) {
			return res, fmt.Errorf("%w: %d of %d sampled graphs collapsed to near-empty/complete at iteration %d",
				ErrDegenerateModel, collapsed, o.SampleSize, iter)
		}

		// ḡ and Cov(g) from the sample
		for a := 0; a < p; a++ {
			mat.Col(col, a, samples)
			mean[a] = stat.Mean(col, nil)
		}
		sampleCovariance(cov, samples, mean, o.Ridge)

		for a := 0; a < p; a++ {
			diff.SetVec(a, gObs[a]-mean[a])
		}
		if ok := chol.Factorize(cov); !ok {
			return res, fmt.Errorf("model: statistic covariance not positive definite at iteration %d: %w", iter, ErrNonConvergence)
		}
		if err = chol.SolveVecTo(step, diff); err != nil {
			return res, fmt.Errorf("model: Newton step solve failed at iteration %d: %w", iter, ErrNonConvergence)
		}

		// damped update
		for a := 0; a < p; a++ {
			theta[a] += o.Damping * step.AtVec(a)
		}
		stepNorm := o.Damping * mat.Norm(step, 2)
		dist := floats.Distance(gObs, mean, 2)

		it := IterationStat{
			Iteration:      iter,
			Theta:          append([]float64(nil), theta...),
			MeanStats:      append([]float64(nil), mean...),
			StepNorm:       stepNorm,
			StatDistance:   dist,
			AcceptanceRate: chain.AcceptanceRate(),
		}
		res.Trace = append(res.Trace, it)
		res.Iterations = iter
		if o.OnIteration != nil {
			o.OnIteration(it)
		}

		// monotone drift away from the observed statistics is the
		// known dense-graph failure mode: report, do not grind on.
		if dist > prevDist {
			drift++
		} else {
			drift = 0
		}
		prevDist = dist
		if drift >= o.DriftWindow {
			return res, fmt.Errorf("%w: sampled statistics drifted away from observed for %d consecutive iterations",
				ErrNonConvergence, drift)
		}

		if stepNorm < o.Tolerance {
			res.Converged = true

			break
		}
	}

	// standard errors from the exponential family's Fisher information:
	// the statistic covariance at the final θ (last iteration's sample)
	var inv mat.SymDense
	if err = chol.InverseTo(&inv); err != nil {
		return res, fmt.Errorf("model: standard-error computation failed: %w", ErrNonConvergence)
	}
	res.StdErr = make([]float64, p)
	for a := 0; a < p; a++ {
		res.StdErr[a] = math.Sqrt(inv.At(a, a))
	}

	if !res.Converged {
		return res, fmt.Errorf("%w: step norm %.3g above tolerance %.3g after %d iterations",
			ErrNonConvergence, res.Trace[len(res.Trace)-1].StepNorm, o.Tolerance, res.Iterations)
	}
	res.Model = newFitted(ts, theta)

	return res, nil
}

// sampleCovariance fills dst with the sample covariance of the rows of
// samples around the supplied column means, plus ridge on the diagonal.
func sampleCovariance(dst *mat.SymDense, samples *mat.Dense, mean []float64, ridge float64) {
	rows, p := samples.Dims()
	denom := float64(rows - 1)
	for a := 0; a < p; a++ {
		for b := a; b < p; b++ {
			acc := 0.0
			for s := 0; s < rows; s++ {
				acc += (samples.At(s, a) - mean[a]) * (samples.At(s, b) - mean[b])
			}
			v := acc / denom
			if a == b {
				v += ridge
			}
			dst.SetSym(a, b, v)
		}
	}
}

// emptyOrComplete names the boundary case for the degeneracy message.
func emptyOrComplete(g *core.Graph) string {
	if g.EdgeCount() == 0 {
		return "empty"
	}

	return "complete"
}
