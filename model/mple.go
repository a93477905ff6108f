// Package model: maximum pseudolikelihood estimation, the θ₀ initializer.
package model

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ergm/core"
	"github.com/katalvlaran/ergm/terms"
)

// IRLS internals.
const (
	mpleMaxIter   = 50
	mpleTolerance = 1e-12
	mpleWeightEps = 1e-10 // floor on μ(1−μ) to keep the solve defined
)

// mple fits the logistic regression of each dyad's tie indicator on
// its change-statistic vector by iteratively reweighted least squares:
//
//	y_d  = 1{dyad d tied},  x_d = Δg(y, d)
//	maximize Σ_d [ y_d·x_d·β − log(1 + exp(x_d·β)) ]
//
// For dyad-independent models this is the exact log-likelihood of the
// ERGM, so the return value is the MLE; otherwise it is the standard
// MCMC-MLE starting point. Returns (θ, standard errors, ok); ok is
// false when the weighted normal equations are not positive definite
// (collinear terms or separation).
func mple(g *core.Graph, ts []terms.Term) ([]float64, []float64, bool) {
	n := g.N()
	p := len(ts)
	dyads := core.AllDyads(n)

	// design matrix and response, built once
	x := make([][]float64, len(dyads))
	y := make([]float64, len(dyads))
	row := make([]float64, p)
	for d, dy := range dyads {
		terms.Changes(g, dy.I, dy.J, ts, row)
		x[d] = append([]float64(nil), row...)
		if g.Has(dy.I, dy.J) {
			y[d] = 1
		}
	}

	beta := make([]float64, p)
	next := make([]float64, p)
	xtwx := mat.NewSymDense(p, nil)
	xtwz := mat.NewVecDense(p, nil)
	sol := mat.NewVecDense(p, nil)
	var chol mat.Cholesky

	for iter := 0; iter < mpleMaxIter; iter++ {
		xtwx.Zero()
		xtwz.Zero()
		for d := range x {
			eta := floats.Dot(x[d], beta)
			mu := 1 / (1 + math.Exp(-eta))
			w := mu * (1 - mu)
			if w < mpleWeightEps {
				w = mpleWeightEps
			}
			z := eta + (y[d]-mu)/w
			for a := 0; a < p; a++ {
				for b := a; b < p; b++ {
					xtwx.SetSym(a, b, xtwx.At(a, b)+w*x[d][a]*x[d][b])
				}
				xtwz.SetVec(a, xtwz.AtVec(a)+w*z*x[d][a])
			}
		}
		if ok := chol.Factorize(xtwx); !ok {
			return beta, nil, false
		}
		if err := chol.SolveVecTo(sol, xtwz); err != nil {
			return beta, nil, false
		}
		for a := 0; a < p; a++ {
			next[a] = sol.AtVec(a)
		}
		if !allFinite(next) {
			return beta, nil, false
		}
		delta := floats.Distance(beta, next, 2)
		copy(beta, next)
		if delta < mpleTolerance {
			break
		}
	}

	// standard errors: sqrt of the inverse information diagonal
	var inv mat.SymDense
	if err := chol.InverseTo(&inv); err != nil {
		return beta, nil, false
	}
	se := make([]float64, p)
	for a := 0; a < p; a++ {
		se[a] = math.Sqrt(inv.At(a, a))
	}
	if !allFinite(se) {
		return beta, nil, false
	}

	return beta, se, true
}

// allFinite reports whether every entry is neither NaN nor ±Inf.
func allFinite(v []float64) bool {
	for _, f := range v {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}

	return true
}
