// Package model: sentinel errors, fit options, and result types.
package model

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for model construction and fitting.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("model: graph is nil")

	// ErrModelNil is returned if a nil model pointer is passed.
	ErrModelNil = errors.New("model: model is nil")

	// ErrTermMismatch is returned when a coefficient vector's length
	// differs from the model's term count.
	ErrTermMismatch = errors.New("model: coefficient length differs from term count")

	// ErrImmutable is returned on an attempt to set coefficients on a
	// fitted model.
	ErrImmutable = errors.New("model: fitted model is immutable")

	// ErrNoCoef is returned when an operation requires coefficients and
	// the model has none.
	ErrNoCoef = errors.New("model: model has no coefficients")

	// ErrOptionViolation is returned when an invalid FitOption is supplied.
	ErrOptionViolation = errors.New("model: invalid option supplied")

	// ErrNonConvergence is returned when the estimator's step norm does
	// not fall below tolerance within the iteration cap, or when the
	// sampled statistics drift monotonically away from the observed
	// vector. The accompanying FitResult carries the last θ and trace.
	ErrNonConvergence = errors.New("model: estimator did not converge")

	// ErrDegenerateModel is returned when the model concentrates on the
	// empty or complete graph: either the observed graph sits there
	// already, or the sampler collapses toward one during fitting.
	ErrDegenerateModel = errors.New("model: degenerate model")
)

// Default fit parameters. Sized for teaching-scale networks
// (tens to low hundreds of vertices).
const (
	// DefaultSampleSize is the number of retained graphs per iteration.
	DefaultSampleSize = 1024

	// DefaultBurnIn is the number of chain steps discarded after each
	// coefficient update.
	DefaultBurnIn = 10_000

	// DefaultThinning is the number of chain steps between retained
	// samples.
	DefaultThinning = 64

	// DefaultMaxIter caps the Newton–Raphson iterations.
	DefaultMaxIter = 30

	// DefaultTolerance is the step-norm convergence threshold.
	DefaultTolerance = 1e-3

	// DefaultDamping scales each Newton step (shrinkage against
	// overshoot on a noisy sampled surface).
	DefaultDamping = 0.5

	// DefaultRidge is added to the statistic covariance diagonal before
	// solving, keeping the step defined under near-collinear terms.
	DefaultRidge = 1e-6

	// DefaultDegenerateMargin: a sampled graph within this fraction of
	// the dyad universe from empty or complete counts as collapsed.
	DefaultDegenerateMargin = 0.02

	// DefaultDegenerateShare: the fraction of one iteration's samples
	// that must be collapsed before the fit aborts as degenerate.
	DefaultDegenerateShare = 0.9

	// DefaultDriftWindow: consecutive iterations of strictly growing
	// distance ‖g(y_obs) − ḡ‖ before the fit aborts as non-convergent.
	DefaultDriftWindow = 3

	// DefaultSeed seeds the estimator's chain.
	DefaultSeed = 1
)

// IterationStat is one row of the estimator's diagnostic trace.
type IterationStat struct {
	// Iteration counts from 1.
	Iteration int

	// Theta is the coefficient vector AFTER this iteration's step.
	Theta []float64

	// MeanStats is the sample mean of the sufficient statistics drawn
	// at the pre-step coefficients.
	MeanStats []float64

	// StepNorm is the Euclidean norm of the damped Newton step.
	StepNorm float64

	// StatDistance is ‖g(y_obs) − ḡ‖₂, the calibration gap.
	StatDistance float64

	// AcceptanceRate is the chain's cumulative acceptance rate.
	AcceptanceRate float64
}

// FitOptions holds estimator parameters. Construct with
// DefaultFitOptions and adjust via FitOption values.
type FitOptions struct {
	SampleSize       int
	BurnIn           int
	Thinning         int
	MaxIter          int
	Tolerance        float64
	Damping          float64
	Ridge            float64
	DegenerateMargin float64
	DegenerateShare  float64
	DriftWindow      int
	Seed             int64

	// OnIteration, when non-nil, observes each IterationStat as it is
	// produced. The hook must not retain the slices past the call.
	OnIteration func(IterationStat)

	// internal error recorded during option parsing
	err error
}

// DefaultFitOptions returns the documented defaults.
func DefaultFitOptions() FitOptions {
	return FitOptions{
		SampleSize:       DefaultSampleSize,
		BurnIn:           DefaultBurnIn,
		Thinning:         DefaultThinning,
		MaxIter:          DefaultMaxIter,
		Tolerance:        DefaultTolerance,
		Damping:          DefaultDamping,
		Ridge:            DefaultRidge,
		DegenerateMargin: DefaultDegenerateMargin,
		DegenerateShare:  DefaultDegenerateShare,
		DriftWindow:      DefaultDriftWindow,
		Seed:             DefaultSeed,
	}
}

// FitOption configures Fit via functional arguments. Invalid values
// are recorded and surfaced as ErrOptionViolation when Fit is invoked.
type FitOption func(*FitOptions)

// WithSampleSize sets the retained samples per iteration (M >= 2).
func WithSampleSize(m int) FitOption {
	return func(o *FitOptions) {
		if m < 2 {
			o.err = fmt.Errorf("%w: SampleSize must be >= 2 (%d)", ErrOptionViolation, m)

			return
		}
		o.SampleSize = m
	}
}

// WithBurnIn sets the discarded steps after each coefficient update (>= 0).
func WithBurnIn(k int) FitOption {
	return func(o *FitOptions) {
		if k < 0 {
			o.err = fmt.Errorf("%w: BurnIn cannot be negative (%d)", ErrOptionViolation, k)

			return
		}
		o.BurnIn = k
	}
}

// WithThinning sets the steps between retained samples (>= 1).
func WithThinning(k int) FitOption {
	return func(o *FitOptions) {
		if k < 1 {
			o.err = fmt.Errorf("%w: Thinning must be >= 1 (%d)", ErrOptionViolation, k)

			return
		}
		o.Thinning = k
	}
}

// WithMaxIter caps the Newton–Raphson iterations (>= 1).
func WithMaxIter(k int) FitOption {
	return func(o *FitOptions) {
		if k < 1 {
			o.err = fmt.Errorf("%w: MaxIter must be >= 1 (%d)", ErrOptionViolation, k)

			return
		}
		o.MaxIter = k
	}
}

// WithTolerance sets the step-norm convergence threshold (> 0).
func WithTolerance(tol float64) FitOption {
	return func(o *FitOptions) {
		if tol <= 0 {
			o.err = fmt.Errorf("%w: Tolerance must be > 0 (%g)", ErrOptionViolation, tol)

			return
		}
		o.Tolerance = tol
	}
}

// WithDamping sets the Newton-step shrinkage factor, in (0, 1].
func WithDamping(gamma float64) FitOption {
	return func(o *FitOptions) {
		if gamma <= 0 || gamma > 1 {
			o.err = fmt.Errorf("%w: Damping must lie in (0, 1] (%g)", ErrOptionViolation, gamma)

			return
		}
		o.Damping = gamma
	}
}

// WithSeed seeds the estimator's chain.
func WithSeed(seed int64) FitOption {
	return func(o *FitOptions) { o.Seed = seed }
}

// WithOnIteration registers a diagnostic hook invoked per iteration.
func WithOnIteration(fn func(IterationStat)) FitOption {
	return func(o *FitOptions) {
		if fn != nil {
			o.OnIteration = fn
		}
	}
}

// FitResult is the outcome of Fit. On ErrNonConvergence and sampling-
// phase ErrDegenerateModel the result is still returned alongside the
// error, carrying the last coefficients and the trace for diagnosis.
type FitResult struct {
	// Names are the term names, aligned with Coef and StdErr.
	Names []string

	// Coef is the estimated (or last attempted) coefficient vector.
	Coef []float64

	// StdErr holds the estimated standard errors, aligned with Coef.
	StdErr []float64

	// Iterations is the number of Newton–Raphson iterations performed
	// (0 for dyad-independent models, which fit in closed form).
	Iterations int

	// Converged reports whether the step norm fell below tolerance.
	Converged bool

	// Trace is the per-iteration diagnostic record (nil for
	// dyad-independent fits).
	Trace []IterationStat

	// Model is the fitted, immutable model: the input terms with Coef
	// attached. Nil when fitting aborted before producing an estimate.
	Model *Model
}

// Summary renders a plain-text coefficient table.
func (r *FitResult) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-20s %12s %12s\n", "term", "estimate", "std.err")
	for k, name := range r.Names {
		fmt.Fprintf(&b, "%-20s %12.4f %12.4f\n", name, r.Coef[k], r.StdErr[k])
	}
	fmt.Fprintf(&b, "converged: %v after %d iterations\n", r.Converged, r.Iterations)

	return b.String()
}
