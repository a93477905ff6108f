// Package simulate: options, errors, and the SampleSet result type.
package simulate

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ergm/core"
)

// Sentinel errors for simulation.
var (
	// ErrBadOrder is returned for a vertex count < 2: a single vertex
	// has no dyads, so there is no graph distribution to sample.
	ErrBadOrder = errors.New("simulate: vertex count must be >= 2")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("simulate: invalid option supplied")

	// ErrBadReplicates is returned for a replicate count < 1.
	ErrBadReplicates = errors.New("simulate: replicate count must be >= 1")
)

// Default simulation parameters.
const (
	// DefaultSamples is the number of graphs per SampleSet.
	DefaultSamples = 100

	// DefaultBurnIn is the number of chain steps before the first sample.
	DefaultBurnIn = 10_000

	// DefaultInterval is the number of chain steps between samples.
	DefaultInterval = 1024

	// DefaultSeed seeds the chain.
	DefaultSeed = 1
)

// Options holds simulation parameters. Construct with DefaultOptions
// and adjust via Option values.
type Options struct {
	Samples  int
	BurnIn   int
	Interval int
	Seed     int64
	Start    *core.Graph // nil: empty graph on n vertices

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Samples:  DefaultSamples,
		BurnIn:   DefaultBurnIn,
		Interval: DefaultInterval,
		Seed:     DefaultSeed,
	}
}

// Option configures simulation via functional arguments. Invalid
// values are recorded and surfaced as ErrOptionViolation when
// Simulate is invoked.
type Option func(*Options)

// WithSamples sets the number of retained graphs (>= 1).
func WithSamples(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Samples must be >= 1 (%d)", ErrOptionViolation, n)

			return
		}
		o.Samples = n
	}
}

// WithBurnIn sets the steps before the first sample (>= 0).
func WithBurnIn(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: BurnIn cannot be negative (%d)", ErrOptionViolation, k)

			return
		}
		o.BurnIn = k
	}
}

// WithInterval sets the steps between samples (>= 1).
func WithInterval(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: Interval must be >= 1 (%d)", ErrOptionViolation, k)

			return
		}
		o.Interval = k
	}
}

// WithSeed seeds the chain.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithStart sets the chain's start graph (cloned inside the chain).
// Required for models with covariate terms: the start graph carries
// the columns. Its order must equal the requested vertex count.
func WithStart(g *core.Graph) Option {
	return func(o *Options) { o.Start = g }
}

// SampleSet is an ordered sequence of simulated graphs plus the
// parameters that produced it. It is owned by the caller and
// independent of the model after creation.
type SampleSet struct {
	// Graphs are the retained samples, in chain order.
	Graphs []*core.Graph

	// Coef is the coefficient vector the samples were drawn at.
	Coef []float64

	// Seed is the chain seed, recorded for reproducibility.
	Seed int64
}

// Len reports the number of samples.
func (s *SampleSet) Len() int { return len(s.Graphs) }
