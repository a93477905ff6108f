package simulate_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/ergm/core"
	"github.com/katalvlaran/ergm/model"
	"github.com/katalvlaran/ergm/simulate"
	"github.com/katalvlaran/ergm/terms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// edgesModel returns an edges-only model at coefficient theta.
func edgesModel(t *testing.T, theta float64) *model.Model {
	t.Helper()
	m, err := model.New(terms.Edges())
	require.NoError(t, err)
	require.NoError(t, m.SetCoef([]float64{theta}))

	return m
}

// TestSimulate_Validation covers the argument and option error surface.
func TestSimulate_Validation(t *testing.T) {
	ctx := context.Background()

	_, err := simulate.Simulate(ctx, nil, 10)
	assert.ErrorIs(t, err, model.ErrModelNil)

	noCoef, err := model.New(terms.Edges())
	require.NoError(t, err)
	_, err = simulate.Simulate(ctx, noCoef, 10)
	assert.ErrorIs(t, err, model.ErrNoCoef)

	m := edgesModel(t, 0)
	_, err = simulate.Simulate(ctx, m, 0)
	assert.ErrorIs(t, err, simulate.ErrBadOrder)

	// a single vertex has no dyads to propose
	_, err = simulate.Simulate(ctx, m, 1, simulate.WithSamples(1), simulate.WithBurnIn(10))
	assert.ErrorIs(t, err, simulate.ErrBadOrder)

	_, err = simulate.Simulate(ctx, m, 10, simulate.WithSamples(0))
	assert.ErrorIs(t, err, simulate.ErrOptionViolation)

	_, err = simulate.Simulate(ctx, m, 10, simulate.WithInterval(0))
	assert.ErrorIs(t, err, simulate.ErrOptionViolation)

	wrongOrder, err := core.NewGraph(9)
	require.NoError(t, err)
	_, err = simulate.Simulate(ctx, m, 10, simulate.WithStart(wrongOrder))
	assert.ErrorIs(t, err, core.ErrOrderMismatch)
}

// TestSimulate_CovariateTermsNeedStart verifies the bind surfaces a
// missing-column error instead of sampling half-defined statistics.
func TestSimulate_CovariateTermsNeedStart(t *testing.T) {
	m, err := model.New(terms.Edges(), terms.AbsDiff("seniority"))
	require.NoError(t, err)
	require.NoError(t, m.SetCoef([]float64{-1, 0.2}))

	_, err = simulate.Simulate(context.Background(), m, 10)
	assert.ErrorIs(t, err, terms.ErrUnknownAttr, "default empty start carries no columns")

	start, err := core.NewGraph(10, core.WithNumeric("seniority", make([]float64, 10)))
	require.NoError(t, err)
	set, err := simulate.Simulate(context.Background(), m, 10,
		simulate.WithStart(start), simulate.WithSamples(3), simulate.WithBurnIn(200), simulate.WithInterval(10))
	require.NoError(t, err)
	assert.Equal(t, 3, set.Len())
}

// TestSimulate_Determinism pins the simulator's contract: identical
// (model, n, seed, burn-in, interval, N) give identical graph sequences.
func TestSimulate_Determinism(t *testing.T) {
	m := edgesModel(t, -0.8)
	opts := []simulate.Option{
		simulate.WithSeed(42), simulate.WithSamples(10),
		simulate.WithBurnIn(1000), simulate.WithInterval(50),
	}

	a, err := simulate.Simulate(context.Background(), m, 12, opts...)
	require.NoError(t, err)
	b, err := simulate.Simulate(context.Background(), m, 12, opts...)
	require.NoError(t, err)

	require.Equal(t, a.Len(), b.Len())
	for k := range a.Graphs {
		assert.Equal(t, a.Graphs[k].Edges(), b.Graphs[k].Edges(), "sample %d must match", k)
	}

	assert.Equal(t, int64(42), a.Seed)
	assert.Equal(t, []float64{-0.8}, a.Coef)
}

// TestSimulate_MeanDensityTracksTheta checks the sampler's stationary
// distribution on the tractable case: the edges-only ERGM is Bernoulli
// with p = logistic(θ), so θ = logit(0.3) must produce ~0.3 density.
func TestSimulate_MeanDensityTracksTheta(t *testing.T) {
	const p = 0.3
	theta := math.Log(p / (1 - p))
	m := edgesModel(t, theta)

	set, err := simulate.Simulate(context.Background(), m, 10,
		simulate.WithSeed(7), simulate.WithSamples(400),
		simulate.WithBurnIn(5000), simulate.WithInterval(100))
	require.NoError(t, err)

	sum := 0.0
	for _, g := range set.Graphs {
		sum += g.Density()
	}
	got := sum / float64(set.Len())
	// 400 samples × 45 dyads: the mean density's standard error is ~0.004
	assert.InDelta(t, p, got, 0.03, "stationary density must track logistic(θ)")
}

// TestSimulate_SampleSetIndependence verifies samples are snapshots,
// not views of the chain state.
func TestSimulate_SampleSetIndependence(t *testing.T) {
	m := edgesModel(t, 0)
	set, err := simulate.Simulate(context.Background(), m, 8,
		simulate.WithSamples(2), simulate.WithBurnIn(100), simulate.WithInterval(100))
	require.NoError(t, err)

	before := set.Graphs[1].Edges()
	_, err = set.Graphs[0].Toggle(0, 1)
	require.NoError(t, err)
	assert.Equal(t, before, set.Graphs[1].Edges(), "samples must not alias each other")
}

// TestSimulate_Cancellation verifies ctx stops the chain.
func TestSimulate_Cancellation(t *testing.T) {
	m := edgesModel(t, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := simulate.Simulate(ctx, m, 10)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestReplicates_MatchesSequentialSeeds pins the concurrency contract:
// replicate k of a concurrent run equals a single run at seed+k.
func TestReplicates_MatchesSequentialSeeds(t *testing.T) {
	m := edgesModel(t, -0.5)
	opts := []simulate.Option{
		simulate.WithSeed(100), simulate.WithSamples(5),
		simulate.WithBurnIn(500), simulate.WithInterval(20),
	}

	sets, err := simulate.Replicates(context.Background(), m, 10, 4, opts...)
	require.NoError(t, err)
	require.Len(t, sets, 4)

	for k, set := range sets {
		single, sErr := simulate.Simulate(context.Background(), m, 10,
			simulate.WithSamples(5), simulate.WithBurnIn(500), simulate.WithInterval(20),
			simulate.WithSeed(100+int64(k)))
		require.NoError(t, sErr)
		for s := range set.Graphs {
			assert.Equal(t, single.Graphs[s].Edges(), set.Graphs[s].Edges(),
				"replicate %d sample %d must match its sequential twin", k, s)
		}
	}
}

// TestReplicates_Validation covers the replicate-count check.
func TestReplicates_Validation(t *testing.T) {
	m := edgesModel(t, 0)
	_, err := simulate.Replicates(context.Background(), m, 10, 0)
	assert.ErrorIs(t, err, simulate.ErrBadReplicates)
}
