// Package gof: the Evaluate entry point.
package gof

import (
	"fmt"

	"github.com/katalvlaran/ergm/core"
	"github.com/katalvlaran/ergm/simulate"
)

// Evaluate compares obs against the simulated set on each statistic
// and returns the percentile report. With no statistics supplied, the
// three built-ins run (degree, edgewise shared partners, geodesic
// distance).
//
// Returns ErrNilGraph, ErrEmptySampleSet, or core.ErrOrderMismatch
// when any simulated graph's vertex set differs from the observed
// graph's — observed and simulated graphs must share one vertex set.
func Evaluate(obs *core.Graph, set *simulate.SampleSet, stats ...Statistic) (*Report, error) {
	if obs == nil {
		return nil, ErrNilGraph
	}
	if set == nil || set.Len() == 0 {
		return nil, ErrEmptySampleSet
	}
	for k, g := range set.Graphs {
		if err := core.SameOrder(obs, g); err != nil {
			return nil, fmt.Errorf("gof: sample %d: %w", k, err)
		}
	}
	if stats == nil {
		stats = []Statistic{DegreeDist{}, ESPDist{}, GeodesicDist{}}
	}
	if len(stats) == 0 {
		return nil, ErrNoStatistics
	}

	rep := &Report{Stats: make([]StatReport, 0, len(stats))}
	for _, st := range stats {
		rep.Stats = append(rep.Stats, evaluateOne(obs, set, st))
	}

	return rep, nil
}

// evaluateOne builds one statistic's table.
func evaluateOne(obs *core.Graph, set *simulate.SampleSet, st Statistic) StatReport {
	observed := st.Values(obs)
	buckets := st.Buckets(obs.N())

	sims := make([][]float64, set.Len())
	for s, g := range set.Graphs {
		sims[s] = st.Values(g)
	}

	rows := make([]BucketReport, len(buckets))
	for b := range buckets {
		row := BucketReport{Bucket: buckets[b], Observed: observed[b]}
		below, equal := 0, 0
		minV, maxV, sum := sims[0][b], sims[0][b], 0.0
		for s := range sims {
			v := sims[s][b]
			sum += v
			if v < minV {
				minV = v
			}
			if v > maxV {
				maxV = v
			}
			switch {
			case v < row.Observed:
				below++
			case v == row.Observed:
				equal++
			}
		}
		row.SimMin = minV
		row.SimMax = maxV
		row.SimMean = sum / float64(len(sims))
		// mid-rank percentile: ties count half, keeping the result
		// centered at 50 when simulated and observed coincide
		row.Percentile = 100 * (float64(below) + 0.5*float64(equal)) / float64(len(sims))
		rows[b] = row
	}

	return StatReport{Name: st.Name(), Rows: rows}
}
