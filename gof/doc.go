// Package gof judges a fitted (or hand-parameterized) ERGM by
// comparing distributions of structural statistics between the
// observed graph and a SampleSet simulated from the model — the
// standard graphical goodness-of-fit check, rendered as numbers
// instead of boxplots.
//
// Three statistics ship with the package, one histogram each:
//
//   - DegreeDist    — vertices per degree 0..n-1.
//   - ESPDist       — ties per edgewise-shared-partner count 0..n-2.
//   - GeodesicDist  — dyads per minimum geodesic distance 1..n-1, with
//     unreachable pairs counted in a final "Inf" bucket. Disconnected
//     graphs are ordinary inputs here, not errors: unreachable is just
//     a bucket.
//
// For each histogram bucket, Evaluate reports the observed value, the
// simulated min/mean/max, and the observed value's mid-rank percentile
// within the simulated distribution:
//
//	percentile = 100 · (#{sim < obs} + ½·#{sim = obs}) / #sims
//
// always in [0, 100]. A well-fitting model keeps the observed value
// inside the simulated spread — percentiles near 0 or 100 flag the
// buckets where the model misses. When the SampleSet consists of
// copies of the observed graph itself, every percentile is exactly 50
// (the calibration identity the tests pin down).
//
// Custom statistics plug in through the Statistic interface.
package gof
