// Package gof: the Statistic interface, sentinel errors, and the
// percentile report types.
package gof

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/ergm/core"
)

// Sentinel errors for goodness-of-fit evaluation.
var (
	// ErrNilGraph is returned for a nil observed graph.
	ErrNilGraph = errors.New("gof: observed graph is nil")

	// ErrEmptySampleSet is returned for a nil or empty SampleSet.
	ErrEmptySampleSet = errors.New("gof: sample set is nil or empty")

	// ErrNoStatistics is returned when an explicit empty statistic list
	// is supplied.
	ErrNoStatistics = errors.New("gof: at least one statistic is required")
)

// Statistic is one histogram-valued structural summary of a graph.
// Values(g) must return one value per bucket, aligned with Buckets(n)
// for n = g.N(); the length may depend only on n so observed and
// simulated vectors always align.
type Statistic interface {
	// Name identifies the statistic in reports, e.g. "degree".
	Name() string

	// Buckets returns the bucket labels for graphs on n vertices.
	Buckets(n int) []string

	// Values returns the histogram for g, one value per bucket.
	Values(g *core.Graph) []float64
}

// BucketReport is one row of a statistic's percentile table.
type BucketReport struct {
	// Bucket is the label, e.g. "3" or "Inf".
	Bucket string

	// Observed is the statistic's value on the observed graph.
	Observed float64

	// SimMin, SimMean, SimMax summarize the simulated distribution.
	SimMin, SimMean, SimMax float64

	// Percentile is the observed value's mid-rank percentile within
	// the simulated distribution, in [0, 100].
	Percentile float64
}

// StatReport is one statistic's full table.
type StatReport struct {
	// Name is the statistic's name.
	Name string

	// Rows holds one BucketReport per bucket, in bucket order.
	Rows []BucketReport
}

// Report is the outcome of Evaluate: one table per statistic, in the
// order the statistics were supplied.
type Report struct {
	Stats []StatReport
}

// String renders the report as plain text, one table per statistic.
func (r *Report) String() string {
	var b strings.Builder
	for _, st := range r.Stats {
		fmt.Fprintf(&b, "%s\n", st.Name)
		fmt.Fprintf(&b, "  %-6s %10s %10s %10s %10s %6s\n",
			"bucket", "obs", "min", "mean", "max", "pct")
		for _, row := range st.Rows {
			fmt.Fprintf(&b, "  %-6s %10.0f %10.0f %10.2f %10.0f %6.1f\n",
				row.Bucket, row.Observed, row.SimMin, row.SimMean, row.SimMax, row.Percentile)
		}
	}

	return b.String()
}
