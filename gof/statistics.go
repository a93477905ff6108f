// Package gof: the built-in structural statistics.
package gof

import (
	"strconv"

	"github.com/katalvlaran/ergm/core"
)

// DegreeDist is the degree distribution: bucket k counts the vertices
// of degree k, for k = 0..n-1.
type DegreeDist struct{}

func (DegreeDist) Name() string { return "degree" }

func (DegreeDist) Buckets(n int) []string { return intLabels(0, n-1, false) }

func (DegreeDist) Values(g *core.Graph) []float64 {
	n := g.N()
	out := make([]float64, n)
	for v := 0; v < n; v++ {
		d, _ := g.Degree(v) // v in range by construction
		out[d]++
	}

	return out
}

// ESPDist is the edgewise shared-partner distribution: bucket k counts
// the ties whose endpoints have exactly k shared partners, for
// k = 0..n-2.
type ESPDist struct{}

func (ESPDist) Name() string { return "edgewise shared partners" }

func (ESPDist) Buckets(n int) []string { return intLabels(0, n-2, false) }

func (ESPDist) Values(g *core.Graph) []float64 {
	n := g.N()
	out := make([]float64, n-1)
	for _, d := range g.Edges() {
		sp, _ := g.SharedPartners(d.I, d.J) // valid dyad from Edges
		out[sp]++
	}

	return out
}

// GeodesicDist is the minimum geodesic distance distribution: bucket d
// counts the dyads at shortest-path distance d, for d = 1..n-1, with a
// final "Inf" bucket for unreachable pairs. Disconnected graphs are
// ordinary inputs.
type GeodesicDist struct{}

func (GeodesicDist) Name() string { return "minimum geodesic distance" }

func (GeodesicDist) Buckets(n int) []string { return intLabels(1, n-1, true) }

func (GeodesicDist) Values(g *core.Graph) []float64 {
	n := g.N()
	out := make([]float64, n) // distances 1..n-1 plus Inf
	dist := make([]int, n)
	queue := make([]int, 0, n)
	for src := 0; src < n; src++ {
		// BFS from src; count only targets > src so each dyad counts once
		for v := range dist {
			dist[v] = -1
		}
		dist[src] = 0
		queue = append(queue[:0], src)
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for v := 0; v < n; v++ {
				if dist[v] < 0 && g.Has(cur, v) {
					dist[v] = dist[cur] + 1
					queue = append(queue, v)
				}
			}
		}
		for v := src + 1; v < n; v++ {
			if dist[v] < 0 {
				out[n-1]++ // unreachable: the Inf bucket
			} else {
				out[dist[v]-1]++
			}
		}
	}

	return out
}

// intLabels renders labels lo..hi, optionally appending "Inf".
func intLabels(lo, hi int, inf bool) []string {
	out := make([]string, 0, hi-lo+2)
	for k := lo; k <= hi; k++ {
		out = append(out, strconv.Itoa(k))
	}
	if inf {
		out = append(out, "Inf")
	}

	return out
}
