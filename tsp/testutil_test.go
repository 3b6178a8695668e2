// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package: deterministic point generators and a brute-force oracle.
package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/dronepath/geometry"
	"github.com/katalvlaran/dronepath/metric"
	"github.com/katalvlaran/dronepath/tsp"
)

const (
	// epsCost is the tolerance for comparing tour lengths summed in different orders.
	epsCost = 1e-9
)

// unitSquare returns the four corners of the unit square.
func unitSquare() geometry.PointSet {
	return geometry.FromCoords([][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}})
}

// randomPointSet builds n points with coordinates in [-span, span] using a fixed seed.
func randomPointSet(seed uint64, n, span int) geometry.PointSet {
	r := rand.New(rand.NewSource(seed))
	coords := make([][2]int, n)
	for i := range coords {
		coords[i] = [2]int{r.Intn(2*span+1) - span, r.Intn(2*span+1) - span}
	}

	return geometry.FromCoords(coords)
}

// permute calls fn with every permutation of a (in place, Heap-style recursion).
func permute(a []int, k int, fn func([]int)) {
	if k == len(a) {
		fn(a)
		return
	}
	for i := k; i < len(a); i++ {
		a[k], a[i] = a[i], a[k]
		permute(a, k+1, fn)
		a[k], a[i] = a[i], a[k]
	}
}

// bruteForce returns the minimum cyclic length over all tours with 0 fixed first.
func bruteForce(m metric.Metric) float64 {
	n := m.Len()
	if n <= 1 {
		return 0
	}
	tour := make([]int, n)
	for i := range tour {
		tour[i] = i
	}
	best := math.Inf(1)
	permute(tour, 1, func(t []int) {
		if c := tsp.TourCost(m, t); c < best {
			best = c
		}
	})

	return best
}

// bestCompletion returns the minimum cost of closing a partial path: the fixed
// prefix cost plus every ordering of the remaining vertices and the closing edge.
func bestCompletion(m metric.Metric, path []int, permLength int, prefixCost float64) float64 {
	rest := append([]int(nil), path[permLength:]...)
	last := path[permLength-1]
	best := math.Inf(1)
	permute(rest, 0, func(r []int) {
		c := prefixCost + m.Distance(last, r[0])
		for i := 0; i+1 < len(r); i++ {
			c += m.Distance(r[i], r[i+1])
		}
		c += m.Distance(r[len(r)-1], path[0])
		if c < best {
			best = c
		}
	})

	return best
}

// requireValidResult checks tour shape and that Cost matches the tour.
func requireValidResult(t *testing.T, m metric.Metric, res tsp.TSResult) {
	t.Helper()
	require.NoError(t, tsp.ValidateTour(res.Tour, m.Len()))
	require.InDelta(t, tsp.TourCost(m, res.Tour), res.Cost, epsCost)
}
