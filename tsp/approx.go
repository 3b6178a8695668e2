package tsp

import (
	"math"

	"github.com/katalvlaran/dronepath/metric"
)

// NearestNeighbor builds a tour greedily: start at 0 and repeatedly append
// the closest unvisited vertex. Ties go to the lowest index. If every
// unvisited vertex is at +Inf, the lowest unvisited index is taken so the
// result is always a full permutation.
//
// Complexity: O(n²) time, O(n) space.
func NearestNeighbor[M metric.Metric](m M) []int {
	n := m.Len()
	if n == 0 {
		return nil
	}
	var (
		visited = make([]bool, n)
		tour    = make([]int, 1, n)
		cur     int
		step, j int
		minIdx  int
		minD    float64
		d       float64
	)
	visited[0] = true
	for step = 1; step < n; step++ {
		minIdx = -1
		minD = math.Inf(1)
		for j = 0; j < n; j++ {
			if visited[j] {
				continue
			}
			if minIdx < 0 {
				minIdx = j
			}
			d = m.Distance(cur, j)
			if d < minD {
				minIdx = j
				minD = d
			}
		}
		visited[minIdx] = true
		tour = append(tour, minIdx)
		cur = minIdx
	}

	return tour
}

// Approx computes the heuristic tour: NearestNeighbor followed by one
// TwoOptSweep. The cost includes the closing edge back to vertex 0.
//
// Errors: ErrEmptyInstance if m has no vertices.
//
// Complexity: O(n²).
func Approx[M metric.Metric](m M) (TSResult, error) {
	if m.Len() == 0 {
		return TSResult{}, ErrEmptyInstance
	}
	tour := NearestNeighbor(m)
	TwoOptSweep(m, tour)

	return TSResult{Tour: tour, Cost: TourCost(m, tour)}, nil
}
