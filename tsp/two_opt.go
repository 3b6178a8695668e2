// Package tsp - single-sweep 2-opt improvement.
//
// TwoOptSweep performs exactly one forward pass of first-improvement 2-opt on an
// open tour t (closing edge t[n-1]→t[0] implied):
//
//	for i in [0, n-2):
//	    for j in [i+2, n-1):
//	        old = w(t[i],t[i+1]) + w(t[j],t[j+1])
//	        new = w(t[i],t[j])   + w(t[i+1],t[j+1])
//	        if new < old: reverse t[i+1..j]          (applied immediately)
//	    if i > 0:                                     (wrap-around pair)
//	        old = w(t[i],t[i+1]) + w(t[n-1],t[0])
//	        new = w(t[i],t[n-1]) + w(t[i+1],t[0])
//	        if new < old: reverse t[i+1..n-1]
//
// Contracts:
//   - t[0] never moves (all reversals start at i+1 ≥ 1).
//   - Every applied move strictly shortens the tour, so the sweep never worsens it.
//   - The sweep is not repeated until no move applies; the result is therefore
//     not guaranteed to be 2-opt optimal. Callers only rely on it being a valid
//     upper bound.
//
// Complexity: O(n²) distance queries; O(n) per accepted move.
package tsp

import "github.com/katalvlaran/dronepath/metric"

// TwoOptSweep runs one forward 2-opt pass over tour in place and returns
// the number of accepted moves.
func TwoOptSweep[M metric.Metric](m M, tour []int) int {
	var (
		n        = len(tour)
		i, j     int
		cur, alt float64
		accepted int
	)
	for i = 0; i < n-2; i++ {
		for j = i + 2; j < n-1; j++ {
			cur = m.Distance(tour[i], tour[i+1]) + m.Distance(tour[j], tour[j+1])
			alt = m.Distance(tour[i], tour[j]) + m.Distance(tour[i+1], tour[j+1])
			if alt < cur {
				reverseInPlace(tour, i+1, j)
				accepted++
			}
		}

		if i != 0 {
			j = n - 1
			cur = m.Distance(tour[i], tour[i+1]) + m.Distance(tour[j], tour[0])
			alt = m.Distance(tour[i], tour[j]) + m.Distance(tour[i+1], tour[0])
			if alt < cur {
				reverseInPlace(tour, i+1, j)
				accepted++
			}
		}
	}

	return accepted
}
