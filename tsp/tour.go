// Package tsp - tour utilities shared by exact/heuristic solvers.
//
// Provided helpers:
//   - ValidateTour: permutation of {0..n-1} starting at 0.
//   - TourCost: cyclic length under a metric.
//   - CopyTour: independent copy.
//   - CanonicalizeOrientationInPlace: unique direction for a fixed start.
//   - reverseInPlace: segment reversal (2-opt core).
package tsp

import "github.com/katalvlaran/dronepath/metric"

// ValidateTour checks that tour is a permutation of {0..n-1} with tour[0] == 0.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int) error {
	if n <= 0 || len(tour) != n {
		return ErrInvalidTour
	}
	if tour[0] != 0 {
		return ErrInvalidTour
	}
	seen := make([]bool, n)
	for _, v := range tour {
		if v < 0 || v >= n || seen[v] {
			return ErrInvalidTour
		}
		seen[v] = true
	}

	return nil
}

// TourCost returns the sum of consecutive edges plus the closing edge
// back to tour[0]. Empty and single-vertex tours cost 0.
//
// Complexity: O(n).
func TourCost[M metric.Metric](m M, tour []int) float64 {
	if len(tour) < 2 {
		return 0
	}
	var (
		sum  float64
		i    int
		last = len(tour) - 1
	)
	for i = 0; i < last; i++ {
		sum += m.Distance(tour[i], tour[i+1])
	}

	return sum + m.Distance(tour[last], tour[0])
}

// CopyTour returns an independent copy of the input tour slice.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}

// CanonicalizeOrientationInPlace fixes the tour direction under a fixed start.
// If the right neighbour tour[1] is greater than the left neighbour
// tour[n-1], the segment tour[1..n-1] is reversed in place. Both directions
// of one cycle therefore map to the same slice, and the cost is unchanged on
// a symmetric metric. Tours shorter than 3 are left as they are.
//
// Complexity: O(n) time, O(1) space.
func CanonicalizeOrientationInPlace(tour []int) {
	n := len(tour)
	if n < 3 {
		return
	}
	if tour[1] > tour[n-1] {
		reverseInPlace(tour, 1, n-1)
	}
}

// reverseInPlace reverses the inclusive segment tour[i..k].
//
// Complexity: O(k-i) time, O(1) space.
func reverseInPlace(tour []int, i, k int) {
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
}
