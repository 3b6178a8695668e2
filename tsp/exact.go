package tsp

import (
	"math"

	"github.com/katalvlaran/dronepath/metric"
)

// MaxHeldKarpN caps HeldKarp: the tables hold n·2ⁿ entries each.
const MaxHeldKarpN = 16

// HeldKarp solves the TSP exactly with the Held–Karp dynamic‐programming
// algorithm. It shares no code with BranchAndBound, which makes it a useful
// independent oracle.
//
// dp[mask][j] = minimum cost to start at 0, visit exactly the vertices in
// mask (bit 0 always set), and end at j. The tour is closed by returning
// from the best j to 0 and reconstructed through the parent table.
//
// The returned tour is in canonical orientation (Tour[1] < Tour[n-1]).
//
// A +Inf distance is treated as a missing edge. If no finite Hamiltonian
// cycle exists, the result has Cost = +Inf and the nearest-neighbour order.
//
// Errors: ErrEmptyInstance for n == 0, ErrTooLarge for n > MaxHeldKarpN.
//
// Time complexity:  O(n² · 2ⁿ)
// Memory complexity: O(n · 2ⁿ)
func HeldKarp[M metric.Metric](m M) (TSResult, error) {
	n := m.Len()
	if n == 0 {
		return TSResult{}, ErrEmptyInstance
	}
	if n > MaxHeldKarpN {
		return TSResult{}, ErrTooLarge
	}
	if n <= 2 {
		tour := NearestNeighbor(m)
		return TSResult{Tour: tour, Cost: TourCost(m, tour)}, nil
	}

	var (
		full     = 1 << n
		allMask  = full - 1
		inf      = math.Inf(1)
		dp       = make([]float64, full*n) // dp[mask*n+j]
		parent   = make([]int, full*n)
		mask     int
		prevMask int
		j, k     int
		c, cand  float64
	)
	for i := range dp {
		dp[i] = inf
		parent[i] = -1
	}
	// Base case: only vertex 0 visited, standing at 0.
	dp[1*n+0] = 0

	for mask = 1; mask <= allMask; mask += 2 { // odd masks contain vertex 0
		for j = 1; j < n; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			prevMask = mask ^ (1 << j)
			for k = 0; k < n; k++ {
				if prevMask&(1<<k) == 0 || math.IsInf(dp[prevMask*n+k], 1) {
					continue
				}
				c = m.Distance(k, j)
				if math.IsInf(c, 1) {
					continue
				}
				cand = dp[prevMask*n+k] + c
				if cand < dp[mask*n+j] {
					dp[mask*n+j] = cand
					parent[mask*n+j] = k
				}
			}
		}
	}

	// Close the tour by returning to 0.
	bestCost := inf
	last := -1
	for j = 1; j < n; j++ {
		c = m.Distance(j, 0)
		if math.IsInf(c, 1) {
			continue
		}
		if cand = dp[allMask*n+j] + c; cand < bestCost {
			bestCost = cand
			last = j
		}
	}
	if last < 0 {
		tour := NearestNeighbor(m)
		return TSResult{Tour: tour, Cost: inf}, nil
	}

	// Reconstruct from the parent table (back to front).
	tour := make([]int, n)
	mask = allMask
	j = last
	for k = n - 1; k >= 1; k-- {
		tour[k] = j
		p := parent[mask*n+j]
		mask ^= 1 << j
		j = p
	}
	tour[0] = 0
	CanonicalizeOrientationInPlace(tour)

	return TSResult{Tour: tour, Cost: bestCost}, nil
}
