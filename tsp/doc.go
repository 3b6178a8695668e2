// Package tsp provides Travelling Salesman Problem solvers over a metric.Metric.
//
// It includes:
//
//   - Approx: nearest-neighbour construction from vertex 0 followed by exactly
//     one forward 2-opt sweep (first improvement, not iterated to a local
//     optimum). O(n²). The result is an upper bound only.
//   - BranchAndBound: exact depth-first search over permutations with vertex 0
//     fixed, seeded with Approx. It prunes with an admissible bound: the prefix
//     cost plus MST(unplaced) plus the cheapest arm from the unplaced set to
//     vertex 0 plus the cheapest arm to the last placed vertex. The bound is
//     skipped when at most Options.BoundCutoff vertices are left. Exponential
//     in the worst case; recursion depth equals n.
//   - HeldKarp: O(n²·2ⁿ) dynamic programming, an independent exact solver used
//     for cross-checking and for dense small instances (n ≤ MaxHeldKarpN).
//
// Tours are open permutations starting at 0; the closing edge is implied and
// always included in Cost. A distance of math.Inf(1) signals a forbidden edge.
//
// All solvers are single-threaded and synchronous. The metric is only read, and
// the branch-and-bound search state is owned by one call.
package tsp
