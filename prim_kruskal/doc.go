// Package prim_kruskal computes Minimum Spanning Trees (MST) over an arbitrary subset of
// points under a metric.Metric, with two interchangeable algorithms: Prim’s algorithm
// (primary) and Kruskal’s algorithm (alternate, used to cross-check).
//
// What & Why
//
//   - What is an MST here?
//     The graph is implicit and complete: every pair of subset vertices is joined by an
//     edge weighted by m.Distance(i, j). A weight of +Inf marks a forbidden pair, so the
//     implicit graph can still be disconnected (e.g. Medical and Normal points with no
//     Border point between them under metric.Constrained).
//
//   - Why subsets?
//     The branch-and-bound TSP solver needs the MST of the still-unplaced suffix of its
//     permutation at almost every search node. Prim therefore accepts any index slice,
//     and PrimWeight reuses a Workspace so that call does not allocate.
//
// Algorithms Provided
//
//   - Prim[M](m M, subset []int) (Tree, error): seed subset[0] at distance 0,
//     then k times pick the unvisited vertex with the smallest distance-to-tree
//     by linear scan and relax all others against it. O(k²) time, O(k) space.
//   - PrimWeight[M](m M, subset []int, ws *Workspace) (float64, error): same as
//     Prim, weight only, zero allocations with a warm Workspace.
//   - Kruskal[M](m M, subset []int) (Tree, error): generate all k(k-1)/2 edges,
//     stable-sort by weight and union with a naive representative array (no
//     path compression, no union by rank). O(k² log k) time, O(k²) space.
//     Not performance critical.
//
// Output
//
// Tree.Weight is the total weight. Tree.Edges() lists (min, max) pairs in subset
// order, omitting the root; Kruskal orients its edges from subset[0] so both
// algorithms report trees the same way. Prim and Kruskal always return the same
// Weight; with tied weights their edge sets may differ, and both are valid MSTs.
//
// Error Conditions
//
//   - ErrEmptySubset: no vertices given.
//   - ErrDisconnected: the forbidden-pair rule splits the subset. Fatal for MST
//     mode; the TSP solver treats it as an infinite lower bound and prunes.
//   - ErrUnknownMethod: Compute was asked for a method other than MethodPrim or
//     MethodKruskal.
//
// For examples of usage, see the example_test.go file in this package.
package prim_kruskal
