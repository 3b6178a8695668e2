// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It is the alternate path to Prim and exists to cross-check it; it is not used on any hot path.
package prim_kruskal

import (
	"cmp"
	"math"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/dronepath/metric"
)

// candidate is a subset-local edge (a < b) with its weight.
type candidate struct {
	a, b int
	w    float64
}

// Kruskal computes the MST over subset under m.
//
// The union-find is a plain representative array: find chases pointers
// to the root and union hangs one root under the other, with neither path
// compression nor union by rank.
//
// Error Conditions:
//   - ErrEmptySubset  : len(subset) == 0.
//   - ErrDisconnected : a +Inf edge is reached before k-1 edges were accepted.
//
// Steps:
//  1. Generate all k(k-1)/2 subset-local edges.
//  2. Stable-sort them ascending by weight (ties keep generation order).
//  3. Scan: stop with ErrDisconnected at the first +Inf edge; skip edges
//     whose endpoints share a root; otherwise union and accept. Stop once
//     k-1 edges are accepted.
//  4. Orient the accepted edges from subset[0] so the result reports
//     parents exactly like Prim.
//
// Prim and Kruskal always agree on Weight; when weights tie they may pick
// different, equally optimal edge sets.
//
// Complexity: O(k² log k) time, O(k²) memory.
func Kruskal[M metric.Metric](m M, subset []int) (Tree, error) {
	k := len(subset)
	if k == 0 {
		return Tree{}, ErrEmptySubset
	}

	sub := make([]int, k)
	copy(sub, subset)
	if k == 1 {
		return Tree{Subset: sub, Parent: []int{sub[0]}, Weight: 0}, nil
	}

	// 1. Candidate edges.
	edges := make([]candidate, 0, k*(k-1)/2)
	var i, j int
	for i = 0; i < k; i++ {
		for j = i + 1; j < k; j++ {
			edges = append(edges, candidate{a: i, b: j, w: m.Distance(sub[i], sub[j])})
		}
	}

	// 2. Ascending by weight.
	slices.SortStableFunc(edges, func(x, y candidate) int {
		return cmp.Compare(x.w, y.w)
	})

	// 3. Union-find scan.
	rep := make([]int, k)
	for i = range rep {
		rep[i] = i
	}
	find := func(v int) int {
		for rep[v] != v {
			v = rep[v]
		}

		return v
	}

	var (
		total    float64
		accepted int
		adj      = make([][]int, k)
		r1, r2   int
	)
	for _, e := range edges {
		if math.IsInf(e.w, 1) {
			return Tree{}, ErrDisconnected
		}
		r1, r2 = find(e.a), find(e.b)
		if r1 == r2 {
			continue
		}
		rep[r2] = r1
		total += e.w
		adj[e.a] = append(adj[e.a], e.b)
		adj[e.b] = append(adj[e.b], e.a)
		accepted++
		if accepted == k-1 {
			break
		}
	}
	if accepted < k-1 {
		return Tree{}, ErrDisconnected
	}

	// 4. Orient from the first subset vertex (BFS over the tree).
	parent := make([]int, k)
	for i = range parent {
		parent[i] = -1
	}
	parent[0] = sub[0]
	queue := make([]int, 0, k)
	queue = append(queue, 0)
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range adj[u] {
			if parent[v] != -1 {
				continue
			}
			parent[v] = sub[u]
			queue = append(queue, v)
		}
	}

	return Tree{Subset: sub, Parent: parent, Weight: total}, nil
}
