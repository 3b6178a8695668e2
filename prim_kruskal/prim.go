// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm
// for complete metric graphs. It grows the tree from the first subset vertex using a linear
// scan instead of a heap; every vertex is relaxed at every step on a complete graph.
package prim_kruskal

import (
	"math"

	"github.com/katalvlaran/dronepath/metric"
)

// Workspace holds the transient per-vertex Prim table: best known
// distance-to-tree, tree parent and the visited flag. Reusing one
// Workspace across calls removes all allocations from PrimWeight, which
// the branch-and-bound solver calls at almost every search node.
//
// A Workspace must not be shared between concurrent calls.
type Workspace struct {
	dist    []float64
	parent  []int
	visited []bool
}

// NewWorkspace preallocates room for subsets of up to capacity vertices.
// Larger subsets grow the buffers on demand.
func NewWorkspace(capacity int) *Workspace {
	return &Workspace{
		dist:    make([]float64, 0, capacity),
		parent:  make([]int, 0, capacity),
		visited: make([]bool, 0, capacity),
	}
}

// reset sizes the table to k entries: dist=+Inf, parent=-1, visited=false.
func (ws *Workspace) reset(k int) {
	if cap(ws.dist) < k {
		ws.dist = make([]float64, k)
		ws.parent = make([]int, k)
		ws.visited = make([]bool, k)
	}
	ws.dist = ws.dist[:k]
	ws.parent = ws.parent[:k]
	ws.visited = ws.visited[:k]

	inf := math.Inf(1)
	for i := 0; i < k; i++ {
		ws.dist[i] = inf
		ws.parent[i] = -1
		ws.visited[i] = false
	}
}

// Prim computes the MST over subset under m.
//
// Error Conditions:
//   - ErrEmptySubset  : len(subset) == 0.
//   - ErrDisconnected : at some step every remaining vertex is at +Inf
//     from the tree (the forbidden-pair rule splits the subset).
//
// Steps:
//  1. Seed subset[0] with distance 0 and itself as parent.
//  2. k times: linear-scan the unvisited vertices for the minimum
//     distance-to-tree; +Inf means disconnected.
//  3. Add it (weight += distance) and relax every unvisited vertex
//     against the new member.
//
// The subset slice is only read.
//
// Complexity: O(k²) time, O(k) memory.
func Prim[M metric.Metric](m M, subset []int) (Tree, error) {
	ws := NewWorkspace(len(subset))
	w, err := prim(m, subset, ws)
	if err != nil {
		return Tree{}, err
	}

	sub := make([]int, len(subset))
	copy(sub, subset)
	parent := make([]int, len(subset))
	copy(parent, ws.parent)

	return Tree{Subset: sub, Parent: parent, Weight: w}, nil
}

// PrimWeight is Prim without the tree: it returns only the total weight
// and reuses ws for the per-vertex table. A nil ws allocates a fresh one.
//
// Complexity: O(k²) time, no allocations once ws is large enough.
func PrimWeight[M metric.Metric](m M, subset []int, ws *Workspace) (float64, error) {
	if ws == nil {
		ws = NewWorkspace(len(subset))
	}

	return prim(m, subset, ws)
}

func prim[M metric.Metric](m M, subset []int, ws *Workspace) (float64, error) {
	k := len(subset)
	if k == 0 {
		return 0, ErrEmptySubset
	}
	ws.reset(k)
	ws.dist[0] = 0
	ws.parent[0] = subset[0]

	var (
		total  float64
		step   int
		j      int
		minIdx int
		minD   float64
		u      int
		d      float64
	)
	for step = 0; step < k; step++ {
		minIdx = -1
		minD = math.Inf(1)
		for j = 0; j < k; j++ {
			if !ws.visited[j] && ws.dist[j] < minD {
				minIdx = j
				minD = ws.dist[j]
			}
		}
		// Every remaining vertex is unreachable from the tree.
		if minIdx < 0 {
			return 0, ErrDisconnected
		}

		ws.visited[minIdx] = true
		total += minD

		u = subset[minIdx]
		for j = 0; j < k; j++ {
			if ws.visited[j] {
				continue
			}
			d = m.Distance(u, subset[j])
			if d < ws.dist[j] {
				ws.dist[j] = d
				ws.parent[j] = u
			}
		}
	}

	return total, nil
}
