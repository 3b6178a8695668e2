// Package prim_kruskal defines the spanning tree result, configuration options
// and sentinel errors for MST computation.
package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/dronepath/metric"
)

// ErrDisconnected indicates that the requested subset is split by +Inf
// (forbidden) pairs, so no spanning tree can cover it.
var ErrDisconnected = errors.New("prim_kruskal: cannot construct spanning tree")

// ErrEmptySubset indicates that no vertices were given.
var ErrEmptySubset = errors.New("prim_kruskal: empty vertex subset")

// ErrUnknownMethod indicates an MSTOptions.Method outside MethodPrim/MethodKruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// MethodPrim selects the O(k²) linear-scan Prim (primary path).
const MethodPrim = "prim"

// MethodKruskal selects sort-and-union Kruskal (alternate path).
const MethodKruskal = "kruskal"

// Edge is an undirected tree edge between real point indices, U < V.
type Edge struct {
	U int
	V int
}

// newEdge orders the endpoints.
func newEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}

	return Edge{U: a, V: b}
}

// Tree is a spanning tree over a vertex subset.
//
// Fields:
//
//	Subset - the real point indices the tree spans, in caller order.
//	Parent - Parent[k] is the real index of Subset[k]'s parent; the root
//	         (Subset[0]) is its own parent.
//	Weight - total edge weight.
type Tree struct {
	Subset []int
	Parent []int
	Weight float64
}

// Edges returns the tree edges in subset order, skipping the root's
// self-edge. Each edge is reported with the smaller index first.
//
// Complexity: O(k).
func (t Tree) Edges() []Edge {
	if len(t.Subset) == 0 {
		return nil
	}
	out := make([]Edge, 0, len(t.Subset)-1)
	for k, p := range t.Parent {
		if p == t.Subset[k] {
			continue
		}
		out = append(out, newEdge(p, t.Subset[k]))
	}

	return out
}

// MSTOptions configures which MST algorithm Compute runs.
// Use DefaultOptions() to get the default setup (Prim).
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// DefaultOptions returns MSTOptions with Method = MethodPrim.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodPrim}
}

// NewOptions applies opts on top of DefaultOptions.
func NewOptions(opts ...Option) MSTOptions {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// All returns the identity subset {0, 1, ..., n-1}.
func All(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}

	return s
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– MethodPrim:    Prim(m, subset)
//	– MethodKruskal: Kruskal(m, subset)
//	– otherwise:     ErrUnknownMethod
func Compute[M metric.Metric](m M, subset []int, opts MSTOptions) (Tree, error) {
	switch opts.Method {
	case MethodPrim:
		return Prim(m, subset)
	case MethodKruskal:
		return Kruskal(m, subset)
	default:
		return Tree{}, ErrUnknownMethod
	}
}
