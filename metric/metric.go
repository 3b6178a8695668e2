package metric

import (
	"errors"
	"math"

	"github.com/katalvlaran/dronepath/geometry"
)

// ErrUnknownKind is returned by New for a Kind outside the declared set.
var ErrUnknownKind = errors.New("metric: unknown metric kind")

// Metric is the distance capability over point indices.
type Metric interface {
	// Len returns the number of addressable vertices.
	Len() int
	// Distance returns the symmetric, non-negative cost between i and j.
	// +Inf marks a forbidden pair.
	Distance(i, j int) float64
}

// Kind selects one of the concrete metrics.
type Kind uint8

const (
	// KindConstrained selects Constrained.
	KindConstrained Kind = iota
	// KindUnconstrained selects Unconstrained.
	KindUnconstrained
	// KindMatrix selects Matrix.
	KindMatrix
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindConstrained:
		return "constrained"
	case KindUnconstrained:
		return "unconstrained"
	case KindMatrix:
		return "matrix"
	default:
		return "unknown"
	}
}

// New builds the metric variant selected by kind over ps.
//
// The returned value is an interface; callers that care about the hot
// path should construct the concrete type directly.
func New(kind Kind, ps geometry.PointSet) (Metric, error) {
	switch kind {
	case KindConstrained:
		return NewConstrained(ps), nil
	case KindUnconstrained:
		return NewUnconstrained(ps), nil
	case KindMatrix:
		return NewMatrix(ps), nil
	default:
		return nil, ErrUnknownKind
	}
}

// Constrained forbids direct Medical↔Normal travel.
type Constrained struct {
	ps geometry.PointSet
}

var _ Metric = Constrained{}

// NewConstrained wraps ps. The point set is borrowed, not copied.
func NewConstrained(ps geometry.PointSet) Constrained { return Constrained{ps: ps} }

// Len returns the number of points.
func (c Constrained) Len() int { return c.ps.Len() }

// Distance returns +Inf when one endpoint is Medical and the other Normal,
// otherwise the Euclidean distance.
func (c Constrained) Distance(i, j int) float64 {
	a, b := c.ps.At(i).Class, c.ps.At(j).Class
	if (a == geometry.Medical && b == geometry.Normal) || (a == geometry.Normal && b == geometry.Medical) {
		return math.Inf(1)
	}

	return c.ps.Euclid(i, j)
}

// Unconstrained is the plain Euclidean metric.
type Unconstrained struct {
	ps geometry.PointSet
}

var _ Metric = Unconstrained{}

// NewUnconstrained wraps ps. The point set is borrowed, not copied.
func NewUnconstrained(ps geometry.PointSet) Unconstrained { return Unconstrained{ps: ps} }

// Len returns the number of points.
func (u Unconstrained) Len() int { return u.ps.Len() }

// Distance returns the Euclidean distance, short-circuiting i == j.
func (u Unconstrained) Distance(i, j int) float64 {
	if i == j {
		return 0
	}

	return u.ps.Euclid(i, j)
}

// Matrix is a precomputed Unconstrained table, passed by value; copies
// share the read-only backing slice.
type Matrix struct {
	n int
	w []float64 // w[i*n+j]
}

var _ Metric = Matrix{}

// NewMatrix computes the full pairwise table of ps.
//
// Only the upper triangle is evaluated; the lower one is mirrored so the
// table is exactly symmetric.
//
// Complexity: O(n²) time and memory.
func NewMatrix(ps geometry.PointSet) Matrix {
	var (
		n    = ps.Len()
		base = NewUnconstrained(ps)
		w    = make([]float64, n*n)
		i, j int
		d    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = base.Distance(i, j)
			w[i*n+j] = d
			w[j*n+i] = d
		}
	}

	return Matrix{n: n, w: w}
}

// FromMetric snapshots any Metric into a Matrix. It is the hook used by
// tests and by callers that want the O(1) lookup over a custom rule.
//
// Complexity: O(n²) time and memory.
func FromMetric(m Metric) Matrix {
	var (
		n    = m.Len()
		w    = make([]float64, n*n)
		i, j int
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i != j {
				w[i*n+j] = m.Distance(i, j)
			}
		}
	}

	return Matrix{n: n, w: w}
}

// Len returns the table order.
func (m Matrix) Len() int { return m.n }

// Distance is a single slice lookup.
func (m Matrix) Distance(i, j int) float64 { return m.w[i*m.n+j] }
