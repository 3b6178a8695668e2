package geometry

import (
	"errors"
	"math"
)

// Sentinel errors for point set construction.
var (
	// ErrEmptyPointSet indicates that the input declared no points at all.
	ErrEmptyPointSet = errors.New("geometry: empty point set")

	// ErrMalformedInput indicates a missing or non-integer token in the input.
	ErrMalformedInput = errors.New("geometry: malformed input")
)

// Class is the derived classification of a Point.
type Class uint8

const (
	// Medical points lie strictly inside the south-west quadrant.
	Medical Class = iota
	// Normal points lie strictly off both axes and outside the Medical quadrant.
	Normal
	// Border points lie on an axis; they are the only bridge between
	// Medical and Normal territory.
	Border
)

// String returns the lower-case class name.
func (c Class) String() string {
	switch c {
	case Medical:
		return "medical"
	case Normal:
		return "normal"
	case Border:
		return "border"
	default:
		return "unknown"
	}
}

// Classify derives the Class of the coordinate pair (x, y).
//
// Medical takes precedence over Border; (0,0) is therefore Border and
// (-1,-1) is Medical.
func Classify(x, y int) Class {
	if x < 0 && y < 0 {
		return Medical
	}
	if x == 0 || y == 0 {
		return Border
	}

	return Normal
}

// Point is an immutable classified 2D location.
type Point struct {
	X     int
	Y     int
	Class Class
}

// NewPoint builds a Point and classifies it.
func NewPoint(x, y int) Point {
	return Point{X: x, Y: y, Class: Classify(x, y)}
}

// PointSet is the ordered, read-only collection of points. The zero value
// is an empty set.
type PointSet struct {
	pts []Point
}

// NewPointSet copies pts into a new PointSet.
//
// Complexity: O(n).
func NewPointSet(pts []Point) PointSet {
	cp := make([]Point, len(pts))
	copy(cp, pts)

	return PointSet{pts: cp}
}

// FromCoords builds a PointSet from raw (x, y) pairs, classifying each one.
//
// Complexity: O(n).
func FromCoords(coords [][2]int) PointSet {
	pts := make([]Point, len(coords))
	for i, c := range coords {
		pts[i] = NewPoint(c[0], c[1])
	}

	return PointSet{pts: pts}
}

// Len returns the number of points.
func (ps PointSet) Len() int { return len(ps.pts) }

// At returns the point with index i. It panics if i is out of range,
// the same way a slice index would.
func (ps PointSet) At(i int) Point { return ps.pts[i] }

// Points returns a copy of the underlying points.
func (ps PointSet) Points() []Point {
	cp := make([]Point, len(ps.pts))
	copy(cp, ps.pts)

	return cp
}

// Euclid returns the straight-line distance between points i and j.
// Coordinates are widened to float64 before subtracting so large integer
// inputs cannot overflow.
func (ps PointSet) Euclid(i, j int) float64 {
	var (
		a  = ps.pts[i]
		b  = ps.pts[j]
		dx = float64(b.X) - float64(a.X)
		dy = float64(b.Y) - float64(a.Y)
	)

	return math.Sqrt(dx*dx + dy*dy)
}
