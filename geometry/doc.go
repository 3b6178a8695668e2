// Package geometry defines the classified 2D points that every router in
// dronepath works on.
//
// A Point carries integer coordinates and a Class derived from them:
//
//	Medical - x < 0 and y < 0 (the protected south-west quadrant)
//	Border  - x == 0 or y == 0 (and not Medical)
//	Normal  - everything else
//
// The class is never read from input; it is computed once by NewPoint and
// the Point is immutable afterwards.
//
// A PointSet is the ordered, index-addressed list of points built once at
// startup. The index of a point inside the PointSet is the stable vertex
// identifier used by the metric, prim_kruskal and tsp packages.
//
// Input:
//
//	ReadPointSet parses the plain-text format
//
//	    N
//	    x0 y0
//	    x1 y1
//	    ...
//
//	where all tokens are whitespace separated integers.
//
// Errors:
//
//	ErrEmptyPointSet  - the input declares zero points.
//	ErrMalformedInput - a token is missing or is not an integer.
package geometry
