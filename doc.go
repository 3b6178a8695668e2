// Package dronepath plans drone routes over classified 2D integer points.
//
// Every point is classified from its coordinates:
//
//	Medical - x < 0 and y < 0
//	Border  - on an axis (x == 0 or y == 0) and not Medical
//	Normal  - everything else
//
// Three modes are offered:
//
//	MST     - minimum spanning tree in which Medical and Normal points may
//	          never be joined directly; Border points mediate.
//	FASTTSP - nearest-neighbour tour from point 0 improved by one 2-opt sweep.
//	OPTTSP  - optimal tour by branch and bound with an MST lower bound,
//	          seeded by FASTTSP.
//
// Packages:
//
//	geometry/     - Point, Class, PointSet and the stdin reader
//	metric/       - Constrained, Unconstrained and Matrix distances
//	prim_kruskal/ - Prim (primary) and Kruskal (alternate) over index subsets
//	tsp/          - Approx, BranchAndBound, HeldKarp
//	planner/      - mode → metric → solver, fixed two-decimal report
//	config/       - flags, environment and config file (viper, pflag, validator)
//	logger/       - zap logger writing JSON to stderr
//	cmd/dronepath - the command-line tool
//
// Quick start:
//
//	printf '4\n0 0\n0 1\n1 0\n1 1\n' | dronepath -m MST
//	3.00
//	0 1
//	0 2
//	1 3
package dronepath
