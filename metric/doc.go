// Package metric provides the distance capability shared by the MST and
// TSP solvers.
//
// Every solver is written against the Metric interface:
//
//	type Metric interface {
//	    Len() int
//	    Distance(i, j int) float64
//	}
//
// and takes it as a type parameter (func Prim[M metric.Metric](m M, ...)),
// so the inner loops are instantiated for the concrete struct instead of
// dispatching through an interface value on every lookup.
//
// Variants:
//
//   - Constrained   - Euclidean, except Medical↔Normal pairs are +Inf.
//     Used by MST mode; Border points are the only way across.
//   - Unconstrained - plain Euclidean; Distance(i,i) is 0 without a sqrt.
//     Used by FASTTSP mode.
//   - Matrix        - the Unconstrained table computed once (O(V²) time
//     and memory) and served in O(1) from a flat row-major buffer.
//     Used by OPTTSP mode, which queries far more often than V².
//
// Invariants (all variants):
//
//	Distance(i, i) == 0
//	Distance(i, j) == Distance(j, i)
//
// None of the variants is mutated after construction, so one instance can
// be read by any number of solvers.
package metric
