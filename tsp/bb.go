// Package tsp - Branch-and-Bound (exact search with an MST lower bound).
//
// BranchAndBound enumerates Hamiltonian cycles by depth-first search over
// permutations of the vertices with vertex 0 pinned at position 0 (rotational
// symmetry is exploited, reflection is not).
//
// Search state:
//   - The mutable state (path buffer, prefix cost, incumbent cost and tour) is a
//     SearchState passed by pointer through every recursive call. It is mutated
//     before recursing and restored exactly afterwards, so siblings always see the
//     state their parent saw.
//   - The engine holds only read-only inputs (metric, cutoff) plus scratch space and
//     counters; it is never shared between solves.
//
// Per node (genPerms(permLength)):
//  1. Terminal (permLength == n): close the cycle; replace the incumbent only when
//     the total is strictly smaller (ties keep the earlier tour).
//  2. promising: with at most Options.BoundCutoff vertices left, always continue.
//     Otherwise LB = prefix + MST(path[permLength:]) + armToStart + armToEnd and
//     prune when LB > incumbent. An unreachable remainder gives LB = +Inf.
//  3. Branch: for i in [permLength, n) swap path[i] into permLength, add the edge
//     from path[permLength-1], recurse, restore cost and swap back.
//
// Admissibility: any completion is a Hamiltonian path through the unplaced
// vertices (≥ its MST) plus one edge from the last placed vertex into the set
// (≥ armToEnd) plus one edge from the set back to 0 (≥ armToStart).
//
// Seeding: the incumbent starts as Approx, so the exact result is never worse than
// the heuristic and pruning is effective from the first node.
//
// Complexity:
//   - Worst case O(n!) nodes; each bounded node costs O(k²) for the MST of k
//     unplaced vertices.
//   - Memory: O(n) state + O(n) Prim workspace; recursion depth n.
package tsp

import (
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/dronepath/metric"
	"github.com/katalvlaran/dronepath/prim_kruskal"
)

// SearchState is the mutable context of one branch-and-bound solve.
type SearchState struct {
	// Path is the permutation under construction; Path[:permLength] is fixed.
	Path []int
	// PrefixCost is the length of the fixed prefix Path[0..permLength-1].
	PrefixCost float64
	// BestCost is the incumbent cyclic length (the upper bound).
	BestCost float64
	// BestTour is a copy of the incumbent tour.
	BestTour []int
}

// NewSearchState seeds a search from an initial incumbent. The seed tour is
// copied twice: once as the starting permutation, once as the incumbent.
func NewSearchState(seed TSResult) *SearchState {
	return &SearchState{
		Path:       CopyTour(seed.Tour),
		PrefixCost: 0,
		BestCost:   seed.Cost,
		BestTour:   CopyTour(seed.Tour),
	}
}

// bbEngine holds read-only inputs, scratch and counters for one solve.
type bbEngine[M metric.Metric] struct {
	m      M
	n      int
	cutoff int
	ws     *prim_kruskal.Workspace

	// Time budget
	useDeadline bool
	deadline    time.Time
	expired     bool

	stats Stats
}

// deadlineCheck performs a rare deadline test (every 4096 nodes).
func (e *bbEngine[M]) deadlineCheck() bool {
	if e.expired {
		return true
	}
	if !e.useDeadline || (e.stats.Nodes&4095) != 0 {
		return false
	}
	e.expired = time.Now().After(e.deadline)

	return e.expired
}

// genPerms is the recursive search step.
func (e *bbEngine[M]) genPerms(st *SearchState, permLength int) {
	e.stats.Nodes++
	if e.deadlineCheck() {
		return
	}

	if permLength == e.n {
		total := st.PrefixCost + e.m.Distance(st.Path[e.n-1], st.Path[0])
		if total < st.BestCost {
			st.BestCost = total
			copy(st.BestTour, st.Path)
			e.stats.Improvements++
		}

		return
	}

	if !e.promising(st, permLength) {
		e.stats.Pruned++
		return
	}

	var (
		i    int
		prev float64
	)
	for i = permLength; i < e.n; i++ {
		st.Path[permLength], st.Path[i] = st.Path[i], st.Path[permLength]
		prev = st.PrefixCost
		st.PrefixCost += e.m.Distance(st.Path[permLength-1], st.Path[permLength])

		e.genPerms(st, permLength+1)

		// Restore by assignment: (a+c)-c is not always a in floating point.
		st.PrefixCost = prev
		st.Path[permLength], st.Path[i] = st.Path[i], st.Path[permLength]
	}
}

// promising reports whether the subtree below permLength may still beat the incumbent.
func (e *bbEngine[M]) promising(st *SearchState, permLength int) bool {
	if e.n-permLength <= e.cutoff {
		return true
	}
	e.stats.Bounds++
	lb := lowerBound(e.m, st.Path, permLength, st.PrefixCost, e.ws)

	return !(lb > st.BestCost)
}

// LowerBound returns the admissible bound used for pruning:
//
//	prefixCost + MST(path[permLength:]) + armToStart + armToEnd
//
// where armToStart is the cheapest edge from an unplaced vertex to path[0]
// and armToEnd the cheapest edge to path[permLength-1]. If the unplaced
// vertices cannot be spanned the result is +Inf. With permLength ==
// len(path) the bound is the exact closed cycle length.
//
// Preconditions: 1 ≤ permLength ≤ len(path).
//
// Complexity: O(k²) for k = len(path) - permLength.
func LowerBound[M metric.Metric](m M, path []int, permLength int, prefixCost float64) float64 {
	return lowerBound(m, path, permLength, prefixCost, nil)
}

func lowerBound[M metric.Metric](m M, path []int, permLength int, prefixCost float64, ws *prim_kruskal.Workspace) float64 {
	if permLength >= len(path) {
		return prefixCost + m.Distance(path[len(path)-1], path[0])
	}

	remain := path[permLength:]
	mst, err := prim_kruskal.PrimWeight(m, remain, ws)
	if err != nil {
		return math.Inf(1)
	}

	var (
		start    = path[0]
		last     = path[permLength-1]
		armStart = math.Inf(1)
		armEnd   = math.Inf(1)
		d        float64
	)
	for _, v := range remain {
		if d = m.Distance(v, start); d < armStart {
			armStart = d
		}
		if d = m.Distance(v, last); d < armEnd {
			armEnd = d
		}
	}

	return prefixCost + mst + armStart + armEnd
}

// BranchAndBound is the public entrypoint for exact search. It seeds the
// incumbent with Approx, runs genPerms from permLength 1 and returns the
// optimal tour (starting at 0) and its cost.
//
// Errors:
//   - ErrEmptyInstance if m has no vertices.
//   - ErrInvalidOptions for negative BoundCutoff or TimeLimit.
//   - ErrTimeLimit if a positive TimeLimit expired; the result then carries
//     the best tour found so far (never worse than Approx).
func BranchAndBound[M metric.Metric](m M, opts Options) (TSResult, error) {
	if err := opts.validate(); err != nil {
		return TSResult{}, err
	}
	seed, err := Approx(m)
	if err != nil {
		return TSResult{}, err
	}
	log := opts.logger()

	n := m.Len()
	e := &bbEngine[M]{
		m:      m,
		n:      n,
		cutoff: opts.BoundCutoff,
		ws:     prim_kruskal.NewWorkspace(n),
	}
	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(opts.TimeLimit)
	}

	log.Debug("branch and bound started",
		zap.Int("vertices", n),
		zap.Float64("seed_cost", seed.Cost),
		zap.Int("bound_cutoff", e.cutoff))

	st := NewSearchState(seed)
	e.genPerms(st, 1)

	res := TSResult{Tour: st.BestTour, Cost: st.BestCost, Stats: e.stats}
	log.Debug("branch and bound finished",
		zap.Float64("cost", res.Cost),
		zap.Int64("nodes", e.stats.Nodes),
		zap.Int64("bounds", e.stats.Bounds),
		zap.Int64("pruned", e.stats.Pruned),
		zap.Int64("improvements", e.stats.Improvements),
		zap.Bool("expired", e.expired))

	if e.expired {
		return res, ErrTimeLimit
	}

	return res, nil
}
