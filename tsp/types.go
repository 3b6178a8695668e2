package tsp

import (
	"errors"
	"time"

	"go.uber.org/zap"
)

// Sentinel errors for TSP solvers.
var (
	// ErrEmptyInstance is returned when the metric has no vertices.
	ErrEmptyInstance = errors.New("tsp: empty instance")

	// ErrInvalidTour is returned by ValidateTour for anything other than a
	// permutation of 0..n-1 that starts at vertex 0.
	ErrInvalidTour = errors.New("tsp: invalid tour")

	// ErrInvalidOptions is returned for a negative BoundCutoff or TimeLimit.
	ErrInvalidOptions = errors.New("tsp: invalid options")

	// ErrTimeLimit is returned by BranchAndBound when Options.TimeLimit
	// expires; the result then holds the best tour found so far.
	ErrTimeLimit = errors.New("tsp: time limit exceeded")

	// ErrTooLarge is returned by HeldKarp above MaxHeldKarpN vertices.
	ErrTooLarge = errors.New("tsp: instance too large for Held-Karp")
)

// DefaultBoundCutoff is the number of unplaced vertices at or below which
// branch-and-bound skips the MST bound and simply enumerates. It is an
// empirical tunable, not a semantic threshold.
const DefaultBoundCutoff = 5

// TSResult holds the outcome of a TSP solver.
type TSResult struct {
	// Tour is the visiting order, a permutation of 0..n-1 with Tour[0] == 0.
	// The closing edge back to 0 is implied.
	Tour []int

	// Cost is the total cyclic length, closing edge included.
	Cost float64

	// Stats is filled by BranchAndBound only.
	Stats Stats
}

// Stats counts branch-and-bound search events.
type Stats struct {
	// Nodes is the number of genPerms invocations.
	Nodes int64
	// Bounds is the number of MST lower bounds evaluated.
	Bounds int64
	// Pruned is the number of subtrees cut by the bound.
	Pruned int64
	// Improvements is the number of times the incumbent was replaced.
	Improvements int64
}

// Options configures BranchAndBound.
type Options struct {
	// BoundCutoff: when n - permLength <= BoundCutoff the bound is skipped.
	BoundCutoff int

	// TimeLimit is a soft wall-clock budget; 0 means unlimited.
	TimeLimit time.Duration

	// Logger receives debug-level search summaries. nil means no logging.
	Logger *zap.Logger
}

// DefaultOptions returns Options with BoundCutoff = DefaultBoundCutoff,
// no time limit and a no-op logger.
func DefaultOptions() Options {
	return Options{
		BoundCutoff: DefaultBoundCutoff,
		TimeLimit:   0,
		Logger:      zap.NewNop(),
	}
}

// validate checks option ranges.
func (o Options) validate() error {
	if o.BoundCutoff < 0 || o.TimeLimit < 0 {
		return ErrInvalidOptions
	}

	return nil
}

// logger returns a usable logger.
func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}

	return o.Logger
}
