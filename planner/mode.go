// Package planner drives one run of the drone route planner: it picks the
// distance metric that belongs to a mode, runs the matching solver and
// renders the fixed-precision text report.
//
// Mode → metric → solver:
//
//	MST     → metric.Constrained   → prim_kruskal.Compute (Prim or Kruskal)
//	FASTTSP → metric.Unconstrained → tsp.Approx
//	OPTTSP  → metric.Matrix        → tsp.BranchAndBound (or tsp.HeldKarp)
package planner

import (
	"errors"
	"fmt"
)

// ErrUnknownMode is returned by ParseMode for anything but MST, FASTTSP, OPTTSP.
var ErrUnknownMode = errors.New("planner: unknown mode")

// ErrUnknownOptMethod is returned for an Options.OptMethod outside the declared set.
var ErrUnknownOptMethod = errors.New("planner: unknown OPTTSP method")

// Mode selects what the planner computes.
type Mode uint8

const (
	// ModeMST computes a constrained minimum spanning tree.
	ModeMST Mode = iota
	// ModeFastTSP computes the heuristic tour.
	ModeFastTSP
	// ModeOptTSP computes the optimal tour.
	ModeOptTSP
)

// String returns the command-line spelling of the mode.
func (m Mode) String() string {
	switch m {
	case ModeMST:
		return "MST"
	case ModeFastTSP:
		return "FASTTSP"
	case ModeOptTSP:
		return "OPTTSP"
	default:
		return "UNKNOWN"
	}
}

// ParseMode maps the exact, case-sensitive mode names to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "MST":
		return ModeMST, nil
	case "FASTTSP":
		return ModeFastTSP, nil
	case "OPTTSP":
		return ModeOptTSP, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// OPTTSP solver names.
const (
	OptBranchAndBound = "bb"
	OptHeldKarp       = "heldkarp"
)
