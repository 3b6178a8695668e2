package planner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/dronepath/geometry"
	"github.com/katalvlaran/dronepath/metric"
	"github.com/katalvlaran/dronepath/prim_kruskal"
	"github.com/katalvlaran/dronepath/tsp"
)

// Options configures a Planner.
type Options struct {
	// MSTMethod is prim_kruskal.MethodPrim or prim_kruskal.MethodKruskal.
	MSTMethod string
	// BoundCutoff is passed to tsp.Options.BoundCutoff.
	BoundCutoff int
	// OptMethod is OptBranchAndBound or OptHeldKarp.
	OptMethod string
	// TimeLimit bounds OPTTSP branch and bound; 0 means unlimited.
	TimeLimit time.Duration
}

// DefaultOptions returns Prim, tsp.DefaultBoundCutoff, branch and bound and
// no time limit.
func DefaultOptions() Options {
	return Options{
		MSTMethod:   prim_kruskal.MethodPrim,
		BoundCutoff: tsp.DefaultBoundCutoff,
		OptMethod:   OptBranchAndBound,
	}
}

// Planner runs one mode over a point set. It holds no per-run state and may
// be reused.
type Planner struct {
	log  *zap.Logger
	opts Options
}

// New creates a Planner. A nil logger is replaced by a no-op logger.
func New(log *zap.Logger, opts Options) *Planner {
	if log == nil {
		log = zap.NewNop()
	}

	return &Planner{log: log, opts: opts}
}

// Run computes the report for mode over ps.
//
// ctx is checked once before solving; the solvers are synchronous CPU work.
// MST failure is returned wrapping prim_kruskal.ErrDisconnected. An OPTTSP
// time limit is not an error: the best tour found so far is reported and a
// warning is logged.
func (p *Planner) Run(ctx context.Context, mode Mode, ps geometry.PointSet) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	if ps.Len() == 0 {
		return Report{}, geometry.ErrEmptyPointSet
	}

	log := p.log.With(zap.Stringer("mode", mode), zap.Int("points", ps.Len()))
	start := time.Now()

	var (
		rep Report
		err error
	)
	switch mode {
	case ModeMST:
		rep, err = p.runMST(ps)
	case ModeFastTSP:
		rep, err = p.runFast(ps)
	case ModeOptTSP:
		rep, err = p.runOpt(ps, log)
	default:
		return Report{}, fmt.Errorf("%w: %d", ErrUnknownMode, mode)
	}
	if err != nil {
		log.Debug("run failed", zap.Error(err))
		return Report{}, err
	}
	rep.Mode = mode

	log.Info("run finished",
		zap.Float64("total", rep.Total),
		zap.Duration("elapsed", time.Since(start)))

	return rep, nil
}

func (p *Planner) runMST(ps geometry.PointSet) (Report, error) {
	m := metric.NewConstrained(ps)
	opts := prim_kruskal.NewOptions(prim_kruskal.WithMethod(p.opts.MSTMethod))

	tree, err := prim_kruskal.Compute(m, prim_kruskal.All(ps.Len()), opts)
	if err != nil {
		return Report{}, fmt.Errorf("planner: mst: %w", err)
	}

	return Report{Total: tree.Weight, Edges: tree.Edges()}, nil
}

func (p *Planner) runFast(ps geometry.PointSet) (Report, error) {
	res, err := tsp.Approx(metric.NewUnconstrained(ps))
	if err != nil {
		return Report{}, fmt.Errorf("planner: fasttsp: %w", err)
	}

	return Report{Total: res.Cost, Tour: res.Tour}, nil
}

func (p *Planner) runOpt(ps geometry.PointSet, log *zap.Logger) (Report, error) {
	m := metric.NewMatrix(ps)

	var (
		res tsp.TSResult
		err error
	)
	switch p.opts.OptMethod {
	case OptBranchAndBound, "":
		res, err = tsp.BranchAndBound(m, tsp.Options{
			BoundCutoff: p.opts.BoundCutoff,
			TimeLimit:   p.opts.TimeLimit,
			Logger:      log,
		})
		if errors.Is(err, tsp.ErrTimeLimit) {
			log.Warn("time limit reached, reporting best tour so far",
				zap.Duration("time_limit", p.opts.TimeLimit),
				zap.Int64("nodes", res.Stats.Nodes))
			err = nil
		}
	case OptHeldKarp:
		res, err = tsp.HeldKarp(m)
	default:
		return Report{}, fmt.Errorf("%w: %q", ErrUnknownOptMethod, p.opts.OptMethod)
	}
	if err != nil {
		return Report{}, fmt.Errorf("planner: opttsp: %w", err)
	}

	return Report{Total: res.Cost, Tour: res.Tour, Stats: res.Stats}, nil
}
