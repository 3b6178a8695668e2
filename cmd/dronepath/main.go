// Command dronepath reads a point set from stdin and prints a constrained
// minimum spanning tree (MST), a heuristic tour (FASTTSP) or an optimal tour
// (OPTTSP).
//
// Input: a point count followed by that many "x y" integer pairs.
//
//	dronepath -m OPTTSP < points.txt
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/dronepath/config"
	"github.com/katalvlaran/dronepath/geometry"
	"github.com/katalvlaran/dronepath/logger"
	"github.com/katalvlaran/dronepath/planner"
	"github.com/katalvlaran/dronepath/prim_kruskal"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main without process globals; it returns the exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load(args)
	switch {
	case errors.Is(err, config.ErrHelp):
		fmt.Fprint(stdout, config.Usage())
		return 0
	case err != nil:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	// config.Load only accepts the three mode names.
	mode, _ := planner.ParseMode(cfg.Mode)

	log, err := logger.New(cfg.LogLevel, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	ps, err := geometry.ReadPointSet(bufio.NewReader(stdin))
	if err != nil {
		log.Error("reading points", zap.Error(err))
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	p := planner.New(log, planner.Options{
		MSTMethod:   cfg.MSTMethod,
		BoundCutoff: cfg.BoundCutoff,
		OptMethod:   cfg.OptMethod,
		TimeLimit:   cfg.TimeLimit,
	})
	rep, err := p.Run(ctx, mode, ps)
	switch {
	case errors.Is(err, prim_kruskal.ErrDisconnected):
		fmt.Fprintln(stderr, "Cannot construct MST")
		return 1
	case err != nil:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	out := bufio.NewWriter(stdout)
	if _, err = rep.WriteTo(out); err == nil {
		err = out.Flush()
	}
	if err != nil {
		log.Error("writing report", zap.Error(err))
		return 1
	}

	return 0
}
