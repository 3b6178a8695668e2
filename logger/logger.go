// Package logger builds the process-wide zap logger.
//
// Output is JSON on the given writer (stderr in the command); stdout is
// reserved for planner results.
package logger

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = "warn"

// New returns a production-style zap logger at the given level ("debug",
// "info", "warn", "error") writing to w. An empty level means DefaultLevel,
// a nil w means os.Stderr.
func New(level string, w io.Writer) (*zap.Logger, error) {
	if level == "" {
		level = DefaultLevel
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	if w == nil {
		w = os.Stderr
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	sink := zapcore.AddSync(w)
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), sink, zap.NewAtomicLevelAt(lvl))

	return zap.New(core, zap.AddCaller(), zap.ErrorOutput(sink)), nil
}
