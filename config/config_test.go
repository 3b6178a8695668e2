package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dronepath/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load([]string{"-m", "MST"})
	require.NoError(t, err)
	assert.Equal(t, config.Config{
		Mode:        "MST",
		LogLevel:    "warn",
		MSTMethod:   "prim",
		BoundCutoff: 5,
		OptMethod:   "bb",
		TimeLimit:   0,
	}, cfg)
}

func TestLoad_LongFlags(t *testing.T) {
	cfg, err := config.Load([]string{
		"--mode=OPTTSP", "--bound-cutoff", "3", "--mst-method", "kruskal",
		"--opt-method", "heldkarp", "--time-limit", "1500ms", "--log-level", "debug",
	})
	require.NoError(t, err)
	assert.Equal(t, "OPTTSP", cfg.Mode)
	assert.Equal(t, 3, cfg.BoundCutoff)
	assert.Equal(t, "kruskal", cfg.MSTMethod)
	assert.Equal(t, "heldkarp", cfg.OptMethod)
	assert.Equal(t, 1500*time.Millisecond, cfg.TimeLimit)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_Help(t *testing.T) {
	for _, args := range [][]string{{"-h"}, {"--help"}, {"-m", "MST", "-h"}} {
		_, err := config.Load(args)
		assert.ErrorIs(t, err, config.ErrHelp, "%v", args)
	}
	assert.Contains(t, config.Usage(), "--mode")
	assert.Contains(t, config.Usage(), "MST|FASTTSP|OPTTSP")
}

func TestLoad_NoMode(t *testing.T) {
	_, err := config.Load(nil)
	require.ErrorIs(t, err, config.ErrNoMode)
}

func TestLoad_InvalidValues(t *testing.T) {
	for _, args := range [][]string{
		{"-m", "MST", "--mst-method", "boruvka"},
		{"-m", "OPTTSP", "--bound-cutoff", "-1"},
		{"-m", "OPTTSP", "--opt-method", "annealing"},
		{"-m", "MST", "--log-level", "loud"},
	} {
		_, err := config.Load(args)
		assert.ErrorIs(t, err, config.ErrInvalidConfig, "%v", args)
	}
}

func TestLoad_InvalidMode(t *testing.T) {
	for _, mode := range []string{"TSP", "mst", "OPT"} {
		_, err := config.Load([]string{"-m", mode})
		require.ErrorIs(t, err, config.ErrInvalidMode, mode)
		assert.Equal(t, "invalid mode "+mode, err.Error())
	}
}

func TestLoad_InvalidFlag(t *testing.T) {
	_, err := config.Load([]string{"-x"})
	require.ErrorIs(t, err, config.ErrInvalidFlag)

	_, err = config.Load([]string{"--bound-cutoff", "many", "-m", "MST"})
	require.ErrorIs(t, err, config.ErrInvalidFlag)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("DRONEPATH_MODE", "FASTTSP")
	t.Setenv("DRONEPATH_BOUND_CUTOFF", "8")

	cfg, err := config.Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "FASTTSP", cfg.Mode)
	assert.Equal(t, 8, cfg.BoundCutoff)

	// An explicit flag wins over the environment.
	cfg, err = config.Load([]string{"--mode", "MST"})
	require.NoError(t, err)
	assert.Equal(t, "MST", cfg.Mode)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dronepath.yaml")
	body := "mode: OPTTSP\nbound_cutoff: 7\ntime_limit: 2s\nopt_method: heldkarp\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := config.Load([]string{"--config", path})
	require.NoError(t, err)
	assert.Equal(t, "OPTTSP", cfg.Mode)
	assert.Equal(t, 7, cfg.BoundCutoff)
	assert.Equal(t, 2*time.Second, cfg.TimeLimit)
	assert.Equal(t, "heldkarp", cfg.OptMethod)

	_, err = config.Load([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")})
	require.Error(t, err)
}
