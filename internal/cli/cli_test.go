package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlheap/internal/cli"
	"github.com/katalvlaran/lvlheap/shortestpath"
)

func TestParse_RandomMode(t *testing.T) {
	t.Parallel()

	cfg, exit, err := cli.Parse([]string{"-seed", "9", "-repeat", "3", "-r", "100", "5", "2"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, exit)
	assert.Equal(t, cli.ModeRandom, cfg.Mode)
	assert.Equal(t, 100, cfg.Bench.Vertices)
	assert.InDelta(t, 5.0, cfg.Bench.Density, 1e-12)
	assert.Equal(t, 2, cfg.Bench.Source)
	assert.Equal(t, int64(9), cfg.Bench.Seed)
	assert.Equal(t, 3, cfg.Bench.Repeat)
	assert.Equal(t, shortestpath.QueueKinds(), cfg.Bench.Queues)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestParse_FileModes(t *testing.T) {
	t.Parallel()

	cfg, _, err := cli.Parse([]string{"-l", "in.txt"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, cli.ModeFile, cfg.Mode)
	assert.Equal(t, shortestpath.LeftistTree, cfg.Queue)
	assert.Equal(t, "in.txt", cfg.Path)

	cfg, _, err = cli.Parse([]string{"-metrics", "-log-format", "JSON", "-f", "in.txt"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, shortestpath.FibonacciHeap, cfg.Queue)
	assert.True(t, cfg.Metrics)
	assert.Equal(t, "json", cfg.LogFormat)

	cfg, _, err = cli.Parse([]string{"-config", "bench.yaml"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, cli.ModeConfig, cfg.Mode)
	assert.Equal(t, "bench.yaml", cfg.Path)
}

func TestParse_HelpAndNoMode(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{{"-h"}, {}} {
		out := &bytes.Buffer{}
		cfg, exit, err := cli.Parse(args, out)
		require.NoError(t, err)
		assert.True(t, exit)
		assert.Nil(t, cfg)
		assert.Contains(t, out.String(), "Usage:")
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := map[string][]string{
		"unknown flag":     {"-x"},
		"two modes":        {"-l", "a", "-f", "b"},
		"random arity":     {"-r", "10", "5"},
		"random n":         {"-r", "ten", "5", "0"},
		"random density":   {"-r", "10", "many", "0"},
		"random source":    {"-r", "10", "5", "zero"},
		"density range":    {"-r", "10", "101", "0"},
		"source range":     {"-r", "10", "5", "10"},
		"bad repeat":       {"-repeat", "0", "-r", "10", "5", "0"},
		"bad log level":    {"-log-level", "loud", "-l", "a"},
		"bad log format":   {"-log-format", "xml", "-l", "a"},
		"trailing for -l":  {"-l", "a", "extra"},
		"trailing for cfg": {"-config", "a", "extra"},
	}
	for name, args := range tests {
		_, _, err := cli.Parse(args, &bytes.Buffer{})
		var exitErr *cli.ExitError
		require.ErrorAs(t, err, &exitErr, name)
		assert.Equal(t, 2, exitErr.Code, name)
		assert.NotEmpty(t, exitErr.Error(), name)
	}
}
