// SPDX-License-Identifier: MIT
package bench_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlheap/bench"
	"github.com/katalvlaran/lvlheap/builder"
	"github.com/katalvlaran/lvlheap/internal/ctxlog"
	"github.com/katalvlaran/lvlheap/shortestpath"
)

func TestDecodeConfig(t *testing.T) {
	t.Parallel()

	cfg, err := bench.DecodeConfig(strings.NewReader(`
vertices: 200
density: 2.5
source: 7
seed: 11
repeat: 4
queues: [fibonacci]
`))
	require.NoError(t, err)
	assert.Equal(t, bench.Config{
		Vertices: 200, Density: 2.5, Source: 7, Seed: 11, Repeat: 4,
		Queues: []shortestpath.QueueKind{shortestpath.FibonacciHeap},
	}, cfg)

	cfg, err = bench.DecodeConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, bench.DefaultConfig(), cfg)
}

func TestDecodeConfig_Rejects(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"unknown key":     "vertices: 10\nedges: 3\n",
		"unknown queue":   "queues: [binary]\n",
		"no vertices":     "vertices: 0\n",
		"density":         "density: 120\n",
		"source":          "vertices: 5\nsource: 5\n",
		"repeat":          "repeat: 0\n",
		"empty queues":    "queues: []\n",
		"duplicate queue": "queues: [leftist, l]\n",
		"syntax":          "vertices: [\n",
	}
	for name, doc := range tests {
		_, err := bench.DecodeConfig(strings.NewReader(doc))
		require.Error(t, err, name)
	}

	_, err := bench.DecodeConfig(strings.NewReader("repeat: 0\n"))
	require.ErrorIs(t, err, bench.ErrInvalidConfig)
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	cfg, err := bench.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, bench.DefaultConfig(), cfg)

	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte("vertices: 50\ndensity: 10\n"), 0o600))
	cfg, err = bench.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Vertices)

	g, err := cfg.BuildGraph()
	require.NoError(t, err)
	assert.Equal(t, builder.TargetEdges(50, 10), g.Size())

	_, err = bench.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestCompare(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(120, []builder.BuilderOption{builder.WithSeed(5)}, builder.RandomDensity(8))
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	m := bench.NewMetrics(reg)
	var logs bytes.Buffer
	ctx := ctxlog.WithLogger(context.Background(), ctxlog.New("debug", "text", &logs))

	rep, err := bench.Compare(ctx, g, 3, bench.WithRepeat(3), bench.WithDensity(8), bench.WithMetrics(m))
	require.NoError(t, err)

	_, err = uuid.Parse(rep.RunID)
	require.NoError(t, err)
	assert.True(t, rep.Match)
	assert.Empty(t, rep.Diff)
	assert.Equal(t, 120, rep.Vertices)
	assert.Equal(t, g.Size(), rep.Edges)
	require.Len(t, rep.Results, 2)

	for _, k := range shortestpath.QueueKinds() {
		res, ok := rep.Result(k)
		require.True(t, ok)
		assert.Len(t, res.Durations, 3)
		assert.Positive(t, res.Mean)
		assert.GreaterOrEqual(t, res.StdDev, time.Duration(0))
		assert.Equal(t, int64(120), res.Counters.Extractions)
		assert.Equal(t, int64(0), res.Distances[3])

		assert.InDelta(t, 3, testutil.ToFloat64(m.Runs(k)), 0)
	}
	assert.InDelta(t, 0, testutil.ToFloat64(m.Mismatches()), 0)
	assert.Contains(t, logs.String(), rep.RunID)

	var out bytes.Buffer
	require.NoError(t, bench.WriteMetrics(&out, reg))
	assert.Contains(t, out.String(), "lvlheap_run_duration_seconds_bucket")
	assert.Contains(t, out.String(), `lvlheap_decrease_keys_total{queue="leftist"}`)
}

func TestCompare_Errors(t *testing.T) {
	t.Parallel()

	_, err := bench.Compare(context.Background(), nil, 0)
	require.ErrorIs(t, err, shortestpath.ErrNilGraph)

	g, err := shortestpath.NewGraph(2)
	require.NoError(t, err)
	_, err = bench.Compare(context.Background(), g, 2)
	require.ErrorIs(t, err, shortestpath.ErrSourceOutOfRange)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bench.Compare(ctx, g, 0)
	require.ErrorIs(t, err, context.Canceled)

	assert.Panics(t, func() { bench.WithRepeat(0) })
	assert.Panics(t, func() { bench.WithQueues() })
}

func TestWriteReport(t *testing.T) {
	t.Parallel()

	rep := &bench.Report{
		Vertices: 10,
		Density:  50,
		Match:    true,
		Results: []bench.QueueResult{
			{Queue: shortestpath.LeftistTree, Mean: 1500 * time.Microsecond, Durations: []time.Duration{1500 * time.Microsecond}},
			{Queue: shortestpath.FibonacciHeap, Mean: 250 * time.Microsecond, Durations: []time.Duration{250 * time.Microsecond}},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, bench.WriteReport(&buf, rep))
	assert.Equal(t, "Performance metrics for a graph with 10 vertices and 50.00% density:\n\n"+
		"Leftist Tree Time: 1.500 ms\n"+
		"Fibonacci Heap Time: 0.250 ms\n", buf.String())

	rep.Match = false
	buf.Reset()
	require.NoError(t, bench.WriteReport(&buf, rep))
	assert.True(t, strings.HasSuffix(buf.String(), bench.MismatchMessage+"\n"))

	buf.Reset()
	require.NoError(t, bench.WriteGenerated(&buf, 10, 22, 50))
	assert.Equal(t, "Successfully generated a random graph with 10 vertices, 22 edges (50.00% density).\n", buf.String())
}
