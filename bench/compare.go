// SPDX-License-Identifier: MIT
// Package: lvlheap/bench
//
// compare.go — time every queue on one graph and cross-validate the answers.
//
// Runs are strictly sequential: each Run builds its own queue and distance
// vector, so no state is shared between queues or repeats.

package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvlheap/internal/ctxlog"
	"github.com/katalvlaran/lvlheap/shortestpath"
)

// QueueResult is the outcome of all repeats for one queue.
type QueueResult struct {
	Queue     shortestpath.QueueKind
	Durations []time.Duration
	Mean      time.Duration
	StdDev    time.Duration
	Counters  shortestpath.Counters // from the first repeat
	Distances shortestpath.Distances
}

// Report is the outcome of Compare.
type Report struct {
	RunID    string
	Vertices int
	Edges    int
	Density  float64 // percent; informational, set by the caller
	Source   int
	Results  []QueueResult
	Match    bool
	Diff     string // go-cmp diff against the first queue when Match is false
}

// Result returns the entry for k.
func (r *Report) Result(k shortestpath.QueueKind) (QueueResult, bool) {
	for _, res := range r.Results {
		if res.Queue == k {
			return res, true
		}
	}

	return QueueResult{}, false
}

// Options configures Compare.
type Options struct {
	Queues  []shortestpath.QueueKind
	Repeat  int
	Density float64
	Metrics *Metrics
}

// Option is a functional option for Compare.
type Option func(*Options)

// WithQueues selects the queues to time, in order. Panics on an empty list.
func WithQueues(kinds ...shortestpath.QueueKind) Option {
	if len(kinds) == 0 {
		panic("bench: WithQueues()")
	}
	return func(o *Options) {
		o.Queues = append([]shortestpath.QueueKind(nil), kinds...)
	}
}

// WithRepeat runs every queue n times. Panics if n < 1.
func WithRepeat(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("bench: WithRepeat(%d)", n))
	}
	return func(o *Options) {
		o.Repeat = n
	}
}

// WithDensity records the density the graph was generated with.
func WithDensity(percent float64) Option {
	return func(o *Options) {
		o.Density = percent
	}
}

// WithMetrics feeds every run into m.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}

// FromConfig turns cfg into Compare options.
func FromConfig(cfg Config) []Option {
	return []Option{WithQueues(cfg.Queues...), WithRepeat(cfg.Repeat), WithDensity(cfg.Density)}
}

// Compare runs shortestpath.Run for every configured queue on g from source,
// records wall times and checks that all queues produced the same distances.
// The context is checked between runs.
func Compare(ctx context.Context, g *shortestpath.Graph, source int, opts ...Option) (*Report, error) {
	// 1) Build options.
	o := Options{Queues: shortestpath.QueueKinds(), Repeat: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if g == nil {
		return nil, shortestpath.ErrNilGraph
	}

	rep := &Report{
		RunID:    uuid.New().String(),
		Vertices: g.Order(),
		Edges:    g.Size(),
		Density:  o.Density,
		Source:   source,
		Match:    true,
	}
	logger := ctxlog.FromContext(ctx).With("run_id", rep.RunID)
	logger.Info("Comparison started.", "vertices", rep.Vertices, "edges", rep.Edges, "source", source, "repeat", o.Repeat)

	// 2) Time each queue.
	for _, k := range o.Queues {
		res, err := timeQueue(ctx, g, source, k, o)
		if err != nil {
			return nil, err
		}
		logger.Debug("Queue timed.", "queue", k.String(), "mean", res.Mean, "stddev", res.StdDev,
			"decrease_keys", res.Counters.DecreaseKeys)
		rep.Results = append(rep.Results, res)
	}

	// 3) Cross-validate against the first queue.
	ref := rep.Results[0]
	for _, res := range rep.Results[1:] {
		if diff := cmp.Diff(ref.Distances, res.Distances); diff != "" {
			rep.Match = false
			rep.Diff += fmt.Sprintf("%s vs %s (-%s +%s):\n%s", ref.Queue, res.Queue, ref.Queue, res.Queue, diff)
			logger.Warn("Distance vectors disagree.", "reference", ref.Queue.String(), "queue", res.Queue.String(),
				"vertices", ref.Distances.Mismatches(res.Distances))
		}
	}
	if !rep.Match {
		o.Metrics.observeMismatch()
	}
	logger.Info("Comparison finished.", "match", rep.Match)

	return rep, nil
}

// timeQueue runs one queue o.Repeat times.
func timeQueue(ctx context.Context, g *shortestpath.Graph, source int, k shortestpath.QueueKind, o Options) (QueueResult, error) {
	res := QueueResult{Queue: k, Durations: make([]time.Duration, 0, o.Repeat)}
	secs := make([]float64, 0, o.Repeat)

	for i := 0; i < o.Repeat; i++ {
		if err := ctx.Err(); err != nil {
			return QueueResult{}, fmt.Errorf("bench: %s run %d: %w", k, i, err)
		}

		var c shortestpath.Counters
		start := time.Now()
		dist, err := shortestpath.Run(g, source, shortestpath.WithQueue(k), shortestpath.WithCounters(&c))
		elapsed := time.Since(start)
		if err != nil {
			return QueueResult{}, fmt.Errorf("bench: %s: %w", k, err)
		}

		if i == 0 {
			res.Distances = dist
			res.Counters = c
		}
		res.Durations = append(res.Durations, elapsed)
		secs = append(secs, elapsed.Seconds())
		o.Metrics.observeRun(k, elapsed, c)
	}

	mean, std := stat.MeanStdDev(secs, nil)
	if len(secs) < 2 {
		std = 0 // sample stddev of one value is NaN
	}
	res.Mean = time.Duration(mean * float64(time.Second))
	res.StdDev = time.Duration(std * float64(time.Second))

	return res, nil
}
