// SPDX-License-Identifier: MIT
// Package: lvlheap/bench
//
// metrics.go — Prometheus instruments for benchmark runs.

package bench

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/lvlheap/shortestpath"
)

// Metrics groups the instruments Compare updates.
type Metrics struct {
	runDuration  *prometheus.HistogramVec
	runs         *prometheus.CounterVec
	decreaseKeys *prometheus.CounterVec
	mismatches   prometheus.Counter
}

// NewMetrics creates and registers the instruments on reg.
// Registering twice on the same registry panics, as promauto does.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		runDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "lvlheap_run_duration_seconds",
				Help: "Wall time of one shortest-path run",
				// 10µs .. ~40s
				Buckets: prometheus.ExponentialBuckets(1e-5, 4, 12),
			},
			[]string{"queue"},
		),
		runs: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lvlheap_runs_total",
				Help: "Number of shortest-path runs",
			},
			[]string{"queue"},
		),
		decreaseKeys: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lvlheap_decrease_keys_total",
				Help: "Decrease-key operations issued to the queue",
			},
			[]string{"queue"},
		),
		mismatches: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "lvlheap_mismatches_total",
				Help: "Comparisons whose distance vectors disagreed",
			},
		),
	}
}

// Runs returns the run counter for k.
func (m *Metrics) Runs(k shortestpath.QueueKind) prometheus.Counter {
	return m.runs.WithLabelValues(k.String())
}

// Mismatches returns the mismatch counter.
func (m *Metrics) Mismatches() prometheus.Counter { return m.mismatches }

func (m *Metrics) observeRun(k shortestpath.QueueKind, d time.Duration, c shortestpath.Counters) {
	if m == nil {
		return
	}
	m.runDuration.WithLabelValues(k.String()).Observe(d.Seconds())
	m.runs.WithLabelValues(k.String()).Inc()
	m.decreaseKeys.WithLabelValues(k.String()).Add(float64(c.DecreaseKeys))
}

func (m *Metrics) observeMismatch() {
	if m == nil {
		return
	}
	m.mismatches.Inc()
}

// WriteMetrics gathers g and writes the text exposition format to w.
func WriteMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("bench: gather metrics: %w", err)
	}

	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err = enc.Encode(mf); err != nil {
			return fmt.Errorf("bench: encode %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
