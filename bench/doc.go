// SPDX-License-Identifier: MIT

// Package bench times the shortest-path queues against each other on one graph
// and checks that they agree.
//
// A run is described by a Config (YAML, strictly decoded) or by Compare options
// directly. Compare executes every queue Repeat times, sequentially, records
// wall times with mean and standard deviation, and diffs the distance vectors
// of every queue against the first. Results may be fed to Prometheus
// instruments created by NewMetrics and dumped in text exposition format with
// WriteMetrics.
//
// Compare logs through the *slog.Logger carried in its context.
package bench
