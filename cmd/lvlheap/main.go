// Command lvlheap runs Dijkstra's algorithm with a leftist tree and a Fibonacci
// heap, either on a random graph (timing both) or on an edge-list file.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/lvlheap/bench"
	"github.com/katalvlaran/lvlheap/edgelist"
	"github.com/katalvlaran/lvlheap/internal/cli"
	"github.com/katalvlaran/lvlheap/internal/ctxlog"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Stdout, os.Stderr, os.Args[1:])
	stop()

	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the program so tests can drive it with buffers.
func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := ctxlog.New(cfg.LogLevel, cfg.LogFormat, errW)
	ctx = ctxlog.WithLogger(ctx, logger)

	reg := prometheus.NewRegistry()
	metrics := bench.NewMetrics(reg)

	switch cfg.Mode {
	case cli.ModeFile:
		err = runFile(ctx, outW, cfg, metrics)
	case cli.ModeConfig:
		var b bench.Config
		if b, err = bench.LoadConfig(cfg.Path); err != nil {
			return err
		}
		err = runBench(ctx, outW, b, metrics)
	default:
		err = runBench(ctx, outW, cfg.Bench, metrics)
	}
	if err != nil {
		return err
	}

	if cfg.Metrics {
		return bench.WriteMetrics(outW, reg)
	}

	return nil
}

// runFile solves an edge-list file with one queue and prints every distance.
func runFile(ctx context.Context, outW io.Writer, cfg *cli.Config, m *bench.Metrics) error {
	in, err := edgelist.ParseFile(cfg.Path)
	if err != nil {
		return err
	}

	rep, err := bench.Compare(ctx, in.Graph, in.Source, bench.WithQueues(cfg.Queue), bench.WithMetrics(m))
	if err != nil {
		return err
	}

	fmt.Fprintf(outW, "The shortest path distances are calculated using %s\n", cfg.Queue.Label())
	return edgelist.WriteDistances(outW, in.Source, rep.Results[0].Distances)
}

// runBench samples the configured graph and times every queue on it.
func runBench(ctx context.Context, outW io.Writer, b bench.Config, m *bench.Metrics) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Generating random graph.", "vertices", b.Vertices, "density", b.Density, "seed", b.Seed)

	g, err := b.BuildGraph()
	if err != nil {
		return err
	}
	if err = bench.WriteGenerated(outW, g.Order(), g.Size(), b.Density); err != nil {
		return err
	}

	rep, err := bench.Compare(ctx, g, b.Source, append(bench.FromConfig(b), bench.WithMetrics(m))...)
	if err != nil {
		return err
	}

	return bench.WriteReport(outW, rep)
}
