// Package cli parses the lvlheap command line into a Config and carries the
// process exit code for usage errors.
package cli

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/lvlheap/bench"
	"github.com/katalvlaran/lvlheap/shortestpath"
)

// ExitError is an error carrying a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Mode selects what the binary does.
type Mode int

const (
	// ModeRandom samples a random graph and times every queue on it.
	ModeRandom Mode = iota
	// ModeFile runs one queue on an edge-list file and prints the distances.
	ModeFile
	// ModeConfig runs the benchmark described by a YAML file.
	ModeConfig
)

// Config is the parsed command line.
type Config struct {
	Mode Mode

	// Bench holds the random-mode parameters (ModeRandom).
	Bench bench.Config

	// Path is the edge-list file (ModeFile) or the YAML file (ModeConfig).
	Path string
	// Queue is the queue for ModeFile.
	Queue shortestpath.QueueKind

	LogLevel  string
	LogFormat string
	Metrics   bool
}

const usageText = `
lvlheap - Dijkstra with a leftist tree and a Fibonacci heap.

Usage:
  lvlheap [options] -r n d x     random graph: n vertices, d%% density, source x
  lvlheap [options] -l FILE      leftist tree on an edge-list file
  lvlheap [options] -f FILE      Fibonacci heap on an edge-list file
  lvlheap [options] -config FILE benchmark described by a YAML file

Options:
`

// Parse processes command-line arguments. It returns the Config, a boolean
// that is true when the program should exit cleanly (help or no mode), or an
// *ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	fs := flag.NewFlagSet("lvlheap", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(output, usageText)
		fs.PrintDefaults()
	}

	randomFlag := fs.Bool("r", false, "Random mode; takes the positional arguments n d x.")
	leftistFlag := fs.String("l", "", "Edge-list file to solve with the leftist tree.")
	fibFlag := fs.String("f", "", "Edge-list file to solve with the Fibonacci heap.")
	configFlag := fs.String("config", "", "YAML benchmark configuration file.")
	seedFlag := fs.Int64("seed", 0, "Random mode seed. Defaults to the current time.")
	repeatFlag := fs.Int("repeat", 1, "Random mode: runs per queue.")
	logFormatFlag := fs.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := fs.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	metricsFlag := fs.Bool("metrics", false, "Print Prometheus metrics after the run.")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, usageError("%s", err.Error())
	}

	// 1) Ambient flags.
	cfg := &Config{
		LogFormat: strings.ToLower(*logFormatFlag),
		LogLevel:  strings.ToLower(*logLevelFlag),
		Metrics:   *metricsFlag,
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	// 2) Exactly one mode.
	modes := 0
	for _, set := range []bool{*randomFlag, *leftistFlag != "", *fibFlag != "", *configFlag != ""} {
		if set {
			modes++
		}
	}
	switch {
	case modes == 0:
		fs.Usage()
		return nil, true, nil
	case modes > 1:
		return nil, false, usageError("choose exactly one of -r, -l, -f, -config")
	}

	// 3) Mode parameters.
	switch {
	case *leftistFlag != "":
		cfg.Mode, cfg.Path, cfg.Queue = ModeFile, *leftistFlag, shortestpath.LeftistTree
	case *fibFlag != "":
		cfg.Mode, cfg.Path, cfg.Queue = ModeFile, *fibFlag, shortestpath.FibonacciHeap
	case *configFlag != "":
		cfg.Mode, cfg.Path = ModeConfig, *configFlag
	default:
		b, err := parseRandom(fs.Args(), *repeatFlag)
		if err != nil {
			return nil, false, err
		}
		b.Seed = time.Now().UnixNano()
		fs.Visit(func(f *flag.Flag) {
			if f.Name == "seed" {
				b.Seed = *seedFlag
			}
		})
		cfg.Mode, cfg.Bench = ModeRandom, b
	}
	if cfg.Mode != ModeRandom && fs.NArg() > 0 {
		return nil, false, usageError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	return cfg, false, nil
}

// parseRandom reads "n d x".
func parseRandom(args []string, repeat int) (bench.Config, error) {
	if len(args) != 3 {
		return bench.Config{}, usageError("Random mode usage: -r n d x")
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		return bench.Config{}, usageError("invalid vertex count %q", args[0])
	}
	d, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return bench.Config{}, usageError("invalid density %q", args[1])
	}
	x, err := strconv.Atoi(args[2])
	if err != nil {
		return bench.Config{}, usageError("invalid source %q", args[2])
	}

	b := bench.DefaultConfig()
	b.Vertices, b.Density, b.Source, b.Repeat = n, d, x, repeat
	if err = b.Validate(); err != nil {
		return bench.Config{}, usageError("%s", err.Error())
	}

	return b, nil
}
