// SPDX-License-Identifier: MIT
// Package: lvlheap/bench
//
// config.go — YAML benchmark configuration with strict decoding.

package bench

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlheap/builder"
	"github.com/katalvlaran/lvlheap/shortestpath"
)

// ErrInvalidConfig indicates a configuration value outside its domain.
var ErrInvalidConfig = errors.New("bench: invalid config")

// Config describes one benchmark: a seeded random graph and the queues to time.
//
//	vertices: 1000
//	density: 5        # percent of n(n-1)/2
//	source: 0
//	seed: 42
//	repeat: 3
//	queues: [leftist, fibonacci]
type Config struct {
	Vertices int                      `yaml:"vertices"`
	Density  float64                  `yaml:"density"`
	Source   int                      `yaml:"source"`
	Seed     int64                    `yaml:"seed"`
	Repeat   int                      `yaml:"repeat"`
	Queues   []shortestpath.QueueKind `yaml:"queues"`
}

// DefaultConfig returns a small graph timed once with both queues.
func DefaultConfig() Config {
	return Config{
		Vertices: 1000,
		Density:  1,
		Source:   0,
		Seed:     1,
		Repeat:   1,
		Queues:   shortestpath.QueueKinds(),
	}
}

// LoadConfig reads path on top of DefaultConfig. An empty path returns the
// defaults. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	// 1. Open file
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("bench: open config: %w", err)
	}
	defer f.Close()

	// 2. Decode and validate
	cfg, err := DecodeConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// DecodeConfig strictly decodes YAML from r over DefaultConfig and validates
// the result. An empty document yields the defaults.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("bench: decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	switch {
	case c.Vertices < 1:
		return fmt.Errorf("%w: vertices=%d < 1", ErrInvalidConfig, c.Vertices)
	case math.IsNaN(c.Density) || c.Density < 0 || c.Density > 100:
		return fmt.Errorf("%w: density=%v not in [0,100]", ErrInvalidConfig, c.Density)
	case c.Source < 0 || c.Source >= c.Vertices:
		return fmt.Errorf("%w: source=%d not in [0,%d)", ErrInvalidConfig, c.Source, c.Vertices)
	case c.Repeat < 1:
		return fmt.Errorf("%w: repeat=%d < 1", ErrInvalidConfig, c.Repeat)
	case len(c.Queues) == 0:
		return fmt.Errorf("%w: no queues", ErrInvalidConfig)
	}

	seen := make(map[shortestpath.QueueKind]bool, len(c.Queues))
	for _, k := range c.Queues {
		if _, err := k.MarshalText(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		if seen[k] {
			return fmt.Errorf("%w: queue %s listed twice", ErrInvalidConfig, k)
		}
		seen[k] = true
	}

	return nil
}

// BuildGraph samples the configured random graph.
func (c Config) BuildGraph() (*shortestpath.Graph, error) {
	g, err := builder.BuildGraph(c.Vertices,
		[]builder.BuilderOption{builder.WithSeed(c.Seed)},
		builder.RandomDensity(c.Density))
	if err != nil {
		return nil, fmt.Errorf("bench: build graph: %w", err)
	}

	return g, nil
}
