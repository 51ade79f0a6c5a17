// SPDX-License-Identifier: MIT
// Package: lvlheap/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w; sentinels carry no parameters.

package builder

import "errors"

// ErrTooFewVertices indicates the graph is smaller than the topology needs.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1] or a density
// outside [0,100].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a graph mutation that
// failed for a reason the constructor did not expect.
var ErrConstructFailed = errors.New("builder: construction failed")
