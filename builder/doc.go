// Package builder provides functional-options graph constructors that produce
// shortestpath.Graph fixtures: deterministic topologies (Path, Cycle, Star,
// Complete) and seeded random samplers (RandomDensity, RandomSparse).
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildGraph(n, opts, cons...): allocate n vertices, resolve options, run
//     constructors in order.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds the RNG and the weight function.
//   - Edge-weight distributions (WeightFn implementations):
//     – ConstantWeightFn:  fixed positive value.
//     – UniformWeightFn:   uniform integer in [lo, hi].
//     – DefaultWeightFn:   uniform integer in [1, 1000], the range used by the
//     benchmark harness.
//   - Random samplers:
//     – RandomDensity(percent): exactly ⌊percent/100 · n(n−1)/2⌋ distinct
//     non-loop edges by rejection sampling; duplicates are filtered through an
//     ordered edge set.
//     – RandomSparse(p): one Bernoulli(p) trial per unordered pair.
//
// Guarantees:
//
//   - Every constructor emits a simple graph: no self-loops and no parallel edges.
//   - Weights are always ≥ 1, as Graph.AddEdge requires.
//   - Determinism: same n, options, seed and constructor order ⇒ identical
//     graphs.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     constructors themselves return sentinel errors.
//
// Errors (sentinel):
//
//   - ErrTooFewVertices      graph too small for the topology.
//   - ErrInvalidProbability  probability or density out of range.
//   - ErrNeedRandSource      stochastic constructor without an RNG.
//   - ErrConstructFailed     nil constructor or unexpected graph failure.
package builder
