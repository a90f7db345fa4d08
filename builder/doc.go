// Package builder synthesizes small deterministic graphs for tests,
// demos and benchmarks.
//
// Every generator is a Constructor closure: it captures its shape
// parameters and populates a fresh core.Attributed handed to it by
// Build. Generators emit vertices in increasing index order and edges
// in a documented stable order, so two builds with the same options
// produce byte-identical graphs (and byte-identical GraphML once
// serialized).
//
// # Generators
//
//	Path(n)        0-1-2-…-(n-1)
//	Cycle(n)       ring over n vertices, closing edge (n-1)-0
//	Complete(n)    one edge per unordered pair {i,j}, i < j
//	Star(n)        hub 0 connected to 1..n-1
//	Grid(r, c)     r×c lattice, row-major ids, right then down edges
//	Random(n, p)   G(n,p) with a seeded generator, pair order fixed
//
// # Determinism
//
// Stochastic choices (Random edges, WithWeights values) come from a
// PCG source seeded via WithSeed; the default seed is 1. Replaying a
// build with the same seed replays the exact value stream.
//
// # Errors
//
// Generators validate their parameters and report violations through
// the package sentinels (ErrTooFewVertices, ErrInvalidProbability),
// wrapped with the generator name. Option constructors panic on
// meaningless input instead, since that is a programming error.
package builder
