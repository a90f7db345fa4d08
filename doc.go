// Package grafio reads, writes and stores attributed graphs — typed
// properties over vertices, edges and the graph itself — across GraphML,
// YAML, DOT and SQLite, with bit-exact value round-trips.
//
// 🚀 What is grafio?
//
//	A codec-first graph library organized around one pair of contracts:
//		• Core primitives: dense-handle graphs with typed property maps
//		• GraphML: streaming reader & deterministic writer, gzip/zstd aware
//		• YAML: the same document semantics behind the same Mutator
//		• DOT: one-way Graphviz export, rasterized via the CLI
//		• SQLite: transactional graph snapshots you can query in place
//		• Generators: path, cycle, complete, star, grid, random
//
// ✨ Why choose grafio?
//
//   - Lexical fidelity – floats print as hex and survive every round trip
//   - One Mutator – every reader drives any host through one contract
//   - Deterministic output – identical graphs encode to identical bytes
//   - Tooling included – the grafio CLI converts, validates and renders
//
// Everything lives in small subpackages:
//
//	attr/        — value kinds, parsing & printing
//	prop/        — property maps over graph, vertex and edge domains
//	graphml/     — the GraphML codec and its error taxonomy
//	yamlgraph/   — the YAML codec
//	dot/         — Graphviz DOT export
//	sqlitegraph/ — SQLite-backed snapshots
//	core/        — in-memory graphs bridging all codec contracts
//	builder/     — deterministic topology generators
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	a square: four vertices, four edges, and as many typed properties
//	as you care to attach.
//
//	go get github.com/katalvlaran/grafio
package grafio
