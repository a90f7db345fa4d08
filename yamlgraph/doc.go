// Package yamlgraph is the YAML rendition of the attributed-graph
// model: a human-editable fixture format carrying the same information
// as the GraphML codec and driving the same graphml.Mutator contract,
// so any host that reads one format reads the other.
//
// # Document shape
//
//	directed: false
//	properties:
//	  name:   {domain: graph, type: string, default: untitled}
//	  weight: {domain: edge, type: double}
//	graph:
//	  name: demo
//	vertices:
//	  - id: a
//	  - id: b
//	edges:
//	  - source: a
//	    target: b
//	    weight: 0x1.8p+00
//
// A missing directed key means undirected. Property values are the
// GraphML lexical encodings of package attr, kept verbatim as scalar
// text, so hex floats and comma-joined vectors round-trip bit-exactly.
// Unlike GraphML there is no id regime: every vertex carries its id
// explicitly, and edges may reference vertices declared later in the
// file because the document is decoded before any mutation.
//
// # Reading
//
//	mut := graphml.NewGraphMutator(host, prop.NewMaps())
//	if err := yamlgraph.Read(f, mut, true); err != nil { ... }
//
// Read enforces the GraphML reader's semantics: declarations before
// use, one domain per property, defaults applied at entity open with
// explicit entries overwriting, unknown endpoints and duplicate vertex
// ids fatal, and rejected parallel edges skipped with their values
// dropped after declaration checks.
//
// # Writing
//
//	err := yamlgraph.Write(f, a.View(), a.Props)
//
// Output is deterministic and insertion-ordered; writing the result of
// a Read reproduces an equivalent document byte for byte.
//
// # Errors
//
// Shape violations wrap ErrDocument, structural violations wrap
// ErrSchema; typed-dispatch failures pass through from the shared
// mutator and match the graphml sentinels (graphml.ErrTypeUnknown,
// graphml.ErrValueParse, graphml.ErrHostReject). Messages carry the
// offending document line where one is known.
package yamlgraph
