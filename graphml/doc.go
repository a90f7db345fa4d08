// Package graphml implements a streaming codec for the flat attributed
// subset of GraphML: one graph per document, no nested graphs, no
// hyperedges, no ports, and every property declared up front through a
// <key> element.
//
// Overview:
//
//   - Read consumes a document token by token and drives a Mutator, so a
//     host graph is populated incrementally and nothing but the pending
//     edge buffer is ever held in memory.
//   - Write walks a View plus its prop.Maps and emits a document with a
//     fixed layout, making output byte-reproducible for a given host
//     iteration order.
//   - ReadAuto and WriteCompressed wrap the same codec in gzip or zstd
//     transport, with magic-byte sniffing on the read side.
//
// Document shape:
//
//   - <key id attr.name attr.type for> declares a property. All four
//     attributes are required; for is one of "node", "edge", "graph",
//     "all". An optional <default> child supplies a value applied to
//     every entity of the domain that lacks explicit data.
//   - <graph edgedefault> holds <node id> and <edge source target>
//     elements; properties attach through <data key> children. The
//     optional parse.order="nodesfirst" hint lets the reader resolve
//     edge endpoints immediately instead of buffering them until
//     </graph>.
//   - The reserved names "_graphml_vertex_id" and "_graphml_edge_id"
//     carry original entity ids through round trips; see Id regimes.
//
// Type system:
//
//   - Lexical forms follow the attr package: attr.type names map onto
//     attr.Kind via attr.KindOf, values parse via attr.Parse and print
//     via attr.Print. Floats use hexadecimal notation on output and
//     accept decimal or hexadecimal on input, so round trips are
//     bit-exact.
//
// Reading:
//
//   - Read(r, m, storeIDs) parses one document into the Mutator m.
//     Directionality is verified against m.Directed() before any vertex
//     or edge lands in the host, so a mismatch leaves the host untouched.
//   - storeIDs=true records every node id (and each edge id that is
//     present) under the reserved names through SetVertexProperty and
//     SetEdgeProperty with type "string".
//   - When the host declines an edge (parallel edge with the insertion
//     disabled, for instance) its <data> children are still validated
//     but the values are discarded.
//   - GraphMutator adapts any Host plus a prop.Maps store into a
//     Mutator, which is how core.Attributed consumes documents.
//
// Writing:
//
//   - Write(w, g, maps, orderedVertices) emits key declarations in map
//     insertion order under synthetic ids key0, key1, ... and walks
//     vertices and edges in the order the View reports them.
//   - A data element whose printed value is empty (an empty vector or
//     string) is suppressed entirely; the reader's <default> machinery
//     restores nothing in that case, so empties survive as zero values.
//
// Id regimes:
//
//   - parse.nodeids="canonical" means vertex ids are n0..n|V|-1 in
//     document order; "free" means ids are arbitrary strings. The writer
//     picks canonical only when orderedVertices is set and no stored
//     vertex-id map is present, mirroring the choice on edges through
//     parse.edgeids and the stored edge-id map.
//
// Error handling (sentinel errors):
//
//   - ErrXML: the byte stream is not well-formed XML.
//   - ErrSchema: well-formed XML that violates the subset (missing
//     required attributes, references to undeclared keys, duplicate
//     ids, unresolved edge endpoints, ...).
//   - ErrTypeUnknown: a <key> declares an attr.type outside the closed
//     name set.
//   - ErrValueParse: a <data> or <default> body does not parse under
//     the declared kind.
//   - ErrHostReject: the Mutator refused a mutation.
//   - ErrIO: the underlying reader or writer failed.
//
// Every failure is an *Error carrying the kind, a message and, for
// read-side failures, a 1-based line:column position. Match with
// errors.Is against the sentinels or unwrap with errors.As.
//
// Thread safety:
//
//   - Read and Write are plain single-goroutine functions; guard shared
//     hosts externally if you stream into one graph from several
//     goroutines.
//
// See also:
//
//   - core.Attributed: in-memory host wiring this codec to core.Graph.
//   - yamlgraph: the same Mutator contract fed from YAML documents.
package graphml
