// Package dot exports attributed graphs as Graphviz DOT text.
//
// The export is one-way and purely textual: Write emits a digraph or
// graph block with canonical n0, n1, ... node names in view order, so
// output is deterministic and diffs cleanly. Labels and extra
// attributes are opt-in through WithVertexLabel, WithEdgeLabel and
// WithProperties, using the same lexical value encodings as the other
// codecs. DOT parsing is out of scope.
package dot
