// Package prop implements the dynamic property maps that attach typed,
// named values to a graph, its vertices, and its edges.
//
// Overview:
//
//   - Domain scopes a property to one of the three entity classes: graph
//     (a singleton slot), vertex, or edge.
//   - Map is one named, typed property: its kind is fixed at creation and
//     every stored value must carry exactly that kind. Entity handles are
//     opaque comparable values supplied by the host graph; per-entity
//     iteration follows first-put order.
//   - Maps is an insertion-ordered collection of Map entries indexed by
//     (name, domain). Codecs iterate it in insertion order, which makes
//     emitted key declarations deterministic.
//
// The two reserved names, VertexIDName and EdgeIDName, carry original
// document identities as ordinary string-kinded entries. Nothing in this
// package treats them specially; the codecs filter them by name.
//
// Maps grow append-only: entries are created on first use and never
// removed. A kind conflict between an existing entry and a new declaration
// is an error, not a silent retype.
package prop
