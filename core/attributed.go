// Package core: the Attributed bundle tying a Graph to its property maps
// and bridging both into the GraphML codec contracts.

package core

import (
	"io"

	"github.com/katalvlaran/grafio/attr"
	"github.com/katalvlaran/grafio/graphml"
	"github.com/katalvlaran/grafio/prop"
)

// Attributed bundles a Graph with its property maps, giving codecs and
// generators a single value to populate and drain.
type Attributed struct {
	Graph *Graph
	Props *prop.Maps
}

// NewAttributed builds an empty attributed graph.
// Complexity: O(1)
func NewAttributed(opts ...GraphOption) *Attributed {
	return &Attributed{Graph: NewGraph(opts...), Props: prop.NewMaps()}
}

// host adapts Graph to the codec's mutation contract. Every AddEdge
// failure (bad handle, loop or parallel-edge policy) becomes a silent
// rejection, which the reader treats as "skip this edge and its data".
type host struct{ g *Graph }

func (h host) Directed() bool { return h.g.Directed() }

func (h host) AddVertex() any { return h.g.AddVertex() }

func (h host) AddEdge(src, tgt any) (any, bool) {
	s, okS := src.(VertexID)
	t, okT := tgt.(VertexID)
	if !okS || !okT {
		return EdgeID(-1), false
	}
	id, err := h.g.AddEdge(s, t)
	if err != nil {
		return EdgeID(-1), false
	}

	return id, true
}

// view adapts Graph to the codec's writer contract. Handles are dense, so
// VertexIndex is the handle itself.
type view struct{ g *Graph }

func (v view) Directed() bool { return v.g.Directed() }

func (v view) Vertices() []any {
	ids := v.g.Vertices()
	out := make([]any, len(ids))
	for i, id := range ids {
		out[i] = id
	}

	return out
}

func (v view) Edges() []graphml.Edge {
	recs := v.g.Edges()
	out := make([]graphml.Edge, len(recs))
	for i, e := range recs {
		out[i] = graphml.Edge{Handle: e.ID, Source: e.Source, Target: e.Target}
	}

	return out
}

func (v view) VertexIndex(h any) int {
	id, ok := h.(VertexID)
	if !ok || !v.g.HasVertex(id) {
		return -1
	}

	return int(id)
}

// Mutator returns the typed mutation adapter feeding this graph and its
// maps. Each call builds a fresh stateless wrapper.
func (a *Attributed) Mutator() *graphml.GraphMutator {
	return graphml.NewGraphMutator(host{a.Graph}, a.Props)
}

// View returns the writer-side adapter over the graph.
func (a *Attributed) View() graphml.View { return view{a.Graph} }

// ReadGraphML parses one plain document from r into the graph. Node ids
// (and edge ids where present) are stored under the reserved property
// names when storeIDs is set, so a later write preserves them.
func (a *Attributed) ReadGraphML(r io.Reader, storeIDs bool) error {
	return graphml.Read(r, a.Mutator(), storeIDs)
}

// ReadGraphMLAuto is ReadGraphML with transparent gzip and zstd detection.
func (a *Attributed) ReadGraphMLAuto(r io.Reader, storeIDs bool) error {
	return graphml.ReadAuto(r, a.Mutator(), storeIDs)
}

// WriteGraphML emits the graph as one GraphML document. Dense handles make
// vertex iteration order the canonical order, so the ordered flag is
// always passed.
func (a *Attributed) WriteGraphML(w io.Writer) error {
	return graphml.Write(w, a.View(), a.Props, true)
}

// WriteGraphMLCompressed wraps WriteGraphML in the chosen compression.
func (a *Attributed) WriteGraphMLCompressed(w io.Writer, c graphml.Compression) error {
	return graphml.WriteCompressed(w, a.View(), a.Props, true, c)
}

// SetGraphValue stores one typed graph-level property, creating the map on
// first use.
func (a *Attributed) SetGraphValue(name string, val attr.Value) error {
	m, err := a.Props.Ensure(name, prop.DomainGraph, val.Kind())
	if err != nil {
		return err
	}

	return m.SetGraph(val)
}

// GraphValue fetches one graph-level property.
func (a *Attributed) GraphValue(name string) (attr.Value, bool) {
	m, ok := a.Props.Lookup(name, prop.DomainGraph)
	if !ok {
		return attr.Value{}, false
	}

	return m.Graph()
}

// SetVertexValue stores one typed vertex property, creating the map on
// first use.
func (a *Attributed) SetVertexValue(name string, v VertexID, val attr.Value) error {
	m, err := a.Props.Ensure(name, prop.DomainVertex, val.Kind())
	if err != nil {
		return err
	}

	return m.Put(v, val)
}

// VertexValue fetches one vertex property.
func (a *Attributed) VertexValue(name string, v VertexID) (attr.Value, bool) {
	m, ok := a.Props.Lookup(name, prop.DomainVertex)
	if !ok {
		return attr.Value{}, false
	}

	return m.Get(v)
}

// SetEdgeValue stores one typed edge property, creating the map on first
// use.
func (a *Attributed) SetEdgeValue(name string, e EdgeID, val attr.Value) error {
	m, err := a.Props.Ensure(name, prop.DomainEdge, val.Kind())
	if err != nil {
		return err
	}

	return m.Put(e, val)
}

// EdgeValue fetches one edge property.
func (a *Attributed) EdgeValue(name string, e EdgeID) (attr.Value, bool) {
	m, ok := a.Props.Lookup(name, prop.DomainEdge)
	if !ok {
		return attr.Value{}, false
	}

	return m.Get(e)
}

// AttributedStats extends the graph snapshot with the property surface.
type AttributedStats struct {
	GraphStats
	PropertyMaps int
}

// Stats returns a combined snapshot.
// Complexity: O(E)
func (a *Attributed) Stats() AttributedStats {
	return AttributedStats{GraphStats: a.Graph.Stats(), PropertyMaps: a.Props.Len()}
}
