package graphml_test

import (
	"github.com/katalvlaran/grafio/graphml"
	"github.com/katalvlaran/grafio/prop"
)

// memGraph is the minimal host used across codec tests: dense integer
// vertex handles, sequential integer edge handles, and an optional
// parallel-edge rejection switch. It serves both sides of the codec,
// graphml.Host for reading and graphml.View for writing.
type memGraph struct {
	directed bool
	noMulti  bool
	vertices []any
	edges    []graphml.Edge
	seen     map[[2]int]bool
}

func newMemGraph(directed bool) *memGraph {
	return &memGraph{directed: directed, seen: make(map[[2]int]bool)}
}

func (g *memGraph) Directed() bool { return g.directed }

func (g *memGraph) AddVertex() any {
	h := len(g.vertices)
	g.vertices = append(g.vertices, h)

	return h
}

func (g *memGraph) AddEdge(src, tgt any) (any, bool) {
	s, t := src.(int), tgt.(int)
	key := [2]int{s, t}
	if !g.directed && s > t {
		key = [2]int{t, s}
	}
	if g.noMulti && g.seen[key] {
		return nil, false
	}
	g.seen[key] = true

	h := len(g.edges)
	g.edges = append(g.edges, graphml.Edge{Handle: h, Source: src, Target: tgt})

	return h, true
}

func (g *memGraph) Vertices() []any { return append([]any(nil), g.vertices...) }

func (g *memGraph) Edges() []graphml.Edge { return append([]graphml.Edge(nil), g.edges...) }

func (g *memGraph) VertexIndex(v any) int {
	i, ok := v.(int)
	if !ok || i < 0 || i >= len(g.vertices) {
		return -1
	}

	return i
}

var (
	_ graphml.Host = (*memGraph)(nil)
	_ graphml.View = (*memGraph)(nil)
)

// newMemMutator pairs a fresh memGraph with a GraphMutator over empty maps.
func newMemMutator(directed bool) (*memGraph, *graphml.GraphMutator) {
	g := newMemGraph(directed)

	return g, graphml.NewGraphMutator(g, prop.NewMaps())
}
