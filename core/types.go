// Package core defines the attributed host graph the codecs populate and
// drain: an append-only container with dense integer handles.
//
// This file declares VertexID, EdgeID, Edge, Graph, GraphOption, sentinel
// errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrVertexNotFound - vertex handle was never issued by this graph.
//	ErrEdgeNotFound   - edge handle was never issued by this graph.
//	ErrLoopNotAllowed - self-loop attempted with loops disabled.
//	ErrParallelEdge   - duplicate endpoint pair with parallel edges disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for host graph operations.
var (
	// ErrVertexNotFound indicates a handle outside the graph's dense range.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an edge handle that was never issued.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted with loops disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrParallelEdge indicates a duplicate endpoint pair with parallel edges disabled.
	ErrParallelEdge = errors.New("core: parallel edge not allowed")
)

// VertexID is a dense vertex handle: the i-th AddVertex call returns i.
// The handle doubles as the canonical index behind n{i} document ids.
type VertexID int

// EdgeID is a dense edge handle issued in insertion order.
type EdgeID int

// Edge is one recorded connection. Source and Target keep the order they
// were given to AddEdge, in undirected graphs too.
type Edge struct {
	ID     EdgeID
	Source VertexID
	Target VertexID
}

// incidence is one adjacency entry: the far endpoint and the edge between.
type incidence struct {
	to VertexID
	id EdgeID
}

// GraphOption configures a Graph at construction.
type GraphOption func(*Graph)

// WithDirected sets the orientation of all edges
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithoutParallelEdges makes AddEdge reject a second edge over an endpoint
// pair that is already connected.
func WithoutParallelEdges() GraphOption {
	return func(g *Graph) { g.noParallel = true }
}

// WithoutLoops makes AddEdge reject self-loops.
func WithoutLoops() GraphOption {
	return func(g *Graph) { g.noLoops = true }
}

// Graph is an append-only in-memory multigraph with dense integer handles.
// Nothing is ever removed (Clear resets wholesale), so every issued handle
// stays valid and VertexID i is always the i-th vertex in iteration order.
// A single RWMutex guards all mutable state; configuration flags are
// immutable after NewGraph and read without locking.
type Graph struct {
	mu sync.RWMutex

	directed   bool
	noParallel bool
	noLoops    bool

	edges []Edge
	out   [][]incidence       // per-vertex adjacency; undirected mirrors both ways
	in    [][]incidence       // directed graphs only
	pairs map[[2]VertexID]int // endpoint pair -> edge count
}

// NewGraph creates an empty Graph. The default is undirected with
// self-loops and parallel edges permitted, matching what the wire formats
// can carry.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{pairs: make(map[[2]VertexID]int)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
