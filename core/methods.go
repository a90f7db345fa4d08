// Package core: Graph method implementations.
//
// All mutating and reading operations on the Graph type defined in
// types.go. Adjacency is a per-vertex incidence slice, so neighbor and
// degree queries are linear in the answer, and AddVertex/AddEdge are
// amortized constant time.

package core

import "fmt"

// AddVertex appends one vertex and returns its dense handle.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex() VertexID {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := VertexID(len(g.out))
	g.out = append(g.out, nil)
	if g.directed {
		g.in = append(g.in, nil)
	}

	return id
}

// HasVertex reports whether id was issued by this graph.
// Complexity: O(1)
func (g *Graph) HasVertex(id VertexID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return id >= 0 && int(id) < len(g.out)
}

// AddEdge connects src to tgt and returns the new edge handle. Undirected
// graphs mirror the adjacency both ways; the recorded Source and Target
// keep the caller's order. A self-loop in an undirected graph counts twice
// toward its vertex degree.
//
// Returns ErrVertexNotFound, ErrLoopNotAllowed, or ErrParallelEdge.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(src, tgt VertexID) (EdgeID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := VertexID(len(g.out))
	if src < 0 || src >= n {
		return -1, fmt.Errorf("%w: source %d", ErrVertexNotFound, src)
	}
	if tgt < 0 || tgt >= n {
		return -1, fmt.Errorf("%w: target %d", ErrVertexNotFound, tgt)
	}
	if g.noLoops && src == tgt {
		return -1, ErrLoopNotAllowed
	}
	pair := g.pairKey(src, tgt)
	if g.noParallel && g.pairs[pair] > 0 {
		return -1, ErrParallelEdge
	}

	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, Edge{ID: id, Source: src, Target: tgt})
	g.pairs[pair]++

	g.out[src] = append(g.out[src], incidence{to: tgt, id: id})
	switch {
	case g.directed:
		g.in[tgt] = append(g.in[tgt], incidence{to: src, id: id})
	default:
		g.out[tgt] = append(g.out[tgt], incidence{to: src, id: id})
	}

	return id, nil
}

// pairKey normalizes an endpoint pair; undirected pairs collapse direction.
func (g *Graph) pairKey(src, tgt VertexID) [2]VertexID {
	if !g.directed && tgt < src {
		return [2]VertexID{tgt, src}
	}

	return [2]VertexID{src, tgt}
}

// HasEdge reports whether at least one edge connects src to tgt. In
// undirected graphs the query direction does not matter.
// Complexity: O(1)
func (g *Graph) HasEdge(src, tgt VertexID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.pairs[g.pairKey(src, tgt)] > 0
}

// Endpoints returns the recorded endpoints of e.
// Returns ErrEdgeNotFound for a handle this graph never issued.
// Complexity: O(1)
func (g *Graph) Endpoints(e EdgeID) (src, tgt VertexID, err error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if e < 0 || int(e) >= len(g.edges) {
		return 0, 0, fmt.Errorf("%w: %d", ErrEdgeNotFound, e)
	}
	rec := g.edges[e]

	return rec.Source, rec.Target, nil
}

// Directed reports the graph's orientation. Flags are immutable after
// NewGraph, so no lock is taken.
func (g *Graph) Directed() bool { return g.directed }

// LoopsAllowed reports whether self-loops are accepted.
func (g *Graph) LoopsAllowed() bool { return !g.noLoops }

// ParallelEdgesAllowed reports whether duplicate endpoint pairs are accepted.
func (g *Graph) ParallelEdgesAllowed() bool { return !g.noParallel }

// VertexCount returns the number of vertices.
// Complexity: O(1)
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.out)
}

// EdgeCount returns the number of edges.
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Vertices returns all vertex handles in insertion order.
// Complexity: O(V)
func (g *Graph) Vertices() []VertexID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]VertexID, len(g.out))
	for i := range ids {
		ids[i] = VertexID(i)
	}

	return ids
}

// Edges returns a copy of all edges in insertion order.
// Complexity: O(E)
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]Edge(nil), g.edges...)
}

// Neighbors returns the far endpoint of every edge incident to id, in edge
// insertion order, one entry per edge. Parallel edges repeat their
// endpoint; in directed graphs only outgoing edges are followed.
// Returns ErrVertexNotFound.
// Complexity: O(deg(id))
func (g *Graph) Neighbors(id VertexID) ([]VertexID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if id < 0 || int(id) >= len(g.out) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}
	res := make([]VertexID, len(g.out[id]))
	for i, inc := range g.out[id] {
		res[i] = inc.to
	}

	return res, nil
}

// Degree returns the degree of id: out+in for directed graphs, the
// incidence count for undirected ones (self-loops count twice).
// Returns ErrVertexNotFound.
// Complexity: O(1)
func (g *Graph) Degree(id VertexID) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if id < 0 || int(id) >= len(g.out) {
		return 0, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}
	d := len(g.out[id])
	if g.directed {
		d += len(g.in[id])
	}

	return d, nil
}

// OutDegree returns the outgoing edge count of id. In undirected graphs it
// equals Degree.
// Returns ErrVertexNotFound.
// Complexity: O(1)
func (g *Graph) OutDegree(id VertexID) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if id < 0 || int(id) >= len(g.out) {
		return 0, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}

	return len(g.out[id]), nil
}

// InDegree returns the incoming edge count of id. In undirected graphs it
// equals Degree.
// Returns ErrVertexNotFound.
// Complexity: O(1)
func (g *Graph) InDegree(id VertexID) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if id < 0 || int(id) >= len(g.out) {
		return 0, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}
	if !g.directed {
		return len(g.out[id]), nil
	}

	return len(g.in[id]), nil
}

// Clear removes every vertex and edge while keeping the configuration.
// All previously issued handles become invalid.
// Complexity: O(1)
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.edges, g.out, g.in = nil, nil, nil
	g.pairs = make(map[[2]VertexID]int)
}

// GraphStats is a read-only snapshot of configuration and catalog sizes.
type GraphStats struct {
	Directed         bool
	LoopsAllowed     bool
	ParallelsAllowed bool

	VertexCount int
	EdgeCount   int
	SelfLoops   int
}

// Stats scans the edge catalog once and returns a consistent snapshot.
// Complexity: O(E)
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	st := GraphStats{
		Directed:         g.directed,
		LoopsAllowed:     !g.noLoops,
		ParallelsAllowed: !g.noParallel,
		VertexCount:      len(g.out),
		EdgeCount:        len(g.edges),
	}
	for _, e := range g.edges {
		if e.Source == e.Target {
			st.SelfLoops++
		}
	}

	return st
}
