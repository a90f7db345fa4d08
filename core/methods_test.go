package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grafio/core"
)

func TestNewGraph_Defaults(t *testing.T) {
	g := core.NewGraph()
	assert.False(t, g.Directed())
	assert.True(t, g.LoopsAllowed())
	assert.True(t, g.ParallelEdgesAllowed())
	assert.Zero(t, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
}

func TestGraph_AddVertex_DenseHandles(t *testing.T) {
	g := core.NewGraph()
	for want := 0; want < 5; want++ {
		assert.Equal(t, core.VertexID(want), g.AddVertex())
	}
	assert.Equal(t, 5, g.VertexCount())
	assert.True(t, g.HasVertex(0))
	assert.True(t, g.HasVertex(4))
	assert.False(t, g.HasVertex(5))
	assert.False(t, g.HasVertex(-1))
}

func TestGraph_AddEdge_Directed(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	a, b := g.AddVertex(), g.AddVertex()

	e, err := g.AddEdge(a, b)
	require.NoError(t, err)
	assert.Equal(t, core.EdgeID(0), e)

	src, tgt, err := g.Endpoints(e)
	require.NoError(t, err)
	assert.Equal(t, a, src)
	assert.Equal(t, b, tgt)

	assert.True(t, g.HasEdge(a, b))
	assert.False(t, g.HasEdge(b, a), "direction matters in a directed graph")
}

func TestGraph_AddEdge_Undirected_Mirrors(t *testing.T) {
	g := core.NewGraph()
	a, b := g.AddVertex(), g.AddVertex()

	_, err := g.AddEdge(a, b)
	require.NoError(t, err)
	assert.True(t, g.HasEdge(a, b))
	assert.True(t, g.HasEdge(b, a))

	da, err := g.Degree(a)
	require.NoError(t, err)
	db, err := g.Degree(b)
	require.NoError(t, err)
	assert.Equal(t, 1, da)
	assert.Equal(t, 1, db)
}

func TestGraph_AddEdge_UnknownEndpoint(t *testing.T) {
	g := core.NewGraph()
	a := g.AddVertex()

	_, err := g.AddEdge(a, 17)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.AddEdge(-1, a)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	assert.Zero(t, g.EdgeCount())
}

func TestGraph_SelfLoops(t *testing.T) {
	g := core.NewGraph()
	a := g.AddVertex()

	_, err := g.AddEdge(a, a)
	require.NoError(t, err)
	d, err := g.Degree(a)
	require.NoError(t, err)
	assert.Equal(t, 2, d, "an undirected self-loop counts twice")

	strict := core.NewGraph(core.WithoutLoops())
	b := strict.AddVertex()
	_, err = strict.AddEdge(b, b)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
}

func TestGraph_ParallelEdges(t *testing.T) {
	g := core.NewGraph()
	a, b := g.AddVertex(), g.AddVertex()
	_, err := g.AddEdge(a, b)
	require.NoError(t, err)
	_, err = g.AddEdge(a, b)
	require.NoError(t, err, "parallel edges are allowed by default")
	assert.Equal(t, 2, g.EdgeCount())

	strict := core.NewGraph(core.WithoutParallelEdges())
	c, d := strict.AddVertex(), strict.AddVertex()
	_, err = strict.AddEdge(c, d)
	require.NoError(t, err)
	_, err = strict.AddEdge(c, d)
	assert.ErrorIs(t, err, core.ErrParallelEdge)
	// the reversed pair is the same pair in an undirected graph
	_, err = strict.AddEdge(d, c)
	assert.ErrorIs(t, err, core.ErrParallelEdge)

	directed := core.NewGraph(core.WithDirected(true), core.WithoutParallelEdges())
	x, y := directed.AddVertex(), directed.AddVertex()
	_, err = directed.AddEdge(x, y)
	require.NoError(t, err)
	_, err = directed.AddEdge(y, x)
	require.NoError(t, err, "opposite direction is a distinct pair when directed")
}

func TestGraph_NeighborsAndDegrees(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	a, b, c := g.AddVertex(), g.AddVertex(), g.AddVertex()
	_, err := g.AddEdge(a, b)
	require.NoError(t, err)
	_, err = g.AddEdge(a, c)
	require.NoError(t, err)
	_, err = g.AddEdge(b, a)
	require.NoError(t, err)

	nb, err := g.Neighbors(a)
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{b, c}, nb, "outgoing only, insertion order")

	out, err := g.OutDegree(a)
	require.NoError(t, err)
	in, err := g.InDegree(a)
	require.NoError(t, err)
	d, err := g.Degree(a)
	require.NoError(t, err)
	assert.Equal(t, 2, out)
	assert.Equal(t, 1, in)
	assert.Equal(t, 3, d)

	_, err = g.Neighbors(42)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Degree(42)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_EdgesKeepInsertionOrder(t *testing.T) {
	g := core.NewGraph()
	a, b, c := g.AddVertex(), g.AddVertex(), g.AddVertex()
	first, err := g.AddEdge(c, a)
	require.NoError(t, err)
	second, err := g.AddEdge(b, c)
	require.NoError(t, err)

	edges := g.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, core.Edge{ID: first, Source: c, Target: a}, edges[0])
	assert.Equal(t, core.Edge{ID: second, Source: b, Target: c}, edges[1])

	assert.Equal(t, []core.VertexID{0, 1, 2}, g.Vertices())
}

func TestGraph_Endpoints_NotFound(t *testing.T) {
	g := core.NewGraph()
	_, _, err := g.Endpoints(0)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestGraph_Clear(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	a, b := g.AddVertex(), g.AddVertex()
	_, err := g.AddEdge(a, b)
	require.NoError(t, err)

	g.Clear()
	assert.Zero(t, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
	assert.True(t, g.Directed(), "configuration survives Clear")
	assert.False(t, g.HasEdge(a, b))
}

func TestGraph_Stats(t *testing.T) {
	g := core.NewGraph()
	a, b := g.AddVertex(), g.AddVertex()
	_, err := g.AddEdge(a, b)
	require.NoError(t, err)
	_, err = g.AddEdge(a, a)
	require.NoError(t, err)

	st := g.Stats()
	assert.Equal(t, 2, st.VertexCount)
	assert.Equal(t, 2, st.EdgeCount)
	assert.Equal(t, 1, st.SelfLoops)
	assert.False(t, st.Directed)
	assert.True(t, st.LoopsAllowed)
	assert.True(t, st.ParallelsAllowed)
}
