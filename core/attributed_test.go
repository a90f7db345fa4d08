package core_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grafio/attr"
	"github.com/katalvlaran/grafio/core"
	"github.com/katalvlaran/grafio/graphml"
)

func TestAttributed_WriteReadRoundTrip(t *testing.T) {
	a := core.NewAttributed(core.WithDirected(true))
	v0 := a.Graph.AddVertex()
	v1 := a.Graph.AddVertex()
	e, err := a.Graph.AddEdge(v0, v1)
	require.NoError(t, err)

	require.NoError(t, a.SetGraphValue("title", attr.String("demo")))
	require.NoError(t, a.SetVertexValue("mass", v0, attr.Float64(1.5)))
	require.NoError(t, a.SetVertexValue("mass", v1, attr.Float64(2.25)))
	require.NoError(t, a.SetEdgeValue("len", e, attr.Int64(7)))

	var buf bytes.Buffer
	require.NoError(t, a.WriteGraphML(&buf))

	b := core.NewAttributed(core.WithDirected(true))
	require.NoError(t, b.ReadGraphML(&buf, false))
	assert.Equal(t, 2, b.Graph.VertexCount())
	assert.Equal(t, 1, b.Graph.EdgeCount())

	gv, ok := b.GraphValue("title")
	require.True(t, ok)
	s, _ := gv.Str()
	assert.Equal(t, "demo", s)

	mv, ok := b.VertexValue("mass", 0)
	require.True(t, ok)
	f, _ := mv.Float64()
	assert.Equal(t, 1.5, f)

	ev, ok := b.EdgeValue("len", 0)
	require.True(t, ok)
	n, _ := ev.Int64()
	assert.Equal(t, int64(7), n)

	// writing again reproduces the bytes exactly
	var again bytes.Buffer
	require.NoError(t, b.WriteGraphML(&again))
	var original bytes.Buffer
	require.NoError(t, a.WriteGraphML(&original))
	assert.Equal(t, original.String(), again.String())
}

func TestAttributed_StoredIDsSurviveRoundTrip(t *testing.T) {
	doc := `<graphml>
  <graph edgedefault="undirected">
    <node id="left"/>
    <node id="right"/>
    <edge id="bridge" source="left" target="right"/>
  </graph>
</graphml>`
	a := core.NewAttributed()
	require.NoError(t, a.ReadGraphML(strings.NewReader(doc), true))

	var buf bytes.Buffer
	require.NoError(t, a.WriteGraphML(&buf))
	out := buf.String()
	assert.Contains(t, out, `<node id="left">`)
	assert.Contains(t, out, `<node id="right">`)
	assert.Contains(t, out, `<edge id="bridge" source="left" target="right">`)
	assert.Contains(t, out, `parse.nodeids="free"`)
	assert.Contains(t, out, `parse.edgeids="free"`)
}

func TestAttributed_ParallelRejectionIsSilent(t *testing.T) {
	doc := `<graphml>
  <graph edgedefault="undirected" parse.order="nodesfirst">
    <node id="a"/>
    <node id="b"/>
    <edge source="a" target="b"/>
    <edge source="b" target="a"/>
  </graph>
</graphml>`
	a := core.NewAttributed(core.WithoutParallelEdges())
	require.NoError(t, a.ReadGraphML(strings.NewReader(doc), false))
	assert.Equal(t, 1, a.Graph.EdgeCount(), "the duplicate edge is skipped, not fatal")
}

func TestAttributed_DirectednessMismatch(t *testing.T) {
	doc := `<graphml><graph edgedefault="directed"></graph></graphml>`
	a := core.NewAttributed() // undirected host
	err := a.ReadGraphML(strings.NewReader(doc), false)
	require.Error(t, err)
	assert.ErrorIs(t, err, graphml.ErrSchema)
	assert.Zero(t, a.Graph.VertexCount())
}

func TestAttributed_CompressedRoundTrip(t *testing.T) {
	a := core.NewAttributed()
	v0 := a.Graph.AddVertex()
	require.NoError(t, a.SetVertexValue("x", v0, attr.Int32(9)))

	for _, c := range []graphml.Compression{graphml.CompressGzip, graphml.CompressZstd} {
		var buf bytes.Buffer
		require.NoError(t, a.WriteGraphMLCompressed(&buf, c))

		b := core.NewAttributed()
		require.NoError(t, b.ReadGraphMLAuto(&buf, false), "compression %s", c)
		assert.Equal(t, 1, b.Graph.VertexCount())
		xv, ok := b.VertexValue("x", 0)
		require.True(t, ok)
		n, _ := xv.Int32()
		assert.Equal(t, int32(9), n)
	}
}

func TestAttributed_ViewRejectsForeignHandles(t *testing.T) {
	a := core.NewAttributed()
	a.Graph.AddVertex()

	v := a.View()
	assert.Equal(t, 0, v.VertexIndex(core.VertexID(0)))
	assert.Equal(t, -1, v.VertexIndex("not a handle"))
	assert.Equal(t, -1, v.VertexIndex(core.VertexID(5)))
}

func TestAttributed_Stats(t *testing.T) {
	a := core.NewAttributed()
	v0 := a.Graph.AddVertex()
	require.NoError(t, a.SetVertexValue("x", v0, attr.Int32(1)))
	require.NoError(t, a.SetGraphValue("title", attr.String("s")))

	st := a.Stats()
	assert.Equal(t, 1, st.VertexCount)
	assert.Equal(t, 2, st.PropertyMaps)
}

func TestAttributed_SugarKindConflict(t *testing.T) {
	a := core.NewAttributed()
	v0 := a.Graph.AddVertex()
	require.NoError(t, a.SetVertexValue("x", v0, attr.Int32(1)))
	err := a.SetVertexValue("x", v0, attr.Float64(2))
	assert.Error(t, err, "same name must keep one kind")
}
