package graphml_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grafio/graphml"
	"github.com/katalvlaran/grafio/prop"
)

func TestGraphMutator_TypedDispatch(t *testing.T) {
	_, gm := newMemMutator(true)
	assert.True(t, gm.Directed())

	v := gm.AddVertex()
	w := gm.AddVertex()
	e, inserted := gm.AddEdge(v, w)
	require.True(t, inserted)

	require.NoError(t, gm.SetVertexProperty("mass", v, "1.5", "double"))
	require.NoError(t, gm.SetEdgeProperty("len", e, "3", "int"))
	require.NoError(t, gm.SetGraphProperty("title", "demo", "string"))

	f, ok := mustValue(t, gm.Maps(), "mass", prop.DomainVertex, v).Float64()
	require.True(t, ok)
	assert.Equal(t, 1.5, f)

	n, ok := mustValue(t, gm.Maps(), "len", prop.DomainEdge, e).Int32()
	require.True(t, ok)
	assert.Equal(t, int32(3), n)

	m, ok := gm.Maps().Lookup("title", prop.DomainGraph)
	require.True(t, ok)
	gv, ok := m.Graph()
	require.True(t, ok)
	s, _ := gv.Str()
	assert.Equal(t, "demo", s)
}

func TestGraphMutator_ErrorKinds(t *testing.T) {
	_, gm := newMemMutator(false)
	v := gm.AddVertex()

	err := gm.SetVertexProperty("x", v, "1", "quaternion")
	assert.ErrorIs(t, err, graphml.ErrTypeUnknown)

	err = gm.SetVertexProperty("x", v, "abc", "int")
	assert.ErrorIs(t, err, graphml.ErrValueParse)

	// same name, conflicting kind trips the property store
	require.NoError(t, gm.SetVertexProperty("x", v, "1", "int"))
	err = gm.SetVertexProperty("x", v, "0x1p+00", "double")
	assert.ErrorIs(t, err, graphml.ErrHostReject)
}
