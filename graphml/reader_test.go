package graphml_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grafio/attr"
	"github.com/katalvlaran/grafio/graphml"
	"github.com/katalvlaran/grafio/prop"
)

// readString parses doc into a fresh memGraph and returns it with the
// populated property maps.
func readString(doc string, directed, storeIDs bool) (*memGraph, *prop.Maps, error) {
	g, gm := newMemMutator(directed)
	err := graphml.Read(strings.NewReader(doc), gm, storeIDs)

	return g, gm.Maps(), err
}

// mustValue fetches one typed entity value or fails the test.
func mustValue(t *testing.T, maps *prop.Maps, name string, d prop.Domain, entity any) attr.Value {
	t.Helper()
	m, ok := maps.Lookup(name, d)
	require.True(t, ok, "map %q/%s missing", name, d)
	v, ok := m.Get(entity)
	require.True(t, ok, "no value for entity %v in %q", entity, name)

	return v
}

func TestRead_MinimalDocument(t *testing.T) {
	g, maps, err := readString(`<graphml><graph edgedefault="undirected"></graph></graphml>`, false, false)
	require.NoError(t, err)
	assert.Empty(t, g.vertices)
	assert.Zero(t, maps.Len())
}

func TestRead_NodesAndEdges(t *testing.T) {
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<graphml xmlns="http://graphml.graphdrawing.org/xmlns">
  <graph id="G" edgedefault="directed" parse.nodeids="free" parse.edgeids="canonical" parse.order="nodesfirst">
    <node id="a"/>
    <node id="b"/>
    <node id="c"/>
    <edge source="a" target="b"/>
    <edge source="b" target="c"/>
    <edge source="c" target="c"/>
  </graph>
</graphml>`
	g, _, err := readString(doc, true, false)
	require.NoError(t, err)
	require.Len(t, g.vertices, 3)
	require.Len(t, g.edges, 3)
	assert.Equal(t, 0, g.edges[0].Source)
	assert.Equal(t, 1, g.edges[0].Target)
	// self loop survives
	assert.Equal(t, 2, g.edges[2].Source)
	assert.Equal(t, 2, g.edges[2].Target)
}

func TestRead_TypedData(t *testing.T) {
	doc := `<graphml>
  <key id="k0" for="graph" attr.name="title" attr.type="string" />
  <key id="k1" for="node" attr.name="mass" attr.type="double" />
  <key id="k2" for="node" attr.name="count" attr.type="long" />
  <key id="k3" for="edge" attr.name="active" attr.type="boolean" />
  <graph edgedefault="undirected">
    <data key="k0">demo graph</data>
    <node id="a"><data key="k1">1.5</data><data key="k2">42</data></node>
    <node id="b"><data key="k1">0x1.2p+01</data></node>
    <edge source="a" target="b"><data key="k3">1</data></edge>
  </graph>
</graphml>`
	g, maps, err := readString(doc, false, false)
	require.NoError(t, err)
	require.Len(t, g.vertices, 2)
	require.Len(t, g.edges, 1)

	title, ok := maps.Lookup("title", prop.DomainGraph)
	require.True(t, ok)
	gv, ok := title.Graph()
	require.True(t, ok)
	s, ok := gv.Str()
	require.True(t, ok)
	assert.Equal(t, "demo graph", s)

	f, ok := mustValue(t, maps, "mass", prop.DomainVertex, 0).Float64()
	require.True(t, ok)
	assert.Equal(t, 1.5, f)

	// hexadecimal float text parses the same as decimal
	f, ok = mustValue(t, maps, "mass", prop.DomainVertex, 1).Float64()
	require.True(t, ok)
	assert.Equal(t, 2.25, f)

	n, ok := mustValue(t, maps, "count", prop.DomainVertex, 0).Int64()
	require.True(t, ok)
	assert.Equal(t, int64(42), n)

	// "boolean" is the uint8 alias on input
	u, ok := mustValue(t, maps, "active", prop.DomainEdge, 0).Uint8()
	require.True(t, ok)
	assert.Equal(t, uint8(1), u)
}

func TestRead_VectorData(t *testing.T) {
	doc := `<graphml>
  <key id="k0" for="node" attr.name="pos" attr.type="vector_double" />
  <key id="k1" for="node" attr.name="tags" attr.type="vector_string" />
  <graph edgedefault="undirected">
    <node id="a">
      <data key="k0">0x1p+00 0x1.8p+00</data>
      <data key="k1">alpha beta</data>
    </node>
  </graph>
</graphml>`
	_, maps, err := readString(doc, false, false)
	require.NoError(t, err)

	vd, ok := mustValue(t, maps, "pos", prop.DomainVertex, 0).Float64Vector()
	require.True(t, ok)
	assert.Equal(t, []float64{1, 1.5}, vd)

	vs, ok := mustValue(t, maps, "tags", prop.DomainVertex, 0).StringVector()
	require.True(t, ok)
	assert.Equal(t, []string{"alpha", "beta"}, vs)
}

func TestRead_VectorFloatAlias(t *testing.T) {
	doc := `<graphml>
  <key id="k0" for="node" attr.name="pos" attr.type="vector_float" />
  <graph edgedefault="undirected">
    <node id="a"><data key="k0">1 2 3</data></node>
  </graph>
</graphml>`
	_, maps, err := readString(doc, false, false)
	require.NoError(t, err)

	vd, ok := mustValue(t, maps, "pos", prop.DomainVertex, 0).Float64Vector()
	require.True(t, ok)
	assert.Equal(t, []float64{1, 2, 3}, vd)
}

func TestRead_Defaults(t *testing.T) {
	doc := `<graphml>
  <key id="k0" for="node" attr.name="weight" attr.type="double"><default>0x1p+00</default></key>
  <key id="k1" for="graph" attr.name="name" attr.type="string"><default>untitled</default></key>
  <graph edgedefault="undirected">
    <node id="a"/>
    <node id="b"><data key="k0">0x1.8p+00</data></node>
  </graph>
</graphml>`
	_, maps, err := readString(doc, false, false)
	require.NoError(t, err)

	// a carries the default, b its explicit value
	f, ok := mustValue(t, maps, "weight", prop.DomainVertex, 0).Float64()
	require.True(t, ok)
	assert.Equal(t, 1.0, f)
	f, ok = mustValue(t, maps, "weight", prop.DomainVertex, 1).Float64()
	require.True(t, ok)
	assert.Equal(t, 1.5, f)

	name, ok := maps.Lookup("name", prop.DomainGraph)
	require.True(t, ok)
	gv, ok := name.Graph()
	require.True(t, ok)
	s, _ := gv.Str()
	assert.Equal(t, "untitled", s)
}

func TestRead_LastDataWins(t *testing.T) {
	doc := `<graphml>
  <key id="k0" for="node" attr.name="rank" attr.type="int" />
  <graph edgedefault="undirected">
    <node id="a"><data key="k0">1</data><data key="k0">2</data></node>
  </graph>
</graphml>`
	_, maps, err := readString(doc, false, false)
	require.NoError(t, err)

	n, ok := mustValue(t, maps, "rank", prop.DomainVertex, 0).Int32()
	require.True(t, ok)
	assert.Equal(t, int32(2), n)
}

func TestRead_KeyForAll(t *testing.T) {
	doc := `<graphml>
  <key id="k0" for="all" attr.name="label" attr.type="string" />
  <graph edgedefault="undirected">
    <data key="k0">g</data>
    <node id="a"><data key="k0">v</data></node>
    <node id="b"/>
    <edge source="a" target="b"><data key="k0">e</data></edge>
  </graph>
</graphml>`
	_, maps, err := readString(doc, false, false)
	require.NoError(t, err)

	m, ok := maps.Lookup("label", prop.DomainGraph)
	require.True(t, ok)
	gv, ok := m.Graph()
	require.True(t, ok)
	s, _ := gv.Str()
	assert.Equal(t, "g", s)

	s, _ = mustValue(t, maps, "label", prop.DomainVertex, 0).Str()
	assert.Equal(t, "v", s)
	s, _ = mustValue(t, maps, "label", prop.DomainEdge, 0).Str()
	assert.Equal(t, "e", s)
}

func TestRead_StoreIDs(t *testing.T) {
	doc := `<graphml>
  <graph edgedefault="directed">
    <node id="first"/>
    <node id="second"/>
    <edge id="link" source="first" target="second"/>
    <edge source="second" target="first"/>
  </graph>
</graphml>`
	_, maps, err := readString(doc, true, true)
	require.NoError(t, err)

	s, _ := mustValue(t, maps, prop.VertexIDName, prop.DomainVertex, 0).Str()
	assert.Equal(t, "first", s)
	s, _ = mustValue(t, maps, prop.VertexIDName, prop.DomainVertex, 1).Str()
	assert.Equal(t, "second", s)

	// only the edge that had an id is recorded
	em, ok := maps.Lookup(prop.EdgeIDName, prop.DomainEdge)
	require.True(t, ok)
	assert.Equal(t, 1, em.Len())
	s, _ = mustValue(t, maps, prop.EdgeIDName, prop.DomainEdge, 0).Str()
	assert.Equal(t, "link", s)
}

func TestRead_StoreIDsOff(t *testing.T) {
	doc := `<graphml>
  <graph edgedefault="undirected">
    <node id="a"/>
  </graph>
</graphml>`
	_, maps, err := readString(doc, false, false)
	require.NoError(t, err)

	_, ok := maps.Lookup(prop.VertexIDName, prop.DomainVertex)
	assert.False(t, ok)
	_, ok = maps.Lookup(prop.EdgeIDName, prop.DomainEdge)
	assert.False(t, ok)
}

func TestRead_ForwardReference_Buffered(t *testing.T) {
	// without parse.order the edge may precede its endpoints
	doc := `<graphml>
  <key id="k0" for="edge" attr.name="w" attr.type="double" />
  <graph edgedefault="undirected">
    <edge source="a" target="b"><data key="k0">0x1p+01</data></edge>
    <node id="a"/>
    <node id="b"/>
  </graph>
</graphml>`
	g, maps, err := readString(doc, false, false)
	require.NoError(t, err)
	require.Len(t, g.edges, 1)

	f, ok := mustValue(t, maps, "w", prop.DomainEdge, 0).Float64()
	require.True(t, ok)
	assert.Equal(t, 2.0, f)
}

func TestRead_NodesFirst_RejectsForwardReference(t *testing.T) {
	doc := `<graphml>
  <graph edgedefault="undirected" parse.order="nodesfirst">
    <node id="a"/>
    <edge source="a" target="b"/>
    <node id="b"/>
  </graph>
</graphml>`
	_, _, err := readString(doc, false, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, graphml.ErrSchema)
	assert.Contains(t, err.Error(), `unknown target "b"`)
}

func TestRead_UnresolvedEndpoint_CitesEdgePosition(t *testing.T) {
	doc := `<graphml>
<graph edgedefault="undirected">
<node id="a"/>
<edge source="a" target="ghost"/>
</graph>
</graphml>`
	_, _, err := readString(doc, false, false)
	require.Error(t, err)
	require.ErrorIs(t, err, graphml.ErrSchema)

	var ge *graphml.Error
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, 4, ge.Line, "position must cite the <edge>, not </graph>")
	assert.Contains(t, ge.Msg, `unresolved target "ghost"`)
}

func TestRead_DirectednessMismatch_LeavesHostUntouched(t *testing.T) {
	doc := `<graphml>
  <graph edgedefault="directed">
    <node id="a"/>
  </graph>
</graphml>`
	g, _, err := readString(doc, false, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, graphml.ErrSchema)
	assert.Empty(t, g.vertices, "mismatch must fail before any mutation")
}

func TestRead_RejectedEdge_DataDiscarded(t *testing.T) {
	doc := `<graphml>
  <key id="k0" for="edge" attr.name="w" attr.type="double" />
  <graph edgedefault="undirected" parse.order="nodesfirst">
    <node id="a"/>
    <node id="b"/>
    <edge source="a" target="b"><data key="k0">0x1p+00</data></edge>
    <edge source="b" target="a"><data key="k0">0x1p+03</data></edge>
  </graph>
</graphml>`
	g := newMemGraph(false)
	g.noMulti = true
	gm := graphml.NewGraphMutator(g, prop.NewMaps())
	err := graphml.Read(strings.NewReader(doc), gm, false)
	require.NoError(t, err)
	require.Len(t, g.edges, 1)

	// only the accepted edge's value landed
	f, ok := mustValue(t, gm.Maps(), "w", prop.DomainEdge, 0).Float64()
	require.True(t, ok)
	assert.Equal(t, 1.0, f)
	m, _ := gm.Maps().Lookup("w", prop.DomainEdge)
	assert.Equal(t, 1, m.Len())
}

func TestRead_RejectedEdge_DataStillValidated(t *testing.T) {
	// an undeclared key inside a rejected edge is still a schema violation
	doc := `<graphml>
  <graph edgedefault="undirected" parse.order="nodesfirst">
    <node id="a"/>
    <node id="b"/>
    <edge source="a" target="b"/>
    <edge source="b" target="a"><data key="nope">1</data></edge>
  </graph>
</graphml>`
	g := newMemGraph(false)
	g.noMulti = true
	gm := graphml.NewGraphMutator(g, prop.NewMaps())
	err := graphml.Read(strings.NewReader(doc), gm, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, graphml.ErrSchema)
}

func TestRead_SchemaViolations(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want string
	}{
		{"root not graphml", `<foo></foo>`, "root element"},
		{"no graph", `<graphml></graphml>`, "no <graph>"},
		{"two graphs", `<graphml><graph edgedefault="undirected"></graph><graph edgedefault="undirected"></graph></graphml>`, "multiple <graph>"},
		{"key after graph", `<graphml><graph edgedefault="undirected"></graph><key id="k" for="node" attr.name="x" attr.type="int" /></graphml>`, "after <graph>"},
		{"edgedefault missing", `<graphml><graph></graph></graphml>`, "edgedefault"},
		{"edgedefault invalid", `<graphml><graph edgedefault="both"></graph></graphml>`, "edgedefault"},
		{"parse.order invalid", `<graphml><graph edgedefault="undirected" parse.order="edgesfirst"></graph></graphml>`, "parse.order"},
		{"key without id", `<graphml><key for="node" attr.name="x" attr.type="int" /><graph edgedefault="undirected"></graph></graphml>`, "without id"},
		{"key without for", `<graphml><key id="k" attr.name="x" attr.type="int" /><graph edgedefault="undirected"></graph></graphml>`, "without for"},
		{"key without name", `<graphml><key id="k" for="node" attr.type="int" /><graph edgedefault="undirected"></graph></graphml>`, "without attr.name"},
		{"key without type", `<graphml><key id="k" for="node" attr.name="x" /><graph edgedefault="undirected"></graph></graphml>`, "without attr.type"},
		{"key bad for", `<graphml><key id="k" for="port" attr.name="x" attr.type="int" /><graph edgedefault="undirected"></graph></graphml>`, "for="},
		{"duplicate key id", `<graphml><key id="k" for="node" attr.name="x" attr.type="int" /><key id="k" for="edge" attr.name="y" attr.type="int" /><graph edgedefault="undirected"></graph></graphml>`, "duplicate key"},
		{"duplicate node id", `<graphml><graph edgedefault="undirected"><node id="a"/><node id="a"/></graph></graphml>`, "duplicate node"},
		{"node without id", `<graphml><graph edgedefault="undirected"><node/></graph></graphml>`, "without id"},
		{"edge without source", `<graphml><graph edgedefault="undirected"><node id="a"/><edge target="a"/></graph></graphml>`, "without source"},
		{"edge without target", `<graphml><graph edgedefault="undirected"><node id="a"/><edge source="a"/></graph></graphml>`, "without target"},
		{"undeclared key", `<graphml><graph edgedefault="undirected"><node id="a"><data key="k">1</data></node></graph></graphml>`, "undeclared key"},
		{"data without key", `<graphml><graph edgedefault="undirected"><node id="a"><data>1</data></node></graph></graphml>`, "without key"},
		{"wrong domain", `<graphml><key id="k" for="edge" attr.name="x" attr.type="int" /><graph edgedefault="undirected"><node id="a"><data key="k">1</data></node></graph></graphml>`, "not declared for"},
		{"foreign element", `<graphml><graph edgedefault="undirected"><port name="p"/></graph></graphml>`, "unexpected element"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := readString(tc.doc, false, false)
			require.Error(t, err)
			assert.ErrorIs(t, err, graphml.ErrSchema)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestRead_TypeUnknown_AtDeclaration(t *testing.T) {
	// the bad declaration aborts before any entity exists
	doc := `<graphml>
  <key id="k0" for="node" attr.name="x" attr.type="complex" />
  <graph edgedefault="undirected">
    <node id="a"/>
  </graph>
</graphml>`
	g, _, err := readString(doc, false, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, graphml.ErrTypeUnknown)
	assert.Contains(t, err.Error(), `unrecognized type "complex" for key "x"`)
	assert.Empty(t, g.vertices)
}

func TestRead_ValueParse(t *testing.T) {
	doc := `<graphml>
  <key id="k0" for="node" attr.name="n" attr.type="int" />
  <graph edgedefault="undirected">
    <node id="a"><data key="k0">abc</data></node>
  </graph>
</graphml>`
	_, _, err := readString(doc, false, false)
	require.Error(t, err)
	require.ErrorIs(t, err, graphml.ErrValueParse)

	var ge *graphml.Error
	require.ErrorAs(t, err, &ge)
	assert.Contains(t, ge.Msg, `invalid value "abc" for key "n" of type "int"`)
	assert.Equal(t, 4, ge.Line)
}

func TestRead_ValueParse_WhitespaceIsNotTrimmed(t *testing.T) {
	// scalar lexical forms are verbatim; padding fails the parse
	doc := `<graphml>
  <key id="k0" for="node" attr.name="n" attr.type="int" />
  <graph edgedefault="undirected">
    <node id="a"><data key="k0"> 1</data></node>
  </graph>
</graphml>`
	_, _, err := readString(doc, false, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, graphml.ErrValueParse)
}

func TestRead_DefaultValueParse(t *testing.T) {
	// a broken <default> surfaces when it is first applied
	doc := `<graphml>
  <key id="k0" for="node" attr.name="n" attr.type="int"><default>oops</default></key>
  <graph edgedefault="undirected">
    <node id="a"/>
  </graph>
</graphml>`
	_, _, err := readString(doc, false, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, graphml.ErrValueParse)
}

func TestRead_EscapedText(t *testing.T) {
	doc := `<graphml>
  <key id="k0" for="node" attr.name="label" attr.type="string" />
  <graph edgedefault="undirected">
    <node id="a"><data key="k0">a&amp;b &lt;c&gt; &quot;d&quot; &#x1;</data></node>
  </graph>
</graphml>`
	_, maps, err := readString(doc, false, false)
	require.NoError(t, err)

	s, _ := mustValue(t, maps, "label", prop.DomainVertex, 0).Str()
	assert.Equal(t, "a&b <c> \"d\" \x01", s)
}

func TestRead_MalformedXML(t *testing.T) {
	for _, doc := range []string{
		``,
		`<graphml><graph edgedefault="undirected">`,
		`<graphml><graph edgedefault="undirected"></wrong></graphml>`,
		`not xml at all`,
	} {
		_, _, err := readString(doc, false, false)
		require.Error(t, err, "doc %q", doc)
		assert.ErrorIs(t, err, graphml.ErrXML, "doc %q", doc)
	}
}

// brokenReader yields a fragment and then fails.
type brokenReader struct {
	data string
	done bool
}

func (b *brokenReader) Read(p []byte) (int, error) {
	if b.done {
		return 0, errors.New("connection reset")
	}
	b.done = true
	n := copy(p, b.data)

	return n, nil
}

func TestRead_IOFailure(t *testing.T) {
	g, gm := newMemMutator(false)
	err := graphml.Read(&brokenReader{data: `<graphml><graph edgedefault="undirected">`}, gm, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, graphml.ErrIO)
	assert.NotErrorIs(t, err, graphml.ErrXML)
	_ = g
}

func TestRead_HostRejectPosition(t *testing.T) {
	// a key redeclared under a conflicting type trips the property store
	doc := `<graphml>
  <key id="k0" for="node" attr.name="x" attr.type="int" />
  <key id="k1" for="node" attr.name="x" attr.type="double" />
  <graph edgedefault="undirected">
    <node id="a"><data key="k0">1</data><data key="k1">0x1p+00</data></node>
  </graph>
</graphml>`
	_, _, err := readString(doc, false, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, graphml.ErrHostReject)
}

func TestRead_CommentsAndPIsIgnored(t *testing.T) {
	doc := `<?xml version="1.0"?>
<!-- leading comment -->
<graphml>
  <!-- property keys -->
  <graph edgedefault="undirected">
    <!-- vertices -->
    <node id="a"/>
  </graph>
</graphml>
<!-- trailing comment -->`
	g, _, err := readString(doc, false, false)
	require.NoError(t, err)
	assert.Len(t, g.vertices, 1)
}

func TestRead_TrailingGarbage(t *testing.T) {
	doc := `<graphml><graph edgedefault="undirected"></graph></graphml>trailing`
	_, _, err := readString(doc, false, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, graphml.ErrXML)
}

func TestRead_EOFOnly(t *testing.T) {
	_, _, err := readString("", false, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, graphml.ErrXML)
	assert.NotErrorIs(t, err, io.EOF)
}
