package graphml

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/grafio/attr"
	"github.com/katalvlaran/grafio/prop"
)

// Edge pairs an edge handle with its endpoint vertex handles for writer
// iteration.
type Edge struct {
	Handle any
	Source any
	Target any
}

// View is the read-only surface the writer drives. Vertices and Edges
// report the host's own iteration order; the writer never sorts, so output
// determinism is exactly the host's determinism. VertexIndex returns the
// dense 0-based position of a vertex handle, or a negative value for
// handles outside the view.
type View interface {
	Directed() bool
	Vertices() []any
	Edges() []Edge
	VertexIndex(v any) int
}

// Write emits one GraphML document for g and its property maps.
//
// Key declarations appear in map insertion order under synthetic ids
// key0, key1, and so on; the reserved identity maps are filtered out and
// instead select the id regime: parse.nodeids="canonical" (vertex ids
// n0..n|V|-1) requires orderedVertices and no stored vertex-id map, and
// parse.edgeids="canonical" (e0..e|E|-1) requires no stored edge-id map.
// Data elements whose printed value is empty are suppressed entirely.
//
// Two calls over the same view and maps produce byte-identical output.
// Complexity: O(V*P_v + E*P_e + P) for P property maps.
func Write(w io.Writer, g View, maps *prop.Maps, orderedVertices bool) error {
	bw := bufio.NewWriter(w)

	fmt.Fprint(bw, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n"+
		"<graphml xmlns=\"http://graphml.graphdrawing.org/xmlns\"\n"+
		"         xmlns:xsi=\"http://www.w3.org/2001/XMLSchema-instance\"\n"+
		"         xsi:schemaLocation=\"http://graphml.graphdrawing.org/xmlns"+
		" http://graphml.graphdrawing.org/xmlns/1.0/graphml.xsd\">\n\n")

	// 1. Key declarations. One counter across all domains; reserved names
	// emit no key and flip the id-regime flags instead.
	fmt.Fprint(bw, "  <!-- property keys -->\n")
	var (
		graphKeys    = make(map[string]string)
		vertexKeys   = make(map[string]string)
		edgeKeys     = make(map[string]string)
		hasVertexIDs bool
		hasEdgeIDs   bool
		keyCount     int
	)
	for _, m := range maps.All() {
		if m.Name() == prop.VertexIDName {
			if m.Domain() == prop.DomainVertex {
				hasVertexIDs = true
			}

			continue
		}
		if m.Name() == prop.EdgeIDName {
			if m.Domain() == prop.DomainEdge {
				hasEdgeIDs = true
			}

			continue
		}

		keyID := "key" + strconv.Itoa(keyCount)
		keyCount++
		var forName string
		switch m.Domain() {
		case prop.DomainGraph:
			graphKeys[m.Name()] = keyID
			forName = "graph"
		case prop.DomainVertex:
			vertexKeys[m.Name()] = keyID
			forName = "node"
		case prop.DomainEdge:
			edgeKeys[m.Name()] = keyID
			forName = "edge"
		default:
			continue
		}
		fmt.Fprintf(bw, "  <key id=\"%s\" for=\"%s\" attr.name=\"%s\" attr.type=\"%s\" />\n",
			attr.EscapeString(keyID), forName,
			attr.EscapeString(m.Name()), attr.EscapeString(m.Kind().TypeName()))
	}

	// 2. Graph element and id regime.
	canonicalVertices := orderedVertices && !hasVertexIDs
	canonicalEdges := !hasEdgeIDs
	edgedefault := "undirected"
	if g.Directed() {
		edgedefault = "directed"
	}
	fmt.Fprintf(bw, "\n  <graph id=\"G\" edgedefault=\"%s\" parse.nodeids=\"%s\" parse.edgeids=\"%s\" parse.order=\"nodesfirst\">\n\n",
		edgedefault, idRegime(canonicalVertices), idRegime(canonicalEdges))

	// 3. Graph properties.
	fmt.Fprint(bw, "   <!-- graph properties -->\n")
	for _, m := range maps.All() {
		if m.Domain() != prop.DomainGraph || prop.Reserved(m.Name()) {
			continue
		}
		v, ok := m.Graph()
		if !ok {
			continue
		}
		text := attr.Print(v)
		if text == "" {
			continue
		}
		fmt.Fprintf(bw, "   <data key=\"%s\">%s</data>\n",
			attr.EscapeString(graphKeys[m.Name()]), attr.EscapeString(text))
	}

	var vertexIDMap *prop.Map
	if hasVertexIDs {
		vertexIDMap, _ = maps.Lookup(prop.VertexIDName, prop.DomainVertex)
	}
	vertexID := func(v any) (string, error) {
		if vertexIDMap != nil {
			val, ok := vertexIDMap.Get(v)
			if !ok {
				return "", nil
			}
			s, _ := val.Str()

			return attr.EscapeString(s), nil
		}
		idx := g.VertexIndex(v)
		if idx < 0 {
			return "", errf(HostReject, "vertex handle outside the view's index")
		}

		return "n" + strconv.Itoa(idx), nil
	}

	// 4. Vertices.
	fmt.Fprint(bw, "\n   <!-- vertices -->\n")
	for _, v := range g.Vertices() {
		id, err := vertexID(v)
		if err != nil {
			return err
		}
		fmt.Fprintf(bw, "    <node id=\"%s\">\n", id)
		for _, m := range maps.All() {
			if m.Domain() != prop.DomainVertex || prop.Reserved(m.Name()) {
				continue
			}
			val, ok := m.Get(v)
			if !ok {
				continue
			}
			text := attr.Print(val)
			if text == "" {
				continue
			}
			fmt.Fprintf(bw, "      <data key=\"%s\">%s</data>\n",
				attr.EscapeString(vertexKeys[m.Name()]), attr.EscapeString(text))
		}
		fmt.Fprint(bw, "    </node>\n")
	}

	var edgeIDMap *prop.Map
	if hasEdgeIDs {
		edgeIDMap, _ = maps.Lookup(prop.EdgeIDName, prop.DomainEdge)
	}

	// 5. Edges.
	fmt.Fprint(bw, "\n   <!-- edges -->\n")
	edgeCount := 0
	for _, e := range g.Edges() {
		var id string
		if edgeIDMap != nil {
			if val, ok := edgeIDMap.Get(e.Handle); ok {
				s, _ := val.Str()
				id = attr.EscapeString(s)
			}
		} else {
			id = "e" + strconv.Itoa(edgeCount)
		}
		edgeCount++

		src, err := vertexID(e.Source)
		if err != nil {
			return err
		}
		tgt, err := vertexID(e.Target)
		if err != nil {
			return err
		}
		fmt.Fprintf(bw, "    <edge id=\"%s\" source=\"%s\" target=\"%s\">\n", id, src, tgt)
		for _, m := range maps.All() {
			if m.Domain() != prop.DomainEdge || prop.Reserved(m.Name()) {
				continue
			}
			val, ok := m.Get(e.Handle)
			if !ok {
				continue
			}
			text := attr.Print(val)
			if text == "" {
				continue
			}
			fmt.Fprintf(bw, "      <data key=\"%s\">%s</data>\n",
				attr.EscapeString(edgeKeys[m.Name()]), attr.EscapeString(text))
		}
		fmt.Fprint(bw, "    </edge>\n")
	}

	fmt.Fprint(bw, "\n  </graph>\n</graphml>\n")

	if err := bw.Flush(); err != nil {
		return &Error{Kind: IOFailure, Msg: err.Error(), Err: err}
	}

	return nil
}

// idRegime renders the parse.nodeids / parse.edgeids attribute value.
func idRegime(canonical bool) string {
	if canonical {
		return "canonical"
	}

	return "free"
}
