package yamlgraph

import (
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/grafio/attr"
	"github.com/katalvlaran/grafio/graphml"
	"github.com/katalvlaran/grafio/prop"
)

// Write renders an attributed graph as a YAML document that Read
// accepts back unchanged. Output is deterministic: the properties
// section follows map insertion order, vertices and edges follow the
// view's own order, and per-entity properties repeat the declaration
// order. Values use the same lexical encodings as GraphML, so floats
// survive bit-exactly.
//
// Vertex ids come from the reserved vertex-id property when present and
// are synthesized as n0, n1, ... otherwise; edge entries carry an id
// field only for edges present in the reserved edge-id property.
//
// The YAML shape allows one domain per property name; a Maps holding the
// same name in two domains cannot be rendered and fails with ErrSchema.
//
// Complexity: O(V + E + data entries)
func Write(w io.Writer, g graphml.View, maps *prop.Maps) error {
	var (
		decls     []*prop.Map
		vertexIDs *prop.Map
		edgeIDs   *prop.Map
		names     = make(map[string]bool)
	)
	for _, m := range maps.All() {
		switch {
		case m.Name() == prop.VertexIDName && m.Domain() == prop.DomainVertex:
			vertexIDs = m
		case m.Name() == prop.EdgeIDName && m.Domain() == prop.DomainEdge:
			edgeIDs = m
		case prop.Reserved(m.Name()):
			// Reserved name bound to a foreign domain; never rendered.
		default:
			if names[m.Name()] {
				return fmt.Errorf("property %q declared in more than one domain: %w", m.Name(), ErrSchema)
			}
			names[m.Name()] = true
			decls = append(decls, m)
		}
	}

	root := mapping()
	addPair(root, strScalar("directed"), boolScalar(g.Directed()))

	props := mapping()
	for _, m := range decls {
		entry := mapping()
		addPair(entry, strScalar("domain"), strScalar(m.Domain().String()))
		addPair(entry, strScalar("type"), strScalar(m.Kind().TypeName()))
		addPair(props, strScalar(m.Name()), entry)
	}
	addPair(root, strScalar("properties"), props)

	graphSection := mapping()
	for _, m := range decls {
		if m.Domain() != prop.DomainGraph {
			continue
		}
		v, ok := m.Graph()
		if !ok {
			continue
		}
		if text := attr.Print(v); text != "" {
			addPair(graphSection, strScalar(m.Name()), strScalar(text))
		}
	}
	addPair(root, strScalar("graph"), graphSection)

	vertexName := func(v any, idx int) string {
		if vertexIDs != nil {
			if val, ok := vertexIDs.Get(v); ok {
				s, _ := val.Str()

				return s
			}

			return ""
		}

		return "n" + strconv.Itoa(idx)
	}

	vertexSeq := sequence()
	for i, v := range g.Vertices() {
		entry := mapping()
		addPair(entry, strScalar("id"), strScalar(vertexName(v, i)))
		for _, m := range decls {
			if m.Domain() != prop.DomainVertex {
				continue
			}
			val, ok := m.Get(v)
			if !ok {
				continue
			}
			if text := attr.Print(val); text != "" {
				addPair(entry, strScalar(m.Name()), strScalar(text))
			}
		}
		vertexSeq.Content = append(vertexSeq.Content, entry)
	}
	addPair(root, strScalar("vertices"), vertexSeq)

	endpointName := func(v any) (string, error) {
		idx := g.VertexIndex(v)
		if idx < 0 {
			return "", fmt.Errorf("edge endpoint outside the view: %w", graphml.ErrHostReject)
		}

		return vertexName(v, idx), nil
	}

	edgeSeq := sequence()
	for _, e := range g.Edges() {
		src, err := endpointName(e.Source)
		if err != nil {
			return err
		}
		tgt, err := endpointName(e.Target)
		if err != nil {
			return err
		}

		entry := mapping()
		addPair(entry, strScalar("source"), strScalar(src))
		addPair(entry, strScalar("target"), strScalar(tgt))
		if edgeIDs != nil {
			if val, ok := edgeIDs.Get(e.Handle); ok {
				s, _ := val.Str()
				addPair(entry, strScalar("id"), strScalar(s))
			}
		}
		for _, m := range decls {
			if m.Domain() != prop.DomainEdge {
				continue
			}
			val, ok := m.Get(e.Handle)
			if !ok {
				continue
			}
			if text := attr.Print(val); text != "" {
				addPair(entry, strScalar(m.Name()), strScalar(text))
			}
		}
		edgeSeq.Content = append(edgeSeq.Content, entry)
	}
	addPair(root, strScalar("edges"), edgeSeq)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		enc.Close()

		return fmt.Errorf("encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	return nil
}

func mapping() *yaml.Node { return &yaml.Node{Kind: yaml.MappingNode} }

func sequence() *yaml.Node { return &yaml.Node{Kind: yaml.SequenceNode} }

// strScalar tags the node !!str so values that resolve as other YAML
// scalars ("true", "1.5") are emitted quoted and survive a round trip.
func strScalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func boolScalar(b bool) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(b)}
}

func addPair(m *yaml.Node, k, v *yaml.Node) {
	m.Content = append(m.Content, k, v)
}
