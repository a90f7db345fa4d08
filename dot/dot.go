package dot

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/grafio/attr"
	"github.com/katalvlaran/grafio/graphml"
	"github.com/katalvlaran/grafio/prop"
)

// Option adjusts how a graph is rendered to DOT.
type Option func(*config)

type config struct {
	name        string
	vertexLabel string
	edgeLabel   string
	allProps    bool
}

// WithName sets the graph name in the DOT header. Default "G".
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// WithVertexLabel labels each node with the printed text of the named
// vertex property; nodes without the property stay unlabeled. The name
// may be a reserved identity property to label nodes with their
// original document ids.
func WithVertexLabel(name string) Option {
	return func(c *config) { c.vertexLabel = name }
}

// WithEdgeLabel labels each edge with the printed text of the named
// edge property.
func WithEdgeLabel(name string) Option {
	return func(c *config) { c.edgeLabel = name }
}

// WithProperties renders every non-reserved property as a DOT attribute
// next to the labels, and graph properties as top-level attribute
// statements.
func WithProperties() Option {
	return func(c *config) { c.allProps = true }
}

// Write renders an attributed graph as Graphviz DOT text: digraph or
// graph per the view's directedness, nodes named n0, n1, ... in view
// order, edges with -> or -- in view order. Output is deterministic and
// plain text; rasterization is left to the caller.
//
// Complexity: O(V + E + data entries)
func Write(w io.Writer, g graphml.View, maps *prop.Maps, opts ...Option) error {
	cfg := config{name: "G"}
	for _, opt := range opts {
		opt(&cfg)
	}

	keyword, operator := "graph", "--"
	if g.Directed() {
		keyword, operator = "digraph", "->"
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s %s {\n", keyword, quote(cfg.name))

	if cfg.allProps {
		for _, m := range maps.All() {
			if m.Domain() != prop.DomainGraph || prop.Reserved(m.Name()) {
				continue
			}
			v, ok := m.Graph()
			if !ok {
				continue
			}
			if text := attr.Print(v); text != "" {
				fmt.Fprintf(bw, "  %s=%s;\n", quote(m.Name()), quote(text))
			}
		}
	}

	for i, v := range g.Vertices() {
		attrs := entityAttrs(maps, prop.DomainVertex, v, cfg.vertexLabel, cfg.allProps)
		fmt.Fprintf(bw, "  n%d%s;\n", i, attrs)
	}

	for _, e := range g.Edges() {
		src := g.VertexIndex(e.Source)
		tgt := g.VertexIndex(e.Target)
		if src < 0 || tgt < 0 {
			return fmt.Errorf("dot: edge endpoint outside the view: %w", graphml.ErrHostReject)
		}
		attrs := entityAttrs(maps, prop.DomainEdge, e.Handle, cfg.edgeLabel, cfg.allProps)
		fmt.Fprintf(bw, "  n%d %s n%d%s;\n", src, operator, tgt, attrs)
	}

	fmt.Fprint(bw, "}\n")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("dot: %w", err)
	}

	return nil
}

// entityAttrs renders the bracketed attribute list of one node or edge,
// or an empty string when there is nothing to say.
func entityAttrs(maps *prop.Maps, d prop.Domain, entity any, label string, allProps bool) string {
	var parts []string

	if label != "" {
		if m, ok := maps.Lookup(label, d); ok {
			if v, ok := m.Get(entity); ok {
				if text := attr.Print(v); text != "" {
					parts = append(parts, "label="+quote(text))
				}
			}
		}
	}

	if allProps {
		for _, m := range maps.All() {
			if m.Domain() != d || prop.Reserved(m.Name()) || m.Name() == label {
				continue
			}
			v, ok := m.Get(entity)
			if !ok {
				continue
			}
			if text := attr.Print(v); text != "" {
				parts = append(parts, quote(m.Name())+"="+quote(text))
			}
		}
	}

	if len(parts) == 0 {
		return ""
	}

	out := " [" + parts[0]
	for _, p := range parts[1:] {
		out += ", " + p
	}

	return out + "]"
}

// quote renders s as a DOT identifier, leaving plain names bare and
// double-quoting everything else with backslash escapes. Newlines become
// the \n escape graphviz renders as a line break.
func quote(s string) string {
	if isBareID(s) {
		return s
	}

	out := make([]byte, 0, len(s)+2)
	out = append(out, '"')
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"', '\\':
			out = append(out, '\\', s[i])
		case '\n':
			out = append(out, '\\', 'n')
		default:
			out = append(out, s[i])
		}
	}

	return string(append(out, '"'))
}

// isBareID reports whether s matches the DOT bare identifier grammar:
// ASCII letters, digits and underscores, not starting with a digit.
func isBareID(s string) bool {
	if s == "" {
		return false
	}
	if s[0] >= '0' && s[0] <= '9' {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_':
		default:
			return false
		}
	}

	return true
}
