package yamlgraph

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/grafio/attr"
	"github.com/katalvlaran/grafio/graphml"
	"github.com/katalvlaran/grafio/prop"
)

// document is the wire shape of a YAML graph file. The sections stay raw
// yaml.Node trees so the reader can walk mappings in document order,
// keep scalar text verbatim, and report line positions.
type document struct {
	Directed   bool      `yaml:"directed"`
	Properties yaml.Node `yaml:"properties"`
	Graph      yaml.Node `yaml:"graph"`
	Vertices   yaml.Node `yaml:"vertices"`
	Edges      yaml.Node `yaml:"edges"`
}

// declaration mirrors one entry of the properties section.
type declaration struct {
	Domain  string  `yaml:"domain"`
	Type    string  `yaml:"type"`
	Default *string `yaml:"default"`
}

// key is a resolved declaration.
type key struct {
	domain   prop.Domain
	typeName string
	def      *string
}

// symbols holds the resolved properties section: declarations by name
// plus their document order, which fixes the order defaults apply in.
type symbols struct {
	table map[string]key
	order []string
}

func (s *symbols) lookupFor(name string, d prop.Domain, line int) (key, error) {
	k, ok := s.table[name]
	if !ok {
		return key{}, fmt.Errorf("line %d: undeclared property %q: %w", line, name, ErrSchema)
	}
	if k.domain != d {
		return key{}, fmt.Errorf("line %d: property %q has domain %s, not %s: %w", line, name, k.domain, d, ErrSchema)
	}

	return k, nil
}

// eachDefault visits the declared defaults of one domain in declaration
// order.
func (s *symbols) eachDefault(d prop.Domain, fn func(name string, k key) error) error {
	for _, name := range s.order {
		k := s.table[name]
		if k.domain != d || k.def == nil {
			continue
		}
		if err := fn(name, k); err != nil {
			return err
		}
	}

	return nil
}

// Read decodes a YAML graph document and replays it into m with the same
// typed dispatch, default application and rejected-edge semantics as the
// GraphML reader, so the two codecs are interchangeable behind one
// Mutator. Type, value and host failures surface the shared taxonomy of
// package graphml (ErrTypeUnknown, ErrValueParse, ErrHostReject);
// document shape and structure failures use this package's sentinels.
//
// The whole document is decoded before any mutation, so edges may
// reference vertices declared later in the file. With storeIDs the
// vertex ids (and edge ids, where present) are retained under the
// reserved property names.
//
// Complexity: O(bytes + entities + data entries)
func Read(r io.Reader, m graphml.Mutator, storeIDs bool) error {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("empty input: %w", ErrDocument)
		}

		return fmt.Errorf("%v: %w", err, ErrDocument)
	}

	return replay(&doc, m, storeIDs)
}

// DetectDirected reports the directed field of a document without
// replaying it. Tools reading documents of unknown orientation use it to
// build a matching host before calling Read. An absent field means
// undirected, like Read itself.
func DetectDirected(r io.Reader) (bool, error) {
	var doc struct {
		Directed bool `yaml:"directed"`
	}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return false, fmt.Errorf("empty input: %w", ErrDocument)
		}

		return false, fmt.Errorf("%v: %w", err, ErrDocument)
	}

	return doc.Directed, nil
}

func replay(doc *document, m graphml.Mutator, storeIDs bool) error {
	if doc.Directed != m.Directed() {
		return fmt.Errorf("document directed=%v conflicts with the host graph: %w", doc.Directed, ErrSchema)
	}

	syms, err := readDeclarations(&doc.Properties)
	if err != nil {
		return err
	}

	if err = applyGraph(m, syms, &doc.Graph); err != nil {
		return err
	}

	vertices, err := applyVertices(m, syms, &doc.Vertices, storeIDs)
	if err != nil {
		return err
	}

	return applyEdges(m, syms, &doc.Edges, vertices, storeIDs)
}

func readDeclarations(n *yaml.Node) (*symbols, error) {
	syms := &symbols{table: make(map[string]key)}
	if n.Kind == 0 {
		return syms, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: properties section is not a mapping: %w", n.Line, ErrDocument)
	}

	for i := 0; i+1 < len(n.Content); i += 2 {
		nameNode, declNode := n.Content[i], n.Content[i+1]
		name, err := keyText(nameNode)
		if err != nil {
			return nil, err
		}
		if _, dup := syms.table[name]; dup {
			return nil, fmt.Errorf("line %d: duplicate declaration of property %q: %w", nameNode.Line, name, ErrSchema)
		}
		if prop.Reserved(name) {
			return nil, fmt.Errorf("line %d: property name %q is reserved: %w", nameNode.Line, name, ErrSchema)
		}

		var decl declaration
		if err = declNode.Decode(&decl); err != nil {
			return nil, fmt.Errorf("line %d: property %q: %v: %w", declNode.Line, name, err, ErrDocument)
		}

		d, ok := domainOf(decl.Domain)
		if !ok {
			return nil, fmt.Errorf("line %d: property %q: unrecognized domain %q: %w", declNode.Line, name, decl.Domain, ErrSchema)
		}
		if _, ok = attr.KindOf(decl.Type); !ok {
			return nil, fmt.Errorf("line %d: property %q: unrecognized type %q: %w", declNode.Line, name, decl.Type, graphml.ErrTypeUnknown)
		}

		syms.table[name] = key{domain: d, typeName: decl.Type, def: decl.Default}
		syms.order = append(syms.order, name)
	}

	return syms, nil
}

func domainOf(s string) (prop.Domain, bool) {
	switch s {
	case "graph":
		return prop.DomainGraph, true
	case "vertex":
		return prop.DomainVertex, true
	case "edge":
		return prop.DomainEdge, true
	default:
		return 0, false
	}
}

func applyGraph(m graphml.Mutator, syms *symbols, n *yaml.Node) error {
	// Graph defaults first; explicit entries overwrite them.
	err := syms.eachDefault(prop.DomainGraph, func(name string, k key) error {
		if err := m.SetGraphProperty(name, *k.def, k.typeName); err != nil {
			return fmt.Errorf("default for property %q: %w", name, err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	if n.Kind == 0 {
		return nil
	}
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: graph section is not a mapping: %w", n.Line, ErrDocument)
	}

	for i := 0; i+1 < len(n.Content); i += 2 {
		nameNode, valNode := n.Content[i], n.Content[i+1]
		name, err := keyText(nameNode)
		if err != nil {
			return err
		}
		k, err := syms.lookupFor(name, prop.DomainGraph, nameNode.Line)
		if err != nil {
			return err
		}
		text, err := scalarText(valNode, name)
		if err != nil {
			return err
		}
		if err = m.SetGraphProperty(name, text, k.typeName); err != nil {
			return fmt.Errorf("line %d: graph property %q: %w", valNode.Line, name, err)
		}
	}

	return nil
}

func applyVertices(m graphml.Mutator, syms *symbols, n *yaml.Node, storeIDs bool) (map[string]any, error) {
	handles := make(map[string]any)
	if n.Kind == 0 {
		return handles, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: vertices section is not a sequence: %w", n.Line, ErrDocument)
	}

	for _, item := range n.Content {
		if item.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("line %d: vertex entry is not a mapping: %w", item.Line, ErrDocument)
		}

		id, found, err := fieldValue(item, "id")
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, fmt.Errorf("line %d: vertex entry without id: %w", item.Line, ErrSchema)
		}
		if _, dup := handles[id]; dup {
			return nil, fmt.Errorf("line %d: duplicate vertex id %q: %w", item.Line, id, ErrSchema)
		}

		v := m.AddVertex()
		handles[id] = v

		if storeIDs {
			if err = m.SetVertexProperty(prop.VertexIDName, v, id, attr.KindString.TypeName()); err != nil {
				return nil, fmt.Errorf("line %d: vertex %q: %w", item.Line, id, err)
			}
		}

		err = syms.eachDefault(prop.DomainVertex, func(name string, k key) error {
			if err := m.SetVertexProperty(name, v, *k.def, k.typeName); err != nil {
				return fmt.Errorf("line %d: vertex %q: default for property %q: %w", item.Line, id, name, err)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}

		for i := 0; i+1 < len(item.Content); i += 2 {
			nameNode, valNode := item.Content[i], item.Content[i+1]
			name, err := keyText(nameNode)
			if err != nil {
				return nil, err
			}
			if name == "id" {
				continue
			}
			k, err := syms.lookupFor(name, prop.DomainVertex, nameNode.Line)
			if err != nil {
				return nil, err
			}
			text, err := scalarText(valNode, name)
			if err != nil {
				return nil, err
			}
			if err = m.SetVertexProperty(name, v, text, k.typeName); err != nil {
				return nil, fmt.Errorf("line %d: vertex %q: %w", valNode.Line, id, err)
			}
		}
	}

	return handles, nil
}

func applyEdges(m graphml.Mutator, syms *symbols, n *yaml.Node, vertices map[string]any, storeIDs bool) error {
	if n.Kind == 0 {
		return nil
	}
	if n.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: edges section is not a sequence: %w", n.Line, ErrDocument)
	}

	for _, item := range n.Content {
		if item.Kind != yaml.MappingNode {
			return fmt.Errorf("line %d: edge entry is not a mapping: %w", item.Line, ErrDocument)
		}

		source, found, err := fieldValue(item, "source")
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("line %d: edge entry without source: %w", item.Line, ErrSchema)
		}
		target, found, err := fieldValue(item, "target")
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("line %d: edge entry without target: %w", item.Line, ErrSchema)
		}
		id, hasID, err := fieldValue(item, "id")
		if err != nil {
			return err
		}

		src, ok := vertices[source]
		if !ok {
			return fmt.Errorf("line %d: unknown source %q: %w", item.Line, source, ErrSchema)
		}
		tgt, ok := vertices[target]
		if !ok {
			return fmt.Errorf("line %d: unknown target %q: %w", item.Line, target, ErrSchema)
		}

		e, inserted := m.AddEdge(src, tgt)

		if inserted && storeIDs && hasID {
			if err = m.SetEdgeProperty(prop.EdgeIDName, e, id, attr.KindString.TypeName()); err != nil {
				return fmt.Errorf("line %d: edge %s->%s: %w", item.Line, source, target, err)
			}
		}
		if inserted {
			err = syms.eachDefault(prop.DomainEdge, func(name string, k key) error {
				if err := m.SetEdgeProperty(name, e, *k.def, k.typeName); err != nil {
					return fmt.Errorf("line %d: edge %s->%s: default for property %q: %w", item.Line, source, target, name, err)
				}

				return nil
			})
			if err != nil {
				return err
			}
		}

		for i := 0; i+1 < len(item.Content); i += 2 {
			nameNode, valNode := item.Content[i], item.Content[i+1]
			name, err := keyText(nameNode)
			if err != nil {
				return err
			}
			if name == "source" || name == "target" || name == "id" {
				continue
			}
			k, err := syms.lookupFor(name, prop.DomainEdge, nameNode.Line)
			if err != nil {
				return err
			}
			// Rejected edges keep declaration checks but drop the values.
			if !inserted {
				continue
			}
			text, err := scalarText(valNode, name)
			if err != nil {
				return err
			}
			if err = m.SetEdgeProperty(name, e, text, k.typeName); err != nil {
				return fmt.Errorf("line %d: edge %s->%s: %w", valNode.Line, source, target, err)
			}
		}
	}

	return nil
}

// fieldValue extracts a structural scalar field from an entry mapping.
func fieldValue(item *yaml.Node, field string) (string, bool, error) {
	var text string
	var found bool
	for i := 0; i+1 < len(item.Content); i += 2 {
		nameNode, valNode := item.Content[i], item.Content[i+1]
		if nameNode.Kind != yaml.ScalarNode || nameNode.Value != field {
			continue
		}
		if found {
			return "", false, fmt.Errorf("line %d: field %q given twice: %w", nameNode.Line, field, ErrDocument)
		}
		if valNode.Kind != yaml.ScalarNode {
			return "", false, fmt.Errorf("line %d: field %q is not a scalar: %w", valNode.Line, field, ErrDocument)
		}
		text, found = valNode.Value, true
	}

	return text, found, nil
}

func keyText(n *yaml.Node) (string, error) {
	if n.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("line %d: mapping key is not a scalar: %w", n.Line, ErrDocument)
	}

	return n.Value, nil
}

func scalarText(n *yaml.Node, name string) (string, error) {
	if n.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("line %d: property %q is not a scalar: %w", n.Line, name, ErrDocument)
	}

	return n.Value, nil
}
