package graphml

import (
	"github.com/katalvlaran/grafio/attr"
	"github.com/katalvlaran/grafio/prop"
)

// Mutator is the contract through which the reader constructs a host graph.
// Vertex and edge handles are opaque to the codec; the host hands them out
// from AddVertex and AddEdge and receives them back unchanged. Handles must
// be comparable values.
//
// AddEdge's second result reports whether the edge was inserted. A false
// result is the host's parallel-edge rejection: the reader skips the edge
// silently and discards its data entries.
type Mutator interface {
	// Directed reports the host's directedness; the reader checks it
	// against the document's edgedefault before any mutation.
	Directed() bool

	// AddVertex appends one vertex and returns its handle.
	AddVertex() any

	// AddEdge connects two vertex handles and returns the edge handle and
	// an inserted flag.
	AddEdge(src, tgt any) (any, bool)

	// SetGraphProperty assigns a graph-level property from its lexical text
	// and declared type name.
	SetGraphProperty(name, value, typeName string) error

	// SetVertexProperty assigns a vertex property.
	SetVertexProperty(name string, vertex any, value, typeName string) error

	// SetEdgeProperty assigns an edge property.
	SetEdgeProperty(name string, edge any, value, typeName string) error
}

// Host is the minimal graph container surface needed to build a standard
// Mutator: topology only, no property handling.
type Host interface {
	Directed() bool
	AddVertex() any
	AddEdge(src, tgt any) (any, bool)
}

// GraphMutator couples a Host with a prop.Maps collection into a full
// Mutator: every Set call resolves the declared type name to a kind,
// parses the text, and stores the typed value in the matching map,
// creating the map entry on first use.
type GraphMutator struct {
	host Host
	maps *prop.Maps
}

// NewGraphMutator binds host and maps. Both are retained, not copied; the
// caller owns them and reads them after the parse completes.
// Complexity: O(1)
func NewGraphMutator(host Host, maps *prop.Maps) *GraphMutator {
	return &GraphMutator{host: host, maps: maps}
}

// Directed reports the host's directedness.
func (gm *GraphMutator) Directed() bool { return gm.host.Directed() }

// AddVertex delegates to the host.
func (gm *GraphMutator) AddVertex() any { return gm.host.AddVertex() }

// AddEdge delegates to the host.
func (gm *GraphMutator) AddEdge(src, tgt any) (any, bool) { return gm.host.AddEdge(src, tgt) }

// SetGraphProperty parses and stores a graph-level value.
func (gm *GraphMutator) SetGraphProperty(name, value, typeName string) error {
	return gm.set(name, prop.DomainGraph, nil, value, typeName)
}

// SetVertexProperty parses and stores a vertex value.
func (gm *GraphMutator) SetVertexProperty(name string, vertex any, value, typeName string) error {
	return gm.set(name, prop.DomainVertex, vertex, value, typeName)
}

// SetEdgeProperty parses and stores an edge value.
func (gm *GraphMutator) SetEdgeProperty(name string, edge any, value, typeName string) error {
	return gm.set(name, prop.DomainEdge, edge, value, typeName)
}

// set is the shared dispatch: type name to kind, text to value, value into
// the (name, domain) map. Each failure carries its taxonomy kind so the
// reader can surface it with a document position.
func (gm *GraphMutator) set(name string, d prop.Domain, entity any, value, typeName string) error {
	kind, ok := attr.KindOf(typeName)
	if !ok {
		return errf(TypeUnknown, "unrecognized type %q for key %q", typeName, name)
	}

	parsed, err := attr.Parse(value, kind)
	if err != nil {
		e := errf(ValueParse, "invalid value %q for key %q of type %q", value, name, typeName)
		e.Err = err

		return e
	}

	m, err := gm.maps.Ensure(name, d, kind)
	if err != nil {
		e := errf(HostReject, "property %q: %v", name, err)
		e.Err = err

		return e
	}

	if d == prop.DomainGraph {
		err = m.SetGraph(parsed)
	} else {
		err = m.Put(entity, parsed)
	}
	if err != nil {
		e := errf(HostReject, "property %q: %v", name, err)
		e.Err = err

		return e
	}

	return nil
}

// Maps exposes the bound property collection.
func (gm *GraphMutator) Maps() *prop.Maps { return gm.maps }

var _ Mutator = (*GraphMutator)(nil)
