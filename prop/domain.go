package prop

// Domain selects which entity class a property describes.
type Domain uint8

const (
	// DomainGraph scopes a property to the graph itself (one slot).
	DomainGraph Domain = iota

	// DomainVertex scopes a property to vertices.
	DomainVertex

	// DomainEdge scopes a property to edges.
	DomainEdge
)

// Reserved property names carrying original document identities.
const (
	// VertexIDName stores the original node id of each vertex as a string.
	VertexIDName = "_graphml_vertex_id"

	// EdgeIDName stores the original edge id of each edge as a string.
	EdgeIDName = "_graphml_edge_id"
)

// Reserved reports whether name is one of the identity-carrying names that
// codecs filter from key declarations.
func Reserved(name string) bool {
	return name == VertexIDName || name == EdgeIDName
}

// String names the domain for diagnostics and error text.
func (d Domain) String() string {
	switch d {
	case DomainGraph:
		return "graph"
	case DomainVertex:
		return "vertex"
	case DomainEdge:
		return "edge"
	default:
		return "unknown"
	}
}
