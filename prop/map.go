package prop

import (
	"fmt"

	"github.com/katalvlaran/grafio/attr"
)

// Map is one named, typed property over a single domain. The graph domain
// uses a singleton slot; vertex and edge domains store per-entity values
// keyed by the opaque handles the host graph hands out. Handles must be
// comparable, as they serve as map keys.
type Map struct {
	name   string
	domain Domain
	kind   attr.Kind

	graph    attr.Value // DomainGraph slot
	graphSet bool

	values map[any]attr.Value
	order  []any // entity handles in first-put order
}

// NewMap creates an empty property map for one (name, domain, kind) triple.
// Complexity: O(1)
func NewMap(name string, d Domain, k attr.Kind) (*Map, error) {
	if name == "" {
		return nil, ErrBadName
	}
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrBadKind, k)
	}

	return &Map{
		name:   name,
		domain: d,
		kind:   k,
		values: make(map[any]attr.Value),
	}, nil
}

// Name reports the property name.
func (m *Map) Name() string { return m.name }

// Domain reports the entity class this map describes.
func (m *Map) Domain() Domain { return m.domain }

// Kind reports the fixed value kind of this map.
func (m *Map) Kind() attr.Kind { return m.kind }

// Put stores v for the given entity handle. The value kind must equal the
// map kind; first-time handles are appended to the iteration order, repeat
// puts overwrite in place.
// Complexity: O(1) amortized
func (m *Map) Put(entity any, v attr.Value) error {
	if v.Kind() != m.kind {
		return fmt.Errorf("%w: %s into %s map %q", ErrValueKind, v.Kind(), m.kind, m.name)
	}
	if _, seen := m.values[entity]; !seen {
		m.order = append(m.order, entity)
	}
	m.values[entity] = v

	return nil
}

// Get returns the value stored for entity, if any.
// Complexity: O(1)
func (m *Map) Get(entity any) (attr.Value, bool) {
	v, ok := m.values[entity]

	return v, ok
}

// SetGraph stores the graph-domain value.
func (m *Map) SetGraph(v attr.Value) error {
	if v.Kind() != m.kind {
		return fmt.Errorf("%w: %s into %s map %q", ErrValueKind, v.Kind(), m.kind, m.name)
	}
	m.graph = v
	m.graphSet = true

	return nil
}

// Graph returns the graph-domain value, if set.
func (m *Map) Graph() (attr.Value, bool) {
	return m.graph, m.graphSet
}

// Len reports the number of entities holding a value (the graph slot not
// included).
func (m *Map) Len() int { return len(m.values) }

// Entities returns the handles holding values, in first-put order.
// The slice is a copy; mutating it does not affect the map.
// Complexity: O(n)
func (m *Map) Entities() []any {
	out := make([]any, len(m.order))
	copy(out, m.order)

	return out
}
