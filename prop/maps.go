package prop

import (
	"fmt"

	"github.com/katalvlaran/grafio/attr"
)

// mapKey indexes one entry: the same name may exist in several domains.
type mapKey struct {
	name   string
	domain Domain
}

// Maps is an insertion-ordered collection of property maps indexed by
// (name, domain). Codecs observe the insertion order directly, so two runs
// over the same collection emit identical declarations.
type Maps struct {
	list  []*Map
	index map[mapKey]*Map
}

// NewMaps creates an empty collection.
// Complexity: O(1)
func NewMaps() *Maps {
	return &Maps{index: make(map[mapKey]*Map)}
}

// Ensure returns the map for (name, domain), creating it with the given
// kind on first use. An existing entry with a different kind is a conflict.
// Complexity: O(1) amortized
func (ms *Maps) Ensure(name string, d Domain, k attr.Kind) (*Map, error) {
	if m, ok := ms.index[mapKey{name, d}]; ok {
		if m.kind != k {
			return nil, fmt.Errorf("%w: %q is %s, requested %s", ErrKindConflict, name, m.kind, k)
		}

		return m, nil
	}

	m, err := NewMap(name, d, k)
	if err != nil {
		return nil, err
	}
	ms.list = append(ms.list, m)
	ms.index[mapKey{name, d}] = m

	return m, nil
}

// Lookup returns the map for (name, domain), if present.
// Complexity: O(1)
func (ms *Maps) Lookup(name string, d Domain) (*Map, bool) {
	m, ok := ms.index[mapKey{name, d}]

	return m, ok
}

// All returns every map in insertion order. The slice is a copy.
// Complexity: O(n)
func (ms *Maps) All() []*Map {
	out := make([]*Map, len(ms.list))
	copy(out, ms.list)

	return out
}

// Len reports the number of entries.
func (ms *Maps) Len() int { return len(ms.list) }
