package builder

import (
	"fmt"

	"github.com/katalvlaran/grafio/core"
)

const minStarVertices = 2

// Star returns a generator for the star S_{n-1}: vertex 0 is the hub
// and edges 0->i are emitted for i = 1..n-1 in increasing order.
// Requires n >= 2 (hub plus at least one leaf).
func Star(n int) Constructor {
	return func(a *core.Attributed, cfg config) error {
		if n < minStarVertices {
			return fmt.Errorf("Star: n=%d < %d: %w", n, minStarVertices, ErrTooFewVertices)
		}

		addVertices(a, n)
		for i := 1; i < n; i++ {
			if err := cfg.addEdge(a, 0, core.VertexID(i)); err != nil {
				return fmt.Errorf("Star: %w", err)
			}
		}

		return nil
	}
}
