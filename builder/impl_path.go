package builder

import (
	"fmt"

	"github.com/katalvlaran/grafio/core"
)

const minPathVertices = 2

// Path returns a generator for the path graph P_n: vertices 0..n-1 and
// edges i-(i+1) emitted in increasing order of i. Requires n >= 2.
func Path(n int) Constructor {
	return func(a *core.Attributed, cfg config) error {
		if n < minPathVertices {
			return fmt.Errorf("Path: n=%d < %d: %w", n, minPathVertices, ErrTooFewVertices)
		}

		addVertices(a, n)
		for i := 0; i < n-1; i++ {
			if err := cfg.addEdge(a, core.VertexID(i), core.VertexID(i+1)); err != nil {
				return fmt.Errorf("Path: %w", err)
			}
		}

		return nil
	}
}
