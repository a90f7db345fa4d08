package builder

import (
	"fmt"

	"github.com/katalvlaran/grafio/core"
)

const minCompleteVertices = 2

// Complete returns a generator for the complete graph K_n: one edge per
// unordered pair {i, j}, emitted as i->j with i < j in lexicographic
// pair order. Directed builds get the same C(n,2) arcs, oriented from
// the smaller index. Requires n >= 2.
func Complete(n int) Constructor {
	return func(a *core.Attributed, cfg config) error {
		if n < minCompleteVertices {
			return fmt.Errorf("Complete: n=%d < %d: %w", n, minCompleteVertices, ErrTooFewVertices)
		}

		addVertices(a, n)
		for i := 0; i < n-1; i++ {
			for j := i + 1; j < n; j++ {
				if err := cfg.addEdge(a, core.VertexID(i), core.VertexID(j)); err != nil {
					return fmt.Errorf("Complete: %w", err)
				}
			}
		}

		return nil
	}
}
