package builder

import (
	"fmt"

	"github.com/katalvlaran/grafio/core"
)

const minCycleVertices = 3

// Cycle returns a generator for the cycle graph C_n: vertices 0..n-1
// and edges i-((i+1) mod n) emitted in increasing order of i, so the
// closing edge (n-1)-0 comes last. Requires n >= 3.
func Cycle(n int) Constructor {
	return func(a *core.Attributed, cfg config) error {
		if n < minCycleVertices {
			return fmt.Errorf("Cycle: n=%d < %d: %w", n, minCycleVertices, ErrTooFewVertices)
		}

		addVertices(a, n)
		for i := 0; i < n; i++ {
			if err := cfg.addEdge(a, core.VertexID(i), core.VertexID((i+1)%n)); err != nil {
				return fmt.Errorf("Cycle: %w", err)
			}
		}

		return nil
	}
}
