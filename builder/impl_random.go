package builder

import (
	"fmt"

	"github.com/katalvlaran/grafio/core"
)

const minRandomVertices = 2

// Random returns a generator for the Erdős–Rényi model G(n, p): every
// candidate pair receives an edge independently with probability p.
// Undirected builds draw once per unordered pair {i, j} with i < j;
// directed builds draw once per ordered pair (i, j), i != j. Pairs are
// visited in lexicographic order, so a fixed seed fixes the graph.
// Requires n >= 2 and p in [0, 1].
func Random(n int, p float64) Constructor {
	return func(a *core.Attributed, cfg config) error {
		if n < minRandomVertices {
			return fmt.Errorf("Random: n=%d < %d: %w", n, minRandomVertices, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("Random: p=%v: %w", p, ErrInvalidProbability)
		}

		addVertices(a, n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || (!a.Graph.Directed() && j < i) {
					continue
				}
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := cfg.addEdge(a, core.VertexID(i), core.VertexID(j)); err != nil {
					return fmt.Errorf("Random: %w", err)
				}
			}
		}

		return nil
	}
}
