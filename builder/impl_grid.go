package builder

import (
	"fmt"

	"github.com/katalvlaran/grafio/core"
)

const minGridSide = 1

// Grid returns a generator for the rows×cols lattice. Vertex ids are
// row-major (r*cols + c); each cell emits its right neighbor first,
// then its down neighbor, scanning cells in id order. Requires both
// sides >= 1.
func Grid(rows, cols int) Constructor {
	return func(a *core.Attributed, cfg config) error {
		if rows < minGridSide || cols < minGridSide {
			return fmt.Errorf("Grid: %dx%d: %w", rows, cols, ErrTooFewVertices)
		}

		addVertices(a, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				v := core.VertexID(r*cols + c)
				if c+1 < cols {
					if err := cfg.addEdge(a, v, v+1); err != nil {
						return fmt.Errorf("Grid: %w", err)
					}
				}
				if r+1 < rows {
					if err := cfg.addEdge(a, v, v+core.VertexID(cols)); err != nil {
						return fmt.Errorf("Grid: %w", err)
					}
				}
			}
		}

		return nil
	}
}
