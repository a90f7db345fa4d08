package builder

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/grafio/attr"
	"github.com/katalvlaran/grafio/core"
)

// Constructor populates a freshly created attributed graph. The config
// is resolved by Build; constructors read it but never retain it.
type Constructor func(a *core.Attributed, cfg config) error

// Build creates an empty core.Attributed, resolves the options and
// applies the constructor. A constructor failure aborts the build and
// surfaces wrapped, so callers can still branch on the sentinels with
// errors.Is. Panics on a nil constructor.
//
// Complexity: O(V + E) of the generated topology.
func Build(cons Constructor, opts ...Option) (*core.Attributed, error) {
	if cons == nil {
		panic("builder: Build(nil)")
	}

	cfg := newConfig(opts)
	cfg.rng = rand.New(rand.NewPCG(cfg.seed, cfg.seed))

	gopts := make([]core.GraphOption, 0, len(cfg.graphOpts)+1)
	gopts = append(gopts, core.WithDirected(cfg.directed))
	gopts = append(gopts, cfg.graphOpts...)

	a := core.NewAttributed(gopts...)
	if err := cons(a, cfg); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return a, nil
}

// addVertices inserts n vertices; handles are dense, so vertex i of the
// generated shape is always core.VertexID(i).
func addVertices(a *core.Attributed, n int) {
	for i := 0; i < n; i++ {
		a.Graph.AddVertex()
	}
}

// addEdge inserts src->tgt and, when WithWeights is configured, draws
// the edge's weight property from the seeded source.
func (c config) addEdge(a *core.Attributed, src, tgt core.VertexID) error {
	id, err := a.Graph.AddEdge(src, tgt)
	if err != nil {
		return err
	}
	if c.weightName == "" {
		return nil
	}

	return a.SetEdgeValue(c.weightName, id, attr.Float64(c.rng.Float64()))
}
