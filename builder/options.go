package builder

import (
	"math/rand/v2"

	"github.com/katalvlaran/grafio/core"
)

// defaultSeed feeds the PCG source when no WithSeed option is given.
const defaultSeed = 1

// Option customizes a build by mutating the config before the
// constructor runs. Later options override earlier ones.
type Option func(*config)

// config carries every knob a Constructor can observe. It is resolved
// once per Build and passed to constructors by value.
type config struct {
	directed   bool
	seed       uint64
	weightName string
	graphOpts  []core.GraphOption

	rng *rand.Rand // seeded by Build, never nil inside a constructor
}

func newConfig(opts []Option) config {
	cfg := config{seed: defaultSeed}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithDirected makes the generated graph directed. Generators keep
// their documented emission order; each emitted pair becomes one arc.
func WithDirected() Option {
	return func(c *config) { c.directed = true }
}

// WithSeed fixes the pseudo-random source used by Random and by
// WithWeights. Builds with equal seeds are byte-identical.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.seed = seed }
}

// WithWeights attaches a double-valued edge property with the given
// name to every generated edge, drawn uniformly from [0, 1).
// Panics on an empty name.
func WithWeights(name string) Option {
	if name == "" {
		panic(`builder: WithWeights("")`)
	}

	return func(c *config) { c.weightName = name }
}

// WithGraphOptions forwards extra options to core.NewAttributed, for
// example core.WithoutParallelEdges or core.WithoutLoops.
func WithGraphOptions(opts ...core.GraphOption) Option {
	return func(c *config) { c.graphOpts = append(c.graphOpts, opts...) }
}
