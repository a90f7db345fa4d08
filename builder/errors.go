package builder

import "errors"

// ErrTooFewVertices reports a size parameter below the generator's
// documented minimum (for example Cycle needs n >= 3).
var ErrTooFewVertices = errors.New("builder: too few vertices")

// ErrInvalidProbability reports an edge probability outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")
