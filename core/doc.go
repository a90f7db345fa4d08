// Package core provides the in-memory host graph behind the grafio codecs:
// an append-only container with dense integer handles, plus the Attributed
// bundle that ties a Graph to its typed property maps.
//
// Overview:
//
//   - VertexID and EdgeID are dense handles: the i-th AddVertex call
//     returns i, the k-th accepted AddEdge returns k. Handles never
//     change, nothing is removed, and iteration order is insertion order.
//   - That density is what makes the GraphML canonical id regime free:
//     vertex i is n{i} on the wire without any renumbering pass.
//   - Attributed pairs the topology with a prop.Maps collection and
//     exposes ReadGraphML/WriteGraphML plus typed value sugar, so most
//     callers never touch the codec packages directly.
//
// Configuration Options (GraphOption):
//
//	– WithDirected(bool)
//	    Orientation of all edges. Checked by the codecs against a
//	    document's edgedefault before anything is inserted.
//
//	– WithoutParallelEdges()
//	    Rejects a second edge over a connected endpoint pair with
//	    ErrParallelEdge. Through the codec adapter the rejection is
//	    silent: the reader skips the edge and drops its data.
//
//	– WithoutLoops()
//	    Rejects self-loops with ErrLoopNotAllowed.
//
// The default graph is undirected and permissive (loops and parallel
// edges accepted), matching what the wire formats can legally carry.
//
// Concurrency:
//
//   - One RWMutex guards all mutable state; every accessor takes the read
//     lock, every mutation the write lock. Configuration flags are
//     immutable after NewGraph and read lock-free.
//
// Error handling (sentinel errors):
//
//   - ErrVertexNotFound, ErrEdgeNotFound: a handle this graph never
//     issued. Wrapped with the offending handle via fmt.Errorf("%w: ...").
//   - ErrLoopNotAllowed, ErrParallelEdge: policy rejections from AddEdge.
//
// See also:
//
//   - graphml: the codec populated through Attributed.Mutator().
//   - builder: deterministic topology generators over Attributed.
package core
