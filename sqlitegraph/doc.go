// Package sqlitegraph persists attributed graphs in a single SQLite file.
//
// A DB plays the host side of the codec contracts: ImportGraphML streams a
// document straight into it, buffering topology and property maps until
// Flush writes everything as one transactional snapshot. Load turns the
// snapshot back into a core.Attributed, ready for the in-memory codecs.
//
// # Layout
//
// Four tables hold a snapshot: meta pins the directedness, vertices and
// edges carry the dense integer handles, and properties stores one row per
// value with its domain, kind name and printed text. Values are kept
// lexically, exactly as the GraphML codec prints them, so floats survive
// bit-exact and a load-then-export reproduces the imported bytes.
//
// # Concurrency
//
// The connection pool is capped at one connection and the journal runs in
// WAL mode. A DB value itself is not safe for concurrent mutation.
//
// # Errors
//
// Directedness conflicts on open fail with ErrDirectedness, property maps
// holding handles from another host fail with ErrForeignHandle, and rows
// that no longer decode fail with ErrCorrupt. Driver failures are wrapped
// with their operation.
package sqlitegraph
