package sqlitegraph

import "errors"

// ErrDirectedness reports opening an existing database whose recorded
// directedness disagrees with the requested one.
var ErrDirectedness = errors.New("sqlitegraph: directedness mismatch")

// ErrForeignHandle reports a property map whose entities are not handles
// issued by this database.
var ErrForeignHandle = errors.New("sqlitegraph: entity is not a database handle")

// ErrCorrupt reports stored rows that no longer decode: unknown kinds or
// domains, missing entities, or values that fail their lexical parse.
var ErrCorrupt = errors.New("sqlitegraph: corrupt database")
