package sqlitegraph

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS vertices (
	id INTEGER PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS edges (
	id  INTEGER PRIMARY KEY,
	src INTEGER NOT NULL,
	tgt INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS properties (
	domain TEXT NOT NULL,
	name   TEXT NOT NULL,
	kind   TEXT NOT NULL,
	entity INTEGER,
	value  TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_edges_src       ON edges(src);
CREATE INDEX IF NOT EXISTS idx_edges_tgt       ON edges(tgt);
CREATE INDEX IF NOT EXISTS idx_properties_name ON properties(domain, name);
`

// DB is a graph snapshot persisted in a SQLite file. It accepts topology
// through the graphml.Host methods, buffering it until Flush writes one
// consistent snapshot, and reads it back with Load.
type DB struct {
	db       *sql.DB
	directed bool

	// topology buffered between Host calls and the next Flush
	vertices int
	edges    []edgeRow
}

type edgeRow struct {
	src, tgt int
}

// Open opens or creates the database at path and applies the schema.
// An existing database must have been created with the same directedness,
// otherwise Open fails with ErrDirectedness.
func Open(path string, directed bool) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// SQLite allows a single writer at a time.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(`PRAGMA journal_mode=WAL`); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	if err := pinDirectedness(db, directed); err != nil {
		db.Close()
		return nil, err
	}
	return &DB{db: db, directed: directed}, nil
}

// pinDirectedness records the graph mode on first open and verifies it on
// every later one. Edge rows are meaningless without it.
func pinDirectedness(db *sql.DB, directed bool) error {
	want := strconv.FormatBool(directed)
	var stored string
	err := db.QueryRow(`SELECT value FROM meta WHERE key = 'directed'`).Scan(&stored)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if _, err := db.Exec(`INSERT INTO meta (key, value) VALUES ('directed', ?)`, want); err != nil {
			return fmt.Errorf("recording directedness: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("reading directedness: %w", err)
	case stored != want:
		return fmt.Errorf("database is directed=%s: %w", stored, ErrDirectedness)
	}
	return nil
}

// Directedness reports the mode pinned in an existing database, so tools
// can Open it without knowing how it was created.
func Directedness(path string) (bool, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return false, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	var stored string
	err = db.QueryRow(`SELECT value FROM meta WHERE key = 'directed'`).Scan(&stored)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, fmt.Errorf("no directedness pinned: %w", ErrCorrupt)
	case err != nil:
		return false, fmt.Errorf("reading directedness: %w", err)
	}
	directed, err := strconv.ParseBool(stored)
	if err != nil {
		return false, fmt.Errorf("directedness %q: %w", stored, ErrCorrupt)
	}

	return directed, nil
}

// Close releases the underlying connection. Buffered topology that was
// never flushed is discarded.
func (d *DB) Close() error {
	return d.db.Close()
}

// Directed reports the mode the database was opened with.
func (d *DB) Directed() bool { return d.directed }

// AddVertex buffers a new vertex and returns its handle.
func (d *DB) AddVertex() any {
	v := d.vertices
	d.vertices++
	return v
}

// AddEdge buffers a new edge between two previously issued vertex handles.
// Handles of the wrong type or range are refused.
func (d *DB) AddEdge(src, tgt any) (any, bool) {
	s, ok := src.(int)
	if !ok || s < 0 || s >= d.vertices {
		return nil, false
	}
	t, ok := tgt.(int)
	if !ok || t < 0 || t >= d.vertices {
		return nil, false
	}
	id := len(d.edges)
	d.edges = append(d.edges, edgeRow{src: s, tgt: t})
	return id, true
}
