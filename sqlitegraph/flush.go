package sqlitegraph

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/katalvlaran/grafio/attr"
	"github.com/katalvlaran/grafio/graphml"
	"github.com/katalvlaran/grafio/prop"
)

// Flush writes the buffered topology and the given property maps as one
// snapshot, replacing whatever the database held before. The whole write
// runs in a single transaction; on error the previous snapshot survives.
// After a successful flush the topology buffer is empty again.
//
// Entity handles in maps must be handles issued by this database, not by
// another host; foreign handles fail with ErrForeignHandle.
func (d *DB) Flush(ctx context.Context, maps *prop.Maps) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if err := d.flushTx(ctx, tx, maps); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}
	d.vertices, d.edges = 0, nil

	return nil
}

func (d *DB) flushTx(ctx context.Context, tx *sql.Tx, maps *prop.Maps) error {
	for _, table := range []string{"properties", "edges", "vertices"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	ins, err := tx.PrepareContext(ctx, `INSERT INTO vertices (id) VALUES (?)`)
	if err != nil {
		return fmt.Errorf("preparing vertex insert: %w", err)
	}
	defer ins.Close()
	for v := 0; v < d.vertices; v++ {
		if _, err := ins.ExecContext(ctx, v); err != nil {
			return fmt.Errorf("inserting vertex %d: %w", v, err)
		}
	}

	ine, err := tx.PrepareContext(ctx, `INSERT INTO edges (id, src, tgt) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing edge insert: %w", err)
	}
	defer ine.Close()
	for id, e := range d.edges {
		if _, err := ine.ExecContext(ctx, id, e.src, e.tgt); err != nil {
			return fmt.Errorf("inserting edge %d: %w", id, err)
		}
	}

	if maps != nil {
		if err := flushProps(ctx, tx, maps); err != nil {
			return err
		}
	}

	return nil
}

// flushProps stores every value lexically: the kind by its type name, the
// value by its printed form. Row order follows map insertion order, then
// first-put order inside each map, so Load rebuilds the maps as they were.
func flushProps(ctx context.Context, tx *sql.Tx, maps *prop.Maps) error {
	inp, err := tx.PrepareContext(ctx,
		`INSERT INTO properties (domain, name, kind, entity, value) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing property insert: %w", err)
	}
	defer inp.Close()

	for _, m := range maps.All() {
		domain := m.Domain().String()
		kind := m.Kind().TypeName()
		if v, ok := m.Graph(); ok {
			if _, err := inp.ExecContext(ctx, domain, m.Name(), kind, nil, attr.Print(v)); err != nil {
				return fmt.Errorf("inserting graph property %q: %w", m.Name(), err)
			}
		}
		for _, entity := range m.Entities() {
			handle, ok := entity.(int)
			if !ok {
				return fmt.Errorf("property %q entity %v: %w", m.Name(), entity, ErrForeignHandle)
			}
			v, _ := m.Get(entity)
			if _, err := inp.ExecContext(ctx, domain, m.Name(), kind, handle, attr.Print(v)); err != nil {
				return fmt.Errorf("inserting property %q of %d: %w", m.Name(), handle, err)
			}
		}
	}

	return nil
}

// ImportGraphML streams one GraphML document, plain or compressed, into
// the database: the document replaces the stored snapshot. With storeIDs
// the declared node and edge ids are kept as reserved property rows, so a
// later export reproduces them.
func ImportGraphML(ctx context.Context, db *DB, r io.Reader, storeIDs bool) error {
	maps := prop.NewMaps()
	mut := graphml.NewGraphMutator(db, maps)
	if err := graphml.ReadAuto(r, mut, storeIDs); err != nil {
		return err
	}

	return db.Flush(ctx, maps)
}
