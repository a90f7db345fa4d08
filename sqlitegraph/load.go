package sqlitegraph

import (
	"database/sql"
	"fmt"

	"github.com/katalvlaran/grafio/attr"
	"github.com/katalvlaran/grafio/core"
	"github.com/katalvlaran/grafio/prop"
)

// Load reads the stored snapshot back into an in-memory attributed graph.
// Vertices and edges come back under the same dense handles they were
// stored with, property maps in their original insertion order, so an
// export of the result reproduces the imported document.
func (d *DB) Load() (*core.Attributed, error) {
	a := core.NewAttributed(core.WithDirected(d.directed))
	n, err := loadVertices(d.db, a.Graph)
	if err != nil {
		return nil, err
	}
	m, err := loadEdges(d.db, a.Graph)
	if err != nil {
		return nil, err
	}
	if err := loadProps(d.db, a.Props, n, m); err != nil {
		return nil, err
	}

	return a, nil
}

// loadVertices materializes one vertex per row. Stored ids must be the
// dense range 0..n-1, anything else cannot be addressed by edge endpoints
// or property rows.
func loadVertices(db *sql.DB, g *core.Graph) (int, error) {
	rows, err := db.Query(`SELECT id FROM vertices ORDER BY id`)
	if err != nil {
		return 0, fmt.Errorf("reading vertices: %w", err)
	}
	defer rows.Close()

	n := 0
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return 0, fmt.Errorf("scanning vertex: %w", err)
		}
		if id != n {
			return 0, fmt.Errorf("vertex ids not dense at %d: %w", id, ErrCorrupt)
		}
		g.AddVertex()
		n++
	}

	return n, rows.Err()
}

func loadEdges(db *sql.DB, g *core.Graph) (int, error) {
	rows, err := db.Query(`SELECT id, src, tgt FROM edges ORDER BY id`)
	if err != nil {
		return 0, fmt.Errorf("reading edges: %w", err)
	}
	defer rows.Close()

	m := 0
	for rows.Next() {
		var id, src, tgt int
		if err := rows.Scan(&id, &src, &tgt); err != nil {
			return 0, fmt.Errorf("scanning edge: %w", err)
		}
		if id != m {
			return 0, fmt.Errorf("edge ids not dense at %d: %w", id, ErrCorrupt)
		}
		if _, err := g.AddEdge(core.VertexID(src), core.VertexID(tgt)); err != nil {
			return 0, fmt.Errorf("edge %d (%d->%d): %v: %w", id, src, tgt, err, ErrCorrupt)
		}
		m++
	}

	return m, rows.Err()
}

// loadProps rebuilds the property maps from their lexical rows. Unknown
// kinds or domains, out-of-range entities and unparsable values all mean
// the file was written by something else, or damaged since.
func loadProps(db *sql.DB, maps *prop.Maps, vertices, edges int) error {
	rows, err := db.Query(`SELECT domain, name, kind, entity, value FROM properties ORDER BY rowid`)
	if err != nil {
		return fmt.Errorf("reading properties: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var domain, name, kindName, text string
		var entity sql.NullInt64
		if err := rows.Scan(&domain, &name, &kindName, &entity, &text); err != nil {
			return fmt.Errorf("scanning property: %w", err)
		}
		if err := restoreProp(maps, domain, name, kindName, entity, text, vertices, edges); err != nil {
			return err
		}
	}

	return rows.Err()
}

func restoreProp(maps *prop.Maps, domain, name, kindName string, entity sql.NullInt64, text string, vertices, edges int) error {
	k, ok := attr.KindOf(kindName)
	if !ok {
		return fmt.Errorf("property %q has kind %q: %w", name, kindName, ErrCorrupt)
	}
	var dom prop.Domain
	switch domain {
	case prop.DomainGraph.String():
		dom = prop.DomainGraph
	case prop.DomainVertex.String():
		dom = prop.DomainVertex
	case prop.DomainEdge.String():
		dom = prop.DomainEdge
	default:
		return fmt.Errorf("property %q has domain %q: %w", name, domain, ErrCorrupt)
	}
	m, err := maps.Ensure(name, dom, k)
	if err != nil {
		return fmt.Errorf("property %q: %v: %w", name, err, ErrCorrupt)
	}
	v, err := attr.Parse(text, k)
	if err != nil {
		return fmt.Errorf("property %q value %q: %v: %w", name, text, err, ErrCorrupt)
	}

	switch dom {
	case prop.DomainGraph:
		if entity.Valid {
			return fmt.Errorf("graph property %q bound to entity %d: %w", name, entity.Int64, ErrCorrupt)
		}
		return m.SetGraph(v)
	case prop.DomainVertex:
		if !entity.Valid || entity.Int64 < 0 || entity.Int64 >= int64(vertices) {
			return fmt.Errorf("property %q references missing vertex: %w", name, ErrCorrupt)
		}
		return m.Put(core.VertexID(entity.Int64), v)
	default:
		if !entity.Valid || entity.Int64 < 0 || entity.Int64 >= int64(edges) {
			return fmt.Errorf("property %q references missing edge: %w", name, ErrCorrupt)
		}
		return m.Put(core.EdgeID(entity.Int64), v)
	}
}

// Stats summarizes the stored snapshot, not any unflushed buffer.
type Stats struct {
	Directed   bool
	Vertices   int
	Edges      int
	Properties int
}

// Stats counts the stored rows.
func (d *DB) Stats() (Stats, error) {
	s := Stats{Directed: d.directed}
	for _, c := range []struct {
		table string
		dst   *int
	}{
		{"vertices", &s.Vertices},
		{"edges", &s.Edges},
		{"properties", &s.Properties},
	} {
		if err := d.db.QueryRow(`SELECT COUNT(*) FROM ` + c.table).Scan(c.dst); err != nil {
			return Stats{}, fmt.Errorf("counting %s: %w", c.table, err)
		}
	}

	return s, nil
}
