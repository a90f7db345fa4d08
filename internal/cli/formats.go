package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/grafio/core"
	"github.com/katalvlaran/grafio/dot"
	"github.com/katalvlaran/grafio/graphml"
	"github.com/katalvlaran/grafio/prop"
	"github.com/katalvlaran/grafio/sqlitegraph"
	"github.com/katalvlaran/grafio/yamlgraph"
)

// fileFormat names one of the graph encodings picked by file extension.
type fileFormat uint8

const (
	formatGraphML fileFormat = iota + 1
	formatYAML
	formatDOT
	formatSQLite
)

func (f fileFormat) String() string {
	switch f {
	case formatGraphML:
		return "graphml"
	case formatYAML:
		return "yaml"
	case formatDOT:
		return "dot"
	case formatSQLite:
		return "sqlite"
	default:
		return "unknown"
	}
}

// detectFormat maps a path to its graph encoding. Compression extensions
// are allowed on GraphML only, where the codec handles them natively.
func detectFormat(path string) (fileFormat, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".gz", ".gzip", ".zst", ".zstd":
		inner := strings.ToLower(filepath.Ext(strings.TrimSuffix(path, ext)))
		if inner != ".graphml" && inner != ".xml" {
			return 0, fmt.Errorf("%s: compression is supported for GraphML only", path)
		}

		return formatGraphML, nil
	case ".graphml", ".xml":
		return formatGraphML, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	case ".dot", ".gv":
		return formatDOT, nil
	case ".db", ".sqlite", ".sqlite3":
		return formatSQLite, nil
	default:
		return 0, fmt.Errorf("%s: unrecognized graph extension %q", path, ext)
	}
}

// readGraph loads one graph file of any readable format. Directedness is
// probed from the file itself, so callers need no foreknowledge.
func readGraph(path string, storeIDs bool) (*core.Attributed, error) {
	f, err := detectFormat(path)
	if err != nil {
		return nil, err
	}

	switch f {
	case formatGraphML:
		return readDocument(path, graphml.DetectDirected,
			func(a *core.Attributed, r io.Reader) error { return a.ReadGraphMLAuto(r, storeIDs) })
	case formatYAML:
		return readDocument(path, yamlgraph.DetectDirected,
			func(a *core.Attributed, r io.Reader) error { return yamlgraph.Read(r, a.Mutator(), storeIDs) })
	case formatSQLite:
		directed, err := sqlitegraph.Directedness(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		db, err := sqlitegraph.Open(path, directed)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		defer db.Close()

		a, err := db.Load()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		return a, nil
	default:
		return nil, fmt.Errorf("%s: DOT files are write-only", path)
	}
}

// readDocument reads path once, probes its directedness, then replays it
// into a matching host.
func readDocument(path string, detect func(io.Reader) (bool, error), read func(*core.Attributed, io.Reader) error) (*core.Attributed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	directed, err := detect(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	a := core.NewAttributed(core.WithDirected(directed))
	if err := read(a, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return a, nil
}

// dotShape carries the DOT styling flags shared by convert and render.
type dotShape struct {
	name     string
	label    string
	allProps bool
}

func (s dotShape) options() []dot.Option {
	var opts []dot.Option
	if s.name != "" {
		opts = append(opts, dot.WithName(s.name))
	}
	if s.label != "" {
		opts = append(opts, dot.WithVertexLabel(s.label))
	}
	if s.allProps {
		opts = append(opts, dot.WithProperties())
	}

	return opts
}

// writeGraph stores a in the format path names.
func writeGraph(ctx context.Context, path string, a *core.Attributed, shape dotShape) error {
	f, err := detectFormat(path)
	if err != nil {
		return err
	}

	switch f {
	case formatGraphML:
		return writeFile(path, func(w io.Writer) error {
			return a.WriteGraphMLCompressed(w, graphml.CompressionForPath(path))
		})
	case formatYAML:
		return writeFile(path, func(w io.Writer) error {
			return yamlgraph.Write(w, a.View(), a.Props)
		})
	case formatDOT:
		return writeFile(path, func(w io.Writer) error {
			return dot.Write(w, a.View(), a.Props, shape.options()...)
		})
	default:
		return writeSQLite(ctx, path, a)
	}
}

func writeFile(path string, fn func(io.Writer) error) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := fn(out); err != nil {
		out.Close()

		return fmt.Errorf("%s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}

	return nil
}

// writeSQLite replays the graph through the GraphML codec into a database
// snapshot. Stored ids are carried over only when the source held them,
// so canonical graphs stay canonical.
func writeSQLite(ctx context.Context, path string, a *core.Attributed) error {
	db, err := sqlitegraph.Open(path, a.Graph.Directed())
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	defer db.Close()

	var buf bytes.Buffer
	if err := a.WriteGraphML(&buf); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := sqlitegraph.ImportGraphML(ctx, db, &buf, hasStoredIDs(a.Props)); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}

func hasStoredIDs(maps *prop.Maps) bool {
	_, v := maps.Lookup(prop.VertexIDName, prop.DomainVertex)
	_, e := maps.Lookup(prop.EdgeIDName, prop.DomainEdge)

	return v || e
}
