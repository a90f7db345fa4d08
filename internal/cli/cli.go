// Package cli implements the grafio command-line interface.
//
// The commands move attributed graphs between the formats the library
// speaks: GraphML (plain, gzip or zstd), YAML documents, Graphviz DOT and
// SQLite snapshot files. Formats are picked by file extension, so
// `grafio convert g.graphml g.db` is the whole invocation.
//
// # Commands
//
//   - convert: read one graph, write it in another format
//   - validate: parse inputs concurrently and report what fails
//   - info: print a summary of one graph
//   - gen: write a generated graph (path, cycle, complete, star, grid, random)
//   - render: rasterize a graph to SVG or PNG through Graphviz
//
// # Logging
//
// All commands log progress to stderr and support --verbose (-v) for
// debug detail. Loggers travel through context.Context. Data output
// (info summaries) goes to stdout.
//
// # Configuration
//
// --config names a TOML file supplying defaults for flags the invocation
// leaves unset; explicit flags always win.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger builds the stderr logger commands report progress on.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs completion of one operation with its elapsed time.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const (
	loggerKey ctxKey = iota
	configKey
)

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext falls back to log.Default so commands always have a
// logger even when the root setup was bypassed in tests.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}

	return log.Default()
}

func withConfig(ctx context.Context, c *Config) context.Context {
	return context.WithValue(ctx, configKey, c)
}

func configFromContext(ctx context.Context) *Config {
	if c, ok := ctx.Value(configKey).(*Config); ok {
		return c
	}

	return defaultConfig()
}
