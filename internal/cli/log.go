// Package cli implements the cansdash command-line interface.
//
// # Commands
//
//   - render: write views as SVG, PNG, PDF, JSON or interactive HTML
//   - layout: print a view's chart primitives as JSON
//   - summary: KPI and per-center tables
//   - data: export or validate a dataset file
//   - serve: run the HTTP dashboard
//   - tui: browse the dashboard in the terminal
//   - cache: clear or locate the artifact cache
//
// # Configuration
//
// Every command loads settings through pkg/config: the --config file, then
// ./.env, then CANSDASH_* variables. Flags override the loaded values.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// logs pipeline, cache and HTTP events. Loggers are passed through
// context.Context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger with "HH:MM:SS.ms" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs an operation's completion with its elapsed time.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, e.g. "Rendered 3 views (1.234s)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return log.WithContext(ctx, l)
}

// loggerFromContext returns the command logger, or log.Default() when none
// is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	return log.FromContext(ctx)
}
