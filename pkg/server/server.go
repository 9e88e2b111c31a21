// Package server serves the dashboard over HTTP.
//
// The root page shows one tab at a time with the KPI cards, a markdown
// description and the tab's chart inlined as SVG. Every view can also be
// fetched as an artifact:
//
//	GET /                          tabbed page (?view=compare&selected=9)
//	GET /views/{view}/{format}     svg, png, pdf, json or html
//	GET /api/views                 tab metadata
//	GET /api/summary               KPIs
//	GET /healthz                   liveness
//
// The dataset is read-only after [New]; each request runs the pipeline on
// its own, so handlers share no mutable state.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/matzehuels/cansdash/pkg/dashboard"
	"github.com/matzehuels/cansdash/pkg/httputil"
	"github.com/matzehuels/cansdash/pkg/pipeline"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Server renders dashboard views on request.
type Server struct {
	runner *pipeline.Runner
	data   dashboard.Data
	theme  string
	logger *log.Logger
	md     goldmark.Markdown
	router chi.Router
}

// Option configures a [Server].
type Option func(*Server)

// WithTheme sets the theme used when a request does not name one.
func WithTheme(theme string) Option {
	return func(s *Server) { s.theme = theme }
}

// New returns a server for data. A nil runner renders without a cache and
// a nil logger selects the default logger.
func New(runner *pipeline.Runner, data dashboard.Data, logger *log.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, logger)
	}
	s := &Server{
		runner: runner,
		data:   data,
		theme:  pipeline.DefaultTheme,
		logger: logger,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(httputil.RequestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/", s.handlePage)
	r.Get("/healthz", s.handleHealth)
	r.Get("/views/{view}/{format}", s.handleArtifact)
	r.Route("/api", func(r chi.Router) {
		r.Get("/views", s.handleViews)
		r.Get("/summary", s.handleSummary)
	})
	return r
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("serving dashboard", "addr", addr)

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
