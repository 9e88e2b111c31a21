package httputil

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/cansdash/pkg/observability"
)

// RequestLogger logs each request after it completes. Responses with a 5xx
// status are logged as errors, 4xx as warnings and the rest at info level.
func RequestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = log.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			hooks := observability.HTTP()
			hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

			reqLogger := logger
			if id := middleware.GetReqID(r.Context()); id != "" {
				reqLogger = logger.With("req", id)
			}
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(log.WithContext(r.Context(), reqLogger)))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			route := Route(r)
			d := time.Since(start)
			hooks.OnResponse(r.Context(), r.Method, route, status, d)

			kv := []any{"method", r.Method, "route", route, "status", status, "bytes", ww.BytesWritten(), "duration", d}
			switch {
			case status >= 500:
				reqLogger.Error("request", kv...)
			case status >= 400:
				reqLogger.Warn("request", kv...)
			default:
				reqLogger.Info("request", kv...)
			}
		})
	}
}

// Route is the matched chi route pattern, or the raw path when no route
// matched.
func Route(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}
