// Package httputil holds the HTTP plumbing shared by the dashboard server:
// JSON responses, error-to-status mapping and request logging.
//
// # Errors
//
// [WriteError] maps structured errors to status codes with [StatusFor]:
//
//   - layout input failures (INVALID_CONFIG, INVALID_RECORD, EMPTY_TOTAL,
//     EMPTY_DATASET) become 422 Unprocessable Entity
//   - malformed requests (INVALID_VIEW, INVALID_FORMAT, ...) become 400
//   - NOT_FOUND and UNSUPPORTED become 404
//   - anything else is a 500
//
// The body is {"error": message, "code": code}, where message is
// [errors.UserMessage].
//
// # Logging
//
// [RequestLogger] logs one line per request with the chi route pattern and
// fires the [observability.HTTPHooks]. It stores a request-scoped logger in
// the context; handlers retrieve it with log.FromContext.
//
//	r := chi.NewRouter()
//	r.Use(middleware.RequestID, httputil.RequestLogger(logger), middleware.Recoverer)
//
// [errors.UserMessage]: github.com/matzehuels/cansdash/pkg/errors.UserMessage
// [observability.HTTPHooks]: github.com/matzehuels/cansdash/pkg/observability.HTTPHooks
package httputil
