package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"

	cerrors "github.com/matzehuels/cansdash/pkg/errors"
)

// ErrorBody is the JSON body of an error response.
type ErrorBody struct {
	Error string       `json:"error"`
	Code  cerrors.Code `json:"code,omitempty"`
}

// StatusFor maps err to an HTTP status code.
func StatusFor(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if cerrors.IsLayoutError(err) {
		return http.StatusUnprocessableEntity
	}
	switch cerrors.GetCode(err) {
	case cerrors.ErrCodeInvalidView, cerrors.ErrCodeInvalidFormat, cerrors.ErrCodeInvalidTheme,
		cerrors.ErrCodeInvalidInput, cerrors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	case cerrors.ErrCodeNotFound, cerrors.ErrCodeFileNotFound, cerrors.ErrCodeUnsupported:
		return http.StatusNotFound
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// WriteJSON writes v as JSON with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn("encode response", "err", err)
	}
}

// WriteError writes err as a JSON error response and returns the status.
func WriteError(w http.ResponseWriter, err error) int {
	status := StatusFor(err)
	body := ErrorBody{Error: cerrors.UserMessage(err), Code: cerrors.GetCode(err)}
	if status == http.StatusInternalServerError && body.Code == "" {
		body.Error = http.StatusText(status)
	}
	WriteJSON(w, status, body)
	return status
}
