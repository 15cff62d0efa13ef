package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"storefront/internal/models"
)

// ErrorResponse is the body of every failed API call
type ErrorResponse struct {
	Error string `json:"error"`
}

// statusFor maps an error kind to its HTTP status
func statusFor(kind models.ErrorKind) int {
	switch kind {
	case models.KindValidation:
		return http.StatusBadRequest
	case models.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeJSON writes data as a JSON response with the given status
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", slog.Any("err", err))
	}
}

// writeError writes err using its kind for the status code. Upstream
// failures are logged with their cause since the client only sees the message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind := models.KindOf(err)
	if kind == models.KindUpstreamFailure {
		slog.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("err", err),
		)
	}
	writeJSON(w, statusFor(kind), ErrorResponse{Error: models.MessageOf(err)})
}

// decodeJSON reads the request body into v
func decodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return models.NewValidationError("Invalid request body")
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return models.NewValidationError("Invalid request body")
	}
	return nil
}
