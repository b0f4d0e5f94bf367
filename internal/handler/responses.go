package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/enderryno/nuclearcraft-items/internal/domain"
	"github.com/enderryno/nuclearcraft-items/internal/naming"
)

// Standard response types for consistent API responses

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode first so an encoding failure can still produce a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// RespondError sends a JSON error envelope. Server middleware uses it too
// so every rejection has the same shape.
func RespondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgItemNotFoundError  = "Item not found"
	ErrMsgAmbiguousNameError = "More than one item matches that name"
	ErrMsgInvalidItemIDError = "Item id must be a positive integer"
	ErrMsgMissingQueryError  = "Query parameter 'q' is required"
)

// mapErrorToResponse maps domain errors to HTTP status codes and user-facing messages
func mapErrorToResponse(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, naming.ErrAmbiguousName):
		return http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest, ErrMsgInvalidItemIDError
	default:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
}

// respondServiceError logs unexpected errors and writes the mapped response
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := mapErrorToResponse(err)
	if status >= http.StatusInternalServerError {
		slog.Default().Error("Request failed", "path", r.URL.Path, "error", err)
	}
	RespondError(w, status, message)
}
