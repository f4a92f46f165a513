package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/iagovirgilio/vocal-app/application/service"
	"github.com/iagovirgilio/vocal-app/infrastructure/api/jsonapi"
)

// APIError is an error with an associated HTTP status code.
type APIError struct {
	status  int
	message string
	cause   error
}

// NewAPIError creates an APIError with the given status, message and
// optional cause.
func NewAPIError(status int, message string, cause error) *APIError {
	return &APIError{status: status, message: message, cause: cause}
}

// Status returns the HTTP status code.
func (e *APIError) Status() int { return e.status }

// Message returns the human-readable message.
func (e *APIError) Message() string { return e.message }

func (e *APIError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("api error %d: %s: %v", e.status, e.message, e.cause)
	}
	return fmt.Sprintf("api error %d: %s", e.status, e.message)
}

// Unwrap returns the underlying cause, if any.
func (e *APIError) Unwrap() error { return e.cause }

// errorStatus maps known error kinds to an HTTP status and a stable
// machine-readable code.
func errorStatus(err error) (int, string) {
	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr.Status(), "api_error"
	case errors.Is(err, service.ErrInvalidNoteFormat):
		return http.StatusBadRequest, "invalid_note_format"
	case errors.Is(err, service.ErrInvertedRange):
		return http.StatusBadRequest, "inverted_range"
	case errors.Is(err, service.ErrInvalidMode):
		return http.StatusBadRequest, "invalid_mode"
	case errors.Is(err, service.ErrNegativeMargin):
		return http.StatusBadRequest, "negative_margin"
	case errors.Is(err, service.ErrMarginExceedsRange):
		return http.StatusUnprocessableEntity, "margin_exceeds_range"
	case errors.Is(err, service.ErrUnknownVoice):
		return http.StatusNotFound, "unknown_voice"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

// WriteError writes a JSON:API formatted error response, choosing the
// status code from the error kind.
func WriteError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	status, code := errorStatus(err)

	detail := err.Error()
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		detail = apiErr.Message()
	}

	requestID := chimiddleware.GetReqID(r.Context())

	if logger != nil {
		logger.Error("request error",
			"request_id", requestID,
			"status", status,
			"code", code,
			"error", err.Error(),
			"path", r.URL.Path,
		)
	}

	resp := jsonapi.NewErrorResponse(jsonapi.Error{
		ID:     requestID,
		Status: http.StatusText(status),
		Code:   code,
		Detail: detail,
	})

	w.Header().Set("Content-Type", "application/vnd.api+json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// WriteJSON writes a JSON response.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
