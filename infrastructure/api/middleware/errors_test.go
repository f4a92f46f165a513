package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iagovirgilio/vocal-app/application/service"
	"github.com/iagovirgilio/vocal-app/infrastructure/api/jsonapi"
)

func TestAPIError(t *testing.T) {
	err := NewAPIError(404, "voice not found", nil)

	assert.Equal(t, 404, err.Status())
	assert.Equal(t, "voice not found", err.Message())
	assert.Equal(t, "api error 404: voice not found", err.Error())
}

func TestAPIError_WithCause(t *testing.T) {
	cause := errors.New("underlying error")
	err := NewAPIError(500, "internal error", cause)

	assert.Equal(t, "api error 500: internal error: underlying error", err.Error())
	assert.Equal(t, cause, err.Unwrap())
}

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"invalid note", fmt.Errorf("%w: X9", service.ErrInvalidNoteFormat), http.StatusBadRequest, "invalid_note_format"},
		{"inverted range", service.ErrInvertedRange, http.StatusBadRequest, "inverted_range"},
		{"invalid mode", service.ErrInvalidMode, http.StatusBadRequest, "invalid_mode"},
		{"negative margin", service.ErrNegativeMargin, http.StatusBadRequest, "negative_margin"},
		{"margin exceeds range", service.ErrMarginExceedsRange, http.StatusUnprocessableEntity, "margin_exceeds_range"},
		{"unknown voice", fmt.Errorf("%w: %q", service.ErrUnknownVoice, "ghost"), http.StatusNotFound, "unknown_voice"},
		{"api error", NewAPIError(http.StatusBadRequest, "malformed body", nil), http.StatusBadRequest, "api_error"},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code := errorStatus(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transpositions", nil)

	WriteError(rec, req, fmt.Errorf("%w: Xb3", service.ErrInvalidNoteFormat), nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/vnd.api+json", rec.Header().Get("Content-Type"))

	var doc jsonapi.Document
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	require.Len(t, doc.Errors, 1)
	assert.Equal(t, "invalid_note_format", doc.Errors[0].Code)
	assert.Contains(t, doc.Errors[0].Detail, "Xb3")
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteJSON(rec, http.StatusOK, map[string]string{"key": "D"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"key":"D"}`, rec.Body.String())
}
