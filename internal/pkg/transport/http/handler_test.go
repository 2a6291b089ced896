package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/ijalalfrz/airline-booking-simulator/internal/app/dto"
	"github.com/ijalalfrz/airline-booking-simulator/internal/pkg/exception"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionID = "6f1c1f5e-3a4b-4c55-9a0e-2b7d7f0a1c11"

type renameRequest struct {
	dto.SessionRef
	Name string `json:"name"`
}

func (r *renameRequest) Bind(_ *http.Request) error {
	if r.Name == "" {
		return dto.ErrInvalidRequest.WithMessage("name is required")
	}
	return nil
}

func echoEndpoint(_ context.Context, req interface{}) (interface{}, error) {
	r := req.(*renameRequest)
	if r.Name == "boom" {
		return nil, errors.New("database exploded")
	}
	if r.Name == "gone" {
		return nil, exception.New("SESSION_NOT_FOUND", http.StatusNotFound, "session not found")
	}
	return map[string]string{"session": r.SessionID, "name": r.Name}, nil
}

func newTestRouter() *chi.Mux {
	router := chi.NewRouter()
	router.Post("/sessions/{id}", MakeHandlerFunc(echoEndpoint,
		DecodeSessionRequest[renameRequest], ResponseWithBody))
	router.Put("/sessions/{id}", MakeHandlerFunc(echoEndpoint,
		DecodeSessionRequest[renameRequest], CreatedWithBody))
	return router
}

func TestMakeHandlerFunc_Closure(t *testing.T) {
	handlerRequest := func(method, body string, wantStatus int, wantBody map[string]string) func(t *testing.T) {
		return func(t *testing.T) {
			req := httptest.NewRequest(method, "/sessions/"+testSessionID, strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			newTestRouter().ServeHTTP(rec, req)

			assert.Equal(t, wantStatus, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

			var got map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, wantBody, got)
		}
	}

	t.Run("success", handlerRequest(http.MethodPost, `{"name":"trip"}`, http.StatusOK,
		map[string]string{"session": testSessionID, "name": "trip"}))
	t.Run("created", handlerRequest(http.MethodPut, `{"name":"trip"}`, http.StatusCreated,
		map[string]string{"session": testSessionID, "name": "trip"}))
	t.Run("validation_error", handlerRequest(http.MethodPost, `{"name":""}`, http.StatusBadRequest,
		map[string]string{"error": "name is required", "kind": "INVALID_REQUEST"}))
	t.Run("malformed_body", handlerRequest(http.MethodPost, `{"name":`, http.StatusBadRequest,
		map[string]string{"error": "malformed request body", "kind": "INVALID_REQUEST"}))
	t.Run("empty_body", handlerRequest(http.MethodPost, ``, http.StatusBadRequest,
		map[string]string{"error": "request body is required", "kind": "INVALID_REQUEST"}))
	t.Run("application_error", handlerRequest(http.MethodPost, `{"name":"gone"}`, http.StatusNotFound,
		map[string]string{"error": "session not found", "kind": "SESSION_NOT_FOUND"}))
	t.Run("unknown_error", handlerRequest(http.MethodPost, `{"name":"boom"}`, http.StatusInternalServerError,
		map[string]string{"error": "database exploded"}))
}

func TestDocumentResponse(t *testing.T) {
	rec := httptest.NewRecorder()

	err := DocumentResponse(context.Background(), rec, dto.Document{
		Filename:    "pass.pdf",
		ContentType: "application/pdf",
		Body:        []byte("%PDF-1.3"),
	})
	require.NoError(t, err)

	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="pass.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.3", rec.Body.String())

	assert.Error(t, DocumentResponse(context.Background(), httptest.NewRecorder(), "not a document"))
}
