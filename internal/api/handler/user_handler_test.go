package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pulsewell/health-insights-api/internal/domain"
)

func TestUserHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		wantStatusCode int
	}{
		{
			name:           "valid timezone",
			body:           `{"timezone": "Europe/Warsaw"}`,
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "UTC",
			body:           `{"timezone": "UTC"}`,
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "invalid timezone",
			body:           `{"timezone": "Mars/Olympus_Mons"}`,
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "missing timezone",
			body:           `{}`,
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "invalid JSON",
			body:           `{oops`,
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewUserHandler(&MockUserService{})

			req := httptest.NewRequest(http.MethodPost, "/v1/users", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			handler.Create(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Create() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestUserHandler_GetByID(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		userID         string
		mockService    *MockUserService
		wantStatusCode int
	}{
		{
			name:           "found",
			userID:         userID.String(),
			mockService:    &MockUserService{},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "invalid ID",
			userID:         "abc",
			mockService:    &MockUserService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:   "not found",
			userID: uuid.New().String(),
			mockService: &MockUserService{
				getByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
					return nil, domain.ErrNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewUserHandler(tt.mockService)

			req := httptest.NewRequest(http.MethodGet, "/v1/users/"+tt.userID, nil)
			rec := httptest.NewRecorder()

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("userId", tt.userID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			handler.GetByID(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("GetByID() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestUserHandler_Create_ReturnsUserResponse(t *testing.T) {
	handler := NewUserHandler(&MockUserService{})

	req := httptest.NewRequest(http.MethodPost, "/v1/users", bytes.NewBufferString(`{"timezone": "UTC"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body: %s", rec.Code, rec.Body.String())
	}
	var resp domain.UserResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp.ID == uuid.Nil {
		t.Error("expected an assigned user ID")
	}
	if resp.Timezone != "UTC" {
		t.Errorf("timezone = %s, want UTC", resp.Timezone)
	}
}
