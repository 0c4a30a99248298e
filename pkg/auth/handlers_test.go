// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chi "github.com/go-chi/chi/v5"
	gomock "go.uber.org/mock/gomock"

	"github.com/mylegitech/api/internal/logging"
	"github.com/mylegitech/api/internal/monitoring"
	"github.com/mylegitech/api/internal/tracing"
	"github.com/mylegitech/api/internal/types"
	"github.com/mylegitech/api/pkg/authentication"
	"github.com/mylegitech/api/pkg/tenant"
)

func newTestAPI(t *testing.T) (*chi.Mux, *MockServiceInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	service := NewMockServiceInterface(ctrl)
	api := NewAPI(service, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	mux := chi.NewMux()
	api.RegisterEndpoints(mux)
	api.RegisterPublicEndpoints(mux)
	return mux, service
}

func TestAPI_AcceptInvitation(t *testing.T) {
	const token = "6ba7b810-9dad-41d1-80b4-00c04fd430c8"

	tests := []struct {
		name       string
		body       string
		expect     func(service *MockServiceInterface)
		wantStatus int
	}{
		{
			name: "Accepted",
			body: `{"token": "` + token + `"}`,
			expect: func(service *MockServiceInterface) {
				service.EXPECT().AcceptInvitation(gomock.Any(), token).Return(&AcceptInvitationResult{
					User:          &types.User{ID: "u-1", Email: "new@acme.com"},
					Tenant:        &types.Tenant{ID: "t-1", Name: "Acme"},
					Role:          types.RoleMember,
					RequiresLogin: true,
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "MissingToken",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "MalformedToken",
			body:       `{"token": "not-a-uuid"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "Expired",
			body: `{"token": "` + token + `"}`,
			expect: func(service *MockServiceInterface) {
				service.EXPECT().AcceptInvitation(gomock.Any(), token).Return(nil, tenant.ErrInvitationExpired)
			},
			wantStatus: http.StatusGone,
		},
		{
			name: "Unknown",
			body: `{"token": "` + token + `"}`,
			expect: func(service *MockServiceInterface) {
				service.EXPECT().AcceptInvitation(gomock.Any(), token).Return(nil, tenant.ErrInvitationNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux, service := newTestAPI(t)
			if tt.expect != nil {
				tt.expect(service)
			}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/accept-invitation", strings.NewReader(tt.body))
			mux.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestAPI_ResetPassword(t *testing.T) {
	t.Run("KnownEmail", func(t *testing.T) {
		mux, service := newTestAPI(t)
		service.EXPECT().ResetPassword(gomock.Any(), "jane@acme.com").Return(nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/reset-password", strings.NewReader(`{"email": "jane@acme.com"}`))
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
		}

		var body map[string]string
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if body["message"] != resetPasswordMessage {
			t.Errorf("expected the uniform reset message, got %q", body["message"])
		}
	})

	t.Run("InvalidEmail", func(t *testing.T) {
		mux, _ := newTestAPI(t)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/reset-password", strings.NewReader(`{"email": "not-an-address"}`))
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
		}
	})
}

func TestAPI_Me(t *testing.T) {
	t.Run("Authenticated", func(t *testing.T) {
		mux, service := newTestAPI(t)
		service.EXPECT().Me(gomock.Any(), "u-1").Return(&types.User{ID: "u-1", Email: "jane@acme.com"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
		req = req.WithContext(authentication.WithPrincipal(req.Context(), &authentication.Principal{UserID: "u-1"}))

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
		}
		var user types.User
		if err := json.NewDecoder(rec.Body).Decode(&user); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if user.Email != "jane@acme.com" {
			t.Errorf("expected email jane@acme.com, got %s", user.Email)
		}
	})

	t.Run("NoPrincipal", func(t *testing.T) {
		mux, _ := newTestAPI(t)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil))

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
		}
	})
}
