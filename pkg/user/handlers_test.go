// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package user

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chi "github.com/go-chi/chi/v5"
	gomock "go.uber.org/mock/gomock"

	"github.com/mylegitech/api/internal/authorization"
	"github.com/mylegitech/api/internal/logging"
	"github.com/mylegitech/api/internal/monitoring"
	"github.com/mylegitech/api/internal/tracing"
	"github.com/mylegitech/api/internal/types"
	"github.com/mylegitech/api/pkg/authentication"
)

func newTestAPI(t *testing.T) (*chi.Mux, *MockServiceInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	service := NewMockServiceInterface(ctrl)
	api := NewAPI(service, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	mux := chi.NewMux()
	api.RegisterEndpoints(mux)
	return mux, service
}

func authenticatedRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	return req.WithContext(authentication.WithPrincipal(req.Context(), &authentication.Principal{UserID: "u-1"}))
}

func TestAPI_UpdateProfile(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		expect     func(service *MockServiceInterface)
		wantStatus int
	}{
		{
			name: "Updated",
			body: `{"firstName": "Jane"}`,
			expect: func(service *MockServiceInterface) {
				service.EXPECT().UpdateProfile(gomock.Any(), "u-1", ProfileUpdate{FirstName: strPtr("Jane")}).
					Return(&types.User{ID: "u-1", FirstName: strPtr("Jane")}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "InvalidEmail",
			body:       `{"email": "not-an-email"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "EmailTaken",
			body: `{"email": "taken@acme.com"}`,
			expect: func(service *MockServiceInterface) {
				service.EXPECT().UpdateProfile(gomock.Any(), "u-1", gomock.Any()).Return(nil, ErrEmailAlreadyTaken)
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux, service := newTestAPI(t)
			if tt.expect != nil {
				tt.expect(service)
			}

			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, authenticatedRequest(http.MethodPatch, "/api/v1/users/me", tt.body))

			if rec.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestAPI_SwitchTenant(t *testing.T) {
	const tenantID = "018f3a2b-9dad-7dd1-80b4-00c04fd430c8"

	t.Run("Switched", func(t *testing.T) {
		mux, service := newTestAPI(t)
		service.EXPECT().SwitchTenant(gomock.Any(), "u-1", tenantID).
			Return(&types.Tenant{ID: tenantID, Name: "Acme", MyRole: types.RoleMember}, nil)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, authenticatedRequest(http.MethodPost, "/api/v1/users/me/switch-tenant", `{"tenantId": "`+tenantID+`"}`))

		if rec.Code != http.StatusOK {
			t.Errorf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
		}
	})

	t.Run("Forbidden", func(t *testing.T) {
		mux, service := newTestAPI(t)
		service.EXPECT().SwitchTenant(gomock.Any(), "u-1", tenantID).
			Return(nil, authorization.ErrTenantAccessDenied)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, authenticatedRequest(http.MethodPost, "/api/v1/users/me/switch-tenant", `{"tenantId": "`+tenantID+`"}`))

		if rec.Code != http.StatusForbidden {
			t.Errorf("expected status %d, got %d", http.StatusForbidden, rec.Code)
		}
	})

	t.Run("MissingTenantID", func(t *testing.T) {
		mux, _ := newTestAPI(t)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, authenticatedRequest(http.MethodPost, "/api/v1/users/me/switch-tenant", `{}`))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
		}
	})
}

func TestAPI_GetProfile_Unauthenticated(t *testing.T) {
	mux, _ := newTestAPI(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestAPI_DeleteAccount(t *testing.T) {
	t.Run("Deleted", func(t *testing.T) {
		mux, service := newTestAPI(t)
		service.EXPECT().DeleteAccount(gomock.Any(), "u-1").Return(nil)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, authenticatedRequest(http.MethodDelete, "/api/v1/users/me", ""))

		if rec.Code != http.StatusNoContent {
			t.Errorf("expected status %d, got %d", http.StatusNoContent, rec.Code)
		}
	})

	t.Run("StillOwnsTenants", func(t *testing.T) {
		mux, service := newTestAPI(t)
		service.EXPECT().DeleteAccount(gomock.Any(), "u-1").Return(ErrOwnedTenants)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, authenticatedRequest(http.MethodDelete, "/api/v1/users/me", ""))

		if rec.Code != http.StatusConflict {
			t.Errorf("expected status %d, got %d", http.StatusConflict, rec.Code)
		}
	})
}
