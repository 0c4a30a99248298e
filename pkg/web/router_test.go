// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	gomock "go.uber.org/mock/gomock"

	"github.com/mylegitech/api/internal/logging"
	"github.com/mylegitech/api/internal/monitoring"
	"github.com/mylegitech/api/internal/tracing"
	"github.com/mylegitech/api/internal/types"
	"github.com/mylegitech/api/pkg/auth"
	"github.com/mylegitech/api/pkg/authentication"
	"github.com/mylegitech/api/pkg/document"
	"github.com/mylegitech/api/pkg/item"
	"github.com/mylegitech/api/pkg/tenant"
	"github.com/mylegitech/api/pkg/user"
)

//go:generate mockgen -build_flags=--mod=mod -package web -destination ./mock_db.go -source=../../internal/db/interfaces.go

type testRouter struct {
	handler     http.Handler
	db          *MockDBClientInterface
	users       *authentication.MockUserResolverInterface
	authService *auth.MockServiceInterface
}

func newTestRouter(t *testing.T) *testRouter {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor()
	logger := logging.NewNoopLogger()

	users := authentication.NewMockUserResolverInterface(ctrl)
	tenants := authentication.NewMockTenantAccessCheckerInterface(ctrl)
	dbClient := NewMockDBClientInterface(ctrl)
	authService := auth.NewMockServiceInterface(ctrl)

	authn := authentication.NewMiddleware(
		authentication.NewNoopVerifier(),
		users,
		tenants,
		tracer, monitor, logger,
	)

	handler := NewRouter(
		authn,
		dbClient,
		tenant.NewAPI(nil, tracer, monitor, logger),
		auth.NewAPI(authService, tracer, monitor, logger),
		user.NewAPI(nil, tracer, monitor, logger),
		item.NewAPI(nil, tracer, monitor, logger),
		document.NewAPI(nil, tracer, monitor, logger),
		[]string{"*"},
		tracer, monitor, logger,
	)
	return &testRouter{handler: handler, db: dbClient, users: users, authService: authService}
}

func TestRouter_StatusIsPublic(t *testing.T) {
	router := newTestRouter(t)

	recorder := httptest.NewRecorder()
	router.handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/version", nil))

	if recorder.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", recorder.Code)
	}
}

func TestRouter_MetricsIsPublic(t *testing.T) {
	router := newTestRouter(t)

	recorder := httptest.NewRecorder()
	router.handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/metrics", nil))

	if recorder.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", recorder.Code)
	}
}

func TestRouter_ProtectedRouteRequiresToken(t *testing.T) {
	router := newTestRouter(t)

	recorder := httptest.NewRecorder()
	router.handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/tenants", nil))

	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", recorder.Code)
	}
}

func TestRouter_InvitationValidationIsPublic(t *testing.T) {
	router := newTestRouter(t)

	// Reaching the handler instead of the authentication middleware is
	// what matters here; without a token parameter the handler rejects
	// with a 400 rather than a 401.
	recorder := httptest.NewRecorder()
	router.handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/invitations/validate", nil))

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", recorder.Code)
	}
}

func TestRouter_InvitationAcceptanceRunsInTransaction(t *testing.T) {
	router := newTestRouter(t)

	// The membership upsert and the accepted flag must commit together,
	// so the public acceptance route goes through the request transaction
	// like every other write.
	router.db.EXPECT().WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
	router.authService.EXPECT().AcceptInvitation(gomock.Any(), "8d9390ac-6cba-4cc9-a8a9-5d1f2c3b4a5e").
		Return(&auth.AcceptInvitationResult{
			User: &types.User{ID: "u-9", Email: "jean@exemple.fr"},
			Role: types.RoleMember,
		}, nil)

	body := strings.NewReader(`{"token":"8d9390ac-6cba-4cc9-a8a9-5d1f2c3b4a5e"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/accept-invitation", body)
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.handler.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
}

func TestRouter_AuthenticatedRequestCarriesPrincipal(t *testing.T) {
	router := newTestRouter(t)

	router.users.EXPECT().SyncUser(gomock.Any(), gomock.Any()).
		Return(&types.User{ID: "u-1", Email: "jean@exemple.fr"}, nil)
	router.authService.EXPECT().Me(gomock.Any(), "u-1").
		Return(&types.User{ID: "u-1", Email: "jean@exemple.fr"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer kc-subject:jean@exemple.fr")

	recorder := httptest.NewRecorder()
	router.handler.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
}
