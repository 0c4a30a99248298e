// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package authentication

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/mylegitech/api/internal/authorization"
	"github.com/mylegitech/api/internal/logging"
	"github.com/mylegitech/api/internal/monitoring"
	"github.com/mylegitech/api/internal/tracing"
)

// TenantHeader selects the active tenant for the request. Optional; tenant
// scoped endpoints reject requests without it.
const TenantHeader = "X-Tenant-ID"

type Middleware struct {
	verifier TokenVerifierInterface
	users    UserResolverInterface
	tenants  TenantAccessCheckerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Authenticate verifies the bearer token, syncs the identity to a local
// user and injects the principal into the request context. When the tenant
// header is present the membership is verified up front so handlers never
// see a principal scoped to a tenant the user does not belong to.
func (m *Middleware) Authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Authenticate")
			defer span.End()

			token, found := m.getBearerToken(r.Header)
			if !found {
				m.errorResponse(w, r, http.StatusUnauthorized, "missing authorization header")
				return
			}

			identity, err := m.verifier.VerifyToken(ctx, token)
			if err != nil {
				m.logger.Debugf("JWT verification failed: %v", err)
				m.errorResponse(w, r, http.StatusUnauthorized, "invalid token")
				return
			}

			user, err := m.users.SyncUser(ctx, identity)
			if err != nil {
				m.logger.Errorf("failed to sync user %s: %v", identity.Subject, err)
				m.errorResponse(w, r, http.StatusInternalServerError, "failed to resolve user")
				return
			}

			principal := &Principal{
				UserID: user.ID,
				Email:  user.Email,
			}

			if tenantID := r.Header.Get(TenantHeader); tenantID != "" {
				if _, err := m.tenants.CheckTenantAccess(ctx, user.ID, tenantID); err != nil {
					if errors.Is(err, authorization.ErrTenantAccessDenied) {
						m.errorResponse(w, r, http.StatusForbidden, "user does not have access to this tenant")
						return
					}
					m.logger.Errorf("failed to check tenant access: %v", err)
					m.errorResponse(w, r, http.StatusInternalServerError, "failed to resolve tenant")
					return
				}
				principal.TenantID = tenantID
			}

			m.logger.Security().AuthnSuccess(user.ID)

			ctx = WithPrincipal(ctx, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (m *Middleware) getBearerToken(headers http.Header) (string, bool) {
	bearer := headers.Get("Authorization")
	if bearer == "" {
		return "", false
	}

	// Only support "Bearer <token>" format (RFC 6750)
	if !strings.HasPrefix(bearer, "Bearer ") {
		return "", false
	}

	return strings.TrimPrefix(bearer, "Bearer "), true
}

func (m *Middleware) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  status,
		"message": message,
	}); err != nil {
		m.logger.Errorf("failed to encode error response: %v", err)
	}
}

func NewMiddleware(
	verifier TokenVerifierInterface,
	users UserResolverInterface,
	tenants TenantAccessCheckerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Middleware {
	return &Middleware{
		verifier: verifier,
		users:    users,
		tenants:  tenants,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
