// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/mylegitech/api/internal/logging"
	"github.com/mylegitech/api/internal/monitoring"
	"github.com/mylegitech/api/internal/tracing"
	"github.com/mylegitech/api/pkg/authentication"
	"github.com/mylegitech/api/pkg/tenant"
)

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service:  service,
		validate: validator.New(),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v1/auth/me", a.me)
}

// RegisterPublicEndpoints registers the routes that must work before the
// caller can authenticate: invitation acceptance and password reset.
func (a *API) RegisterPublicEndpoints(mux *chi.Mux) {
	mux.Post("/api/v1/auth/accept-invitation", a.acceptInvitation)
	mux.Post("/api/v1/auth/reset-password", a.resetPassword)
}

type acceptInvitationRequest struct {
	Token string `json:"token" validate:"required,uuid4"`
}

func (a *API) acceptInvitation(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "auth.API.acceptInvitation")
	defer span.End()

	var req acceptInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "token is required")
		return
	}

	result, err := a.service.AcceptInvitation(ctx, req.Token)
	if err != nil {
		switch {
		case errors.Is(err, tenant.ErrInvitationNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, tenant.ErrInvitationAlreadyAccepted):
			writeError(w, http.StatusConflict, err.Error())
		case errors.Is(err, tenant.ErrInvitationExpired):
			writeError(w, http.StatusGone, err.Error())
		default:
			a.logger.Errorf("failed to accept invitation: %v", err)
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}

type resetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// The response never reveals whether an account exists for the address.
const resetPasswordMessage = "If a user with this email exists, a password reset email has been sent."

func (a *API) resetPassword(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "auth.API.resetPassword")
	defer span.End()

	var req resetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "a valid email is required")
		return
	}

	if err := a.service.ResetPassword(ctx, req.Email); err != nil {
		a.logger.Errorf("failed to handle password reset: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": resetPasswordMessage,
	})
}

func (a *API) me(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "auth.API.me")
	defer span.End()

	principal, ok := authentication.GetPrincipal(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	user, err := a.service.Me(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, tenant.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		a.logger.Errorf("failed to load current user: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  status,
		"message": message,
	})
}
