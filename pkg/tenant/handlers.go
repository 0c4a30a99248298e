// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package tenant

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/mylegitech/api/internal/authorization"
	"github.com/mylegitech/api/internal/logging"
	"github.com/mylegitech/api/internal/monitoring"
	"github.com/mylegitech/api/internal/tracing"
	"github.com/mylegitech/api/internal/types"
	"github.com/mylegitech/api/pkg/authentication"
)

var slugRegexp = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

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
	validate := validator.New()
	_ = validate.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return len(s) >= 2 && len(s) <= 50 && slugRegexp.MatchString(s)
	})

	return &API{
		service:  service,
		validate: validate,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v1/tenants", a.createTenant)
	mux.Get("/api/v1/tenants", a.listTenants)
	mux.Get("/api/v1/tenants/{id}", a.getTenant)
	mux.Patch("/api/v1/tenants/{id}", a.updateTenant)
	mux.Delete("/api/v1/tenants/{id}", a.deleteTenant)

	mux.Get("/api/v1/tenants/{id}/members", a.listMembers)
	mux.Post("/api/v1/tenants/{id}/members", a.addMember)
	mux.Patch("/api/v1/tenants/{id}/members/{userID}", a.updateMemberRole)
	mux.Delete("/api/v1/tenants/{id}/members/{userID}", a.removeMember)

	mux.Post("/api/v1/tenants/{id}/invitations", a.createInvitation)
	mux.Get("/api/v1/tenants/{id}/invitations", a.listInvitations)
	mux.Delete("/api/v1/tenants/{id}/invitations/{invitationID}", a.cancelInvitation)
}

// RegisterPublicEndpoints registers the routes that must work without a
// bearer token. Invitation validation happens before the invitee has an
// account.
func (a *API) RegisterPublicEndpoints(mux *chi.Mux) {
	mux.Get("/api/v1/invitations/validate", a.validateInvitation)
}

type createTenantRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
	Slug string `json:"slug" validate:"required,slug"`
}

func (a *API) createTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.createTenant")
	defer span.End()

	principal, ok := authentication.GetPrincipal(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req createTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	t, err := a.service.CreateTenant(ctx, principal.UserID, req.Name, req.Slug)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, t)
}

func (a *API) listTenants(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.listTenants")
	defer span.End()

	principal, ok := authentication.GetPrincipal(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	tenants, err := a.service.ListTenants(ctx, principal.UserID)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tenants)
}

func (a *API) getTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.getTenant")
	defer span.End()

	principal, ok := authentication.GetPrincipal(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	t, err := a.service.GetTenant(ctx, principal.UserID, chi.URLParam(r, "id"))
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, t)
}

type updateTenantRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=100"`
	Slug *string `json:"slug" validate:"omitempty,slug"`
}

func (a *API) updateTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.updateTenant")
	defer span.End()

	principal, ok := authentication.GetPrincipal(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req updateTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	t, err := a.service.UpdateTenant(ctx, principal.UserID, chi.URLParam(r, "id"), req.Name, req.Slug)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, t)
}

func (a *API) deleteTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.deleteTenant")
	defer span.End()

	principal, ok := authentication.GetPrincipal(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := a.service.DeleteTenant(ctx, principal.UserID, chi.URLParam(r, "id")); err != nil {
		a.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) listMembers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.listMembers")
	defer span.End()

	principal, ok := authentication.GetPrincipal(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	members, err := a.service.ListMembers(ctx, principal.UserID, chi.URLParam(r, "id"))
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, members)
}

type addMemberRequest struct {
	UserID string     `json:"user_id" validate:"required,uuid"`
	Role   types.Role `json:"role" validate:"required,oneof=OWNER ADMIN MEMBER"`
}

func (a *API) addMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.addMember")
	defer span.End()

	principal, ok := authentication.GetPrincipal(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req addMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	member, err := a.service.AddMember(ctx, principal.UserID, chi.URLParam(r, "id"), req.UserID, req.Role)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, member)
}

type updateMemberRoleRequest struct {
	Role types.Role `json:"role" validate:"required,oneof=OWNER ADMIN MEMBER"`
}

func (a *API) updateMemberRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.updateMemberRole")
	defer span.End()

	principal, ok := authentication.GetPrincipal(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req updateMemberRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	member, err := a.service.UpdateMemberRole(ctx, principal.UserID, chi.URLParam(r, "id"), chi.URLParam(r, "userID"), req.Role)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, member)
}

func (a *API) removeMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.removeMember")
	defer span.End()

	principal, ok := authentication.GetPrincipal(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := a.service.RemoveMember(ctx, principal.UserID, chi.URLParam(r, "id"), chi.URLParam(r, "userID")); err != nil {
		a.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type createInvitationRequest struct {
	Email string     `json:"email" validate:"required,email"`
	Role  types.Role `json:"role" validate:"omitempty,oneof=ADMIN MEMBER"`
}

func (a *API) createInvitation(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.createInvitation")
	defer span.End()

	principal, ok := authentication.GetPrincipal(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req createInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	invitation, err := a.service.CreateInvitation(ctx, principal.UserID, chi.URLParam(r, "id"), req.Email, req.Role)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, invitation)
}

func (a *API) listInvitations(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.listInvitations")
	defer span.End()

	principal, ok := authentication.GetPrincipal(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	invitations, err := a.service.ListInvitations(ctx, principal.UserID, chi.URLParam(r, "id"))
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, invitations)
}

func (a *API) cancelInvitation(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.cancelInvitation")
	defer span.End()

	principal, ok := authentication.GetPrincipal(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := a.service.CancelInvitation(ctx, principal.UserID, chi.URLParam(r, "id"), chi.URLParam(r, "invitationID")); err != nil {
		a.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) validateInvitation(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.validateInvitation")
	defer span.End()

	token := r.URL.Query().Get("token")
	if token == "" {
		writeError(w, http.StatusBadRequest, "token is required")
		return
	}

	invitation, err := a.service.ValidateInvitation(ctx, token)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	// The invitee is unauthenticated at this point, so the payload stays
	// minimal. The token is never echoed back.
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"email":       invitation.Email,
		"role":        invitation.Role,
		"tenant_name": invitation.Tenant.Name,
		"inviter":     invitation.InviterDisplayName(),
		"expires_at":  invitation.ExpiresAt,
	})
}

func (a *API) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, authorization.ErrTenantAccessDenied),
		errors.Is(err, authorization.ErrInsufficientPermissions),
		errors.Is(err, ErrInvitationNotBelongToTenant):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrTenantNotFound),
		errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrUserNotInTenant),
		errors.Is(err, ErrInvitationNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrSlugAlreadyExists),
		errors.Is(err, ErrUserAlreadyInTenant),
		errors.Is(err, ErrUserAlreadyMember),
		errors.Is(err, ErrPendingInvitationExists),
		errors.Is(err, ErrCannotCancelAccepted),
		errors.Is(err, ErrInvitationAlreadyAccepted):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrInvitationExpired):
		writeError(w, http.StatusGone, err.Error())
	case errors.Is(err, authorization.ErrCannotModifyOwner),
		errors.Is(err, authorization.ErrCannotSetOwnerRole):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		a.logger.Errorf("unexpected error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func validationMessage(err error) string {
	var verr validator.ValidationErrors
	if errors.As(err, &verr) && len(verr) > 0 {
		return "invalid field: " + verr[0].Field()
	}
	return "invalid request"
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
