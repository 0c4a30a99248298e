// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package item

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/mylegitech/api/internal/authorization"
	"github.com/mylegitech/api/internal/logging"
	"github.com/mylegitech/api/internal/monitoring"
	"github.com/mylegitech/api/internal/tracing"
	"github.com/mylegitech/api/pkg/authentication"
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
	mux.Post("/api/v1/items", a.createItem)
	mux.Get("/api/v1/items", a.listItems)
	mux.Get("/api/v1/items/{id}", a.getItem)
	mux.Patch("/api/v1/items/{id}", a.updateItem)
	mux.Delete("/api/v1/items/{id}", a.deleteItem)
}

// tenantPrincipal pulls the principal and requires a tenant selection.
// Item routes are meaningless outside a tenant context, which the client
// provides through the X-Tenant-ID header.
func (a *API) tenantPrincipal(w http.ResponseWriter, r *http.Request) (*authentication.Principal, bool) {
	principal, ok := authentication.GetPrincipal(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return nil, false
	}
	if principal.TenantID == "" {
		writeError(w, http.StatusBadRequest, "missing "+authentication.TenantHeader+" header")
		return nil, false
	}
	return principal, true
}

type createItemRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"max=2000"`
}

func (a *API) createItem(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "item.API.createItem")
	defer span.End()

	principal, ok := a.tenantPrincipal(w, r)
	if !ok {
		return
	}

	var req createItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid item fields")
		return
	}

	item, err := a.service.CreateItem(ctx, principal.UserID, principal.TenantID, req.Name, req.Description)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

func (a *API) listItems(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "item.API.listItems")
	defer span.End()

	principal, ok := a.tenantPrincipal(w, r)
	if !ok {
		return
	}

	params := ListParams{Search: r.URL.Query().Get("search")}
	if v := r.URL.Query().Get("page"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "page must be a positive integer")
			return
		}
		params.Page = n
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		params.Limit = n
	}

	page, err := a.service.ListItems(ctx, principal.UserID, principal.TenantID, params)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

func (a *API) getItem(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "item.API.getItem")
	defer span.End()

	principal, ok := a.tenantPrincipal(w, r)
	if !ok {
		return
	}

	item, err := a.service.GetItem(ctx, principal.UserID, principal.TenantID, chi.URLParam(r, "id"))
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

type updateItemRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

func (a *API) updateItem(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "item.API.updateItem")
	defer span.End()

	principal, ok := a.tenantPrincipal(w, r)
	if !ok {
		return
	}

	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid item fields")
		return
	}

	item, err := a.service.UpdateItem(ctx, principal.UserID, principal.TenantID, chi.URLParam(r, "id"), req.Name, req.Description)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func (a *API) deleteItem(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "item.API.deleteItem")
	defer span.End()

	principal, ok := a.tenantPrincipal(w, r)
	if !ok {
		return
	}

	if err := a.service.DeleteItem(ctx, principal.UserID, principal.TenantID, chi.URLParam(r, "id")); err != nil {
		a.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, authorization.ErrTenantAccessDenied),
		errors.Is(err, authorization.ErrInsufficientPermissions),
		errors.Is(err, ErrItemForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrItemNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		a.logger.Errorf("unexpected error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
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
