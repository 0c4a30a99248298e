// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/mylegitech/api/internal/ar24"
	"github.com/mylegitech/api/internal/authorization"
	"github.com/mylegitech/api/internal/logging"
	"github.com/mylegitech/api/internal/monitoring"
	"github.com/mylegitech/api/internal/tracing"
	"github.com/mylegitech/api/internal/yousign"
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
	mux.Post("/api/v1/documents/registered-mails", a.sendRegisteredMail)
	mux.Get("/api/v1/documents/registered-mails", a.listRegisteredMails)
	mux.Get("/api/v1/documents/registered-mails/{id}", a.getRegisteredMail)

	mux.Post("/api/v1/documents/signature-requests", a.createSignatureRequest)
	mux.Get("/api/v1/documents/signature-requests/{id}", a.getSignatureRequest)
	mux.Delete("/api/v1/documents/signature-requests/{id}", a.cancelSignatureRequest)
	mux.Get("/api/v1/documents/signature-requests/{id}/documents/{documentID}/download", a.downloadSignedDocument)
}

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

type attachmentRequest struct {
	Filename string `json:"filename" validate:"required"`
	// Content is the base64-encoded file body.
	Content string `json:"content" validate:"required"`
}

type sendRegisteredMailRequest struct {
	Recipient struct {
		FirstName  string `json:"firstName" validate:"required"`
		LastName   string `json:"lastName" validate:"required"`
		Email      string `json:"email" validate:"required,email"`
		Company    string `json:"company"`
		Address    string `json:"address"`
		PostalCode string `json:"postalCode"`
		City       string `json:"city"`
		Country    string `json:"country"`
	} `json:"recipient" validate:"required"`
	Subject     string              `json:"subject" validate:"required"`
	Message     string              `json:"message"`
	Eidas       bool                `json:"eidas"`
	Reference   string              `json:"reference"`
	Attachments []attachmentRequest `json:"attachments" validate:"dive"`
}

func (a *API) sendRegisteredMail(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "document.API.sendRegisteredMail")
	defer span.End()

	principal, ok := a.tenantPrincipal(w, r)
	if !ok {
		return
	}

	var req sendRegisteredMailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid registered mail fields")
		return
	}

	attachments, err := decodeAttachments(req.Attachments)
	if err != nil {
		writeError(w, http.StatusBadRequest, "attachment content must be base64")
		return
	}

	mail, err := a.service.SendRegisteredMail(ctx, principal.UserID, principal.TenantID, RegisteredMailParams{
		Recipient: ar24.Recipient{
			FirstName:  req.Recipient.FirstName,
			LastName:   req.Recipient.LastName,
			Email:      req.Recipient.Email,
			Company:    req.Recipient.Company,
			Address:    req.Recipient.Address,
			PostalCode: req.Recipient.PostalCode,
			City:       req.Recipient.City,
			Country:    req.Recipient.Country,
		},
		Subject:     req.Subject,
		Message:     req.Message,
		Eidas:       req.Eidas,
		Reference:   req.Reference,
		Attachments: attachments,
	})
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, mail)
}

func (a *API) getRegisteredMail(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "document.API.getRegisteredMail")
	defer span.End()

	principal, ok := a.tenantPrincipal(w, r)
	if !ok {
		return
	}

	mail, err := a.service.GetRegisteredMail(ctx, principal.UserID, principal.TenantID, chi.URLParam(r, "id"))
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, mail)
}

func (a *API) listRegisteredMails(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "document.API.listRegisteredMails")
	defer span.End()

	principal, ok := a.tenantPrincipal(w, r)
	if !ok {
		return
	}

	mails, err := a.service.ListRegisteredMails(ctx, principal.UserID, principal.TenantID, r.URL.Query().Get("reference"))
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, mails)
}

type createSignatureRequestRequest struct {
	Name         string            `json:"name" validate:"required"`
	DeliveryMode string            `json:"deliveryMode" validate:"omitempty,oneof=email none"`
	Document     attachmentRequest `json:"document" validate:"required"`
	Signers      []struct {
		FirstName string `json:"firstName" validate:"required"`
		LastName  string `json:"lastName" validate:"required"`
		Email     string `json:"email" validate:"required,email"`
		Locale    string `json:"locale"`
	} `json:"signers" validate:"required,min=1,dive"`
}

func (a *API) createSignatureRequest(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "document.API.createSignatureRequest")
	defer span.End()

	principal, ok := a.tenantPrincipal(w, r)
	if !ok {
		return
	}

	var req createSignatureRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid signature request fields")
		return
	}

	data, err := base64.StdEncoding.DecodeString(req.Document.Content)
	if err != nil {
		writeError(w, http.StatusBadRequest, "document content must be base64")
		return
	}

	params := SignatureParams{
		Name:         req.Name,
		DeliveryMode: req.DeliveryMode,
		Document:     AttachmentPayload{Filename: req.Document.Filename, Data: data},
	}
	for _, signer := range req.Signers {
		params.Signers = append(params.Signers, SignerParams{
			FirstName: signer.FirstName,
			LastName:  signer.LastName,
			Email:     signer.Email,
			Locale:    signer.Locale,
		})
	}

	request, err := a.service.CreateSignatureRequest(ctx, principal.UserID, principal.TenantID, params)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, request)
}

func (a *API) getSignatureRequest(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "document.API.getSignatureRequest")
	defer span.End()

	principal, ok := a.tenantPrincipal(w, r)
	if !ok {
		return
	}

	request, err := a.service.GetSignatureRequest(ctx, principal.UserID, principal.TenantID, chi.URLParam(r, "id"))
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, request)
}

type cancelSignatureRequestRequest struct {
	Reason string `json:"reason"`
}

func (a *API) cancelSignatureRequest(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "document.API.cancelSignatureRequest")
	defer span.End()

	principal, ok := a.tenantPrincipal(w, r)
	if !ok {
		return
	}

	var req cancelSignatureRequestRequest
	if r.Body != nil {
		// The reason is optional and so is the body.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	if err := a.service.CancelSignatureRequest(ctx, principal.UserID, principal.TenantID, chi.URLParam(r, "id"), req.Reason); err != nil {
		a.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) downloadSignedDocument(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "document.API.downloadSignedDocument")
	defer span.End()

	principal, ok := a.tenantPrincipal(w, r)
	if !ok {
		return
	}

	data, err := a.service.DownloadSignedDocument(ctx, principal.UserID, principal.TenantID, chi.URLParam(r, "id"), chi.URLParam(r, "documentID"))
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func decodeAttachments(reqs []attachmentRequest) ([]AttachmentPayload, error) {
	attachments := make([]AttachmentPayload, 0, len(reqs))
	for _, att := range reqs {
		data, err := base64.StdEncoding.DecodeString(att.Content)
		if err != nil {
			return nil, err
		}
		attachments = append(attachments, AttachmentPayload{Filename: att.Filename, Data: data})
	}
	return attachments, nil
}

func (a *API) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, authorization.ErrTenantAccessDenied),
		errors.Is(err, authorization.ErrInsufficientPermissions):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, ar24.ErrMailNotFound),
		errors.Is(err, yousign.ErrSignatureRequestNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ar24.ErrAttachmentTooBig):
		writeError(w, http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, yousign.ErrSignatureRequestNotReady),
		errors.Is(err, ErrNoSigners),
		errors.Is(err, ErrNoAddressee):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ar24.ErrRateLimitExceeded),
		errors.Is(err, yousign.ErrRateLimitExceeded):
		writeError(w, http.StatusTooManyRequests, err.Error())
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
