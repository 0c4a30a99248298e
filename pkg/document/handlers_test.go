// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	gomock "go.uber.org/mock/gomock"

	"github.com/mylegitech/api/internal/ar24"
	"github.com/mylegitech/api/internal/logging"
	"github.com/mylegitech/api/internal/monitoring"
	"github.com/mylegitech/api/internal/tracing"
	"github.com/mylegitech/api/internal/yousign"
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

func tenantRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := authentication.WithPrincipal(req.Context(), &authentication.Principal{
		UserID:   "u-1",
		Email:    "owner@exemple.fr",
		TenantID: "t-1",
	})
	return req.WithContext(ctx)
}

func TestAPI_SendRegisteredMail(t *testing.T) {
	content := base64.StdEncoding.EncodeToString([]byte("pdf-bytes"))

	tests := []struct {
		name       string
		body       string
		setup      func(service *MockServiceInterface)
		wantStatus int
	}{
		{
			name: "Sent",
			body: fmt.Sprintf(`{
				"recipient": {"firstName": "Jean", "lastName": "Dupont", "email": "jean@exemple.fr"},
				"subject": "Mise en demeure",
				"eidas": true,
				"attachments": [{"filename": "contract.pdf", "content": %q}]
			}`, content),
			setup: func(service *MockServiceInterface) {
				service.EXPECT().SendRegisteredMail(gomock.Any(), "u-1", "t-1", gomock.Any()).DoAndReturn(
					func(_ context.Context, _, _ string, params RegisteredMailParams) (*ar24.Mail, error) {
						if string(params.Attachments[0].Data) != "pdf-bytes" {
							return nil, fmt.Errorf("attachment not decoded: %q", params.Attachments[0].Data)
						}
						return &ar24.Mail{ID: "mail-1", Status: "waiting"}, nil
					})
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "MissingRecipientEmail",
			body:       `{"recipient": {"firstName": "Jean", "lastName": "Dupont"}, "subject": "x"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "AttachmentNotBase64",
			body: `{
				"recipient": {"firstName": "Jean", "lastName": "Dupont", "email": "jean@exemple.fr"},
				"subject": "x",
				"attachments": [{"filename": "contract.pdf", "content": "not base64!!"}]
			}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "AttachmentTooBig",
			body: fmt.Sprintf(`{
				"recipient": {"firstName": "Jean", "lastName": "Dupont", "email": "jean@exemple.fr"},
				"subject": "x",
				"attachments": [{"filename": "huge.pdf", "content": %q}]
			}`, content),
			setup: func(service *MockServiceInterface) {
				service.EXPECT().SendRegisteredMail(gomock.Any(), "u-1", "t-1", gomock.Any()).
					Return(nil, ar24.ErrAttachmentTooBig)
			},
			wantStatus: http.StatusRequestEntityTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux, service := newTestAPI(t)
			if tt.setup != nil {
				tt.setup(service)
			}

			recorder := httptest.NewRecorder()
			mux.ServeHTTP(recorder, tenantRequest(http.MethodPost, "/api/v1/documents/registered-mails", tt.body))

			if recorder.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d: %s", tt.wantStatus, recorder.Code, recorder.Body.String())
			}
		})
	}
}

func TestAPI_SendRegisteredMail_NoTenantHeader(t *testing.T) {
	mux, _ := newTestAPI(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/registered-mails", strings.NewReader("{}"))
	ctx := authentication.WithPrincipal(req.Context(), &authentication.Principal{UserID: "u-1"})

	recorder := httptest.NewRecorder()
	mux.ServeHTTP(recorder, req.WithContext(ctx))

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", recorder.Code)
	}
}

func TestAPI_CreateSignatureRequest(t *testing.T) {
	content := base64.StdEncoding.EncodeToString([]byte("pdf"))

	t.Run("Created", func(t *testing.T) {
		mux, service := newTestAPI(t)

		service.EXPECT().CreateSignatureRequest(gomock.Any(), "u-1", "t-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _ string, params SignatureParams) (*yousign.SignatureRequest, error) {
				if len(params.Signers) != 1 || params.Signers[0].Email != "jean@exemple.fr" {
					return nil, fmt.Errorf("unexpected signers: %+v", params.Signers)
				}
				return &yousign.SignatureRequest{ID: "sr-1", Status: "ongoing"}, nil
			})

		body := fmt.Sprintf(`{
			"name": "Bail commercial",
			"document": {"filename": "bail.pdf", "content": %q},
			"signers": [{"firstName": "Jean", "lastName": "Dupont", "email": "jean@exemple.fr"}]
		}`, content)

		recorder := httptest.NewRecorder()
		mux.ServeHTTP(recorder, tenantRequest(http.MethodPost, "/api/v1/documents/signature-requests", body))

		if recorder.Code != http.StatusCreated {
			t.Errorf("expected status 201, got %d: %s", recorder.Code, recorder.Body.String())
		}
	})

	t.Run("NoSigners", func(t *testing.T) {
		mux, _ := newTestAPI(t)

		body := fmt.Sprintf(`{"name": "x", "document": {"filename": "bail.pdf", "content": %q}, "signers": []}`, content)

		recorder := httptest.NewRecorder()
		mux.ServeHTTP(recorder, tenantRequest(http.MethodPost, "/api/v1/documents/signature-requests", body))

		if recorder.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", recorder.Code)
		}
	})

	t.Run("InvalidDeliveryMode", func(t *testing.T) {
		mux, _ := newTestAPI(t)

		body := fmt.Sprintf(`{
			"name": "x",
			"deliveryMode": "carrier-pigeon",
			"document": {"filename": "bail.pdf", "content": %q},
			"signers": [{"firstName": "Jean", "lastName": "Dupont", "email": "jean@exemple.fr"}]
		}`, content)

		recorder := httptest.NewRecorder()
		mux.ServeHTTP(recorder, tenantRequest(http.MethodPost, "/api/v1/documents/signature-requests", body))

		if recorder.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", recorder.Code)
		}
	})
}

func TestAPI_CancelSignatureRequest(t *testing.T) {
	mux, service := newTestAPI(t)

	service.EXPECT().CancelSignatureRequest(gomock.Any(), "u-1", "t-1", "sr-1", "signed on paper instead").
		Return(nil)

	recorder := httptest.NewRecorder()
	mux.ServeHTTP(recorder, tenantRequest(http.MethodDelete, "/api/v1/documents/signature-requests/sr-1", `{"reason": "signed on paper instead"}`))

	if recorder.Code != http.StatusNoContent {
		t.Errorf("expected status 204, got %d", recorder.Code)
	}
}

func TestAPI_DownloadSignedDocument(t *testing.T) {
	t.Run("ServesPDF", func(t *testing.T) {
		mux, service := newTestAPI(t)

		service.EXPECT().DownloadSignedDocument(gomock.Any(), "u-1", "t-1", "sr-1", "doc-1").
			Return([]byte("%PDF-1.7"), nil)

		recorder := httptest.NewRecorder()
		mux.ServeHTTP(recorder, tenantRequest(http.MethodGet, "/api/v1/documents/signature-requests/sr-1/documents/doc-1/download", ""))

		if recorder.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", recorder.Code)
		}
		if got := recorder.Header().Get("Content-Type"); got != "application/pdf" {
			t.Errorf("expected application/pdf, got %q", got)
		}
		if recorder.Body.String() != "%PDF-1.7" {
			t.Errorf("unexpected body: %q", recorder.Body.String())
		}
	})

	t.Run("NotReady", func(t *testing.T) {
		mux, service := newTestAPI(t)

		service.EXPECT().DownloadSignedDocument(gomock.Any(), "u-1", "t-1", "sr-1", "doc-1").
			Return(nil, yousign.ErrSignatureRequestNotReady)

		recorder := httptest.NewRecorder()
		mux.ServeHTTP(recorder, tenantRequest(http.MethodGet, "/api/v1/documents/signature-requests/sr-1/documents/doc-1/download", ""))

		if recorder.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", recorder.Code)
		}
	})
}
