// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package yousign

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mylegitech/api/internal/logging"
	"github.com/mylegitech/api/internal/monitoring"
	"github.com/mylegitech/api/internal/tracing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(Config{
		APIKey:  "test-key",
		BaseURL: srv.URL,
	}, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func TestClient_CreateSignatureRequest(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("expected bearer auth, got %q", r.Header.Get("Authorization"))
		}
		if r.URL.Path != "/signature_requests" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}

		var payload map[string]any
		_ = json.NewDecoder(r.Body).Decode(&payload)
		if payload["delivery_mode"] != "email" {
			t.Errorf("expected delivery_mode to default to email, got %v", payload["delivery_mode"])
		}
		if payload["timezone"] != "Europe/Paris" {
			t.Errorf("expected timezone to default to Europe/Paris, got %v", payload["timezone"])
		}

		_ = json.NewEncoder(w).Encode(SignatureRequest{ID: "sr-1", Status: "draft"})
	})

	sr, err := client.CreateSignatureRequest(context.Background(), CreateSignatureRequestParams{Name: "Contract"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sr.ID != "sr-1" {
		t.Errorf("expected signature request sr-1, got %q", sr.ID)
	}
}

func TestClient_GetSignatureRequest_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetSignatureRequest(context.Background(), "missing")
	if !errors.Is(err, ErrSignatureRequestNotFound) {
		t.Errorf("expected ErrSignatureRequestNotFound, got %v", err)
	}
}

func TestClient_DownloadSignedDocument_NotReady(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(SignatureRequest{ID: "sr-1", Status: "ongoing"})
	})

	_, err := client.DownloadSignedDocument(context.Background(), "sr-1", "doc-1")
	if !errors.Is(err, ErrSignatureRequestNotReady) {
		t.Errorf("expected ErrSignatureRequestNotReady, got %v", err)
	}
}

func TestClient_DownloadSignedDocument(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/signature_requests/sr-1" {
			_ = json.NewEncoder(w).Encode(SignatureRequest{ID: "sr-1", Status: "done"})
			return
		}
		if r.URL.Path == "/signature_requests/sr-1/documents/doc-1/download" {
			w.Header().Set("Content-Type", "application/pdf")
			_, _ = w.Write([]byte("%PDF-1.7 signed"))
			return
		}
		t.Errorf("unexpected path %s", r.URL.Path)
	})

	data, err := client.DownloadSignedDocument(context.Background(), "sr-1", "doc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "%PDF-1.7 signed" {
		t.Errorf("unexpected document content: %q", data)
	}
}
