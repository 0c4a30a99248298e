// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package ar24

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mylegitech/api/internal/logging"
	"github.com/mylegitech/api/internal/monitoring"
	"github.com/mylegitech/api/internal/tracing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient(Config{
		Token:      "test-token",
		PrivateKey: "test-private-key",
		BaseURL:    srv.URL,
	}, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	client.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

	return client
}

func TestClient_SendMail_SignsRequest(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("token") != "test-token" {
			t.Errorf("expected token param, got %q", q.Get("token"))
		}

		date := q.Get("date")
		sum := sha256.Sum256([]byte(date + "test-private-key"))
		if q.Get("signature") != hex.EncodeToString(sum[:]) {
			t.Error("signature does not match sha256(date + private key)")
		}

		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("failed to decode payload: %v", err)
		}
		if payload["to_country"] != "FR" {
			t.Errorf("expected country to default to FR, got %v", payload["to_country"])
		}
		if payload["eidas"] != float64(1) {
			t.Errorf("expected eidas flag 1, got %v", payload["eidas"])
		}

		_ = json.NewEncoder(w).Encode(Mail{ID: "mail-1", Status: "waiting"})
	})

	mail, err := client.SendMail(context.Background(), SendMailRequest{
		UserID:  "ar24-user",
		Eidas:   true,
		Subject: "Mise en demeure",
		Recipient: Recipient{
			FirstName: "Jean",
			LastName:  "Dupont",
			Email:     "jean@example.com",
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mail.ID != "mail-1" {
		t.Errorf("expected mail ID mail-1, got %q", mail.ID)
	}
}

func TestClient_GetMail_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{}"))
	})

	_, err := client.GetMail(context.Background(), "missing")
	if !errors.Is(err, ErrMailNotFound) {
		t.Errorf("expected ErrMailNotFound, got %v", err)
	}
}

func TestClient_AuthenticationError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.GetMail(context.Background(), "mail-1")
	if !errors.Is(err, ErrAuthentication) {
		t.Errorf("expected ErrAuthentication, got %v", err)
	}
}

func TestClient_UploadAttachment_SizeLimit(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("oversized attachment must not reach the API")
	})

	_, err := client.UploadAttachment(context.Background(), "ar24-user", "big.pdf", make([]byte, maxAttachmentSize+1))
	if !errors.Is(err, ErrAttachmentTooBig) {
		t.Errorf("expected ErrAttachmentTooBig, got %v", err)
	}
}
