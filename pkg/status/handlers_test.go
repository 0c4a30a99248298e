// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package status

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	gomock "go.uber.org/mock/gomock"

	"github.com/mylegitech/api/internal/logging"
	"github.com/mylegitech/api/internal/monitoring"
	"github.com/mylegitech/api/internal/tracing"
)

//go:generate mockgen -build_flags=--mod=mod -package status -destination ./mock_db.go -source=../../internal/db/interfaces.go

func newTestAPI(t *testing.T) (*chi.Mux, *MockDBClientInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	dbClient := NewMockDBClientInterface(ctrl)
	api := NewAPI(dbClient, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	mux := chi.NewMux()
	api.RegisterEndpoints(mux)
	return mux, dbClient
}

func TestAPI_Alive(t *testing.T) {
	t.Run("DatabaseReachable", func(t *testing.T) {
		mux, dbClient := newTestAPI(t)

		dbClient.EXPECT().Ping(gomock.Any()).Return(nil)

		recorder := httptest.NewRecorder()
		mux.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/status", nil))

		if recorder.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", recorder.Code)
		}

		var body map[string]interface{}
		if err := json.NewDecoder(recorder.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if body["status"] != "ok" {
			t.Errorf("expected status ok, got %v", body["status"])
		}
	})

	t.Run("DatabaseDown", func(t *testing.T) {
		mux, dbClient := newTestAPI(t)

		dbClient.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))

		recorder := httptest.NewRecorder()
		mux.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/status", nil))

		if recorder.Code != http.StatusServiceUnavailable {
			t.Errorf("expected status 503, got %d", recorder.Code)
		}
	})
}

func TestAPI_Version(t *testing.T) {
	mux, _ := newTestAPI(t)

	recorder := httptest.NewRecorder()
	mux.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/version", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", recorder.Code)
	}

	var body map[string]interface{}
	if err := json.NewDecoder(recorder.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if _, ok := body["version"]; !ok {
		t.Error("expected a version field")
	}
}
