// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package web

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/mylegitech/api/pkg/authentication"
)

func middlewareCORS(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", authentication.TenantHeader},
		MaxAge:         300,
	})
}
