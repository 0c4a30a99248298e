// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/mylegitech/api/internal/db"
	"github.com/mylegitech/api/internal/logging"
	"github.com/mylegitech/api/internal/monitoring"
	"github.com/mylegitech/api/internal/tracing"
	"github.com/mylegitech/api/pkg/auth"
	"github.com/mylegitech/api/pkg/authentication"
	"github.com/mylegitech/api/pkg/document"
	"github.com/mylegitech/api/pkg/item"
	"github.com/mylegitech/api/pkg/metrics"
	"github.com/mylegitech/api/pkg/status"
	"github.com/mylegitech/api/pkg/tenant"
	"github.com/mylegitech/api/pkg/user"
)

func NewRouter(
	authn *authentication.Middleware,
	dbClient db.DBClientInterface,
	tenantAPI *tenant.API,
	authAPI *auth.API,
	userAPI *user.API,
	itemAPI *item.API,
	documentAPI *document.API,
	corsOrigins []string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(corsOrigins),
		// On the outer mux so public writes, invitation acceptance in
		// particular, get the same request-scoped transaction as
		// authenticated ones.
		db.TransactionMiddleware(dbClient, logger),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(dbClient, tracer, monitor, logger).RegisterEndpoints(router)

	// Invitation validation and acceptance happen before the caller has
	// an account, so they bypass authentication.
	tenantAPI.RegisterPublicEndpoints(router)
	authAPI.RegisterPublicEndpoints(router)

	protected := chi.NewMux()
	protected.Use(authn.Authenticate())

	tenantAPI.RegisterEndpoints(protected)
	authAPI.RegisterEndpoints(protected)
	userAPI.RegisterEndpoints(protected)
	itemAPI.RegisterEndpoints(protected)
	documentAPI.RegisterEndpoints(protected)

	router.Mount("/", protected)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
