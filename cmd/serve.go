// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/mylegitech/api/internal/ar24"
	"github.com/mylegitech/api/internal/authorization"
	"github.com/mylegitech/api/internal/config"
	"github.com/mylegitech/api/internal/db"
	"github.com/mylegitech/api/internal/keycloak"
	"github.com/mylegitech/api/internal/logging"
	"github.com/mylegitech/api/internal/mail"
	"github.com/mylegitech/api/internal/monitoring/prometheus"
	"github.com/mylegitech/api/internal/storage"
	"github.com/mylegitech/api/internal/tracing"
	"github.com/mylegitech/api/internal/yousign"
	"github.com/mylegitech/api/pkg/auth"
	"github.com/mylegitech/api/pkg/authentication"
	"github.com/mylegitech/api/pkg/document"
	"github.com/mylegitech/api/pkg/item"
	"github.com/mylegitech/api/pkg/tenant"
	"github.com/mylegitech/api/pkg/user"
	"github.com/mylegitech/api/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("mylegitech-api", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	authorizer := authorization.NewAuthorizer(s, tracer, monitor, logger)

	var mailer mail.MailInterface
	if specs.MailEnabled {
		mailer = mail.NewMailer(
			mail.Config{
				APIKey:      specs.MailjetAPIKey,
				SecretKey:   specs.MailjetSecretKey,
				SenderEmail: specs.MailjetSenderMail,
				SenderName:  specs.MailjetSenderName,
			},
			tracer, monitor, logger,
		)
		logger.Info("Mail delivery is enabled")
	} else {
		mailer = mail.NewNoopMailer()
		logger.Info("Using noop mailer")
	}

	var keycloakAdmin keycloak.AdminClientInterface
	if specs.KeycloakAdminURL != "" {
		keycloakAdmin = keycloak.NewClient(
			context.Background(),
			keycloak.Config{
				BaseURL:      specs.KeycloakAdminURL,
				Realm:        specs.KeycloakRealm,
				ClientID:     specs.KeycloakClientID,
				ClientSecret: specs.KeycloakClientSecret,
			},
			tracer, monitor, logger,
		)
		logger.Info("Keycloak admin sync is enabled")
	} else {
		keycloakAdmin = keycloak.NewNoopClient()
		logger.Info("Using noop keycloak admin client")
	}

	var ar24Client ar24.ClientInterface
	if specs.AR24Enabled {
		ar24Client = ar24.NewClient(
			ar24.Config{
				Token:       specs.AR24Token,
				PrivateKey:  specs.AR24PrivateKey,
				Environment: specs.AR24Environment,
			},
			tracer, monitor, logger,
		)
		logger.Info("AR24 registered mail is enabled")
	} else {
		ar24Client = ar24.NewNoopClient()
		logger.Info("Using noop AR24 client")
	}

	var yousignClient yousign.ClientInterface
	if specs.YousignEnabled {
		yousignClient = yousign.NewClient(
			yousign.Config{
				APIKey:      specs.YousignAPIKey,
				Environment: specs.YousignEnvironment,
			},
			tracer, monitor, logger,
		)
		logger.Info("Yousign e-signature is enabled")
	} else {
		yousignClient = yousign.NewNoopClient()
		logger.Info("Using noop Yousign client")
	}

	var verifier authentication.TokenVerifierInterface
	if specs.AuthenticationEnabled {
		verifier, err = authentication.NewJWTAuthenticator(
			context.Background(),
			specs.KeycloakIssuer,
			specs.KeycloakJWKSURL,
			tracer, monitor, logger,
		)
		if err != nil {
			return fmt.Errorf("failed to initialize JWT authentication: %v", err)
		}
	} else {
		verifier = authentication.NewNoopVerifier()
		logger.Info("Using noop token verifier")
	}

	authService := auth.NewService(s, keycloakAdmin, mailer, tracer, monitor, logger)
	tenantService := tenant.NewService(
		s,
		authorizer,
		mailer,
		specs.InvitationBaseURL,
		specs.InvitationLifetime,
		tracer, monitor, logger,
	)
	userService := user.NewService(s, authorizer, keycloakAdmin, tracer, monitor, logger)
	itemService := item.NewService(s, authorizer, tracer, monitor, logger)
	documentService := document.NewService(
		ar24Client,
		yousignClient,
		authorizer,
		specs.AR24UserID,
		tracer, monitor, logger,
	)

	authn := authentication.NewMiddleware(verifier, authService, authorizer, tracer, monitor, logger)

	router := web.NewRouter(
		authn,
		dbClient,
		tenant.NewAPI(tenantService, tracer, monitor, logger),
		auth.NewAPI(authService, tracer, monitor, logger),
		user.NewAPI(userService, tracer, monitor, logger),
		item.NewAPI(itemService, tracer, monitor, logger),
		document.NewAPI(documentService, tracer, monitor, logger),
		specs.CORSOrigins,
		tracer, monitor, logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
