// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port        int      `envconfig:"port" default:"8080"`
	CORSOrigins []string `envconfig:"cors_origins" default:"*"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	AuthenticationEnabled bool   `envconfig:"authentication_enabled" default:"true"`
	KeycloakIssuer        string `envconfig:"keycloak_issuer" required:"true"`
	KeycloakJWKSURL       string `envconfig:"keycloak_jwks_url"`
	KeycloakAdminURL      string `envconfig:"keycloak_admin_url"`
	KeycloakRealm         string `envconfig:"keycloak_realm"`
	KeycloakClientID      string `envconfig:"keycloak_client_id"`
	KeycloakClientSecret  string `envconfig:"keycloak_client_secret"`

	MailEnabled       bool   `envconfig:"mail_enabled" default:"true"`
	MailjetAPIKey     string `envconfig:"mailjet_api_key"`
	MailjetSecretKey  string `envconfig:"mailjet_secret_key"`
	MailjetSenderMail string `envconfig:"mailjet_sender_email"`
	MailjetSenderName string `envconfig:"mailjet_sender_name"`

	InvitationBaseURL  string        `envconfig:"invitation_base_url" required:"true"`
	InvitationLifetime time.Duration `envconfig:"invitation_lifetime" default:"24h"`

	AR24Enabled     bool   `envconfig:"ar24_enabled" default:"false"`
	AR24Token       string `envconfig:"ar24_token"`
	AR24PrivateKey  string `envconfig:"ar24_private_key"`
	AR24UserID      string `envconfig:"ar24_user_id"`
	AR24Environment string `envconfig:"ar24_environment" default:"sandbox"`

	YousignEnabled     bool   `envconfig:"yousign_enabled" default:"false"`
	YousignAPIKey      string `envconfig:"yousign_api_key"`
	YousignEnvironment string `envconfig:"yousign_environment" default:"sandbox"`
}
