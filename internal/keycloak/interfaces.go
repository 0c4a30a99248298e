// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package keycloak

import "context"

// UserRepresentation mirrors the Keycloak Admin API user resource, limited
// to the fields this service manages.
type UserRepresentation struct {
	ID            string `json:"id,omitempty"`
	Email         string `json:"email,omitempty"`
	Username      string `json:"username,omitempty"`
	FirstName     string `json:"firstName,omitempty"`
	LastName      string `json:"lastName,omitempty"`
	Enabled       bool   `json:"enabled"`
	EmailVerified bool   `json:"emailVerified"`
}

// UserUpdate carries a partial update; nil fields are not sent.
type UserUpdate struct {
	Email     *string `json:"email,omitempty"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Enabled   *bool   `json:"enabled,omitempty"`
}

type AdminClientInterface interface {
	CreateUser(ctx context.Context, user UserRepresentation) (string, error)
	UpdateUser(ctx context.Context, keycloakID string, update UserUpdate) error
	DeleteUser(ctx context.Context, keycloakID string) error
	GetUserByEmail(ctx context.Context, email string) (*UserRepresentation, error)
	SendPasswordResetEmail(ctx context.Context, keycloakID string) error
}
