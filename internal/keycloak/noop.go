// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package keycloak

import "context"

// NoopClient is used when no admin credentials are configured. Profile
// changes then live only in the local database.
type NoopClient struct{}

func NewNoopClient() *NoopClient {
	return &NoopClient{}
}

func (n *NoopClient) CreateUser(ctx context.Context, user UserRepresentation) (string, error) {
	return "", nil
}

func (n *NoopClient) UpdateUser(ctx context.Context, keycloakID string, update UserUpdate) error {
	return nil
}

func (n *NoopClient) DeleteUser(ctx context.Context, keycloakID string) error {
	return nil
}

func (n *NoopClient) GetUserByEmail(ctx context.Context, email string) (*UserRepresentation, error) {
	return nil, ErrUserNotFound
}

func (n *NoopClient) SendPasswordResetEmail(ctx context.Context, keycloakID string) error {
	return nil
}
