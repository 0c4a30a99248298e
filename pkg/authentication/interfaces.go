// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package authentication

import (
	"context"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/mylegitech/api/internal/types"
)

type ProviderInterface interface {
	// Verifier returns the token verifier associated with the specified OIDC issuer
	Verifier(*oidc.Config) *oidc.IDTokenVerifier
}

type TokenVerifierInterface interface {
	// VerifyToken verifies a raw JWT string and extracts the identity claims.
	// Returns the identity if the token is valid, otherwise an error.
	VerifyToken(ctx context.Context, rawToken string) (*Identity, error)
}

type UserResolverInterface interface {
	// SyncUser resolves the identity to a local user record, creating or
	// linking one as needed.
	SyncUser(ctx context.Context, identity *Identity) (*types.User, error)
}

type TenantAccessCheckerInterface interface {
	// CheckTenantAccess reports whether the user belongs to the tenant.
	CheckTenantAccess(ctx context.Context, userID, tenantID string) (*types.Membership, error)
}
