// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package authorization

import (
	"context"

	"github.com/mylegitech/api/internal/types"
)

type AuthorizerInterface interface {
	// Authorize checks that the user belongs to the tenant and that the
	// membership role grants the operation. The membership is returned so
	// callers can apply further role-dependent rules without a second
	// lookup.
	Authorize(ctx context.Context, userID, tenantID string, op Operation) (*types.Membership, error)
	// CheckTenantAccess reports membership without requiring a specific
	// operation.
	CheckTenantAccess(ctx context.Context, userID, tenantID string) (*types.Membership, error)
}

type MembershipProviderInterface interface {
	GetMembership(ctx context.Context, userID, tenantID string) (*types.Membership, error)
}
