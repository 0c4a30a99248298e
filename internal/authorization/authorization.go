// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package authorization

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/mylegitech/api/internal/logging"
	"github.com/mylegitech/api/internal/monitoring"
	"github.com/mylegitech/api/internal/storage"
	"github.com/mylegitech/api/internal/tracing"
	"github.com/mylegitech/api/internal/types"
)

var (
	// ErrTenantAccessDenied means the user has no membership in the tenant.
	ErrTenantAccessDenied = fmt.Errorf("user does not have access to this tenant")
	// ErrInsufficientPermissions means the user is a member but the role
	// does not grant the operation.
	ErrInsufficientPermissions = fmt.Errorf("insufficient permissions for this operation")
)

type Authorizer struct {
	store MembershipProviderInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Authorize resolves the user's membership in the tenant and checks it
// against the policy table. Membership existence is always checked before
// the role so that non-members never learn which roles an operation needs.
func (a *Authorizer) Authorize(ctx context.Context, userID, tenantID string, op Operation) (*types.Membership, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.Authorize")
	defer span.End()

	m, err := a.CheckTenantAccess(ctx, userID, tenantID)
	if err != nil {
		return nil, err
	}

	allowed, ok := policy[op]
	if !ok || !slices.Contains(allowed, m.Role) {
		a.logger.Security().AuthzFailure(userID, string(op))
		return nil, ErrInsufficientPermissions
	}

	return m, nil
}

func (a *Authorizer) CheckTenantAccess(ctx context.Context, userID, tenantID string) (*types.Membership, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.CheckTenantAccess")
	defer span.End()

	m, err := a.store.GetMembership(ctx, userID, tenantID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			a.logger.Security().AuthzFailure(userID, "tenant:"+tenantID)
			return nil, ErrTenantAccessDenied
		}
		return nil, fmt.Errorf("failed to resolve membership: %w", err)
	}

	return m, nil
}

func NewAuthorizer(store MembershipProviderInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	authorizer := new(Authorizer)
	authorizer.store = store
	authorizer.tracer = tracer
	authorizer.monitor = monitor
	authorizer.logger = logger

	return authorizer
}
