// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package tenant

import (
	"context"

	"github.com/mylegitech/api/internal/types"
)

type StorageInterface interface {
	CreateTenant(ctx context.Context, name, slug, ownerUserID string) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	GetTenantBySlug(ctx context.Context, slug string) (*types.Tenant, error)
	ListTenantsByUserID(ctx context.Context, userID string) ([]*types.Tenant, error)
	UpdateTenant(ctx context.Context, id string, name, slug *string) (*types.Tenant, error)
	DeleteTenant(ctx context.Context, id string) error

	GetMembership(ctx context.Context, userID, tenantID string) (*types.Membership, error)
	ListMembersByTenantID(ctx context.Context, tenantID string) ([]*types.Membership, error)
	AddMember(ctx context.Context, userID, tenantID string, role types.Role) (*types.Membership, error)
	UpdateMemberRole(ctx context.Context, userID, tenantID string, role types.Role) (*types.Membership, error)
	RemoveMember(ctx context.Context, userID, tenantID string) error

	CreateInvitation(ctx context.Context, inv *types.Invitation) (*types.Invitation, error)
	GetInvitationByID(ctx context.Context, id string) (*types.Invitation, error)
	GetInvitationByToken(ctx context.Context, token string) (*types.Invitation, error)
	ListPendingInvitationsByTenantID(ctx context.Context, tenantID string) ([]*types.Invitation, error)
	GetPendingInvitationByEmailAndTenant(ctx context.Context, email, tenantID string) (*types.Invitation, error)
	DeleteInvitation(ctx context.Context, id string) error

	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
}

type ServiceInterface interface {
	CreateTenant(ctx context.Context, userID, name, slug string) (*types.Tenant, error)
	ListTenants(ctx context.Context, userID string) ([]*types.Tenant, error)
	GetTenant(ctx context.Context, userID, tenantID string) (*types.Tenant, error)
	UpdateTenant(ctx context.Context, userID, tenantID string, name, slug *string) (*types.Tenant, error)
	DeleteTenant(ctx context.Context, userID, tenantID string) error

	ListMembers(ctx context.Context, userID, tenantID string) ([]*types.Membership, error)
	AddMember(ctx context.Context, requestUserID, tenantID, targetUserID string, role types.Role) (*types.Membership, error)
	UpdateMemberRole(ctx context.Context, requestUserID, tenantID, targetUserID string, role types.Role) (*types.Membership, error)
	RemoveMember(ctx context.Context, requestUserID, tenantID, targetUserID string) error

	CreateInvitation(ctx context.Context, inviterID, tenantID, email string, role types.Role) (*types.Invitation, error)
	ListInvitations(ctx context.Context, userID, tenantID string) ([]*types.Invitation, error)
	CancelInvitation(ctx context.Context, userID, tenantID, invitationID string) error
	ValidateInvitation(ctx context.Context, token string) (*types.Invitation, error)
}
