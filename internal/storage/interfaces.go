// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package storage

import (
	"context"

	"github.com/mylegitech/api/internal/types"
)

// UserUpdate carries the mutable user profile fields; nil pointers are
// left untouched.
type UserUpdate struct {
	Email      *string
	KeycloakID *string
	FirstName  *string
	LastName   *string
}

// ItemFilter scopes and paginates item listings.
type ItemFilter struct {
	TenantID string
	Search   string
	Offset   uint64
	Limit    uint64
}

type StorageInterface interface {
	// Tenants
	CreateTenant(ctx context.Context, name, slug, ownerUserID string) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	GetTenantBySlug(ctx context.Context, slug string) (*types.Tenant, error)
	ListTenantsByUserID(ctx context.Context, userID string) ([]*types.Tenant, error)
	UpdateTenant(ctx context.Context, id string, name, slug *string) (*types.Tenant, error)
	DeleteTenant(ctx context.Context, id string) error

	// Memberships
	GetMembership(ctx context.Context, userID, tenantID string) (*types.Membership, error)
	ListMembersByTenantID(ctx context.Context, tenantID string) ([]*types.Membership, error)
	AddMember(ctx context.Context, userID, tenantID string, role types.Role) (*types.Membership, error)
	UpdateMemberRole(ctx context.Context, userID, tenantID string, role types.Role) (*types.Membership, error)
	UpsertMembershipRole(ctx context.Context, userID, tenantID string, role types.Role) (*types.Membership, error)
	RemoveMember(ctx context.Context, userID, tenantID string) error

	// Invitations
	CreateInvitation(ctx context.Context, inv *types.Invitation) (*types.Invitation, error)
	GetInvitationByID(ctx context.Context, id string) (*types.Invitation, error)
	GetInvitationByToken(ctx context.Context, token string) (*types.Invitation, error)
	ListPendingInvitationsByTenantID(ctx context.Context, tenantID string) ([]*types.Invitation, error)
	GetPendingInvitationByEmailAndTenant(ctx context.Context, email, tenantID string) (*types.Invitation, error)
	MarkInvitationAccepted(ctx context.Context, id string) error
	DeleteInvitation(ctx context.Context, id string) error

	// Users
	CreateUser(ctx context.Context, user *types.User) (*types.User, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	GetUserByKeycloakID(ctx context.Context, keycloakID string) (*types.User, error)
	UpdateUser(ctx context.Context, id string, update UserUpdate) (*types.User, error)
	DeleteUser(ctx context.Context, id string) error

	// Items
	CreateItem(ctx context.Context, item *types.Item) (*types.Item, error)
	GetItemByID(ctx context.Context, id string) (*types.Item, error)
	ListItems(ctx context.Context, filter ItemFilter) ([]*types.Item, error)
	CountItems(ctx context.Context, tenantID, search string) (uint64, error)
	UpdateItem(ctx context.Context, id string, name, description *string) (*types.Item, error)
	DeleteItem(ctx context.Context, id string) error
}
