// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"context"

	"github.com/mylegitech/api/internal/storage"
	"github.com/mylegitech/api/internal/types"
	"github.com/mylegitech/api/pkg/authentication"
)

type StorageInterface interface {
	CreateUser(ctx context.Context, user *types.User) (*types.User, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	GetUserByKeycloakID(ctx context.Context, keycloakID string) (*types.User, error)
	UpdateUser(ctx context.Context, id string, update storage.UserUpdate) (*types.User, error)

	GetInvitationByToken(ctx context.Context, token string) (*types.Invitation, error)
	MarkInvitationAccepted(ctx context.Context, id string) error

	UpsertMembershipRole(ctx context.Context, userID, tenantID string, role types.Role) (*types.Membership, error)
}

// AcceptInvitationResult is what the invitation landing page needs to
// close the loop. RequiresLogin is true when the accepting user has no
// linked identity provider account yet and must go through Keycloak
// registration before signing in.
type AcceptInvitationResult struct {
	User          *types.User   `json:"user"`
	Tenant        *types.Tenant `json:"tenant"`
	Role          types.Role    `json:"role"`
	RequiresLogin bool          `json:"requiresLogin"`
}

type ServiceInterface interface {
	SyncUser(ctx context.Context, identity *authentication.Identity) (*types.User, error)
	AcceptInvitation(ctx context.Context, token string) (*AcceptInvitationResult, error)
	ResetPassword(ctx context.Context, email string) error
	Me(ctx context.Context, userID string) (*types.User, error)
}
