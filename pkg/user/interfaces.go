// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package user

import (
	"context"
	"errors"

	"github.com/mylegitech/api/internal/storage"
	"github.com/mylegitech/api/internal/types"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailAlreadyTaken = errors.New("email is already in use")
	ErrOwnedTenants      = errors.New("transfer or delete owned tenants before deleting the account")
)

type StorageInterface interface {
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	UpdateUser(ctx context.Context, id string, update storage.UserUpdate) (*types.User, error)
	DeleteUser(ctx context.Context, id string) error
	ListTenantsByUserID(ctx context.Context, userID string) ([]*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
}

// ProfileUpdate carries the fields a user may change on their own
// profile; nil pointers are left untouched.
type ProfileUpdate struct {
	Email     *string
	FirstName *string
	LastName  *string
}

type ServiceInterface interface {
	GetProfile(ctx context.Context, userID string) (*types.User, error)
	UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*types.User, error)
	DeleteAccount(ctx context.Context, userID string) error
	ListMyTenants(ctx context.Context, userID string) ([]*types.Tenant, error)
	SwitchTenant(ctx context.Context, userID, tenantID string) (*types.Tenant, error)
}
