// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/mylegitech/api/internal/authorization"
	"github.com/mylegitech/api/internal/keycloak"
	"github.com/mylegitech/api/internal/logging"
	"github.com/mylegitech/api/internal/monitoring"
	"github.com/mylegitech/api/internal/storage"
	"github.com/mylegitech/api/internal/tracing"
	"github.com/mylegitech/api/internal/types"
)

type Service struct {
	storage  StorageInterface
	authz    authorization.AuthorizerInterface
	keycloak keycloak.AdminClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	authz authorization.AuthorizerInterface,
	kc keycloak.AdminClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		authz:    authz,
		keycloak: kc,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (s *Service) GetProfile(ctx context.Context, userID string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "user.Service.GetProfile")
	defer span.End()

	user, err := s.storage.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// UpdateProfile writes the local record first, then pushes the change to
// Keycloak so the next token carries matching claims. The Keycloak call is
// best effort: the local database is the source of truth for profile data
// and SyncUser never overwrites locally set names.
func (s *Service) UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "user.Service.UpdateProfile")
	defer span.End()

	user, err := s.storage.UpdateUser(ctx, userID, storage.UserUpdate{
		Email:     update.Email,
		FirstName: update.FirstName,
		LastName:  update.LastName,
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, ErrEmailAlreadyTaken
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	if user.KeycloakID != nil {
		err := s.keycloak.UpdateUser(ctx, *user.KeycloakID, keycloak.UserUpdate{
			Email:     update.Email,
			FirstName: update.FirstName,
			LastName:  update.LastName,
		})
		if err != nil {
			s.logger.Errorf("failed to sync profile of user %s to keycloak: %v", userID, err)
		}
	}

	return user, nil
}

func (s *Service) ListMyTenants(ctx context.Context, userID string) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "user.Service.ListMyTenants")
	defer span.End()

	return s.storage.ListTenantsByUserID(ctx, userID)
}

// DeleteAccount removes the user from the database and from Keycloak.
// Owned tenants block deletion: ownership has to be transferred or the
// tenant deleted first, otherwise the tenant would be left without an
// owner. Memberships and sent invitations go with the user row.
func (s *Service) DeleteAccount(ctx context.Context, userID string) error {
	ctx, span := s.tracer.Start(ctx, "user.Service.DeleteAccount")
	defer span.End()

	user, err := s.storage.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	tenants, err := s.storage.ListTenantsByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to list tenants: %w", err)
	}
	for _, t := range tenants {
		if t.MyRole == types.RoleOwner {
			return ErrOwnedTenants
		}
	}

	if user.KeycloakID != nil {
		if err := s.keycloak.DeleteUser(ctx, *user.KeycloakID); err != nil && !errors.Is(err, keycloak.ErrUserNotFound) {
			return fmt.Errorf("failed to delete identity provider account: %w", err)
		}
	}

	if err := s.storage.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Infof("user account %s deleted", userID)
	return nil
}

// SwitchTenant validates that the caller belongs to the target tenant and
// returns it annotated with the caller's role. Tenant selection itself is
// stateless: the client sends the X-Tenant-ID header on subsequent
// requests.
func (s *Service) SwitchTenant(ctx context.Context, userID, tenantID string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "user.Service.SwitchTenant")
	defer span.End()

	m, err := s.authz.CheckTenantAccess(ctx, userID, tenantID)
	if err != nil {
		return nil, err
	}

	t, err := s.storage.GetTenantByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, authorization.ErrTenantAccessDenied
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	t.MyRole = m.Role
	return t, nil
}
