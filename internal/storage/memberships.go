// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mylegitech/api/internal/types"
)

// GetMembership is the authorization primitive: the (user, tenant) row or
// ErrNotFound.
func (s *Storage) GetMembership(ctx context.Context, userID, tenantID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetMembership")
	defer span.End()

	var m types.Membership
	err := s.db.Statement(ctx).
		Select("id", "user_id", "tenant_id", "role", "created_at", "updated_at").
		From("tenant_users").
		Where(sq.Eq{"user_id": userID, "tenant_id": tenantID}).
		QueryRowContext(ctx).
		Scan(&m.ID, &m.UserID, &m.TenantID, &m.Role, &m.CreatedAt, &m.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return &m, nil
}

// ListMembersByTenantID returns memberships ordered by creation time
// ascending, with the user record populated for display.
func (s *Storage) ListMembersByTenantID(ctx context.Context, tenantID string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ListMembersByTenantID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(
			"m.id", "m.user_id", "m.tenant_id", "m.role", "m.created_at", "m.updated_at",
			"u.id", "u.email", "u.keycloak_id", "u.first_name", "u.last_name", "u.created_at", "u.updated_at",
		).
		From("tenant_users m").
		Join("users u ON u.id = m.user_id").
		Where(sq.Eq{"m.tenant_id": tenantID}).
		OrderBy("m.created_at ASC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*types.Membership
	for rows.Next() {
		var m types.Membership
		var u types.User
		if err := rows.Scan(
			&m.ID, &m.UserID, &m.TenantID, &m.Role, &m.CreatedAt, &m.UpdatedAt,
			&u.ID, &u.Email, &u.KeycloakID, &u.FirstName, &u.LastName, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		m.User = &u
		members = append(members, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

func (s *Storage) AddMember(ctx context.Context, userID, tenantID string, role types.Role) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.AddMember")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate membership ID: %w", err)
	}

	var m types.Membership
	err = s.db.Statement(ctx).
		Insert("tenant_users").
		Columns("id", "user_id", "tenant_id", "role").
		Values(id.String(), userID, tenantID, role).
		Suffix("RETURNING id, user_id, tenant_id, role, created_at, updated_at").
		QueryRowContext(ctx).
		Scan(&m.ID, &m.UserID, &m.TenantID, &m.Role, &m.CreatedAt, &m.UpdatedAt)

	if err != nil {
		return nil, mapWriteError(err)
	}

	return &m, nil
}

func (s *Storage) UpdateMemberRole(ctx context.Context, userID, tenantID string, role types.Role) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.UpdateMemberRole")
	defer span.End()

	var m types.Membership
	err := s.db.Statement(ctx).
		Update("tenant_users").
		Set("role", role).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"user_id": userID, "tenant_id": tenantID}).
		Suffix("RETURNING id, user_id, tenant_id, role, created_at, updated_at").
		QueryRowContext(ctx).
		Scan(&m.ID, &m.UserID, &m.TenantID, &m.Role, &m.CreatedAt, &m.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update member role: %w", err)
	}

	return &m, nil
}

// UpsertMembershipRole creates the membership or overwrites its role.
// The invitation-acceptance path relies on this running inside the same
// transaction as MarkInvitationAccepted.
func (s *Storage) UpsertMembershipRole(ctx context.Context, userID, tenantID string, role types.Role) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.UpsertMembershipRole")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate membership ID: %w", err)
	}

	var m types.Membership
	err = s.db.Statement(ctx).
		Insert("tenant_users").
		Columns("id", "user_id", "tenant_id", "role").
		Values(id.String(), userID, tenantID, role).
		Suffix("ON CONFLICT ON CONSTRAINT tenant_users_user_tenant_key DO UPDATE SET role = EXCLUDED.role, updated_at = now() RETURNING id, user_id, tenant_id, role, created_at, updated_at").
		QueryRowContext(ctx).
		Scan(&m.ID, &m.UserID, &m.TenantID, &m.Role, &m.CreatedAt, &m.UpdatedAt)

	if err != nil {
		return nil, mapWriteError(err)
	}

	return &m, nil
}

func (s *Storage) RemoveMember(ctx context.Context, userID, tenantID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.RemoveMember")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("tenant_users").
		Where(sq.Eq{"user_id": userID, "tenant_id": tenantID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
