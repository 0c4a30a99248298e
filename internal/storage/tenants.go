// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package storage

import (
	"errors"
	"fmt"

	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mylegitech/api/internal/types"
)

// CreateTenant inserts the tenant row and the creator's OWNER membership.
// Callers must run it inside a transaction context so both inserts commit
// or roll back together; the slug unique constraint is the authoritative
// guard against concurrent duplicate creates.
func (s *Storage) CreateTenant(ctx context.Context, name, slug, ownerUserID string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.CreateTenant")
	defer span.End()

	tenantID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate tenant ID: %w", err)
	}

	var t types.Tenant
	err = s.db.Statement(ctx).
		Insert("tenants").
		Columns("id", "name", "slug").
		Values(tenantID.String(), name, slug).
		Suffix("RETURNING id, name, slug, created_at, updated_at").
		QueryRowContext(ctx).
		Scan(&t.ID, &t.Name, &t.Slug, &t.CreatedAt, &t.UpdatedAt)

	if err != nil {
		return nil, mapWriteError(err)
	}

	membershipID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate membership ID: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("tenant_users").
		Columns("id", "user_id", "tenant_id", "role").
		Values(membershipID.String(), ownerUserID, t.ID, types.RoleOwner).
		ExecContext(ctx)

	if err != nil {
		return nil, mapWriteError(err)
	}

	t.MyRole = types.RoleOwner
	t.MemberCount = 1
	return &t, nil
}

func (s *Storage) GetTenantByID(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetTenantByID")
	defer span.End()

	var t types.Tenant
	err := s.db.Statement(ctx).
		Select("id", "name", "slug", "created_at", "updated_at").
		From("tenants").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&t.ID, &t.Name, &t.Slug, &t.CreatedAt, &t.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return &t, nil
}

func (s *Storage) GetTenantBySlug(ctx context.Context, slug string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetTenantBySlug")
	defer span.End()

	var t types.Tenant
	err := s.db.Statement(ctx).
		Select("id", "name", "slug", "created_at", "updated_at").
		From("tenants").
		Where(sq.Eq{"slug": slug}).
		QueryRowContext(ctx).
		Scan(&t.ID, &t.Name, &t.Slug, &t.CreatedAt, &t.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant by slug: %w", err)
	}

	return &t, nil
}

// ListTenantsByUserID returns the tenants the user belongs to, newest
// first, each annotated with the caller's role and the tenant member count.
func (s *Storage) ListTenantsByUserID(ctx context.Context, userID string) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ListTenantsByUserID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("t.id", "t.name", "t.slug", "t.created_at", "t.updated_at", "m.role").
		Column("(SELECT COUNT(*) FROM tenant_users c WHERE c.tenant_id = t.id) AS member_count").
		From("tenants t").
		Join("tenant_users m ON t.id = m.tenant_id").
		Where(sq.Eq{"m.user_id": userID}).
		OrderBy("t.created_at DESC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	defer rows.Close()

	var tenants []*types.Tenant
	for rows.Next() {
		var t types.Tenant
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.CreatedAt, &t.UpdatedAt, &t.MyRole, &t.MemberCount); err != nil {
			return nil, fmt.Errorf("failed to scan tenant: %w", err)
		}
		tenants = append(tenants, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return tenants, nil
}

func (s *Storage) UpdateTenant(ctx context.Context, id string, name, slug *string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.UpdateTenant")
	defer span.End()

	updateMap := map[string]interface{}{
		"updated_at": sq.Expr("now()"),
	}
	if name != nil {
		updateMap["name"] = *name
	}
	if slug != nil {
		updateMap["slug"] = *slug
	}

	var t types.Tenant
	err := s.db.Statement(ctx).
		Update("tenants").
		SetMap(updateMap).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, name, slug, created_at, updated_at").
		QueryRowContext(ctx).
		Scan(&t.ID, &t.Name, &t.Slug, &t.CreatedAt, &t.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, mapWriteError(err)
	}

	return &t, nil
}

// DeleteTenant removes the tenant; memberships and invitations cascade at
// the schema level.
func (s *Storage) DeleteTenant(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.DeleteTenant")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("tenants").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete tenant: %w", err)
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
