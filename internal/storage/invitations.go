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

const invitationJoinColumns = `i.id, i.email, i.token, i.role, i.expires_at, i.accepted,
	i.tenant_id, i.invited_by, i.created_at, i.updated_at,
	t.id, t.name, t.slug, t.created_at, t.updated_at,
	u.id, u.email, u.keycloak_id, u.first_name, u.last_name, u.created_at, u.updated_at`

func scanInvitationJoin(row sq.RowScanner) (*types.Invitation, error) {
	var inv types.Invitation
	var t types.Tenant
	var u types.User
	err := row.Scan(
		&inv.ID, &inv.Email, &inv.Token, &inv.Role, &inv.ExpiresAt, &inv.Accepted,
		&inv.TenantID, &inv.InvitedBy, &inv.CreatedAt, &inv.UpdatedAt,
		&t.ID, &t.Name, &t.Slug, &t.CreatedAt, &t.UpdatedAt,
		&u.ID, &u.Email, &u.KeycloakID, &u.FirstName, &u.LastName, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	inv.Tenant = &t
	inv.Inviter = &u
	return &inv, nil
}

// CreateInvitation persists the invitation and returns it with tenant and
// inviter populated for downstream email rendering. Token and expiry are
// supplied by the caller; the token unique constraint guards duplicates.
func (s *Storage) CreateInvitation(ctx context.Context, inv *types.Invitation) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.CreateInvitation")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invitation ID: %w", err)
	}

	var createdID string
	err = s.db.Statement(ctx).
		Insert("invitations").
		Columns("id", "email", "token", "role", "expires_at", "tenant_id", "invited_by").
		Values(id.String(), inv.Email, inv.Token, inv.Role, inv.ExpiresAt, inv.TenantID, inv.InvitedBy).
		Suffix("RETURNING id").
		QueryRowContext(ctx).
		Scan(&createdID)

	if err != nil {
		return nil, mapWriteError(err)
	}

	return s.GetInvitationByID(ctx, createdID)
}

func (s *Storage) GetInvitationByID(ctx context.Context, id string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetInvitationByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(invitationJoinColumns).
		From("invitations i").
		Join("tenants t ON t.id = i.tenant_id").
		Join("users u ON u.id = i.invited_by").
		Where(sq.Eq{"i.id": id}).
		QueryRowContext(ctx)

	inv, err := scanInvitationJoin(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}

	return inv, nil
}

func (s *Storage) GetInvitationByToken(ctx context.Context, token string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetInvitationByToken")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(invitationJoinColumns).
		From("invitations i").
		Join("tenants t ON t.id = i.tenant_id").
		Join("users u ON u.id = i.invited_by").
		Where(sq.Eq{"i.token": token}).
		QueryRowContext(ctx)

	inv, err := scanInvitationJoin(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invitation by token: %w", err)
	}

	return inv, nil
}

// ListPendingInvitationsByTenantID returns not-yet-accepted invitations,
// newest first, with the inviter populated.
func (s *Storage) ListPendingInvitationsByTenantID(ctx context.Context, tenantID string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ListPendingInvitationsByTenantID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(
			"i.id", "i.email", "i.token", "i.role", "i.expires_at", "i.accepted",
			"i.tenant_id", "i.invited_by", "i.created_at", "i.updated_at",
			"u.id", "u.email", "u.keycloak_id", "u.first_name", "u.last_name", "u.created_at", "u.updated_at",
		).
		From("invitations i").
		Join("users u ON u.id = i.invited_by").
		Where(sq.Eq{"i.tenant_id": tenantID, "i.accepted": false}).
		OrderBy("i.created_at DESC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	defer rows.Close()

	var invitations []*types.Invitation
	for rows.Next() {
		var inv types.Invitation
		var u types.User
		if err := rows.Scan(
			&inv.ID, &inv.Email, &inv.Token, &inv.Role, &inv.ExpiresAt, &inv.Accepted,
			&inv.TenantID, &inv.InvitedBy, &inv.CreatedAt, &inv.UpdatedAt,
			&u.ID, &u.Email, &u.KeycloakID, &u.FirstName, &u.LastName, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan invitation: %w", err)
		}
		inv.Inviter = &u
		invitations = append(invitations, &inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return invitations, nil
}

// GetPendingInvitationByEmailAndTenant returns the active invitation for
// (email, tenant): not accepted and not yet expired.
func (s *Storage) GetPendingInvitationByEmailAndTenant(ctx context.Context, email, tenantID string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetPendingInvitationByEmailAndTenant")
	defer span.End()

	var inv types.Invitation
	err := s.db.Statement(ctx).
		Select("id", "email", "token", "role", "expires_at", "accepted", "tenant_id", "invited_by", "created_at", "updated_at").
		From("invitations").
		Where(sq.Eq{"email": email, "tenant_id": tenantID, "accepted": false}).
		Where(sq.Expr("expires_at > now()")).
		QueryRowContext(ctx).
		Scan(&inv.ID, &inv.Email, &inv.Token, &inv.Role, &inv.ExpiresAt, &inv.Accepted, &inv.TenantID, &inv.InvitedBy, &inv.CreatedAt, &inv.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get pending invitation: %w", err)
	}

	return &inv, nil
}

// MarkInvitationAccepted idempotently flips the accepted flag. State
// validation happens at the service layer before this call.
func (s *Storage) MarkInvitationAccepted(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.MarkInvitationAccepted")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("invitations").
		Set("accepted", true).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to mark invitation accepted: %w", err)
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

// DeleteInvitation hard-deletes the row. Used both for cancellation and
// for the compensating delete when the invitation email fails to send.
func (s *Storage) DeleteInvitation(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.DeleteInvitation")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("invitations").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete invitation: %w", err)
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
