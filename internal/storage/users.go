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

const userColumns = "id, email, keycloak_id, first_name, last_name, created_at, updated_at"

func scanUser(row sq.RowScanner) (*types.User, error) {
	var u types.User
	err := row.Scan(&u.ID, &u.Email, &u.KeycloakID, &u.FirstName, &u.LastName, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Storage) CreateUser(ctx context.Context, user *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.CreateUser")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("users").
		Columns("id", "email", "keycloak_id", "first_name", "last_name").
		Values(id.String(), user.Email, user.KeycloakID, user.FirstName, user.LastName).
		Suffix("RETURNING " + userColumns).
		QueryRowContext(ctx)

	created, err := scanUser(row)
	if err != nil {
		return nil, mapWriteError(err)
	}

	return created, nil
}

func (s *Storage) GetUserByID(ctx context.Context, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetUserByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(userColumns).
		From("users").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetUserByEmail")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(userColumns).
		From("users").
		Where(sq.Eq{"email": email}).
		QueryRowContext(ctx)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return u, nil
}

func (s *Storage) GetUserByKeycloakID(ctx context.Context, keycloakID string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetUserByKeycloakID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(userColumns).
		From("users").
		Where(sq.Eq{"keycloak_id": keycloakID}).
		QueryRowContext(ctx)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by keycloak ID: %w", err)
	}

	return u, nil
}

// UpdateUser applies the non-nil fields of update. A duplicate email
// surfaces as ErrDuplicateKey.
func (s *Storage) UpdateUser(ctx context.Context, id string, update UserUpdate) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.UpdateUser")
	defer span.End()

	fields := sq.Eq{}
	if update.Email != nil {
		fields["email"] = *update.Email
	}
	if update.KeycloakID != nil {
		fields["keycloak_id"] = *update.KeycloakID
	}
	if update.FirstName != nil {
		fields["first_name"] = *update.FirstName
	}
	if update.LastName != nil {
		fields["last_name"] = *update.LastName
	}

	if len(fields) == 0 {
		return s.GetUserByID(ctx, id)
	}

	row := s.db.Statement(ctx).
		Update("users").
		SetMap(fields).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + userColumns).
		QueryRowContext(ctx)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, mapWriteError(err)
	}

	return u, nil
}

func (s *Storage) DeleteUser(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.DeleteUser")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("users").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
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
