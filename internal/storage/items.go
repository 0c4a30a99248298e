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

const itemColumns = "id, name, description, tenant_id, created_at, updated_at"

func scanItem(row sq.RowScanner) (*types.Item, error) {
	var it types.Item
	err := row.Scan(&it.ID, &it.Name, &it.Description, &it.TenantID, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (s *Storage) CreateItem(ctx context.Context, item *types.Item) (*types.Item, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.CreateItem")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate item ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("items").
		Columns("id", "name", "description", "tenant_id").
		Values(id.String(), item.Name, item.Description, item.TenantID).
		Suffix("RETURNING " + itemColumns).
		QueryRowContext(ctx)

	created, err := scanItem(row)
	if err != nil {
		return nil, mapWriteError(err)
	}

	return created, nil
}

func (s *Storage) GetItemByID(ctx context.Context, id string) (*types.Item, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetItemByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(itemColumns).
		From("items").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	it, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	return it, nil
}

// ListItems returns the tenant's items, newest first. Search matches the
// name case-insensitively.
func (s *Storage) ListItems(ctx context.Context, filter ItemFilter) ([]*types.Item, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ListItems")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(itemColumns).
		From("items").
		Where(sq.Eq{"tenant_id": filter.TenantID}).
		OrderBy("created_at DESC")

	if filter.Search != "" {
		query = query.Where(sq.ILike{"name": "%" + filter.Search + "%"})
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	var items []*types.Item
	for rows.Next() {
		var it types.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.TenantID, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, &it)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return items, nil
}

func (s *Storage) CountItems(ctx context.Context, tenantID, search string) (uint64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.CountItems")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("items").
		Where(sq.Eq{"tenant_id": tenantID})

	if search != "" {
		query = query.Where(sq.ILike{"name": "%" + search + "%"})
	}

	var count uint64
	if err := query.QueryRowContext(ctx).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count items: %w", err)
	}

	return count, nil
}

func (s *Storage) UpdateItem(ctx context.Context, id string, name, description *string) (*types.Item, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.UpdateItem")
	defer span.End()

	fields := sq.Eq{}
	if name != nil {
		fields["name"] = *name
	}
	if description != nil {
		fields["description"] = *description
	}

	if len(fields) == 0 {
		return s.GetItemByID(ctx, id)
	}

	row := s.db.Statement(ctx).
		Update("items").
		SetMap(fields).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + itemColumns).
		QueryRowContext(ctx)

	it, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, mapWriteError(err)
	}

	return it, nil
}

func (s *Storage) DeleteItem(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.DeleteItem")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("items").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
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
