// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package item

import (
	"context"
	"errors"
	"fmt"

	"github.com/mylegitech/api/internal/authorization"
	"github.com/mylegitech/api/internal/logging"
	"github.com/mylegitech/api/internal/monitoring"
	"github.com/mylegitech/api/internal/storage"
	"github.com/mylegitech/api/internal/tracing"
	"github.com/mylegitech/api/internal/types"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type Service struct {
	storage StorageInterface
	authz   authorization.AuthorizerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	authz authorization.AuthorizerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		authz:   authz,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) CreateItem(ctx context.Context, userID, tenantID, name, description string) (*types.Item, error) {
	ctx, span := s.tracer.Start(ctx, "item.Service.CreateItem")
	defer span.End()

	if _, err := s.authz.Authorize(ctx, userID, tenantID, authorization.OpItemCreate); err != nil {
		return nil, err
	}

	created, err := s.storage.CreateItem(ctx, &types.Item{
		Name:        name,
		Description: description,
		TenantID:    tenantID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}
	return created, nil
}

func (s *Service) GetItem(ctx context.Context, userID, tenantID, itemID string) (*types.Item, error) {
	ctx, span := s.tracer.Start(ctx, "item.Service.GetItem")
	defer span.End()

	if _, err := s.authz.Authorize(ctx, userID, tenantID, authorization.OpItemView); err != nil {
		return nil, err
	}

	return s.loadScoped(ctx, tenantID, itemID)
}

func (s *Service) ListItems(ctx context.Context, userID, tenantID string, params ListParams) (*Page, error) {
	ctx, span := s.tracer.Start(ctx, "item.Service.ListItems")
	defer span.End()

	if _, err := s.authz.Authorize(ctx, userID, tenantID, authorization.OpItemView); err != nil {
		return nil, err
	}

	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = defaultPageSize
	}
	if params.Limit > maxPageSize {
		params.Limit = maxPageSize
	}

	items, err := s.storage.ListItems(ctx, storage.ItemFilter{
		TenantID: tenantID,
		Search:   params.Search,
		Offset:   (params.Page - 1) * params.Limit,
		Limit:    params.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	total, err := s.storage.CountItems(ctx, tenantID, params.Search)
	if err != nil {
		return nil, fmt.Errorf("failed to count items: %w", err)
	}

	return &Page{
		Items: items,
		Total: total,
		Page:  params.Page,
		Limit: params.Limit,
	}, nil
}

func (s *Service) UpdateItem(ctx context.Context, userID, tenantID, itemID string, name, description *string) (*types.Item, error) {
	ctx, span := s.tracer.Start(ctx, "item.Service.UpdateItem")
	defer span.End()

	if _, err := s.authz.Authorize(ctx, userID, tenantID, authorization.OpItemUpdate); err != nil {
		return nil, err
	}

	if _, err := s.loadScoped(ctx, tenantID, itemID); err != nil {
		return nil, err
	}

	updated, err := s.storage.UpdateItem(ctx, itemID, name, description)
	if err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}
	return updated, nil
}

func (s *Service) DeleteItem(ctx context.Context, userID, tenantID, itemID string) error {
	ctx, span := s.tracer.Start(ctx, "item.Service.DeleteItem")
	defer span.End()

	if _, err := s.authz.Authorize(ctx, userID, tenantID, authorization.OpItemDelete); err != nil {
		return err
	}

	if _, err := s.loadScoped(ctx, tenantID, itemID); err != nil {
		return err
	}

	if err := s.storage.DeleteItem(ctx, itemID); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}

// loadScoped fetches the item and enforces tenant scoping. An item that
// exists under another tenant is a forbidden access, not a missing row.
func (s *Service) loadScoped(ctx context.Context, tenantID, itemID string) (*types.Item, error) {
	item, err := s.storage.GetItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	if !item.BelongsToTenant(tenantID) {
		return nil, ErrItemForbidden
	}
	return item, nil
}
