// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package item

import (
	"context"
	"errors"

	"github.com/mylegitech/api/internal/storage"
	"github.com/mylegitech/api/internal/types"
)

var (
	ErrItemNotFound  = errors.New("item not found")
	ErrItemForbidden = errors.New("item belongs to another tenant")
)

type StorageInterface interface {
	CreateItem(ctx context.Context, item *types.Item) (*types.Item, error)
	GetItemByID(ctx context.Context, id string) (*types.Item, error)
	ListItems(ctx context.Context, filter storage.ItemFilter) ([]*types.Item, error)
	CountItems(ctx context.Context, tenantID, search string) (uint64, error)
	UpdateItem(ctx context.Context, id string, name, description *string) (*types.Item, error)
	DeleteItem(ctx context.Context, id string) error
}

// ListParams paginates and filters a tenant's items. Page is 1-based.
type ListParams struct {
	Page   uint64
	Limit  uint64
	Search string
}

// Page is one page of items together with the total match count, so
// clients can render pagination without a second request.
type Page struct {
	Items []*types.Item `json:"items"`
	Total uint64        `json:"total"`
	Page  uint64        `json:"page"`
	Limit uint64        `json:"limit"`
}

type ServiceInterface interface {
	CreateItem(ctx context.Context, userID, tenantID, name, description string) (*types.Item, error)
	GetItem(ctx context.Context, userID, tenantID, itemID string) (*types.Item, error)
	ListItems(ctx context.Context, userID, tenantID string, params ListParams) (*Page, error)
	UpdateItem(ctx context.Context, userID, tenantID, itemID string, name, description *string) (*types.Item, error)
	DeleteItem(ctx context.Context, userID, tenantID, itemID string) error
}
