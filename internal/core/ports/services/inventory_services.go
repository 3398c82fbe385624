package services

import (
	"context"

	"github.com/agrisage/farm_management_app/internal/core/domain"
	"github.com/agrisage/farm_management_app/internal/dto"
)

// InventorySvcFacade manages stock items.
type InventorySvcFacade interface {
	CreateItem(ctx context.Context, workspaceID string, req dto.CreateInventoryItemRequest, requestingUserID string) (*domain.InventoryItem, error)
	GetItemByID(ctx context.Context, workspaceID, itemID, requestingUserID string) (*domain.InventoryItem, error)
	ListItems(ctx context.Context, workspaceID, requestingUserID string) ([]domain.InventoryItem, error)
	UpdateItem(ctx context.Context, workspaceID, itemID string, req dto.UpdateInventoryItemRequest, requestingUserID string) (*domain.InventoryItem, error)
	DeleteItem(ctx context.Context, workspaceID, itemID, requestingUserID string) error

	// ListLowStockItems returns items at or below their reorder point.
	ListLowStockItems(ctx context.Context, workspaceID, requestingUserID string) ([]domain.InventoryItem, error)
}
