package repositories

import (
	"context"

	"github.com/agrisage/farm_management_app/internal/core/domain"

	"github.com/shopspring/decimal"
)

// InventoryRepositoryFacade persists inventory items.
type InventoryRepositoryFacade interface {
	SaveItem(ctx context.Context, item domain.InventoryItem) error
	FindItemByID(ctx context.Context, workspaceID, itemID string) (*domain.InventoryItem, error)
	ListItemsByWorkspace(ctx context.Context, workspaceID string) ([]domain.InventoryItem, error)
	UpdateItem(ctx context.Context, item domain.InventoryItem) error
	DeleteItem(ctx context.Context, workspaceID, itemID string) error

	// AdjustQuantity atomically adds delta (may be negative) to the item's
	// quantity. Used by task inventory consumption.
	AdjustQuantity(ctx context.Context, workspaceID, itemID string, delta decimal.Decimal) error
}
