package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryCategory is the closed set of stock categories.
type InventoryCategory string

const (
	InventorySeeds      InventoryCategory = "Seeds"
	InventoryFertilizer InventoryCategory = "Fertilizer"
	InventoryPesticide  InventoryCategory = "Pesticide"
	InventoryEquipment  InventoryCategory = "Equipment"
	InventoryOther      InventoryCategory = "Other"
)

// InventoryItem is a stocked input or piece of equipment.
type InventoryItem struct {
	InventoryID  string            `json:"inventoryID"` // Primary Key
	WorkspaceID  string            `json:"workspaceID"`
	Name         string            `json:"name"`
	Category     InventoryCategory `json:"category"`
	Quantity     decimal.Decimal   `json:"quantity"`
	Unit         string            `json:"unit"`
	Supplier     string            `json:"supplier"`
	PurchaseDate time.Time         `json:"purchaseDate"`
	CostPerUnit  decimal.Decimal   `json:"costPerUnit"`
	ReorderPoint *decimal.Decimal  `json:"reorderPoint,omitempty"`
}

// NeedsReorder reports whether quantity has fallen to or below the reorder
// point. Items without a reorder point never need reordering.
func (i InventoryItem) NeedsReorder() bool {
	return i.ReorderPoint != nil && i.Quantity.LessThanOrEqual(*i.ReorderPoint)
}
