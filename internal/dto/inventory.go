package dto

import (
	"time"

	"github.com/agrisage/farm_management_app/internal/core/domain"

	"github.com/shopspring/decimal"
)

// CreateInventoryItemRequest defines data for stocking an item.
type CreateInventoryItemRequest struct {
	Name         string           `json:"name" binding:"required,max=120"`
	Category     string           `json:"category" binding:"required,oneof=Seeds Fertilizer Pesticide Equipment Other"`
	Quantity     decimal.Decimal  `json:"quantity"`
	Unit         string           `json:"unit,omitempty"`
	Supplier     string           `json:"supplier,omitempty"`
	PurchaseDate time.Time        `json:"purchaseDate"`
	CostPerUnit  decimal.Decimal  `json:"costPerUnit"`
	ReorderPoint *decimal.Decimal `json:"reorderPoint,omitempty"`
}

// UpdateInventoryItemRequest defines data for updating an item.
type UpdateInventoryItemRequest struct {
	Name         *string          `json:"name,omitempty" binding:"omitempty,max=120"`
	Category     *string          `json:"category,omitempty" binding:"omitempty,oneof=Seeds Fertilizer Pesticide Equipment Other"`
	Quantity     *decimal.Decimal `json:"quantity,omitempty"`
	Unit         *string          `json:"unit,omitempty"`
	Supplier     *string          `json:"supplier,omitempty"`
	PurchaseDate *time.Time       `json:"purchaseDate,omitempty"`
	CostPerUnit  *decimal.Decimal `json:"costPerUnit,omitempty"`
	ReorderPoint *decimal.Decimal `json:"reorderPoint,omitempty"`
}

// InventoryItemResponse defines data returned for an inventory item.
type InventoryItemResponse struct {
	InventoryID  string           `json:"inventoryID"`
	WorkspaceID  string           `json:"workspaceID"`
	Name         string           `json:"name"`
	Category     string           `json:"category"`
	Quantity     decimal.Decimal  `json:"quantity"`
	Unit         string           `json:"unit,omitempty"`
	Supplier     string           `json:"supplier,omitempty"`
	PurchaseDate time.Time        `json:"purchaseDate"`
	CostPerUnit  decimal.Decimal  `json:"costPerUnit"`
	ReorderPoint *decimal.Decimal `json:"reorderPoint,omitempty"`
	NeedsReorder bool             `json:"needsReorder"`
}

// ToInventoryItemResponse converts domain.InventoryItem to DTO.
func ToInventoryItemResponse(i *domain.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		InventoryID:  i.InventoryID,
		WorkspaceID:  i.WorkspaceID,
		Name:         i.Name,
		Category:     string(i.Category),
		Quantity:     i.Quantity,
		Unit:         i.Unit,
		Supplier:     i.Supplier,
		PurchaseDate: i.PurchaseDate,
		CostPerUnit:  i.CostPerUnit,
		ReorderPoint: i.ReorderPoint,
		NeedsReorder: i.NeedsReorder(),
	}
}

// ListInventoryResponse wraps inventory items.
type ListInventoryResponse struct {
	Items []InventoryItemResponse `json:"items"`
}

// ToListInventoryResponse converts a slice of items to DTO.
func ToListInventoryResponse(items []domain.InventoryItem) ListInventoryResponse {
	list := make([]InventoryItemResponse, len(items))
	for i, item := range items {
		list[i] = ToInventoryItemResponse(&item)
	}
	return ListInventoryResponse{Items: list}
}
