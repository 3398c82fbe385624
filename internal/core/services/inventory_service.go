package services

import (
	"context"
	"log/slog"

	"github.com/agrisage/farm_management_app/internal/core/domain"
	portsrepo "github.com/agrisage/farm_management_app/internal/core/ports/repositories"
	portssvc "github.com/agrisage/farm_management_app/internal/core/ports/services"
	"github.com/agrisage/farm_management_app/internal/dto"
	"github.com/agrisage/farm_management_app/internal/utils"
)

// inventoryService implements portssvc.InventorySvcFacade.
type inventoryService struct {
	BaseService
	inventoryRepo portsrepo.InventoryRepositoryFacade
}

var _ portssvc.InventorySvcFacade = (*inventoryService)(nil)

// InventoryServiceOption configures the inventory service.
type InventoryServiceOption func(*inventoryService)

// WithInventoryAuthorizer sets the workspace authorizer for the inventory service.
func WithInventoryAuthorizer(authorizer portssvc.WorkspaceAuthorizerSvc) InventoryServiceOption {
	return func(s *inventoryService) {
		s.WorkspaceAuthorizer = authorizer
	}
}

// NewInventoryService creates a new inventory service.
func NewInventoryService(inventoryRepo portsrepo.InventoryRepositoryFacade, opts ...InventoryServiceOption) portssvc.InventorySvcFacade {
	svc := &inventoryService{inventoryRepo: inventoryRepo}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// CreateItem stocks a new inventory item.
func (s *inventoryService) CreateItem(ctx context.Context, workspaceID string, req dto.CreateInventoryItemRequest, requestingUserID string) (*domain.InventoryItem, error) {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureInventory); err != nil {
		return nil, err
	}

	item := domain.InventoryItem{
		InventoryID:  utils.NewEntityID("inv"),
		WorkspaceID:  workspaceID,
		Name:         req.Name,
		Category:     domain.InventoryCategory(req.Category),
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		Supplier:     req.Supplier,
		PurchaseDate: req.PurchaseDate,
		CostPerUnit:  req.CostPerUnit,
		ReorderPoint: req.ReorderPoint,
	}
	if err := s.inventoryRepo.SaveItem(ctx, item); err != nil {
		s.LogError(ctx, err, "Failed to save inventory item", slog.String("workspace_id", workspaceID))
		return nil, err
	}
	return &item, nil
}

// GetItemByID retrieves an inventory item.
func (s *inventoryService) GetItemByID(ctx context.Context, workspaceID, itemID, requestingUserID string) (*domain.InventoryItem, error) {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureInventory); err != nil {
		return nil, err
	}
	return s.inventoryRepo.FindItemByID(ctx, workspaceID, itemID)
}

// ListItems retrieves the workspace's inventory.
func (s *inventoryService) ListItems(ctx context.Context, workspaceID, requestingUserID string) ([]domain.InventoryItem, error) {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureInventory); err != nil {
		return nil, err
	}
	return s.inventoryRepo.ListItemsByWorkspace(ctx, workspaceID)
}

// UpdateItem updates item fields.
func (s *inventoryService) UpdateItem(ctx context.Context, workspaceID, itemID string, req dto.UpdateInventoryItemRequest, requestingUserID string) (*domain.InventoryItem, error) {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureInventory); err != nil {
		return nil, err
	}
	item, err := s.inventoryRepo.FindItemByID(ctx, workspaceID, itemID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Category != nil {
		item.Category = domain.InventoryCategory(*req.Category)
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.Supplier != nil {
		item.Supplier = *req.Supplier
	}
	if req.PurchaseDate != nil {
		item.PurchaseDate = *req.PurchaseDate
	}
	if req.CostPerUnit != nil {
		item.CostPerUnit = *req.CostPerUnit
	}
	if req.ReorderPoint != nil {
		item.ReorderPoint = req.ReorderPoint
	}

	if err := s.inventoryRepo.UpdateItem(ctx, *item); err != nil {
		s.LogError(ctx, err, "Failed to update inventory item", slog.String("inventory_id", itemID))
		return nil, err
	}
	return item, nil
}

// DeleteItem removes an inventory item.
func (s *inventoryService) DeleteItem(ctx context.Context, workspaceID, itemID, requestingUserID string) error {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureInventory); err != nil {
		return err
	}
	return s.inventoryRepo.DeleteItem(ctx, workspaceID, itemID)
}

// ListLowStockItems returns items at or below their reorder point.
func (s *inventoryService) ListLowStockItems(ctx context.Context, workspaceID, requestingUserID string) ([]domain.InventoryItem, error) {
	items, err := s.ListItems(ctx, workspaceID, requestingUserID)
	if err != nil {
		return nil, err
	}
	low := make([]domain.InventoryItem, 0)
	for _, item := range items {
		if item.NeedsReorder() {
			low = append(low, item)
		}
	}
	return low, nil
}
