package repositories

import (
	"context"

	"github.com/agrisage/farm_management_app/internal/core/domain"

	"github.com/shopspring/decimal"
)

// SupplierRepositoryFacade persists suppliers.
type SupplierRepositoryFacade interface {
	SaveSupplier(ctx context.Context, supplier domain.Supplier) error
	FindSupplierByID(ctx context.Context, workspaceID, supplierID string) (*domain.Supplier, error)
	ListSuppliersByWorkspace(ctx context.Context, workspaceID string) ([]domain.Supplier, error)
	UpdateSupplier(ctx context.Context, supplier domain.Supplier) error
	DeleteSupplier(ctx context.Context, workspaceID, supplierID string) error
}

// CustomerRepositoryFacade persists customers.
type CustomerRepositoryFacade interface {
	SaveCustomer(ctx context.Context, customer domain.Customer) error
	FindCustomerByID(ctx context.Context, workspaceID, customerID string) (*domain.Customer, error)
	ListCustomersByWorkspace(ctx context.Context, workspaceID string) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, customer domain.Customer) error
	DeleteCustomer(ctx context.Context, workspaceID, customerID string) error
}

// HarvestRepositoryFacade persists harvest lots.
type HarvestRepositoryFacade interface {
	SaveHarvest(ctx context.Context, harvest domain.Harvest) error
	FindHarvestByID(ctx context.Context, workspaceID, harvestID string) (*domain.Harvest, error)
	ListHarvestsByWorkspace(ctx context.Context, workspaceID string) ([]domain.Harvest, error)
	UpdateHarvest(ctx context.Context, harvest domain.Harvest) error
	DeleteHarvest(ctx context.Context, workspaceID, harvestID string) error

	// AdjustRemaining atomically adds delta (negative when selling) to a
	// harvest lot's remaining quantity.
	AdjustRemaining(ctx context.Context, workspaceID, harvestID string, delta decimal.Decimal) error
}

// SaleRepositoryFacade persists sales.
type SaleRepositoryFacade interface {
	SaveSale(ctx context.Context, sale domain.Sale) error
	FindSaleByID(ctx context.Context, workspaceID, saleID string) (*domain.Sale, error)
	ListSalesByWorkspace(ctx context.Context, workspaceID string) ([]domain.Sale, error)
	UpdateSale(ctx context.Context, sale domain.Sale) error
	DeleteSale(ctx context.Context, workspaceID, saleID string) error

	// CountSalesByWorkspace backs sequential invoice numbering.
	CountSalesByWorkspace(ctx context.Context, workspaceID string) (int64, error)
}
