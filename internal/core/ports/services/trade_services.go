package services

import (
	"context"

	"github.com/agrisage/farm_management_app/internal/core/domain"
	"github.com/agrisage/farm_management_app/internal/dto"
)

// SupplierSvc manages suppliers.
type SupplierSvc interface {
	CreateSupplier(ctx context.Context, workspaceID string, req dto.CreateSupplierRequest, requestingUserID string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context, workspaceID, requestingUserID string) ([]domain.Supplier, error)
	UpdateSupplier(ctx context.Context, workspaceID, supplierID string, req dto.UpdateSupplierRequest, requestingUserID string) (*domain.Supplier, error)
	DeleteSupplier(ctx context.Context, workspaceID, supplierID, requestingUserID string) error
}

// CustomerSvc manages customers.
type CustomerSvc interface {
	CreateCustomer(ctx context.Context, workspaceID string, req dto.CreateCustomerRequest, requestingUserID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, workspaceID, requestingUserID string) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, workspaceID, customerID string, req dto.UpdateCustomerRequest, requestingUserID string) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, workspaceID, customerID, requestingUserID string) error
}

// HarvestSvc manages harvest lots.
type HarvestSvc interface {
	RecordHarvest(ctx context.Context, workspaceID string, req dto.CreateHarvestRequest, requestingUserID string) (*domain.Harvest, error)
	ListHarvests(ctx context.Context, workspaceID, requestingUserID string) ([]domain.Harvest, error)
	DeleteHarvest(ctx context.Context, workspaceID, harvestID, requestingUserID string) error
}

// SaleSvc manages sales. Recording a sale assigns an invoice number,
// decrements the harvest lot and posts a linked journal entry when ledger
// accounts are supplied.
type SaleSvc interface {
	RecordSale(ctx context.Context, workspaceID string, req dto.CreateSaleRequest, requestingUserID string) (*domain.Sale, error)
	ListSales(ctx context.Context, workspaceID, requestingUserID string) ([]domain.Sale, error)
	DeleteSale(ctx context.Context, workspaceID, saleID, requestingUserID string) error
}

// TradeSvcFacade combines supplier, customer, harvest and sale services.
type TradeSvcFacade interface {
	SupplierSvc
	CustomerSvc
	HarvestSvc
	SaleSvc
}
