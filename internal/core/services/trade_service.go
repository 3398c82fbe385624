package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/agrisage/farm_management_app/internal/apperrors"
	"github.com/agrisage/farm_management_app/internal/core/domain"
	portsrepo "github.com/agrisage/farm_management_app/internal/core/ports/repositories"
	portssvc "github.com/agrisage/farm_management_app/internal/core/ports/services"
	"github.com/agrisage/farm_management_app/internal/dto"
	"github.com/agrisage/farm_management_app/internal/utils"
)

// tradeService implements portssvc.TradeSvcFacade: suppliers, customers,
// harvest lots and sales. Recording a sale assigns a sequential invoice
// number, draws down the harvest lot and posts a linked journal entry when
// ledger accounts are supplied.
type tradeService struct {
	BaseService
	supplierRepo portsrepo.SupplierRepositoryFacade
	customerRepo portsrepo.CustomerRepositoryFacade
	harvestRepo  portsrepo.HarvestRepositoryFacade
	saleRepo     portsrepo.SaleRepositoryFacade
	journalRepo  portsrepo.JournalRepositoryFacade
	activityRepo portsrepo.WorkspaceActivityRepositoryFacade
}

var _ portssvc.TradeSvcFacade = (*tradeService)(nil)

// TradeServiceOption configures the trade service.
type TradeServiceOption func(*tradeService)

// WithTradeAuthorizer sets the workspace authorizer for the trade service.
func WithTradeAuthorizer(authorizer portssvc.WorkspaceAuthorizerSvc) TradeServiceOption {
	return func(s *tradeService) {
		s.WorkspaceAuthorizer = authorizer
	}
}

// WithTradeActivityRecorder records supplier/customer/sale mutations to the
// workspace activity feed.
func WithTradeActivityRecorder(activityRepo portsrepo.WorkspaceActivityRepositoryFacade) TradeServiceOption {
	return func(s *tradeService) {
		s.activityRepo = activityRepo
	}
}

// NewTradeService creates a new trade service.
func NewTradeService(supplierRepo portsrepo.SupplierRepositoryFacade, customerRepo portsrepo.CustomerRepositoryFacade, harvestRepo portsrepo.HarvestRepositoryFacade, saleRepo portsrepo.SaleRepositoryFacade, journalRepo portsrepo.JournalRepositoryFacade, opts ...TradeServiceOption) portssvc.TradeSvcFacade {
	svc := &tradeService{
		supplierRepo: supplierRepo,
		customerRepo: customerRepo,
		harvestRepo:  harvestRepo,
		saleRepo:     saleRepo,
		journalRepo:  journalRepo,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// --- Suppliers ---

// CreateSupplier adds a supplier.
func (s *tradeService) CreateSupplier(ctx context.Context, workspaceID string, req dto.CreateSupplierRequest, requestingUserID string) (*domain.Supplier, error) {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureSuppliers); err != nil {
		return nil, err
	}

	supplier := domain.Supplier{
		SupplierID:  utils.NewEntityID("sup"),
		WorkspaceID: workspaceID,
		Name:        req.Name,
		Contact:     req.Contact,
		Phone:       req.Phone,
		Email:       req.Email,
		Notes:       req.Notes,
		AuditFields: s.newAudit(requestingUserID),
	}
	if err := s.supplierRepo.SaveSupplier(ctx, supplier); err != nil {
		s.LogError(ctx, err, "Failed to save supplier", slog.String("workspace_id", workspaceID))
		return nil, err
	}
	s.recordActivity(ctx, workspaceID, requestingUserID, "supplier.created", supplier.Name)
	return &supplier, nil
}

// ListSuppliers retrieves the workspace's suppliers.
func (s *tradeService) ListSuppliers(ctx context.Context, workspaceID, requestingUserID string) ([]domain.Supplier, error) {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureSuppliers); err != nil {
		return nil, err
	}
	return s.supplierRepo.ListSuppliersByWorkspace(ctx, workspaceID)
}

// UpdateSupplier updates supplier fields.
func (s *tradeService) UpdateSupplier(ctx context.Context, workspaceID, supplierID string, req dto.UpdateSupplierRequest, requestingUserID string) (*domain.Supplier, error) {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureSuppliers); err != nil {
		return nil, err
	}
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, workspaceID, supplierID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		supplier.Name = *req.Name
	}
	if req.Contact != nil {
		supplier.Contact = *req.Contact
	}
	if req.Phone != nil {
		supplier.Phone = *req.Phone
	}
	if req.Email != nil {
		supplier.Email = *req.Email
	}
	if req.Notes != nil {
		supplier.Notes = *req.Notes
	}
	supplier.LastUpdatedAt = time.Now().UTC()
	supplier.LastUpdatedBy = requestingUserID

	if err := s.supplierRepo.UpdateSupplier(ctx, *supplier); err != nil {
		s.LogError(ctx, err, "Failed to update supplier", slog.String("supplier_id", supplierID))
		return nil, err
	}
	return supplier, nil
}

// DeleteSupplier removes a supplier.
func (s *tradeService) DeleteSupplier(ctx context.Context, workspaceID, supplierID, requestingUserID string) error {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureSuppliers); err != nil {
		return err
	}
	if err := s.supplierRepo.DeleteSupplier(ctx, workspaceID, supplierID); err != nil {
		return err
	}
	s.recordActivity(ctx, workspaceID, requestingUserID, "supplier.deleted", supplierID)
	return nil
}

// --- Customers ---

// CreateCustomer adds a customer.
func (s *tradeService) CreateCustomer(ctx context.Context, workspaceID string, req dto.CreateCustomerRequest, requestingUserID string) (*domain.Customer, error) {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureHarvestSales); err != nil {
		return nil, err
	}

	customer := domain.Customer{
		CustomerID:  utils.NewEntityID("cust"),
		WorkspaceID: workspaceID,
		Name:        req.Name,
		Contact:     req.Contact,
		Phone:       req.Phone,
		Email:       req.Email,
		AuditFields: s.newAudit(requestingUserID),
	}
	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		s.LogError(ctx, err, "Failed to save customer", slog.String("workspace_id", workspaceID))
		return nil, err
	}
	s.recordActivity(ctx, workspaceID, requestingUserID, "customer.created", customer.Name)
	return &customer, nil
}

// ListCustomers retrieves the workspace's customers.
func (s *tradeService) ListCustomers(ctx context.Context, workspaceID, requestingUserID string) ([]domain.Customer, error) {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureHarvestSales); err != nil {
		return nil, err
	}
	return s.customerRepo.ListCustomersByWorkspace(ctx, workspaceID)
}

// UpdateCustomer updates customer fields.
func (s *tradeService) UpdateCustomer(ctx context.Context, workspaceID, customerID string, req dto.UpdateCustomerRequest, requestingUserID string) (*domain.Customer, error) {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureHarvestSales); err != nil {
		return nil, err
	}
	customer, err := s.customerRepo.FindCustomerByID(ctx, workspaceID, customerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Contact != nil {
		customer.Contact = *req.Contact
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	customer.LastUpdatedAt = time.Now().UTC()
	customer.LastUpdatedBy = requestingUserID

	if err := s.customerRepo.UpdateCustomer(ctx, *customer); err != nil {
		s.LogError(ctx, err, "Failed to update customer", slog.String("customer_id", customerID))
		return nil, err
	}
	return customer, nil
}

// DeleteCustomer removes a customer.
func (s *tradeService) DeleteCustomer(ctx context.Context, workspaceID, customerID, requestingUserID string) error {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureHarvestSales); err != nil {
		return err
	}
	return s.customerRepo.DeleteCustomer(ctx, workspaceID, customerID)
}

// --- Harvests ---

// RecordHarvest registers a harvest lot with its full quantity remaining.
func (s *tradeService) RecordHarvest(ctx context.Context, workspaceID string, req dto.CreateHarvestRequest, requestingUserID string) (*domain.Harvest, error) {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureHarvestSales); err != nil {
		return nil, err
	}
	if !req.Quantity.IsPositive() {
		return nil, apperrors.NewValidationFailedError("harvest quantity must be positive")
	}

	harvest := domain.Harvest{
		HarvestID:         utils.NewEntityID("harvest"),
		WorkspaceID:       workspaceID,
		PlotID:            req.PlotID,
		SeasonID:          req.SeasonID,
		Crop:              req.Crop,
		Quantity:          req.Quantity,
		Unit:              req.Unit,
		HarvestDate:       req.Date,
		QuantityRemaining: req.Quantity,
		AuditFields:       s.newAudit(requestingUserID),
	}
	if err := s.harvestRepo.SaveHarvest(ctx, harvest); err != nil {
		s.LogError(ctx, err, "Failed to save harvest", slog.String("workspace_id", workspaceID))
		return nil, err
	}
	return &harvest, nil
}

// ListHarvests retrieves the workspace's harvest lots.
func (s *tradeService) ListHarvests(ctx context.Context, workspaceID, requestingUserID string) ([]domain.Harvest, error) {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureHarvestSales); err != nil {
		return nil, err
	}
	return s.harvestRepo.ListHarvestsByWorkspace(ctx, workspaceID)
}

// DeleteHarvest removes a harvest lot.
func (s *tradeService) DeleteHarvest(ctx context.Context, workspaceID, harvestID, requestingUserID string) error {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureHarvestSales); err != nil {
		return err
	}
	return s.harvestRepo.DeleteHarvest(ctx, workspaceID, harvestID)
}

// --- Sales ---

// RecordSale records produce sold to a customer: assigns the next invoice
// number, draws down the harvest lot, and posts a balanced journal entry
// (debit receivable, credit revenue) when both ledger accounts are supplied.
func (s *tradeService) RecordSale(ctx context.Context, workspaceID string, req dto.CreateSaleRequest, requestingUserID string) (*domain.Sale, error) {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureHarvestSales); err != nil {
		return nil, err
	}
	if !req.Quantity.IsPositive() {
		return nil, apperrors.NewValidationFailedError("sale quantity must be positive")
	}

	if _, err := s.customerRepo.FindCustomerByID(ctx, workspaceID, req.CustomerID); err != nil {
		return nil, err
	}
	harvest, err := s.harvestRepo.FindHarvestByID(ctx, workspaceID, req.HarvestID)
	if err != nil {
		return nil, err
	}
	if harvest.QuantityRemaining.LessThan(req.Quantity) {
		return nil, apperrors.NewValidationFailedError(
			fmt.Sprintf("only %s %s remaining in harvest lot", harvest.QuantityRemaining.String(), harvest.Unit))
	}

	count, err := s.saleRepo.CountSalesByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	sale := domain.Sale{
		SaleID:        utils.NewEntityID("sale"),
		WorkspaceID:   workspaceID,
		CustomerID:    req.CustomerID,
		HarvestID:     req.HarvestID,
		Quantity:      req.Quantity,
		UnitPrice:     req.UnitPrice,
		SaleDate:      req.Date,
		InvoiceNumber: fmt.Sprintf("INV-%05d", count+1),
		AuditFields:   s.newAudit(requestingUserID),
	}

	if req.RevenueAccountID != "" && req.ReceivableAccountID != "" {
		entry := domain.JournalEntry{
			EntryID:      utils.NewEntityID("je"),
			WorkspaceID:  workspaceID,
			EntryDate:    req.Date,
			Description:  fmt.Sprintf("Sale %s: %s %s of %s", sale.InvoiceNumber, req.Quantity.String(), harvest.Unit, harvest.Crop),
			CurrencyCode: req.Currency,
			Category:     "Sales",
			Lines: []domain.JournalLine{
				{AccountID: req.ReceivableAccountID, LineType: domain.Debit, Amount: sale.Total(), PlotID: harvest.PlotID, SeasonID: harvest.SeasonID},
				{AccountID: req.RevenueAccountID, LineType: domain.Credit, Amount: sale.Total(), PlotID: harvest.PlotID, SeasonID: harvest.SeasonID},
			},
			AuditFields: s.newAudit(requestingUserID),
		}
		if err := s.journalRepo.SaveEntry(ctx, entry); err != nil {
			s.LogError(ctx, err, "Failed to post sale journal entry", slog.String("invoice", sale.InvoiceNumber))
			return nil, err
		}
		sale.JournalEntryID = entry.EntryID
	}

	if err := s.harvestRepo.AdjustRemaining(ctx, workspaceID, req.HarvestID, req.Quantity.Neg()); err != nil {
		s.LogError(ctx, err, "Failed to draw down harvest lot", slog.String("harvest_id", req.HarvestID))
		return nil, err
	}
	if err := s.saleRepo.SaveSale(ctx, sale); err != nil {
		s.LogError(ctx, err, "Failed to save sale", slog.String("invoice", sale.InvoiceNumber))
		return nil, err
	}

	s.LogInfo(ctx, "Sale recorded",
		slog.String("sale_id", sale.SaleID),
		slog.String("invoice", sale.InvoiceNumber),
		slog.String("total", sale.Total().String()))
	s.recordActivity(ctx, workspaceID, requestingUserID, "sale.recorded", sale.InvoiceNumber)
	return &sale, nil
}

// ListSales retrieves the workspace's sales.
func (s *tradeService) ListSales(ctx context.Context, workspaceID, requestingUserID string) ([]domain.Sale, error) {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureHarvestSales); err != nil {
		return nil, err
	}
	return s.saleRepo.ListSalesByWorkspace(ctx, workspaceID)
}

// DeleteSale removes a sale and restores the harvest lot quantity. The
// linked journal entry, if any, is removed with it.
func (s *tradeService) DeleteSale(ctx context.Context, workspaceID, saleID, requestingUserID string) error {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureHarvestSales); err != nil {
		return err
	}
	sale, err := s.saleRepo.FindSaleByID(ctx, workspaceID, saleID)
	if err != nil {
		return err
	}

	if sale.JournalEntryID != "" {
		if err := s.journalRepo.DeleteEntry(ctx, workspaceID, sale.JournalEntryID); err != nil {
			s.LogError(ctx, err, "Failed to delete sale journal entry", slog.String("entry_id", sale.JournalEntryID))
			return err
		}
	}
	if err := s.harvestRepo.AdjustRemaining(ctx, workspaceID, sale.HarvestID, sale.Quantity); err != nil {
		s.LogError(ctx, err, "Failed to restore harvest lot", slog.String("harvest_id", sale.HarvestID))
		return err
	}
	return s.saleRepo.DeleteSale(ctx, workspaceID, saleID)
}

func (s *tradeService) newAudit(userID string) domain.AuditFields {
	now := time.Now().UTC()
	return domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
}

// recordActivity is best-effort; failures are logged and swallowed.
func (s *tradeService) recordActivity(ctx context.Context, workspaceID, actorID, action, details string) {
	if s.activityRepo == nil {
		return
	}
	entry := domain.WorkspaceActivityEntry{
		EntryID:     utils.NewEntityID("act"),
		WorkspaceID: workspaceID,
		Timestamp:   time.Now().UTC(),
		ActorID:     actorID,
		Action:      action,
		Details:     details,
	}
	if err := s.activityRepo.SaveActivityEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to record workspace activity", slog.String("action", action))
	}
}
