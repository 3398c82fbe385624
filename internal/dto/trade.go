package dto

import (
	"time"

	"github.com/agrisage/farm_management_app/internal/core/domain"

	"github.com/shopspring/decimal"
)

// --- Supplier DTOs ---

// CreateSupplierRequest defines data for adding a supplier.
type CreateSupplierRequest struct {
	Name    string `json:"name" binding:"required,max=120"`
	Contact string `json:"contact,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty" binding:"omitempty,email"`
	Notes   string `json:"notes,omitempty"`
}

// UpdateSupplierRequest defines data for updating a supplier.
type UpdateSupplierRequest struct {
	Name    *string `json:"name,omitempty" binding:"omitempty,max=120"`
	Contact *string `json:"contact,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty" binding:"omitempty,email"`
	Notes   *string `json:"notes,omitempty"`
}

// SupplierResponse defines data returned for a supplier.
type SupplierResponse struct {
	SupplierID  string `json:"supplierID"`
	WorkspaceID string `json:"workspaceID"`
	Name        string `json:"name"`
	Contact     string `json:"contact,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// ToSupplierResponse converts domain.Supplier to DTO.
func ToSupplierResponse(s *domain.Supplier) SupplierResponse {
	return SupplierResponse{
		SupplierID:  s.SupplierID,
		WorkspaceID: s.WorkspaceID,
		Name:        s.Name,
		Contact:     s.Contact,
		Phone:       s.Phone,
		Email:       s.Email,
		Notes:       s.Notes,
	}
}

// --- Customer DTOs ---

// CreateCustomerRequest defines data for adding a customer.
type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required,max=120"`
	Contact string `json:"contact,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty" binding:"omitempty,email"`
}

// UpdateCustomerRequest defines data for updating a customer.
type UpdateCustomerRequest struct {
	Name    *string `json:"name,omitempty" binding:"omitempty,max=120"`
	Contact *string `json:"contact,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty" binding:"omitempty,email"`
}

// CustomerResponse defines data returned for a customer.
type CustomerResponse struct {
	CustomerID  string `json:"customerID"`
	WorkspaceID string `json:"workspaceID"`
	Name        string `json:"name"`
	Contact     string `json:"contact,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
}

// ToCustomerResponse converts domain.Customer to DTO.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID:  c.CustomerID,
		WorkspaceID: c.WorkspaceID,
		Name:        c.Name,
		Contact:     c.Contact,
		Phone:       c.Phone,
		Email:       c.Email,
	}
}

// --- Harvest DTOs ---

// CreateHarvestRequest records a harvest lot brought in from a plot.
type CreateHarvestRequest struct {
	PlotID   string          `json:"plotID" binding:"required"`
	SeasonID string          `json:"seasonID" binding:"required"`
	Crop     string          `json:"crop" binding:"required,max=120"`
	Quantity decimal.Decimal `json:"quantity" binding:"required"`
	Unit     string          `json:"unit,omitempty"`
	Date     time.Time       `json:"date" binding:"required"`
}

// HarvestResponse defines data returned for a harvest lot.
type HarvestResponse struct {
	HarvestID         string          `json:"harvestID"`
	WorkspaceID       string          `json:"workspaceID"`
	PlotID            string          `json:"plotID"`
	SeasonID          string          `json:"seasonID"`
	Crop              string          `json:"crop"`
	Quantity          decimal.Decimal `json:"quantity"`
	Unit              string          `json:"unit,omitempty"`
	Date              time.Time       `json:"date"`
	QuantityRemaining decimal.Decimal `json:"quantityRemaining"`
}

// ToHarvestResponse converts domain.Harvest to DTO.
func ToHarvestResponse(h *domain.Harvest) HarvestResponse {
	return HarvestResponse{
		HarvestID:         h.HarvestID,
		WorkspaceID:       h.WorkspaceID,
		PlotID:            h.PlotID,
		SeasonID:          h.SeasonID,
		Crop:              h.Crop,
		Quantity:          h.Quantity,
		Unit:              h.Unit,
		Date:              h.HarvestDate,
		QuantityRemaining: h.QuantityRemaining,
	}
}

// --- Sale DTOs ---

// CreateSaleRequest records produce sold to a customer. RevenueAccountID and
// ReceivableAccountID name the ledger accounts the linked journal entry
// posts to; when either is empty no entry is posted.
type CreateSaleRequest struct {
	CustomerID          string          `json:"customerID" binding:"required"`
	HarvestID           string          `json:"harvestID" binding:"required"`
	Quantity            decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice           decimal.Decimal `json:"unitPrice" binding:"required"`
	Date                time.Time       `json:"date" binding:"required"`
	Currency            string          `json:"currency" binding:"required,iso4217"`
	RevenueAccountID    string          `json:"revenueAccountID,omitempty"`
	ReceivableAccountID string          `json:"receivableAccountID,omitempty"`
}

// SaleResponse defines data returned for a sale.
type SaleResponse struct {
	SaleID         string          `json:"saleID"`
	WorkspaceID    string          `json:"workspaceID"`
	CustomerID     string          `json:"customerID"`
	HarvestID      string          `json:"harvestID"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	Total          decimal.Decimal `json:"total"`
	Date           time.Time       `json:"date"`
	InvoiceNumber  string          `json:"invoiceNumber"`
	JournalEntryID string          `json:"journalEntryID,omitempty"`
}

// ToSaleResponse converts domain.Sale to DTO.
func ToSaleResponse(s *domain.Sale) SaleResponse {
	return SaleResponse{
		SaleID:         s.SaleID,
		WorkspaceID:    s.WorkspaceID,
		CustomerID:     s.CustomerID,
		HarvestID:      s.HarvestID,
		Quantity:       s.Quantity,
		UnitPrice:      s.UnitPrice,
		Total:          s.Total(),
		Date:           s.SaleDate,
		InvoiceNumber:  s.InvoiceNumber,
		JournalEntryID: s.JournalEntryID,
	}
}
