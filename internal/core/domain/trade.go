package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier is an input supplier the farm buys from.
type Supplier struct {
	SupplierID  string `json:"supplierID"` // Primary Key
	WorkspaceID string `json:"workspaceID"`
	Name        string `json:"name"`
	Contact     string `json:"contact"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Notes       string `json:"notes"`
	AuditFields
}

// Customer buys harvested produce.
type Customer struct {
	CustomerID  string `json:"customerID"` // Primary Key
	WorkspaceID string `json:"workspaceID"`
	Name        string `json:"name"`
	Contact     string `json:"contact"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	AuditFields
}

// Harvest is a quantity of crop brought in from a plot during a season.
// QuantityRemaining is drawn down as sales are recorded against it.
type Harvest struct {
	HarvestID         string          `json:"harvestID"` // Primary Key
	WorkspaceID       string          `json:"workspaceID"`
	PlotID            string          `json:"plotId"`
	SeasonID          string          `json:"seasonId"`
	Crop              string          `json:"crop"`
	Quantity          decimal.Decimal `json:"quantity"`
	Unit              string          `json:"unit"`
	HarvestDate       time.Time       `json:"date"`
	QuantityRemaining decimal.Decimal `json:"quantityRemaining"`
	AuditFields
}

// Sale records produce sold to a customer. Recording a sale assigns an
// invoice number, decrements the harvest's remaining quantity and posts a
// linked journal entry (JournalEntryID).
type Sale struct {
	SaleID         string          `json:"saleID"` // Primary Key
	WorkspaceID    string          `json:"workspaceID"`
	CustomerID     string          `json:"customerId"`
	HarvestID      string          `json:"harvestId"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	SaleDate       time.Time       `json:"date"`
	InvoiceNumber  string          `json:"invoiceNumber"`
	JournalEntryID string          `json:"journalEntryId,omitempty"`
	AuditFields
}

// Total is the sale's quantity times unit price.
func (s Sale) Total() decimal.Decimal {
	return s.Quantity.Mul(s.UnitPrice)
}
