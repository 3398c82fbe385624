package dto

import (
	"time"

	"github.com/agrisage/farm_management_app/internal/core/domain"

	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines data for creating a ledger account.
type CreateAccountRequest struct {
	Name           string          `json:"name" binding:"required,max=120"`
	Type           string          `json:"type" binding:"required,accounttype"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	Currency       string          `json:"currency" binding:"required,iso4217"`
}

// UpdateAccountRequest defines data for updating a ledger account. Type
// changes are allowed; balances are recomputed from the ledger either way.
type UpdateAccountRequest struct {
	Name           *string          `json:"name,omitempty" binding:"omitempty,max=120"`
	Type           *string          `json:"type,omitempty" binding:"omitempty,accounttype"`
	InitialBalance *decimal.Decimal `json:"initialBalance,omitempty"`
	Currency       *string          `json:"currency,omitempty" binding:"omitempty,iso4217"`
}

// ImportAccountsRequest carries a batch of accounts for bulk import.
type ImportAccountsRequest struct {
	Accounts []CreateAccountRequest `json:"accounts" binding:"required,min=1,dive"`
}

// AccountResponse defines data returned for an account. Balance is derived
// from the journal at read time, never stored.
type AccountResponse struct {
	AccountID      string          `json:"accountID"`
	WorkspaceID    string          `json:"workspaceID"`
	Name           string          `json:"name"`
	Type           string          `json:"type"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	Balance        decimal.Decimal `json:"balance"`
	Currency       string          `json:"currency"`
	CreatedAt      time.Time       `json:"createdAt"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
}

// ToAccountResponse converts domain.Account plus its derived balance to DTO.
func ToAccountResponse(a *domain.Account, balance decimal.Decimal) AccountResponse {
	return AccountResponse{
		AccountID:      a.AccountID,
		WorkspaceID:    a.WorkspaceID,
		Name:           a.Name,
		Type:           string(a.AccountType),
		InitialBalance: a.InitialBalance,
		Balance:        balance,
		Currency:       a.CurrencyCode,
		CreatedAt:      a.CreatedAt,
		LastUpdatedAt:  a.LastUpdatedAt,
	}
}

// ListAccountsResponse wraps accounts with balances.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}
