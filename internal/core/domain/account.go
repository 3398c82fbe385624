package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "Asset"
	Liability AccountType = "Liability"
	Equity    AccountType = "Equity"
	Income    AccountType = "Income"
	Expense   AccountType = "Expense"
)

// IsValidAccountType reports whether t is one of the five account types.
func IsValidAccountType(t AccountType) bool {
	switch t {
	case Asset, Liability, Equity, Income, Expense:
		return true
	}
	return false
}

// IsDebitNormal reports whether balances of this account type grow with
// debits. Asset and Expense accounts are debit-normal; Liability, Equity and
// Income balances grow with credits.
func (t AccountType) IsDebitNormal() bool {
	return t == Asset || t == Expense
}

// Account represents a financial account within one workspace's ledger.
// The account type is assumed stable after creation: reports group by it.
type Account struct {
	AccountID      string          `json:"accountID"` // Primary Key
	WorkspaceID    string          `json:"workspaceID"`
	Name           string          `json:"name"`
	AccountType    AccountType     `json:"type"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	CurrencyCode   string          `json:"currency"`
	AuditFields
}
