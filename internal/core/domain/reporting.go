package domain

import (
	"github.com/shopspring/decimal"
)

// TrialBalanceRow represents a single account row in a trial balance report.
// Debit and Credit are raw line totals with no sign conversion applied.
type TrialBalanceRow struct {
	AccountID   string          `json:"accountID"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalanceReport lists every account's raw debit and credit totals.
// For a ledger of balanced entries TotalDebit equals TotalCredit.
type TrialBalanceReport struct {
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
}

// AccountAmount pairs an account with a computed net amount.
type AccountAmount struct {
	AccountID string          `json:"accountID"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
}

// IncomeStatementReport nets income against expenses for a period.
type IncomeStatementReport struct {
	Income        []AccountAmount `json:"income"`
	Expenses      []AccountAmount `json:"expenses"`
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetIncome     decimal.Decimal `json:"netIncome"`
}

// BalanceSheetReport groups account balances by Asset vs Liability+Equity.
// For a ledger of balanced entries TotalAssets equals TotalLiabilities plus
// TotalEquity.
type BalanceSheetReport struct {
	Assets           []AccountAmount `json:"assets"`
	Liabilities      []AccountAmount `json:"liabilities"`
	Equity           []AccountAmount `json:"equity"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`
}

// CategoryTotal is one bucket of the expense-by-category report.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// ProfitabilityReport nets income against expenses for journal lines tagged
// with a particular plot and/or season.
type ProfitabilityReport struct {
	PlotID   string          `json:"plotId,omitempty"`
	SeasonID string          `json:"seasonId,omitempty"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Net      decimal.Decimal `json:"net"`
}

// OrphanedReference flags a journal line referencing an account that no
// longer exists. The line is excluded from report totals.
type OrphanedReference struct {
	EntryID   string `json:"entryID"`
	AccountID string `json:"accountID"`
}

// EntryImbalance flags a journal entry whose debit and credit totals differ.
// Residual is debits minus credits (the suspense amount).
type EntryImbalance struct {
	EntryID  string          `json:"entryID"`
	Residual decimal.Decimal `json:"residual"`
}

// LedgerDiagnostics collects non-fatal data-quality findings discovered
// while aggregating. Reports always render; these are advisory.
type LedgerDiagnostics struct {
	Orphans    []OrphanedReference `json:"orphans,omitempty"`
	Unbalanced []EntryImbalance    `json:"unbalanced,omitempty"`
}

// HasFindings reports whether any discrepancy was detected.
func (d LedgerDiagnostics) HasFindings() bool {
	return len(d.Orphans) > 0 || len(d.Unbalanced) > 0
}
