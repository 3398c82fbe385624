package dto

import (
	"github.com/agrisage/farm_management_app/internal/core/domain"
)

// Report DTOs wrap the domain report types directly; their shapes are
// already wire-friendly.

// TrialBalanceResponse is the trial balance report plus ledger diagnostics.
type TrialBalanceResponse struct {
	Report      domain.TrialBalanceReport `json:"report"`
	Diagnostics *LedgerDiagnosticsDTO     `json:"diagnostics,omitempty"`
}

// IncomeStatementResponse is the income statement report.
type IncomeStatementResponse struct {
	Report domain.IncomeStatementReport `json:"report"`
}

// BalanceSheetResponse is the balance sheet report.
type BalanceSheetResponse struct {
	Report domain.BalanceSheetReport `json:"report"`
}

// ExpenseByCategoryResponse is the categorized expense report.
type ExpenseByCategoryResponse struct {
	Categories []domain.CategoryTotal `json:"categories"`
}

// ProfitabilityResponse is the per-plot/per-season profitability report.
type ProfitabilityResponse struct {
	Report domain.ProfitabilityReport `json:"report"`
}

// LedgerDiagnosticsDTO surfaces non-fatal ledger findings.
type LedgerDiagnosticsDTO struct {
	Orphans    []domain.OrphanedReference `json:"orphans,omitempty"`
	Unbalanced []domain.EntryImbalance    `json:"unbalanced,omitempty"`
}

// ToLedgerDiagnosticsDTO converts diagnostics to DTO, returning nil when
// there is nothing to report.
func ToLedgerDiagnosticsDTO(diag domain.LedgerDiagnostics) *LedgerDiagnosticsDTO {
	if !diag.HasFindings() {
		return nil
	}
	return &LedgerDiagnosticsDTO{Orphans: diag.Orphans, Unbalanced: diag.Unbalanced}
}
