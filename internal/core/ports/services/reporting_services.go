package services

import (
	"context"
	"time"

	"github.com/agrisage/farm_management_app/internal/core/domain"
)

// ReportingSvcFacade derives financial reports from a workspace's ledger.
// All reports are computed on demand from the full account and entry sets.
type ReportingSvcFacade interface {
	// TrialBalance returns per-account debit/credit totals plus diagnostics.
	TrialBalance(ctx context.Context, workspaceID, requestingUserID string) (*domain.TrialBalanceReport, *domain.LedgerDiagnostics, error)

	// IncomeStatement nets income against expenses for entries within the
	// optional [from, to] range.
	IncomeStatement(ctx context.Context, workspaceID, requestingUserID string, from, to *time.Time) (*domain.IncomeStatementReport, error)

	// BalanceSheet groups balances as of the optional date, rolling net
	// income into equity.
	BalanceSheet(ctx context.Context, workspaceID, requestingUserID string, asOf *time.Time) (*domain.BalanceSheetReport, error)

	// ExpenseByCategory sums expense debits grouped by entry category.
	ExpenseByCategory(ctx context.Context, workspaceID, requestingUserID string) ([]domain.CategoryTotal, error)

	// Profitability nets tagged income against expenses for a plot and/or
	// season.
	Profitability(ctx context.Context, workspaceID, requestingUserID, plotID, seasonID string) (*domain.ProfitabilityReport, error)
}
