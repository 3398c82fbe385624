package services

import (
	"context"
	"time"

	"github.com/agrisage/farm_management_app/internal/core/domain"
	portsrepo "github.com/agrisage/farm_management_app/internal/core/ports/repositories"
	portssvc "github.com/agrisage/farm_management_app/internal/core/ports/services"
	"github.com/agrisage/farm_management_app/internal/utils/accounting"
)

// reportingService implements portssvc.ReportingSvcFacade. Every report is
// computed on demand from the workspace's full account and entry sets.
type reportingService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	journalRepo portsrepo.JournalRepositoryFacade
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// ReportingServiceOption configures the reporting service.
type ReportingServiceOption func(*reportingService)

// WithReportingAuthorizer sets the workspace authorizer for the reporting service.
func WithReportingAuthorizer(authorizer portssvc.WorkspaceAuthorizerSvc) ReportingServiceOption {
	return func(s *reportingService) {
		s.WorkspaceAuthorizer = authorizer
	}
}

// NewReportingService creates a new reporting service.
func NewReportingService(accountRepo portsrepo.AccountRepositoryFacade, journalRepo portsrepo.JournalRepositoryFacade, opts ...ReportingServiceOption) portssvc.ReportingSvcFacade {
	svc := &reportingService{
		accountRepo: accountRepo,
		journalRepo: journalRepo,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// TrialBalance returns per-account debit/credit totals plus diagnostics.
func (s *reportingService) TrialBalance(ctx context.Context, workspaceID, requestingUserID string) (*domain.TrialBalanceReport, *domain.LedgerDiagnostics, error) {
	accounts, entries, err := s.loadLedger(ctx, workspaceID, requestingUserID)
	if err != nil {
		return nil, nil, err
	}
	report := accounting.TrialBalance(accounts, entries)
	diag := accounting.Diagnose(accounts, entries)
	return &report, &diag, nil
}

// IncomeStatement nets income against expenses within the optional range.
func (s *reportingService) IncomeStatement(ctx context.Context, workspaceID, requestingUserID string, from, to *time.Time) (*domain.IncomeStatementReport, error) {
	accounts, entries, err := s.loadLedger(ctx, workspaceID, requestingUserID)
	if err != nil {
		return nil, err
	}
	report := accounting.IncomeStatement(accounts, entries, from, to)
	return &report, nil
}

// BalanceSheet groups balances as of the optional date.
func (s *reportingService) BalanceSheet(ctx context.Context, workspaceID, requestingUserID string, asOf *time.Time) (*domain.BalanceSheetReport, error) {
	accounts, entries, err := s.loadLedger(ctx, workspaceID, requestingUserID)
	if err != nil {
		return nil, err
	}
	report := accounting.BalanceSheet(accounts, entries, asOf)
	return &report, nil
}

// ExpenseByCategory sums expense debits grouped by entry category.
func (s *reportingService) ExpenseByCategory(ctx context.Context, workspaceID, requestingUserID string) ([]domain.CategoryTotal, error) {
	accounts, entries, err := s.loadLedger(ctx, workspaceID, requestingUserID)
	if err != nil {
		return nil, err
	}
	return accounting.ExpenseByCategory(accounts, entries), nil
}

// Profitability nets tagged income against expenses for a plot and/or season.
func (s *reportingService) Profitability(ctx context.Context, workspaceID, requestingUserID, plotID, seasonID string) (*domain.ProfitabilityReport, error) {
	accounts, entries, err := s.loadLedger(ctx, workspaceID, requestingUserID)
	if err != nil {
		return nil, err
	}
	report := accounting.Profitability(accounts, entries, plotID, seasonID)
	return &report, nil
}

func (s *reportingService) loadLedger(ctx context.Context, workspaceID, requestingUserID string) ([]domain.Account, []domain.JournalEntry, error) {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureFinancials); err != nil {
		return nil, nil, err
	}
	accounts, err := s.accountRepo.ListAccountsByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, nil, err
	}
	entries, err := s.journalRepo.ListEntriesByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, nil, err
	}
	return accounts, entries, nil
}
