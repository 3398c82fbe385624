package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/agrisage/farm_management_app/internal/core/domain"
	portsrepo "github.com/agrisage/farm_management_app/internal/core/ports/repositories"
	portssvc "github.com/agrisage/farm_management_app/internal/core/ports/services"
	"github.com/agrisage/farm_management_app/internal/dto"
	"github.com/agrisage/farm_management_app/internal/utils"
	"github.com/agrisage/farm_management_app/internal/utils/accounting"

	"github.com/shopspring/decimal"
)

// accountService implements portssvc.AccountSvcFacade. Balances are always
// derived from the journal, never stored.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	journalRepo portsrepo.JournalRepositoryFacade
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// AccountServiceOption configures the account service.
type AccountServiceOption func(*accountService)

// WithAccountAuthorizer sets the workspace authorizer for the account service.
func WithAccountAuthorizer(authorizer portssvc.WorkspaceAuthorizerSvc) AccountServiceOption {
	return func(s *accountService) {
		s.WorkspaceAuthorizer = authorizer
	}
}

// NewAccountService creates a new account service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, journalRepo portsrepo.JournalRepositoryFacade, opts ...AccountServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo: accountRepo,
		journalRepo: journalRepo,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// CreateAccount adds an account to the workspace chart.
func (s *accountService) CreateAccount(ctx context.Context, workspaceID string, req dto.CreateAccountRequest, requestingUserID string) (*domain.Account, error) {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureFinancials); err != nil {
		return nil, err
	}

	account := s.accountFromRequest(workspaceID, req, requestingUserID)
	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("workspace_id", workspaceID))
		return nil, err
	}
	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID), slog.String("workspace_id", workspaceID))
	return &account, nil
}

// ImportAccounts persists a batch of accounts atomically.
func (s *accountService) ImportAccounts(ctx context.Context, workspaceID string, req dto.ImportAccountsRequest, requestingUserID string) ([]domain.Account, error) {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureFinancials); err != nil {
		return nil, err
	}

	accounts := make([]domain.Account, len(req.Accounts))
	for i, accountReq := range req.Accounts {
		accounts[i] = s.accountFromRequest(workspaceID, accountReq, requestingUserID)
	}
	if err := s.accountRepo.SaveAccounts(ctx, accounts); err != nil {
		s.LogError(ctx, err, "Failed to import accounts", slog.String("workspace_id", workspaceID), slog.Int("count", len(accounts)))
		return nil, err
	}
	s.LogInfo(ctx, "Accounts imported", slog.String("workspace_id", workspaceID), slog.Int("count", len(accounts)))
	return accounts, nil
}

// GetAccountByID retrieves an account with its derived balance.
func (s *accountService) GetAccountByID(ctx context.Context, workspaceID, accountID, requestingUserID string) (*domain.Account, decimal.Decimal, error) {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureFinancials); err != nil {
		return nil, decimal.Zero, err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, workspaceID, accountID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	entries, err := s.journalRepo.ListEntriesByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	return account, accounting.AccountBalance(*account, entries), nil
}

// ListAccounts retrieves every account in a workspace with balances keyed by
// account ID.
func (s *accountService) ListAccounts(ctx context.Context, workspaceID, requestingUserID string) ([]domain.Account, map[string]decimal.Decimal, error) {
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

	balances := make(map[string]decimal.Decimal, len(accounts))
	for _, account := range accounts {
		balances[account.AccountID] = accounting.AccountBalance(account, entries)
	}
	return accounts, balances, nil
}

// UpdateAccount updates account fields.
func (s *accountService) UpdateAccount(ctx context.Context, workspaceID, accountID string, req dto.UpdateAccountRequest, requestingUserID string) (*domain.Account, error) {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureFinancials); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, workspaceID, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.Type != nil {
		account.AccountType = domain.AccountType(*req.Type)
	}
	if req.InitialBalance != nil {
		account.InitialBalance = *req.InitialBalance
	}
	if req.Currency != nil {
		account.CurrencyCode = *req.Currency
	}
	account.LastUpdatedAt = time.Now().UTC()
	account.LastUpdatedBy = requestingUserID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, err
	}
	return account, nil
}

// DeleteAccount removes an account. Journal lines referencing it are kept
// and surface as orphans in reporting diagnostics.
func (s *accountService) DeleteAccount(ctx context.Context, workspaceID, accountID, requestingUserID string) error {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureFinancials); err != nil {
		return err
	}
	if err := s.accountRepo.DeleteAccount(ctx, workspaceID, accountID); err != nil {
		s.LogError(ctx, err, "Failed to delete account", slog.String("account_id", accountID))
		return err
	}
	s.LogInfo(ctx, "Account deleted", slog.String("account_id", accountID), slog.String("workspace_id", workspaceID))
	return nil
}

func (s *accountService) accountFromRequest(workspaceID string, req dto.CreateAccountRequest, requestingUserID string) domain.Account {
	now := time.Now().UTC()
	return domain.Account{
		AccountID:      utils.NewEntityID("acc"),
		WorkspaceID:    workspaceID,
		Name:           req.Name,
		AccountType:    domain.AccountType(req.Type),
		InitialBalance: req.InitialBalance,
		CurrencyCode:   req.Currency,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}
}
