package services

import (
	"context"

	"github.com/agrisage/farm_management_app/internal/core/domain"
	"github.com/agrisage/farm_management_app/internal/dto"

	"github.com/shopspring/decimal"
)

// AccountReaderSvc defines read operations for chart-of-accounts data
type AccountReaderSvc interface {
	// GetAccountByID retrieves an account with its derived balance.
	GetAccountByID(ctx context.Context, workspaceID, accountID, requestingUserID string) (*domain.Account, decimal.Decimal, error)

	// ListAccounts retrieves every account in a workspace with balances.
	ListAccounts(ctx context.Context, workspaceID, requestingUserID string) ([]domain.Account, map[string]decimal.Decimal, error)
}

// AccountWriterSvc defines write operations for chart-of-accounts data
type AccountWriterSvc interface {
	// CreateAccount adds an account to the workspace chart.
	CreateAccount(ctx context.Context, workspaceID string, req dto.CreateAccountRequest, requestingUserID string) (*domain.Account, error)

	// ImportAccounts persists a batch of accounts atomically.
	ImportAccounts(ctx context.Context, workspaceID string, req dto.ImportAccountsRequest, requestingUserID string) ([]domain.Account, error)

	// UpdateAccount updates account fields.
	UpdateAccount(ctx context.Context, workspaceID, accountID string, req dto.UpdateAccountRequest, requestingUserID string) (*domain.Account, error)

	// DeleteAccount removes an account, leaving any journal lines that
	// reference it to surface as orphans in diagnostics.
	DeleteAccount(ctx context.Context, workspaceID, accountID, requestingUserID string) error
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}

// JournalReaderSvc defines read operations for journal data
type JournalReaderSvc interface {
	// GetEntryByID retrieves a journal entry.
	GetEntryByID(ctx context.Context, workspaceID, entryID, requestingUserID string) (*domain.JournalEntry, error)

	// ListEntries retrieves every journal entry in a workspace.
	ListEntries(ctx context.Context, workspaceID, requestingUserID string) ([]domain.JournalEntry, error)
}

// JournalWriterSvc defines write operations for journal data
type JournalWriterSvc interface {
	// CreateEntry records a journal entry. Balance is enforced only when the
	// request opts in.
	CreateEntry(ctx context.Context, workspaceID string, req dto.CreateJournalEntryRequest, requestingUserID string) (*domain.JournalEntry, error)

	// ImportEntries persists a batch of entries atomically, never enforcing
	// balance.
	ImportEntries(ctx context.Context, workspaceID string, req dto.ImportJournalEntriesRequest, requestingUserID string) ([]domain.JournalEntry, error)

	// UpdateEntry replaces an entry wholesale, lines included.
	UpdateEntry(ctx context.Context, workspaceID, entryID string, req dto.UpdateJournalEntryRequest, requestingUserID string) (*domain.JournalEntry, error)

	// DeleteEntry removes an entry and its lines.
	DeleteEntry(ctx context.Context, workspaceID, entryID, requestingUserID string) error
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
