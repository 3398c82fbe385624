package repositories

import (
	"context"

	"github.com/agrisage/farm_management_app/internal/core/domain"
)

// AccountReader defines read operations for chart-of-accounts data
type AccountReader interface {
	FindAccountByID(ctx context.Context, workspaceID, accountID string) (*domain.Account, error)
	ListAccountsByWorkspace(ctx context.Context, workspaceID string) ([]domain.Account, error)
}

// AccountWriter defines write operations for chart-of-accounts data
type AccountWriter interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	// SaveAccounts persists a batch atomically; used by bulk import.
	SaveAccounts(ctx context.Context, accounts []domain.Account) error
	UpdateAccount(ctx context.Context, account domain.Account) error
	// DeleteAccount removes the account row only. Journal lines referencing
	// it are left in place and surface as orphans in diagnostics.
	DeleteAccount(ctx context.Context, workspaceID, accountID string) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}

// JournalReader defines read operations for journal entries
type JournalReader interface {
	FindEntryByID(ctx context.Context, workspaceID, entryID string) (*domain.JournalEntry, error)
	ListEntriesByWorkspace(ctx context.Context, workspaceID string) ([]domain.JournalEntry, error)
}

// JournalWriter defines write operations for journal entries
type JournalWriter interface {
	SaveEntry(ctx context.Context, entry domain.JournalEntry) error
	SaveEntries(ctx context.Context, entries []domain.JournalEntry) error
	// UpdateEntry replaces the entry and its full line set.
	UpdateEntry(ctx context.Context, entry domain.JournalEntry) error
	DeleteEntry(ctx context.Context, workspaceID, entryID string) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
