package dto

import (
	"time"

	"github.com/agrisage/farm_management_app/internal/core/domain"

	"github.com/shopspring/decimal"
)

// JournalLineRequest defines one debit or credit leg of an entry.
type JournalLineRequest struct {
	AccountID string          `json:"accountID" binding:"required"`
	Type      string          `json:"type" binding:"required,oneof=debit credit"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	PlotID    string          `json:"plotID,omitempty"`
	SeasonID  string          `json:"seasonID,omitempty"`
}

// CreateJournalEntryRequest defines data for recording a journal entry.
// ValidateBalance opts into strict double-entry checking; imported ledgers
// routinely carry unbalanced entries, so it defaults to off.
type CreateJournalEntryRequest struct {
	Date            time.Time            `json:"date" binding:"required"`
	Description     string               `json:"description"`
	Currency        string               `json:"currency" binding:"required,iso4217"`
	Category        string               `json:"category,omitempty"`
	Lines           []JournalLineRequest `json:"lines" binding:"required,min=1,dive"`
	ValidateBalance bool                 `json:"validateBalance,omitempty"`
}

// UpdateJournalEntryRequest replaces an entry wholesale, lines included.
type UpdateJournalEntryRequest struct {
	Date        time.Time            `json:"date" binding:"required"`
	Description string               `json:"description"`
	Currency    string               `json:"currency" binding:"required,iso4217"`
	Category    string               `json:"category,omitempty"`
	Lines       []JournalLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// ImportJournalEntriesRequest carries a batch of entries for bulk import.
type ImportJournalEntriesRequest struct {
	Entries []CreateJournalEntryRequest `json:"entries" binding:"required,min=1,dive"`
}

// JournalLineResponse defines one leg of a returned entry.
type JournalLineResponse struct {
	AccountID string          `json:"accountID"`
	Type      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	PlotID    string          `json:"plotID,omitempty"`
	SeasonID  string          `json:"seasonID,omitempty"`
}

// JournalEntryResponse defines data returned for a journal entry.
type JournalEntryResponse struct {
	EntryID     string                `json:"entryID"`
	WorkspaceID string                `json:"workspaceID"`
	Date        time.Time             `json:"date"`
	Description string                `json:"description"`
	Currency    string                `json:"currency"`
	Category    string                `json:"category,omitempty"`
	Lines       []JournalLineResponse `json:"lines"`
	Balanced    bool                  `json:"balanced"`
	CreatedAt   time.Time             `json:"createdAt"`
	CreatedBy   string                `json:"createdBy"`
}

// ToJournalEntryResponse converts domain.JournalEntry to DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	lines := make([]JournalLineResponse, len(e.Lines))
	for i, line := range e.Lines {
		lines[i] = JournalLineResponse{
			AccountID: line.AccountID,
			Type:      string(line.LineType),
			Amount:    line.Amount,
			PlotID:    line.PlotID,
			SeasonID:  line.SeasonID,
		}
	}
	return JournalEntryResponse{
		EntryID:     e.EntryID,
		WorkspaceID: e.WorkspaceID,
		Date:        e.EntryDate,
		Description: e.Description,
		Currency:    e.CurrencyCode,
		Category:    e.Category,
		Lines:       lines,
		Balanced:    e.IsBalanced(),
		CreatedAt:   e.CreatedAt,
		CreatedBy:   e.CreatedBy,
	}
}

// ListJournalEntriesResponse wraps journal entries.
type ListJournalEntriesResponse struct {
	Entries []JournalEntryResponse `json:"entries"`
}

// ToListJournalEntriesResponse converts a slice of entries to DTO.
func ToListJournalEntriesResponse(entries []domain.JournalEntry) ListJournalEntriesResponse {
	list := make([]JournalEntryResponse, len(entries))
	for i, e := range entries {
		list[i] = ToJournalEntryResponse(&e)
	}
	return ListJournalEntriesResponse{Entries: list}
}
