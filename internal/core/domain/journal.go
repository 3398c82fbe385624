package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineType indicates whether a journal line is a debit or a credit.
type LineType string

const (
	Debit  LineType = "debit"
	Credit LineType = "credit"
)

// JournalLine is a single line of a journal entry, debiting or crediting one
// account. Lines may optionally be tagged with the plot and season they
// relate to, which feeds the profitability report.
type JournalLine struct {
	AccountID string          `json:"accountId"`
	LineType  LineType        `json:"type"`
	Amount    decimal.Decimal `json:"amount"` // always non-negative
	PlotID    string          `json:"plotId,omitempty"`
	SeasonID  string          `json:"seasonId,omitempty"`
}

// JournalEntry is a double-entry bookkeeping record. A balanced entry has
// equal debit and credit sums, but unbalanced entries are stored as-is:
// the aggregation layer surfaces them as discrepancies instead of rejecting
// historical data.
type JournalEntry struct {
	EntryID      string        `json:"entryID"` // Primary Key
	WorkspaceID  string        `json:"workspaceID"`
	EntryDate    time.Time     `json:"date"`
	Description  string        `json:"description"`
	CurrencyCode string        `json:"currency"`
	Category     string        `json:"category,omitempty"`
	Lines        []JournalLine `json:"lines"`
	AuditFields
}

// DebitTotal sums the entry's debit line amounts.
func (e JournalEntry) DebitTotal() decimal.Decimal {
	total := decimal.Zero
	for _, line := range e.Lines {
		if line.LineType == Debit {
			total = total.Add(line.Amount)
		}
	}
	return total
}

// CreditTotal sums the entry's credit line amounts.
func (e JournalEntry) CreditTotal() decimal.Decimal {
	total := decimal.Zero
	for _, line := range e.Lines {
		if line.LineType == Credit {
			total = total.Add(line.Amount)
		}
	}
	return total
}

// IsBalanced reports whether debit and credit totals are equal.
func (e JournalEntry) IsBalanced() bool {
	return e.DebitTotal().Equal(e.CreditTotal())
}
