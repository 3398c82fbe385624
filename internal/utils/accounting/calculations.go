// Package accounting derives financial reports from in-memory account and
// journal collections. Every function is pure: reports are computed from the
// snapshot passed in, with no caching between calls. Lines referencing
// deleted accounts are skipped, and unbalanced entries are reflected as-is;
// Diagnose surfaces both as non-fatal findings.
package accounting

import (
	"fmt"
	"time"

	"github.com/agrisage/farm_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UncategorizedBucket is the expense-report bucket for entries without a
// category.
const UncategorizedBucket = "Uncategorized"

// SignedAmount applies the correct sign to a line amount based on account
// type and line type.
//
// DEBIT to ASSET/EXPENSE -> Positive (+)
// CREDIT to ASSET/EXPENSE -> Negative (-)
// DEBIT to LIABILITY/EQUITY/INCOME -> Negative (-)
// CREDIT to LIABILITY/EQUITY/INCOME -> Positive (+)
func SignedAmount(line domain.JournalLine, accountType domain.AccountType) (decimal.Decimal, error) {
	if !domain.IsValidAccountType(accountType) {
		return decimal.Zero, fmt.Errorf("unknown account type '%s' encountered for account ID %s", accountType, line.AccountID)
	}
	isDebit := line.LineType == domain.Debit
	if accountType.IsDebitNormal() == isDebit {
		return line.Amount, nil
	}
	return line.Amount.Neg(), nil
}

// AccountBalance computes an account's balance: initial balance plus the
// signed sum of every line referencing it.
func AccountBalance(account domain.Account, entries []domain.JournalEntry) decimal.Decimal {
	balance := account.InitialBalance
	for _, entry := range entries {
		for _, line := range entry.Lines {
			if line.AccountID != account.AccountID {
				continue
			}
			signed, err := SignedAmount(line, account.AccountType)
			if err != nil {
				continue
			}
			balance = balance.Add(signed)
		}
	}
	return balance
}

// TrialBalance sums raw debit and credit amounts per account, with no sign
// conversion. When every entry is balanced, TotalDebit equals TotalCredit —
// the defining correctness property of the ledger. Lines referencing
// unknown accounts are excluded.
func TrialBalance(accounts []domain.Account, entries []domain.JournalEntry) domain.TrialBalanceReport {
	index := indexAccounts(accounts)
	debits := make(map[string]decimal.Decimal, len(accounts))
	credits := make(map[string]decimal.Decimal, len(accounts))

	for _, entry := range entries {
		for _, line := range entry.Lines {
			if _, known := index[line.AccountID]; !known {
				continue
			}
			if line.LineType == domain.Debit {
				debits[line.AccountID] = debits[line.AccountID].Add(line.Amount)
			} else {
				credits[line.AccountID] = credits[line.AccountID].Add(line.Amount)
			}
		}
	}

	report := domain.TrialBalanceReport{
		Rows:        make([]domain.TrialBalanceRow, 0, len(accounts)),
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}
	for _, account := range accounts {
		row := domain.TrialBalanceRow{
			AccountID:   account.AccountID,
			AccountName: account.Name,
			AccountType: account.AccountType,
			Debit:       debits[account.AccountID],
			Credit:      credits[account.AccountID],
		}
		report.Rows = append(report.Rows, row)
		report.TotalDebit = report.TotalDebit.Add(row.Debit)
		report.TotalCredit = report.TotalCredit.Add(row.Credit)
	}
	return report
}

// IncomeStatement computes income and expense account balances, optionally
// restricted to entries within [from, to], and nets them.
func IncomeStatement(accounts []domain.Account, entries []domain.JournalEntry, from, to *time.Time) domain.IncomeStatementReport {
	inRange := filterByDateRange(entries, from, to)

	report := domain.IncomeStatementReport{
		Income:        []domain.AccountAmount{},
		Expenses:      []domain.AccountAmount{},
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
	}
	for _, account := range accounts {
		switch account.AccountType {
		case domain.Income:
			amount := AccountBalance(account, inRange)
			report.Income = append(report.Income, accountAmount(account, amount))
			report.TotalIncome = report.TotalIncome.Add(amount)
		case domain.Expense:
			amount := AccountBalance(account, inRange)
			report.Expenses = append(report.Expenses, accountAmount(account, amount))
			report.TotalExpenses = report.TotalExpenses.Add(amount)
		}
	}
	report.NetIncome = report.TotalIncome.Sub(report.TotalExpenses)
	return report
}

// BalanceSheet groups account balances as of asOf (inclusive; nil means all
// entries) into assets, liabilities and equity. When every entry is
// balanced and income/expense activity nets to zero equity impact,
// TotalAssets equals TotalLiabilities plus TotalEquity.
func BalanceSheet(accounts []domain.Account, entries []domain.JournalEntry, asOf *time.Time) domain.BalanceSheetReport {
	inRange := filterByDateRange(entries, nil, asOf)

	report := domain.BalanceSheetReport{
		Assets:           []domain.AccountAmount{},
		Liabilities:      []domain.AccountAmount{},
		Equity:           []domain.AccountAmount{},
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
		TotalEquity:      decimal.Zero,
	}
	// Net income to date rolls into equity so the sheet balances without a
	// closing entry.
	retainedEarnings := decimal.Zero

	for _, account := range accounts {
		switch account.AccountType {
		case domain.Asset:
			amount := AccountBalance(account, inRange)
			report.Assets = append(report.Assets, accountAmount(account, amount))
			report.TotalAssets = report.TotalAssets.Add(amount)
		case domain.Liability:
			amount := AccountBalance(account, inRange)
			report.Liabilities = append(report.Liabilities, accountAmount(account, amount))
			report.TotalLiabilities = report.TotalLiabilities.Add(amount)
		case domain.Equity:
			amount := AccountBalance(account, inRange)
			report.Equity = append(report.Equity, accountAmount(account, amount))
			report.TotalEquity = report.TotalEquity.Add(amount)
		case domain.Income:
			retainedEarnings = retainedEarnings.Add(AccountBalance(account, inRange))
		case domain.Expense:
			retainedEarnings = retainedEarnings.Sub(AccountBalance(account, inRange))
		}
	}

	if !retainedEarnings.IsZero() {
		report.Equity = append(report.Equity, domain.AccountAmount{
			AccountID: "",
			Name:      "Retained Earnings",
			Amount:    retainedEarnings,
		})
		report.TotalEquity = report.TotalEquity.Add(retainedEarnings)
	}
	return report
}

// ExpenseByCategory sums debit amounts on Expense-type accounts grouped by
// the owning entry's category, falling back to the Uncategorized bucket.
// Buckets are returned in first-seen entry order for determinism.
func ExpenseByCategory(accounts []domain.Account, entries []domain.JournalEntry) []domain.CategoryTotal {
	index := indexAccounts(accounts)
	totals := make(map[string]decimal.Decimal)
	order := make([]string, 0)

	for _, entry := range entries {
		category := entry.Category
		if category == "" {
			category = UncategorizedBucket
		}
		for _, line := range entry.Lines {
			account, known := index[line.AccountID]
			if !known || account.AccountType != domain.Expense || line.LineType != domain.Debit {
				continue
			}
			if _, seen := totals[category]; !seen {
				order = append(order, category)
			}
			totals[category] = totals[category].Add(line.Amount)
		}
	}

	result := make([]domain.CategoryTotal, 0, len(order))
	for _, category := range order {
		result = append(result, domain.CategoryTotal{Category: category, Total: totals[category]})
	}
	return result
}

// Profitability nets income against expenses for journal lines tagged with
// the given plot and/or season. Empty plotID/seasonID match any line.
func Profitability(accounts []domain.Account, entries []domain.JournalEntry, plotID, seasonID string) domain.ProfitabilityReport {
	index := indexAccounts(accounts)
	report := domain.ProfitabilityReport{
		PlotID:   plotID,
		SeasonID: seasonID,
		Income:   decimal.Zero,
		Expenses: decimal.Zero,
	}

	for _, entry := range entries {
		for _, line := range entry.Lines {
			if plotID != "" && line.PlotID != plotID {
				continue
			}
			if seasonID != "" && line.SeasonID != seasonID {
				continue
			}
			account, known := index[line.AccountID]
			if !known {
				continue
			}
			signed, err := SignedAmount(line, account.AccountType)
			if err != nil {
				continue
			}
			switch account.AccountType {
			case domain.Income:
				report.Income = report.Income.Add(signed)
			case domain.Expense:
				report.Expenses = report.Expenses.Add(signed)
			}
		}
	}
	report.Net = report.Income.Sub(report.Expenses)
	return report
}

// Diagnose scans the ledger for data-quality issues: lines referencing
// deleted accounts, and entries whose debits and credits differ. Neither is
// fatal; reports render regardless and callers may attach these findings.
func Diagnose(accounts []domain.Account, entries []domain.JournalEntry) domain.LedgerDiagnostics {
	index := indexAccounts(accounts)
	diag := domain.LedgerDiagnostics{}

	for _, entry := range entries {
		for _, line := range entry.Lines {
			if _, known := index[line.AccountID]; !known {
				diag.Orphans = append(diag.Orphans, domain.OrphanedReference{
					EntryID:   entry.EntryID,
					AccountID: line.AccountID,
				})
			}
		}
		if residual := entry.DebitTotal().Sub(entry.CreditTotal()); !residual.IsZero() {
			diag.Unbalanced = append(diag.Unbalanced, domain.EntryImbalance{
				EntryID:  entry.EntryID,
				Residual: residual,
			})
		}
	}
	return diag
}

func indexAccounts(accounts []domain.Account) map[string]domain.Account {
	index := make(map[string]domain.Account, len(accounts))
	for _, account := range accounts {
		index[account.AccountID] = account
	}
	return index
}

func accountAmount(account domain.Account, amount decimal.Decimal) domain.AccountAmount {
	return domain.AccountAmount{
		AccountID: account.AccountID,
		Name:      account.Name,
		Amount:    amount,
	}
}

func filterByDateRange(entries []domain.JournalEntry, from, to *time.Time) []domain.JournalEntry {
	if from == nil && to == nil {
		return entries
	}
	filtered := make([]domain.JournalEntry, 0, len(entries))
	for _, entry := range entries {
		if from != nil && entry.EntryDate.Before(*from) {
			continue
		}
		if to != nil && entry.EntryDate.After(*to) {
			continue
		}
		filtered = append(filtered, entry)
	}
	return filtered
}
