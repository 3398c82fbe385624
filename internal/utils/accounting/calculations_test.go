package accounting_test

import (
	"testing"
	"time"

	"github.com/agrisage/farm_management_app/internal/core/domain"
	"github.com/agrisage/farm_management_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func account(id, name string, accountType domain.AccountType, initial int64) domain.Account {
	return domain.Account{
		AccountID:      id,
		WorkspaceID:    "ws_test",
		Name:           name,
		AccountType:    accountType,
		InitialBalance: dec(initial),
		CurrencyCode:   "USD",
	}
}

func entry(id string, lines ...domain.JournalLine) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:     id,
		WorkspaceID: "ws_test",
		EntryDate:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Lines:       lines,
	}
}

func debit(accountID string, amount int64) domain.JournalLine {
	return domain.JournalLine{AccountID: accountID, LineType: domain.Debit, Amount: dec(amount)}
}

func credit(accountID string, amount int64) domain.JournalLine {
	return domain.JournalLine{AccountID: accountID, LineType: domain.Credit, Amount: dec(amount)}
}

// The worked example: Cash (Asset, initial 1000) and Crop Sales (Income,
// initial 0), one entry debiting Cash 500 and crediting Crop Sales 500.
func TestAccountBalance_SignConventions(t *testing.T) {
	cash := account("acc_cash", "Cash", domain.Asset, 1000)
	sales := account("acc_sales", "Crop Sales", domain.Income, 0)
	entries := []domain.JournalEntry{
		entry("je_1", debit("acc_cash", 500), credit("acc_sales", 500)),
	}

	assert.True(t, accounting.AccountBalance(cash, entries).Equal(dec(1500)))
	assert.True(t, accounting.AccountBalance(sales, entries).Equal(dec(500)))

	report := accounting.IncomeStatement([]domain.Account{cash, sales}, entries, nil, nil)
	assert.True(t, report.NetIncome.Equal(dec(500)))

	tb := accounting.TrialBalance([]domain.Account{cash, sales}, entries)
	assert.True(t, tb.TotalDebit.Equal(dec(500)))
	assert.True(t, tb.TotalCredit.Equal(dec(500)))
}

func TestAccountBalance_CreditNormalTypes(t *testing.T) {
	loan := account("acc_loan", "Equipment Loan", domain.Liability, 2000)
	entries := []domain.JournalEntry{
		entry("je_1", debit("acc_loan", 300), credit("acc_cash", 300)),
		entry("je_2", debit("acc_cash", 500), credit("acc_loan", 500)),
	}

	// Liability: initial + credits - debits = 2000 - 300 + 500.
	assert.True(t, accounting.AccountBalance(loan, entries).Equal(dec(2200)))
}

func TestTrialBalance_TotalsMatchForBalancedEntries(t *testing.T) {
	accounts := []domain.Account{
		account("acc_cash", "Cash", domain.Asset, 0),
		account("acc_seed", "Seed Expense", domain.Expense, 0),
		account("acc_sales", "Crop Sales", domain.Income, 0),
		account("acc_loan", "Loan", domain.Liability, 0),
	}
	entries := []domain.JournalEntry{
		entry("je_1", debit("acc_cash", 1200), credit("acc_sales", 1200)),
		entry("je_2", debit("acc_seed", 340), credit("acc_cash", 340)),
		entry("je_3", debit("acc_cash", 5000), credit("acc_loan", 5000)),
	}

	tb := accounting.TrialBalance(accounts, entries)

	require.Len(t, tb.Rows, 4)
	assert.True(t, tb.TotalDebit.Equal(tb.TotalCredit), "debit total %s != credit total %s", tb.TotalDebit, tb.TotalCredit)
	assert.True(t, tb.TotalDebit.Equal(dec(6540)))
}

func TestBalanceSheet_Identity(t *testing.T) {
	accounts := []domain.Account{
		account("acc_cash", "Cash", domain.Asset, 0),
		account("acc_barn", "Barn", domain.Asset, 0),
		account("acc_loan", "Loan", domain.Liability, 0),
		account("acc_capital", "Owner Capital", domain.Equity, 0),
		account("acc_sales", "Crop Sales", domain.Income, 0),
		account("acc_fuel", "Fuel Expense", domain.Expense, 0),
	}
	entries := []domain.JournalEntry{
		entry("je_1", debit("acc_cash", 10000), credit("acc_capital", 10000)),
		entry("je_2", debit("acc_barn", 4000), credit("acc_loan", 4000)),
		entry("je_3", debit("acc_cash", 900), credit("acc_sales", 900)),
		entry("je_4", debit("acc_fuel", 250), credit("acc_cash", 250)),
	}

	bs := accounting.BalanceSheet(accounts, entries, nil)

	liabPlusEquity := bs.TotalLiabilities.Add(bs.TotalEquity)
	assert.True(t, bs.TotalAssets.Equal(liabPlusEquity),
		"assets %s != liabilities+equity %s", bs.TotalAssets, liabPlusEquity)
	assert.True(t, bs.TotalAssets.Equal(dec(14650)))
}

func TestBalanceSheet_RetainedEarningsRollup(t *testing.T) {
	accounts := []domain.Account{
		account("acc_cash", "Cash", domain.Asset, 0),
		account("acc_sales", "Crop Sales", domain.Income, 0),
	}
	entries := []domain.JournalEntry{
		entry("je_1", debit("acc_cash", 700), credit("acc_sales", 700)),
	}

	bs := accounting.BalanceSheet(accounts, entries, nil)

	require.Len(t, bs.Equity, 1)
	assert.Equal(t, "Retained Earnings", bs.Equity[0].Name)
	assert.True(t, bs.Equity[0].Amount.Equal(dec(700)))
	assert.True(t, bs.TotalAssets.Equal(bs.TotalLiabilities.Add(bs.TotalEquity)))
}

func TestReports_EmptyInputs(t *testing.T) {
	tb := accounting.TrialBalance(nil, nil)
	assert.Empty(t, tb.Rows)
	assert.True(t, tb.TotalDebit.IsZero())

	is := accounting.IncomeStatement(nil, nil, nil, nil)
	assert.True(t, is.NetIncome.IsZero())
	assert.Empty(t, is.Income)

	bs := accounting.BalanceSheet(nil, nil, nil)
	assert.True(t, bs.TotalAssets.IsZero())

	assert.Empty(t, accounting.ExpenseByCategory(nil, nil))

	p := accounting.Profitability(nil, nil, "", "")
	assert.True(t, p.Net.IsZero())

	assert.False(t, accounting.Diagnose(nil, nil).HasFindings())
}

// Deleting an account leaves dangling journal lines; every report must skip
// them without failing and exclude their amounts.
func TestReports_OrphanedLinesAreSkipped(t *testing.T) {
	cash := account("acc_cash", "Cash", domain.Asset, 0)
	accounts := []domain.Account{cash} // acc_deleted no longer exists
	entries := []domain.JournalEntry{
		entry("je_1", debit("acc_cash", 100), credit("acc_deleted", 100)),
	}

	tb := accounting.TrialBalance(accounts, entries)
	require.Len(t, tb.Rows, 1)
	assert.True(t, tb.TotalDebit.Equal(dec(100)))
	assert.True(t, tb.TotalCredit.IsZero())

	assert.True(t, accounting.AccountBalance(cash, entries).Equal(dec(100)))

	diag := accounting.Diagnose(accounts, entries)
	require.Len(t, diag.Orphans, 1)
	assert.Equal(t, "je_1", diag.Orphans[0].EntryID)
	assert.Equal(t, "acc_deleted", diag.Orphans[0].AccountID)
}

func TestDiagnose_UnbalancedEntrySurfacedAsResidual(t *testing.T) {
	accounts := []domain.Account{
		account("acc_cash", "Cash", domain.Asset, 0),
		account("acc_sales", "Crop Sales", domain.Income, 0),
	}
	entries := []domain.JournalEntry{
		entry("je_bad", debit("acc_cash", 500), credit("acc_sales", 300)),
	}

	diag := accounting.Diagnose(accounts, entries)

	require.Len(t, diag.Unbalanced, 1)
	assert.Equal(t, "je_bad", diag.Unbalanced[0].EntryID)
	assert.True(t, diag.Unbalanced[0].Residual.Equal(dec(200)))

	// Reports still render over the unbalanced ledger.
	tb := accounting.TrialBalance(accounts, entries)
	assert.True(t, tb.TotalDebit.Equal(dec(500)))
	assert.True(t, tb.TotalCredit.Equal(dec(300)))
}

func TestExpenseByCategory_GroupsWithFallbackBucket(t *testing.T) {
	accounts := []domain.Account{
		account("acc_cash", "Cash", domain.Asset, 0),
		account("acc_seed", "Seed Expense", domain.Expense, 0),
		account("acc_fuel", "Fuel Expense", domain.Expense, 0),
	}
	withCategory := entry("je_1", debit("acc_seed", 200), credit("acc_cash", 200))
	withCategory.Category = "Inputs"
	alsoInputs := entry("je_2", debit("acc_seed", 50), credit("acc_cash", 50))
	alsoInputs.Category = "Inputs"
	noCategory := entry("je_3", debit("acc_fuel", 80), credit("acc_cash", 80))

	result := accounting.ExpenseByCategory(accounts, []domain.JournalEntry{withCategory, alsoInputs, noCategory})

	require.Len(t, result, 2)
	assert.Equal(t, "Inputs", result[0].Category)
	assert.True(t, result[0].Total.Equal(dec(250)))
	assert.Equal(t, accounting.UncategorizedBucket, result[1].Category)
	assert.True(t, result[1].Total.Equal(dec(80)))
}

func TestProfitability_FiltersByPlotAndSeason(t *testing.T) {
	accounts := []domain.Account{
		account("acc_sales", "Crop Sales", domain.Income, 0),
		account("acc_seed", "Seed Expense", domain.Expense, 0),
		account("acc_cash", "Cash", domain.Asset, 0),
	}
	northSale := entry("je_1",
		domain.JournalLine{AccountID: "acc_cash", LineType: domain.Debit, Amount: dec(1000)},
		domain.JournalLine{AccountID: "acc_sales", LineType: domain.Credit, Amount: dec(1000), PlotID: "plot_north", SeasonID: "season_2025"},
	)
	northCost := entry("je_2",
		domain.JournalLine{AccountID: "acc_seed", LineType: domain.Debit, Amount: dec(400), PlotID: "plot_north", SeasonID: "season_2025"},
		domain.JournalLine{AccountID: "acc_cash", LineType: domain.Credit, Amount: dec(400)},
	)
	southSale := entry("je_3",
		domain.JournalLine{AccountID: "acc_cash", LineType: domain.Debit, Amount: dec(900)},
		domain.JournalLine{AccountID: "acc_sales", LineType: domain.Credit, Amount: dec(900), PlotID: "plot_south"},
	)
	entries := []domain.JournalEntry{northSale, northCost, southSale}

	north := accounting.Profitability(accounts, entries, "plot_north", "")
	assert.True(t, north.Income.Equal(dec(1000)))
	assert.True(t, north.Expenses.Equal(dec(400)))
	assert.True(t, north.Net.Equal(dec(600)))

	season := accounting.Profitability(accounts, entries, "", "season_2025")
	assert.True(t, season.Net.Equal(dec(600)))

	all := accounting.Profitability(accounts, entries, "", "")
	assert.True(t, all.Income.Equal(dec(1900)))
}

func TestIncomeStatement_DateRange(t *testing.T) {
	accounts := []domain.Account{
		account("acc_cash", "Cash", domain.Asset, 0),
		account("acc_sales", "Crop Sales", domain.Income, 0),
	}
	early := entry("je_early", debit("acc_cash", 100), credit("acc_sales", 100))
	early.EntryDate = time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	late := entry("je_late", debit("acc_cash", 250), credit("acc_sales", 250))
	late.EntryDate = time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)

	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	report := accounting.IncomeStatement(accounts, []domain.JournalEntry{early, late}, &from, nil)

	assert.True(t, report.TotalIncome.Equal(dec(250)))
}
