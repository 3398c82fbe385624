package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/agrisage/farm_management_app/internal/apperrors"
	"github.com/agrisage/farm_management_app/internal/core/domain"
	portssvc "github.com/agrisage/farm_management_app/internal/core/ports/services"
	"github.com/agrisage/farm_management_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, workspaceID, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, workspaceID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccountsByWorkspace(ctx context.Context, workspaceID string) ([]domain.Account, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) SaveAccounts(ctx context.Context, accounts []domain.Account) error {
	args := m.Called(ctx, accounts)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, workspaceID, accountID string) error {
	args := m.Called(ctx, workspaceID, accountID)
	return args.Error(0)
}

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockJournalRepo *MockJournalRepository
	mockAuthorizer  *MockWorkspaceAuthorizer
	service         portssvc.ReportingSvcFacade

	workspaceID string
	userID      string
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockAuthorizer = new(MockWorkspaceAuthorizer)
	suite.service = services.NewReportingService(suite.mockAccountRepo, suite.mockJournalRepo,
		services.WithReportingAuthorizer(suite.mockAuthorizer))
	suite.workspaceID = "ws_" + uuid.NewString()
	suite.userID = uuid.NewString()
}

// seedLedger stubs a small ledger: a balanced cash sale of 1500 split across
// one balanced and one unbalanced entry, plus a line on a deleted account.
func (suite *ReportingServiceTestSuite) seedLedger() {
	suite.mockAuthorizer.On("AuthorizeFeatureAccess", mock.Anything, suite.userID, suite.workspaceID, domain.FeatureFinancials).Return(nil)

	accounts := []domain.Account{
		{AccountID: "acc_cash", WorkspaceID: suite.workspaceID, Name: "Cash", AccountType: domain.Asset},
		{AccountID: "acc_sales", WorkspaceID: suite.workspaceID, Name: "Sales", AccountType: domain.Income},
	}
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	entries := []domain.JournalEntry{
		{
			EntryID:     "je_1",
			WorkspaceID: suite.workspaceID,
			EntryDate:   date,
			Lines: []domain.JournalLine{
				{AccountID: "acc_cash", LineType: domain.Debit, Amount: decimal.NewFromInt(1500)},
				{AccountID: "acc_sales", LineType: domain.Credit, Amount: decimal.NewFromInt(1500)},
			},
		},
		{
			EntryID:     "je_2",
			WorkspaceID: suite.workspaceID,
			EntryDate:   date,
			Lines: []domain.JournalLine{
				{AccountID: "acc_cash", LineType: domain.Debit, Amount: decimal.NewFromInt(100)},
				{AccountID: "acc_gone", LineType: domain.Credit, Amount: decimal.NewFromInt(40)},
			},
		},
	}

	suite.mockAccountRepo.On("ListAccountsByWorkspace", mock.Anything, suite.workspaceID).Return(accounts, nil)
	suite.mockJournalRepo.On("ListEntriesByWorkspace", mock.Anything, suite.workspaceID).Return(entries, nil)
}

// --- Test Cases ---

func (suite *ReportingServiceTestSuite) TestTrialBalance_TotalsAndDiagnostics() {
	ctx := context.Background()
	suite.seedLedger()

	report, diag, err := suite.service.TrialBalance(ctx, suite.workspaceID, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(report)
	suite.Require().NotNil(diag)

	// The orphaned 40 credit is excluded from totals but flagged.
	suite.True(report.TotalDebit.Equal(decimal.NewFromInt(1600)))
	suite.True(report.TotalCredit.Equal(decimal.NewFromInt(1500)))
	suite.True(diag.HasFindings())
	suite.Len(diag.Orphans, 1)
	suite.Equal("acc_gone", diag.Orphans[0].AccountID)
	suite.Len(diag.Unbalanced, 1)
	suite.Equal("je_2", diag.Unbalanced[0].EntryID)
}

func (suite *ReportingServiceTestSuite) TestIncomeStatement_DateRangeExcludesEntries() {
	ctx := context.Background()
	suite.seedLedger()
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	report, err := suite.service.IncomeStatement(ctx, suite.workspaceID, suite.userID, &from, nil)

	suite.Require().NoError(err)
	suite.Require().NotNil(report)
	suite.True(report.TotalIncome.IsZero())
	suite.True(report.NetIncome.IsZero())
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet_Success() {
	ctx := context.Background()
	suite.seedLedger()

	report, err := suite.service.BalanceSheet(ctx, suite.workspaceID, suite.userID, nil)

	suite.Require().NoError(err)
	suite.Require().NotNil(report)
	// Cash holds the 1600 of debits; retained earnings carries sales income.
	suite.True(report.TotalAssets.Equal(decimal.NewFromInt(1600)))
}

func (suite *ReportingServiceTestSuite) TestReports_ForbiddenWithoutFinancials() {
	ctx := context.Background()
	suite.mockAuthorizer.On("AuthorizeFeatureAccess", mock.Anything, suite.userID, suite.workspaceID, domain.FeatureFinancials).Return(apperrors.ErrForbidden)

	report, diag, err := suite.service.TrialBalance(ctx, suite.workspaceID, suite.userID)

	suite.Require().Error(err)
	suite.Nil(report)
	suite.Nil(diag)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "ListAccountsByWorkspace", mock.Anything, mock.Anything)
}

// --- Run Suite ---
func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
