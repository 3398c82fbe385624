package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/agrisage/farm_management_app/internal/apperrors"
	"github.com/agrisage/farm_management_app/internal/core/domain"
	portssvc "github.com/agrisage/farm_management_app/internal/core/ports/services"
	"github.com/agrisage/farm_management_app/internal/core/services"
	"github.com/agrisage/farm_management_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, workspaceID, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, workspaceID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) ListEntriesByWorkspace(ctx context.Context, workspaceID string) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockJournalRepository) SaveEntries(ctx context.Context, entries []domain.JournalEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockJournalRepository) UpdateEntry(ctx context.Context, entry domain.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockJournalRepository) DeleteEntry(ctx context.Context, workspaceID, entryID string) error {
	args := m.Called(ctx, workspaceID, entryID)
	return args.Error(0)
}

// --- Mock WorkspaceAuthorizer ---
type MockWorkspaceAuthorizer struct {
	mock.Mock
}

func (m *MockWorkspaceAuthorizer) AuthorizeFeatureAccess(ctx context.Context, userID, workspaceID string, feature domain.Feature) error {
	args := m.Called(ctx, userID, workspaceID, feature)
	return args.Error(0)
}

// --- Test Suite ---
type JournalServiceTestSuite struct {
	suite.Suite
	mockRepo       *MockJournalRepository
	mockAuthorizer *MockWorkspaceAuthorizer
	service        portssvc.JournalSvcFacade

	workspaceID string
	userID      string
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockJournalRepository)
	suite.mockAuthorizer = new(MockWorkspaceAuthorizer)
	suite.service = services.NewJournalService(suite.mockRepo, services.WithJournalAuthorizer(suite.mockAuthorizer))
	suite.workspaceID = "ws_" + uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *JournalServiceTestSuite) allowFinancials() {
	suite.mockAuthorizer.On("AuthorizeFeatureAccess", mock.Anything, suite.userID, suite.workspaceID, domain.FeatureFinancials).Return(nil)
}

func balancedEntryRequest() dto.CreateJournalEntryRequest {
	return dto.CreateJournalEntryRequest{
		Date:     time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Currency: "KES",
		Lines: []dto.JournalLineRequest{
			{AccountID: "acc_cash", Type: "debit", Amount: decimal.NewFromInt(1500)},
			{AccountID: "acc_sales", Type: "credit", Amount: decimal.NewFromInt(1500)},
		},
	}
}

func unbalancedEntryRequest() dto.CreateJournalEntryRequest {
	return dto.CreateJournalEntryRequest{
		Date:     time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Currency: "KES",
		Lines: []dto.JournalLineRequest{
			{AccountID: "acc_cash", Type: "debit", Amount: decimal.NewFromInt(1500)},
			{AccountID: "acc_sales", Type: "credit", Amount: decimal.NewFromInt(500)},
		},
	}
}

// --- Test Cases ---

func (suite *JournalServiceTestSuite) TestCreateEntry_Balanced() {
	ctx := context.Background()
	suite.allowFinancials()
	req := balancedEntryRequest()

	suite.mockRepo.On("SaveEntry", ctx, mock.MatchedBy(func(e domain.JournalEntry) bool {
		return e.WorkspaceID == suite.workspaceID && len(e.Lines) == 2 && e.IsBalanced()
	})).Return(nil).Once()

	entry, err := suite.service.CreateEntry(ctx, suite.workspaceID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.True(entry.IsBalanced())
	suite.Equal(suite.userID, entry.CreatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateEntry_UnbalancedAcceptedByDefault() {
	ctx := context.Background()
	suite.allowFinancials()
	req := unbalancedEntryRequest()

	suite.mockRepo.On("SaveEntry", ctx, mock.MatchedBy(func(e domain.JournalEntry) bool {
		return !e.IsBalanced()
	})).Return(nil).Once()

	entry, err := suite.service.CreateEntry(ctx, suite.workspaceID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.False(entry.IsBalanced())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateEntry_UnbalancedRejectedWhenStrict() {
	ctx := context.Background()
	suite.allowFinancials()
	req := unbalancedEntryRequest()
	req.ValidateBalance = true

	entry, err := suite.service.CreateEntry(ctx, suite.workspaceID, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_ForbiddenWithoutFinancials() {
	ctx := context.Background()
	suite.mockAuthorizer.On("AuthorizeFeatureAccess", mock.Anything, suite.userID, suite.workspaceID, domain.FeatureFinancials).Return(apperrors.ErrForbidden)

	entry, err := suite.service.CreateEntry(ctx, suite.workspaceID, balancedEntryRequest(), suite.userID)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestImportEntries_NeverEnforcesBalance() {
	ctx := context.Background()
	suite.allowFinancials()
	strict := unbalancedEntryRequest()
	strict.ValidateBalance = true
	req := dto.ImportJournalEntriesRequest{
		Entries: []dto.CreateJournalEntryRequest{balancedEntryRequest(), strict},
	}

	suite.mockRepo.On("SaveEntries", ctx, mock.MatchedBy(func(entries []domain.JournalEntry) bool {
		return len(entries) == 2 && entries[0].IsBalanced() && !entries[1].IsBalanced()
	})).Return(nil).Once()

	entries, err := suite.service.ImportEntries(ctx, suite.workspaceID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Len(entries, 2)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestUpdateEntry_PreservesIdentityAndAuthorship() {
	ctx := context.Background()
	suite.allowFinancials()
	created := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	existing := &domain.JournalEntry{
		EntryID:     "je_" + uuid.NewString(),
		WorkspaceID: suite.workspaceID,
		AuditFields: domain.AuditFields{CreatedAt: created, CreatedBy: "user_original"},
	}
	req := dto.UpdateJournalEntryRequest{
		Date:     time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Currency: "KES",
		Lines: []dto.JournalLineRequest{
			{AccountID: "acc_cash", Type: "debit", Amount: decimal.NewFromInt(200)},
			{AccountID: "acc_sales", Type: "credit", Amount: decimal.NewFromInt(200)},
		},
	}

	suite.mockRepo.On("FindEntryByID", ctx, suite.workspaceID, existing.EntryID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateEntry", ctx, mock.MatchedBy(func(e domain.JournalEntry) bool {
		return e.EntryID == existing.EntryID && e.CreatedBy == "user_original" && e.CreatedAt.Equal(created) && e.LastUpdatedBy == suite.userID
	})).Return(nil).Once()

	entry, err := suite.service.UpdateEntry(ctx, suite.workspaceID, existing.EntryID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(existing.EntryID, entry.EntryID)
	suite.Equal("user_original", entry.CreatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestDeleteEntry_Success() {
	ctx := context.Background()
	suite.allowFinancials()
	entryID := "je_" + uuid.NewString()

	suite.mockRepo.On("DeleteEntry", ctx, suite.workspaceID, entryID).Return(nil).Once()

	err := suite.service.DeleteEntry(ctx, suite.workspaceID, entryID, suite.userID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestGetEntryByID_NotFound() {
	ctx := context.Background()
	suite.allowFinancials()
	entryID := "je_" + uuid.NewString()

	suite.mockRepo.On("FindEntryByID", ctx, suite.workspaceID, entryID).Return(nil, apperrors.ErrNotFound).Once()

	entry, err := suite.service.GetEntryByID(ctx, suite.workspaceID, entryID, suite.userID)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestJournalService(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}
