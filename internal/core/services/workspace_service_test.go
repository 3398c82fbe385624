package services_test

import (
	"context"
	"testing"

	"github.com/agrisage/farm_management_app/internal/apperrors"
	"github.com/agrisage/farm_management_app/internal/core/domain"
	"github.com/agrisage/farm_management_app/internal/core/permissions"
	portssvc "github.com/agrisage/farm_management_app/internal/core/ports/services"
	"github.com/agrisage/farm_management_app/internal/core/services"
	"github.com/agrisage/farm_management_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock WorkspaceRepository ---
type MockWorkspaceRepository struct {
	mock.Mock
}

func (m *MockWorkspaceRepository) FindWorkspaceByID(ctx context.Context, workspaceID string) (*domain.Workspace, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workspace), args.Error(1)
}

func (m *MockWorkspaceRepository) ListWorkspacesByUserID(ctx context.Context, userID string) ([]domain.Workspace, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Workspace), args.Error(1)
}

func (m *MockWorkspaceRepository) ListAllWorkspaces(ctx context.Context) ([]domain.Workspace, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Workspace), args.Error(1)
}

func (m *MockWorkspaceRepository) SaveWorkspace(ctx context.Context, workspace domain.Workspace) error {
	args := m.Called(ctx, workspace)
	return args.Error(0)
}

func (m *MockWorkspaceRepository) UpdateWorkspace(ctx context.Context, workspace domain.Workspace) error {
	args := m.Called(ctx, workspace)
	return args.Error(0)
}

func (m *MockWorkspaceRepository) UpsertMember(ctx context.Context, workspaceID, userID string, role domain.Role) error {
	args := m.Called(ctx, workspaceID, userID, role)
	return args.Error(0)
}

func (m *MockWorkspaceRepository) RemoveMember(ctx context.Context, workspaceID, userID string) error {
	args := m.Called(ctx, workspaceID, userID)
	return args.Error(0)
}

func (m *MockWorkspaceRepository) FindMemberRole(ctx context.Context, workspaceID, userID string) (*domain.Role, error) {
	args := m.Called(ctx, workspaceID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Role), args.Error(1)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Test Suite ---
type WorkspaceServiceTestSuite struct {
	suite.Suite
	mockWorkspaceRepo *MockWorkspaceRepository
	mockUserRepo      *MockUserRepository
	service           portssvc.WorkspaceSvcFacade

	ownerID  string
	memberID string
}

func (suite *WorkspaceServiceTestSuite) SetupTest() {
	suite.mockWorkspaceRepo = new(MockWorkspaceRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewWorkspaceService(suite.mockWorkspaceRepo, suite.mockUserRepo)
	suite.ownerID = uuid.NewString()
	suite.memberID = uuid.NewString()
}

// activeWorkspace builds a workspace with a full permission map so loading it
// triggers no migration write.
func (suite *WorkspaceServiceTestSuite) activeWorkspace() *domain.Workspace {
	return &domain.Workspace{
		WorkspaceID: "ws_" + uuid.NewString(),
		Name:        "Green Valley Farm",
		Status:      domain.StatusActive,
		Members: map[string]domain.WorkspaceMember{
			suite.ownerID:  {Role: domain.RoleOwner},
			suite.memberID: {Role: domain.RoleFieldOfficer},
		},
		FeaturePermissions: permissions.DefaultFeaturePermissions(),
	}
}

// --- Test Cases ---

func (suite *WorkspaceServiceTestSuite) TestCreateWorkspace_StampsDefaults() {
	ctx := context.Background()
	req := dto.CreateWorkspaceRequest{Name: "Green Valley Farm"}

	suite.mockWorkspaceRepo.On("SaveWorkspace", ctx, mock.MatchedBy(func(w domain.Workspace) bool {
		return w.Name == req.Name &&
			w.Status == domain.StatusActive &&
			w.Members[suite.ownerID].Role == domain.RoleOwner &&
			len(w.FeaturePermissions) == len(domain.AllFeatures)
	})).Return(nil).Once()

	ws, err := suite.service.CreateWorkspace(ctx, req, suite.ownerID)

	suite.Require().NoError(err)
	suite.Require().NotNil(ws)
	suite.Equal(suite.ownerID, ws.CreatedBy)
	suite.Len(ws.Members, 1)
	suite.mockWorkspaceRepo.AssertExpectations(suite.T())
}

func (suite *WorkspaceServiceTestSuite) TestGetWorkspaceByID_NonMemberForbidden() {
	ctx := context.Background()
	ws := suite.activeWorkspace()
	stranger := uuid.NewString()

	suite.mockWorkspaceRepo.On("FindWorkspaceByID", ctx, ws.WorkspaceID).Return(ws, nil).Once()

	got, err := suite.service.GetWorkspaceByID(ctx, ws.WorkspaceID, stranger)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockWorkspaceRepo.AssertExpectations(suite.T())
}

func (suite *WorkspaceServiceTestSuite) TestGetWorkspaceByID_MigratesAndPersists() {
	ctx := context.Background()
	ws := suite.activeWorkspace()
	// A workspace created before Suppliers existed has no entry for it.
	delete(ws.FeaturePermissions, domain.FeatureSuppliers)

	suite.mockWorkspaceRepo.On("FindWorkspaceByID", ctx, ws.WorkspaceID).Return(ws, nil).Once()
	suite.mockWorkspaceRepo.On("UpdateWorkspace", ctx, mock.MatchedBy(func(w domain.Workspace) bool {
		_, ok := w.FeaturePermissions[domain.FeatureSuppliers]
		return ok && len(w.FeaturePermissions) == len(domain.AllFeatures)
	})).Return(nil).Once()

	got, err := suite.service.GetWorkspaceByID(ctx, ws.WorkspaceID, suite.ownerID)

	suite.Require().NoError(err)
	suite.Require().NotNil(got)
	suite.Contains(got.FeaturePermissions, domain.FeatureSuppliers)
	suite.mockWorkspaceRepo.AssertExpectations(suite.T())
}

func (suite *WorkspaceServiceTestSuite) TestGetWorkspaceByID_MigrationPersistFailureNonFatal() {
	ctx := context.Background()
	ws := suite.activeWorkspace()
	delete(ws.FeaturePermissions, domain.FeatureHarvestSales)

	suite.mockWorkspaceRepo.On("FindWorkspaceByID", ctx, ws.WorkspaceID).Return(ws, nil).Once()
	suite.mockWorkspaceRepo.On("UpdateWorkspace", ctx, mock.AnythingOfType("domain.Workspace")).Return(assert.AnError).Once()

	got, err := suite.service.GetWorkspaceByID(ctx, ws.WorkspaceID, suite.ownerID)

	suite.Require().NoError(err)
	suite.Require().NotNil(got)
	suite.Contains(got.FeaturePermissions, domain.FeatureHarvestSales)
	suite.mockWorkspaceRepo.AssertExpectations(suite.T())
}

func (suite *WorkspaceServiceTestSuite) TestGetWorkspaceByID_NoMigrationWriteWhenComplete() {
	ctx := context.Background()
	ws := suite.activeWorkspace()

	suite.mockWorkspaceRepo.On("FindWorkspaceByID", ctx, ws.WorkspaceID).Return(ws, nil).Once()

	got, err := suite.service.GetWorkspaceByID(ctx, ws.WorkspaceID, suite.memberID)

	suite.Require().NoError(err)
	suite.Require().NotNil(got)
	suite.mockWorkspaceRepo.AssertNotCalled(suite.T(), "UpdateWorkspace", mock.Anything, mock.Anything)
	suite.mockWorkspaceRepo.AssertExpectations(suite.T())
}

func (suite *WorkspaceServiceTestSuite) TestAuthorizeFeatureAccess_OwnerAdminOverride() {
	ctx := context.Background()
	ws := suite.activeWorkspace()
	// Even with Admin stripped from every role list, the owner gets through.
	ws.FeaturePermissions[domain.FeatureAdmin] = domain.FeaturePermission{Enabled: true, AllowedRoles: nil}

	suite.mockWorkspaceRepo.On("FindWorkspaceByID", ctx, ws.WorkspaceID).Return(ws, nil).Once()

	err := suite.service.AuthorizeFeatureAccess(ctx, suite.ownerID, ws.WorkspaceID, domain.FeatureAdmin)

	suite.Require().NoError(err)
	suite.mockWorkspaceRepo.AssertExpectations(suite.T())
}

func (suite *WorkspaceServiceTestSuite) TestAuthorizeFeatureAccess_RoleNotAllowed() {
	ctx := context.Background()
	ws := suite.activeWorkspace()

	suite.mockWorkspaceRepo.On("FindWorkspaceByID", ctx, ws.WorkspaceID).Return(ws, nil).Once()

	err := suite.service.AuthorizeFeatureAccess(ctx, suite.memberID, ws.WorkspaceID, domain.FeatureAdmin)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockWorkspaceRepo.AssertExpectations(suite.T())
}

func (suite *WorkspaceServiceTestSuite) TestAuthorizeFeatureAccess_SuspendedFailsClosed() {
	ctx := context.Background()
	ws := suite.activeWorkspace()
	ws.Status = domain.StatusSuspended

	suite.mockWorkspaceRepo.On("FindWorkspaceByID", ctx, ws.WorkspaceID).Return(ws, nil).Once()

	err := suite.service.AuthorizeFeatureAccess(ctx, suite.ownerID, ws.WorkspaceID, domain.FeatureFinancials)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrSuspended)
	suite.mockWorkspaceRepo.AssertExpectations(suite.T())
}

func (suite *WorkspaceServiceTestSuite) TestAddMember_Success() {
	ctx := context.Background()
	ws := suite.activeWorkspace()
	newUserID := uuid.NewString()
	req := dto.AddMemberRequest{UserID: newUserID, Role: string(domain.RoleAccountant)}

	suite.mockWorkspaceRepo.On("FindWorkspaceByID", ctx, ws.WorkspaceID).Return(ws, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, newUserID).Return(&domain.User{UserID: newUserID}, nil).Once()
	suite.mockWorkspaceRepo.On("UpsertMember", ctx, ws.WorkspaceID, newUserID, domain.RoleAccountant).Return(nil).Once()

	err := suite.service.AddMember(ctx, ws.WorkspaceID, req, suite.ownerID)

	suite.Require().NoError(err)
	suite.mockWorkspaceRepo.AssertExpectations(suite.T())
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *WorkspaceServiceTestSuite) TestAddMember_NonAdminForbidden() {
	ctx := context.Background()
	ws := suite.activeWorkspace()
	req := dto.AddMemberRequest{UserID: uuid.NewString(), Role: string(domain.RoleMember)}

	suite.mockWorkspaceRepo.On("FindWorkspaceByID", ctx, ws.WorkspaceID).Return(ws, nil).Once()

	err := suite.service.AddMember(ctx, ws.WorkspaceID, req, suite.memberID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockWorkspaceRepo.AssertNotCalled(suite.T(), "UpsertMember", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *WorkspaceServiceTestSuite) TestJoinWorkspace_AddsMemberRole() {
	ctx := context.Background()
	ws := suite.activeWorkspace()
	joiner := uuid.NewString()

	suite.mockWorkspaceRepo.On("FindWorkspaceByID", ctx, ws.WorkspaceID).Return(ws, nil).Once()
	suite.mockWorkspaceRepo.On("UpsertMember", ctx, ws.WorkspaceID, joiner, domain.RoleMember).Return(nil).Once()

	joined, err := suite.service.JoinWorkspace(ctx, ws.WorkspaceID, joiner)

	suite.Require().NoError(err)
	suite.Require().NotNil(joined)
	suite.Equal(domain.RoleMember, joined.Members[joiner].Role)
	suite.mockWorkspaceRepo.AssertExpectations(suite.T())
}

func (suite *WorkspaceServiceTestSuite) TestJoinWorkspace_AlreadyMemberConflict() {
	ctx := context.Background()
	ws := suite.activeWorkspace()

	suite.mockWorkspaceRepo.On("FindWorkspaceByID", ctx, ws.WorkspaceID).Return(ws, nil).Once()

	joined, err := suite.service.JoinWorkspace(ctx, ws.WorkspaceID, suite.memberID)

	suite.Require().Error(err)
	suite.Nil(joined)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockWorkspaceRepo.AssertNotCalled(suite.T(), "UpsertMember", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *WorkspaceServiceTestSuite) TestUpdateMemberRole_LastOwnerDemotionBlocked() {
	ctx := context.Background()
	ws := suite.activeWorkspace()

	suite.mockWorkspaceRepo.On("FindWorkspaceByID", ctx, ws.WorkspaceID).Return(ws, nil).Once()

	err := suite.service.UpdateMemberRole(ctx, ws.WorkspaceID, suite.ownerID, domain.RoleMember, suite.ownerID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrLastOwnerDemotion)
	suite.mockWorkspaceRepo.AssertNotCalled(suite.T(), "UpsertMember", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *WorkspaceServiceTestSuite) TestUpdateMemberRole_SecondOwnerDemotionAllowed() {
	ctx := context.Background()
	ws := suite.activeWorkspace()
	secondOwner := uuid.NewString()
	ws.Members[secondOwner] = domain.WorkspaceMember{Role: domain.RoleOwner}

	suite.mockWorkspaceRepo.On("FindWorkspaceByID", ctx, ws.WorkspaceID).Return(ws, nil).Once()
	suite.mockWorkspaceRepo.On("UpsertMember", ctx, ws.WorkspaceID, secondOwner, domain.RoleAccountant).Return(nil).Once()

	err := suite.service.UpdateMemberRole(ctx, ws.WorkspaceID, secondOwner, domain.RoleAccountant, suite.ownerID)

	suite.Require().NoError(err)
	suite.mockWorkspaceRepo.AssertExpectations(suite.T())
}

func (suite *WorkspaceServiceTestSuite) TestRemoveMember_LastOwnerBlocked() {
	ctx := context.Background()
	ws := suite.activeWorkspace()

	suite.mockWorkspaceRepo.On("FindWorkspaceByID", ctx, ws.WorkspaceID).Return(ws, nil).Once()

	err := suite.service.RemoveMember(ctx, ws.WorkspaceID, suite.ownerID, suite.ownerID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrLastOwnerRemoval)
	suite.mockWorkspaceRepo.AssertNotCalled(suite.T(), "RemoveMember", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *WorkspaceServiceTestSuite) TestRemoveMember_SelfLeaveWithoutAdmin() {
	ctx := context.Background()
	ws := suite.activeWorkspace()

	suite.mockWorkspaceRepo.On("FindWorkspaceByID", ctx, ws.WorkspaceID).Return(ws, nil).Once()
	suite.mockWorkspaceRepo.On("RemoveMember", ctx, ws.WorkspaceID, suite.memberID).Return(nil).Once()

	err := suite.service.RemoveMember(ctx, ws.WorkspaceID, suite.memberID, suite.memberID)

	suite.Require().NoError(err)
	suite.mockWorkspaceRepo.AssertExpectations(suite.T())
}

func (suite *WorkspaceServiceTestSuite) TestRemoveMember_OtherUserRequiresAdmin() {
	ctx := context.Background()
	ws := suite.activeWorkspace()
	otherID := uuid.NewString()
	ws.Members[otherID] = domain.WorkspaceMember{Role: domain.RoleMember}

	suite.mockWorkspaceRepo.On("FindWorkspaceByID", ctx, ws.WorkspaceID).Return(ws, nil).Once()

	err := suite.service.RemoveMember(ctx, ws.WorkspaceID, otherID, suite.memberID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockWorkspaceRepo.AssertNotCalled(suite.T(), "RemoveMember", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *WorkspaceServiceTestSuite) TestUpdateFeaturePermission_Success() {
	ctx := context.Background()
	ws := suite.activeWorkspace()
	req := dto.UpdateFeaturePermissionRequest{
		Enabled:      true,
		AllowedRoles: []string{string(domain.RoleOwner), string(domain.RoleFieldOfficer)},
	}

	suite.mockWorkspaceRepo.On("FindWorkspaceByID", ctx, ws.WorkspaceID).Return(ws, nil).Once()
	suite.mockWorkspaceRepo.On("UpdateWorkspace", ctx, mock.MatchedBy(func(w domain.Workspace) bool {
		perm := w.FeaturePermissions[domain.FeatureInventory]
		return perm.Enabled && perm.Allows(domain.RoleFieldOfficer)
	})).Return(nil).Once()

	updated, err := suite.service.UpdateFeaturePermission(ctx, ws.WorkspaceID, domain.FeatureInventory, req, suite.ownerID)

	suite.Require().NoError(err)
	suite.Require().NotNil(updated)
	suite.True(updated.FeaturePermissions[domain.FeatureInventory].Allows(domain.RoleFieldOfficer))
	suite.mockWorkspaceRepo.AssertExpectations(suite.T())
}

func (suite *WorkspaceServiceTestSuite) TestUpdateFeaturePermission_InvalidRoleRejected() {
	ctx := context.Background()
	ws := suite.activeWorkspace()
	req := dto.UpdateFeaturePermissionRequest{
		Enabled:      true,
		AllowedRoles: []string{"Galactic Overlord"},
	}

	suite.mockWorkspaceRepo.On("FindWorkspaceByID", ctx, ws.WorkspaceID).Return(ws, nil).Once()

	updated, err := suite.service.UpdateFeaturePermission(ctx, ws.WorkspaceID, domain.FeatureInventory, req, suite.ownerID)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockWorkspaceRepo.AssertNotCalled(suite.T(), "UpdateWorkspace", mock.Anything, mock.Anything)
}

// --- Run Suite ---
func TestWorkspaceService(t *testing.T) {
	suite.Run(t, new(WorkspaceServiceTestSuite))
}
