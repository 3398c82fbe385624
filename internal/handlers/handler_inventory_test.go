package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/agrisage/farm_management_app/internal/apperrors"
	"github.com/agrisage/farm_management_app/internal/core/domain"
	portssvc "github.com/agrisage/farm_management_app/internal/core/ports/services"
	"github.com/agrisage/farm_management_app/internal/dto"
	"github.com/agrisage/farm_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock InventoryService ---
type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) CreateItem(ctx context.Context, workspaceID string, req dto.CreateInventoryItemRequest, requestingUserID string) (*domain.InventoryItem, error) {
	args := m.Called(ctx, workspaceID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryService) GetItemByID(ctx context.Context, workspaceID, itemID, requestingUserID string) (*domain.InventoryItem, error) {
	args := m.Called(ctx, workspaceID, itemID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryService) ListItems(ctx context.Context, workspaceID, requestingUserID string) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, workspaceID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryService) UpdateItem(ctx context.Context, workspaceID, itemID string, req dto.UpdateInventoryItemRequest, requestingUserID string) (*domain.InventoryItem, error) {
	args := m.Called(ctx, workspaceID, itemID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryService) DeleteItem(ctx context.Context, workspaceID, itemID, requestingUserID string) error {
	args := m.Called(ctx, workspaceID, itemID, requestingUserID)
	return args.Error(0)
}

func (m *MockInventoryService) ListLowStockItems(ctx context.Context, workspaceID, requestingUserID string) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, workspaceID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

var _ portssvc.InventorySvcFacade = (*MockInventoryService)(nil)

// --- Test Suite ---
type InventoryHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockInventoryService
	jwtSecret   string
	userID      string
	workspaceID string
}

func (suite *InventoryHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "fma-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *InventoryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()
	suite.workspaceID = "ws_" + uuid.NewString()

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))
	suite.mockService = new(MockInventoryService)

	v1 := suite.router.Group("/api/v1/workspaces/:workspace_id")
	registerInventoryRoutes(v1, suite.mockService)
}

func (suite *InventoryHandlerTestSuite) doRequest(method, url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *InventoryHandlerTestSuite) TestCreateItem_Success() {
	req := dto.CreateInventoryItemRequest{
		Name:        "DAP Fertilizer",
		Category:    string(domain.InventoryFertilizer),
		Quantity:    decimal.NewFromInt(40),
		Unit:        "kg",
		CostPerUnit: decimal.NewFromFloat(3.5),
	}
	created := &domain.InventoryItem{
		InventoryID: "inv_" + uuid.NewString(),
		WorkspaceID: suite.workspaceID,
		Name:        req.Name,
		Category:    domain.InventoryFertilizer,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		CostPerUnit: req.CostPerUnit,
	}

	suite.mockService.On("CreateItem",
		mock.Anything, suite.workspaceID,
		mock.MatchedBy(func(r dto.CreateInventoryItemRequest) bool { return r.Name == req.Name }),
		suite.userID,
	).Return(created, nil).Once()

	w := suite.doRequest(http.MethodPost, fmt.Sprintf("/api/v1/workspaces/%s/inventory", suite.workspaceID), req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.InventoryItemResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.InventoryID, resp.InventoryID)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *InventoryHandlerTestSuite) TestCreateItem_InvalidCategoryRejected() {
	req := dto.CreateInventoryItemRequest{
		Name:     "Mystery substance",
		Category: "Contraband",
	}

	w := suite.doRequest(http.MethodPost, fmt.Sprintf("/api/v1/workspaces/%s/inventory", suite.workspaceID), req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InventoryHandlerTestSuite) TestListLowStockItems_Success() {
	reorder := decimal.NewFromInt(10)
	low := []domain.InventoryItem{
		{
			InventoryID:  "inv_" + uuid.NewString(),
			WorkspaceID:  suite.workspaceID,
			Name:         "Maize seed",
			Category:     domain.InventorySeeds,
			Quantity:     decimal.NewFromInt(4),
			ReorderPoint: &reorder,
		},
	}

	suite.mockService.On("ListLowStockItems", mock.Anything, suite.workspaceID, suite.userID).
		Return(low, nil).Once()

	w := suite.doRequest(http.MethodGet, fmt.Sprintf("/api/v1/workspaces/%s/inventory/low-stock", suite.workspaceID), nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListInventoryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Items, 1)
	suite.True(resp.Items[0].NeedsReorder)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *InventoryHandlerTestSuite) TestGetItem_NotFound() {
	itemID := "inv_" + uuid.NewString()
	suite.mockService.On("GetItemByID", mock.Anything, suite.workspaceID, itemID, suite.userID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, fmt.Sprintf("/api/v1/workspaces/%s/inventory/%s", suite.workspaceID, itemID), nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *InventoryHandlerTestSuite) TestListItems_ForbiddenWithoutFeature() {
	suite.mockService.On("ListItems", mock.Anything, suite.workspaceID, suite.userID).
		Return(nil, apperrors.ErrForbidden).Once()

	w := suite.doRequest(http.MethodGet, fmt.Sprintf("/api/v1/workspaces/%s/inventory", suite.workspaceID), nil)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *InventoryHandlerTestSuite) TestListItems_MissingTokenUnauthorized() {
	req, _ := http.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/workspaces/%s/inventory", suite.workspaceID), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListItems", mock.Anything, mock.Anything, mock.Anything)
}

// --- Run Test Suite ---
func TestInventoryHandler(t *testing.T) {
	suite.Run(t, new(InventoryHandlerTestSuite))
}
