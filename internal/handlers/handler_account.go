package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/agrisage/farm_management_app/internal/core/ports/services"
	"github.com/agrisage/farm_management_app/internal/dto"
	"github.com/agrisage/farm_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// accountHandler handles chart-of-accounts requests within a workspace.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{accountService: as}
}

func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.POST("/import", h.importAccounts)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:account_id", h.getAccount)
		accounts.PUT("/:account_id", h.updateAccount)
		accounts.DELETE("/:account_id", h.deleteAccount)
	}
}

// createAccount godoc
// @Summary Create a ledger account
// @Tags accounts
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Financials access required"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var req dto.CreateAccountRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), c.Param("workspace_id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create account")
		return
	}

	logger.Info("Account created", slog.String("account_id", account.AccountID))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account, account.InitialBalance))
}

// importAccounts godoc
// @Summary Import accounts in bulk
// @Description Persists a batch of accounts atomically, for ledger migration.
// @Tags accounts
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param accounts body dto.ImportAccountsRequest true "Accounts to import"
// @Success 201 {object} dto.ListAccountsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Financials access required"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/accounts/import [post]
func (h *accountHandler) importAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var req dto.ImportAccountsRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	accounts, err := h.accountService.ImportAccounts(c.Request.Context(), c.Param("workspace_id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to import accounts")
		return
	}

	responses := make([]dto.AccountResponse, len(accounts))
	for i, account := range accounts {
		responses[i] = dto.ToAccountResponse(&account, account.InitialBalance)
	}
	logger.Info("Accounts imported", slog.Int("count", len(accounts)))
	c.JSON(http.StatusCreated, dto.ListAccountsResponse{Accounts: responses})
}

// listAccounts godoc
// @Summary List accounts with balances
// @Description Returns every account in the workspace with its balance derived from the journal.
// @Tags accounts
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 403 {object} map[string]string "Financials access required"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	accounts, balances, err := h.accountService.ListAccounts(c.Request.Context(), c.Param("workspace_id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list accounts")
		return
	}

	responses := make([]dto.AccountResponse, len(accounts))
	for i, account := range accounts {
		balance, found := balances[account.AccountID]
		if !found {
			balance = decimal.Zero
		}
		responses[i] = dto.ToAccountResponse(&account, balance)
	}
	c.JSON(http.StatusOK, dto.ListAccountsResponse{Accounts: responses})
}

// getAccount godoc
// @Summary Get an account with its balance
// @Tags accounts
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param account_id path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/accounts/{account_id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	account, balance, err := h.accountService.GetAccountByID(c.Request.Context(), c.Param("workspace_id"), c.Param("account_id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account, balance))
}

// updateAccount godoc
// @Summary Update an account
// @Tags accounts
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param account_id path string true "Account ID"
// @Param account body dto.UpdateAccountRequest true "Fields to update"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/accounts/{account_id} [put]
func (h *accountHandler) updateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var req dto.UpdateAccountRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	if _, err := h.accountService.UpdateAccount(c.Request.Context(), c.Param("workspace_id"), c.Param("account_id"), req, userID); err != nil {
		respondServiceError(c, logger, err, "Failed to update account")
		return
	}

	// Re-read so the response carries the freshly derived balance.
	account, balance, err := h.accountService.GetAccountByID(c.Request.Context(), c.Param("workspace_id"), c.Param("account_id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account, balance))
}

// deleteAccount godoc
// @Summary Delete an account
// @Description Removes an account. Journal lines that reference it remain and surface as orphans in report diagnostics.
// @Tags accounts
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param account_id path string true "Account ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/accounts/{account_id} [delete]
func (h *accountHandler) deleteAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.accountService.DeleteAccount(c.Request.Context(), c.Param("workspace_id"), c.Param("account_id"), userID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete account")
		return
	}
	logger.Info("Account deleted", slog.String("account_id", c.Param("account_id")))
	c.Status(http.StatusNoContent)
}
