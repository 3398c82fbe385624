package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/agrisage/farm_management_app/internal/core/ports/services"
	"github.com/agrisage/farm_management_app/internal/dto"
	"github.com/agrisage/farm_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler serves derived financial reports for a workspace.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.trialBalance)
		reports.GET("/income-statement", h.incomeStatement)
		reports.GET("/balance-sheet", h.balanceSheet)
		reports.GET("/expenses-by-category", h.expensesByCategory)
		reports.GET("/profitability", h.profitability)
	}
}

// parseDateQuery reads an optional RFC3339 date query parameter.
func parseDateQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		// Also accept a plain date.
		t, err = time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " date: " + raw})
			return nil, false
		}
	}
	return &t, true
}

// trialBalance godoc
// @Summary Trial balance report
// @Description Per-account raw debit and credit totals. Diagnostics flag orphaned lines and unbalanced entries.
// @Tags reports
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 403 {object} map[string]string "Financials access required"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/reports/trial-balance [get]
func (h *reportingHandler) trialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	report, diag, err := h.reportingService.TrialBalance(c.Request.Context(), c.Param("workspace_id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute trial balance")
		return
	}
	c.JSON(http.StatusOK, dto.TrialBalanceResponse{
		Report:      *report,
		Diagnostics: dto.ToLedgerDiagnosticsDTO(*diag),
	})
}

// incomeStatement godoc
// @Summary Income statement report
// @Description Nets income against expenses, optionally restricted to entries between from and to.
// @Tags reports
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param from query string false "Period start (RFC3339 or YYYY-MM-DD)"
// @Param to query string false "Period end (RFC3339 or YYYY-MM-DD)"
// @Success 200 {object} dto.IncomeStatementResponse
// @Failure 403 {object} map[string]string "Financials access required"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/reports/income-statement [get]
func (h *reportingHandler) incomeStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	from, ok := parseDateQuery(c, "from")
	if !ok {
		return
	}
	to, ok := parseDateQuery(c, "to")
	if !ok {
		return
	}

	report, err := h.reportingService.IncomeStatement(c.Request.Context(), c.Param("workspace_id"), userID, from, to)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute income statement")
		return
	}
	c.JSON(http.StatusOK, dto.IncomeStatementResponse{Report: *report})
}

// balanceSheet godoc
// @Summary Balance sheet report
// @Description Groups balances into assets, liabilities and equity as of the optional date. Net income to date rolls into equity as retained earnings.
// @Tags reports
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param as_of query string false "Cutoff date (RFC3339 or YYYY-MM-DD)"
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 403 {object} map[string]string "Financials access required"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/reports/balance-sheet [get]
func (h *reportingHandler) balanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	asOf, ok := parseDateQuery(c, "as_of")
	if !ok {
		return
	}

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), c.Param("workspace_id"), userID, asOf)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute balance sheet")
		return
	}
	c.JSON(http.StatusOK, dto.BalanceSheetResponse{Report: *report})
}

// expensesByCategory godoc
// @Summary Expenses grouped by category
// @Description Sums expense debits grouped by journal entry category.
// @Tags reports
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Success 200 {object} dto.ExpenseByCategoryResponse
// @Failure 403 {object} map[string]string "Financials access required"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/reports/expenses-by-category [get]
func (h *reportingHandler) expensesByCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	categories, err := h.reportingService.ExpenseByCategory(c.Request.Context(), c.Param("workspace_id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute expense report")
		return
	}
	c.JSON(http.StatusOK, dto.ExpenseByCategoryResponse{Categories: categories})
}

// profitability godoc
// @Summary Plot or season profitability
// @Description Nets income against expenses for journal lines tagged with the given plot and/or season.
// @Tags reports
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param plot_id query string false "Plot ID"
// @Param season_id query string false "Season ID"
// @Success 200 {object} dto.ProfitabilityResponse
// @Failure 403 {object} map[string]string "Financials access required"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/reports/profitability [get]
func (h *reportingHandler) profitability(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	report, err := h.reportingService.Profitability(c.Request.Context(), c.Param("workspace_id"), userID, c.Query("plot_id"), c.Query("season_id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute profitability")
		return
	}
	c.JSON(http.StatusOK, dto.ProfitabilityResponse{Report: *report})
}
