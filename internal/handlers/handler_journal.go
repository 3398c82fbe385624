package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/agrisage/farm_management_app/internal/core/ports/services"
	"github.com/agrisage/farm_management_app/internal/dto"
	"github.com/agrisage/farm_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler handles journal entry requests within a workspace.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

func newJournalHandler(js portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{journalService: js}
}

func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	journal := rg.Group("/journal-entries")
	{
		journal.POST("", h.createEntry)
		journal.POST("/import", h.importEntries)
		journal.GET("", h.listEntries)
		journal.GET("/:entry_id", h.getEntry)
		journal.PUT("/:entry_id", h.updateEntry)
		journal.DELETE("/:entry_id", h.deleteEntry)
	}
}

// createEntry godoc
// @Summary Record a journal entry
// @Description Records an entry. Unbalanced entries are accepted unless validateBalance is set; imbalances surface in report diagnostics.
// @Tags journal
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param entry body dto.CreateJournalEntryRequest true "Entry with debit/credit lines"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Invalid input or unbalanced under strict validation"
// @Failure 403 {object} map[string]string "Financials access required"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/journal-entries [post]
func (h *journalHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var req dto.CreateJournalEntryRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	entry, err := h.journalService.CreateEntry(c.Request.Context(), c.Param("workspace_id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record journal entry")
		return
	}

	logger.Info("Journal entry recorded", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

// importEntries godoc
// @Summary Import journal entries in bulk
// @Description Persists a batch of entries atomically. Balance is never enforced on import.
// @Tags journal
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param entries body dto.ImportJournalEntriesRequest true "Entries to import"
// @Success 201 {object} dto.ListJournalEntriesResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Financials access required"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/journal-entries/import [post]
func (h *journalHandler) importEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var req dto.ImportJournalEntriesRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	entries, err := h.journalService.ImportEntries(c.Request.Context(), c.Param("workspace_id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to import journal entries")
		return
	}

	logger.Info("Journal entries imported", slog.Int("count", len(entries)))
	c.JSON(http.StatusCreated, dto.ToListJournalEntriesResponse(entries))
}

// listEntries godoc
// @Summary List journal entries
// @Tags journal
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Success 200 {object} dto.ListJournalEntriesResponse
// @Failure 403 {object} map[string]string "Financials access required"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/journal-entries [get]
func (h *journalHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	entries, err := h.journalService.ListEntries(c.Request.Context(), c.Param("workspace_id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list journal entries")
		return
	}
	c.JSON(http.StatusOK, dto.ToListJournalEntriesResponse(entries))
}

// getEntry godoc
// @Summary Get a journal entry
// @Tags journal
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param entry_id path string true "Entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/journal-entries/{entry_id} [get]
func (h *journalHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	entry, err := h.journalService.GetEntryByID(c.Request.Context(), c.Param("workspace_id"), c.Param("entry_id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// updateEntry godoc
// @Summary Update a journal entry
// @Description Replaces an entry wholesale, lines included. Original authorship is preserved.
// @Tags journal
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param entry_id path string true "Entry ID"
// @Param entry body dto.UpdateJournalEntryRequest true "Replacement entry"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/journal-entries/{entry_id} [put]
func (h *journalHandler) updateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var req dto.UpdateJournalEntryRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	entry, err := h.journalService.UpdateEntry(c.Request.Context(), c.Param("workspace_id"), c.Param("entry_id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// deleteEntry godoc
// @Summary Delete a journal entry
// @Tags journal
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param entry_id path string true "Entry ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Entry not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/journal-entries/{entry_id} [delete]
func (h *journalHandler) deleteEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.journalService.DeleteEntry(c.Request.Context(), c.Param("workspace_id"), c.Param("entry_id"), userID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete journal entry")
		return
	}
	logger.Info("Journal entry deleted", slog.String("entry_id", c.Param("entry_id")))
	c.Status(http.StatusNoContent)
}
