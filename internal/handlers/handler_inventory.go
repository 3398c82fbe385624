package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/agrisage/farm_management_app/internal/core/ports/services"
	"github.com/agrisage/farm_management_app/internal/dto"
	"github.com/agrisage/farm_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// inventoryHandler handles stock item requests within a workspace.
type inventoryHandler struct {
	inventoryService portssvc.InventorySvcFacade
}

func newInventoryHandler(is portssvc.InventorySvcFacade) *inventoryHandler {
	return &inventoryHandler{inventoryService: is}
}

func registerInventoryRoutes(rg *gin.RouterGroup, inventoryService portssvc.InventorySvcFacade) {
	h := newInventoryHandler(inventoryService)

	inventory := rg.Group("/inventory")
	{
		inventory.POST("", h.createItem)
		inventory.GET("", h.listItems)
		inventory.GET("/low-stock", h.listLowStockItems)
		inventory.GET("/:inventory_id", h.getItem)
		inventory.PUT("/:inventory_id", h.updateItem)
		inventory.DELETE("/:inventory_id", h.deleteItem)
	}
}

// createItem godoc
// @Summary Stock an inventory item
// @Tags inventory
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param item body dto.CreateInventoryItemRequest true "Item details"
// @Success 201 {object} dto.InventoryItemResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Inventory access required"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/inventory [post]
func (h *inventoryHandler) createItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var req dto.CreateInventoryItemRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	item, err := h.inventoryService.CreateItem(c.Request.Context(), c.Param("workspace_id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create inventory item")
		return
	}

	logger.Info("Inventory item created", slog.String("inventory_id", item.InventoryID))
	c.JSON(http.StatusCreated, dto.ToInventoryItemResponse(item))
}

// listItems godoc
// @Summary List inventory items
// @Tags inventory
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Success 200 {object} dto.ListInventoryResponse
// @Failure 403 {object} map[string]string "Inventory access required"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/inventory [get]
func (h *inventoryHandler) listItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	items, err := h.inventoryService.ListItems(c.Request.Context(), c.Param("workspace_id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list inventory")
		return
	}
	c.JSON(http.StatusOK, dto.ToListInventoryResponse(items))
}

// listLowStockItems godoc
// @Summary List items at or below their reorder point
// @Tags inventory
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Success 200 {object} dto.ListInventoryResponse
// @Failure 403 {object} map[string]string "Inventory access required"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/inventory/low-stock [get]
func (h *inventoryHandler) listLowStockItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	items, err := h.inventoryService.ListLowStockItems(c.Request.Context(), c.Param("workspace_id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list low stock items")
		return
	}
	c.JSON(http.StatusOK, dto.ToListInventoryResponse(items))
}

// getItem godoc
// @Summary Get an inventory item
// @Tags inventory
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param inventory_id path string true "Inventory item ID"
// @Success 200 {object} dto.InventoryItemResponse
// @Failure 404 {object} map[string]string "Item not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/inventory/{inventory_id} [get]
func (h *inventoryHandler) getItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	item, err := h.inventoryService.GetItemByID(c.Request.Context(), c.Param("workspace_id"), c.Param("inventory_id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve inventory item")
		return
	}
	c.JSON(http.StatusOK, dto.ToInventoryItemResponse(item))
}

// updateItem godoc
// @Summary Update an inventory item
// @Tags inventory
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param inventory_id path string true "Inventory item ID"
// @Param item body dto.UpdateInventoryItemRequest true "Fields to update"
// @Success 200 {object} dto.InventoryItemResponse
// @Failure 404 {object} map[string]string "Item not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/inventory/{inventory_id} [put]
func (h *inventoryHandler) updateItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var req dto.UpdateInventoryItemRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	item, err := h.inventoryService.UpdateItem(c.Request.Context(), c.Param("workspace_id"), c.Param("inventory_id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update inventory item")
		return
	}
	c.JSON(http.StatusOK, dto.ToInventoryItemResponse(item))
}

// deleteItem godoc
// @Summary Delete an inventory item
// @Tags inventory
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param inventory_id path string true "Inventory item ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Item not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/inventory/{inventory_id} [delete]
func (h *inventoryHandler) deleteItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.inventoryService.DeleteItem(c.Request.Context(), c.Param("workspace_id"), c.Param("inventory_id"), userID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete inventory item")
		return
	}
	c.Status(http.StatusNoContent)
}
