package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/agrisage/farm_management_app/internal/core/ports/services"
	"github.com/agrisage/farm_management_app/internal/dto"
	"github.com/agrisage/farm_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// tradeHandler handles supplier, customer, harvest and sale requests within a
// workspace.
type tradeHandler struct {
	tradeService portssvc.TradeSvcFacade
}

func newTradeHandler(ts portssvc.TradeSvcFacade) *tradeHandler {
	return &tradeHandler{tradeService: ts}
}

func registerTradeRoutes(rg *gin.RouterGroup, tradeService portssvc.TradeSvcFacade) {
	h := newTradeHandler(tradeService)

	suppliers := rg.Group("/suppliers")
	{
		suppliers.POST("", h.createSupplier)
		suppliers.GET("", h.listSuppliers)
		suppliers.PUT("/:supplier_id", h.updateSupplier)
		suppliers.DELETE("/:supplier_id", h.deleteSupplier)
	}

	customers := rg.Group("/customers")
	{
		customers.POST("", h.createCustomer)
		customers.GET("", h.listCustomers)
		customers.PUT("/:customer_id", h.updateCustomer)
		customers.DELETE("/:customer_id", h.deleteCustomer)
	}

	harvests := rg.Group("/harvests")
	{
		harvests.POST("", h.recordHarvest)
		harvests.GET("", h.listHarvests)
		harvests.DELETE("/:harvest_id", h.deleteHarvest)
	}

	sales := rg.Group("/sales")
	{
		sales.POST("", h.recordSale)
		sales.GET("", h.listSales)
		sales.DELETE("/:sale_id", h.deleteSale)
	}
}

// createSupplier godoc
// @Summary Add a supplier
// @Tags trade
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param supplier body dto.CreateSupplierRequest true "Supplier details"
// @Success 201 {object} dto.SupplierResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Suppliers access required"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/suppliers [post]
func (h *tradeHandler) createSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var req dto.CreateSupplierRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	supplier, err := h.tradeService.CreateSupplier(c.Request.Context(), c.Param("workspace_id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create supplier")
		return
	}
	c.JSON(http.StatusCreated, dto.ToSupplierResponse(supplier))
}

// listSuppliers godoc
// @Summary List suppliers
// @Tags trade
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Success 200 {array} dto.SupplierResponse
// @Failure 403 {object} map[string]string "Suppliers access required"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/suppliers [get]
func (h *tradeHandler) listSuppliers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	suppliers, err := h.tradeService.ListSuppliers(c.Request.Context(), c.Param("workspace_id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list suppliers")
		return
	}

	responses := make([]dto.SupplierResponse, len(suppliers))
	for i, supplier := range suppliers {
		responses[i] = dto.ToSupplierResponse(&supplier)
	}
	c.JSON(http.StatusOK, responses)
}

// updateSupplier godoc
// @Summary Update a supplier
// @Tags trade
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param supplier_id path string true "Supplier ID"
// @Param supplier body dto.UpdateSupplierRequest true "Fields to update"
// @Success 200 {object} dto.SupplierResponse
// @Failure 404 {object} map[string]string "Supplier not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/suppliers/{supplier_id} [put]
func (h *tradeHandler) updateSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var req dto.UpdateSupplierRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	supplier, err := h.tradeService.UpdateSupplier(c.Request.Context(), c.Param("workspace_id"), c.Param("supplier_id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update supplier")
		return
	}
	c.JSON(http.StatusOK, dto.ToSupplierResponse(supplier))
}

// deleteSupplier godoc
// @Summary Delete a supplier
// @Tags trade
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param supplier_id path string true "Supplier ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Supplier not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/suppliers/{supplier_id} [delete]
func (h *tradeHandler) deleteSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.tradeService.DeleteSupplier(c.Request.Context(), c.Param("workspace_id"), c.Param("supplier_id"), userID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete supplier")
		return
	}
	c.Status(http.StatusNoContent)
}

// createCustomer godoc
// @Summary Add a customer
// @Tags trade
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param customer body dto.CreateCustomerRequest true "Customer details"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Harvest & Sales access required"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/customers [post]
func (h *tradeHandler) createCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var req dto.CreateCustomerRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	customer, err := h.tradeService.CreateCustomer(c.Request.Context(), c.Param("workspace_id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create customer")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCustomerResponse(customer))
}

// listCustomers godoc
// @Summary List customers
// @Tags trade
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Success 200 {array} dto.CustomerResponse
// @Failure 403 {object} map[string]string "Harvest & Sales access required"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/customers [get]
func (h *tradeHandler) listCustomers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	customers, err := h.tradeService.ListCustomers(c.Request.Context(), c.Param("workspace_id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list customers")
		return
	}

	responses := make([]dto.CustomerResponse, len(customers))
	for i, customer := range customers {
		responses[i] = dto.ToCustomerResponse(&customer)
	}
	c.JSON(http.StatusOK, responses)
}

// updateCustomer godoc
// @Summary Update a customer
// @Tags trade
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param customer_id path string true "Customer ID"
// @Param customer body dto.UpdateCustomerRequest true "Fields to update"
// @Success 200 {object} dto.CustomerResponse
// @Failure 404 {object} map[string]string "Customer not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/customers/{customer_id} [put]
func (h *tradeHandler) updateCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var req dto.UpdateCustomerRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	customer, err := h.tradeService.UpdateCustomer(c.Request.Context(), c.Param("workspace_id"), c.Param("customer_id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update customer")
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// deleteCustomer godoc
// @Summary Delete a customer
// @Tags trade
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param customer_id path string true "Customer ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Customer not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/customers/{customer_id} [delete]
func (h *tradeHandler) deleteCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.tradeService.DeleteCustomer(c.Request.Context(), c.Param("workspace_id"), c.Param("customer_id"), userID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete customer")
		return
	}
	c.Status(http.StatusNoContent)
}

// recordHarvest godoc
// @Summary Record a harvest lot
// @Description Records produce brought in from a plot. The full quantity starts as available for sale.
// @Tags trade
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param harvest body dto.CreateHarvestRequest true "Harvest details"
// @Success 201 {object} dto.HarvestResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Harvest & Sales access required"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/harvests [post]
func (h *tradeHandler) recordHarvest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var req dto.CreateHarvestRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	harvest, err := h.tradeService.RecordHarvest(c.Request.Context(), c.Param("workspace_id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record harvest")
		return
	}

	logger.Info("Harvest recorded", slog.String("harvest_id", harvest.HarvestID))
	c.JSON(http.StatusCreated, dto.ToHarvestResponse(harvest))
}

// listHarvests godoc
// @Summary List harvest lots
// @Tags trade
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Success 200 {array} dto.HarvestResponse
// @Failure 403 {object} map[string]string "Harvest & Sales access required"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/harvests [get]
func (h *tradeHandler) listHarvests(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	harvests, err := h.tradeService.ListHarvests(c.Request.Context(), c.Param("workspace_id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list harvests")
		return
	}

	responses := make([]dto.HarvestResponse, len(harvests))
	for i, harvest := range harvests {
		responses[i] = dto.ToHarvestResponse(&harvest)
	}
	c.JSON(http.StatusOK, responses)
}

// deleteHarvest godoc
// @Summary Delete a harvest lot
// @Tags trade
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param harvest_id path string true "Harvest ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Harvest not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/harvests/{harvest_id} [delete]
func (h *tradeHandler) deleteHarvest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.tradeService.DeleteHarvest(c.Request.Context(), c.Param("workspace_id"), c.Param("harvest_id"), userID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete harvest")
		return
	}
	c.Status(http.StatusNoContent)
}

// recordSale godoc
// @Summary Record a sale
// @Description Records produce sold against a harvest lot. Assigns the next invoice number, decrements the lot and posts a linked journal entry when ledger accounts are supplied.
// @Tags trade
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param sale body dto.CreateSaleRequest true "Sale details"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} map[string]string "Invalid input or insufficient remaining quantity"
// @Failure 404 {object} map[string]string "Customer or harvest not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/sales [post]
func (h *tradeHandler) recordSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var req dto.CreateSaleRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	sale, err := h.tradeService.RecordSale(c.Request.Context(), c.Param("workspace_id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record sale")
		return
	}

	logger.Info("Sale recorded", slog.String("sale_id", sale.SaleID), slog.String("invoice", sale.InvoiceNumber))
	c.JSON(http.StatusCreated, dto.ToSaleResponse(sale))
}

// listSales godoc
// @Summary List sales
// @Tags trade
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Success 200 {array} dto.SaleResponse
// @Failure 403 {object} map[string]string "Harvest & Sales access required"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/sales [get]
func (h *tradeHandler) listSales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	sales, err := h.tradeService.ListSales(c.Request.Context(), c.Param("workspace_id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list sales")
		return
	}

	responses := make([]dto.SaleResponse, len(sales))
	for i, sale := range sales {
		responses[i] = dto.ToSaleResponse(&sale)
	}
	c.JSON(http.StatusOK, responses)
}

// deleteSale godoc
// @Summary Delete a sale
// @Description Deletes a sale, removes its linked journal entry and restores the harvest lot's remaining quantity.
// @Tags trade
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param sale_id path string true "Sale ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Sale not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/sales/{sale_id} [delete]
func (h *tradeHandler) deleteSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.tradeService.DeleteSale(c.Request.Context(), c.Param("workspace_id"), c.Param("sale_id"), userID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete sale")
		return
	}
	c.Status(http.StatusNoContent)
}
