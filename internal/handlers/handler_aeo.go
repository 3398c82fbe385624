package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/agrisage/farm_management_app/internal/core/ports/services"
	"github.com/agrisage/farm_management_app/internal/dto"
	"github.com/agrisage/farm_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// aeoHandler handles extension-officer outreach requests within a workspace.
type aeoHandler struct {
	aeoService portssvc.AEOSvcFacade
}

func newAEOHandler(as portssvc.AEOSvcFacade) *aeoHandler {
	return &aeoHandler{aeoService: as}
}

func registerAEORoutes(rg *gin.RouterGroup, aeoService portssvc.AEOSvcFacade) {
	h := newAEOHandler(aeoService)

	farmers := rg.Group("/farmers")
	{
		farmers.POST("", h.createFarmer)
		farmers.GET("", h.listFarmers)
		farmers.GET("/:farmer_id", h.getFarmer)
		farmers.PUT("/:farmer_id", h.updateFarmer)
		farmers.DELETE("/:farmer_id", h.deleteFarmer)
	}

	interactions := rg.Group("/interactions")
	{
		interactions.POST("", h.recordInteraction)
		interactions.GET("", h.listInteractions)
	}

	articles := rg.Group("/kb-articles")
	{
		articles.POST("", h.createArticle)
		articles.GET("", h.listArticles)
		articles.PUT("/:article_id", h.updateArticle)
		articles.DELETE("/:article_id", h.deleteArticle)
	}
}

// createFarmer godoc
// @Summary Register an outreach farmer
// @Tags aeo
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param farmer body dto.CreateFarmerRequest true "Farmer details"
// @Success 201 {object} dto.FarmerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "AEO access required"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/farmers [post]
func (h *aeoHandler) createFarmer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var req dto.CreateFarmerRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	farmer, err := h.aeoService.CreateFarmer(c.Request.Context(), c.Param("workspace_id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to register farmer")
		return
	}

	logger.Info("Farmer registered", slog.String("farmer_id", farmer.FarmerID))
	c.JSON(http.StatusCreated, dto.ToFarmerResponse(farmer))
}

// listFarmers godoc
// @Summary List outreach farmers
// @Tags aeo
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Success 200 {array} dto.FarmerResponse
// @Failure 403 {object} map[string]string "AEO access required"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/farmers [get]
func (h *aeoHandler) listFarmers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	farmers, err := h.aeoService.ListFarmers(c.Request.Context(), c.Param("workspace_id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list farmers")
		return
	}

	responses := make([]dto.FarmerResponse, len(farmers))
	for i, farmer := range farmers {
		responses[i] = dto.ToFarmerResponse(&farmer)
	}
	c.JSON(http.StatusOK, responses)
}

// getFarmer godoc
// @Summary Get a farmer
// @Tags aeo
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param farmer_id path string true "Farmer ID"
// @Success 200 {object} dto.FarmerResponse
// @Failure 404 {object} map[string]string "Farmer not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/farmers/{farmer_id} [get]
func (h *aeoHandler) getFarmer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	farmer, err := h.aeoService.GetFarmerByID(c.Request.Context(), c.Param("workspace_id"), c.Param("farmer_id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve farmer")
		return
	}
	c.JSON(http.StatusOK, dto.ToFarmerResponse(farmer))
}

// updateFarmer godoc
// @Summary Update a farmer record
// @Tags aeo
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param farmer_id path string true "Farmer ID"
// @Param farmer body dto.UpdateFarmerRequest true "Fields to update"
// @Success 200 {object} dto.FarmerResponse
// @Failure 404 {object} map[string]string "Farmer not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/farmers/{farmer_id} [put]
func (h *aeoHandler) updateFarmer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var req dto.UpdateFarmerRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	farmer, err := h.aeoService.UpdateFarmer(c.Request.Context(), c.Param("workspace_id"), c.Param("farmer_id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update farmer")
		return
	}
	c.JSON(http.StatusOK, dto.ToFarmerResponse(farmer))
}

// deleteFarmer godoc
// @Summary Delete a farmer record
// @Tags aeo
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param farmer_id path string true "Farmer ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Farmer not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/farmers/{farmer_id} [delete]
func (h *aeoHandler) deleteFarmer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.aeoService.DeleteFarmer(c.Request.Context(), c.Param("workspace_id"), c.Param("farmer_id"), userID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete farmer")
		return
	}
	c.Status(http.StatusNoContent)
}

// recordInteraction godoc
// @Summary Record a farmer interaction
// @Description Records a visit, call, meeting or training with a farmer. The caller is stamped as the attending officer.
// @Tags aeo
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param interaction body dto.CreateInteractionRequest true "Interaction details"
// @Success 201 {object} dto.InteractionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Farmer not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/interactions [post]
func (h *aeoHandler) recordInteraction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var req dto.CreateInteractionRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	interaction, err := h.aeoService.RecordInteraction(c.Request.Context(), c.Param("workspace_id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record interaction")
		return
	}
	c.JSON(http.StatusCreated, dto.ToInteractionResponse(interaction))
}

// listInteractions godoc
// @Summary List farmer interactions
// @Description Lists interactions for the workspace, optionally filtered by farmer.
// @Tags aeo
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param farmer_id query string false "Filter by farmer ID"
// @Success 200 {array} dto.InteractionResponse
// @Failure 403 {object} map[string]string "AEO access required"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/interactions [get]
func (h *aeoHandler) listInteractions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	interactions, err := h.aeoService.ListInteractions(c.Request.Context(), c.Param("workspace_id"), c.Query("farmer_id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list interactions")
		return
	}

	responses := make([]dto.InteractionResponse, len(interactions))
	for i, interaction := range interactions {
		responses[i] = dto.ToInteractionResponse(&interaction)
	}
	c.JSON(http.StatusOK, responses)
}

// createArticle godoc
// @Summary Publish a knowledge-base article
// @Tags aeo
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param article body dto.CreateArticleRequest true "Article details"
// @Success 201 {object} dto.ArticleResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "AEO access required"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/kb-articles [post]
func (h *aeoHandler) createArticle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var req dto.CreateArticleRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	article, err := h.aeoService.CreateArticle(c.Request.Context(), c.Param("workspace_id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to publish article")
		return
	}
	c.JSON(http.StatusCreated, dto.ToArticleResponse(article))
}

// listArticles godoc
// @Summary List knowledge-base articles
// @Tags aeo
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Success 200 {array} dto.ArticleResponse
// @Failure 403 {object} map[string]string "AEO access required"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/kb-articles [get]
func (h *aeoHandler) listArticles(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	articles, err := h.aeoService.ListArticles(c.Request.Context(), c.Param("workspace_id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list articles")
		return
	}

	responses := make([]dto.ArticleResponse, len(articles))
	for i, article := range articles {
		responses[i] = dto.ToArticleResponse(&article)
	}
	c.JSON(http.StatusOK, responses)
}

// updateArticle godoc
// @Summary Edit a knowledge-base article
// @Tags aeo
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param article_id path string true "Article ID"
// @Param article body dto.UpdateArticleRequest true "Fields to update"
// @Success 200 {object} dto.ArticleResponse
// @Failure 404 {object} map[string]string "Article not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/kb-articles/{article_id} [put]
func (h *aeoHandler) updateArticle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var req dto.UpdateArticleRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	article, err := h.aeoService.UpdateArticle(c.Request.Context(), c.Param("workspace_id"), c.Param("article_id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update article")
		return
	}
	c.JSON(http.StatusOK, dto.ToArticleResponse(article))
}

// deleteArticle godoc
// @Summary Delete a knowledge-base article
// @Tags aeo
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param article_id path string true "Article ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Article not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/kb-articles/{article_id} [delete]
func (h *aeoHandler) deleteArticle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.aeoService.DeleteArticle(c.Request.Context(), c.Param("workspace_id"), c.Param("article_id"), userID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete article")
		return
	}
	c.Status(http.StatusNoContent)
}
