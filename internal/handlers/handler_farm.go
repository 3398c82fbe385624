package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/agrisage/farm_management_app/internal/core/ports/services"
	"github.com/agrisage/farm_management_app/internal/dto"
	"github.com/agrisage/farm_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// farmHandler handles plot, season and task requests within a workspace.
type farmHandler struct {
	farmService portssvc.FarmSvcFacade
}

func newFarmHandler(fs portssvc.FarmSvcFacade) *farmHandler {
	return &farmHandler{farmService: fs}
}

func registerFarmRoutes(rg *gin.RouterGroup, farmService portssvc.FarmSvcFacade) {
	h := newFarmHandler(farmService)

	plots := rg.Group("/plots")
	{
		plots.POST("", h.createPlot)
		plots.GET("", h.listPlots)
		plots.GET("/:plot_id", h.getPlot)
		plots.PUT("/:plot_id", h.updatePlot)
		plots.DELETE("/:plot_id", h.deletePlot)
	}

	seasons := rg.Group("/seasons")
	{
		seasons.POST("", h.createSeason)
		seasons.GET("", h.listSeasons)
		seasons.PUT("/:season_id", h.updateSeason)
		seasons.DELETE("/:season_id", h.deleteSeason)
	}

	tasks := rg.Group("/tasks")
	{
		tasks.POST("", h.createTask)
		tasks.GET("", h.listTasks)
		tasks.GET("/:task_id", h.getTask)
		tasks.PUT("/:task_id", h.updateTask)
		tasks.DELETE("/:task_id", h.deleteTask)
		tasks.POST("/:task_id/comments", h.addTaskComment)
		tasks.POST("/:task_id/consume-inventory", h.consumeInventory)
	}
}

// createPlot godoc
// @Summary Register a plot
// @Tags plots
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param plot body dto.CreatePlotRequest true "Plot details"
// @Success 201 {object} dto.PlotResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Plots & Seasons access required"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/plots [post]
func (h *farmHandler) createPlot(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var req dto.CreatePlotRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	plot, err := h.farmService.CreatePlot(c.Request.Context(), c.Param("workspace_id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create plot")
		return
	}

	logger.Info("Plot created", slog.String("plot_id", plot.PlotID))
	c.JSON(http.StatusCreated, dto.ToPlotResponse(plot))
}

// listPlots godoc
// @Summary List plots
// @Tags plots
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Success 200 {array} dto.PlotResponse
// @Failure 403 {object} map[string]string "Plots & Seasons access required"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/plots [get]
func (h *farmHandler) listPlots(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	plots, err := h.farmService.ListPlots(c.Request.Context(), c.Param("workspace_id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list plots")
		return
	}

	responses := make([]dto.PlotResponse, len(plots))
	for i, plot := range plots {
		responses[i] = dto.ToPlotResponse(&plot)
	}
	c.JSON(http.StatusOK, responses)
}

// getPlot godoc
// @Summary Get a plot
// @Tags plots
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param plot_id path string true "Plot ID"
// @Success 200 {object} dto.PlotResponse
// @Failure 404 {object} map[string]string "Plot not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/plots/{plot_id} [get]
func (h *farmHandler) getPlot(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	plot, err := h.farmService.GetPlotByID(c.Request.Context(), c.Param("workspace_id"), c.Param("plot_id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve plot")
		return
	}
	c.JSON(http.StatusOK, dto.ToPlotResponse(plot))
}

// updatePlot godoc
// @Summary Update a plot
// @Tags plots
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param plot_id path string true "Plot ID"
// @Param plot body dto.UpdatePlotRequest true "Fields to update"
// @Success 200 {object} dto.PlotResponse
// @Failure 404 {object} map[string]string "Plot not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/plots/{plot_id} [put]
func (h *farmHandler) updatePlot(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var req dto.UpdatePlotRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	plot, err := h.farmService.UpdatePlot(c.Request.Context(), c.Param("workspace_id"), c.Param("plot_id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update plot")
		return
	}
	c.JSON(http.StatusOK, dto.ToPlotResponse(plot))
}

// deletePlot godoc
// @Summary Delete a plot
// @Tags plots
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param plot_id path string true "Plot ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Plot not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/plots/{plot_id} [delete]
func (h *farmHandler) deletePlot(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.farmService.DeletePlot(c.Request.Context(), c.Param("workspace_id"), c.Param("plot_id"), userID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete plot")
		return
	}
	c.Status(http.StatusNoContent)
}

// createSeason godoc
// @Summary Open a season
// @Tags seasons
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param season body dto.CreateSeasonRequest true "Season details"
// @Success 201 {object} dto.SeasonResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Plots & Seasons access required"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/seasons [post]
func (h *farmHandler) createSeason(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var req dto.CreateSeasonRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	season, err := h.farmService.CreateSeason(c.Request.Context(), c.Param("workspace_id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create season")
		return
	}
	c.JSON(http.StatusCreated, dto.ToSeasonResponse(season))
}

// listSeasons godoc
// @Summary List seasons
// @Tags seasons
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Success 200 {array} dto.SeasonResponse
// @Failure 403 {object} map[string]string "Plots & Seasons access required"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/seasons [get]
func (h *farmHandler) listSeasons(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	seasons, err := h.farmService.ListSeasons(c.Request.Context(), c.Param("workspace_id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list seasons")
		return
	}

	responses := make([]dto.SeasonResponse, len(seasons))
	for i, season := range seasons {
		responses[i] = dto.ToSeasonResponse(&season)
	}
	c.JSON(http.StatusOK, responses)
}

// updateSeason godoc
// @Summary Update a season
// @Tags seasons
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param season_id path string true "Season ID"
// @Param season body dto.UpdateSeasonRequest true "Fields to update"
// @Success 200 {object} dto.SeasonResponse
// @Failure 404 {object} map[string]string "Season not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/seasons/{season_id} [put]
func (h *farmHandler) updateSeason(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var req dto.UpdateSeasonRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	season, err := h.farmService.UpdateSeason(c.Request.Context(), c.Param("workspace_id"), c.Param("season_id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update season")
		return
	}
	c.JSON(http.StatusOK, dto.ToSeasonResponse(season))
}

// deleteSeason godoc
// @Summary Delete a season
// @Tags seasons
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param season_id path string true "Season ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Season not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/seasons/{season_id} [delete]
func (h *farmHandler) deleteSeason(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.farmService.DeleteSeason(c.Request.Context(), c.Param("workspace_id"), c.Param("season_id"), userID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete season")
		return
	}
	c.Status(http.StatusNoContent)
}

// createTask godoc
// @Summary Create an operations task
// @Tags tasks
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param task body dto.CreateTaskRequest true "Task details"
// @Success 201 {object} dto.TaskResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Operations access required"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/tasks [post]
func (h *farmHandler) createTask(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var req dto.CreateTaskRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	task, err := h.farmService.CreateTask(c.Request.Context(), c.Param("workspace_id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create task")
		return
	}

	logger.Info("Task created", slog.String("task_id", task.TaskID))
	c.JSON(http.StatusCreated, dto.ToTaskResponse(task))
}

// listTasks godoc
// @Summary List tasks
// @Tags tasks
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Success 200 {array} dto.TaskResponse
// @Failure 403 {object} map[string]string "Operations access required"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/tasks [get]
func (h *farmHandler) listTasks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	tasks, err := h.farmService.ListTasks(c.Request.Context(), c.Param("workspace_id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list tasks")
		return
	}

	responses := make([]dto.TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = dto.ToTaskResponse(&task)
	}
	c.JSON(http.StatusOK, responses)
}

// getTask godoc
// @Summary Get a task
// @Tags tasks
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param task_id path string true "Task ID"
// @Success 200 {object} dto.TaskResponse
// @Failure 404 {object} map[string]string "Task not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/tasks/{task_id} [get]
func (h *farmHandler) getTask(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	task, err := h.farmService.GetTaskByID(c.Request.Context(), c.Param("workspace_id"), c.Param("task_id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve task")
		return
	}
	c.JSON(http.StatusOK, dto.ToTaskResponse(task))
}

// updateTask godoc
// @Summary Update a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param task_id path string true "Task ID"
// @Param task body dto.UpdateTaskRequest true "Fields to update"
// @Success 200 {object} dto.TaskResponse
// @Failure 404 {object} map[string]string "Task not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/tasks/{task_id} [put]
func (h *farmHandler) updateTask(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var req dto.UpdateTaskRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	task, err := h.farmService.UpdateTask(c.Request.Context(), c.Param("workspace_id"), c.Param("task_id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update task")
		return
	}
	c.JSON(http.StatusOK, dto.ToTaskResponse(task))
}

// deleteTask godoc
// @Summary Delete a task
// @Tags tasks
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param task_id path string true "Task ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Task not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/tasks/{task_id} [delete]
func (h *farmHandler) deleteTask(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.farmService.DeleteTask(c.Request.Context(), c.Param("workspace_id"), c.Param("task_id"), userID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete task")
		return
	}
	c.Status(http.StatusNoContent)
}

// addTaskComment godoc
// @Summary Comment on a task
// @Description Appends a comment authored by the caller and returns the updated task.
// @Tags tasks
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param task_id path string true "Task ID"
// @Param comment body dto.AddTaskCommentRequest true "Comment content"
// @Success 200 {object} dto.TaskResponse
// @Failure 404 {object} map[string]string "Task not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/tasks/{task_id}/comments [post]
func (h *farmHandler) addTaskComment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var req dto.AddTaskCommentRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	task, err := h.farmService.AddTaskComment(c.Request.Context(), c.Param("workspace_id"), c.Param("task_id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to add comment")
		return
	}
	c.JSON(http.StatusOK, dto.ToTaskResponse(task))
}

// consumeInventory godoc
// @Summary Record inventory use on a task
// @Description Records stock drawn by the task and decrements the inventory item's quantity.
// @Tags tasks
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param task_id path string true "Task ID"
// @Param consumption body dto.ConsumeInventoryRequest true "Item and quantity"
// @Success 200 {object} dto.TaskResponse
// @Failure 400 {object} map[string]string "Insufficient stock"
// @Failure 404 {object} map[string]string "Task or item not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/tasks/{task_id}/consume-inventory [post]
func (h *farmHandler) consumeInventory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var req dto.ConsumeInventoryRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	task, err := h.farmService.ConsumeInventory(c.Request.Context(), c.Param("workspace_id"), c.Param("task_id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record inventory use")
		return
	}

	logger.Info("Inventory consumed on task", slog.String("task_id", c.Param("task_id")), slog.String("inventory_id", req.InventoryID))
	c.JSON(http.StatusOK, dto.ToTaskResponse(task))
}
