package handlers

import (
	"log/slog"
	"net/http"

	"github.com/agrisage/farm_management_app/internal/core/domain"
	portssvc "github.com/agrisage/farm_management_app/internal/core/ports/services"
	"github.com/agrisage/farm_management_app/internal/dto"
	"github.com/agrisage/farm_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// workspaceHandler handles workspace, membership and feature permission
// requests.
type workspaceHandler struct {
	workspaceService portssvc.WorkspaceSvcFacade
}

func newWorkspaceHandler(ws portssvc.WorkspaceSvcFacade) *workspaceHandler {
	return &workspaceHandler{workspaceService: ws}
}

// registerWorkspaceRoutes registers workspace management routes and nests the
// per-workspace domain routes under /workspaces/:workspace_id.
func registerWorkspaceRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newWorkspaceHandler(services.Workspace)

	workspaces := rg.Group("/workspaces")
	{
		workspaces.POST("", h.createWorkspace)
		workspaces.GET("", h.listUserWorkspaces)
	}

	workspace := rg.Group("/workspaces/:workspace_id")
	{
		workspace.GET("", h.getWorkspace)
		workspace.PUT("", h.updateWorkspace)
		workspace.POST("/join", h.joinWorkspace)
		workspace.GET("/features", h.enabledFeatures)
		workspace.PUT("/features/:feature", h.updateFeaturePermission)

		members := workspace.Group("/members")
		{
			members.POST("", h.addMember)
			members.PUT("/:user_id", h.updateMemberRole)
			members.DELETE("/:user_id", h.removeMember)
		}

		registerAccountRoutes(workspace, services.Account)
		registerJournalRoutes(workspace, services.Journal)
		registerReportingRoutes(workspace, services.Reporting)
		registerFarmRoutes(workspace, services.Farm)
		registerHRRoutes(workspace, services.HR)
		registerInventoryRoutes(workspace, services.Inventory)
		registerAEORoutes(workspace, services.AEO)
		registerTradeRoutes(workspace, services.Trade)
		registerWorkspaceActivityRoutes(workspace, services.Platform)
	}
}

// createWorkspace godoc
// @Summary Create a workspace
// @Description Creates a workspace with default feature permissions; the caller becomes its owner.
// @Tags workspaces
// @Accept json
// @Produce json
// @Param workspace body dto.CreateWorkspaceRequest true "Workspace details"
// @Success 201 {object} dto.WorkspaceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /workspaces [post]
func (h *workspaceHandler) createWorkspace(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var req dto.CreateWorkspaceRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	ws, err := h.workspaceService.CreateWorkspace(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create workspace")
		return
	}

	logger.Info("Workspace created", slog.String("workspace_id", ws.WorkspaceID))
	c.JSON(http.StatusCreated, dto.ToWorkspaceResponse(ws, nil))
}

// listUserWorkspaces godoc
// @Summary List own workspaces
// @Tags workspaces
// @Produce json
// @Success 200 {object} dto.ListWorkspacesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /workspaces [get]
func (h *workspaceHandler) listUserWorkspaces(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	workspaces, err := h.workspaceService.ListUserWorkspaces(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list workspaces")
		return
	}
	c.JSON(http.StatusOK, dto.ToListWorkspacesResponse(workspaces))
}

// getWorkspace godoc
// @Summary Get a workspace
// @Description Returns workspace details including the caller's enabled feature list.
// @Tags workspaces
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Success 200 {object} dto.WorkspaceResponse
// @Failure 403 {object} map[string]string "Not a member"
// @Failure 404 {object} map[string]string "Workspace not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id} [get]
func (h *workspaceHandler) getWorkspace(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	workspaceID := c.Param("workspace_id")

	ws, err := h.workspaceService.GetWorkspaceByID(c.Request.Context(), workspaceID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve workspace")
		return
	}
	features, err := h.workspaceService.EnabledFeaturesForUser(c.Request.Context(), workspaceID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute enabled features")
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(ws, features))
}

// joinWorkspace godoc
// @Summary Join a workspace
// @Description Adds the caller to the workspace with the member role.
// @Tags workspaces
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Success 200 {object} dto.WorkspaceResponse
// @Failure 404 {object} map[string]string "Workspace not found"
// @Failure 409 {object} map[string]string "Already a member"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/join [post]
func (h *workspaceHandler) joinWorkspace(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	workspaceID := c.Param("workspace_id")

	ws, err := h.workspaceService.JoinWorkspace(c.Request.Context(), workspaceID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to join workspace")
		return
	}

	logger.Info("Workspace joined", slog.String("workspace_id", workspaceID))
	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(ws, nil))
}

// updateWorkspace godoc
// @Summary Update workspace settings
// @Tags workspaces
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param workspace body dto.UpdateWorkspaceRequest true "Fields to update"
// @Success 200 {object} dto.WorkspaceResponse
// @Failure 403 {object} map[string]string "Admin access required"
// @Security BearerAuth
// @Router /workspaces/{workspace_id} [put]
func (h *workspaceHandler) updateWorkspace(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var req dto.UpdateWorkspaceRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	ws, err := h.workspaceService.UpdateWorkspace(c.Request.Context(), c.Param("workspace_id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update workspace")
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(ws, nil))
}

// enabledFeatures godoc
// @Summary List features visible to the caller
// @Description Returns the ordered feature list the caller may access in this workspace.
// @Tags workspaces
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Success 200 {object} dto.EnabledFeaturesResponse
// @Failure 404 {object} map[string]string "Workspace not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/features [get]
func (h *workspaceHandler) enabledFeatures(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	features, err := h.workspaceService.EnabledFeaturesForUser(c.Request.Context(), c.Param("workspace_id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute enabled features")
		return
	}
	c.JSON(http.StatusOK, dto.ToEnabledFeaturesResponse(features))
}

// updateFeaturePermission godoc
// @Summary Update a feature's permission
// @Description Replaces the enabled flag and allowed roles for one feature. Admin access required.
// @Tags workspaces
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param feature path string true "Feature name"
// @Param permission body dto.UpdateFeaturePermissionRequest true "Permission entry"
// @Success 200 {object} dto.WorkspaceResponse
// @Failure 400 {object} map[string]string "Unknown feature or role"
// @Failure 403 {object} map[string]string "Admin access required"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/features/{feature} [put]
func (h *workspaceHandler) updateFeaturePermission(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var req dto.UpdateFeaturePermissionRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	feature := domain.Feature(c.Param("feature"))
	ws, err := h.workspaceService.UpdateFeaturePermission(c.Request.Context(), c.Param("workspace_id"), feature, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update feature permission")
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(ws, nil))
}

// addMember godoc
// @Summary Add a member
// @Tags workspaces
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param member body dto.AddMemberRequest true "User and role"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Admin access required"
// @Failure 404 {object} map[string]string "User not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/members [post]
func (h *workspaceHandler) addMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var req dto.AddMemberRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	if err := h.workspaceService.AddMember(c.Request.Context(), c.Param("workspace_id"), req, userID); err != nil {
		respondServiceError(c, logger, err, "Failed to add member")
		return
	}
	c.Status(http.StatusNoContent)
}

// updateMemberRole godoc
// @Summary Change a member's role
// @Description Changes a member's role. Demoting the sole owner is rejected.
// @Tags workspaces
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param user_id path string true "Target user ID"
// @Param role body dto.UpdateMemberRoleRequest true "New role"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Admin access required"
// @Failure 409 {object} map[string]string "Would leave workspace ownerless"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/members/{user_id} [put]
func (h *workspaceHandler) updateMemberRole(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var req dto.UpdateMemberRoleRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	err := h.workspaceService.UpdateMemberRole(c.Request.Context(), c.Param("workspace_id"), c.Param("user_id"), domain.Role(req.Role), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update member role")
		return
	}
	c.Status(http.StatusNoContent)
}

// removeMember godoc
// @Summary Remove a member
// @Description Removes a member. Members may remove themselves; removing others requires Admin access. Removing the sole owner is rejected.
// @Tags workspaces
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param user_id path string true "Target user ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Admin access required"
// @Failure 409 {object} map[string]string "Would leave workspace ownerless"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/members/{user_id} [delete]
func (h *workspaceHandler) removeMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	err := h.workspaceService.RemoveMember(c.Request.Context(), c.Param("workspace_id"), c.Param("user_id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to remove member")
		return
	}
	c.Status(http.StatusNoContent)
}
