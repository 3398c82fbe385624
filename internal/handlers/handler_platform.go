package handlers

import (
	"net/http"
	"strconv"

	portssvc "github.com/agrisage/farm_management_app/internal/core/ports/services"
	"github.com/agrisage/farm_management_app/internal/dto"
	"github.com/agrisage/farm_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// platformHandler serves the super-admin console and the per-workspace
// activity view.
type platformHandler struct {
	platformService portssvc.PlatformSvcFacade
}

func newPlatformHandler(ps portssvc.PlatformSvcFacade) *platformHandler {
	return &platformHandler{platformService: ps}
}

// registerWorkspaceActivityRoutes exposes the workspace activity stream to
// workspace admins.
func registerWorkspaceActivityRoutes(rg *gin.RouterGroup, platformService portssvc.PlatformSvcFacade) {
	h := newPlatformHandler(platformService)
	rg.GET("/activity", h.listWorkspaceActivity)
}

// registerPlatformRoutes exposes the super-admin console. The group must
// already carry the auth and super-admin middleware.
func registerPlatformRoutes(rg *gin.RouterGroup, platformService portssvc.PlatformSvcFacade) {
	h := newPlatformHandler(platformService)

	rg.GET("/users", h.listAllUsers)
	rg.POST("/users/:id/suspend", h.suspendUser)
	rg.POST("/users/:id/unsuspend", h.unsuspendUser)

	rg.GET("/workspaces", h.listAllWorkspaces)
	rg.POST("/workspaces/:id/suspend", h.suspendWorkspace)
	rg.POST("/workspaces/:id/unsuspend", h.unsuspendWorkspace)

	rg.GET("/config", h.getPlatformConfig)
	rg.PUT("/config/feature-flags", h.updateFeatureFlag)

	rg.GET("/audit-log", h.listAuditLog)
}

// parseLimitQuery reads an optional positive limit query parameter. Zero means
// the service default.
func parseLimitQuery(c *gin.Context) int {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}

// listWorkspaceActivity godoc
// @Summary List recent workspace activity
// @Description Returns the workspace activity stream, newest first. Admin access required.
// @Tags activity
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param limit query int false "Maximum entries to return"
// @Success 200 {object} dto.WorkspaceActivityResponse
// @Failure 403 {object} map[string]string "Admin access required"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/activity [get]
func (h *platformHandler) listWorkspaceActivity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	entries, err := h.platformService.ListWorkspaceActivity(c.Request.Context(), c.Param("workspace_id"), userID, parseLimitQuery(c))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list workspace activity")
		return
	}
	c.JSON(http.StatusOK, dto.WorkspaceActivityResponse{Entries: entries})
}

// listAllUsers godoc
// @Summary List every user on the platform
// @Tags super-admin
// @Produce json
// @Success 200 {object} dto.ListUsersResponse
// @Failure 403 {object} map[string]string "Super admin secret required"
// @Security BearerAuth
// @Router /super-admin/users [get]
func (h *platformHandler) listAllUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	users, err := h.platformService.ListAllUsers(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list users")
		return
	}
	c.JSON(http.StatusOK, dto.ToListUsersResponse(users))
}

// suspendUser godoc
// @Summary Suspend a user
// @Description Locks the user out platform-wide. The reason lands in the audit log.
// @Tags super-admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param body body dto.SuspendRequest false "Suspension reason"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "User not found"
// @Security BearerAuth
// @Router /super-admin/users/{id}/suspend [post]
func (h *platformHandler) suspendUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var req dto.SuspendRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	if err := h.platformService.SuspendUser(c.Request.Context(), userID, c.Param("id"), req.Reason); err != nil {
		respondServiceError(c, logger, err, "Failed to suspend user")
		return
	}
	c.Status(http.StatusNoContent)
}

// unsuspendUser godoc
// @Summary Unsuspend a user
// @Tags super-admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param body body dto.SuspendRequest false "Reason"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "User not found"
// @Security BearerAuth
// @Router /super-admin/users/{id}/unsuspend [post]
func (h *platformHandler) unsuspendUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var req dto.SuspendRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	if err := h.platformService.UnsuspendUser(c.Request.Context(), userID, c.Param("id"), req.Reason); err != nil {
		respondServiceError(c, logger, err, "Failed to unsuspend user")
		return
	}
	c.Status(http.StatusNoContent)
}

// listAllWorkspaces godoc
// @Summary List every workspace on the platform
// @Tags super-admin
// @Produce json
// @Success 200 {object} dto.ListWorkspacesResponse
// @Failure 403 {object} map[string]string "Super admin secret required"
// @Security BearerAuth
// @Router /super-admin/workspaces [get]
func (h *platformHandler) listAllWorkspaces(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	workspaces, err := h.platformService.ListAllWorkspaces(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list workspaces")
		return
	}
	c.JSON(http.StatusOK, dto.ToListWorkspacesResponse(workspaces))
}

// suspendWorkspace godoc
// @Summary Suspend a workspace
// @Description Freezes the workspace; feature authorization fails closed for every member while suspended.
// @Tags super-admin
// @Accept json
// @Produce json
// @Param id path string true "Workspace ID"
// @Param body body dto.SuspendRequest false "Suspension reason"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Workspace not found"
// @Security BearerAuth
// @Router /super-admin/workspaces/{id}/suspend [post]
func (h *platformHandler) suspendWorkspace(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var req dto.SuspendRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	if err := h.platformService.SuspendWorkspace(c.Request.Context(), userID, c.Param("id"), req.Reason); err != nil {
		respondServiceError(c, logger, err, "Failed to suspend workspace")
		return
	}
	c.Status(http.StatusNoContent)
}

// unsuspendWorkspace godoc
// @Summary Unsuspend a workspace
// @Tags super-admin
// @Accept json
// @Produce json
// @Param id path string true "Workspace ID"
// @Param body body dto.SuspendRequest false "Reason"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Workspace not found"
// @Security BearerAuth
// @Router /super-admin/workspaces/{id}/unsuspend [post]
func (h *platformHandler) unsuspendWorkspace(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var req dto.SuspendRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	if err := h.platformService.UnsuspendWorkspace(c.Request.Context(), userID, c.Param("id"), req.Reason); err != nil {
		respondServiceError(c, logger, err, "Failed to unsuspend workspace")
		return
	}
	c.Status(http.StatusNoContent)
}

// getPlatformConfig godoc
// @Summary Get platform config
// @Description Returns platform-wide feature flags and default feature permissions.
// @Tags super-admin
// @Produce json
// @Success 200 {object} dto.PlatformConfigResponse
// @Failure 403 {object} map[string]string "Super admin secret required"
// @Security BearerAuth
// @Router /super-admin/config [get]
func (h *platformHandler) getPlatformConfig(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	cfg, err := h.platformService.GetPlatformConfig(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve platform config")
		return
	}
	c.JSON(http.StatusOK, dto.ToPlatformConfigResponse(cfg))
}

// updateFeatureFlag godoc
// @Summary Toggle a platform feature flag
// @Tags super-admin
// @Accept json
// @Produce json
// @Param flag body dto.UpdateFeatureFlagRequest true "Feature and state"
// @Success 200 {object} dto.PlatformConfigResponse
// @Failure 400 {object} map[string]string "Unknown feature"
// @Security BearerAuth
// @Router /super-admin/config/feature-flags [put]
func (h *platformHandler) updateFeatureFlag(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var req dto.UpdateFeatureFlagRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	cfg, err := h.platformService.UpdateFeatureFlag(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update feature flag")
		return
	}
	c.JSON(http.StatusOK, dto.ToPlatformConfigResponse(cfg))
}

// listAuditLog godoc
// @Summary List platform audit entries
// @Description Returns recent super-admin actions, newest first.
// @Tags super-admin
// @Produce json
// @Param limit query int false "Maximum entries to return"
// @Success 200 {object} dto.AuditLogResponse
// @Failure 403 {object} map[string]string "Super admin secret required"
// @Security BearerAuth
// @Router /super-admin/audit-log [get]
func (h *platformHandler) listAuditLog(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	entries, err := h.platformService.ListAuditLog(c.Request.Context(), userID, parseLimitQuery(c))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list audit log")
		return
	}
	c.JSON(http.StatusOK, dto.AuditLogResponse{Entries: entries})
}
