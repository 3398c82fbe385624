package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/agrisage/farm_management_app/internal/core/ports/services"
	"github.com/agrisage/farm_management_app/internal/dto"
	"github.com/agrisage/farm_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// hrHandler handles payroll employee and timesheet requests within a
// workspace.
type hrHandler struct {
	hrService portssvc.HRSvcFacade
}

func newHRHandler(hs portssvc.HRSvcFacade) *hrHandler {
	return &hrHandler{hrService: hs}
}

func registerHRRoutes(rg *gin.RouterGroup, hrService portssvc.HRSvcFacade) {
	h := newHRHandler(hrService)

	employees := rg.Group("/employees")
	{
		employees.POST("", h.createEmployee)
		employees.GET("", h.listEmployees)
		employees.PUT("/:employee_id", h.updateEmployee)
		employees.DELETE("/:employee_id", h.deleteEmployee)
	}

	timesheets := rg.Group("/timesheets")
	{
		timesheets.POST("", h.createTimesheet)
		timesheets.GET("", h.listTimesheets)
		timesheets.DELETE("/:timesheet_id", h.deleteTimesheet)
	}
}

// createEmployee godoc
// @Summary Add a payroll employee
// @Tags hr
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param employee body dto.CreateEmployeeRequest true "Employee details"
// @Success 201 {object} dto.EmployeeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "HR access required"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/employees [post]
func (h *hrHandler) createEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var req dto.CreateEmployeeRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	employee, err := h.hrService.CreateEmployee(c.Request.Context(), c.Param("workspace_id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create employee")
		return
	}

	logger.Info("Employee created", slog.String("employee_id", employee.EmployeeID))
	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(employee))
}

// listEmployees godoc
// @Summary List employees
// @Tags hr
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Success 200 {array} dto.EmployeeResponse
// @Failure 403 {object} map[string]string "HR access required"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/employees [get]
func (h *hrHandler) listEmployees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	employees, err := h.hrService.ListEmployees(c.Request.Context(), c.Param("workspace_id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list employees")
		return
	}

	responses := make([]dto.EmployeeResponse, len(employees))
	for i, employee := range employees {
		responses[i] = dto.ToEmployeeResponse(&employee)
	}
	c.JSON(http.StatusOK, responses)
}

// updateEmployee godoc
// @Summary Update an employee
// @Tags hr
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param employee_id path string true "Employee ID"
// @Param employee body dto.UpdateEmployeeRequest true "Fields to update"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 404 {object} map[string]string "Employee not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/employees/{employee_id} [put]
func (h *hrHandler) updateEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var req dto.UpdateEmployeeRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	employee, err := h.hrService.UpdateEmployee(c.Request.Context(), c.Param("workspace_id"), c.Param("employee_id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update employee")
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// deleteEmployee godoc
// @Summary Remove an employee
// @Tags hr
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param employee_id path string true "Employee ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Employee not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/employees/{employee_id} [delete]
func (h *hrHandler) deleteEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.hrService.DeleteEmployee(c.Request.Context(), c.Param("workspace_id"), c.Param("employee_id"), userID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete employee")
		return
	}
	c.Status(http.StatusNoContent)
}

// createTimesheet godoc
// @Summary Record a timesheet
// @Description Records hours worked by an employee on one day.
// @Tags hr
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param timesheet body dto.CreateTimesheetRequest true "Timesheet details"
// @Success 201 {object} dto.TimesheetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Employee not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/timesheets [post]
func (h *hrHandler) createTimesheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var req dto.CreateTimesheetRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	timesheet, err := h.hrService.CreateTimesheet(c.Request.Context(), c.Param("workspace_id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record timesheet")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTimesheetResponse(timesheet))
}

// listTimesheets godoc
// @Summary List timesheets
// @Description Lists timesheets for the workspace, optionally filtered by employee.
// @Tags hr
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param employee_id query string false "Filter by employee ID"
// @Success 200 {array} dto.TimesheetResponse
// @Failure 403 {object} map[string]string "HR access required"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/timesheets [get]
func (h *hrHandler) listTimesheets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	timesheets, err := h.hrService.ListTimesheets(c.Request.Context(), c.Param("workspace_id"), c.Query("employee_id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list timesheets")
		return
	}

	responses := make([]dto.TimesheetResponse, len(timesheets))
	for i, timesheet := range timesheets {
		responses[i] = dto.ToTimesheetResponse(&timesheet)
	}
	c.JSON(http.StatusOK, responses)
}

// deleteTimesheet godoc
// @Summary Delete a timesheet
// @Tags hr
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param timesheet_id path string true "Timesheet ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Timesheet not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/timesheets/{timesheet_id} [delete]
func (h *hrHandler) deleteTimesheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.hrService.DeleteTimesheet(c.Request.Context(), c.Param("workspace_id"), c.Param("timesheet_id"), userID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete timesheet")
		return
	}
	c.Status(http.StatusNoContent)
}
