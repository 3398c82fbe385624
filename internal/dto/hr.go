package dto

import (
	"time"

	"github.com/agrisage/farm_management_app/internal/core/domain"

	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest defines data for adding a payroll employee.
type CreateEmployeeRequest struct {
	Name    string          `json:"name" binding:"required,max=120"`
	Role    string          `json:"role,omitempty" binding:"omitempty,max=120"`
	PayRate decimal.Decimal `json:"payRate"`
	Contact string          `json:"contact,omitempty"`
}

// UpdateEmployeeRequest defines data for updating an employee.
type UpdateEmployeeRequest struct {
	Name    *string          `json:"name,omitempty" binding:"omitempty,max=120"`
	Role    *string          `json:"role,omitempty" binding:"omitempty,max=120"`
	PayRate *decimal.Decimal `json:"payRate,omitempty"`
	Contact *string          `json:"contact,omitempty"`
}

// EmployeeResponse defines data returned for an employee.
type EmployeeResponse struct {
	EmployeeID  string          `json:"employeeID"`
	WorkspaceID string          `json:"workspaceID"`
	Name        string          `json:"name"`
	Role        string          `json:"role,omitempty"`
	PayRate     decimal.Decimal `json:"payRate"`
	Contact     string          `json:"contact,omitempty"`
}

// ToEmployeeResponse converts domain.Employee to DTO.
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:  e.EmployeeID,
		WorkspaceID: e.WorkspaceID,
		Name:        e.Name,
		Role:        e.Role,
		PayRate:     e.PayRate,
		Contact:     e.Contact,
	}
}

// CreateTimesheetRequest records hours worked by an employee on one day.
type CreateTimesheetRequest struct {
	EmployeeID  string          `json:"employeeID" binding:"required"`
	Date        time.Time       `json:"date" binding:"required"`
	HoursWorked decimal.Decimal `json:"hoursWorked" binding:"required"`
}

// TimesheetResponse defines data returned for a timesheet.
type TimesheetResponse struct {
	TimesheetID string          `json:"timesheetID"`
	WorkspaceID string          `json:"workspaceID"`
	EmployeeID  string          `json:"employeeID"`
	Date        time.Time       `json:"date"`
	HoursWorked decimal.Decimal `json:"hoursWorked"`
}

// ToTimesheetResponse converts domain.Timesheet to DTO.
func ToTimesheetResponse(t *domain.Timesheet) TimesheetResponse {
	return TimesheetResponse{
		TimesheetID: t.TimesheetID,
		WorkspaceID: t.WorkspaceID,
		EmployeeID:  t.EmployeeID,
		Date:        t.WorkDate,
		HoursWorked: t.HoursWorked,
	}
}
