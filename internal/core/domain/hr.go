package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is a payroll record, distinct from application users.
type Employee struct {
	EmployeeID  string          `json:"employeeID"` // Primary Key
	WorkspaceID string          `json:"workspaceID"`
	Name        string          `json:"name"`
	Role        string          `json:"role"` // free-text job title, not a workspace Role
	PayRate     decimal.Decimal `json:"payRate"`
	Contact     string          `json:"contact"`
}

// Timesheet records hours worked by an employee on one day.
type Timesheet struct {
	TimesheetID string          `json:"timesheetID"` // Primary Key
	WorkspaceID string          `json:"workspaceID"`
	EmployeeID  string          `json:"employeeId"`
	WorkDate    time.Time       `json:"date"`
	HoursWorked decimal.Decimal `json:"hoursWorked"`
}
