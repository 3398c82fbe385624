package repositories

import (
	"context"

	"github.com/agrisage/farm_management_app/internal/core/domain"
)

// EmployeeRepositoryFacade persists employees.
type EmployeeRepositoryFacade interface {
	SaveEmployee(ctx context.Context, employee domain.Employee) error
	FindEmployeeByID(ctx context.Context, workspaceID, employeeID string) (*domain.Employee, error)
	ListEmployeesByWorkspace(ctx context.Context, workspaceID string) ([]domain.Employee, error)
	UpdateEmployee(ctx context.Context, employee domain.Employee) error
	DeleteEmployee(ctx context.Context, workspaceID, employeeID string) error
}

// TimesheetRepositoryFacade persists timesheets.
type TimesheetRepositoryFacade interface {
	SaveTimesheet(ctx context.Context, timesheet domain.Timesheet) error
	ListTimesheetsByWorkspace(ctx context.Context, workspaceID string) ([]domain.Timesheet, error)
	ListTimesheetsByEmployee(ctx context.Context, workspaceID, employeeID string) ([]domain.Timesheet, error)
	DeleteTimesheet(ctx context.Context, workspaceID, timesheetID string) error
}
