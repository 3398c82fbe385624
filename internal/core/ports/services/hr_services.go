package services

import (
	"context"

	"github.com/agrisage/farm_management_app/internal/core/domain"
	"github.com/agrisage/farm_management_app/internal/dto"
)

// HRSvcFacade manages payroll employees and their timesheets.
type HRSvcFacade interface {
	CreateEmployee(ctx context.Context, workspaceID string, req dto.CreateEmployeeRequest, requestingUserID string) (*domain.Employee, error)
	ListEmployees(ctx context.Context, workspaceID, requestingUserID string) ([]domain.Employee, error)
	UpdateEmployee(ctx context.Context, workspaceID, employeeID string, req dto.UpdateEmployeeRequest, requestingUserID string) (*domain.Employee, error)
	DeleteEmployee(ctx context.Context, workspaceID, employeeID, requestingUserID string) error

	CreateTimesheet(ctx context.Context, workspaceID string, req dto.CreateTimesheetRequest, requestingUserID string) (*domain.Timesheet, error)
	ListTimesheets(ctx context.Context, workspaceID, employeeID, requestingUserID string) ([]domain.Timesheet, error)
	DeleteTimesheet(ctx context.Context, workspaceID, timesheetID, requestingUserID string) error
}
