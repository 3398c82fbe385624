package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/agrisage/farm_management_app/internal/core/domain"
	portsrepo "github.com/agrisage/farm_management_app/internal/core/ports/repositories"
	portssvc "github.com/agrisage/farm_management_app/internal/core/ports/services"
	"github.com/agrisage/farm_management_app/internal/dto"
	"github.com/agrisage/farm_management_app/internal/utils"
)

// hrService implements portssvc.HRSvcFacade.
type hrService struct {
	BaseService
	employeeRepo  portsrepo.EmployeeRepositoryFacade
	timesheetRepo portsrepo.TimesheetRepositoryFacade
}

var _ portssvc.HRSvcFacade = (*hrService)(nil)

// HRServiceOption configures the HR service.
type HRServiceOption func(*hrService)

// WithHRAuthorizer sets the workspace authorizer for the HR service.
func WithHRAuthorizer(authorizer portssvc.WorkspaceAuthorizerSvc) HRServiceOption {
	return func(s *hrService) {
		s.WorkspaceAuthorizer = authorizer
	}
}

// NewHRService creates a new HR service.
func NewHRService(employeeRepo portsrepo.EmployeeRepositoryFacade, timesheetRepo portsrepo.TimesheetRepositoryFacade, opts ...HRServiceOption) portssvc.HRSvcFacade {
	svc := &hrService{
		employeeRepo:  employeeRepo,
		timesheetRepo: timesheetRepo,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// CreateEmployee adds a payroll employee.
func (s *hrService) CreateEmployee(ctx context.Context, workspaceID string, req dto.CreateEmployeeRequest, requestingUserID string) (*domain.Employee, error) {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureHR); err != nil {
		return nil, err
	}

	employee := domain.Employee{
		EmployeeID:  utils.NewEntityID("emp"),
		WorkspaceID: workspaceID,
		Name:        req.Name,
		Role:        req.Role,
		PayRate:     req.PayRate,
		Contact:     req.Contact,
	}
	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		s.LogError(ctx, err, "Failed to save employee", slog.String("workspace_id", workspaceID))
		return nil, err
	}
	return &employee, nil
}

// ListEmployees retrieves the workspace's employees.
func (s *hrService) ListEmployees(ctx context.Context, workspaceID, requestingUserID string) ([]domain.Employee, error) {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureHR); err != nil {
		return nil, err
	}
	return s.employeeRepo.ListEmployeesByWorkspace(ctx, workspaceID)
}

// UpdateEmployee updates employee fields.
func (s *hrService) UpdateEmployee(ctx context.Context, workspaceID, employeeID string, req dto.UpdateEmployeeRequest, requestingUserID string) (*domain.Employee, error) {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureHR); err != nil {
		return nil, err
	}
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, workspaceID, employeeID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		employee.Name = *req.Name
	}
	if req.Role != nil {
		employee.Role = *req.Role
	}
	if req.PayRate != nil {
		employee.PayRate = *req.PayRate
	}
	if req.Contact != nil {
		employee.Contact = *req.Contact
	}

	if err := s.employeeRepo.UpdateEmployee(ctx, *employee); err != nil {
		s.LogError(ctx, err, "Failed to update employee", slog.String("employee_id", employeeID))
		return nil, err
	}
	return employee, nil
}

// DeleteEmployee removes an employee.
func (s *hrService) DeleteEmployee(ctx context.Context, workspaceID, employeeID, requestingUserID string) error {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureHR); err != nil {
		return err
	}
	return s.employeeRepo.DeleteEmployee(ctx, workspaceID, employeeID)
}

// CreateTimesheet records hours worked by an employee on one day.
func (s *hrService) CreateTimesheet(ctx context.Context, workspaceID string, req dto.CreateTimesheetRequest, requestingUserID string) (*domain.Timesheet, error) {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureHR); err != nil {
		return nil, err
	}
	// Employee must belong to this workspace.
	if _, err := s.employeeRepo.FindEmployeeByID(ctx, workspaceID, req.EmployeeID); err != nil {
		return nil, err
	}

	timesheet := domain.Timesheet{
		TimesheetID: utils.NewEntityID("ts"),
		WorkspaceID: workspaceID,
		EmployeeID:  req.EmployeeID,
		WorkDate:    req.Date.Truncate(24 * time.Hour),
		HoursWorked: req.HoursWorked,
	}
	if err := s.timesheetRepo.SaveTimesheet(ctx, timesheet); err != nil {
		s.LogError(ctx, err, "Failed to save timesheet", slog.String("employee_id", req.EmployeeID))
		return nil, err
	}
	return &timesheet, nil
}

// ListTimesheets retrieves timesheets, optionally filtered by employee.
func (s *hrService) ListTimesheets(ctx context.Context, workspaceID, employeeID, requestingUserID string) ([]domain.Timesheet, error) {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureHR); err != nil {
		return nil, err
	}
	if employeeID != "" {
		return s.timesheetRepo.ListTimesheetsByEmployee(ctx, workspaceID, employeeID)
	}
	return s.timesheetRepo.ListTimesheetsByWorkspace(ctx, workspaceID)
}

// DeleteTimesheet removes a timesheet.
func (s *hrService) DeleteTimesheet(ctx context.Context, workspaceID, timesheetID, requestingUserID string) error {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureHR); err != nil {
		return err
	}
	return s.timesheetRepo.DeleteTimesheet(ctx, workspaceID, timesheetID)
}
