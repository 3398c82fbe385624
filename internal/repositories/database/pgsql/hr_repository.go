package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/agrisage/farm_management_app/internal/apperrors"
	"github.com/agrisage/farm_management_app/internal/core/domain"
	portsrepo "github.com/agrisage/farm_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxEmployeeRepository struct {
	db *pgxpool.Pool
}

func newPgxEmployeeRepository(db *pgxpool.Pool) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{db: db}
}

var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

const employeeColumns = `employee_id, workspace_id, name, role, pay_rate, contact`

func scanEmployee(row pgx.Row) (*domain.Employee, error) {
	var e domain.Employee
	err := row.Scan(&e.EmployeeID, &e.WorkspaceID, &e.Name, &e.Role, &e.PayRate, &e.Contact)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	query := `INSERT INTO employees (` + employeeColumns + `) VALUES ($1, $2, $3, $4, $5, $6);`
	_, err := r.db.Exec(ctx, query,
		employee.EmployeeID, employee.WorkspaceID, employee.Name, employee.Role, employee.PayRate, employee.Contact,
	)
	if err != nil {
		return fmt.Errorf("failed to save employee: %w", mapWriteError(err))
	}
	return nil
}

func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, workspaceID, employeeID string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE workspace_id = $1 AND employee_id = $2;`
	employee, err := scanEmployee(r.db.QueryRow(ctx, query, workspaceID, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee by ID %s: %w", employeeID, err)
	}
	return employee, nil
}

func (r *PgxEmployeeRepository) ListEmployeesByWorkspace(ctx context.Context, workspaceID string) ([]domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE workspace_id = $1 ORDER BY name;`
	rows, err := r.db.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	employees := []domain.Employee{}
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employees = append(employees, *employee)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating employee rows: %w", rows.Err())
	}
	return employees, nil
}

func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	query := `
		UPDATE employees SET name = $1, role = $2, pay_rate = $3, contact = $4
		WHERE workspace_id = $5 AND employee_id = $6;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		employee.Name, employee.Role, employee.PayRate, employee.Contact, employee.WorkspaceID, employee.EmployeeID,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", mapWriteError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("employee not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxEmployeeRepository) DeleteEmployee(ctx context.Context, workspaceID, employeeID string) error {
	query := `DELETE FROM employees WHERE workspace_id = $1 AND employee_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, workspaceID, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("employee not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

type PgxTimesheetRepository struct {
	db *pgxpool.Pool
}

func newPgxTimesheetRepository(db *pgxpool.Pool) portsrepo.TimesheetRepositoryFacade {
	return &PgxTimesheetRepository{db: db}
}

var _ portsrepo.TimesheetRepositoryFacade = (*PgxTimesheetRepository)(nil)

const timesheetColumns = `timesheet_id, workspace_id, employee_id, work_date, hours_worked`

func scanTimesheet(row pgx.Row) (*domain.Timesheet, error) {
	var t domain.Timesheet
	err := row.Scan(&t.TimesheetID, &t.WorkspaceID, &t.EmployeeID, &t.WorkDate, &t.HoursWorked)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *PgxTimesheetRepository) SaveTimesheet(ctx context.Context, timesheet domain.Timesheet) error {
	query := `INSERT INTO timesheets (` + timesheetColumns + `) VALUES ($1, $2, $3, $4, $5);`
	_, err := r.db.Exec(ctx, query,
		timesheet.TimesheetID, timesheet.WorkspaceID, timesheet.EmployeeID, timesheet.WorkDate, timesheet.HoursWorked,
	)
	if err != nil {
		return fmt.Errorf("failed to save timesheet: %w", mapWriteError(err))
	}
	return nil
}

func (r *PgxTimesheetRepository) listTimesheets(ctx context.Context, query string, args ...any) ([]domain.Timesheet, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query timesheets: %w", err)
	}
	defer rows.Close()

	timesheets := []domain.Timesheet{}
	for rows.Next() {
		timesheet, err := scanTimesheet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan timesheet row: %w", err)
		}
		timesheets = append(timesheets, *timesheet)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating timesheet rows: %w", rows.Err())
	}
	return timesheets, nil
}

func (r *PgxTimesheetRepository) ListTimesheetsByWorkspace(ctx context.Context, workspaceID string) ([]domain.Timesheet, error) {
	query := `SELECT ` + timesheetColumns + ` FROM timesheets WHERE workspace_id = $1 ORDER BY work_date DESC;`
	return r.listTimesheets(ctx, query, workspaceID)
}

func (r *PgxTimesheetRepository) ListTimesheetsByEmployee(ctx context.Context, workspaceID, employeeID string) ([]domain.Timesheet, error) {
	query := `SELECT ` + timesheetColumns + ` FROM timesheets WHERE workspace_id = $1 AND employee_id = $2 ORDER BY work_date DESC;`
	return r.listTimesheets(ctx, query, workspaceID, employeeID)
}

func (r *PgxTimesheetRepository) DeleteTimesheet(ctx context.Context, workspaceID, timesheetID string) error {
	query := `DELETE FROM timesheets WHERE workspace_id = $1 AND timesheet_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, workspaceID, timesheetID)
	if err != nil {
		return fmt.Errorf("failed to delete timesheet: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("timesheet not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
