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

type PgxPlotRepository struct {
	db *pgxpool.Pool
}

func newPgxPlotRepository(db *pgxpool.Pool) portsrepo.PlotRepositoryFacade {
	return &PgxPlotRepository{db: db}
}

var _ portsrepo.PlotRepositoryFacade = (*PgxPlotRepository)(nil)

const plotColumns = `plot_id, workspace_id, name, crop, area, soil_type`

func scanPlot(row pgx.Row) (*domain.Plot, error) {
	var p domain.Plot
	err := row.Scan(&p.PlotID, &p.WorkspaceID, &p.Name, &p.Crop, &p.Area, &p.SoilType)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PgxPlotRepository) SavePlot(ctx context.Context, plot domain.Plot) error {
	query := `INSERT INTO plots (` + plotColumns + `) VALUES ($1, $2, $3, $4, $5, $6);`
	_, err := r.db.Exec(ctx, query, plot.PlotID, plot.WorkspaceID, plot.Name, plot.Crop, plot.Area, plot.SoilType)
	if err != nil {
		return fmt.Errorf("failed to save plot: %w", mapWriteError(err))
	}
	return nil
}

func (r *PgxPlotRepository) FindPlotByID(ctx context.Context, workspaceID, plotID string) (*domain.Plot, error) {
	query := `SELECT ` + plotColumns + ` FROM plots WHERE workspace_id = $1 AND plot_id = $2;`
	plot, err := scanPlot(r.db.QueryRow(ctx, query, workspaceID, plotID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find plot by ID %s: %w", plotID, err)
	}
	return plot, nil
}

func (r *PgxPlotRepository) ListPlotsByWorkspace(ctx context.Context, workspaceID string) ([]domain.Plot, error) {
	query := `SELECT ` + plotColumns + ` FROM plots WHERE workspace_id = $1 ORDER BY name;`
	rows, err := r.db.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query plots: %w", err)
	}
	defer rows.Close()

	plots := []domain.Plot{}
	for rows.Next() {
		plot, err := scanPlot(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan plot row: %w", err)
		}
		plots = append(plots, *plot)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating plot rows: %w", rows.Err())
	}
	return plots, nil
}

func (r *PgxPlotRepository) UpdatePlot(ctx context.Context, plot domain.Plot) error {
	query := `
		UPDATE plots SET name = $1, crop = $2, area = $3, soil_type = $4
		WHERE workspace_id = $5 AND plot_id = $6;
	`
	cmdTag, err := r.db.Exec(ctx, query, plot.Name, plot.Crop, plot.Area, plot.SoilType, plot.WorkspaceID, plot.PlotID)
	if err != nil {
		return fmt.Errorf("failed to update plot: %w", mapWriteError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("plot not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxPlotRepository) DeletePlot(ctx context.Context, workspaceID, plotID string) error {
	query := `DELETE FROM plots WHERE workspace_id = $1 AND plot_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, workspaceID, plotID)
	if err != nil {
		return fmt.Errorf("failed to delete plot: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("plot not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

type PgxSeasonRepository struct {
	db *pgxpool.Pool
}

func newPgxSeasonRepository(db *pgxpool.Pool) portsrepo.SeasonRepositoryFacade {
	return &PgxSeasonRepository{db: db}
}

var _ portsrepo.SeasonRepositoryFacade = (*PgxSeasonRepository)(nil)

const seasonColumns = `season_id, workspace_id, name, year`

func scanSeason(row pgx.Row) (*domain.Season, error) {
	var s domain.Season
	err := row.Scan(&s.SeasonID, &s.WorkspaceID, &s.Name, &s.Year)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PgxSeasonRepository) SaveSeason(ctx context.Context, season domain.Season) error {
	query := `INSERT INTO seasons (` + seasonColumns + `) VALUES ($1, $2, $3, $4);`
	_, err := r.db.Exec(ctx, query, season.SeasonID, season.WorkspaceID, season.Name, season.Year)
	if err != nil {
		return fmt.Errorf("failed to save season: %w", mapWriteError(err))
	}
	return nil
}

func (r *PgxSeasonRepository) FindSeasonByID(ctx context.Context, workspaceID, seasonID string) (*domain.Season, error) {
	query := `SELECT ` + seasonColumns + ` FROM seasons WHERE workspace_id = $1 AND season_id = $2;`
	season, err := scanSeason(r.db.QueryRow(ctx, query, workspaceID, seasonID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find season by ID %s: %w", seasonID, err)
	}
	return season, nil
}

func (r *PgxSeasonRepository) ListSeasonsByWorkspace(ctx context.Context, workspaceID string) ([]domain.Season, error) {
	query := `SELECT ` + seasonColumns + ` FROM seasons WHERE workspace_id = $1 ORDER BY year DESC, name;`
	rows, err := r.db.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query seasons: %w", err)
	}
	defer rows.Close()

	seasons := []domain.Season{}
	for rows.Next() {
		season, err := scanSeason(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan season row: %w", err)
		}
		seasons = append(seasons, *season)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating season rows: %w", rows.Err())
	}
	return seasons, nil
}

func (r *PgxSeasonRepository) UpdateSeason(ctx context.Context, season domain.Season) error {
	query := `UPDATE seasons SET name = $1, year = $2 WHERE workspace_id = $3 AND season_id = $4;`
	cmdTag, err := r.db.Exec(ctx, query, season.Name, season.Year, season.WorkspaceID, season.SeasonID)
	if err != nil {
		return fmt.Errorf("failed to update season: %w", mapWriteError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("season not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxSeasonRepository) DeleteSeason(ctx context.Context, workspaceID, seasonID string) error {
	query := `DELETE FROM seasons WHERE workspace_id = $1 AND season_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, workspaceID, seasonID)
	if err != nil {
		return fmt.Errorf("failed to delete season: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("season not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

// PgxTaskRepository persists tasks. Comments and inventory consumption ride
// along as jsonb; they are only ever read and written through the task
// aggregate.
type PgxTaskRepository struct {
	db *pgxpool.Pool
}

func newPgxTaskRepository(db *pgxpool.Pool) portsrepo.TaskRepositoryFacade {
	return &PgxTaskRepository{db: db}
}

var _ portsrepo.TaskRepositoryFacade = (*PgxTaskRepository)(nil)

const taskColumns = `task_id, workspace_id, title, description, plot_id, assignee_id, due_date, status, cost, priority, category, created_at, comments, reminder_date, inventory_consumed`

func scanTask(row pgx.Row) (*domain.Task, error) {
	var t domain.Task
	err := row.Scan(
		&t.TaskID,
		&t.WorkspaceID,
		&t.Title,
		&t.Description,
		&t.PlotID,
		&t.AssigneeID,
		&t.DueDate,
		&t.Status,
		&t.Cost,
		&t.Priority,
		&t.Category,
		&t.CreatedAt,
		&t.Comments,
		&t.ReminderDate,
		&t.InventoryConsumed,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *PgxTaskRepository) SaveTask(ctx context.Context, task domain.Task) error {
	query := `
		INSERT INTO tasks (` + taskColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.db.Exec(ctx, query,
		task.TaskID,
		task.WorkspaceID,
		task.Title,
		task.Description,
		task.PlotID,
		task.AssigneeID,
		task.DueDate,
		task.Status,
		task.Cost,
		task.Priority,
		task.Category,
		task.CreatedAt,
		task.Comments,
		task.ReminderDate,
		task.InventoryConsumed,
	)
	if err != nil {
		return fmt.Errorf("failed to save task: %w", mapWriteError(err))
	}
	return nil
}

func (r *PgxTaskRepository) FindTaskByID(ctx context.Context, workspaceID, taskID string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE workspace_id = $1 AND task_id = $2;`
	task, err := scanTask(r.db.QueryRow(ctx, query, workspaceID, taskID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find task by ID %s: %w", taskID, err)
	}
	return task, nil
}

func (r *PgxTaskRepository) ListTasksByWorkspace(ctx context.Context, workspaceID string) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE workspace_id = $1 ORDER BY due_date, task_id;`
	rows, err := r.db.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		tasks = append(tasks, *task)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating task rows: %w", rows.Err())
	}
	return tasks, nil
}

func (r *PgxTaskRepository) UpdateTask(ctx context.Context, task domain.Task) error {
	query := `
		UPDATE tasks
		SET title = $1, description = $2, plot_id = $3, assignee_id = $4, due_date = $5,
		    status = $6, cost = $7, priority = $8, category = $9, comments = $10,
		    reminder_date = $11, inventory_consumed = $12
		WHERE workspace_id = $13 AND task_id = $14;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		task.Title,
		task.Description,
		task.PlotID,
		task.AssigneeID,
		task.DueDate,
		task.Status,
		task.Cost,
		task.Priority,
		task.Category,
		task.Comments,
		task.ReminderDate,
		task.InventoryConsumed,
		task.WorkspaceID,
		task.TaskID,
	)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", mapWriteError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("task not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxTaskRepository) DeleteTask(ctx context.Context, workspaceID, taskID string) error {
	query := `DELETE FROM tasks WHERE workspace_id = $1 AND task_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, workspaceID, taskID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("task not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
