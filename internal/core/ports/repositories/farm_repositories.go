package repositories

import (
	"context"

	"github.com/agrisage/farm_management_app/internal/core/domain"
)

// PlotRepositoryFacade persists plots.
type PlotRepositoryFacade interface {
	SavePlot(ctx context.Context, plot domain.Plot) error
	FindPlotByID(ctx context.Context, workspaceID, plotID string) (*domain.Plot, error)
	ListPlotsByWorkspace(ctx context.Context, workspaceID string) ([]domain.Plot, error)
	UpdatePlot(ctx context.Context, plot domain.Plot) error
	DeletePlot(ctx context.Context, workspaceID, plotID string) error
}

// SeasonRepositoryFacade persists seasons.
type SeasonRepositoryFacade interface {
	SaveSeason(ctx context.Context, season domain.Season) error
	FindSeasonByID(ctx context.Context, workspaceID, seasonID string) (*domain.Season, error)
	ListSeasonsByWorkspace(ctx context.Context, workspaceID string) ([]domain.Season, error)
	UpdateSeason(ctx context.Context, season domain.Season) error
	DeleteSeason(ctx context.Context, workspaceID, seasonID string) error
}

// TaskRepositoryFacade persists tasks, comments and consumption records
// included.
type TaskRepositoryFacade interface {
	SaveTask(ctx context.Context, task domain.Task) error
	FindTaskByID(ctx context.Context, workspaceID, taskID string) (*domain.Task, error)
	ListTasksByWorkspace(ctx context.Context, workspaceID string) ([]domain.Task, error)
	UpdateTask(ctx context.Context, task domain.Task) error
	DeleteTask(ctx context.Context, workspaceID, taskID string) error
}
