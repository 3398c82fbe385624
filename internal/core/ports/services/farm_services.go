package services

import (
	"context"

	"github.com/agrisage/farm_management_app/internal/core/domain"
	"github.com/agrisage/farm_management_app/internal/dto"
)

// PlotSvc manages plots.
type PlotSvc interface {
	CreatePlot(ctx context.Context, workspaceID string, req dto.CreatePlotRequest, requestingUserID string) (*domain.Plot, error)
	GetPlotByID(ctx context.Context, workspaceID, plotID, requestingUserID string) (*domain.Plot, error)
	ListPlots(ctx context.Context, workspaceID, requestingUserID string) ([]domain.Plot, error)
	UpdatePlot(ctx context.Context, workspaceID, plotID string, req dto.UpdatePlotRequest, requestingUserID string) (*domain.Plot, error)
	DeletePlot(ctx context.Context, workspaceID, plotID, requestingUserID string) error
}

// SeasonSvc manages seasons.
type SeasonSvc interface {
	CreateSeason(ctx context.Context, workspaceID string, req dto.CreateSeasonRequest, requestingUserID string) (*domain.Season, error)
	ListSeasons(ctx context.Context, workspaceID, requestingUserID string) ([]domain.Season, error)
	UpdateSeason(ctx context.Context, workspaceID, seasonID string, req dto.UpdateSeasonRequest, requestingUserID string) (*domain.Season, error)
	DeleteSeason(ctx context.Context, workspaceID, seasonID, requestingUserID string) error
}

// TaskSvc manages operations tasks, their comments and inventory draws.
type TaskSvc interface {
	CreateTask(ctx context.Context, workspaceID string, req dto.CreateTaskRequest, requestingUserID string) (*domain.Task, error)
	GetTaskByID(ctx context.Context, workspaceID, taskID, requestingUserID string) (*domain.Task, error)
	ListTasks(ctx context.Context, workspaceID, requestingUserID string) ([]domain.Task, error)
	UpdateTask(ctx context.Context, workspaceID, taskID string, req dto.UpdateTaskRequest, requestingUserID string) (*domain.Task, error)
	DeleteTask(ctx context.Context, workspaceID, taskID, requestingUserID string) error

	// AddTaskComment appends a comment authored by the requesting user.
	AddTaskComment(ctx context.Context, workspaceID, taskID string, req dto.AddTaskCommentRequest, requestingUserID string) (*domain.Task, error)

	// ConsumeInventory records stock drawn by the task and decrements the
	// inventory item's quantity.
	ConsumeInventory(ctx context.Context, workspaceID, taskID string, req dto.ConsumeInventoryRequest, requestingUserID string) (*domain.Task, error)
}

// FarmSvcFacade combines plot, season and task services.
type FarmSvcFacade interface {
	PlotSvc
	SeasonSvc
	TaskSvc
}
