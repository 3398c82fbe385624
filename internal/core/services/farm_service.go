package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/agrisage/farm_management_app/internal/apperrors"
	"github.com/agrisage/farm_management_app/internal/core/domain"
	portsrepo "github.com/agrisage/farm_management_app/internal/core/ports/repositories"
	portssvc "github.com/agrisage/farm_management_app/internal/core/ports/services"
	"github.com/agrisage/farm_management_app/internal/dto"
	"github.com/agrisage/farm_management_app/internal/utils"
)

// farmService implements portssvc.FarmSvcFacade: plots, seasons and tasks.
type farmService struct {
	BaseService
	plotRepo      portsrepo.PlotRepositoryFacade
	seasonRepo    portsrepo.SeasonRepositoryFacade
	taskRepo      portsrepo.TaskRepositoryFacade
	inventoryRepo portsrepo.InventoryRepositoryFacade
}

var _ portssvc.FarmSvcFacade = (*farmService)(nil)

// FarmServiceOption configures the farm service.
type FarmServiceOption func(*farmService)

// WithFarmAuthorizer sets the workspace authorizer for the farm service.
func WithFarmAuthorizer(authorizer portssvc.WorkspaceAuthorizerSvc) FarmServiceOption {
	return func(s *farmService) {
		s.WorkspaceAuthorizer = authorizer
	}
}

// NewFarmService creates a new farm service.
func NewFarmService(plotRepo portsrepo.PlotRepositoryFacade, seasonRepo portsrepo.SeasonRepositoryFacade, taskRepo portsrepo.TaskRepositoryFacade, inventoryRepo portsrepo.InventoryRepositoryFacade, opts ...FarmServiceOption) portssvc.FarmSvcFacade {
	svc := &farmService{
		plotRepo:      plotRepo,
		seasonRepo:    seasonRepo,
		taskRepo:      taskRepo,
		inventoryRepo: inventoryRepo,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// --- Plots ---

// CreatePlot registers a plot.
func (s *farmService) CreatePlot(ctx context.Context, workspaceID string, req dto.CreatePlotRequest, requestingUserID string) (*domain.Plot, error) {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeaturePlotsSeasons); err != nil {
		return nil, err
	}

	plot := domain.Plot{
		PlotID:      utils.NewEntityID("plot"),
		WorkspaceID: workspaceID,
		Name:        req.Name,
		Crop:        req.Crop,
		Area:        req.Area,
		SoilType:    req.SoilType,
	}
	if err := s.plotRepo.SavePlot(ctx, plot); err != nil {
		s.LogError(ctx, err, "Failed to save plot", slog.String("workspace_id", workspaceID))
		return nil, err
	}
	return &plot, nil
}

// GetPlotByID retrieves a plot.
func (s *farmService) GetPlotByID(ctx context.Context, workspaceID, plotID, requestingUserID string) (*domain.Plot, error) {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeaturePlotsSeasons); err != nil {
		return nil, err
	}
	return s.plotRepo.FindPlotByID(ctx, workspaceID, plotID)
}

// ListPlots retrieves the workspace's plots.
func (s *farmService) ListPlots(ctx context.Context, workspaceID, requestingUserID string) ([]domain.Plot, error) {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeaturePlotsSeasons); err != nil {
		return nil, err
	}
	return s.plotRepo.ListPlotsByWorkspace(ctx, workspaceID)
}

// UpdatePlot updates plot fields.
func (s *farmService) UpdatePlot(ctx context.Context, workspaceID, plotID string, req dto.UpdatePlotRequest, requestingUserID string) (*domain.Plot, error) {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeaturePlotsSeasons); err != nil {
		return nil, err
	}
	plot, err := s.plotRepo.FindPlotByID(ctx, workspaceID, plotID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		plot.Name = *req.Name
	}
	if req.Crop != nil {
		plot.Crop = *req.Crop
	}
	if req.Area != nil {
		plot.Area = *req.Area
	}
	if req.SoilType != nil {
		plot.SoilType = *req.SoilType
	}

	if err := s.plotRepo.UpdatePlot(ctx, *plot); err != nil {
		s.LogError(ctx, err, "Failed to update plot", slog.String("plot_id", plotID))
		return nil, err
	}
	return plot, nil
}

// DeletePlot removes a plot. Journal lines tagged with it are kept; reports
// simply stop matching the tag.
func (s *farmService) DeletePlot(ctx context.Context, workspaceID, plotID, requestingUserID string) error {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeaturePlotsSeasons); err != nil {
		return err
	}
	return s.plotRepo.DeletePlot(ctx, workspaceID, plotID)
}

// --- Seasons ---

// CreateSeason opens a season.
func (s *farmService) CreateSeason(ctx context.Context, workspaceID string, req dto.CreateSeasonRequest, requestingUserID string) (*domain.Season, error) {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeaturePlotsSeasons); err != nil {
		return nil, err
	}

	season := domain.Season{
		SeasonID:    utils.NewEntityID("season"),
		WorkspaceID: workspaceID,
		Name:        req.Name,
		Year:        req.Year,
	}
	if err := s.seasonRepo.SaveSeason(ctx, season); err != nil {
		s.LogError(ctx, err, "Failed to save season", slog.String("workspace_id", workspaceID))
		return nil, err
	}
	return &season, nil
}

// ListSeasons retrieves the workspace's seasons.
func (s *farmService) ListSeasons(ctx context.Context, workspaceID, requestingUserID string) ([]domain.Season, error) {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeaturePlotsSeasons); err != nil {
		return nil, err
	}
	return s.seasonRepo.ListSeasonsByWorkspace(ctx, workspaceID)
}

// UpdateSeason updates season fields.
func (s *farmService) UpdateSeason(ctx context.Context, workspaceID, seasonID string, req dto.UpdateSeasonRequest, requestingUserID string) (*domain.Season, error) {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeaturePlotsSeasons); err != nil {
		return nil, err
	}
	season, err := s.seasonRepo.FindSeasonByID(ctx, workspaceID, seasonID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		season.Name = *req.Name
	}
	if req.Year != nil {
		season.Year = *req.Year
	}

	if err := s.seasonRepo.UpdateSeason(ctx, *season); err != nil {
		s.LogError(ctx, err, "Failed to update season", slog.String("season_id", seasonID))
		return nil, err
	}
	return season, nil
}

// DeleteSeason removes a season.
func (s *farmService) DeleteSeason(ctx context.Context, workspaceID, seasonID, requestingUserID string) error {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeaturePlotsSeasons); err != nil {
		return err
	}
	return s.seasonRepo.DeleteSeason(ctx, workspaceID, seasonID)
}

// --- Tasks ---

// CreateTask creates an operations task. Status defaults to To-Do and
// priority to Medium.
func (s *farmService) CreateTask(ctx context.Context, workspaceID string, req dto.CreateTaskRequest, requestingUserID string) (*domain.Task, error) {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureOperations); err != nil {
		return nil, err
	}

	status := domain.TaskStatus(req.Status)
	if status == "" {
		status = domain.TaskToDo
	}
	priority := domain.TaskPriority(req.Priority)
	if priority == "" {
		priority = domain.PriorityMedium
	}

	task := domain.Task{
		TaskID:            utils.NewEntityID("task"),
		WorkspaceID:       workspaceID,
		Title:             req.Title,
		Description:       req.Description,
		PlotID:            req.PlotID,
		AssigneeID:        req.AssigneeID,
		DueDate:           req.DueDate,
		Status:            status,
		Cost:              req.Cost,
		Priority:          priority,
		Category:          req.Category,
		CreatedAt:         time.Now().UTC(),
		Comments:          []domain.TaskComment{},
		ReminderDate:      req.ReminderDate,
		InventoryConsumed: []domain.InventoryConsumption{},
	}
	if err := s.taskRepo.SaveTask(ctx, task); err != nil {
		s.LogError(ctx, err, "Failed to save task", slog.String("workspace_id", workspaceID))
		return nil, err
	}
	s.LogInfo(ctx, "Task created", slog.String("task_id", task.TaskID), slog.String("workspace_id", workspaceID))
	return &task, nil
}

// GetTaskByID retrieves a task.
func (s *farmService) GetTaskByID(ctx context.Context, workspaceID, taskID, requestingUserID string) (*domain.Task, error) {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureOperations); err != nil {
		return nil, err
	}
	return s.taskRepo.FindTaskByID(ctx, workspaceID, taskID)
}

// ListTasks retrieves the workspace's tasks.
func (s *farmService) ListTasks(ctx context.Context, workspaceID, requestingUserID string) ([]domain.Task, error) {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureOperations); err != nil {
		return nil, err
	}
	return s.taskRepo.ListTasksByWorkspace(ctx, workspaceID)
}

// UpdateTask updates task fields.
func (s *farmService) UpdateTask(ctx context.Context, workspaceID, taskID string, req dto.UpdateTaskRequest, requestingUserID string) (*domain.Task, error) {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureOperations); err != nil {
		return nil, err
	}
	task, err := s.taskRepo.FindTaskByID(ctx, workspaceID, taskID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		task.Status = domain.TaskStatus(*req.Status)
	}
	if req.Priority != nil {
		task.Priority = domain.TaskPriority(*req.Priority)
	}
	if req.Category != nil {
		task.Category = *req.Category
	}
	if req.Cost != nil {
		task.Cost = *req.Cost
	}
	if req.AssigneeID != nil {
		task.AssigneeID = *req.AssigneeID
	}
	if req.PlotID != nil {
		task.PlotID = *req.PlotID
	}
	if req.DueDate != nil {
		task.DueDate = *req.DueDate
	}
	if req.ReminderDate != nil {
		task.ReminderDate = req.ReminderDate
	}

	if err := s.taskRepo.UpdateTask(ctx, *task); err != nil {
		s.LogError(ctx, err, "Failed to update task", slog.String("task_id", taskID))
		return nil, err
	}
	return task, nil
}

// DeleteTask removes a task.
func (s *farmService) DeleteTask(ctx context.Context, workspaceID, taskID, requestingUserID string) error {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureOperations); err != nil {
		return err
	}
	return s.taskRepo.DeleteTask(ctx, workspaceID, taskID)
}

// AddTaskComment appends a comment authored by the requesting user.
func (s *farmService) AddTaskComment(ctx context.Context, workspaceID, taskID string, req dto.AddTaskCommentRequest, requestingUserID string) (*domain.Task, error) {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureOperations); err != nil {
		return nil, err
	}
	task, err := s.taskRepo.FindTaskByID(ctx, workspaceID, taskID)
	if err != nil {
		return nil, err
	}

	task.Comments = append(task.Comments, domain.TaskComment{
		CommentID: utils.NewEntityID("comment"),
		AuthorID:  requestingUserID,
		Content:   req.Content,
		CreatedAt: time.Now().UTC(),
	})

	if err := s.taskRepo.UpdateTask(ctx, *task); err != nil {
		s.LogError(ctx, err, "Failed to add task comment", slog.String("task_id", taskID))
		return nil, err
	}
	return task, nil
}

// ConsumeInventory records stock drawn by the task and decrements the item.
// The draw fails when the item doesn't have enough stock.
func (s *farmService) ConsumeInventory(ctx context.Context, workspaceID, taskID string, req dto.ConsumeInventoryRequest, requestingUserID string) (*domain.Task, error) {
	if err := s.AuthorizeFeature(ctx, requestingUserID, workspaceID, domain.FeatureOperations); err != nil {
		return nil, err
	}
	if !req.Quantity.IsPositive() {
		return nil, apperrors.NewValidationFailedError("consumption quantity must be positive")
	}

	task, err := s.taskRepo.FindTaskByID(ctx, workspaceID, taskID)
	if err != nil {
		return nil, err
	}
	item, err := s.inventoryRepo.FindItemByID(ctx, workspaceID, req.InventoryID)
	if err != nil {
		return nil, err
	}
	if item.Quantity.LessThan(req.Quantity) {
		return nil, apperrors.NewValidationFailedError("insufficient stock for " + item.Name)
	}

	if err := s.inventoryRepo.AdjustQuantity(ctx, workspaceID, req.InventoryID, req.Quantity.Neg()); err != nil {
		s.LogError(ctx, err, "Failed to decrement inventory", slog.String("inventory_id", req.InventoryID))
		return nil, err
	}

	task.InventoryConsumed = append(task.InventoryConsumed, domain.InventoryConsumption{
		InventoryID:  req.InventoryID,
		QuantityUsed: req.Quantity,
	})
	if err := s.taskRepo.UpdateTask(ctx, *task); err != nil {
		s.LogError(ctx, err, "Failed to record inventory consumption", slog.String("task_id", taskID))
		return nil, err
	}
	s.LogInfo(ctx, "Inventory consumed by task",
		slog.String("task_id", taskID),
		slog.String("inventory_id", req.InventoryID),
		slog.String("quantity", req.Quantity.String()))
	return task, nil
}
