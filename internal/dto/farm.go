package dto

import (
	"time"

	"github.com/agrisage/farm_management_app/internal/core/domain"

	"github.com/shopspring/decimal"
)

// --- Plot DTOs ---

// CreatePlotRequest defines data for registering a plot.
type CreatePlotRequest struct {
	Name     string  `json:"name" binding:"required,max=120"`
	Crop     string  `json:"crop,omitempty"`
	Area     float64 `json:"area" binding:"omitempty,gte=0"`
	SoilType string  `json:"soilType,omitempty"`
}

// UpdatePlotRequest defines data for updating a plot.
type UpdatePlotRequest struct {
	Name     *string  `json:"name,omitempty" binding:"omitempty,max=120"`
	Crop     *string  `json:"crop,omitempty"`
	Area     *float64 `json:"area,omitempty" binding:"omitempty,gte=0"`
	SoilType *string  `json:"soilType,omitempty"`
}

// PlotResponse defines data returned for a plot.
type PlotResponse struct {
	PlotID      string  `json:"plotID"`
	WorkspaceID string  `json:"workspaceID"`
	Name        string  `json:"name"`
	Crop        string  `json:"crop,omitempty"`
	Area        float64 `json:"area"`
	SoilType    string  `json:"soilType,omitempty"`
}

// ToPlotResponse converts domain.Plot to DTO.
func ToPlotResponse(p *domain.Plot) PlotResponse {
	return PlotResponse{
		PlotID:      p.PlotID,
		WorkspaceID: p.WorkspaceID,
		Name:        p.Name,
		Crop:        p.Crop,
		Area:        p.Area,
		SoilType:    p.SoilType,
	}
}

// --- Season DTOs ---

// CreateSeasonRequest defines data for opening a season.
type CreateSeasonRequest struct {
	Name string `json:"name" binding:"required,max=120"`
	Year int    `json:"year" binding:"required,gte=1970,lte=2200"`
}

// UpdateSeasonRequest defines data for updating a season.
type UpdateSeasonRequest struct {
	Name *string `json:"name,omitempty" binding:"omitempty,max=120"`
	Year *int    `json:"year,omitempty" binding:"omitempty,gte=1970,lte=2200"`
}

// SeasonResponse defines data returned for a season.
type SeasonResponse struct {
	SeasonID    string `json:"seasonID"`
	WorkspaceID string `json:"workspaceID"`
	Name        string `json:"name"`
	Year        int    `json:"year"`
}

// ToSeasonResponse converts domain.Season to DTO.
func ToSeasonResponse(s *domain.Season) SeasonResponse {
	return SeasonResponse{
		SeasonID:    s.SeasonID,
		WorkspaceID: s.WorkspaceID,
		Name:        s.Name,
		Year:        s.Year,
	}
}

// --- Task DTOs ---

// CreateTaskRequest defines data for creating an operations task.
type CreateTaskRequest struct {
	Title        string          `json:"title" binding:"required,max=200"`
	Description  string          `json:"description,omitempty"`
	Status       string          `json:"status,omitempty" binding:"omitempty,oneof=To-Do 'In Progress' Blocked Done"`
	Priority     string          `json:"priority,omitempty" binding:"omitempty,oneof=Low Medium High"`
	Category     string          `json:"category,omitempty"`
	Cost         decimal.Decimal `json:"cost"`
	AssigneeID   string          `json:"assigneeID,omitempty"`
	PlotID       string          `json:"plotID,omitempty"`
	DueDate      time.Time       `json:"dueDate" binding:"required"`
	ReminderDate *time.Time      `json:"reminderDate,omitempty"`
}

// UpdateTaskRequest defines data for updating a task.
type UpdateTaskRequest struct {
	Title        *string          `json:"title,omitempty" binding:"omitempty,max=200"`
	Description  *string          `json:"description,omitempty"`
	Status       *string          `json:"status,omitempty" binding:"omitempty,oneof=To-Do 'In Progress' Blocked Done"`
	Priority     *string          `json:"priority,omitempty" binding:"omitempty,oneof=Low Medium High"`
	Category     *string          `json:"category,omitempty"`
	Cost         *decimal.Decimal `json:"cost,omitempty"`
	AssigneeID   *string          `json:"assigneeID,omitempty"`
	PlotID       *string          `json:"plotID,omitempty"`
	DueDate      *time.Time       `json:"dueDate,omitempty"`
	ReminderDate *time.Time       `json:"reminderDate,omitempty"`
}

// AddTaskCommentRequest appends a comment to a task.
type AddTaskCommentRequest struct {
	Content string `json:"content" binding:"required,max=2000"`
}

// ConsumeInventoryRequest records stock used by a task and decrements the
// inventory item.
type ConsumeInventoryRequest struct {
	InventoryID string          `json:"inventoryID" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
}

// TaskResponse defines data returned for a task. Comments and consumption
// reuse the domain shapes directly.
type TaskResponse struct {
	TaskID            string                        `json:"taskID"`
	WorkspaceID       string                        `json:"workspaceID"`
	Title             string                        `json:"title"`
	Description       string                        `json:"description,omitempty"`
	Status            string                        `json:"status"`
	Priority          string                        `json:"priority"`
	Category          string                        `json:"category,omitempty"`
	Cost              decimal.Decimal               `json:"cost"`
	AssigneeID        string                        `json:"assigneeID,omitempty"`
	PlotID            string                        `json:"plotID,omitempty"`
	DueDate           time.Time                     `json:"dueDate"`
	ReminderDate      *time.Time                    `json:"reminderDate,omitempty"`
	Comments          []domain.TaskComment          `json:"comments"`
	InventoryConsumed []domain.InventoryConsumption `json:"inventoryConsumed"`
	CreatedAt         time.Time                     `json:"createdAt"`
}

// ToTaskResponse converts domain.Task to DTO.
func ToTaskResponse(t *domain.Task) TaskResponse {
	comments := t.Comments
	if comments == nil {
		comments = []domain.TaskComment{}
	}
	consumed := t.InventoryConsumed
	if consumed == nil {
		consumed = []domain.InventoryConsumption{}
	}
	return TaskResponse{
		TaskID:            t.TaskID,
		WorkspaceID:       t.WorkspaceID,
		Title:             t.Title,
		Description:       t.Description,
		Status:            string(t.Status),
		Priority:          string(t.Priority),
		Category:          t.Category,
		Cost:              t.Cost,
		AssigneeID:        t.AssigneeID,
		PlotID:            t.PlotID,
		DueDate:           t.DueDate,
		ReminderDate:      t.ReminderDate,
		Comments:          comments,
		InventoryConsumed: consumed,
		CreatedAt:         t.CreatedAt,
	}
}
