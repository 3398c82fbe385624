package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Plot is a parcel of land under cultivation.
type Plot struct {
	PlotID      string  `json:"plotID"` // Primary Key
	WorkspaceID string  `json:"workspaceID"`
	Name        string  `json:"name"`
	Crop        string  `json:"crop"`
	Area        float64 `json:"area"`
	SoilType    string  `json:"soilType"`
}

// Season is a named growing period (e.g. "Long Rains 2025").
type Season struct {
	SeasonID    string `json:"seasonID"` // Primary Key
	WorkspaceID string `json:"workspaceID"`
	Name        string `json:"name"`
	Year        int    `json:"year"`
}

// TaskStatus tracks a task through its lifecycle.
type TaskStatus string

const (
	TaskToDo       TaskStatus = "To-Do"
	TaskInProgress TaskStatus = "In Progress"
	TaskBlocked    TaskStatus = "Blocked"
	TaskDone       TaskStatus = "Done"
)

// TaskPriority is the urgency level of a task.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "Low"
	PriorityMedium TaskPriority = "Medium"
	PriorityHigh   TaskPriority = "High"
)

// TaskComment is a note left on a task by a member.
type TaskComment struct {
	CommentID string    `json:"commentID"`
	AuthorID  string    `json:"authorId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// InventoryConsumption records stock drawn down while performing a task.
type InventoryConsumption struct {
	InventoryID  string          `json:"inventoryId"`
	QuantityUsed decimal.Decimal `json:"quantityUsed"`
}

// Task is a unit of farm work, optionally tied to a plot and an assignee.
type Task struct {
	TaskID            string                 `json:"taskID"` // Primary Key
	WorkspaceID       string                 `json:"workspaceID"`
	Title             string                 `json:"title"`
	Description       string                 `json:"description"`
	PlotID            string                 `json:"plotId,omitempty"`
	AssigneeID        string                 `json:"assigneeId,omitempty"`
	DueDate           time.Time              `json:"dueDate"`
	Status            TaskStatus             `json:"status"`
	Cost              decimal.Decimal        `json:"cost"`
	Priority          TaskPriority           `json:"priority"`
	Category          string                 `json:"category"`
	CreatedAt         time.Time              `json:"createdAt"`
	Comments          []TaskComment          `json:"comments"`
	ReminderDate      *time.Time             `json:"reminderDate,omitempty"`
	InventoryConsumed []InventoryConsumption `json:"inventoryConsumed,omitempty"`
}
