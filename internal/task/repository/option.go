package repository

import (
	"time"

	"task-intelligence/internal/model"
)

// CreateTaskOptions holds the parameters for creating a task.
type CreateTaskOptions struct {
	Title            string
	Notes            string
	Priority         model.Priority // default: none
	Category         model.Category // default: uncategorized
	CustomCategoryID string
	DueAt            *time.Time
	EstimatedMinutes int
	StartedAt        *time.Time
}

// ListTasksOptions holds the parameters for listing tasks.
type ListTasksOptions struct {
	Completed *bool // nil lists both open and completed tasks
	Limit     int   // default 50
	Offset    int
}
