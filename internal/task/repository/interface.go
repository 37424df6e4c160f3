package repository

import (
	"context"
	"errors"
	"time"

	"task-intelligence/internal/model"
)

// ErrNotFound is returned when a task or category id/name is unknown.
var ErrNotFound = errors.New("not found")

// TaskRepository is the task store the assistant reads history from and
// writes correction bookkeeping to.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	GetTask(ctx context.Context, id string) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	// RecentCompleted returns completed tasks, most recently completed first.
	RecentCompleted(ctx context.Context, limit int) ([]model.Task, error)
	CompleteTask(ctx context.Context, id string, at time.Time) (model.Task, error)
	UpdateCategory(ctx context.Context, id string, category model.Category, customCategoryID string) error
	UpdatePriority(ctx context.Context, id string, priority model.Priority) error
}

// CategoryRepository is the directory of user-defined categories.
type CategoryRepository interface {
	List(ctx context.Context) ([]model.CustomCategory, error)
	ByID(ctx context.Context, id string) (model.CustomCategory, error)
	// ByName matches exactly, including case.
	ByName(ctx context.Context, name string) (model.CustomCategory, error)
	Create(ctx context.Context, name, color string) (model.CustomCategory, error)
}
