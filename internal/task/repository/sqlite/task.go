package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"task-intelligence/internal/model"
	"task-intelligence/internal/task/repository"
	pkgLog "task-intelligence/pkg/log"
)

const (
	defaultListLimit = 50

	taskColumns = `id, title, notes, priority, category, custom_category_id, due_at,
		estimated_minutes, created_at, started_at, completed_at`
)

type taskRepository struct {
	db  *sql.DB
	l   pkgLog.Logger
	now func() time.Time
}

// NewTaskRepository creates a task repository over a migrated database.
func NewTaskRepository(db *sql.DB, l pkgLog.Logger) repository.TaskRepository {
	return &taskRepository{db: db, l: l, now: time.Now}
}

func (r *taskRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	if strings.TrimSpace(opt.Title) == "" {
		return model.Task{}, fmt.Errorf("task title is required")
	}

	t := model.Task{
		ID:               uuid.NewString(),
		Title:            opt.Title,
		Notes:            opt.Notes,
		Priority:         opt.Priority,
		Category:         opt.Category,
		CustomCategoryID: opt.CustomCategoryID,
		DueAt:            opt.DueAt,
		EstimatedMinutes: opt.EstimatedMinutes,
		CreatedAt:        r.now().UTC().Truncate(time.Second),
		StartedAt:        opt.StartedAt,
	}
	if t.Priority == "" {
		t.Priority = model.PriorityNone
	}
	if t.Category == "" {
		t.Category = model.CategoryUncategorized
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (`+taskColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Title, t.Notes, string(t.Priority), string(t.Category), nullString(t.CustomCategoryID),
		nullUnix(t.DueAt), t.EstimatedMinutes, t.CreatedAt.Unix(), nullUnix(t.StartedAt), nil,
	)
	if err != nil {
		r.l.Errorf(ctx, "sqlite repository: failed to create task: %v", err)
		return model.Task{}, err
	}
	return t, nil
}

func (r *taskRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, repository.ErrNotFound
	}
	return t, err
}

func (r *taskRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	limit := opt.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	query := `SELECT ` + taskColumns + ` FROM tasks`
	switch {
	case opt.Completed == nil:
	case *opt.Completed:
		query += ` WHERE completed_at IS NOT NULL`
	default:
		query += ` WHERE completed_at IS NULL`
	}
	query += ` ORDER BY created_at DESC, id LIMIT ? OFFSET ?`

	return r.query(ctx, query, limit, opt.Offset)
}

func (r *taskRepository) RecentCompleted(ctx context.Context, limit int) ([]model.Task, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return r.query(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE completed_at IS NOT NULL ORDER BY completed_at DESC, id LIMIT ?`,
		limit)
}

func (r *taskRepository) CompleteTask(ctx context.Context, id string, at time.Time) (model.Task, error) {
	if err := r.exec(ctx, `UPDATE tasks SET completed_at = ? WHERE id = ?`, at.Unix(), id); err != nil {
		return model.Task{}, err
	}
	return r.GetTask(ctx, id)
}

func (r *taskRepository) UpdateCategory(ctx context.Context, id string, category model.Category, customCategoryID string) error {
	return r.exec(ctx, `UPDATE tasks SET category = ?, custom_category_id = ? WHERE id = ?`,
		string(category), nullString(customCategoryID), id)
}

func (r *taskRepository) UpdatePriority(ctx context.Context, id string, priority model.Priority) error {
	return r.exec(ctx, `UPDATE tasks SET priority = ? WHERE id = ?`, string(priority), id)
}

func (r *taskRepository) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *taskRepository) query(ctx context.Context, query string, args ...any) ([]model.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (model.Task, error) {
	var (
		t                             model.Task
		priority, category            string
		customID                      sql.NullString
		dueAt, startedAt, completedAt sql.NullInt64
		createdAt                     int64
	)
	err := s.Scan(&t.ID, &t.Title, &t.Notes, &priority, &category, &customID, &dueAt,
		&t.EstimatedMinutes, &createdAt, &startedAt, &completedAt)
	if err != nil {
		return model.Task{}, err
	}

	t.Priority = model.Priority(priority)
	t.Category = model.Category(category)
	t.CustomCategoryID = customID.String
	t.CreatedAt = time.Unix(createdAt, 0).UTC()
	t.DueAt = fromUnix(dueAt)
	t.StartedAt = fromUnix(startedAt)
	t.CompletedAt = fromUnix(completedAt)
	return t, nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullUnix(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Unix()
}

func fromUnix(v sql.NullInt64) *time.Time {
	if !v.Valid {
		return nil
	}
	t := time.Unix(v.Int64, 0).UTC()
	return &t
}
