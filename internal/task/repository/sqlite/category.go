package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"task-intelligence/internal/model"
	"task-intelligence/internal/task/repository"
	pkgLog "task-intelligence/pkg/log"
)

type categoryRepository struct {
	db *sql.DB
	l  pkgLog.Logger
}

// NewCategoryRepository creates the custom category directory over a migrated database.
func NewCategoryRepository(db *sql.DB, l pkgLog.Logger) repository.CategoryRepository {
	return &categoryRepository{db: db, l: l}
}

func (r *categoryRepository) List(ctx context.Context) ([]model.CustomCategory, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, color FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.CustomCategory{}
	for rows.Next() {
		var c model.CustomCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Color); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *categoryRepository) ByID(ctx context.Context, id string) (model.CustomCategory, error) {
	return r.one(ctx, `SELECT id, name, color FROM categories WHERE id = ?`, id)
}

func (r *categoryRepository) ByName(ctx context.Context, name string) (model.CustomCategory, error) {
	return r.one(ctx, `SELECT id, name, color FROM categories WHERE name = ?`, name)
}

func (r *categoryRepository) Create(ctx context.Context, name, color string) (model.CustomCategory, error) {
	c := model.CustomCategory{ID: uuid.NewString(), Name: strings.TrimSpace(name), Color: color}
	if c.Name == "" {
		return model.CustomCategory{}, errors.New("category name is required")
	}
	if _, err := r.db.ExecContext(ctx, `INSERT INTO categories (id, name, color) VALUES (?, ?, ?)`, c.ID, c.Name, c.Color); err != nil {
		r.l.Errorf(ctx, "sqlite repository: failed to create category: %v", err)
		return model.CustomCategory{}, err
	}
	return c, nil
}

func (r *categoryRepository) one(ctx context.Context, query string, arg string) (model.CustomCategory, error) {
	var c model.CustomCategory
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&c.ID, &c.Name, &c.Color)
	if errors.Is(err, sql.ErrNoRows) {
		return model.CustomCategory{}, repository.ErrNotFound
	}
	return c, err
}
