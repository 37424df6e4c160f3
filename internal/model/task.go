package model

import "time"

// Task is the slice of a stored task the assistant reads and writes.
type Task struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Notes            string     `json:"notes,omitempty"`
	Priority         Priority   `json:"priority"`
	Category         Category   `json:"category"`
	CustomCategoryID string     `json:"custom_category_id,omitempty"`
	DueAt            *time.Time `json:"due_at,omitempty"`
	EstimatedMinutes int        `json:"estimated_minutes,omitempty"` // AI estimate, 0 when none was made
	CreatedAt        time.Time  `json:"created_at"`
	StartedAt        *time.Time `json:"started_at,omitempty"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
}

// IsCompleted reports whether the task has a completion time.
func (t Task) IsCompleted() bool {
	return t.CompletedAt != nil
}

// DurationMinutes is the time from start (or creation) to completion, rounded down.
// It is 0 for open tasks and for clocks that run backwards.
func (t Task) DurationMinutes() int {
	if t.CompletedAt == nil {
		return 0
	}
	start := t.CreatedAt
	if t.StartedAt != nil {
		start = *t.StartedAt
	}
	d := t.CompletedAt.Sub(start)
	if d <= 0 {
		return 0
	}
	return int(d / time.Minute)
}

// EffectiveCategoryName resolves the name used for pattern tracking; a custom category wins.
func (t Task) EffectiveCategoryName(custom *CustomCategory) string {
	if custom != nil && custom.Name != "" {
		return custom.Name
	}
	if t.Category == "" {
		return string(CategoryUncategorized)
	}
	return string(t.Category)
}
