package aicontext

import (
	"context"

	"task-intelligence/internal/learning"
	"task-intelligence/internal/model"
)

// TaskHistory is the read side of the task store.
type TaskHistory interface {
	RecentCompleted(ctx context.Context, limit int) ([]model.Task, error)
}

// CategoryDirectory looks up user-defined categories.
type CategoryDirectory interface {
	List(ctx context.Context) ([]model.CustomCategory, error)
	ByID(ctx context.Context, id string) (model.CustomCategory, error)
}

// Learner is the part of the learning store the aggregator reads and feeds.
type Learner interface {
	CorrectionsContext() string
	DurationAccuracyContext() string
	Stats() learning.Stats
	RecordDurationAccuracy(ctx context.Context, category string, estimatedMinutes, actualMinutes int) (bool, error)
}
