package aicontext

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"task-intelligence/internal/model"
	"task-intelligence/pkg/kvstore"
	"task-intelligence/pkg/log"
)

// Aggregator composes prompt-ready context and owns the UserPatterns counters.
type Aggregator struct {
	mu         sync.Mutex
	tasks      TaskHistory
	categories CategoryDirectory
	learner    Learner
	kv         kvstore.Store
	l          log.Logger
	now        func() time.Time

	patterns UserPatterns
}

// Option customizes an Aggregator.
type Option func(*Aggregator)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(a *Aggregator) { a.now = now }
}

// New creates an Aggregator and restores persisted patterns.
func New(ctx context.Context, tasks TaskHistory, categories CategoryDirectory, learner Learner, kv kvstore.Store, l log.Logger, opts ...Option) (*Aggregator, error) {
	a := &Aggregator{
		tasks:      tasks,
		categories: categories,
		learner:    learner,
		kv:         kv,
		l:          l,
		now:        time.Now,
		patterns:   newUserPatterns(),
	}
	for _, opt := range opts {
		opt(a)
	}

	var stored UserPatterns
	err := kv.Get(ctx, patternsKey, &stored)
	switch {
	case err == nil:
		stored.fill()
		a.patterns = stored
	case !errors.Is(err, kvstore.ErrNotFound):
		return nil, fmt.Errorf("load user patterns: %w", err)
	}
	return a, nil
}

// BuildContext gathers history, narratives and categories. Collaborator failures
// degrade to empty sections; only cancellation is returned as an error.
func (a *Aggregator) BuildContext(ctx context.Context, task *model.Task) (AIContext, error) {
	var (
		recent []model.Task
		custom []model.CustomCategory
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		tasks, err := a.tasks.RecentCompleted(gctx, RecentTaskLimit)
		if err != nil {
			a.l.Warn(ctx, "Failed to read recent tasks", "error", err.Error())
			return nil
		}
		recent = tasks
		return nil
	})
	g.Go(func() error {
		cats, err := a.categories.List(gctx)
		if err != nil {
			a.l.Warn(ctx, "Failed to list custom categories", "error", err.Error())
			return nil
		}
		custom = cats
		return nil
	})
	g.Wait()

	if err := ctx.Err(); err != nil {
		return AIContext{}, err
	}

	names := make(map[string]string, len(custom))
	for _, c := range custom {
		names[c.ID] = c.Name
	}

	summaries := make([]TaskSummary, 0, len(recent))
	for _, t := range recent {
		if len(summaries) == RecentTaskLimit {
			break
		}
		cat := string(t.Category)
		if name, ok := names[t.CustomCategoryID]; ok {
			cat = name
		}
		s := TaskSummary{Title: t.Title, Category: cat, Minutes: t.DurationMinutes()}
		if t.CompletedAt != nil {
			s.CompletedAt = *t.CompletedAt
		}
		summaries = append(summaries, s)
	}

	a.mu.Lock()
	patterns := a.patterns.clone()
	a.mu.Unlock()

	now := a.now()
	return AIContext{
		RecentTasks:          summaries,
		PatternsNarrative:    patternsNarrative(patterns),
		CorrectionsNarrative: a.learner.CorrectionsContext(),
		AccuracyNarrative:    a.learner.DurationAccuracyContext(),
		CustomCategories:     custom,
		TimeOfDay:            model.BucketFor(now),
		Now:                  now,
		Task:                 task,
		PatternEntries:       patterns.Entries(),
		CorrectionCount:      a.learner.Stats().Corrections,
	}, nil
}

// RecordTaskCompletion feeds the pattern counters and, when the task carries an
// AI estimate, the duration accuracy history.
func (a *Aggregator) RecordTaskCompletion(ctx context.Context, task model.Task) error {
	if task.CompletedAt == nil {
		now := a.now()
		task.CompletedAt = &now
	}

	var custom *model.CustomCategory
	if task.CustomCategoryID != "" {
		c, err := a.categories.ByID(ctx, task.CustomCategoryID)
		if err != nil {
			a.l.Warn(ctx, "Custom category not found, using built-in category",
				"category_id", task.CustomCategoryID,
			)
		} else {
			custom = &c
		}
	}

	category := task.EffectiveCategoryName(custom)
	minutes := task.DurationMinutes()
	bucket := model.BucketFor(*task.CompletedAt)

	a.mu.Lock()
	p := &a.patterns
	p.CompletionCount++
	p.CategoryUsage[category]++
	if p.CategoryTimePatterns[category] == nil {
		p.CategoryTimePatterns[category] = map[model.TimeOfDay]int{}
	}
	p.CategoryTimePatterns[category][bucket]++
	p.CompletionsByBucket[bucket]++
	if minutes > 0 {
		p.MinutesByCategory[category] += minutes
		p.TimedByCategory[category]++
	}
	snapshot := p.clone()
	a.mu.Unlock()

	if err := a.kv.Set(ctx, patternsKey, snapshot); err != nil {
		return fmt.Errorf("persist user patterns: %w", err)
	}

	if task.EstimatedMinutes > 0 && minutes > 0 {
		if _, err := a.learner.RecordDurationAccuracy(ctx, category, task.EstimatedMinutes, minutes); err != nil {
			return err
		}
	}
	return nil
}

// ResetPatterns clears every counter.
func (a *Aggregator) ResetPatterns(ctx context.Context) error {
	a.mu.Lock()
	a.patterns = newUserPatterns()
	a.mu.Unlock()

	if err := a.kv.Delete(ctx, patternsKey); err != nil {
		return fmt.Errorf("reset user patterns: %w", err)
	}
	return nil
}

// Patterns returns a copy of the current counters.
func (a *Aggregator) Patterns() UserPatterns {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.patterns.clone()
}
