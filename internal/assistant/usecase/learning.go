package usecase

import (
	"context"
	"errors"
	"strings"

	"task-intelligence/internal/assistant"
	"task-intelligence/internal/learning"
	"task-intelligence/internal/model"
	"task-intelligence/internal/task/repository"
)

var correctionFields = map[string]bool{
	learning.FieldPriority:  true,
	learning.FieldCategory:  true,
	learning.FieldDuration:  true,
	learning.FieldTimeOfDay: true,
}

// RecordCorrection stores a user override and, for a stored task, applies it.
// It reports false when the choice equals the suggestion.
func (uc *implUseCase) RecordCorrection(ctx context.Context, input assistant.CorrectionInput) (bool, error) {
	if !correctionFields[input.Field] {
		return false, assistant.ErrInvalidField
	}
	if input.Choice == "" {
		return false, assistant.ErrInvalidCorrection
	}

	// An unknown task is rejected before anything is recorded.
	source := input.SourceText
	if input.TaskID != "" {
		task, err := uc.getTask(ctx, input.TaskID)
		if err != nil {
			return false, err
		}
		if source == "" {
			source = task.Title
		}
	}

	recorded, err := uc.learner.RecordCorrection(ctx, input.Field, input.Original, input.Choice, source)
	if err != nil {
		uc.l.Errorf(ctx, "uc.RecordCorrection: %v", err)
		return false, err
	}
	if !recorded || input.TaskID == "" {
		return recorded, nil
	}

	if err := uc.applyCorrection(ctx, input); err != nil {
		uc.l.Errorf(ctx, "uc.RecordCorrection applyCorrection: %v", err)
		return true, err
	}
	return true, nil
}

// applyCorrection writes the user's choice back to the task store.
func (uc *implUseCase) applyCorrection(ctx context.Context, input assistant.CorrectionInput) error {
	var err error
	switch input.Field {
	case learning.FieldPriority:
		p, ok := model.ParsePriority(input.Choice)
		if !ok {
			return nil
		}
		err = uc.tasks.UpdatePriority(ctx, input.TaskID, p)

	case learning.FieldCategory:
		if c, ok := model.ParseCategory(input.Choice); ok {
			err = uc.tasks.UpdateCategory(ctx, input.TaskID, c, "")
			break
		}
		custom, lookupErr := uc.categories.ByName(ctx, input.Choice)
		if lookupErr != nil {
			uc.l.Warn(ctx, "Corrected category is not in the directory", "task_id", input.TaskID)
			return nil
		}
		err = uc.tasks.UpdateCategory(ctx, input.TaskID, model.CategoryUncategorized, custom.ID)

	default:
		return nil
	}

	if errors.Is(err, repository.ErrNotFound) {
		return assistant.ErrTaskNotFound
	}
	return err
}

// RecordDurationAccuracy stores an estimate against its actual duration.
func (uc *implUseCase) RecordDurationAccuracy(ctx context.Context, input assistant.DurationAccuracyInput) (bool, error) {
	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = string(model.CategoryUncategorized)
	}
	return uc.learner.RecordDurationAccuracy(ctx, category, input.EstimatedMinutes, input.ActualMinutes)
}

// RecordImpression marks one suggestion as shown.
func (uc *implUseCase) RecordImpression(ctx context.Context) error {
	return uc.learner.RecordImpression(ctx)
}

// CorrectionRate is corrections over impressions in the last days, in [0,1].
func (uc *implUseCase) CorrectionRate(ctx context.Context, days int) float64 {
	return uc.learner.CorrectionRate(days)
}

// RecordTaskCompletion completes a stored task (or accepts a completed one) and feeds habits.
func (uc *implUseCase) RecordTaskCompletion(ctx context.Context, input assistant.CompletionInput) (model.Task, error) {
	task := input.Task
	if input.TaskID != "" {
		completed, err := uc.tasks.CompleteTask(ctx, input.TaskID, uc.now())
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, assistant.ErrTaskNotFound
		}
		if err != nil {
			uc.l.Errorf(ctx, "uc.RecordTaskCompletion CompleteTask: %v", err)
			return model.Task{}, err
		}
		task = completed
	} else if strings.TrimSpace(task.Title) == "" {
		return model.Task{}, assistant.ErrEmptyTitle
	}

	if err := uc.contexts.RecordTaskCompletion(ctx, task); err != nil {
		uc.l.Errorf(ctx, "uc.RecordTaskCompletion: %v", err)
		return model.Task{}, err
	}
	return task, nil
}

// Stats summarizes the learning state.
func (uc *implUseCase) Stats(ctx context.Context) assistant.StatsOutput {
	patterns := uc.contexts.Patterns()
	return assistant.StatsOutput{
		Stats:           uc.learner.Stats(),
		CompletionCount: patterns.CompletionCount,
		PatternEntries:  patterns.Entries(),
		CorrectionRate:  uc.learner.CorrectionRate(0),
	}
}

// ResetLearning clears corrections, accuracy history, impressions and habits.
func (uc *implUseCase) ResetLearning(ctx context.Context) error {
	if err := uc.learner.Reset(ctx); err != nil {
		return err
	}
	return uc.contexts.ResetPatterns(ctx)
}
