package usecase

import (
	"context"
	"strconv"
	"strings"

	"task-intelligence/internal/assistant"
	"task-intelligence/internal/learning"
	"task-intelligence/internal/model"
	"task-intelligence/internal/prompt"
)

// EstimateDuration asks the active backend how long a task will take.
func (uc *implUseCase) EstimateDuration(ctx context.Context, input assistant.EstimateInput) (assistant.EstimateOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return assistant.EstimateOutput{}, assistant.ErrEmptyTitle
	}

	done := uc.begin()
	defer done()

	task := model.Task{Title: title, Notes: input.Notes}
	aiCtx, err := uc.contexts.BuildContext(ctx, &task)
	if err != nil {
		return assistant.EstimateOutput{}, err
	}

	text := prompt.RenderDuration(prompt.TaskInput{Title: title, Notes: input.Notes}, aiCtx.PromptString(), uc.now())
	reply, suggested, err := uc.suggest(ctx, "EstimateDuration", text)
	if err != nil || !suggested {
		return assistant.EstimateOutput{}, err
	}

	est := prompt.ParseDuration(reply)
	out := assistant.EstimateOutput{
		Suggested:      true,
		Minutes:        est.Minutes,
		Confidence:     est.Confidence,
		Reasoning:      est.Reasoning,
		Defaulted:      est.Defaulted,
		ContextQuality: aiCtx.Quality(),
	}
	if choice, ok := uc.learner.SuggestedOverride(learning.FieldDuration, title, strconv.Itoa(est.Minutes)); ok {
		if n, err := strconv.Atoi(choice); err == nil {
			out.Minutes = prompt.ClampMinutes(n)
			out.Personalized = true
		}
	}
	return out, nil
}

// SuggestPriority asks the active backend how urgent a task is.
func (uc *implUseCase) SuggestPriority(ctx context.Context, input assistant.PriorityInput) (assistant.PriorityOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return assistant.PriorityOutput{}, assistant.ErrEmptyTitle
	}

	done := uc.begin()
	defer done()

	task := model.Task{Title: title, Notes: input.Notes, DueAt: input.DueAt}
	aiCtx, err := uc.contexts.BuildContext(ctx, &task)
	if err != nil {
		return assistant.PriorityOutput{}, err
	}

	text := prompt.RenderPriority(prompt.TaskInput{Title: title, Notes: input.Notes, DueAt: input.DueAt}, aiCtx.PromptString(), uc.now())
	reply, suggested, err := uc.suggest(ctx, "SuggestPriority", text)
	if err != nil || !suggested {
		return assistant.PriorityOutput{}, err
	}

	sug := prompt.ParsePriority(reply)
	out := assistant.PriorityOutput{
		Suggested:      true,
		Priority:       sug.Priority,
		Reasoning:      sug.Reasoning,
		Defaulted:      sug.Defaulted,
		ContextQuality: aiCtx.Quality(),
	}
	if choice, ok := uc.learner.SuggestedOverride(learning.FieldPriority, title, string(sug.Priority)); ok {
		if p, ok := model.ParsePriority(choice); ok {
			out.Priority = p
			out.Personalized = true
		}
	}
	return out, nil
}
