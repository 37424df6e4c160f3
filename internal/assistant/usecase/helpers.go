package usecase

import (
	"context"
	"errors"
	"strings"

	"task-intelligence/internal/assistant"
	"task-intelligence/internal/model"
	"task-intelligence/internal/prompt"
	"task-intelligence/internal/task/repository"
	"task-intelligence/pkg/llmprovider"
)

// suggest sends a structured prompt and decides how the reply may be used.
// A malformed reply is handed to the parser (suggested=true, empty reply) so it
// falls back to defaults; a transport failure means no suggestion at all.
func (uc *implUseCase) suggest(ctx context.Context, op, promptText string) (reply string, suggested bool, err error) {
	reply, err = uc.router.Complete(ctx, promptText, prompt.SystemInstruction)
	if err == nil {
		return reply, true, nil
	}
	if errors.Is(err, context.Canceled) || ctx.Err() != nil {
		return "", false, err
	}

	switch {
	case errors.Is(err, llmprovider.ErrMalformedResponse):
		uc.l.Warnf(ctx, "uc.%s: malformed reply, using defaults", op)
		return "", true, nil
	case errors.Is(err, llmprovider.ErrTransport):
		uc.l.Warnf(ctx, "uc.%s: backend unreachable, no suggestion", op)
		return "", false, nil
	default:
		uc.l.Errorf(ctx, "uc.%s: %s", op, llmprovider.Summary(err))
		return "", false, err
	}
}

func toPromptInput(t assistant.TaskInput, categoryName string) prompt.TaskInput {
	return prompt.TaskInput{
		Title:    strings.TrimSpace(t.Title),
		Notes:    t.Notes,
		DueAt:    t.DueAt,
		Priority: t.Priority,
		Category: categoryName,
		Minutes:  t.EstimatedMinutes,
	}
}

func toModelTask(t assistant.TaskInput) model.Task {
	return model.Task{
		Title:            strings.TrimSpace(t.Title),
		Notes:            t.Notes,
		DueAt:            t.DueAt,
		Priority:         t.Priority,
		Category:         t.Category,
		CustomCategoryID: t.CustomCategoryID,
		EstimatedMinutes: t.EstimatedMinutes,
	}
}

func fromModelTask(t model.Task) assistant.TaskInput {
	return assistant.TaskInput{
		Title:            t.Title,
		Notes:            t.Notes,
		DueAt:            t.DueAt,
		Priority:         t.Priority,
		Category:         t.Category,
		CustomCategoryID: t.CustomCategoryID,
		EstimatedMinutes: t.EstimatedMinutes,
	}
}

// categoryName is the display name of a task's category within the given directory.
func categoryName(t assistant.TaskInput, custom []model.CustomCategory) string {
	if t.CustomCategoryID != "" {
		for _, c := range custom {
			if c.ID == t.CustomCategoryID {
				return c.Name
			}
		}
	}
	if t.Category == "" || t.Category == model.CategoryUncategorized {
		return ""
	}
	return string(t.Category)
}

func (uc *implUseCase) getTask(ctx context.Context, id string) (model.Task, error) {
	t, err := uc.tasks.GetTask(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Task{}, assistant.ErrTaskNotFound
	}
	return t, err
}

func (uc *implUseCase) providerConfig(in assistant.ProviderInput) llmprovider.Configuration {
	return llmprovider.Configuration{
		ProviderID: in.ProviderID,
		Endpoint:   strings.TrimSpace(in.Endpoint),
		ModelID:    strings.TrimSpace(in.ModelID),
		Credential: in.Credential,
	}
}

// resolveProviderConfig fills a request that names only a provider from its stored configuration.
func (uc *implUseCase) resolveProviderConfig(ctx context.Context, in assistant.ProviderInput) llmprovider.Configuration {
	cfg := uc.providerConfig(in)
	if cfg.Endpoint != "" || cfg.ModelID != "" {
		return cfg
	}
	stored := uc.router.Configuration(ctx, in.ProviderID)
	if cfg.Credential != "" {
		stored.Credential = cfg.Credential
	}
	return stored
}
