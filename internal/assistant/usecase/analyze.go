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

// Analyze runs the full task analysis and applies learned overrides.
func (uc *implUseCase) Analyze(ctx context.Context, input assistant.AnalyzeInput) (assistant.AnalyzeOutput, error) {
	in := input.Task
	if input.TaskID != "" {
		stored, err := uc.getTask(ctx, input.TaskID)
		if err != nil {
			return assistant.AnalyzeOutput{}, err
		}
		in = fromModelTask(stored)
	}
	if strings.TrimSpace(in.Title) == "" {
		return assistant.AnalyzeOutput{}, assistant.ErrEmptyTitle
	}

	done := uc.begin()
	defer done()

	task := toModelTask(in)
	aiCtx, err := uc.contexts.BuildContext(ctx, &task)
	if err != nil {
		return assistant.AnalyzeOutput{}, err
	}

	custom := aiCtx.CustomCategories
	text := prompt.RenderAnalysis(toPromptInput(in, categoryName(in, custom)), custom, aiCtx.PromptString(), uc.now())
	reply, suggested, err := uc.suggest(ctx, "Analyze", text)
	if err != nil {
		return assistant.AnalyzeOutput{}, err
	}

	out := assistant.AnalyzeOutput{
		Suggested:         suggested,
		ContextQuality:    aiCtx.Quality(),
		HasMinimalContext: aiCtx.HasMinimalContext(),
	}
	if !suggested {
		return out, nil
	}

	out.Analysis = prompt.ParseAnalysis(reply, custom)
	out.Personalized = uc.applyOverrides(&out.Analysis, task.Title, custom)
	return out, nil
}

// applyOverrides swaps in choices the user has repeatedly made over the same suggestion.
func (uc *implUseCase) applyOverrides(a *prompt.Analysis, title string, custom []model.CustomCategory) bool {
	changed := false

	if choice, ok := uc.learner.SuggestedOverride(learning.FieldPriority, title, string(a.SuggestedPriority)); ok {
		if p, ok := model.ParsePriority(choice); ok {
			a.SuggestedPriority = p
			changed = true
		}
	}

	if choice, ok := uc.learner.SuggestedOverride(learning.FieldTimeOfDay, title, string(a.BestTimeOfDay)); ok {
		if t, ok := model.ParseTimeOfDay(choice); ok {
			a.BestTimeOfDay = t
			changed = true
		}
	}

	if choice, ok := uc.learner.SuggestedOverride(learning.FieldDuration, title, strconv.Itoa(a.EstimatedMinutes)); ok {
		if n, err := strconv.Atoi(choice); err == nil {
			a.EstimatedMinutes = prompt.ClampMinutes(n)
			changed = true
		}
	}

	current := string(a.Category)
	if a.CustomCategoryName != "" {
		current = a.CustomCategoryName
	}
	if choice, ok := uc.learner.SuggestedOverride(learning.FieldCategory, title, current); ok {
		if setCategory(a, choice, custom) {
			changed = true
		}
	}

	return changed
}

// setCategory applies a category by built-in key or exact custom name.
func setCategory(a *prompt.Analysis, name string, custom []model.CustomCategory) bool {
	if c, ok := model.ParseCategory(name); ok {
		a.Category = c
		a.CustomCategoryID = ""
		a.CustomCategoryName = ""
		a.ProposedNewCategory = ""
		return true
	}
	for _, c := range custom {
		if c.Name == name {
			a.Category = model.CategoryUncategorized
			a.CustomCategoryID = c.ID
			a.CustomCategoryName = c.Name
			a.ProposedNewCategory = ""
			return true
		}
	}
	return false
}
