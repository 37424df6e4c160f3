package usecase

import (
	"context"
	"strings"

	"task-intelligence/internal/assistant"
	"task-intelligence/internal/prompt"
)

// SuggestOrder asks the active backend for a working order. Any reply that is
// not a full permutation keeps the input order.
func (uc *implUseCase) SuggestOrder(ctx context.Context, input assistant.OrderInput) (assistant.OrderOutput, error) {
	if len(input.Tasks) > assistant.MaxOrderTasks {
		return assistant.OrderOutput{}, assistant.ErrTooManyTasks
	}
	for _, t := range input.Tasks {
		if strings.TrimSpace(t.Title) == "" {
			return assistant.OrderOutput{}, assistant.ErrEmptyTitle
		}
	}
	if len(input.Tasks) < 2 {
		return assistant.OrderOutput{Suggested: true, Tasks: ordered(input.Tasks, identity(len(input.Tasks)))}, nil
	}

	done := uc.begin()
	defer done()

	aiCtx, err := uc.contexts.BuildContext(ctx, nil)
	if err != nil {
		return assistant.OrderOutput{}, err
	}

	items := make([]prompt.TaskInput, len(input.Tasks))
	for i, t := range input.Tasks {
		items[i] = toPromptInput(t, categoryName(t, aiCtx.CustomCategories))
	}

	reply, suggested, err := uc.suggest(ctx, "SuggestOrder", prompt.RenderOrder(items, aiCtx.PromptString(), uc.now()))
	if err != nil {
		return assistant.OrderOutput{}, err
	}
	if !suggested {
		return assistant.OrderOutput{Tasks: ordered(input.Tasks, identity(len(input.Tasks)))}, nil
	}

	res := prompt.ParseOrder(reply, len(input.Tasks))
	return assistant.OrderOutput{
		Suggested: true,
		Tasks:     ordered(input.Tasks, res.Order),
		Reasoning: res.Reasoning,
		Defaulted: res.Defaulted,
	}, nil
}

func ordered(tasks []assistant.TaskInput, order []int) []assistant.OrderedTask {
	out := make([]assistant.OrderedTask, len(order))
	for pos, idx := range order {
		out[pos] = assistant.OrderedTask{Position: pos + 1, Index: idx, Task: tasks[idx]}
	}
	return out
}

func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
