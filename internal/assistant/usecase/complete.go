package usecase

import (
	"context"
	"strings"

	"task-intelligence/internal/assistant"
)

// Complete passes a free-form prompt straight to the active backend.
func (uc *implUseCase) Complete(ctx context.Context, input assistant.CompleteInput) (assistant.CompleteOutput, error) {
	if strings.TrimSpace(input.Prompt) == "" {
		return assistant.CompleteOutput{}, assistant.ErrEmptyPrompt
	}

	done := uc.begin()
	defer done()

	text, err := uc.router.Complete(ctx, input.Prompt, input.SystemPrompt)
	if err != nil {
		return assistant.CompleteOutput{}, err
	}
	return assistant.CompleteOutput{Text: text}, nil
}
