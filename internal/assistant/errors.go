package assistant

import "errors"

var (
	ErrEmptyTitle        = errors.New("task title is required")
	ErrEmptyPrompt       = errors.New("prompt is required")
	ErrTooManyTasks      = errors.New("too many tasks to order")
	ErrInvalidField      = errors.New("unknown correction field")
	ErrInvalidCorrection = errors.New("correction choice is required")
	ErrTaskNotFound      = errors.New("task not found")
)
