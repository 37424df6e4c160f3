package usecase

import (
	"sync/atomic"
	"time"

	"task-intelligence/internal/assistant"
	"task-intelligence/internal/task/repository"
	pkgLog "task-intelligence/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	router     assistant.ProviderRouter
	contexts   assistant.ContextBuilder
	learner    assistant.Learner
	tasks      repository.TaskRepository
	categories repository.CategoryRepository
	now        func() time.Time

	processing atomic.Int32
}

// New creates a new assistant UseCase instance.
func New(
	l pkgLog.Logger,
	router assistant.ProviderRouter,
	contexts assistant.ContextBuilder,
	learner assistant.Learner,
	tasks repository.TaskRepository,
	categories repository.CategoryRepository,
) *implUseCase {
	return &implUseCase{
		l:          l,
		router:     router,
		contexts:   contexts,
		learner:    learner,
		tasks:      tasks,
		categories: categories,
		now:        time.Now,
	}
}

// IsProcessing reports whether any backend call is in flight.
func (uc *implUseCase) IsProcessing() bool {
	return uc.processing.Load() > 0
}

// begin marks a backend call in flight until the returned func runs.
func (uc *implUseCase) begin() func() {
	uc.processing.Add(1)
	return func() { uc.processing.Add(-1) }
}
