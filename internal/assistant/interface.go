package assistant

import (
	"context"

	"task-intelligence/internal/aicontext"
	"task-intelligence/internal/learning"
	"task-intelligence/internal/model"
	"task-intelligence/pkg/llmprovider"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Suggestions
	EstimateDuration(ctx context.Context, input EstimateInput) (EstimateOutput, error)
	SuggestPriority(ctx context.Context, input PriorityInput) (PriorityOutput, error)
	SuggestOrder(ctx context.Context, input OrderInput) (OrderOutput, error)
	Analyze(ctx context.Context, input AnalyzeInput) (AnalyzeOutput, error)
	Complete(ctx context.Context, input CompleteInput) (CompleteOutput, error)

	// Providers
	ConfigureProvider(ctx context.Context, input ProviderInput) error
	RemoveProvider(ctx context.Context, id string) error
	TestConnection(ctx context.Context, input ProviderInput) error
	SetActive(ctx context.Context, id string) string
	AvailableProviders(ctx context.Context) []llmprovider.Descriptor
	Providers(ctx context.Context) ProvidersOutput
	DiscoverModels(ctx context.Context, input ProviderInput) []string

	// Learning
	RecordCorrection(ctx context.Context, input CorrectionInput) (bool, error)
	RecordDurationAccuracy(ctx context.Context, input DurationAccuracyInput) (bool, error)
	RecordImpression(ctx context.Context) error
	CorrectionRate(ctx context.Context, days int) float64
	RecordTaskCompletion(ctx context.Context, input CompletionInput) (model.Task, error)
	Stats(ctx context.Context) StatsOutput
	ResetLearning(ctx context.Context) error

	// IsProcessing reports whether any backend call is in flight.
	IsProcessing() bool
}

// ProviderRouter is the completion router the use case delegates to.
type ProviderRouter interface {
	ActiveProviderID() string
	LastError() error
	AvailableProviders(ctx context.Context) []llmprovider.Descriptor
	Statuses(ctx context.Context) []llmprovider.Status
	SetActive(ctx context.Context, id string) string
	Complete(ctx context.Context, prompt, systemPrompt string) (string, error)
	Configure(ctx context.Context, cfg llmprovider.Configuration, providerID string) error
	RemoveProvider(ctx context.Context, id string) error
	TestConnection(ctx context.Context, cfg llmprovider.Configuration) error
	Configuration(ctx context.Context, id string) llmprovider.Configuration
	DiscoverModels(ctx context.Context, cfg llmprovider.Configuration) []string
}

// Learner is the correction learning store.
type Learner interface {
	RecordCorrection(ctx context.Context, field, original, choice, sourceText string) (bool, error)
	RecordDurationAccuracy(ctx context.Context, category string, estimatedMinutes, actualMinutes int) (bool, error)
	RecordImpression(ctx context.Context) error
	CorrectionRate(days int) float64
	SuggestedOverride(field, title, aiSuggestion string) (string, bool)
	Stats() learning.Stats
	Reset(ctx context.Context) error
}

// ContextBuilder composes per-request context and tracks completion habits.
type ContextBuilder interface {
	BuildContext(ctx context.Context, task *model.Task) (aicontext.AIContext, error)
	RecordTaskCompletion(ctx context.Context, task model.Task) error
	ResetPatterns(ctx context.Context) error
	Patterns() aicontext.UserPatterns
}
