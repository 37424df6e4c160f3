package assistant

import (
	"time"

	"task-intelligence/internal/learning"
	"task-intelligence/internal/model"
	"task-intelligence/internal/prompt"
	"task-intelligence/pkg/llmprovider"
)

// MaxOrderTasks bounds a single ordering request.
const MaxOrderTasks = 50

// --- Shared ---

// TaskInput is a task as supplied by the caller; it need not be stored.
type TaskInput struct {
	Title            string
	Notes            string
	DueAt            *time.Time
	Priority         model.Priority
	Category         model.Category
	CustomCategoryID string
	EstimatedMinutes int
}

// --- UseCase Inputs ---

type EstimateInput struct {
	Title string
	Notes string
}

type PriorityInput struct {
	Title string
	Notes string
	DueAt *time.Time
}

type OrderInput struct {
	Tasks []TaskInput
}

// AnalyzeInput analyzes a stored task when TaskID is set, otherwise Task.
type AnalyzeInput struct {
	TaskID string
	Task   TaskInput
}

type CompleteInput struct {
	Prompt       string
	SystemPrompt string
}

type ProviderInput struct {
	ProviderID string
	Endpoint   string
	ModelID    string
	Credential string
}

// CorrectionInput records one override. TaskID, when set, also applies the
// choice to the stored task.
type CorrectionInput struct {
	Field      string
	Original   string
	Choice     string
	SourceText string
	TaskID     string
}

type DurationAccuracyInput struct {
	Category         string
	EstimatedMinutes int
	ActualMinutes    int
}

// CompletionInput completes the stored task TaskID, or records Task as completed
// when TaskID is empty.
type CompletionInput struct {
	TaskID string
	Task   model.Task
}

// --- UseCase Outputs ---

// Suggested is false when the backend could not be reached; the caller shows no suggestion.
type EstimateOutput struct {
	Suggested      bool
	Minutes        int
	Confidence     prompt.Confidence
	Reasoning      string
	Defaulted      bool
	Personalized   bool
	ContextQuality float64
}

type PriorityOutput struct {
	Suggested      bool
	Priority       model.Priority
	Reasoning      string
	Defaulted      bool
	Personalized   bool
	ContextQuality float64
}

// OrderedTask is one input task at its suggested 1-based Position.
// Index points back into the input list.
type OrderedTask struct {
	Position int
	Index    int
	Task     TaskInput
}

type OrderOutput struct {
	Suggested bool
	Tasks     []OrderedTask
	Reasoning string
	Defaulted bool
}

type AnalyzeOutput struct {
	Suggested         bool
	Analysis          prompt.Analysis
	Personalized      bool
	ContextQuality    float64
	HasMinimalContext bool
}

type CompleteOutput struct {
	Text string
}

type ProvidersOutput struct {
	Active    string
	Providers []llmprovider.Status
	LastError string
}

type StatsOutput struct {
	learning.Stats
	CompletionCount int
	PatternEntries  int
	CorrectionRate  float64
}
