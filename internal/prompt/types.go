package prompt

import (
	"time"

	"task-intelligence/internal/model"
)

// Confidence is the model's self-reported certainty.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// TaskInput is the task data a prompt is rendered from.
type TaskInput struct {
	Title    string
	Notes    string
	DueAt    *time.Time
	Priority model.Priority
	Category string // display name, built-in key or custom
	Minutes  int    // existing estimate, 0 when none
}

// DurationEstimate is the parsed duration reply.
type DurationEstimate struct {
	Minutes    int        `json:"minutes"`
	Confidence Confidence `json:"confidence"`
	Reasoning  string     `json:"reasoning"`
	Defaulted  bool       `json:"-"`
}

// PrioritySuggestion is the parsed priority reply.
type PrioritySuggestion struct {
	Priority  model.Priority `json:"priority"`
	Reasoning string         `json:"reasoning"`
	Defaulted bool           `json:"-"`
}

// Ordering is the parsed order reply. Order holds 0-based indices into the input list.
type Ordering struct {
	Order     []int  `json:"order"`
	Reasoning string `json:"reasoning"`
	Defaulted bool   `json:"-"`
}

// Analysis is the parsed full-analysis reply.
// A matched custom category sets CustomCategoryID and leaves Category uncategorized.
type Analysis struct {
	EstimatedMinutes     int             `json:"estimated_minutes"`
	SuggestedPriority    model.Priority  `json:"suggested_priority"`
	BestTimeOfDay        model.TimeOfDay `json:"best_time_of_day"`
	Category             model.Category  `json:"category"`
	CustomCategoryID     string          `json:"custom_category_id,omitempty"`
	CustomCategoryName   string          `json:"custom_category_name,omitempty"`
	ProposedNewCategory  string          `json:"proposed_new_category,omitempty"`
	Subtasks             []string        `json:"subtasks"`
	Tips                 []string        `json:"tips"`
	RefinedTitle         string          `json:"refined_title,omitempty"`
	SuggestedDescription string          `json:"suggested_description,omitempty"`
	Defaulted            bool            `json:"-"`
}

// DefaultAnalysis is returned when a reply cannot be used at all.
func DefaultAnalysis() Analysis {
	return Analysis{
		EstimatedMinutes:  DefaultMinutes,
		SuggestedPriority: model.PriorityMedium,
		BestTimeOfDay:     model.TimeAnytime,
		Category:          model.CategoryUncategorized,
		Subtasks:          []string{},
		Tips:              []string{},
		Defaulted:         true,
	}
}
