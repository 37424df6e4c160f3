package aicontext

import (
	"time"

	"task-intelligence/internal/model"
)

const (
	RecentTaskLimit   = 10
	MinimalQuality    = 0.2
	patternsKey       = "ai.user_patterns"
	maxPatternLines   = 5
	patternSaturation = 20
	correctionSat     = 10
)

// UserPatterns are counters fed by task completions. Cleared only by ResetPatterns.
type UserPatterns struct {
	CategoryUsage        map[string]int                     `json:"category_usage"`
	CategoryTimePatterns map[string]map[model.TimeOfDay]int `json:"category_time_patterns"`
	CompletionCount      int                                `json:"completion_count"`
	MinutesByCategory    map[string]int                     `json:"minutes_by_category"`
	TimedByCategory      map[string]int                     `json:"timed_by_category"` // completions with a known duration
	CompletionsByBucket  map[model.TimeOfDay]int            `json:"completions_by_bucket"`
}

func newUserPatterns() UserPatterns {
	return UserPatterns{
		CategoryUsage:        map[string]int{},
		CategoryTimePatterns: map[string]map[model.TimeOfDay]int{},
		MinutesByCategory:    map[string]int{},
		TimedByCategory:      map[string]int{},
		CompletionsByBucket:  map[model.TimeOfDay]int{},
	}
}

// fill replaces nil maps after decoding older snapshots.
func (p *UserPatterns) fill() {
	def := newUserPatterns()
	if p.CategoryUsage == nil {
		p.CategoryUsage = def.CategoryUsage
	}
	if p.CategoryTimePatterns == nil {
		p.CategoryTimePatterns = def.CategoryTimePatterns
	}
	if p.MinutesByCategory == nil {
		p.MinutesByCategory = def.MinutesByCategory
	}
	if p.TimedByCategory == nil {
		p.TimedByCategory = def.TimedByCategory
	}
	if p.CompletionsByBucket == nil {
		p.CompletionsByBucket = def.CompletionsByBucket
	}
}

// Entries counts distinct pattern facts: categories used plus category/time pairs.
func (p UserPatterns) Entries() int {
	n := len(p.CategoryUsage)
	for _, buckets := range p.CategoryTimePatterns {
		n += len(buckets)
	}
	return n
}

func (p UserPatterns) clone() UserPatterns {
	out := newUserPatterns()
	out.CompletionCount = p.CompletionCount
	for k, v := range p.CategoryUsage {
		out.CategoryUsage[k] = v
	}
	for k, buckets := range p.CategoryTimePatterns {
		inner := make(map[model.TimeOfDay]int, len(buckets))
		for b, v := range buckets {
			inner[b] = v
		}
		out.CategoryTimePatterns[k] = inner
	}
	for k, v := range p.MinutesByCategory {
		out.MinutesByCategory[k] = v
	}
	for k, v := range p.TimedByCategory {
		out.TimedByCategory[k] = v
	}
	for k, v := range p.CompletionsByBucket {
		out.CompletionsByBucket[k] = v
	}
	return out
}

// TaskSummary is one recently completed task as shown to the model.
type TaskSummary struct {
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Minutes     int       `json:"minutes"`
	CompletedAt time.Time `json:"completed_at"`
}

// AIContext is composed per request and never persisted.
type AIContext struct {
	RecentTasks          []TaskSummary
	PatternsNarrative    string
	CorrectionsNarrative string
	AccuracyNarrative    string
	CustomCategories     []model.CustomCategory
	TimeOfDay            model.TimeOfDay
	Now                  time.Time
	Task                 *model.Task

	PatternEntries  int
	CorrectionCount int
}
