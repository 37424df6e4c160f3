package prompt

import (
	"strings"
	"time"

	"task-intelligence/internal/model"
)

// RenderPriority builds the priority-suggestion prompt.
func RenderPriority(task TaskInput, learned string, now time.Time) string {
	var b strings.Builder
	writeLearned(&b, learned)
	b.WriteString("Suggest a priority for the following task. Consider the deadline relative to now: ")
	b.WriteString(now.Format(dueLayout))
	b.WriteString(".\n\nTASK:\n")
	writeTask(&b, task, now)
	writeTail(&b, priorityExamples, prioritySchema)
	return b.String()
}

// ParsePriority never fails; unknown or missing priorities become medium.
func ParsePriority(reply string) PrioritySuggestion {
	out := PrioritySuggestion{Priority: model.PriorityMedium, Defaulted: true}

	obj, ok := extractObject(reply)
	if !ok {
		return out
	}
	if p, ok := model.ParsePriority(enumField(obj, "priority")); ok {
		out.Priority = p
		out.Defaulted = false
	}
	out.Reasoning, _ = stringField(obj, "reasoning")
	return out
}
