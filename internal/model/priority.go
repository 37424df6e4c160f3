package model

// Priority is the user-facing urgency level.
type Priority string

const (
	PriorityNone   Priority = "none"
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority maps a raw string onto a known Priority.
func ParsePriority(s string) (Priority, bool) {
	switch p := Priority(s); p {
	case PriorityNone, PriorityLow, PriorityMedium, PriorityHigh:
		return p, true
	}
	return "", false
}
