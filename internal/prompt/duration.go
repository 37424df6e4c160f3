package prompt

import (
	"strings"
	"time"
)

// RenderDuration builds the duration-estimate prompt.
func RenderDuration(task TaskInput, learned string, now time.Time) string {
	var b strings.Builder
	writeLearned(&b, learned)
	b.WriteString("Estimate how many minutes the following task will take this user.\n\nTASK:\n")
	writeTask(&b, task, now)
	writeTail(&b, durationExamples, durationSchema)
	return b.String()
}

// ParseDuration never fails; unusable replies yield the default estimate.
func ParseDuration(reply string) DurationEstimate {
	out := DurationEstimate{
		Minutes:    DefaultMinutes,
		Confidence: ConfidenceLow,
		Defaulted:  true,
	}

	obj, ok := extractObject(reply)
	if !ok {
		return out
	}

	if n, ok := intField(obj, "estimated_minutes"); ok {
		out.Minutes = n
		out.Defaulted = false
	}
	out.Minutes = ClampMinutes(out.Minutes)

	switch c := Confidence(enumField(obj, "confidence")); c {
	case ConfidenceLow, ConfidenceMedium, ConfidenceHigh:
		out.Confidence = c
	}
	out.Reasoning, _ = stringField(obj, "reasoning")
	return out
}
