package prompt

import (
	"fmt"
	"strings"
	"time"
)

// RenderOrder builds the ordering prompt; tasks are numbered from 1.
func RenderOrder(tasks []TaskInput, learned string, now time.Time) string {
	var b strings.Builder
	writeLearned(&b, learned)
	fmt.Fprintf(&b, "Order these %d tasks so the user does the most important first. Now: %s.\n\nTASKS:\n", len(tasks), now.Format(dueLayout))
	for i, t := range tasks {
		fmt.Fprintf(&b, "%d. %q", i+1, t.Title)
		if t.Priority != "" {
			fmt.Fprintf(&b, " priority=%s", t.Priority)
		}
		if t.DueAt != nil {
			fmt.Fprintf(&b, " due=%s", relativeDue(*t.DueAt, now))
		}
		if t.Minutes > 0 {
			fmt.Fprintf(&b, " estimate=%dm", t.Minutes)
		}
		b.WriteString("\n")
	}
	writeTail(&b, orderExamples, orderSchema)
	return b.String()
}

// ParseOrder never fails. The reply must list every number 1..n exactly once;
// anything else yields the input order.
func ParseOrder(reply string, n int) Ordering {
	out := Ordering{Order: identity(n), Defaulted: true}

	obj, ok := extractObject(reply)
	if !ok {
		return out
	}
	out.Reasoning, _ = stringField(obj, "reasoning")

	raw, ok := obj["order"].([]any)
	if !ok || len(raw) != n {
		return out
	}

	seen := make([]bool, n)
	order := make([]int, 0, n)
	for _, v := range raw {
		f, ok := v.(float64)
		if !ok || f != float64(int(f)) {
			return out
		}
		idx := int(f) - 1
		if idx < 0 || idx >= n || seen[idx] {
			return out
		}
		seen[idx] = true
		order = append(order, idx)
	}

	out.Order = order
	out.Defaulted = false
	return out
}

func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
