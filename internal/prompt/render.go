package prompt

import (
	"fmt"
	"strings"
	"time"
)

const dueLayout = "Mon Jan 2 2006 15:04"

func writeLearned(b *strings.Builder, learned string) {
	if strings.TrimSpace(learned) == "" {
		return
	}
	b.WriteString("WHAT YOU KNOW ABOUT THIS USER:\n")
	b.WriteString(learned)
	b.WriteString("\n\n")
}

func writeTask(b *strings.Builder, t TaskInput, now time.Time) {
	fmt.Fprintf(b, "Title: %q\n", t.Title)
	if notes := strings.TrimSpace(t.Notes); notes != "" {
		fmt.Fprintf(b, "Notes: %q\n", notes)
	}
	if t.DueAt != nil {
		fmt.Fprintf(b, "Due: %s (%s)\n", t.DueAt.Format(dueLayout), relativeDue(*t.DueAt, now))
	}
	if t.Priority != "" {
		fmt.Fprintf(b, "Current priority: %s\n", t.Priority)
	}
	if t.Category != "" {
		fmt.Fprintf(b, "Current category: %s\n", t.Category)
	}
	if t.Minutes > 0 {
		fmt.Fprintf(b, "Current estimate: %d minutes\n", t.Minutes)
	}
}

// relativeDue describes due relative to now in whole calendar days.
func relativeDue(due, now time.Time) string {
	y1, m1, d1 := now.Date()
	y2, m2, d2 := due.In(now.Location()).Date()
	days := int(time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC).Sub(time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)).Hours() / 24)

	switch {
	case days < 0:
		return fmt.Sprintf("overdue by %d day(s)", -days)
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	default:
		return fmt.Sprintf("in %d days", days)
	}
}

func writeTail(b *strings.Builder, examples, schema string) {
	b.WriteString("\n")
	b.WriteString(examples)
	b.WriteString("\n\n")
	b.WriteString(schema)
	b.WriteString("\n\nReturn ONLY the JSON object.")
}
