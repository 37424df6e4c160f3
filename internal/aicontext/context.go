package aicontext

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"task-intelligence/internal/model"
)

const timeLayout = "Mon Jan 2 2006 15:04"

// Quality estimates how much personalization signal is available, in [0,1].
func (c AIContext) Quality() float64 {
	recent := math.Min(float64(len(c.RecentTasks))/RecentTaskLimit, 1)
	patterns := math.Min(float64(c.PatternEntries)/patternSaturation, 1)
	corrections := math.Min(float64(c.CorrectionCount)/correctionSat, 1)
	return recent*0.3 + patterns*0.4 + corrections*0.3
}

// HasMinimalContext reports whether suggestions can be presented with some confidence.
func (c AIContext) HasMinimalContext() bool {
	return c.Quality() >= MinimalQuality
}

// PromptString renders the context as one narrative block.
func (c AIContext) PromptString() string {
	var b strings.Builder

	if !c.Now.IsZero() {
		fmt.Fprintf(&b, "Current time: %s (%s)\n", c.Now.Format(timeLayout), c.TimeOfDay)
	}

	if len(c.RecentTasks) > 0 {
		b.WriteString("Recently completed tasks:\n")
		for _, t := range c.RecentTasks {
			fmt.Fprintf(&b, "- %q (%s", t.Title, t.Category)
			if t.Minutes > 0 {
				fmt.Fprintf(&b, ", %d min", t.Minutes)
			}
			b.WriteString(")\n")
		}
	}

	writeBlock(&b, "Habits:", c.PatternsNarrative)
	writeBlock(&b, "Past corrections:", c.CorrectionsNarrative)
	writeBlock(&b, "Estimate accuracy:", c.AccuracyNarrative)

	return strings.TrimRight(b.String(), "\n")
}

func writeBlock(b *strings.Builder, title, body string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n")
}

// patternsNarrative describes the most used categories with their usual time and length.
func patternsNarrative(p UserPatterns) string {
	type usage struct {
		name  string
		count int
	}
	cats := make([]usage, 0, len(p.CategoryUsage))
	for name, n := range p.CategoryUsage {
		cats = append(cats, usage{name, n})
	}
	sort.Slice(cats, func(i, j int) bool {
		if cats[i].count != cats[j].count {
			return cats[i].count > cats[j].count
		}
		return cats[i].name < cats[j].name
	})
	if len(cats) > maxPatternLines {
		cats = cats[:maxPatternLines]
	}

	var lines []string
	for _, c := range cats {
		if c.count < 2 {
			continue
		}
		line := fmt.Sprintf("- %s: %d completed", c.name, c.count)
		if bucket, ok := usualBucket(p.CategoryTimePatterns[c.name]); ok {
			line += fmt.Sprintf(", usually in the %s", bucket)
		}
		if timed := p.TimedByCategory[c.name]; timed > 0 {
			line += fmt.Sprintf(", about %d min each", p.MinutesByCategory[c.name]/timed)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// usualBucket returns the modal bucket when it covers at least half the completions.
func usualBucket(buckets map[model.TimeOfDay]int) (model.TimeOfDay, bool) {
	total, best, bestN := 0, model.TimeOfDay(""), 0
	for b, n := range buckets {
		total += n
		if n > bestN || (n == bestN && b < best) {
			best, bestN = b, n
		}
	}
	if total == 0 || bestN*2 < total {
		return "", false
	}
	return best, true
}
