package learning

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

const (
	minOccurrences     = 2
	maxPairsPerField   = 3
	maxKeywordPerField = 5
	maxAccuracyLines   = 5

	accurateLow  = 0.9
	accurateHigh = 1.1
)

type pair struct {
	from, to string
}

type counted struct {
	key   string
	value string
	count int
}

// sortCounted orders by count desc, then key, then value.
func sortCounted(items []counted) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].count != items[j].count {
			return items[i].count > items[j].count
		}
		if items[i].key != items[j].key {
			return items[i].key < items[j].key
		}
		return items[i].value < items[j].value
	})
}

// modal returns the most frequent value and its count; ties go to the lexically smallest.
func modal(counts map[string]int) (string, int) {
	best, bestN := "", 0
	for v, n := range counts {
		if n > bestN || (n == bestN && v < best) {
			best, bestN = v, n
		}
	}
	return best, bestN
}

// CorrectionsContext renders the mined correction patterns as prompt narrative.
// It is empty when nothing occurs often enough.
func (s *Store) CorrectionsContext() string {
	s.mu.Lock()
	records := s.liveCorrections()
	s.mu.Unlock()

	byField := make(map[string][]CorrectionRecord)
	for _, r := range records {
		byField[r.Field] = append(byField[r.Field], r)
	}
	fields := make([]string, 0, len(byField))
	for f := range byField {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var b strings.Builder
	for _, field := range fields {
		lines := append(pairLines(byField[field]), keywordLines(byField[field])...)
		if len(lines) == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Corrections to %s suggestions:\n", field)
		for _, l := range lines {
			b.WriteString("- ")
			b.WriteString(l)
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// pairLines reports the most frequent original -> choice changes.
func pairLines(records []CorrectionRecord) []string {
	counts := make(map[pair]int)
	for _, r := range records {
		counts[pair{r.OriginalSuggestion, r.UserChoice}]++
	}

	var items []counted
	for p, n := range counts {
		if n >= minOccurrences {
			items = append(items, counted{key: p.from, value: p.to, count: n})
		}
	}
	sortCounted(items)
	if len(items) > maxPairsPerField {
		items = items[:maxPairsPerField]
	}

	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, fmt.Sprintf("User often changes %s to %s (seen %d times)", it.key, it.value, it.count))
	}
	return lines
}

// keywordLines reports, per keyword, the choice the user makes most often.
func keywordLines(records []CorrectionRecord) []string {
	choices := make(map[string]map[string]int)
	for _, r := range records {
		for _, kw := range r.Keywords {
			if choices[kw] == nil {
				choices[kw] = make(map[string]int)
			}
			choices[kw][r.UserChoice]++
		}
	}

	var items []counted
	for kw, counts := range choices {
		choice, n := modal(counts)
		if n >= minOccurrences {
			items = append(items, counted{key: kw, value: choice, count: n})
		}
	}
	sortCounted(items)
	if len(items) > maxKeywordPerField {
		items = items[:maxKeywordPerField]
	}

	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, fmt.Sprintf("For tasks with '%s', user prefers %s", it.key, it.value))
	}
	return lines
}

// SuggestedOverride returns the choice the user has repeatedly made instead of
// aiSuggestion for tasks sharing a keyword with title.
func (s *Store) SuggestedOverride(field, title, aiSuggestion string) (string, bool) {
	titleKeywords := Keywords(title)
	if len(titleKeywords) == 0 {
		return "", false
	}

	s.mu.Lock()
	records := s.liveCorrections()
	s.mu.Unlock()

	counts := make(map[string]int)
	for _, r := range records {
		if r.Field != field || r.OriginalSuggestion != aiSuggestion {
			continue
		}
		if slices.ContainsFunc(r.Keywords, func(kw string) bool { return slices.Contains(titleKeywords, kw) }) {
			counts[r.UserChoice]++
		}
	}

	choice, n := modal(counts)
	if n < minOccurrences {
		return "", false
	}
	return choice, true
}

// DurationAccuracyContext summarizes, per category with enough history,
// how actual durations compare to estimates.
func (s *Store) DurationAccuracyContext() string {
	s.mu.Lock()
	records := s.liveAccuracy()
	s.mu.Unlock()

	type agg struct {
		sum float64
		n   int
	}
	byCategory := make(map[string]*agg)
	for _, r := range records {
		a := byCategory[r.Category]
		if a == nil {
			a = &agg{}
			byCategory[r.Category] = a
		}
		a.sum += r.Ratio
		a.n++
	}

	var items []counted
	for cat, a := range byCategory {
		if a.n >= minOccurrences {
			items = append(items, counted{key: cat, count: a.n})
		}
	}
	sortCounted(items)
	if len(items) > maxAccuracyLines {
		items = items[:maxAccuracyLines]
	}

	lines := make([]string, 0, len(items))
	for _, it := range items {
		a := byCategory[it.key]
		lines = append(lines, AccuracyLine(it.key, a.sum/float64(a.n)))
	}
	return strings.Join(lines, "\n")
}

// AccuracyLine renders one category's average actual/estimated ratio.
func AccuracyLine(category string, ratio float64) string {
	switch {
	case ratio >= accurateLow && ratio <= accurateHigh:
		return fmt.Sprintf("Estimates for %s tasks are accurate (%.2fx)", category, ratio)
	case ratio > accurateHigh:
		return fmt.Sprintf("%s tasks usually take longer than estimated (%.2fx)", category, ratio)
	default:
		return fmt.Sprintf("%s tasks usually take shorter than estimated (%.2fx)", category, ratio)
	}
}
