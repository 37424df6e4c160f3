package prompt

import (
	"math"
	"strconv"
	"strings"
)

// numericLimit keeps float-to-int conversion well inside int range.
const numericLimit = 1 << 30

// intField reads an int or float (rounded) and tolerates numeric strings.
func intField(obj map[string]any, key string) (int, bool) {
	var f float64
	switch v := obj[key].(type) {
	case float64:
		f = v
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	f = math.Max(-numericLimit, math.Min(numericLimit, math.Round(f)))
	return int(f), true
}

// stringField treats null, missing, non-string and blank values alike.
func stringField(obj map[string]any, key string) (string, bool) {
	s, ok := obj[key].(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

// enumField lowercases the value for enum matching.
func enumField(obj map[string]any, key string) string {
	s, _ := stringField(obj, key)
	return strings.ToLower(s)
}

// stringList reads an array of strings; a lone string counts as one element.
func stringList(obj map[string]any, key string) []string {
	out := []string{}
	switch v := obj[key].(type) {
	case string:
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				if s = strings.TrimSpace(s); s != "" {
					out = append(out, s)
				}
			}
		}
	}
	return out
}

// ClampMinutes bounds an estimate to [MinMinutes, MaxMinutes].
func ClampMinutes(n int) int {
	if n < MinMinutes {
		return MinMinutes
	}
	if n > MaxMinutes {
		return MaxMinutes
	}
	return n
}
