package prompt

import (
	"encoding/json"
	"strings"
)

// extractObject finds the JSON object in a model reply. The whole text is tried
// first, then every balanced {...} span in order of its opening brace.
func extractObject(text string) (map[string]any, bool) {
	if obj, ok := decodeObject(strings.TrimSpace(text)); ok {
		return obj, true
	}

	for start := strings.IndexByte(text, '{'); start >= 0; {
		if end := matchingBrace(text, start); end > start {
			if obj, ok := decodeObject(text[start : end+1]); ok {
				return obj, true
			}
		}
		next := strings.IndexByte(text[start+1:], '{')
		if next < 0 {
			break
		}
		start += next + 1
	}
	return nil, false
}

// matchingBrace returns the index of the brace closing s[start], or -1.
// Braces inside JSON strings are ignored.
func matchingBrace(s string, start int) int {
	depth := 0
	inString, escaped := false, false

	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func decodeObject(s string) (map[string]any, bool) {
	if s == "" || s[0] != '{' {
		return nil, false
	}
	var obj map[string]any
	if err := json.Unmarshal([]byte(s), &obj); err != nil {
		return nil, false
	}
	return obj, true
}
