package learning

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const minKeywordLen = 3

var stopWords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`the and for with from that this have has had was were are not but you your
		our out all any can will would should could into onto about after before again then than them they their
		there here what when where which who whom why how its it's also just very too some more most other such
		only own same each few both off over under once been being does did doing get got let may might must
		shall upon via per etc now new need needs make made take todo task tasks`) {
		stopWords[w] = struct{}{}
	}
}

// Keywords returns lowercase tokens of at least three letters, without stop words or duplicates.
func Keywords(text string) []string {
	tokens := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})

	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.Trim(tok, "'")
		if utf8.RuneCountInString(tok) < minKeywordLen {
			continue
		}
		if _, stop := stopWords[tok]; stop {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out
}
