package chatbot

import (
	"strings"
	"unicode"
)

// normalizeTopic canonicalizes a question for trending aggregation: lowercase,
// punctuation treated as whitespace, runs of whitespace collapsed.
func normalizeTopic(q string) string {
	lowered := strings.ToLower(strings.TrimSpace(q))
	var builder strings.Builder
	builder.Grow(len(lowered))
	lastSpace := true
	for _, r := range lowered {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			builder.WriteRune(r)
			lastSpace = false
			continue
		}
		if !lastSpace {
			builder.WriteRune(' ')
			lastSpace = true
		}
	}
	return strings.TrimSpace(builder.String())
}
