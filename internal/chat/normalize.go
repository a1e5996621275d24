// Package chat implements the hybrid query router: questions are answered
// from the dataset when possible and handed to a generation provider only
// when local resolution has nothing to say.
package chat

import (
	"strings"
	"unicode"
)

// Normalize lowercases the message, strips everything that is neither letter,
// digit, nor whitespace, and collapses runs of whitespace. An empty result
// signals an empty question.
func Normalize(s string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(r)
		case unicode.IsSpace(r):
			sb.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}
