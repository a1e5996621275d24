package chat

import (
	"strings"

	"github.com/HafizhRaihan31/Chatbot-MPL/internal/dataset"
)

// editThreshold is the fixed typo tolerance for alias matching.
const editThreshold = 1

// Resolve returns the first canonical key whose alias set matches the
// normalized text, either as an exact substring or within edit distance 1 of
// a token window. Keys are tried in declaration order and the first match
// wins, so resolution is deterministic. The second return is false when
// nothing qualifies; that is not an error.
func Resolve(text string, m *dataset.AliasMap) (string, bool) {
	words := strings.Fields(text)
	for _, key := range m.Keys() {
		for _, alias := range m.Aliases(key) {
			if aliasMatches(text, words, alias) {
				return key, true
			}
		}
	}
	return "", false
}

func aliasMatches(text string, words []string, alias string) bool {
	if strings.Contains(text, alias) {
		return true
	}

	// Compare the alias against every window of the same word count.
	n := len(strings.Fields(alias))
	if n == 0 {
		return false
	}
	for i := 0; i+n <= len(words); i++ {
		window := strings.Join(words[i:i+n], " ")
		if editDistance(window, alias) <= editThreshold {
			return true
		}
	}
	return false
}

// editDistance is the standard DP Levenshtein distance with unit costs for
// insertion, deletion, and substitution.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
