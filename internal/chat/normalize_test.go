package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercases", "Roster RRQ", "roster rrq"},
		{"strips punctuation", "jadwal ONIC?!", "jadwal onic"},
		{"collapses whitespace", "  klasemen   MPL \t sekarang ", "klasemen mpl sekarang"},
		{"keeps digits", "top 8 klasemen", "top 8 klasemen"},
		{"empty input", "", ""},
		{"punctuation only", "?!.,", ""},
		{"whitespace only", "   \t\n  ", ""},
		{"mixed unicode letters", "pémain ONIC", "pémain onic"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Normalize(tc.input))
		})
	}
}
