package chat

import (
	"strings"

	"github.com/HafizhRaihan31/Chatbot-MPL/internal/dataset"
)

// domainKeywords are the fixed signals that mark a question as in-domain even
// when it names no team or role.
var domainKeywords = []string{
	"mpl",
	"jadwal",
	"schedule",
	"kapan",
	"klasemen",
	"standing",
	"ranking",
	"peringkat",
	"roster",
	"pemain",
	"player",
	"lineup",
	"pelatih",
	"coach",
	"tim",
	"team",
	"match",
}

// InDomain reports whether normalized text concerns the league at all: a
// known team alias, a known role alias, or a domain keyword. Matching is
// exact substring; typo tolerance is deliberately left to the resolver so an
// off-domain question never costs more than this scan.
func InDomain(text string, teams, roles *dataset.AliasMap) bool {
	if teams.ContainsAlias(text) || roles.ContainsAlias(text) {
		return true
	}
	for _, kw := range domainKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
