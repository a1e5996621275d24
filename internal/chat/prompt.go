package chat

import (
	"encoding/json"
	"fmt"

	"github.com/HafizhRaihan31/Chatbot-MPL/internal/dataset"
)

// Prompt slice caps. The full dataset is never sent; the slice is chosen by
// intent to keep token cost bounded.
const (
	maxPromptTeams     = 40
	maxPromptStandings = 8
	maxPromptSchedule  = 30
)

const systemPrompt = "Kamu adalah chatbot MPL Indonesia. " +
	"Gunakan DATA berikut bila relevan dan JANGAN mengarang. " +
	"Jawab singkat, jelas, faktual."

// buildPrompt assembles the system/user message pair for the generation
// fallback. The question goes in verbatim; the data slice depends on intent.
func buildPrompt(store *dataset.Store, intent Intent, question string) (system, user string) {
	var data interface{}

	switch intent {
	case IntentStandings:
		data = capStandings(store.Standings(), maxPromptStandings)
	case IntentSchedule:
		data = capSchedule(store.Schedule(), maxPromptSchedule)
	default:
		data = teamSummaries(store.Teams(), maxPromptTeams)
	}

	encoded, err := json.Marshal(data)
	if err != nil {
		encoded = []byte("[]")
	}

	user = fmt.Sprintf("DATA:\n%s\n\nPERTANYAAN:\n%s", encoded, question)
	return systemPrompt, user
}

func capStandings(entries []dataset.StandingEntry, limit int) []dataset.StandingEntry {
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

func capSchedule(matches []dataset.MatchEntry, limit int) []dataset.MatchEntry {
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

func teamSummaries(teams []dataset.Team, limit int) []string {
	out := make([]string, 0, len(teams))
	for _, t := range teams {
		if len(out) >= limit {
			break
		}
		summary := t.Name
		if t.Coach != "" {
			summary += " (pelatih: " + t.Coach + ")"
		}
		out = append(out, summary)
	}
	return out
}
