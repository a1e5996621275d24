package chat

import "strings"

// Intent buckets a question into one of the router's fixed categories.
type Intent string

const (
	IntentSchedule  Intent = "schedule"
	IntentStandings Intent = "standings"
	IntentRoster    Intent = "roster"
	IntentCoach     Intent = "coach"
	IntentGeneral   Intent = "general"
)

// intentRules is an ordered keyword table; the first category with a hit
// wins. Schedule and standings come before roster on purpose: mixed-keyword
// questions are common and ties resolve toward the earlier category.
var intentRules = []struct {
	intent   Intent
	keywords []string
}{
	{IntentSchedule, []string{"jadwal", "kapan", "schedule", "when"}},
	{IntentStandings, []string{"klasemen", "standing", "ranking", "peringkat"}},
	{IntentRoster, []string{"roster", "pemain", "player", "lineup", "siapa"}},
	{IntentCoach, []string{"pelatih", "coach"}},
}

// ClassifyIntent runs the ordered keyword test over normalized text.
func ClassifyIntent(text string) Intent {
	for _, rule := range intentRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.intent
			}
		}
	}
	return IntentGeneral
}
