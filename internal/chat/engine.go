package chat

import (
	"fmt"
	"strings"

	"github.com/HafizhRaihan31/Chatbot-MPL/internal/dataset"
)

// Rendering caps for deterministic answers.
const (
	standingsLimit = 8
	scheduleLimit  = 5
)

// Fixed user-facing messages. Failures stay short, polite, and in the
// dataset's language; internal error text never leaks here.
const (
	msgRefusal              = "Maaf, aku hanya bisa menjawab seputar MPL Indonesia: tim, roster, jadwal, dan klasemen."
	msgAskTeam              = "Sebutkan nama timnya, contoh: roster RRQ"
	msgStandingsUnavailable = "Data klasemen belum tersedia."
	msgScheduleUnavailable  = "Jadwal belum tersedia."
	msgNoLocalAnswer        = "Maaf, aku belum bisa menjawab pertanyaan itu dari data yang ada."
)

var roleLabels = map[string]string{
	dataset.RoleJungler:   "Jungler",
	dataset.RoleGoldLaner: "Gold Laner",
	dataset.RoleExpLaner:  "EXP Laner",
	dataset.RoleMidLaner:  "Mid Laner",
	dataset.RoleRoamer:    "Roamer",
	dataset.RoleCoach:     "Pelatih",
	dataset.RoleAnalyst:   "Analis",
}

func roleLabel(key string) string {
	if label, ok := roleLabels[key]; ok {
		return label
	}
	return key
}

// answerLocally is the flat decision table over (intent, team, role). The
// second return is false only for the single branch that is allowed to fall
// through to the generation provider; every other branch decides its answer
// here, including the honest "not available" ones.
func answerLocally(store *dataset.Store, intent Intent, team, role string) (string, bool) {
	hasTeam := team != ""
	hasRole := role != ""

	switch {
	case intent == IntentRoster && hasTeam && hasRole && role == dataset.RoleCoach,
		intent == IntentCoach && hasTeam:
		return coachAnswer(store, team), true

	case intent == IntentRoster && hasTeam && hasRole:
		return roleListing(store, team, role), true

	case intent == IntentRoster && hasTeam:
		return rosterListing(store, team), true

	case intent == IntentRoster, intent == IntentCoach:
		// Team missing: ask for it instead of guessing or burning quota.
		return msgAskTeam, true

	case intent == IntentStandings:
		return standingsTable(store), true

	case intent == IntentSchedule && hasTeam:
		return scheduleListing(store.MatchesFor(team), 0), true

	case intent == IntentSchedule:
		return scheduleListing(store.Schedule(), scheduleLimit), true

	default:
		return "", false
	}
}

func rosterListing(store *dataset.Store, team string) string {
	roster, ok := store.Roster(team)
	if !ok {
		return fmt.Sprintf("Roster %s belum tersedia.", team)
	}

	var parts []string
	for _, p := range roster.Players {
		if !dataset.IsPlayerRole(p.RoleKey) {
			continue
		}
		role := p.Role
		if role == "" {
			role = "-"
		}
		parts = append(parts, fmt.Sprintf("%s (%s)", p.Name, role))
	}
	if len(parts) == 0 {
		return fmt.Sprintf("Roster %s belum tersedia.", team)
	}
	return fmt.Sprintf("Roster %s: %s", team, strings.Join(parts, ", "))
}

func roleListing(store *dataset.Store, team, role string) string {
	roster, ok := store.Roster(team)
	if !ok {
		return fmt.Sprintf("Data %s %s belum tersedia.", strings.ToLower(roleLabel(role)), team)
	}

	var names []string
	for _, p := range roster.Players {
		if p.RoleKey == role {
			names = append(names, p.Name)
		}
	}
	if len(names) == 0 {
		return fmt.Sprintf("Data %s %s belum tersedia.", strings.ToLower(roleLabel(role)), team)
	}
	return fmt.Sprintf("%s %s: %s", roleLabel(role), team, strings.Join(names, ", "))
}

func coachAnswer(store *dataset.Store, team string) string {
	t, ok := store.TeamByName(team)
	if !ok || t.Coach == "" {
		return fmt.Sprintf("Data pelatih %s belum tersedia.", team)
	}
	return fmt.Sprintf("Pelatih %s adalah %s.", t.Name, t.Coach)
}

func standingsTable(store *dataset.Store) string {
	standings := store.Standings()
	if len(standings) == 0 {
		return msgStandingsUnavailable
	}

	var sb strings.Builder
	sb.WriteString("Klasemen MPL Indonesia:")
	for i, entry := range standings {
		if i >= standingsLimit {
			break
		}
		fmt.Fprintf(&sb, "\n%d. %s (%d poin)", entry.Rank, entry.Team, entry.Points)
	}
	return sb.String()
}

func scheduleListing(matches []dataset.MatchEntry, limit int) string {
	if len(matches) == 0 {
		return msgScheduleUnavailable
	}
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	lines := make([]string, 0, len(matches))
	for _, m := range matches {
		date := m.Date
		if date == "" {
			date = "TBA"
		}
		line := fmt.Sprintf("%s vs %s — %s", m.Team1, m.Team2, date)
		if m.Time != "" {
			line += ", " + m.Time
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
