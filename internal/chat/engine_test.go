package chat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/HafizhRaihan31/Chatbot-MPL/internal/dataset"
)

func TestAnswerLocally_Roster(t *testing.T) {
	store := newTestStore()

	answer, ok := answerLocally(store, IntentRoster, "ONIC Esports", "")
	assert.True(t, ok)
	assert.Equal(t, "Roster ONIC Esports: Kairi (Jungler), CW (Gold Laner), Sanz (Mid Laner), Butsss (EXP Laner), Kiboy (Roamer)", answer)
	// Staff never show up in the player listing.
	assert.NotContains(t, answer, "Yeb")
}

func TestAnswerLocally_RoleListing(t *testing.T) {
	store := newTestStore()

	answer, ok := answerLocally(store, IntentRoster, "ONIC Esports", dataset.RoleJungler)
	assert.True(t, ok)
	assert.Equal(t, "Jungler ONIC Esports: Kairi", answer)
}

func TestAnswerLocally_Coach(t *testing.T) {
	store := newTestStore()

	// Explicit coach intent.
	answer, ok := answerLocally(store, IntentCoach, "RRQ Hoshi", "")
	assert.True(t, ok)
	assert.Equal(t, "Pelatih RRQ Hoshi adalah Lemon.", answer)

	// "siapa pelatih X" classifies as roster with a resolved coach role and
	// must land on the same answer.
	viaRoster, ok := answerLocally(store, IntentRoster, "RRQ Hoshi", dataset.RoleCoach)
	assert.True(t, ok)
	assert.Equal(t, answer, viaRoster)
}

func TestAnswerLocally_MissingTeamAsks(t *testing.T) {
	store := newTestStore()

	for _, intent := range []Intent{IntentRoster, IntentCoach} {
		answer, ok := answerLocally(store, intent, "", "")
		assert.True(t, ok)
		assert.Equal(t, msgAskTeam, answer)
	}
}

func TestAnswerLocally_Standings(t *testing.T) {
	store := newTestStore()

	answer, ok := answerLocally(store, IntentStandings, "", "")
	assert.True(t, ok)

	lines := strings.Split(answer, "\n")
	// Header plus at most eight rows, in stored order.
	assert.Equal(t, "Klasemen MPL Indonesia:", lines[0])
	assert.Len(t, lines, 1+standingsLimit)
	assert.Equal(t, "1. ONIC Esports (27 poin)", lines[1])
	assert.Equal(t, "8. Dewa United (4 poin)", lines[8])
	assert.NotContains(t, answer, "Rebellion Zion")
}

func TestAnswerLocally_StandingsEmpty(t *testing.T) {
	store := dataset.New(nil, nil, nil, nil)

	answer, ok := answerLocally(store, IntentStandings, "", "")
	assert.True(t, ok)
	assert.Equal(t, msgStandingsUnavailable, answer)
}

func TestAnswerLocally_Schedule(t *testing.T) {
	store := newTestStore()

	answer, ok := answerLocally(store, IntentSchedule, "", "")
	assert.True(t, ok)
	lines := strings.Split(answer, "\n")
	assert.Len(t, lines, scheduleLimit)
	assert.Equal(t, "ONIC Esports vs RRQ Hoshi — 2026-09-05, 18:30", lines[0])
	// Third fixture has no kickoff time recorded.
	assert.Equal(t, "RRQ Hoshi vs EVOS Glory — 2026-09-07", lines[2])
}

func TestAnswerLocally_ScheduleForTeam(t *testing.T) {
	store := newTestStore()

	answer, ok := answerLocally(store, IntentSchedule, "ONIC Esports", "")
	assert.True(t, ok)
	// Team schedules are not truncated.
	assert.Len(t, strings.Split(answer, "\n"), 3)
	assert.NotContains(t, answer, "RRQ Hoshi vs EVOS Glory")
}

func TestAnswerLocally_ScheduleEmpty(t *testing.T) {
	store := dataset.New(nil, nil, nil, nil)

	answer, ok := answerLocally(store, IntentSchedule, "", "")
	assert.True(t, ok)
	assert.Equal(t, msgScheduleUnavailable, answer)
}

func TestAnswerLocally_UnknownRosterFallsBackToMessage(t *testing.T) {
	store := newTestStore()

	// EVOS Glory has a team record but no roster entry.
	answer, ok := answerLocally(store, IntentRoster, "EVOS Glory", "")
	assert.True(t, ok)
	assert.Equal(t, "Roster EVOS Glory belum tersedia.", answer)
}

func TestAnswerLocally_GeneralFallsThrough(t *testing.T) {
	store := newTestStore()

	answer, ok := answerLocally(store, IntentGeneral, "", "")
	assert.False(t, ok)
	assert.Empty(t, answer)
}
