package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSnapshot(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoad_FullSnapshot(t *testing.T) {
	dir := t.TempDir()

	writeSnapshot(t, dir, "teams.json", `[
		{"name": "ONIC Esports", "team_code": "ONIC", "logo": "onic.png"},
		{"team": "RRQ Hoshi", "team_code": "RRQ"},
		{"team_code": "EVOS"}
	]`)
	writeSnapshot(t, dir, "teams_detail.json", `[
		{"team": "ONIC Esports", "players": [
			{"name": "Kairi", "role": "Jungler"},
			{"name": "Yeb", "role": "Coach"},
			{"name": "", "role": "Jungler"}
		]}
	]`)
	writeSnapshot(t, dir, "standings.json", `[
		{"rank": "1", "team": "ONIC Esports", "matchPoint": "27", "matchWL": "9-1"},
		{"rank": "2", "team": "RRQ Hoshi", "matchPoint": "24", "matchWL": "8-2"}
	]`)
	writeSnapshot(t, dir, "schedule.json", `[
		{"team1": "ONIC Esports", "team2": "RRQ Hoshi", "date": "2026-09-05", "time": "18:30"}
	]`)

	store, err := Load(dir)
	require.NoError(t, err)

	teams := store.Teams()
	require.Len(t, teams, 3)
	// Display name falls back from name to team to team_code.
	assert.Equal(t, "ONIC Esports", teams[0].Name)
	assert.Equal(t, "RRQ Hoshi", teams[1].Name)
	assert.Equal(t, "EVOS", teams[2].Name)

	// Coach promoted from roster staff.
	assert.Equal(t, "Yeb", teams[0].Coach)

	roster, ok := store.Roster("ONIC Esports")
	require.True(t, ok)
	// Nameless player entries are dropped at load.
	require.Len(t, roster.Players, 2)
	assert.Equal(t, RoleJungler, roster.Players[0].RoleKey)
	assert.Equal(t, RoleCoach, roster.Players[1].RoleKey)

	standings := store.Standings()
	require.Len(t, standings, 2)
	assert.Equal(t, 1, standings[0].Rank)
	assert.Equal(t, 27, standings[0].Points)
	assert.Equal(t, "9-1", standings[0].Record)

	schedule := store.Schedule()
	require.Len(t, schedule, 1)
	assert.Equal(t, "18:30", schedule[0].Time)
	assert.Empty(t, schedule[0].Phase)
}

func TestLoad_MissingFilesAreEmpty(t *testing.T) {
	store, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Empty(t, store.Teams())
	assert.Empty(t, store.Standings())
	assert.Empty(t, store.Schedule())
}

func TestLoad_MalformedJSONFails(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, dir, "teams.json", `{"not": "an array"`)

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "teams.json")
}

func TestLoad_PhasedSchedule(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, dir, "schedule.json", `{
		"playoffs": [
			{"team1": "ONIC Esports", "team2": "EVOS Glory", "date": "2026-09-12"}
		],
		"regular": [
			{"team1": "ONIC Esports", "team2": "RRQ Hoshi", "date": "2026-09-05"},
			{"team1": "RRQ Hoshi", "team2": "EVOS Glory", "date": "2026-09-06"}
		]
	}`)

	store, err := Load(dir)
	require.NoError(t, err)

	schedule := store.Schedule()
	require.Len(t, schedule, 3)
	// Regular phase always precedes playoffs regardless of key order.
	assert.Equal(t, "regular", schedule[0].Phase)
	assert.Equal(t, "regular", schedule[1].Phase)
	assert.Equal(t, "playoffs", schedule[2].Phase)

	assert.Len(t, store.ScheduleByPhase("regular"), 2)
	assert.Len(t, store.ScheduleByPhase("playoffs"), 1)
}

func TestMatchesFor(t *testing.T) {
	store := New(nil, nil, nil, []MatchEntry{
		{Team1: "ONIC Esports", Team2: "RRQ Hoshi"},
		{Team1: "EVOS Glory", Team2: "Alter Ego"},
		{Team1: "RRQ Hoshi", Team2: "EVOS Glory"},
	})

	assert.Len(t, store.MatchesFor("RRQ Hoshi"), 2)
	assert.Len(t, store.MatchesFor("ONIC Esports"), 1)
	assert.Empty(t, store.MatchesFor("Geek Fam"))
}

func TestTeamByName(t *testing.T) {
	store := New([]Team{
		{Name: "ONIC Esports", Code: "ONIC"},
		{Name: "RRQ Hoshi", Code: "RRQ", Aliases: []string{"rex regum qeon"}},
	}, nil, nil, nil)

	tests := []struct {
		query    string
		expected string
		found    bool
	}{
		{"ONIC", "ONIC Esports", true},
		{"onic esports", "ONIC Esports", true},
		{"rrq", "RRQ Hoshi", true},
		{"rex regum qeon", "RRQ Hoshi", true},
		{"hoshi", "RRQ Hoshi", true},
		{"geek fam", "", false},
		{"", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			team, ok := store.TeamByName(tc.query)
			assert.Equal(t, tc.found, ok)
			assert.Equal(t, tc.expected, team.Name)
		})
	}
}

func TestRosterKeyMatchesScrapedLabels(t *testing.T) {
	// Scraped roster pages often carry decorated titles; the roster still has
	// to land on the canonical team.
	store := New(
		[]Team{{Name: "Bigetron Alpha", Code: "BTR"}},
		[]RosterEntry{{Team: "Bigetron Alpha MPL ID S13", Players: []Player{{Name: "Nino", Role: "Mid Laner"}}}},
		nil, nil,
	)

	roster, ok := store.Roster("Bigetron Alpha")
	require.True(t, ok)
	assert.Equal(t, "Nino", roster.Players[0].Name)
}

func TestExplicitCoachIsNotOverwritten(t *testing.T) {
	store := New(
		[]Team{{Name: "ONIC Esports", Coach: "Adi"}},
		[]RosterEntry{{Team: "ONIC Esports", Players: []Player{{Name: "Yeb", Role: "Coach"}}}},
		nil, nil,
	)

	team, ok := store.TeamByName("ONIC Esports")
	require.True(t, ok)
	assert.Equal(t, "Adi", team.Coach)
}
