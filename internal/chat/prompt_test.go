package chat

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HafizhRaihan31/Chatbot-MPL/internal/dataset"
)

func TestBuildPrompt_QuestionGoesInVerbatim(t *testing.T) {
	store := newTestStore()

	system, user := buildPrompt(store, IntentGeneral, "Apa itu MPL?")
	assert.Equal(t, systemPrompt, system)
	assert.True(t, strings.HasSuffix(user, "PERTANYAAN:\nApa itu MPL?"))
	assert.True(t, strings.HasPrefix(user, "DATA:\n"))
}

func TestBuildPrompt_SliceByIntent(t *testing.T) {
	store := newTestStore()

	_, standingsUser := buildPrompt(store, IntentStandings, "klasemen?")
	assert.Contains(t, standingsUser, "ONIC Esports")
	assert.NotContains(t, standingsUser, "Rebellion Zion") // row 9, beyond the cap

	_, scheduleUser := buildPrompt(store, IntentSchedule, "jadwal?")
	assert.Contains(t, scheduleUser, "2026-09-05")

	_, generalUser := buildPrompt(store, IntentGeneral, "halo")
	assert.Contains(t, generalUser, "ONIC Esports")
	// Team summaries carry the promoted coach.
	assert.Contains(t, generalUser, "pelatih: Yeb")
}

func TestBuildPrompt_TeamCap(t *testing.T) {
	teams := make([]dataset.Team, 0, maxPromptTeams+5)
	for i := 0; i < maxPromptTeams+5; i++ {
		teams = append(teams, dataset.Team{Name: fmt.Sprintf("Team %02d", i)})
	}
	store := dataset.New(teams, nil, nil, nil)

	_, user := buildPrompt(store, IntentGeneral, "halo")
	require.Contains(t, user, fmt.Sprintf("Team %02d", maxPromptTeams-1))
	assert.NotContains(t, user, fmt.Sprintf("Team %02d", maxPromptTeams))
}
