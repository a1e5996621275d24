package chat

import (
	"context"
	"sync/atomic"

	"github.com/HafizhRaihan31/Chatbot-MPL/internal/dataset"
)

// newTestStore builds the fixture snapshot the chat tests run against.
func newTestStore() *dataset.Store {
	teams := []dataset.Team{
		{Name: "ONIC Esports", Code: "ONIC"},
		{Name: "RRQ Hoshi", Code: "RRQ", Aliases: []string{"rex regum qeon"}},
		{Name: "EVOS Glory", Code: "EVOS"},
		{Name: "Alter Ego", Code: "AE"},
	}

	rosters := []dataset.RosterEntry{
		{
			Team: "ONIC Esports",
			Players: []dataset.Player{
				{Name: "Kairi", Role: "Jungler"},
				{Name: "CW", Role: "Gold Laner"},
				{Name: "Sanz", Role: "Mid Laner"},
				{Name: "Butsss", Role: "EXP Laner"},
				{Name: "Kiboy", Role: "Roamer"},
				{Name: "Yeb", Role: "Coach"},
			},
		},
		{
			Team: "RRQ Hoshi",
			Players: []dataset.Player{
				{Name: "Alberttt", Role: "Jungler"},
				{Name: "Skylar", Role: "Gold Laner"},
				{Name: "Lemon", Role: "Coach"},
			},
		},
	}

	standings := []dataset.StandingEntry{
		{Rank: 1, Team: "ONIC Esports", Points: 27, Record: "9-1"},
		{Rank: 2, Team: "RRQ Hoshi", Points: 24, Record: "8-2"},
		{Rank: 3, Team: "EVOS Glory", Points: 18, Record: "6-4"},
		{Rank: 4, Team: "Alter Ego", Points: 15, Record: "5-5"},
		{Rank: 5, Team: "Geek Fam", Points: 12, Record: "4-6"},
		{Rank: 6, Team: "Bigetron Alpha", Points: 9, Record: "3-7"},
		{Rank: 7, Team: "Aura Fire", Points: 6, Record: "2-8"},
		{Rank: 8, Team: "Dewa United", Points: 4, Record: "1-9"},
		{Rank: 9, Team: "Rebellion Zion", Points: 2, Record: "0-10"},
	}

	schedule := []dataset.MatchEntry{
		{Team1: "ONIC Esports", Team2: "RRQ Hoshi", Date: "2026-09-05", Time: "18:30", Phase: "regular"},
		{Team1: "EVOS Glory", Team2: "Alter Ego", Date: "2026-09-06", Time: "15:00", Phase: "regular"},
		{Team1: "RRQ Hoshi", Team2: "EVOS Glory", Date: "2026-09-07", Phase: "regular"},
		{Team1: "Alter Ego", Team2: "ONIC Esports", Date: "2026-09-08", Time: "18:30", Phase: "regular"},
		{Team1: "ONIC Esports", Team2: "EVOS Glory", Date: "2026-09-12", Time: "16:45", Phase: "playoffs"},
		{Team1: "RRQ Hoshi", Team2: "Alter Ego", Date: "2026-09-13", Time: "19:00", Phase: "playoffs"},
	}

	return dataset.New(teams, rosters, standings, schedule)
}

// countingProvider records every Generate call, so tests can assert that the
// local path made no network-shaped requests.
type countingProvider struct {
	calls    int64
	response string
	err      error
}

func (p *countingProvider) Name() string { return "counting" }

func (p *countingProvider) Generate(ctx context.Context, system, user string) (string, error) {
	atomic.AddInt64(&p.calls, 1)
	if p.err != nil {
		return "", p.err
	}
	return p.response, nil
}

func (p *countingProvider) callCount() int64 {
	return atomic.LoadInt64(&p.calls)
}
