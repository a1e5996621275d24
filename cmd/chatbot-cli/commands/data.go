package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/HafizhRaihan31/Chatbot-MPL/cmd/chatbot-cli/ui"
	"github.com/HafizhRaihan31/Chatbot-MPL/internal/dataset"
)

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "List the teams in the current dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, err := loadEnvironment()
		if err != nil {
			return err
		}

		teams := store.Teams()
		if len(teams) == 0 {
			ui.Warning("Dataset tim kosong.")
			return nil
		}

		rows := make([][]string, 0, len(teams))
		for _, t := range teams {
			coach := t.Coach
			if coach == "" {
				coach = "-"
			}
			rows = append(rows, []string{t.Name, t.Code, coach})
		}

		ui.Section("Tim MPL Indonesia")
		ui.Table([]string{"Nama", "Kode", "Pelatih"}, rows)
		return nil
	},
}

var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Show the current league standings",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, err := loadEnvironment()
		if err != nil {
			return err
		}

		standings := store.Standings()
		if len(standings) == 0 {
			ui.Warning("Data klasemen belum tersedia.")
			return nil
		}

		rows := make([][]string, 0, len(standings))
		for _, s := range standings {
			record := s.Record
			if record == "" {
				record = "-"
			}
			rows = append(rows, []string{
				strconv.Itoa(s.Rank), s.Team, strconv.Itoa(s.Points), record,
			})
		}

		ui.Section("Klasemen MPL Indonesia")
		ui.Table([]string{"Peringkat", "Tim", "Poin", "Rekor"}, rows)
		return nil
	},
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule [tim]",
	Short: "Show upcoming matches, optionally for one team",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, err := loadEnvironment()
		if err != nil {
			return err
		}

		var matches []dataset.MatchEntry
		title := "Jadwal MPL Indonesia"
		if len(args) > 0 {
			team := strings.Join(args, " ")
			matches = store.MatchesFor(team)
			title = fmt.Sprintf("Jadwal %s", team)
		} else {
			matches = store.Schedule()
		}

		if len(matches) == 0 {
			ui.Warning("Jadwal belum tersedia.")
			return nil
		}

		rows := make([][]string, 0, len(matches))
		for _, m := range matches {
			when := m.Date
			if m.Time != "" {
				when += " " + m.Time
			}
			phase := m.Phase
			if phase == "" {
				phase = "-"
			}
			rows = append(rows, []string{
				fmt.Sprintf("%s vs %s", m.Team1, m.Team2), when, phase,
			})
		}

		ui.Section(title)
		ui.Table([]string{"Pertandingan", "Waktu", "Fase"}, rows)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(teamsCmd)
	rootCmd.AddCommand(standingsCmd)
	rootCmd.AddCommand(scheduleCmd)
}
