package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Snapshot file names, as produced by the scraping pipeline.
const (
	teamsFile     = "teams.json"
	rostersFile   = "teams_detail.json"
	standingsFile = "standings.json"
	scheduleFile  = "schedule.json"
)

// Store is the immutable in-memory snapshot the router answers from.
type Store struct {
	teams     []Team
	rosters   map[string]RosterEntry // canonical team name -> roster
	standings []StandingEntry
	schedule  []MatchEntry

	teamAliases *AliasMap
	roleAliases *AliasMap
}

// Load reads the four snapshot collections from dir and normalizes them into
// canonical records. A missing file is treated as an empty collection, the
// same way the scraping pipeline treats a failed scrape; malformed JSON is an
// error.
func Load(dir string) (*Store, error) {
	var rawTeams []rawTeam
	if err := readCollection(filepath.Join(dir, teamsFile), &rawTeams); err != nil {
		return nil, err
	}

	var rawRosters []rawRoster
	if err := readCollection(filepath.Join(dir, rostersFile), &rawRosters); err != nil {
		return nil, err
	}

	var rawStandings []rawStanding
	if err := readCollection(filepath.Join(dir, standingsFile), &rawStandings); err != nil {
		return nil, err
	}

	var rawSchedule json.RawMessage
	if err := readCollection(filepath.Join(dir, scheduleFile), &rawSchedule); err != nil {
		return nil, err
	}

	matches, err := flattenSchedule(rawSchedule)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", scheduleFile, err)
	}

	return build(rawTeams, rawRosters, rawStandings, matches), nil
}

// New assembles a store from already-normalized records. Intended for tests
// and for callers that load the snapshot themselves.
func New(teams []Team, rosters []RosterEntry, standings []StandingEntry, schedule []MatchEntry) *Store {
	roles := NewRoleAliasMap()

	store := &Store{
		teams:       teams,
		rosters:     make(map[string]RosterEntry, len(rosters)),
		standings:   standings,
		schedule:    schedule,
		teamAliases: NewTeamAliasMap(teams),
		roleAliases: roles,
	}

	for _, r := range rosters {
		r = normalizeRoster(r, roles)
		key := store.rosterKey(r.Team)
		store.rosters[key] = r
	}

	store.promoteCoaches()
	return store
}

// Teams returns all teams in declaration order.
func (s *Store) Teams() []Team {
	return s.teams
}

// TeamByName finds a team whose name, code, or alias matches the query
// case-insensitively, by exact token or containment. Declaration order wins.
func (s *Store) TeamByName(query string) (Team, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Team{}, false
	}
	for _, t := range s.teams {
		if strings.EqualFold(t.Name, q) || strings.EqualFold(t.Code, q) {
			return t, true
		}
		if strings.Contains(strings.ToLower(t.Name), q) {
			return t, true
		}
		for _, a := range t.Aliases {
			if strings.EqualFold(a, q) {
				return t, true
			}
		}
	}
	return Team{}, false
}

// Roster returns the roster for a canonical team name. The second return is
// false when the roster is unknown.
func (s *Store) Roster(team string) (RosterEntry, bool) {
	r, ok := s.rosters[strings.ToLower(team)]
	return r, ok
}

// Rosters returns all known rosters, ordered by team declaration order.
func (s *Store) Rosters() []RosterEntry {
	out := make([]RosterEntry, 0, len(s.rosters))
	for _, t := range s.teams {
		if r, ok := s.Roster(t.Name); ok {
			out = append(out, r)
		}
	}
	return out
}

// Standings returns the league table in stored order.
func (s *Store) Standings() []StandingEntry {
	return s.standings
}

// Schedule returns all matches in stored order.
func (s *Store) Schedule() []MatchEntry {
	return s.schedule
}

// ScheduleByPhase returns the matches of one phase, in stored order.
func (s *Store) ScheduleByPhase(phase string) []MatchEntry {
	var out []MatchEntry
	for _, m := range s.schedule {
		if strings.EqualFold(m.Phase, phase) {
			out = append(out, m)
		}
	}
	return out
}

// MatchesFor returns every match a team takes part in, in stored order.
func (s *Store) MatchesFor(team string) []MatchEntry {
	t := strings.ToLower(team)
	var out []MatchEntry
	for _, m := range s.schedule {
		pair := strings.ToLower(m.Team1 + " " + m.Team2)
		if strings.Contains(pair, t) {
			out = append(out, m)
		}
	}
	return out
}

// TeamAliases returns the team alias map.
func (s *Store) TeamAliases() *AliasMap {
	return s.teamAliases
}

// RoleAliases returns the role alias map.
func (s *Store) RoleAliases() *AliasMap {
	return s.roleAliases
}

// rosterKey maps a roster's team label (often the scraped page title) onto
// the canonical team name, falling back to the label itself.
func (s *Store) rosterKey(label string) string {
	l := strings.ToLower(strings.TrimSpace(label))
	for _, t := range s.teams {
		name := strings.ToLower(t.Name)
		if l == name || strings.Contains(l, name) || strings.Contains(name, l) {
			return name
		}
	}
	return l
}

// promoteCoaches fills Team.Coach from roster staff when the team record has
// no explicit coach.
func (s *Store) promoteCoaches() {
	for i := range s.teams {
		if s.teams[i].Coach != "" {
			continue
		}
		r, ok := s.Roster(s.teams[i].Name)
		if !ok {
			continue
		}
		for _, p := range r.Players {
			if p.RoleKey == RoleCoach {
				s.teams[i].Coach = p.Name
				break
			}
		}
	}
}

// ---- raw source shapes -----------------------------------------------------

// rawTeam tolerates the field names the scrapers have produced over time.
type rawTeam struct {
	Name     string   `json:"name"`
	Team     string   `json:"team"`
	TeamCode string   `json:"team_code"`
	Coach    string   `json:"coach"`
	Aliases  []string `json:"aliases"`
	Logo     string   `json:"logo"`
	Link     string   `json:"link"`
}

func (t rawTeam) displayName() string {
	switch {
	case t.Name != "":
		return t.Name
	case t.Team != "":
		return t.Team
	default:
		return t.TeamCode
	}
}

type rawRoster struct {
	Team    string      `json:"team"`
	Name    string      `json:"name"`
	Players []rawPlayer `json:"players"`
}

func (r rawRoster) teamLabel() string {
	if r.Team != "" {
		return r.Team
	}
	return r.Name
}

type rawPlayer struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// rawStanding keeps the scraped string fields; rank and points are parsed at
// load time so lookups never re-parse.
type rawStanding struct {
	Rank       string `json:"rank"`
	Team       string `json:"team"`
	MatchPoint string `json:"matchPoint"`
	MatchWL    string `json:"matchWL"`
}

type rawMatch struct {
	Team1 string `json:"team1"`
	Team2 string `json:"team2"`
	Date  string `json:"date"`
	Time  string `json:"time"`
}

func readCollection(path string, dst interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}

// flattenSchedule accepts either a flat match array or an object keyed by
// phase (regular/playoffs) and returns one flat sequence. Known phases come
// first in fixture order; unknown phases follow alphabetically.
func flattenSchedule(raw json.RawMessage) ([]MatchEntry, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var flat []rawMatch
	if err := json.Unmarshal(raw, &flat); err == nil {
		return toMatches(flat, ""), nil
	}

	var phased map[string][]rawMatch
	if err := json.Unmarshal(raw, &phased); err != nil {
		return nil, fmt.Errorf("schedule is neither an array nor a phase map: %w", err)
	}

	var out []MatchEntry
	for _, phase := range []string{"regular", "playoffs"} {
		out = append(out, toMatches(phased[phase], phase)...)
		delete(phased, phase)
	}
	for _, phase := range sortedKeys(phased) {
		out = append(out, toMatches(phased[phase], phase)...)
	}
	return out, nil
}

func toMatches(raw []rawMatch, phase string) []MatchEntry {
	out := make([]MatchEntry, 0, len(raw))
	for _, m := range raw {
		if m.Team1 == "" && m.Team2 == "" {
			continue
		}
		out = append(out, MatchEntry{
			Team1: m.Team1,
			Team2: m.Team2,
			Date:  strings.TrimSpace(m.Date),
			Time:  strings.TrimSpace(m.Time),
			Phase: phase,
		})
	}
	return out
}

func sortedKeys(m map[string][]rawMatch) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j] < keys[j-1]; j-- {
			keys[j], keys[j-1] = keys[j-1], keys[j]
		}
	}
	return keys
}

func build(rawTeams []rawTeam, rawRosters []rawRoster, rawStandings []rawStanding, matches []MatchEntry) *Store {
	teams := make([]Team, 0, len(rawTeams))
	for _, rt := range rawTeams {
		name := strings.TrimSpace(rt.displayName())
		if name == "" {
			continue
		}
		teams = append(teams, Team{
			Name:    name,
			Code:    strings.TrimSpace(rt.TeamCode),
			Coach:   strings.TrimSpace(rt.Coach),
			Aliases: rt.Aliases,
			Logo:    rt.Logo,
			Link:    rt.Link,
		})
	}

	rosters := make([]RosterEntry, 0, len(rawRosters))
	for _, rr := range rawRosters {
		label := strings.TrimSpace(rr.teamLabel())
		if label == "" {
			continue
		}
		entry := RosterEntry{Team: label}
		for _, p := range rr.Players {
			if p.Name == "" {
				continue
			}
			entry.Players = append(entry.Players, Player{
				Name: strings.TrimSpace(p.Name),
				Role: strings.TrimSpace(p.Role),
			})
		}
		rosters = append(rosters, entry)
	}

	standings := make([]StandingEntry, 0, len(rawStandings))
	for _, rs := range rawStandings {
		if rs.Team == "" {
			continue
		}
		rank, _ := strconv.Atoi(strings.TrimSpace(rs.Rank))
		points, _ := strconv.Atoi(strings.TrimSpace(rs.MatchPoint))
		standings = append(standings, StandingEntry{
			Rank:   rank,
			Team:   strings.TrimSpace(rs.Team),
			Points: points,
			Record: strings.TrimSpace(rs.MatchWL),
		})
	}

	return New(teams, rosters, standings, matches)
}

// normalizeRoster resolves every player's role label against the closed role
// set once, at load time.
func normalizeRoster(r RosterEntry, roles *AliasMap) RosterEntry {
	for i := range r.Players {
		r.Players[i].RoleKey = NormalizeRoleLabel(r.Players[i].Role, roles)
	}
	return r
}
