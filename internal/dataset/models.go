// Package dataset holds the immutable league snapshot the router answers from.
// Everything here is constructed once at startup and read-only afterwards.
package dataset

// Team is the canonical team record.
type Team struct {
	Name    string   `json:"name"`
	Code    string   `json:"code,omitempty"`
	Coach   string   `json:"coach,omitempty"`
	Aliases []string `json:"aliases,omitempty"`
	Logo    string   `json:"logo,omitempty"`
	Link    string   `json:"link,omitempty"`
}

// Player is a roster member. Role is the source label as scraped; RoleKey is
// the canonical role category it normalized to, or RoleOther when unmatched.
type Player struct {
	Name    string `json:"name"`
	Role    string `json:"role,omitempty"`
	RoleKey string `json:"-"`
}

// RosterEntry ties a team to its ordered player list. A team without an entry
// has an unknown roster, which is not the same as an empty one.
type RosterEntry struct {
	Team    string   `json:"team"`
	Players []Player `json:"players"`
}

// StandingEntry is one row of the league table, in source order.
type StandingEntry struct {
	Rank   int    `json:"rank"`
	Team   string `json:"team"`
	Points int    `json:"points"`
	Record string `json:"record,omitempty"`
}

// MatchEntry is a scheduled or played match. Team order is scheduling order.
// Date may be empty, which renders as TBA.
type MatchEntry struct {
	Team1 string `json:"team1"`
	Team2 string `json:"team2"`
	Date  string `json:"date,omitempty"`
	Time  string `json:"time,omitempty"`
	Phase string `json:"phase,omitempty"`
}

// Canonical role keys. The set is closed; anything else is RoleOther.
const (
	RoleJungler   = "jungler"
	RoleGoldLaner = "gold laner"
	RoleExpLaner  = "exp laner"
	RoleMidLaner  = "mid laner"
	RoleRoamer    = "roamer"
	RoleCoach     = "coach"
	RoleAnalyst   = "analyst"
	RoleOther     = "other"
)

// IsPlayerRole reports whether a role key belongs in player listings.
// Coaches and analysts are staff, not players.
func IsPlayerRole(key string) bool {
	return key != RoleCoach && key != RoleAnalyst
}
