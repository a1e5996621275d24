package dataset

import "strings"

// AliasMap maps canonical keys to their surface aliases. Key order is
// preserved from insertion so resolution stays deterministic.
type AliasMap struct {
	keys    []string
	aliases map[string][]string
}

// NewAliasMap creates an empty alias map.
func NewAliasMap() *AliasMap {
	return &AliasMap{aliases: make(map[string][]string)}
}

// Add registers aliases for a key. The first Add for a key fixes its position
// in the resolution order; later Adds append aliases.
func (m *AliasMap) Add(key string, aliases ...string) {
	if _, ok := m.aliases[key]; !ok {
		m.keys = append(m.keys, key)
	}
	for _, a := range aliases {
		a = strings.ToLower(strings.TrimSpace(a))
		if a == "" || m.hasAlias(key, a) {
			continue
		}
		m.aliases[key] = append(m.aliases[key], a)
	}
}

func (m *AliasMap) hasAlias(key, alias string) bool {
	for _, a := range m.aliases[key] {
		if a == alias {
			return true
		}
	}
	return false
}

// Keys returns the canonical keys in declaration order.
func (m *AliasMap) Keys() []string {
	return m.keys
}

// Aliases returns the aliases registered for a key, in declaration order.
func (m *AliasMap) Aliases(key string) []string {
	return m.aliases[key]
}

// ContainsAlias reports whether any registered alias appears as a substring of
// the normalized text. Used by the domain guard; typo tolerance is the
// resolver's job, not this one's.
func (m *AliasMap) ContainsAlias(text string) bool {
	for _, key := range m.keys {
		for _, a := range m.aliases[key] {
			if strings.Contains(text, a) {
				return true
			}
		}
	}
	return false
}

// roleAliasTable is the closed role alias set, in resolution order.
var roleAliasTable = []struct {
	key     string
	aliases []string
}{
	{RoleJungler, []string{"jungler", "jungle", "hyper"}},
	{RoleGoldLaner, []string{"gold laner", "goldlaner", "gold"}},
	{RoleExpLaner, []string{"exp laner", "explaner", "exp", "offlaner"}},
	{RoleMidLaner, []string{"mid laner", "midlaner", "mid", "mage"}},
	{RoleRoamer, []string{"roamer", "roam"}},
	{RoleCoach, []string{"coach", "pelatih"}},
	{RoleAnalyst, []string{"analyst", "analis"}},
}

// NewRoleAliasMap builds the alias map for the closed role set.
func NewRoleAliasMap() *AliasMap {
	m := NewAliasMap()
	for _, r := range roleAliasTable {
		m.Add(r.key, r.aliases...)
	}
	return m
}

// NewTeamAliasMap builds the team alias map in dataset declaration order.
// Each team contributes its normalized display name, its code, any explicit
// aliases, and its leading name token when long enough to be distinctive.
func NewTeamAliasMap(teams []Team) *AliasMap {
	m := NewAliasMap()
	for _, t := range teams {
		name := strings.ToLower(strings.TrimSpace(t.Name))
		if name == "" {
			continue
		}
		m.Add(t.Name, name)
		if t.Code != "" {
			m.Add(t.Name, t.Code)
		}
		m.Add(t.Name, t.Aliases...)
		if first, _, found := strings.Cut(name, " "); found && len(first) >= 3 {
			m.Add(t.Name, first)
		}
	}
	return m
}

// NormalizeRoleLabel maps a free-text role label onto its canonical key.
// Comparison is case-insensitive; unmatched labels become RoleOther.
func NormalizeRoleLabel(label string, roles *AliasMap) string {
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" {
		return RoleOther
	}
	for _, key := range roles.Keys() {
		if label == key {
			return key
		}
		for _, a := range roles.Aliases(key) {
			if label == a {
				return key
			}
		}
	}
	return RoleOther
}
