// Package rpg contains the value types persisted for a player: stats,
// the path and class catalog, and the player record itself.
package rpg

import (
	"encoding/json"
	"fmt"
)

// Stat identifies one of the nine player attributes
type Stat int

// Stat values, in display order
const (
	StatHealth Stat = iota
	StatGuard
	StatStrength
	StatMagic
	StatSpeed
	StatDefence
	StatResistance
	StatDexterity
	StatLuck

	statCount
)

var statNames = [statCount]string{
	"health",
	"guard",
	"strength",
	"magic",
	"speed",
	"defence",
	"resistance",
	"dexterity",
	"luck",
}

// AllStats lists every stat in display order
func AllStats() []Stat {
	out := make([]Stat, statCount)
	for i := range out {
		out[i] = Stat(i)
	}
	return out
}

// String returns the lowercase stat name
func (s Stat) String() string {
	if s < 0 || s >= statCount {
		return fmt.Sprintf("stat(%d)", int(s))
	}
	return statNames[s]
}

// ParseStat converts a stat name back into a Stat
func ParseStat(name string) (Stat, bool) {
	for i, n := range statNames {
		if n == name {
			return Stat(i), true
		}
	}
	return 0, false
}

// Stats holds one integer per Stat. The same shape is used for stat
// values, growth rates (percent) and per-level increases.
type Stats [statCount]int

// Baseline stats for a new or limitbroken player
const (
	BaseHealth = 30
	BaseGuard  = 15
	BaseOther  = 7
)

// BaseStats returns the stats every player starts with
func BaseStats() Stats {
	s := Stats{}
	for i := range s {
		s[i] = BaseOther
	}
	s[StatHealth] = BaseHealth
	s[StatGuard] = BaseGuard
	return s
}

// Get returns the value for stat
func (s Stats) Get(stat Stat) int {
	return s[stat]
}

// Add returns the elementwise sum of s and other
func (s Stats) Add(other Stats) Stats {
	for i := range s {
		s[i] += other[i]
	}
	return s
}

// Sum returns the total across all stats
func (s Stats) Sum() int {
	total := 0
	for _, v := range s {
		total += v
	}
	return total
}

// Map returns the stats keyed by name
func (s Stats) Map() map[string]int {
	out := make(map[string]int, statCount)
	for i, v := range s {
		out[statNames[i]] = v
	}
	return out
}

// StatsFromMap builds Stats from a name-keyed map. Missing names are 0.
func StatsFromMap(m map[string]int) (Stats, error) {
	var s Stats
	for name, v := range m {
		stat, ok := ParseStat(name)
		if !ok {
			return Stats{}, fmt.Errorf("unknown stat %q", name)
		}
		s[stat] = v
	}
	return s, nil
}

// MarshalJSON encodes stats as a named object
func (s Stats) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Map())
}

// UnmarshalJSON decodes a named object
func (s *Stats) UnmarshalJSON(data []byte) error {
	var m map[string]int
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	parsed, err := StatsFromMap(m)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
