package rpg

import "time"

// Defaults for a freshly created record
const (
	DefaultBalance    = 500
	DefaultReputation = 1
)

// Cooldowns are absolute expiry instants. A zero time is never on cooldown.
type Cooldowns struct {
	Experience time.Time `json:"experience"`
	Daily      time.Time `json:"daily"`
	Reputation time.Time `json:"reputation"`
}

// Record is the persisted document for one player
type Record struct {
	ID          string    `json:"id"`
	Level       int       `json:"level"`
	Experience  int       `json:"experience"`
	Prestige    int       `json:"prestige"`
	LevelPing   bool      `json:"level_ping"`
	Path        Path      `json:"path"`
	Classes     []Class   `json:"classes"`
	Stats       Stats     `json:"stats"`
	Cooldowns   Cooldowns `json:"cooldowns"`
	DailyStreak int       `json:"daily_streak"`
	Balance     int       `json:"balance"`
	Reputation  int       `json:"reputation"`
}

// NewRecord returns the default record for a player seen for the first time
func NewRecord(id string) *Record {
	return &Record{
		ID:         id,
		Level:      1,
		Path:       PathNone,
		Classes:    []Class{},
		Stats:      BaseStats(),
		Balance:    DefaultBalance,
		Reputation: DefaultReputation,
	}
}

// Clone returns a deep copy
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	out := *r
	out.Classes = append([]Class{}, r.Classes...)
	return &out
}
