package profile

import (
	"time"

	"github.com/KirkDiggler/rpg-player/internal/entities/rpg"
	"github.com/KirkDiggler/rpg-player/internal/player"
	"github.com/KirkDiggler/rpg-player/internal/progression"
)

// Profile is a read-only view of a player with derived values filled in
type Profile struct {
	Record         *rpg.Record
	Growths        rpg.Stats
	Experience     int
	LevelThreshold int
	MaxLevel       int
	Locked         bool
	Unlocks        progression.Unlocks
}

// GetProfileInput defines the request for reading a profile
type GetProfileInput struct {
	PlayerID string
}

// GetProfileOutput defines the response for reading a profile
type GetProfileOutput struct {
	Profile *Profile
}

// ChatInput defines the request for a chat experience grant
type ChatInput struct {
	PlayerID string
}

// ChatOutput defines the response for a chat experience grant
type ChatOutput struct {
	Busy   bool
	Result *player.ChatResult
}

// DailyInput defines the request for a daily claim
type DailyInput struct {
	PlayerID string
}

// DailyOutput defines the response for a daily claim
type DailyOutput struct {
	Busy   bool
	Result *player.DailyResult
}

// GiveReputationInput defines the request for a reputation gift
type GiveReputationInput struct {
	PlayerID string
	TargetID string
}

// GiveReputationOutput defines the response for a reputation gift
type GiveReputationOutput struct {
	Busy              bool
	SelfTargeted      bool
	CooldownRemaining time.Duration
	TargetReputation  int
}

// LimitbreakInput defines the request for a limitbreak.
// ActionToken is set when the caller already holds the action lock.
type LimitbreakInput struct {
	PlayerID    string
	ActionToken string
}

// LimitbreakOutput defines the response for a limitbreak
type LimitbreakOutput struct {
	Busy    bool
	Success bool
	Before  player.LevelStats
	Profile *Profile
}

// ChangePathInput defines the request for a path change
type ChangePathInput struct {
	PlayerID    string
	Path        rpg.Path
	ActionToken string
}

// ChangePathOutput defines the response for a path change
type ChangePathOutput struct {
	Busy    bool
	Success bool
	Reclass bool
	Profile *Profile
}

// AddClassInput defines the request for equipping a class
type AddClassInput struct {
	PlayerID    string
	Class       rpg.Class
	AdminTier   rpg.AdminTier
	ActionToken string
}

// AddClassOutput defines the response for equipping a class
type AddClassOutput struct {
	Busy    bool
	Success bool
	Profile *Profile
}

// ChangeClassInput defines the request for swapping a class
type ChangeClassInput struct {
	PlayerID    string
	Class       rpg.Class
	Slot        int
	AdminTier   rpg.AdminTier
	ActionToken string
}

// ChangeClassOutput defines the response for swapping a class
type ChangeClassOutput struct {
	Busy    bool
	Success bool
	Profile *Profile
}

// SetLevelPingInput defines the request for the level-up mention preference
type SetLevelPingInput struct {
	PlayerID string
	Ping     bool
}

// SetLevelPingOutput defines the response for the level-up mention preference
type SetLevelPingOutput struct {
	Busy bool
}

// BeginActionInput defines the request for taking the action lock
type BeginActionInput struct {
	PlayerID string
}

// BeginActionOutput defines the response for taking the action lock.
// Token is empty when Busy is true.
type BeginActionOutput struct {
	Busy  bool
	Token string
}

// EndActionInput defines the request for releasing the action lock
type EndActionInput struct {
	PlayerID string
	Token    string
}

// EndActionOutput defines the response for releasing the action lock.
// Released is false for a stale token.
type EndActionOutput struct {
	Released bool
}

// ClearLockInput defines the request for an administrative lock clear
type ClearLockInput struct {
	PlayerID string
}

// ClearLockOutput defines the response for an administrative lock clear
type ClearLockOutput struct {
	WasLocked bool
}

// DeleteProfileInput defines the request for terminating a profile
type DeleteProfileInput struct {
	PlayerID    string
	ActionToken string
}

// DeleteProfileOutput defines the response for terminating a profile
type DeleteProfileOutput struct {
	Busy bool
}
