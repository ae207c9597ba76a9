package v1alpha1

import (
	"bytes"
	"encoding/json"
	"time"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-player/internal/entities/rpg"
	"github.com/KirkDiggler/rpg-player/internal/errors"
	"github.com/KirkDiggler/rpg-player/internal/orchestrators/profile"
	"github.com/KirkDiggler/rpg-player/internal/player"
	"github.com/KirkDiggler/rpg-player/internal/progression"
)

// Request carries every field a player service call may use. Each method
// reads only the fields it needs.
type Request struct {
	PlayerID    string `json:"player_id,omitempty"`
	TargetID    string `json:"target_id,omitempty"`
	Path        string `json:"path,omitempty"`
	Class       string `json:"class,omitempty"`
	Slot        int    `json:"slot,omitempty"`
	AdminTier   string `json:"admin_tier,omitempty"`
	ActionToken string `json:"action_token,omitempty"`
	Token       string `json:"token,omitempty"`
	Ping        bool   `json:"ping,omitempty"`
}

// decode unpacks a struct message into dst, rejecting unknown fields
func decode(msg *structpb.Struct, dst any) error {
	if msg == nil {
		return errors.InvalidArgument("request is required")
	}
	raw, err := protojson.Marshal(msg)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed request")
	}

	d := json.NewDecoder(bytes.NewReader(raw))
	d.DisallowUnknownFields()
	if err := d.Decode(dst); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed request")
	}
	return nil
}

// encode packs src into a struct message through its JSON form
func encode(src any) (*structpb.Struct, error) {
	raw, err := json.Marshal(src)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	out := new(structpb.Struct)
	if err := protojson.Unmarshal(raw, out); err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	return out, nil
}

// NewRequest builds a request message, mainly for clients
func NewRequest(req *Request) (*structpb.Struct, error) {
	return encode(req)
}

type unlocksJSON struct {
	Path       bool `json:"path"`
	Class      bool `json:"class"`
	Limitbreak bool `json:"limitbreak"`
}

func toUnlocks(u progression.Unlocks) unlocksJSON {
	return unlocksJSON{Path: u.Path, Class: u.Class, Limitbreak: u.Limitbreak}
}

type levelStatsJSON struct {
	Level int       `json:"level"`
	Stats rpg.Stats `json:"stats"`
}

func toLevelStats(ls *player.LevelStats) *levelStatsJSON {
	if ls == nil {
		return nil
	}
	return &levelStatsJSON{Level: ls.Level, Stats: ls.Stats}
}

type profileJSON struct {
	Record         *rpg.Record `json:"record"`
	Growths        rpg.Stats   `json:"growths"`
	Experience     int         `json:"experience"`
	LevelThreshold int         `json:"level_threshold"`
	MaxLevel       int         `json:"max_level"`
	Locked         bool        `json:"locked"`
	Unlocks        unlocksJSON `json:"unlocks"`
}

func toProfile(p *profile.Profile) *profileJSON {
	if p == nil {
		return nil
	}
	return &profileJSON{
		Record:         p.Record,
		Growths:        p.Growths,
		Experience:     p.Experience,
		LevelThreshold: p.LevelThreshold,
		MaxLevel:       p.MaxLevel,
		Locked:         p.Locked,
		Unlocks:        toUnlocks(p.Unlocks),
	}
}

func millis(d time.Duration) int64 {
	return d.Milliseconds()
}

type chatJSON struct {
	Busy                bool            `json:"busy"`
	ExperienceGained    int             `json:"experience_gained"`
	CooldownRemainingMS int64           `json:"cooldown_remaining_ms"`
	Before              *levelStatsJSON `json:"before,omitempty"`
	After               *levelStatsJSON `json:"after,omitempty"`
	Unlocks             *unlocksJSON    `json:"unlocks,omitempty"`
}

func toChat(out *profile.ChatOutput) *chatJSON {
	resp := &chatJSON{Busy: out.Busy}
	if r := out.Result; r != nil {
		u := toUnlocks(r.Unlocks)
		resp.ExperienceGained = r.ExperienceGained
		resp.CooldownRemainingMS = millis(r.CooldownRemaining)
		resp.Before = toLevelStats(&r.Before)
		resp.After = toLevelStats(r.After)
		resp.Unlocks = &u
	}
	return resp
}

type dailyJSON struct {
	Busy                bool            `json:"busy"`
	StreakBefore        int             `json:"streak_before"`
	StreakAfter         int             `json:"streak_after"`
	Experience          int             `json:"experience"`
	Funds               int             `json:"funds"`
	CooldownRemainingMS int64           `json:"cooldown_remaining_ms"`
	Before              *levelStatsJSON `json:"before,omitempty"`
	After               *levelStatsJSON `json:"after,omitempty"`
	Unlocks             *unlocksJSON    `json:"unlocks,omitempty"`
}

func toDaily(out *profile.DailyOutput) *dailyJSON {
	resp := &dailyJSON{Busy: out.Busy}
	if r := out.Result; r != nil {
		u := toUnlocks(r.Unlocks)
		resp.StreakBefore = r.StreakBefore
		resp.StreakAfter = r.StreakAfter
		resp.Experience = r.Experience
		resp.Funds = r.Funds
		resp.CooldownRemainingMS = millis(r.CooldownRemaining)
		resp.Before = toLevelStats(&r.Before)
		resp.After = toLevelStats(r.After)
		resp.Unlocks = &u
	}
	return resp
}

type reputationJSON struct {
	Busy                bool  `json:"busy"`
	SelfTargeted        bool  `json:"self_targeted"`
	CooldownRemainingMS int64 `json:"cooldown_remaining_ms"`
	TargetReputation    int   `json:"target_reputation"`
}

type choiceJSON struct {
	Busy    bool            `json:"busy"`
	Success bool            `json:"success"`
	Reclass bool            `json:"reclass,omitempty"`
	Before  *levelStatsJSON `json:"before,omitempty"`
	Profile *profileJSON    `json:"profile,omitempty"`
}
