// Package profile implements the player command flows. Every mutating
// flow follows the same discipline: fetch from the cache, take the action
// lock, mutate, save, release.
package profile

//go:generate mockgen -destination=mock/mock_service.go -package=profilemock github.com/KirkDiggler/rpg-player/internal/orchestrators/profile Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-player/internal/errors"
	"github.com/KirkDiggler/rpg-player/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-player/internal/player"
)

// Service defines the player command flows
type Service interface {
	GetProfile(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error)

	// Rewards
	Chat(ctx context.Context, input *ChatInput) (*ChatOutput, error)
	Daily(ctx context.Context, input *DailyInput) (*DailyOutput, error)
	GiveReputation(ctx context.Context, input *GiveReputationInput) (*GiveReputationOutput, error)

	// Progression choices
	Limitbreak(ctx context.Context, input *LimitbreakInput) (*LimitbreakOutput, error)
	ChangePath(ctx context.Context, input *ChangePathInput) (*ChangePathOutput, error)
	AddClass(ctx context.Context, input *AddClassInput) (*AddClassOutput, error)
	ChangeClass(ctx context.Context, input *ChangeClassInput) (*ChangeClassOutput, error)
	SetLevelPing(ctx context.Context, input *SetLevelPingInput) (*SetLevelPingOutput, error)

	// Interactive actions spanning several calls
	BeginAction(ctx context.Context, input *BeginActionInput) (*BeginActionOutput, error)
	EndAction(ctx context.Context, input *EndActionInput) (*EndActionOutput, error)
	ClearLock(ctx context.Context, input *ClearLockInput) (*ClearLockOutput, error)

	DeleteProfile(ctx context.Context, input *DeleteProfileInput) (*DeleteProfileOutput, error)
}

// EntityCache is the part of the player cache the flows use
type EntityCache interface {
	Get(ctx context.Context, id string) (*player.Player, error)
	Save(ctx context.Context, p *player.Player) error
	Delete(ctx context.Context, id string) error
}

// Config holds the dependencies for the profile orchestrator
type Config struct {
	Cache       EntityCache
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Cache == nil {
		vb.RequiredField("Cache")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	return vb.Build()
}

type orchestrator struct {
	cache EntityCache
	idGen idgen.Generator
}

// NewOrchestrator creates a new profile orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		cache: cfg.Cache,
		idGen: cfg.IDGenerator,
	}, nil
}

func requirePlayerID(id string) error {
	if id == "" {
		return errors.InvalidArgument("player ID is required")
	}
	return nil
}

// acquire takes the action lock for one flow. With a caller token the
// caller must already hold the lock, and keeps holding it afterwards.
func (o *orchestrator) acquire(p *player.Player, callerToken string) (release func(), ok bool) {
	if callerToken != "" {
		if !p.Holds(callerToken) {
			return nil, false
		}
		return func() {}, true
	}

	token := o.idGen.Generate()
	if !p.Lock(token) {
		return nil, false
	}
	return func() { p.Release(token) }, true
}

// locked fetches the player and runs fn under the action lock. The player
// is saved when fn reports a change. busy is true when the lock was held
// by someone else and fn did not run.
func (o *orchestrator) locked(
	ctx context.Context,
	playerID, callerToken string,
	fn func(p *player.Player) (changed bool, err error),
) (busy bool, err error) {
	p, err := o.cache.Get(ctx, playerID)
	if err != nil {
		return false, err
	}

	release, ok := o.acquire(p, callerToken)
	if !ok {
		slog.DebugContext(ctx, "player busy", "player_id", playerID)
		return true, nil
	}
	defer release()

	changed, err := fn(p)
	if err != nil {
		return false, err
	}
	if !changed {
		return false, nil
	}
	if err := o.cache.Save(ctx, p); err != nil {
		slog.ErrorContext(ctx, "failed to save player", "player_id", playerID, "error", err)
		return false, err
	}
	return false, nil
}

func buildProfile(p *player.Player) (*Profile, error) {
	growths, err := p.Growths()
	if err != nil {
		return nil, err
	}

	return &Profile{
		Record:         p.Snapshot(),
		Growths:        growths,
		Experience:     p.Experience(),
		LevelThreshold: p.LevelThreshold(),
		MaxLevel:       p.MaxLevel(),
		Locked:         p.Locked(),
		Unlocks:        p.Unlocks(),
	}, nil
}

func (o *orchestrator) GetProfile(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requirePlayerID(input.PlayerID); err != nil {
		return nil, err
	}

	p, err := o.cache.Get(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	profile, err := buildProfile(p)
	if err != nil {
		return nil, err
	}
	return &GetProfileOutput{Profile: profile}, nil
}

func (o *orchestrator) Chat(ctx context.Context, input *ChatInput) (*ChatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requirePlayerID(input.PlayerID); err != nil {
		return nil, err
	}

	out := &ChatOutput{}
	busy, err := o.locked(ctx, input.PlayerID, "", func(p *player.Player) (bool, error) {
		result, err := p.Chat(ctx)
		if err != nil {
			return false, err
		}
		out.Result = result
		if result.After != nil {
			slog.InfoContext(ctx, "player leveled up from chat",
				"player_id", input.PlayerID,
				"level_before", result.Before.Level,
				"level_after", result.After.Level)
		}
		return !result.OnCooldown(), nil
	})
	if err != nil {
		return nil, err
	}
	out.Busy = busy
	return out, nil
}

func (o *orchestrator) Daily(ctx context.Context, input *DailyInput) (*DailyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requirePlayerID(input.PlayerID); err != nil {
		return nil, err
	}

	out := &DailyOutput{}
	busy, err := o.locked(ctx, input.PlayerID, "", func(p *player.Player) (bool, error) {
		result, err := p.Daily(ctx)
		if err != nil {
			return false, err
		}
		out.Result = result
		if !result.OnCooldown() {
			slog.InfoContext(ctx, "daily claimed",
				"player_id", input.PlayerID,
				"streak", result.StreakAfter,
				"experience", result.Experience,
				"funds", result.Funds)
		}
		return !result.OnCooldown(), nil
	})
	if err != nil {
		return nil, err
	}
	out.Busy = busy
	return out, nil
}

func (o *orchestrator) GiveReputation(ctx context.Context, input *GiveReputationInput) (*GiveReputationOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder().
		RequiredFieldIf("PlayerID", input.PlayerID == "").
		RequiredFieldIf("TargetID", input.TargetID == "")
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out := &GiveReputationOutput{}
	if input.PlayerID == input.TargetID {
		out.SelfTargeted = true
		return out, nil
	}

	target, err := o.cache.Get(ctx, input.TargetID)
	if err != nil {
		return nil, err
	}

	busy, err := o.locked(ctx, input.PlayerID, "", func(p *player.Player) (bool, error) {
		out.SelfTargeted, out.CooldownRemaining = p.GiveReputation(target)
		return !out.SelfTargeted && out.CooldownRemaining == 0, nil
	})
	if err != nil {
		return nil, err
	}
	out.Busy = busy
	out.TargetReputation = target.Reputation()

	if !busy && !out.SelfTargeted && out.CooldownRemaining == 0 {
		if err := o.cache.Save(ctx, target); err != nil {
			slog.ErrorContext(ctx, "failed to save reputation target",
				"player_id", input.PlayerID,
				"target_id", input.TargetID,
				"error", err)
			return nil, err
		}
		slog.InfoContext(ctx, "reputation given",
			"player_id", input.PlayerID,
			"target_id", input.TargetID,
			"target_reputation", out.TargetReputation)
	}

	return out, nil
}

func (o *orchestrator) Limitbreak(ctx context.Context, input *LimitbreakInput) (*LimitbreakOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requirePlayerID(input.PlayerID); err != nil {
		return nil, err
	}

	out := &LimitbreakOutput{}
	busy, err := o.locked(ctx, input.PlayerID, input.ActionToken, func(p *player.Player) (bool, error) {
		out.Before = player.LevelStats{Level: p.Level(), Stats: p.Stats()}
		out.Success = p.Limitbreak()
		profile, err := buildProfile(p)
		if err != nil {
			return false, err
		}
		out.Profile = profile
		if out.Success {
			slog.InfoContext(ctx, "player limitbroke",
				"player_id", input.PlayerID,
				"prestige", profile.Record.Prestige)
		}
		return out.Success, nil
	})
	if err != nil {
		return nil, err
	}
	out.Busy = busy
	return out, nil
}

func (o *orchestrator) ChangePath(ctx context.Context, input *ChangePathInput) (*ChangePathOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requirePlayerID(input.PlayerID); err != nil {
		return nil, err
	}

	out := &ChangePathOutput{}
	busy, err := o.locked(ctx, input.PlayerID, input.ActionToken, func(p *player.Player) (bool, error) {
		out.Success, out.Reclass = p.ChangePath(input.Path)
		profile, err := buildProfile(p)
		if err != nil {
			return false, err
		}
		out.Profile = profile
		return out.Success, nil
	})
	if err != nil {
		return nil, err
	}
	out.Busy = busy
	return out, nil
}

func (o *orchestrator) AddClass(ctx context.Context, input *AddClassInput) (*AddClassOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requirePlayerID(input.PlayerID); err != nil {
		return nil, err
	}

	out := &AddClassOutput{}
	busy, err := o.locked(ctx, input.PlayerID, input.ActionToken, func(p *player.Player) (bool, error) {
		out.Success = p.AddClass(input.Class, input.AdminTier)
		profile, err := buildProfile(p)
		if err != nil {
			return false, err
		}
		out.Profile = profile
		return out.Success, nil
	})
	if err != nil {
		return nil, err
	}
	out.Busy = busy
	return out, nil
}

func (o *orchestrator) ChangeClass(ctx context.Context, input *ChangeClassInput) (*ChangeClassOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requirePlayerID(input.PlayerID); err != nil {
		return nil, err
	}
	if input.Slot < 0 || input.Slot > 1 {
		return nil, errors.InvalidArgumentf("class slot must be 0 or 1, got %d", input.Slot)
	}

	out := &ChangeClassOutput{}
	busy, err := o.locked(ctx, input.PlayerID, input.ActionToken, func(p *player.Player) (bool, error) {
		out.Success = p.ChangeClass(input.Class, input.Slot, input.AdminTier)
		profile, err := buildProfile(p)
		if err != nil {
			return false, err
		}
		out.Profile = profile
		return out.Success, nil
	})
	if err != nil {
		return nil, err
	}
	out.Busy = busy
	return out, nil
}

func (o *orchestrator) SetLevelPing(ctx context.Context, input *SetLevelPingInput) (*SetLevelPingOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requirePlayerID(input.PlayerID); err != nil {
		return nil, err
	}

	busy, err := o.locked(ctx, input.PlayerID, "", func(p *player.Player) (bool, error) {
		p.SetLevelPing(input.Ping)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &SetLevelPingOutput{Busy: busy}, nil
}

func (o *orchestrator) BeginAction(ctx context.Context, input *BeginActionInput) (*BeginActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requirePlayerID(input.PlayerID); err != nil {
		return nil, err
	}

	p, err := o.cache.Get(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	token := o.idGen.Generate()
	if !p.Lock(token) {
		return &BeginActionOutput{Busy: true}, nil
	}
	return &BeginActionOutput{Token: token}, nil
}

func (o *orchestrator) EndAction(ctx context.Context, input *EndActionInput) (*EndActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requirePlayerID(input.PlayerID); err != nil {
		return nil, err
	}

	p, err := o.cache.Get(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	held := p.Holds(input.Token)
	p.Release(input.Token)
	if !held {
		slog.DebugContext(ctx, "ignored stale action token", "player_id", input.PlayerID)
	}
	return &EndActionOutput{Released: held}, nil
}

func (o *orchestrator) ClearLock(ctx context.Context, input *ClearLockInput) (*ClearLockOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requirePlayerID(input.PlayerID); err != nil {
		return nil, err
	}

	p, err := o.cache.Get(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	wasLocked := p.Locked()
	p.ForceRelease()
	if wasLocked {
		slog.WarnContext(ctx, "action lock cleared by administrator", "player_id", input.PlayerID)
	}
	return &ClearLockOutput{WasLocked: wasLocked}, nil
}

func (o *orchestrator) DeleteProfile(ctx context.Context, input *DeleteProfileInput) (*DeleteProfileOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requirePlayerID(input.PlayerID); err != nil {
		return nil, err
	}

	busy, err := o.locked(ctx, input.PlayerID, input.ActionToken, func(_ *player.Player) (bool, error) {
		return false, o.cache.Delete(ctx, input.PlayerID)
	})
	if err != nil {
		return nil, err
	}
	return &DeleteProfileOutput{Busy: busy}, nil
}
