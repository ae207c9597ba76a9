// Package player implements the in-memory player entity: the record it
// wraps, its action lock, and the progression operations that mutate it.
//
// A Player is safe for concurrent use; every method takes the entity's
// mutex. The action lock is a separate, caller-held token that serializes
// multi-step flows (acquire, mutate, save, release). Methods do not check
// the action lock themselves.
package player

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-player/internal/booster"
	"github.com/KirkDiggler/rpg-player/internal/entities/rpg"
	"github.com/KirkDiggler/rpg-player/internal/errors"
	"github.com/KirkDiggler/rpg-player/internal/pkg/clock"
	playerrepo "github.com/KirkDiggler/rpg-player/internal/repositories/player"
)

// EntityType is reported through core.Entity
const EntityType = "player"

// Config contains the dependencies of a Player
type Config struct {
	Record     *rpg.Record
	Repository playerrepo.Repository
	Clock      clock.Clock
	Roller     dice.Roller
	Booster    booster.Checker
}

// Validate validates the Config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	return errors.NewValidationBuilder().
		RequiredFieldIf("Record", cfg.Record == nil).
		RequiredFieldIf("Record.ID", cfg.Record != nil && cfg.Record.ID == "").
		RequiredFieldIf("Repository", cfg.Repository == nil).
		RequiredFieldIf("Clock", cfg.Clock == nil).
		RequiredFieldIf("Roller", cfg.Roller == nil).
		RequiredFieldIf("Booster", cfg.Booster == nil).
		Build()
}

// Player is a cached, mutable player entity
type Player struct {
	id string

	mu        sync.Mutex
	rec       *rpg.Record
	lockToken string

	// saveMu serializes repository writes with Retire
	saveMu  sync.Mutex
	retired bool

	repo    playerrepo.Repository
	clock   clock.Clock
	roller  dice.Roller
	booster booster.Checker
}

var _ core.Entity = (*Player)(nil)

// New wraps a record. The record is copied; later changes to it are not seen.
func New(cfg *Config) (*Player, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rec := cfg.Record.Clone()
	normalize(rec)

	return &Player{
		id:      rec.ID,
		rec:     rec,
		repo:    cfg.Repository,
		clock:   cfg.Clock,
		roller:  cfg.Roller,
		booster: cfg.Booster,
	}, nil
}

// normalize fills fields older or partial documents may lack
func normalize(rec *rpg.Record) {
	if rec.Level < 1 {
		rec.Level = 1
	}
	if rec.Path == "" {
		rec.Path = rpg.PathNone
	}
	if rec.Classes == nil {
		rec.Classes = []rpg.Class{}
	}
}

// GetID returns the player ID
func (p *Player) GetID() string {
	return p.id
}

// GetType returns the entity type
func (p *Player) GetType() string {
	return EntityType
}

// ID returns the player ID
func (p *Player) ID() string {
	return p.id
}

// Lock acquires the action lock with token. It is not reentrant: it fails
// whenever any token is held, including the same one.
func (p *Player) Lock(token string) bool {
	if token == "" {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.lockToken != "" {
		return false
	}
	p.lockToken = token
	return true
}

// Release clears the action lock if token is the holder. A stale token is
// ignored.
func (p *Player) Release(token string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if token != "" && p.lockToken == token {
		p.lockToken = ""
	}
}

// Locked reports whether an action lock is held
func (p *Player) Locked() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lockToken != ""
}

// Holds reports whether token currently holds the action lock
func (p *Player) Holds(token string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return token != "" && p.lockToken == token
}

// ForceRelease clears the action lock regardless of holder
func (p *Player) ForceRelease() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lockToken = ""
}

// Snapshot returns a copy of the current record
func (p *Player) Snapshot() *rpg.Record {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rec.Clone()
}

// Save writes the current record to the repository. A retired player is
// never written; Save returns a FailedPrecondition error instead.
func (p *Player) Save(ctx context.Context) error {
	p.saveMu.Lock()
	defer p.saveMu.Unlock()

	if p.retired {
		return errors.Newf(errors.CodeFailedPrecondition, "player %s was deleted", p.id)
	}
	snapshot := p.Snapshot()

	if _, err := p.repo.Save(ctx, playerrepo.SaveInput{Record: snapshot}); err != nil {
		return errors.Wrapf(err, "failed to save player %s", p.id)
	}
	return nil
}

// Retire stops every later Save from reaching the repository. It waits
// for a Save already in flight, so once it returns nothing this instance
// writes can land after a delete of the record.
func (p *Player) Retire() {
	p.saveMu.Lock()
	defer p.saveMu.Unlock()
	p.retired = true
}

// Retired reports whether Retire was called
func (p *Player) Retired() bool {
	p.saveMu.Lock()
	defer p.saveMu.Unlock()
	return p.retired
}

// isBoosted degrades to false when the eligibility source fails, the
// boost only adds a bonus
func (p *Player) isBoosted(ctx context.Context) bool {
	boosted, err := p.booster.IsBoosted(ctx, p.id)
	if err != nil {
		slog.WarnContext(ctx, "boost check failed, granting base rewards",
			"player_id", p.id,
			"error", err)
		return false
	}
	return boosted
}
