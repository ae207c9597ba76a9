// Package cache keeps player entities resident in memory and writes them
// back to the repository when they go idle.
package cache

import (
	"context"
	stderrors "errors"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"golang.org/x/sync/singleflight"

	"github.com/KirkDiggler/rpg-player/internal/booster"
	"github.com/KirkDiggler/rpg-player/internal/entities/rpg"
	"github.com/KirkDiggler/rpg-player/internal/errors"
	"github.com/KirkDiggler/rpg-player/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-player/internal/player"
	playerrepo "github.com/KirkDiggler/rpg-player/internal/repositories/player"
)

// Defaults
const (
	DefaultIdleTTL       = 20 * time.Minute
	DefaultSweepInterval = time.Minute
)

// Config contains configuration for the cache
type Config struct {
	Repository playerrepo.Repository
	Clock      clock.Clock
	Roller     dice.Roller
	Booster    booster.Checker

	// IdleTTL is how long an entry may go without a Get before it is
	// written back and evicted
	IdleTTL time.Duration
	// SweepInterval is how often Run sweeps
	SweepInterval time.Duration
}

// Validate validates the Config and fills defaults
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.IdleTTL == 0 {
		cfg.IdleTTL = DefaultIdleTTL
	}
	if cfg.SweepInterval == 0 {
		cfg.SweepInterval = DefaultSweepInterval
	}
	return errors.NewValidationBuilder().
		RequiredFieldIf("Repository", cfg.Repository == nil).
		RequiredFieldIf("Clock", cfg.Clock == nil).
		RequiredFieldIf("Roller", cfg.Roller == nil).
		RequiredFieldIf("Booster", cfg.Booster == nil).
		Positive("IdleTTL", int64(cfg.IdleTTL)).
		Positive("SweepInterval", int64(cfg.SweepInterval)).
		Build()
}

type entry struct {
	player     *player.Player
	lastAccess time.Time
}

// Cache maps player IDs to resident entities. Repository I/O never runs
// while the map mutex is held.
type Cache struct {
	repo          playerrepo.Repository
	clock         clock.Clock
	roller        dice.Roller
	booster       booster.Checker
	idleTTL       time.Duration
	sweepInterval time.Duration

	mu      sync.Mutex
	entries map[string]*entry
	// deletes counts Delete calls; a load that sees it change while
	// reading the repository starts over
	deletes uint64
	loads   singleflight.Group
}

// New creates an empty cache
func New(cfg *Config) (*Cache, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Cache{
		repo:          cfg.Repository,
		clock:         cfg.Clock,
		roller:        cfg.Roller,
		booster:       cfg.Booster,
		idleTTL:       cfg.IdleTTL,
		sweepInterval: cfg.SweepInterval,
		entries:       make(map[string]*entry),
	}, nil
}

// Get returns the resident entity for id, loading it on a miss. A player
// with no stored record gets a fresh default record. Concurrent misses
// for one id share a single repository read and the same instance.
func (c *Cache) Get(ctx context.Context, id string) (*player.Player, error) {
	if id == "" {
		return nil, errors.InvalidArgument("player ID cannot be empty")
	}

	if p := c.touch(id); p != nil {
		return p, nil
	}

	v, err, _ := c.loads.Do(id, func() (any, error) {
		if p := c.touch(id); p != nil {
			return p, nil
		}
		return c.load(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return v.(*player.Player), nil
}

func (c *Cache) touch(id string) *player.Player {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[id]
	if !ok {
		return nil
	}
	e.lastAccess = c.clock.Now()
	return e.player
}

func (c *Cache) load(ctx context.Context, id string) (*player.Player, error) {
	for {
		c.mu.Lock()
		gen := c.deletes
		c.mu.Unlock()

		p, err := c.read(ctx, id)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		if c.deletes != gen {
			c.mu.Unlock()
			slog.DebugContext(ctx, "player deleted during load, reloading", "player_id", id)
			continue
		}
		c.entries[id] = &entry{player: p, lastAccess: c.clock.Now()}
		c.mu.Unlock()
		return p, nil
	}
}

func (c *Cache) read(ctx context.Context, id string) (*player.Player, error) {
	var record *rpg.Record

	out, err := c.repo.Get(ctx, playerrepo.GetInput{ID: id})
	switch {
	case err == nil:
		record = out.Record
	case errors.IsNotFound(err):
		slog.DebugContext(ctx, "creating new player record", "player_id", id)
		record = rpg.NewRecord(id)
	default:
		return nil, errors.Wrapf(err, "failed to load player %s", id)
	}

	return player.New(&player.Config{
		Record:     record,
		Repository: c.repo,
		Clock:      c.clock,
		Roller:     c.roller,
		Booster:    c.booster,
	})
}

// Save writes p to the repository. Residency is not affected.
func (c *Cache) Save(ctx context.Context, p *player.Player) error {
	if p == nil {
		return errors.InvalidArgument("player cannot be nil")
	}
	return p.Save(ctx)
}

// Delete drops id from memory and hard-deletes its record. It works
// whether or not the player is resident. The dropped instance is retired
// first, so a sweep or flush already holding it cannot write it back, and
// a load racing the delete is discarded.
func (c *Cache) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.InvalidArgument("player ID cannot be empty")
	}

	c.mu.Lock()
	e := c.entries[id]
	delete(c.entries, id)
	c.deletes++
	c.mu.Unlock()
	c.loads.Forget(id)

	if e != nil {
		e.player.Retire()
	}

	_, err := c.repo.Delete(ctx, playerrepo.DeleteInput{ID: id})

	c.mu.Lock()
	c.deletes++
	c.mu.Unlock()

	if err != nil {
		return errors.Wrapf(err, "failed to delete player %s", id)
	}

	slog.InfoContext(ctx, "deleted player", "player_id", id)
	return nil
}

// Len returns the number of resident players
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// SweepResult summarizes one sweep
type SweepResult struct {
	Evicted  int
	Retained int
	Failed   int
}

// Sweep writes back and evicts every entry idle for at least IdleTTL.
// Each expired entry is saved exactly once. An entry whose save fails
// stays resident and is retried on the next sweep. An entry whose action
// lock is held is saved but kept resident with a fresh idle time, so a
// running flow never sees a second instance for its id.
func (c *Cache) Sweep(ctx context.Context) SweepResult {
	now := c.clock.Now()

	c.mu.Lock()
	expired := make(map[string]*entry)
	for id, e := range c.entries {
		if now.Sub(e.lastAccess) >= c.idleTTL {
			expired[id] = e
		}
	}
	c.mu.Unlock()

	var result SweepResult
	for id, e := range expired {
		if !c.resident(id, e) {
			continue
		}
		if err := e.player.Save(ctx); err != nil {
			if e.player.Retired() {
				// deleted while this sweep ran
				continue
			}
			slog.ErrorContext(ctx, "failed to save idle player, keeping it resident",
				"player_id", id,
				"error", err)
			result.Failed++
			continue
		}

		if c.evictIfIdle(id, e, now) {
			result.Evicted++
			slog.DebugContext(ctx, "evicted idle player", "player_id", id)
		} else {
			result.Retained++
		}
	}

	return result
}

func (c *Cache) resident(id string, e *entry) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries[id] == e
}

func (c *Cache) evictIfIdle(id string, e *entry, now time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	cur, ok := c.entries[id]
	if !ok || cur != e {
		// deleted or reloaded while saving
		return false
	}
	if now.Sub(cur.lastAccess) < c.idleTTL {
		return false
	}
	if cur.player.Locked() {
		cur.lastAccess = now
		return false
	}

	delete(c.entries, id)
	return true
}

// Flush saves every resident entry without evicting anything
func (c *Cache) Flush(ctx context.Context) error {
	c.mu.Lock()
	players := make([]*player.Player, 0, len(c.entries))
	for _, e := range c.entries {
		players = append(players, e.player)
	}
	c.mu.Unlock()

	var errs []error
	for _, p := range players {
		if err := p.Save(ctx); err != nil && !p.Retired() {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.WrapWithCodef(stderrors.Join(errs...), errors.CodeUnavailable,
			"failed to flush %d of %d players", len(errs), len(players))
	}
	return nil
}

// Run sweeps every SweepInterval until ctx is done, then flushes every
// resident entry
func (c *Cache) Run(ctx context.Context) error {
	ticker := time.NewTicker(c.sweepInterval)
	defer ticker.Stop()

	slog.InfoContext(ctx, "player cache sweeper started",
		"idle_ttl", c.idleTTL.String(),
		"sweep_interval", c.sweepInterval.String())

	for {
		select {
		case <-ctx.Done():
			flushCtx := context.WithoutCancel(ctx)
			if err := c.Flush(flushCtx); err != nil {
				slog.ErrorContext(flushCtx, "failed to flush player cache", "error", err)
				return err
			}
			slog.InfoContext(flushCtx, "player cache flushed", "players", c.Len())
			return nil
		case <-ticker.C:
			result := c.Sweep(ctx)
			if result.Evicted+result.Retained+result.Failed > 0 {
				slog.InfoContext(ctx, "player cache sweep",
					"evicted", result.Evicted,
					"retained", result.Retained,
					"failed", result.Failed,
					"resident", c.Len())
			}
		}
	}
}
