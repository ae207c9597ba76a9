package player

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-player/internal/entities/rpg"
	"github.com/KirkDiggler/rpg-player/internal/progression"
)

// LevelStats pairs a level with the stats held at that level
type LevelStats struct {
	Level int
	Stats rpg.Stats
}

// ChatResult describes one chat grant. When CooldownRemaining is non-zero
// nothing changed.
type ChatResult struct {
	Before            LevelStats
	After             *LevelStats
	ExperienceGained  int
	CooldownRemaining time.Duration
	Unlocks           progression.Unlocks
}

// OnCooldown reports whether the grant was refused
func (r *ChatResult) OnCooldown() bool {
	return r.CooldownRemaining > 0
}

// DailyResult describes one daily claim. When CooldownRemaining is
// non-zero nothing changed.
type DailyResult struct {
	StreakBefore      int
	StreakAfter       int
	Before            LevelStats
	After             *LevelStats
	Experience        int
	Funds             int
	CooldownRemaining time.Duration
	Unlocks           progression.Unlocks
}

// OnCooldown reports whether the claim was refused
func (r *DailyResult) OnCooldown() bool {
	return r.CooldownRemaining > 0
}

// Chat grants chat experience if the experience cooldown has passed
func (p *Player) Chat(ctx context.Context) (*ChatResult, error) {
	var boosted bool
	if p.cooldownPassed(func(c rpg.Cooldowns) time.Time { return c.Experience }) {
		boosted = p.isBoosted(ctx)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.clock.Now()
	result := &ChatResult{Before: p.levelStatsLocked()}

	if left := remaining(p.rec.Cooldowns.Experience, now); left > 0 {
		result.CooldownRemaining = left
		return result, nil
	}

	gained := progression.ChatExperience(p.rec.Reputation, boosted)
	after, err := p.grantLocked(gained)
	if err != nil {
		return nil, err
	}
	p.rec.Cooldowns.Experience = now.Add(progression.ChatCooldown)

	result.After = after
	result.ExperienceGained = gained
	result.Unlocks = p.unlocksLocked()
	return result, nil
}

// Daily claims the daily reward if the daily cooldown has passed. The
// streak resets to 1 when more than a full cooldown period went by after
// the previous claim became available.
func (p *Player) Daily(ctx context.Context) (*DailyResult, error) {
	var boosted bool
	if p.cooldownPassed(func(c rpg.Cooldowns) time.Time { return c.Daily }) {
		boosted = p.isBoosted(ctx)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.clock.Now()
	result := &DailyResult{
		StreakBefore: p.rec.DailyStreak,
		StreakAfter:  p.rec.DailyStreak,
		Before:       p.levelStatsLocked(),
	}

	if left := remaining(p.rec.Cooldowns.Daily, now); left > 0 {
		result.CooldownRemaining = left
		return result, nil
	}

	streak := p.rec.DailyStreak + 1
	if now.Sub(p.rec.Cooldowns.Daily) > progression.DailyCooldown {
		streak = 1
	}

	experience, funds := progression.DailyRewards(streak, p.rec.Reputation, boosted)
	after, err := p.grantLocked(experience)
	if err != nil {
		return nil, err
	}
	p.rec.DailyStreak = streak
	p.rec.Balance += funds
	p.rec.Cooldowns.Daily = now.Add(progression.DailyCooldown)

	result.StreakAfter = streak
	result.After = after
	result.Experience = experience
	result.Funds = funds
	result.Unlocks = p.unlocksLocked()
	return result, nil
}

// cooldownPassed reports whether the cooldown picked from the record has
// expired. The eligibility check runs outside the mutex and only on the
// grant path; the locked section checks the cooldown again.
func (p *Player) cooldownPassed(pick func(rpg.Cooldowns) time.Time) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return remaining(pick(p.rec.Cooldowns), p.clock.Now()) == 0
}

// GiveReputation gives target one reputation point. selfTargeted is true
// when target is the giver; cooldownRemaining is non-zero while the
// giver's reputation cooldown runs. Neither case changes anything.
func (p *Player) GiveReputation(target *Player) (selfTargeted bool, cooldownRemaining time.Duration) {
	if target == nil || target == p || target.id == p.id {
		return true, 0
	}

	p.mu.Lock()
	now := p.clock.Now()
	if left := remaining(p.rec.Cooldowns.Reputation, now); left > 0 {
		p.mu.Unlock()
		return false, left
	}
	p.rec.Cooldowns.Reputation = now.Add(progression.ReputationCooldown)
	p.mu.Unlock()

	// never hold both mutexes, two players gifting each other would deadlock
	target.mu.Lock()
	target.rec.Reputation++
	target.mu.Unlock()

	return false, 0
}

// CanLimitbreak reports whether the player is at the level cap
func (p *Player) CanLimitbreak() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rec.Level >= progression.MaxLevel(p.rec.Prestige)
}

// Limitbreak trades level, stats, path and classes for one prestige.
// Returns false below the level cap.
func (p *Player) Limitbreak() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.rec.Level < progression.MaxLevel(p.rec.Prestige) {
		return false
	}

	p.rec.Experience = 0
	p.rec.Level = 1
	p.rec.Path = rpg.PathNone
	p.rec.Classes = []rpg.Class{}
	p.rec.Stats = rpg.BaseStats()
	p.rec.Prestige++
	return true
}

func (p *Player) levelStatsLocked() LevelStats {
	return LevelStats{Level: p.rec.Level, Stats: p.rec.Stats}
}

// grantLocked adds experience and runs the level-up loop. Nothing is
// modified if composing growths or rolling fails. Returns the new level
// and stats when at least one level was gained.
func (p *Player) grantLocked(experience int) (*LevelStats, error) {
	growths, err := progression.Growths(p.rec.Path, p.rec.Classes)
	if err != nil {
		return nil, err
	}

	out, err := progression.LevelUp(p.roller, &progression.LevelUpInput{
		Level:      p.rec.Level,
		Experience: p.rec.Experience + experience,
		Prestige:   p.rec.Prestige,
		Growths:    growths,
	})
	if err != nil {
		return nil, err
	}

	p.rec.Experience = out.Experience
	p.rec.Level = out.Level
	p.rec.Stats = p.rec.Stats.Add(out.Increases)

	if out.LevelsGained == 0 {
		return nil, nil
	}
	after := p.levelStatsLocked()
	return &after, nil
}
