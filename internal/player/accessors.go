package player

import (
	"time"

	"github.com/KirkDiggler/rpg-player/internal/entities/rpg"
	"github.com/KirkDiggler/rpg-player/internal/progression"
)

// Level returns the current level
func (p *Player) Level() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rec.Level
}

// TotalExperience returns the cumulative experience counter
func (p *Player) TotalExperience() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rec.Experience
}

// Experience returns the experience earned inside the current level
func (p *Player) Experience() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return progression.ExperienceWithinLevel(p.rec.Experience, p.rec.Level)
}

// LevelThreshold returns the experience needed to leave the current level
func (p *Player) LevelThreshold() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return progression.LevelThreshold(p.rec.Level)
}

// MaxLevel returns the level cap for the current prestige
func (p *Player) MaxLevel() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return progression.MaxLevel(p.rec.Prestige)
}

// Growths returns the composed growth rates for the current path and classes
func (p *Player) Growths() (rpg.Stats, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return progression.Growths(p.rec.Path, p.rec.Classes)
}

// Stats returns the current stats
func (p *Player) Stats() rpg.Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rec.Stats
}

// Path returns the current path
func (p *Player) Path() rpg.Path {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rec.Path
}

// Classes returns a copy of the equipped classes
func (p *Player) Classes() []rpg.Class {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]rpg.Class{}, p.rec.Classes...)
}

// Prestige returns the number of limitbreaks
func (p *Player) Prestige() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rec.Prestige
}

// Balance returns the player's funds
func (p *Player) Balance() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rec.Balance
}

// Reputation returns the player's reputation
func (p *Player) Reputation() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rec.Reputation
}

// Cooldowns returns the cooldown expiry instants
func (p *Player) Cooldowns() rpg.Cooldowns {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rec.Cooldowns
}

// DailyStreak returns the current daily streak
func (p *Player) DailyStreak() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rec.DailyStreak
}

// LevelPing reports whether the player wants level-up mentions
func (p *Player) LevelPing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rec.LevelPing
}

// SetLevelPing sets the level-up mention preference
func (p *Player) SetLevelPing(ping bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rec.LevelPing = ping
}

// Unlocks reports the milestones the player can act on
func (p *Player) Unlocks() progression.Unlocks {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.unlocksLocked()
}

func (p *Player) unlocksLocked() progression.Unlocks {
	return progression.CheckUnlocks(p.rec.Level, p.rec.Prestige, p.rec.Path, len(p.rec.Classes))
}

func remaining(until, now time.Time) time.Duration {
	if now.Before(until) {
		return until.Sub(now)
	}
	return 0
}
