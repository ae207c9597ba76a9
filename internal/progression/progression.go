// Package progression holds the leveling math: experience thresholds,
// growth composition, growth rolls and reward amounts. Nothing here
// performs I/O; randomness comes in through a dice.Roller.
package progression

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-player/internal/entities/rpg"
	"github.com/KirkDiggler/rpg-player/internal/errors"
)

// Reward and gating constants
const (
	BaseChatExperience    = 20
	BoostedChatBonus      = 10
	BaseDailyExperience   = 200
	BaseDailyFunds        = 100
	BoostedDailyBonus     = 100
	StreakBonusLimit      = 15
	StreakBonusPercent    = 20
	ReputationDailyFactor = 2

	ChatCooldown       = 120 * time.Second
	DailyCooldown      = 24 * time.Hour
	ReputationCooldown = 7 * 24 * time.Hour

	PathLevel        = 10
	FirstClassLevel  = 30
	SecondClassLevel = 50
	ReclassCost      = 10000

	// LevelsPerPrestige is both the flat-threshold boundary and the
	// amount each limitbreak raises the level cap by.
	LevelsPerPrestige = 100
	FlatThreshold     = 2500
	growthRollSides   = 100
)

// LevelThreshold is the experience needed to advance from level
func LevelThreshold(level int) int {
	if level > LevelsPerPrestige {
		return FlatThreshold
	}
	return 20*level + 480
}

// CumulativeExperience is the total experience at which level is reached
func CumulativeExperience(level int) int {
	if level > LevelsPerPrestige {
		const at101 = 10*(101*101+47*101) - 480
		return at101 + (level-101)*FlatThreshold
	}
	return 10*(level*level+47*level) - 480
}

// ExperienceWithinLevel is the progress made inside the current level
func ExperienceWithinLevel(total, level int) int {
	return total - CumulativeExperience(level)
}

// MaxLevel is the level cap for a prestige
func MaxLevel(prestige int) int {
	return LevelsPerPrestige * (prestige + 1)
}

// Growths composes the growth rates for a path and its classes. The
// result is not clamped: values at or below 0 never roll up and values at
// or above 100 always do.
func Growths(path rpg.Path, classes []rpg.Class) (rpg.Stats, error) {
	pathInfo, ok := rpg.LookupPath(path)
	if !ok {
		return rpg.Stats{}, errors.Invariantf("unknown path %q", path)
	}
	if path == rpg.PathNone && len(classes) > 0 {
		return rpg.Stats{}, errors.Invariantf("pathless player has classes %v", classes)
	}

	growths := pathInfo.Growths
	for _, c := range classes {
		info, ok := rpg.LookupClass(c)
		if !ok {
			return rpg.Stats{}, errors.Invariantf("unknown class %q", c)
		}
		if !info.CompatibleWith(path) {
			return rpg.Stats{}, errors.Invariantf("class %s is not available on path %s", c, path)
		}
		growths = growths.Add(info.Modifiers)
	}

	return growths, nil
}

// RollLevel rolls one level-up. Each stat gains 1 when a d100 lands at or
// under its growth rate.
func RollLevel(roller dice.Roller, growths rpg.Stats) (rpg.Stats, error) {
	var increases rpg.Stats
	for i := range growths {
		roll, err := roller.Roll(growthRollSides)
		if err != nil {
			return rpg.Stats{}, errors.Wrap(err, "failed to roll growth")
		}
		if roll <= growths[i] {
			increases[i] = 1
		}
	}
	return increases, nil
}

// LevelUpInput is the state the level-up loop starts from
type LevelUpInput struct {
	Level      int
	Experience int
	Prestige   int
	Growths    rpg.Stats
}

// LevelUpOutput is the state after the loop. Increases is the sum of
// every level gained and is meant to be applied to stats in one step.
type LevelUpOutput struct {
	Level        int
	Experience   int
	Increases    rpg.Stats
	LevelsGained int
}

// LevelUp levels while the experience within the current level reaches its
// threshold and the cap has not been hit. At the cap experience is clamped
// so progress inside the level stays below the threshold.
func LevelUp(roller dice.Roller, input *LevelUpInput) (*LevelUpOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out := &LevelUpOutput{
		Level:      input.Level,
		Experience: input.Experience,
	}
	maxLevel := MaxLevel(input.Prestige)

	for out.Level < maxLevel &&
		ExperienceWithinLevel(out.Experience, out.Level) >= LevelThreshold(out.Level) {
		inc, err := RollLevel(roller, input.Growths)
		if err != nil {
			return nil, err
		}
		out.Increases = out.Increases.Add(inc)
		out.Level++
		out.LevelsGained++
	}

	if out.Level >= maxLevel {
		ceiling := CumulativeExperience(out.Level) + LevelThreshold(out.Level) - 1
		if out.Experience > ceiling {
			out.Experience = ceiling
		}
	}

	return out, nil
}

// ReputationBonus is floor(log10(reputation)), 0 below 1. Computed on
// integers so powers of ten are exact.
func ReputationBonus(reputation int) int {
	bonus := 0
	for reputation >= 10 {
		reputation /= 10
		bonus++
	}
	return bonus
}

// ChatExperience is the experience granted for one chat message
func ChatExperience(reputation int, boosted bool) int {
	exp := BaseChatExperience
	if boosted {
		exp += BoostedChatBonus
	}
	return exp + ReputationBonus(reputation)
}

// StreakBonus is the additive bonus for base at the given streak. Streaks
// past StreakBonusLimit count as the limit.
func StreakBonus(base, streak int) int {
	if streak > StreakBonusLimit {
		streak = StreakBonusLimit
	}
	if streak < 1 {
		return 0
	}
	return base * (streak - 1) * StreakBonusPercent / 100
}

// DailyRewards returns the experience and funds for a daily claim made
// with the given streak (after it was updated for this claim)
func DailyRewards(streak, reputation int, boosted bool) (experience, funds int) {
	experience = BaseDailyExperience
	funds = BaseDailyFunds
	if boosted {
		experience += BoostedDailyBonus
		funds += BoostedDailyBonus
	}

	experience += StreakBonus(experience, streak)
	funds += StreakBonus(funds, streak)
	experience += ReputationDailyFactor * ReputationBonus(reputation)

	return experience, funds
}

// Unlocks are the progression milestones a player has reached but not
// acted on yet
type Unlocks struct {
	Path       bool
	Class      bool
	Limitbreak bool
}

// CheckUnlocks evaluates the milestones for a player
func CheckUnlocks(level, prestige int, path rpg.Path, classCount int) Unlocks {
	return Unlocks{
		Path: level >= PathLevel && path == rpg.PathNone,
		Class: level >= FirstClassLevel && classCount < 1 ||
			level >= SecondClassLevel && classCount < 2,
		Limitbreak: level >= MaxLevel(prestige),
	}
}
