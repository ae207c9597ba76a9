package testutils

import (
	"github.com/KirkDiggler/rpg-player/internal/entities/rpg"
	"github.com/KirkDiggler/rpg-player/internal/progression"
)

// RecordAtLevel returns a default record placed at the start of level
func RecordAtLevel(id string, level int) *rpg.Record {
	r := rpg.NewRecord(id)
	r.Level = level
	r.Experience = progression.CumulativeExperience(level)
	return r
}

// WarriorGuardian returns a level 40 Warrior with Guardian equipped
func WarriorGuardian(id string) *rpg.Record {
	r := RecordAtLevel(id, 40)
	r.Path = rpg.PathWarrior
	r.Classes = []rpg.Class{rpg.ClassGuardian}
	return r
}
