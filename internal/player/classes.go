package player

import (
	"slices"

	"github.com/KirkDiggler/rpg-player/internal/entities/rpg"
	"github.com/KirkDiggler/rpg-player/internal/progression"
)

// AvailablePaths lists the paths the player could switch to
func (p *Player) AvailablePaths() []rpg.Path {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.availablePathsLocked()
}

func (p *Player) availablePathsLocked() []rpg.Path {
	var out []rpg.Path
	for _, path := range rpg.PathNames() {
		if path != p.rec.Path {
			out = append(out, path)
		}
	}
	return out
}

// CanChangePath reports whether the player meets the level requirement
// and, if a path is already chosen, can pay for a reclass
func (p *Player) CanChangePath() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.canChangePathLocked()
}

func (p *Player) canChangePathLocked() bool {
	return p.rec.Level >= progression.PathLevel &&
		(p.rec.Path == rpg.PathNone || p.rec.Balance >= progression.ReclassCost)
}

// ChangePath moves the player to path. Leaving a chosen path costs
// progression.ReclassCost and drops every class; the first pick is free.
func (p *Player) ChangePath(path rpg.Path) (success, reclass bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.canChangePathLocked() ||
		path == rpg.PathNone ||
		path == p.rec.Path ||
		!slices.Contains(p.availablePathsLocked(), path) {
		return false, false
	}

	if p.rec.Path == rpg.PathNone {
		p.rec.Path = path
		return true, false
	}

	p.rec.Balance -= progression.ReclassCost
	p.rec.Path = path
	p.rec.Classes = []rpg.Class{}
	return true, true
}

// AvailableClasses lists the classes the player could equip: their
// path's classes, common classes and the admin classes for tier, minus
// what is already equipped. A pathless player gets none.
func (p *Player) AvailableClasses(tier rpg.AdminTier) []rpg.Class {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.availableClassesLocked(tier)
}

func (p *Player) availableClassesLocked(tier rpg.AdminTier) []rpg.Class {
	info, ok := rpg.LookupPath(p.rec.Path)
	if !ok || p.rec.Path == rpg.PathNone {
		return nil
	}

	candidates := append([]rpg.Class{}, info.Classes...)
	candidates = append(candidates, rpg.CommonClasses()...)
	candidates = append(candidates, rpg.AdminClasses(tier)...)

	out := candidates[:0]
	for _, c := range candidates {
		if !slices.Contains(p.rec.Classes, c) {
			out = append(out, c)
		}
	}
	return out
}

// CanAddClass reports whether a class slot is open at the current level
func (p *Player) CanAddClass() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.canAddClassLocked()
}

func (p *Player) canAddClassLocked() bool {
	n := len(p.rec.Classes)
	switch {
	case n >= 2:
		return false
	case n == 1:
		return p.rec.Level >= progression.SecondClassLevel
	default:
		return p.rec.Level >= progression.FirstClassLevel
	}
}

// AddClass equips cls in the next open slot
func (p *Player) AddClass(cls rpg.Class, tier rpg.AdminTier) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.canAddClassLocked() || !slices.Contains(p.availableClassesLocked(tier), cls) {
		return false
	}
	p.rec.Classes = append(p.rec.Classes, cls)
	return true
}

// CanChangeClass reports whether both slots are filled and a reclass is
// affordable
func (p *Player) CanChangeClass() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.canChangeClassLocked()
}

func (p *Player) canChangeClassLocked() bool {
	return len(p.rec.Classes) == 2 && p.rec.Balance >= progression.ReclassCost
}

// ChangeClass replaces the class in slot (0 or 1) with cls and charges
// progression.ReclassCost
func (p *Player) ChangeClass(cls rpg.Class, slot int, tier rpg.AdminTier) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.canChangeClassLocked() || slot < 0 || slot > 1 {
		return false
	}
	if !slices.Contains(p.availableClassesLocked(tier), cls) {
		return false
	}

	p.rec.Classes[slot] = cls
	p.rec.Balance -= progression.ReclassCost
	return true
}
