package rpg

// Path is the top-level archetype a player treads
type Path string

// Paths
const (
	PathNone    Path = "none"
	PathWarrior Path = "Warrior"
	PathCaster  Path = "Caster"
	PathRanger  Path = "Ranger"
)

// Class is a specialisation layered on top of a Path
type Class string

// Warrior classes
const (
	ClassSwordmaster Class = "Swordmaster"
	ClassGuardian    Class = "Guardian"
	ClassAssassin    Class = "Assassin"
)

// Caster classes
const (
	ClassPriest   Class = "Priest"
	ClassArcanist Class = "Arcanist"
	ClassSage     Class = "Sage"
)

// Ranger classes
const (
	ClassTrickster  Class = "Trickster"
	ClassSniper     Class = "Sniper"
	ClassAdventurer Class = "Adventurer"
)

// Classes open to every path
const (
	ClassCavalier Class = "Cavalier"
)

// Administrator classes
const (
	ClassArbiter Class = "Arbiter"
	ClassIdol    Class = "Idol"
	ClassLord    Class = "Lord"
)

// AdminTier controls which administrator classes a player may take
type AdminTier int

// Admin tiers, each one includes the classes of the tiers below it
const (
	AdminNone AdminTier = iota
	AdminRegular
	AdminOwner
	AdminSuperuser
)

func (t AdminTier) String() string {
	switch t {
	case AdminRegular:
		return "regular"
	case AdminOwner:
		return "owner"
	case AdminSuperuser:
		return "superuser"
	default:
		return "none"
	}
}

// ParseAdminTier is the inverse of AdminTier.String. Unknown names are AdminNone.
func ParseAdminTier(s string) AdminTier {
	switch s {
	case "regular":
		return AdminRegular
	case "owner":
		return AdminOwner
	case "superuser":
		return AdminSuperuser
	default:
		return AdminNone
	}
}

// PathInfo is the static description of a Path
type PathInfo struct {
	Name        Path
	Description string
	Growths     Stats
	Classes     []Class
}

// ClassInfo is the static description of a Class. Path is PathNone for
// classes open to every path.
type ClassInfo struct {
	Name        Class
	Path        Path
	Description string
	Modifiers   Stats
	AdminTier   AdminTier
}

// growth vectors are in Stat order:
// health, guard, strength, magic, speed, defence, resistance, dexterity, luck
var paths = map[Path]PathInfo{
	PathNone: {
		Name:        PathNone,
		Description: "Has yet to choose a path.",
		Growths:     Stats{50, 10, 30, 30, 30, 25, 25, 30, 30},
	},
	PathWarrior: {
		Name:        PathWarrior,
		Description: "Fights up close with blades and axes.",
		Growths:     Stats{75, 15, 50, 10, 40, 40, 20, 30, 20},
		Classes:     []Class{ClassSwordmaster, ClassGuardian, ClassAssassin},
	},
	PathCaster: {
		Name:        PathCaster,
		Description: "Wields spells and arcane arts.",
		Growths:     Stats{55, 15, 10, 55, 30, 20, 45, 20, 30},
		Classes:     []Class{ClassPriest, ClassArcanist, ClassSage},
	},
	PathRanger: {
		Name:        PathRanger,
		Description: "Strikes from afar with bows and tricks.",
		Growths:     Stats{50, 15, 55, 15, 30, 20, 20, 50, 45},
		Classes:     []Class{ClassTrickster, ClassSniper, ClassAdventurer},
	},
}

var classes = map[Class]ClassInfo{
	ClassSwordmaster: {Name: ClassSwordmaster, Path: PathWarrior, Description: "Master of the blade.",
		Modifiers: Stats{5, 0, 20, 0, 10, 0, 0, 5, -10}},
	ClassGuardian: {Name: ClassGuardian, Path: PathWarrior, Description: "An immovable wall.",
		Modifiers: Stats{15, 10, 15, 0, -30, 30, -10, 0, 0}},
	ClassAssassin: {Name: ClassAssassin, Path: PathWarrior, Description: "Strikes before being seen.",
		Modifiers: Stats{-25, 0, -10, 0, 35, -10, -10, 25, 25}},
	ClassPriest: {Name: ClassPriest, Path: PathCaster, Description: "Channels holy power.",
		Modifiers: Stats{0, 0, 0, 10, 0, -10, 30, 0, 0}},
	ClassArcanist: {Name: ClassArcanist, Path: PathCaster, Description: "Scholar of raw magic.",
		Modifiers: Stats{5, 0, 0, 20, -10, 10, 5, 0, 0}},
	ClassSage: {Name: ClassSage, Path: PathCaster, Description: "Balances wisdom and wit.",
		Modifiers: Stats{0, 0, 0, 10, -5, -5, 10, 10, 10}},
	ClassTrickster: {Name: ClassTrickster, Path: PathRanger, Description: "Relies on luck and misdirection.",
		Modifiers: Stats{0, 0, -10, 0, 10, 0, 0, 5, 25}},
	ClassSniper: {Name: ClassSniper, Path: PathRanger, Description: "Never misses a mark.",
		Modifiers: Stats{-10, 0, 15, 0, -5, 0, 0, 25, -5}},
	ClassAdventurer: {Name: ClassAdventurer, Path: PathRanger, Description: "Jack of all trades.",
		Modifiers: Stats{10, 0, 0, 5, 5, 0, 5, 0, 10}},
	ClassCavalier: {Name: ClassCavalier, Path: PathNone, Description: "Fights from horseback.",
		Modifiers: Stats{10, 5, 10, 0, 10, 5, -10, -5, -5}},
	ClassLord: {Name: ClassLord, Path: PathNone, Description: "Leads from the front.", AdminTier: AdminRegular,
		Modifiers: Stats{10, 5, 5, 5, 0, 5, 5, 0, 0}},
	ClassIdol: {Name: ClassIdol, Path: PathNone, Description: "Beloved by all.", AdminTier: AdminOwner,
		Modifiers: Stats{-10, 0, 0, 10, 10, 0, 10, 0, 20}},
	ClassArbiter: {Name: ClassArbiter, Path: PathNone, Description: "Judge of the realm.", AdminTier: AdminSuperuser,
		Modifiers: Stats{10, 5, 10, 10, 10, 10, 10, 10, 10}},
}

// PathNames lists every selectable path, excluding PathNone
func PathNames() []Path {
	return []Path{PathWarrior, PathCaster, PathRanger}
}

// LookupPath returns the static data for a path
func LookupPath(p Path) (PathInfo, bool) {
	info, ok := paths[p]
	return info, ok
}

// LookupClass returns the static data for a class
func LookupClass(c Class) (ClassInfo, bool) {
	info, ok := classes[c]
	return info, ok
}

// CommonClasses are available on every path
func CommonClasses() []Class {
	return []Class{ClassCavalier}
}

// AdminClasses returns the administrator classes granted by tier
func AdminClasses(tier AdminTier) []Class {
	var out []Class
	if tier >= AdminSuperuser {
		out = append(out, ClassArbiter)
	}
	if tier >= AdminOwner {
		out = append(out, ClassIdol)
	}
	if tier >= AdminRegular {
		out = append(out, ClassLord)
	}
	return out
}

// CompatibleWith reports whether the class may be equipped on path p.
// A pathless player can equip nothing.
func (c ClassInfo) CompatibleWith(p Path) bool {
	if p == PathNone {
		return false
	}
	return c.Path == PathNone || c.Path == p
}
