package entities

// Attribute identifies one of the five attribute dimensions every weirdo has.
type Attribute string

const (
	AttributeSpeed     Attribute = "speed"
	AttributeDefense   Attribute = "defense"
	AttributeProwess   Attribute = "prowess"
	AttributeWillpower Attribute = "willpower"
	AttributeFirepower Attribute = "firepower"
)

// Attributes is an Attribute slice in display order, used when iterating the
// full attribute set.
var AttributeNames = []Attribute{
	AttributeSpeed,
	AttributeDefense,
	AttributeProwess,
	AttributeWillpower,
	AttributeFirepower,
}

// DiceTier is the dice pool rating used by defense, prowess and willpower.
type DiceTier string

const (
	DiceTier2D6  DiceTier = "2d6"
	DiceTier2D8  DiceTier = "2d8"
	DiceTier2D10 DiceTier = "2d10"
)

// IsValid returns true if the tier is one of the three playable ratings.
func (d DiceTier) IsValid() bool {
	switch d {
	case DiceTier2D6, DiceTier2D8, DiceTier2D10:
		return true
	}
	return false
}

// FirepowerTier is the firepower rating. Unlike the other dice attributes it
// has an explicit None tier for weirdos that carry no ranged weapons.
type FirepowerTier string

const (
	FirepowerNone FirepowerTier = "None"
	Firepower2D8  FirepowerTier = "2d8"
	Firepower2D10 FirepowerTier = "2d10"
)

// IsValid returns true if the tier is a legal firepower rating.
func (f FirepowerTier) IsValid() bool {
	switch f {
	case FirepowerNone, Firepower2D8, Firepower2D10:
		return true
	}
	return false
}

// RequiresRangedWeapon reports whether a weirdo with this firepower rating
// must carry at least one ranged weapon.
func (f FirepowerTier) RequiresRangedWeapon() bool {
	return f == Firepower2D8 || f == Firepower2D10
}

const (
	// SpeedMin and SpeedMax bound the purchasable speed levels. Speed 0 is
	// accepted by type validation for legacy rosters and prices as 0, but
	// cannot be bought.
	SpeedMin = 1
	SpeedMax = 3
)

// Attributes holds the five attribute dimensions of a weirdo. The struct is
// a pointer field on Weirdo so a missing attribute block is representable;
// Speed is a pointer so the value 0 is distinguishable from absent.
type Attributes struct {
	Speed     *int          `json:"speed"`
	Defense   DiceTier      `json:"defense"`
	Prowess   DiceTier      `json:"prowess"`
	Willpower DiceTier      `json:"willpower"`
	Firepower FirepowerTier `json:"firepower"`
}

// NewAttributes builds a fully populated attribute block.
func NewAttributes(speed int, defense, prowess, willpower DiceTier, firepower FirepowerTier) *Attributes {
	return &Attributes{
		Speed:     &speed,
		Defense:   defense,
		Prowess:   prowess,
		Willpower: willpower,
		Firepower: firepower,
	}
}

// SpeedValid reports whether the speed value is present and in the legal
// domain. 0 is legal (legacy rosters), 1-3 are purchasable.
func (a *Attributes) SpeedValid() bool {
	return a.Speed != nil && *a.Speed >= 0 && *a.Speed <= SpeedMax
}
