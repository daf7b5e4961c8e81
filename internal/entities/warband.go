package entities

import "time"

// Ability is a warband-wide special ability. It alters item or attribute
// costs (or the equipment cap) for every weirdo in the warband. The empty
// string means the warband has no ability.
type Ability string

const (
	AbilityNone       Ability = ""
	AbilityMutants    Ability = "Mutants"
	AbilityBrutes     Ability = "Brutes"
	AbilityCultists   Ability = "Cultists"
	AbilityMarauders  Ability = "Marauders"
	AbilityScavengers Ability = "Scavengers"
	AbilityPsykers    Ability = "Psykers"
	AbilityCyborgs    Ability = "Cyborgs"
)

// Abilities lists the seven selectable warband abilities.
var Abilities = []Ability{
	AbilityMutants,
	AbilityBrutes,
	AbilityCultists,
	AbilityMarauders,
	AbilityScavengers,
	AbilityPsykers,
	AbilityCyborgs,
}

// IsValid returns true for a known ability or for none at all.
func (a Ability) IsValid() bool {
	if a == AbilityNone {
		return true
	}
	for _, known := range Abilities {
		if a == known {
			return true
		}
	}
	return false
}

// Point limits a warband may be built against.
const (
	PointLimitSkirmish = 75
	PointLimitBattle   = 125
)

// ValidPointLimit reports whether the limit is one of the playable sizes.
func ValidPointLimit(limit int) bool {
	return limit == PointLimitSkirmish || limit == PointLimitBattle
}

// Warband is a player's full roster plus its point budget and warband-wide
// ability. TotalCost is derived (the sum of recomputed weirdo costs) and is
// refreshed on every write rather than trusted from storage.
type Warband struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`
	Name    string `json:"name"`

	Ability    Ability   `json:"ability,omitempty"`
	PointLimit int       `json:"point_limit"`
	Weirdos    []*Weirdo `json:"weirdos"`

	TotalCost int `json:"total_cost"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Leader returns the warband's leader, or nil if none has been added yet.
func (w *Warband) Leader() *Weirdo {
	for _, weirdo := range w.Weirdos {
		if weirdo != nil && weirdo.IsLeader() {
			return weirdo
		}
	}
	return nil
}
