package rulebook

import "github.com/weirdoworks/warband-bot/internal/entities"

// EquipmentCaps is the equipment-count ceiling table. Cyborgs warbands get a
// raised cap for both unit types.
type EquipmentCaps struct {
	Leader         int `json:"leader"`
	LeaderCyborgs  int `json:"leader_cyborgs"`
	Trooper        int `json:"trooper"`
	TrooperCyborgs int `json:"trooper_cyborgs"`
}

// SpecialSlotBand bounds the cost band of the single permitted premium
// weirdo.
type SpecialSlotBand struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether a true (unclamped) cost falls inside the band.
func (b SpecialSlotBand) Contains(cost int) bool {
	return cost >= b.Min && cost <= b.Max
}

// CostConfig carries every externalized threshold the validation service
// consumes. It is constructed explicitly and injected; there is no
// process-wide singleton.
type CostConfig struct {
	// PointLimits are the playable warband sizes.
	PointLimits []int `json:"point_limits"`

	EquipmentCaps EquipmentCaps   `json:"equipment_caps"`
	SpecialSlot   SpecialSlotBand `json:"special_slot"`

	// TrooperPointLimit is the baseline trooper cost ceiling.
	// TrooperPremiumLimit is the ceiling for the sole special-slot occupant.
	TrooperPointLimit   int `json:"trooper_point_limit"`
	TrooperPremiumLimit int `json:"trooper_premium_limit"`

	// WarningThreshold is how close (in points) a weirdo's cost must get to
	// a ceiling before a proximity warning fires.
	WarningThreshold int `json:"warning_threshold"`
}

// DefaultCostConfig returns the published ruleset values.
func DefaultCostConfig() *CostConfig {
	return &CostConfig{
		PointLimits: []int{entities.PointLimitSkirmish, entities.PointLimitBattle},
		EquipmentCaps: EquipmentCaps{
			Leader:         3,
			LeaderCyborgs:  5,
			Trooper:        2,
			TrooperCyborgs: 4,
		},
		SpecialSlot:         SpecialSlotBand{Min: 21, Max: 25},
		TrooperPointLimit:   20,
		TrooperPremiumLimit: 25,
		WarningThreshold:    3,
	}
}

// EquipmentCap resolves the cap for a unit type under a warband ability.
func (c *CostConfig) EquipmentCap(unitType entities.WeirdoType, ability entities.Ability) int {
	cyborgs := ability == entities.AbilityCyborgs
	if unitType == entities.WeirdoTypeLeader {
		if cyborgs {
			return c.EquipmentCaps.LeaderCyborgs
		}
		return c.EquipmentCaps.Leader
	}
	if cyborgs {
		return c.EquipmentCaps.TrooperCyborgs
	}
	return c.EquipmentCaps.Trooper
}

// ValidPointLimit reports whether the limit is one of the configured sizes.
func (c *CostConfig) ValidPointLimit(limit int) bool {
	for _, l := range c.PointLimits {
		if limit == l {
			return true
		}
	}
	return false
}
