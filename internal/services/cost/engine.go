// Package cost prices weirdos and warbands. The engine is a pure function
// of its inputs: it never touches I/O, never caches, and never applies point
// caps. It always reports the true unclamped total; deciding whether that
// total is acceptable belongs to the validation service.
package cost

import (
	"fmt"

	"github.com/weirdoworks/warband-bot/internal/entities"
	"github.com/weirdoworks/warband-bot/internal/rulebook"
)

// Engine computes point costs from the static rulebook tables plus the
// warband ability modifier rules.
type Engine struct{}

// NewEngine creates a cost engine.
func NewEngine() *Engine {
	return &Engine{}
}

// AttributeCost prices one (attribute, level) pair under an ability. The
// level is an int for speed, a DiceTier for defense/prowess/willpower and a
// FirepowerTier for firepower. An out-of-domain pair can only come from a
// caller bug, not user input, so it panics rather than returning a
// validation error.
func (e *Engine) AttributeCost(attr entities.Attribute, level any, ability entities.Ability) int {
	switch attr {
	case entities.AttributeSpeed:
		lvl, ok := level.(int)
		if !ok {
			panic(fmt.Sprintf("cost: speed level must be an int, got %T", level))
		}
		return e.SpeedCost(lvl, ability)
	case entities.AttributeDefense, entities.AttributeProwess, entities.AttributeWillpower:
		tier, ok := level.(entities.DiceTier)
		if !ok {
			panic(fmt.Sprintf("cost: %s level must be a DiceTier, got %T", attr, level))
		}
		return e.diceTierCost(attr, tier, ability)
	case entities.AttributeFirepower:
		tier, ok := level.(entities.FirepowerTier)
		if !ok {
			panic(fmt.Sprintf("cost: firepower level must be a FirepowerTier, got %T", level))
		}
		return e.FirepowerCost(tier, ability)
	default:
		panic(fmt.Sprintf("cost: unknown attribute %q", attr))
	}
}

// SpeedCost prices a speed level.
func (e *Engine) SpeedCost(level int, ability entities.Ability) int {
	base, ok := rulebook.SpeedBaseCost(level)
	if !ok {
		panic(fmt.Sprintf("cost: speed level %d out of range", level))
	}
	return rulebook.ModifySpeedCost(base, level, ability)
}

// DefenseCost prices a defense tier.
func (e *Engine) DefenseCost(tier entities.DiceTier, ability entities.Ability) int {
	return e.diceTierCost(entities.AttributeDefense, tier, ability)
}

// ProwessCost prices a prowess tier.
func (e *Engine) ProwessCost(tier entities.DiceTier, ability entities.Ability) int {
	return e.diceTierCost(entities.AttributeProwess, tier, ability)
}

// WillpowerCost prices a willpower tier.
func (e *Engine) WillpowerCost(tier entities.DiceTier, ability entities.Ability) int {
	return e.diceTierCost(entities.AttributeWillpower, tier, ability)
}

// FirepowerCost prices a firepower tier.
func (e *Engine) FirepowerCost(tier entities.FirepowerTier, ability entities.Ability) int {
	base, ok := rulebook.FirepowerBaseCost(tier)
	if !ok {
		panic(fmt.Sprintf("cost: invalid firepower tier %q", tier))
	}
	return rulebook.ModifyFirepowerCost(base, tier, ability)
}

func (e *Engine) diceTierCost(attr entities.Attribute, tier entities.DiceTier, ability entities.Ability) int {
	base, ok := rulebook.DiceTierBaseCost(attr, tier)
	if !ok {
		panic(fmt.Sprintf("cost: invalid %s tier %q", attr, tier))
	}
	return rulebook.ModifyDiceTierCost(base, attr, tier, ability)
}

// WeaponCost prices a weapon under an ability, floored at 0.
func (e *Engine) WeaponCost(weapon entities.Weapon, ability entities.Ability) int {
	return rulebook.ModifyWeaponCost(weapon.BaseCost, weapon, ability)
}

// EquipmentCost prices an equipment item under an ability, floored at 0.
func (e *Engine) EquipmentCost(eq entities.Equipment, ability entities.Ability) int {
	return rulebook.ModifyEquipmentCost(eq.BaseCost, eq, ability)
}

// PsychicPowerCost prices a psychic power under an ability, floored at 0.
func (e *Engine) PsychicPowerCost(power entities.PsychicPower, ability entities.Ability) int {
	return rulebook.ModifyPsychicPowerCost(power.Cost, ability)
}

// Priceable reports whether a weirdo's attribute block is inside the
// engine's contract. Callers holding possibly-invalid user input check this
// before calling WeirdoCost instead of recovering from the fail-fast panic.
func Priceable(weirdo *entities.Weirdo) bool {
	if weirdo == nil || weirdo.Attributes == nil {
		return false
	}
	attrs := weirdo.Attributes
	return attrs.SpeedValid() &&
		attrs.Defense.IsValid() &&
		attrs.Prowess.IsValid() &&
		attrs.Willpower.IsValid() &&
		attrs.Firepower.IsValid()
}

// WeirdoCost returns the true unclamped total of a weirdo: the five
// attribute costs plus every attached item. Caps are not applied here, so a
// caller can render "25/20 pts, over limit" instead of a silently clamped
// number. A nil or out-of-domain attribute block is a caller contract
// violation and panics.
func (e *Engine) WeirdoCost(weirdo *entities.Weirdo, ability entities.Ability) int {
	if weirdo == nil {
		panic("cost: weirdo cannot be nil")
	}
	if weirdo.Attributes == nil || weirdo.Attributes.Speed == nil {
		panic("cost: weirdo attributes must be fully populated")
	}

	attrs := weirdo.Attributes
	total := e.SpeedCost(*attrs.Speed, ability) +
		e.DefenseCost(attrs.Defense, ability) +
		e.ProwessCost(attrs.Prowess, ability) +
		e.WillpowerCost(attrs.Willpower, ability) +
		e.FirepowerCost(attrs.Firepower, ability)

	for _, weapon := range weirdo.CloseCombatWeapons {
		total += e.WeaponCost(weapon, ability)
	}
	for _, weapon := range weirdo.RangedWeapons {
		total += e.WeaponCost(weapon, ability)
	}
	for _, eq := range weirdo.Equipment {
		total += e.EquipmentCost(eq, ability)
	}
	for _, power := range weirdo.PsychicPowers {
		total += e.PsychicPowerCost(power, ability)
	}

	return total
}

// WarbandCost sums WeirdoCost over every unit using the warband's shared
// ability.
func (e *Engine) WarbandCost(warband *entities.Warband) int {
	if warband == nil {
		panic("cost: warband cannot be nil")
	}

	total := 0
	for _, weirdo := range warband.Weirdos {
		total += e.WeirdoCost(weirdo, warband.Ability)
	}
	return total
}
