package rulebook

import "github.com/weirdoworks/warband-bot/internal/entities"

// Ability modifier rules. Each function takes a base cost and returns the
// cost after the warband ability is applied, clamped at 0. The rules are
// pure: same inputs, same output.

// cultistWeapons are the named close-combat weapons discounted by Cultists.
var cultistWeapons = map[string]bool{
	"Ritual Blade":  true,
	"Great Cleaver": true,
}

// scavengerGear is the named equipment Scavengers get for free.
var scavengerGear = map[string]bool{
	"Scrap Plate": true,
	"Med Kit":     true,
}

var diceTierRank = map[entities.DiceTier]int{
	entities.DiceTier2D6:  0,
	entities.DiceTier2D8:  1,
	entities.DiceTier2D10: 2,
}

// ModifySpeedCost applies the Mutants discount: speed costs 1 less per level
// above the minimum.
func ModifySpeedCost(base, level int, ability entities.Ability) int {
	if ability == entities.AbilityMutants && level > entities.SpeedMin {
		base -= level - entities.SpeedMin
	}
	return clampCost(base)
}

// ModifyDiceTierCost applies the Brutes discount: prowess costs 1 less per
// tier above 2d6. Other dice attributes are unaffected.
func ModifyDiceTierCost(base int, attr entities.Attribute, tier entities.DiceTier, ability entities.Ability) int {
	if ability == entities.AbilityBrutes && attr == entities.AttributeProwess {
		base -= diceTierRank[tier]
	}
	return clampCost(base)
}

// ModifyFirepowerCost exists for symmetry; no current ability discounts
// firepower.
func ModifyFirepowerCost(base int, _ entities.FirepowerTier, _ entities.Ability) int {
	return clampCost(base)
}

// ModifyWeaponCost applies weapon discounts: Cultists take 1 off their named
// close-combat weapons, Marauders take 1 off every ranged weapon.
func ModifyWeaponCost(base int, weapon entities.Weapon, ability entities.Ability) int {
	switch ability {
	case entities.AbilityCultists:
		if weapon.Category == entities.WeaponCategoryClose && cultistWeapons[weapon.Name] {
			base--
		}
	case entities.AbilityMarauders:
		if weapon.IsRanged() {
			base--
		}
	}
	return clampCost(base)
}

// ModifyEquipmentCost applies equipment discounts: Scavengers carry their
// named gear for free.
func ModifyEquipmentCost(base int, eq entities.Equipment, ability entities.Ability) int {
	if ability == entities.AbilityScavengers && scavengerGear[eq.Name] {
		return 0
	}
	return clampCost(base)
}

// ModifyPsychicPowerCost applies the Psykers discount: every power costs 1
// less.
func ModifyPsychicPowerCost(base int, ability entities.Ability) int {
	if ability == entities.AbilityPsykers {
		base--
	}
	return clampCost(base)
}

// clampCost floors a modified cost at 0. Cost is never negative, no matter
// how the discounts stack.
func clampCost(cost int) int {
	if cost < 0 {
		return 0
	}
	return cost
}
