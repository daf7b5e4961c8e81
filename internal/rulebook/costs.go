package rulebook

import "github.com/weirdoworks/warband-bot/internal/entities"

// Base point costs for every (attribute, level) pair. The minimum level of
// every attribute costs 0, so a floor-line weirdo prices to 0 before items.
// Speed 0 is not purchasable but appears in legacy rosters and prices as 0.
var speedCosts = map[int]int{
	0: 0,
	1: 0,
	2: 3,
	3: 6,
}

var diceTierCosts = map[entities.Attribute]map[entities.DiceTier]int{
	entities.AttributeDefense: {
		entities.DiceTier2D6:  0,
		entities.DiceTier2D8:  2,
		entities.DiceTier2D10: 5,
	},
	entities.AttributeProwess: {
		entities.DiceTier2D6:  0,
		entities.DiceTier2D8:  3,
		entities.DiceTier2D10: 6,
	},
	entities.AttributeWillpower: {
		entities.DiceTier2D6:  0,
		entities.DiceTier2D8:  2,
		entities.DiceTier2D10: 4,
	},
}

var firepowerCosts = map[entities.FirepowerTier]int{
	entities.FirepowerNone: 0,
	entities.Firepower2D8:  3,
	entities.Firepower2D10: 6,
}

// SpeedBaseCost returns the base cost of a speed level. The second return is
// false when the level is outside the table.
func SpeedBaseCost(level int) (int, bool) {
	cost, ok := speedCosts[level]
	return cost, ok
}

// DiceTierBaseCost returns the base cost of a dice-tier attribute level.
func DiceTierBaseCost(attr entities.Attribute, tier entities.DiceTier) (int, bool) {
	table, ok := diceTierCosts[attr]
	if !ok {
		return 0, false
	}
	cost, ok := table[tier]
	return cost, ok
}

// FirepowerBaseCost returns the base cost of a firepower tier.
func FirepowerBaseCost(tier entities.FirepowerTier) (int, bool) {
	cost, ok := firepowerCosts[tier]
	return cost, ok
}
