package cost_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weirdoworks/warband-bot/internal/entities"
	"github.com/weirdoworks/warband-bot/internal/services/cost"
	"github.com/weirdoworks/warband-bot/internal/testutils"
)

var (
	sword     = entities.Weapon{ID: "sword", Name: "Sword", Category: entities.WeaponCategoryClose, BaseCost: 2}
	powerClaw = entities.Weapon{ID: "power-claw", Name: "Power Claw", Category: entities.WeaponCategoryClose, BaseCost: 4}
	rifle     = entities.Weapon{ID: "rifle", Name: "Rifle", Category: entities.WeaponCategoryRanged, BaseCost: 3}
	shield    = entities.Equipment{ID: "shield", Name: "Shield", Category: entities.EquipmentCategoryPassive, BaseCost: 1}
	mindSpike = entities.PsychicPower{ID: "mind-spike", Name: "Mind Spike", Cost: 2}
)

func TestWeirdoCost_FloorLineWeirdoIsFree(t *testing.T) {
	engine := cost.NewEngine()

	// All minimum attributes plus one zero-cost close combat weapon.
	weirdo := testutils.CreateTestWeirdo("Cheapskate", entities.WeirdoTypeTrooper)

	assert.Equal(t, 0, engine.WeirdoCost(weirdo, entities.AbilityNone))
}

func TestWeirdoCost_Additivity(t *testing.T) {
	engine := cost.NewEngine()
	ability := entities.AbilityNone

	weirdo := &entities.Weirdo{
		Name:               "Loaded",
		Type:               entities.WeirdoTypeTrooper,
		Attributes:         entities.NewAttributes(2, entities.DiceTier2D8, entities.DiceTier2D10, entities.DiceTier2D6, entities.Firepower2D8),
		CloseCombatWeapons: []entities.Weapon{sword},
		RangedWeapons:      []entities.Weapon{rifle},
		Equipment:          []entities.Equipment{shield},
		PsychicPowers:      []entities.PsychicPower{mindSpike},
	}

	attrTotal := engine.SpeedCost(2, ability) +
		engine.DefenseCost(entities.DiceTier2D8, ability) +
		engine.ProwessCost(entities.DiceTier2D10, ability) +
		engine.WillpowerCost(entities.DiceTier2D6, ability) +
		engine.FirepowerCost(entities.Firepower2D8, ability)
	itemTotal := engine.WeaponCost(sword, ability) +
		engine.WeaponCost(rifle, ability) +
		engine.EquipmentCost(shield, ability) +
		engine.PsychicPowerCost(mindSpike, ability)

	assert.Equal(t, attrTotal+itemTotal, engine.WeirdoCost(weirdo, ability))
	// 3+2+6+0+3 attributes, 2+3+1+2 items
	assert.Equal(t, 22, engine.WeirdoCost(weirdo, ability))
}

func TestWeirdoCost_Deterministic(t *testing.T) {
	engine := cost.NewEngine()

	weirdo := testutils.CreateTestWeirdo("Stable", entities.WeirdoTypeTrooper)
	weirdo.Attributes = entities.NewAttributes(3, entities.DiceTier2D10, entities.DiceTier2D8, entities.DiceTier2D8, entities.FirepowerNone)
	weirdo.CloseCombatWeapons = []entities.Weapon{sword, powerClaw}

	for _, ability := range append([]entities.Ability{entities.AbilityNone}, entities.Abilities...) {
		first := engine.WeirdoCost(weirdo, ability)
		second := engine.WeirdoCost(weirdo, ability)
		assert.Equal(t, first, second, "ability %q", ability)
	}
}

func TestWeirdoCost_NonNegativeUnderEveryAbility(t *testing.T) {
	engine := cost.NewEngine()

	freeRanged := entities.Weapon{ID: "scrap-gun", Name: "Scrap Gun", Category: entities.WeaponCategoryRanged, BaseCost: 0}
	weirdo := &entities.Weirdo{
		Name:               "Pauper",
		Type:               entities.WeirdoTypeTrooper,
		Attributes:         entities.NewAttributes(1, entities.DiceTier2D6, entities.DiceTier2D6, entities.DiceTier2D6, entities.Firepower2D8),
		CloseCombatWeapons: []entities.Weapon{{ID: "unarmed", Name: "Unarmed", Category: entities.WeaponCategoryClose, BaseCost: 0}},
		RangedWeapons:      []entities.Weapon{freeRanged},
		PsychicPowers:      []entities.PsychicPower{{ID: "hex", Name: "Hex", Cost: 0}},
	}

	for _, ability := range append([]entities.Ability{entities.AbilityNone}, entities.Abilities...) {
		assert.GreaterOrEqual(t, engine.WeirdoCost(weirdo, ability), 0, "ability %q", ability)
	}
}

func TestWeirdoCost_MutantsDiscountAppliesToSpeed(t *testing.T) {
	engine := cost.NewEngine()

	weirdo := testutils.CreateTestWeirdo("Sprinter", entities.WeirdoTypeTrooper)
	weirdo.Attributes = entities.NewAttributes(3, entities.DiceTier2D6, entities.DiceTier2D6, entities.DiceTier2D6, entities.FirepowerNone)

	assert.Equal(t, 6, engine.WeirdoCost(weirdo, entities.AbilityNone))
	assert.Equal(t, 4, engine.WeirdoCost(weirdo, entities.AbilityMutants))
}

func TestWarbandCost_CascadesOverUnits(t *testing.T) {
	engine := cost.NewEngine()

	warband := testutils.CreateTestWarband("wb-1", "owner-1", "The Sum")
	warband.Ability = entities.AbilityMarauders
	warband.Weirdos[0].RangedWeapons = []entities.Weapon{rifle}
	warband.Weirdos[0].Attributes.Firepower = entities.Firepower2D8
	warband.Weirdos[1].CloseCombatWeapons = append(warband.Weirdos[1].CloseCombatWeapons, sword)

	expected := 0
	for _, weirdo := range warband.Weirdos {
		expected += engine.WeirdoCost(weirdo, warband.Ability)
	}

	assert.Equal(t, expected, engine.WarbandCost(warband))
	// Leader: fp 3 + rifle discounted to 2; trooper: sword 2.
	assert.Equal(t, 7, engine.WarbandCost(warband))
}

func TestAttributeCost_GenericLookup(t *testing.T) {
	engine := cost.NewEngine()

	assert.Equal(t, 6, engine.AttributeCost(entities.AttributeSpeed, 3, entities.AbilityNone))
	assert.Equal(t, 5, engine.AttributeCost(entities.AttributeDefense, entities.DiceTier2D10, entities.AbilityNone))
	assert.Equal(t, 3, engine.AttributeCost(entities.AttributeFirepower, entities.Firepower2D8, entities.AbilityNone))
}

func TestAttributeCost_SpeedZeroPricesAsZero(t *testing.T) {
	engine := cost.NewEngine()

	assert.Equal(t, 0, engine.AttributeCost(entities.AttributeSpeed, 0, entities.AbilityNone))
}

func TestAttributeCost_PanicsOnContractViolation(t *testing.T) {
	engine := cost.NewEngine()

	require.Panics(t, func() {
		engine.AttributeCost(entities.AttributeSpeed, 7, entities.AbilityNone)
	})
	require.Panics(t, func() {
		engine.AttributeCost(entities.AttributeDefense, entities.DiceTier("3d6"), entities.AbilityNone)
	})
	require.Panics(t, func() {
		engine.AttributeCost(entities.AttributeDefense, 2, entities.AbilityNone)
	})
	require.Panics(t, func() {
		engine.AttributeCost(entities.Attribute("luck"), 1, entities.AbilityNone)
	})
}

func TestWeirdoCost_PanicsOnMissingAttributes(t *testing.T) {
	engine := cost.NewEngine()

	require.Panics(t, func() {
		engine.WeirdoCost(&entities.Weirdo{Name: "Hollow", Type: entities.WeirdoTypeTrooper}, entities.AbilityNone)
	})
}

func TestPriceable(t *testing.T) {
	weirdo := testutils.CreateTestWeirdo("Solid", entities.WeirdoTypeTrooper)
	assert.True(t, cost.Priceable(weirdo))

	assert.False(t, cost.Priceable(nil))
	assert.False(t, cost.Priceable(&entities.Weirdo{Name: "Hollow"}))

	weirdo.Attributes.Defense = entities.DiceTier("3d6")
	assert.False(t, cost.Priceable(weirdo))
}
