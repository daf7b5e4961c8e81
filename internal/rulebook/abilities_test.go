package rulebook_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/weirdoworks/warband-bot/internal/entities"
	"github.com/weirdoworks/warband-bot/internal/rulebook"
)

func TestModifySpeedCost(t *testing.T) {
	base3, ok := rulebook.SpeedBaseCost(3)
	assert.True(t, ok)

	tests := []struct {
		name    string
		base    int
		level   int
		ability entities.Ability
		want    int
	}{
		{"no ability", base3, 3, entities.AbilityNone, 6},
		{"mutants speed 3", base3, 3, entities.AbilityMutants, 4},
		{"mutants speed 2", 3, 2, entities.AbilityMutants, 2},
		{"mutants at minimum", 0, 1, entities.AbilityMutants, 0},
		{"other ability untouched", base3, 3, entities.AbilityCyborgs, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rulebook.ModifySpeedCost(tt.base, tt.level, tt.ability))
		})
	}
}

func TestModifyDiceTierCost(t *testing.T) {
	// Brutes discount prowess by 1 per tier above 2d6.
	got := rulebook.ModifyDiceTierCost(6, entities.AttributeProwess, entities.DiceTier2D10, entities.AbilityBrutes)
	assert.Equal(t, 4, got)

	got = rulebook.ModifyDiceTierCost(3, entities.AttributeProwess, entities.DiceTier2D8, entities.AbilityBrutes)
	assert.Equal(t, 2, got)

	// Defense is not discounted by Brutes.
	got = rulebook.ModifyDiceTierCost(5, entities.AttributeDefense, entities.DiceTier2D10, entities.AbilityBrutes)
	assert.Equal(t, 5, got)
}

func TestModifyWeaponCost(t *testing.T) {
	ritualBlade := entities.Weapon{ID: "ritual-blade", Name: "Ritual Blade", Category: entities.WeaponCategoryClose, BaseCost: 2}
	rifle := entities.Weapon{ID: "rifle", Name: "Rifle", Category: entities.WeaponCategoryRanged, BaseCost: 3}
	sword := entities.Weapon{ID: "sword", Name: "Sword", Category: entities.WeaponCategoryClose, BaseCost: 2}

	assert.Equal(t, 1, rulebook.ModifyWeaponCost(ritualBlade.BaseCost, ritualBlade, entities.AbilityCultists))
	assert.Equal(t, 2, rulebook.ModifyWeaponCost(sword.BaseCost, sword, entities.AbilityCultists))

	assert.Equal(t, 2, rulebook.ModifyWeaponCost(rifle.BaseCost, rifle, entities.AbilityMarauders))
	assert.Equal(t, 2, rulebook.ModifyWeaponCost(sword.BaseCost, sword, entities.AbilityMarauders))
}

func TestModifyWeaponCost_ClampsAtZero(t *testing.T) {
	freebie := entities.Weapon{ID: "scrap-gun", Name: "Scrap Gun", Category: entities.WeaponCategoryRanged, BaseCost: 0}

	assert.Equal(t, 0, rulebook.ModifyWeaponCost(freebie.BaseCost, freebie, entities.AbilityMarauders))
}

func TestModifyEquipmentCost(t *testing.T) {
	scrapPlate := entities.Equipment{ID: "scrap-plate", Name: "Scrap Plate", Category: entities.EquipmentCategoryPassive, BaseCost: 2}
	shield := entities.Equipment{ID: "shield", Name: "Shield", Category: entities.EquipmentCategoryPassive, BaseCost: 1}

	assert.Equal(t, 0, rulebook.ModifyEquipmentCost(scrapPlate.BaseCost, scrapPlate, entities.AbilityScavengers))
	assert.Equal(t, 1, rulebook.ModifyEquipmentCost(shield.BaseCost, shield, entities.AbilityScavengers))
	assert.Equal(t, 2, rulebook.ModifyEquipmentCost(scrapPlate.BaseCost, scrapPlate, entities.AbilityNone))
}

func TestModifyPsychicPowerCost(t *testing.T) {
	assert.Equal(t, 1, rulebook.ModifyPsychicPowerCost(2, entities.AbilityPsykers))
	assert.Equal(t, 0, rulebook.ModifyPsychicPowerCost(0, entities.AbilityPsykers))
	assert.Equal(t, 2, rulebook.ModifyPsychicPowerCost(2, entities.AbilityNone))
}

func TestDefaultCostConfig_EquipmentCap(t *testing.T) {
	cfg := rulebook.DefaultCostConfig()

	assert.Equal(t, 3, cfg.EquipmentCap(entities.WeirdoTypeLeader, entities.AbilityNone))
	assert.Equal(t, 5, cfg.EquipmentCap(entities.WeirdoTypeLeader, entities.AbilityCyborgs))
	assert.Equal(t, 2, cfg.EquipmentCap(entities.WeirdoTypeTrooper, entities.AbilityNone))
	assert.Equal(t, 4, cfg.EquipmentCap(entities.WeirdoTypeTrooper, entities.AbilityCyborgs))

	// Non-Cyborgs abilities use the standard caps.
	assert.Equal(t, 2, cfg.EquipmentCap(entities.WeirdoTypeTrooper, entities.AbilityMutants))
}

func TestDefaultCostConfig_SpecialSlotBand(t *testing.T) {
	cfg := rulebook.DefaultCostConfig()

	assert.False(t, cfg.SpecialSlot.Contains(20))
	assert.True(t, cfg.SpecialSlot.Contains(21))
	assert.True(t, cfg.SpecialSlot.Contains(25))
	assert.False(t, cfg.SpecialSlot.Contains(26))
}

func TestDefaultCostConfig_PointLimits(t *testing.T) {
	cfg := rulebook.DefaultCostConfig()

	assert.True(t, cfg.ValidPointLimit(75))
	assert.True(t, cfg.ValidPointLimit(125))
	assert.False(t, cfg.ValidPointLimit(100))
	assert.False(t, cfg.ValidPointLimit(0))
}
