package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weirdoworks/warband-bot/internal/entities"
	"github.com/weirdoworks/warband-bot/internal/rulebook"
	"github.com/weirdoworks/warband-bot/internal/services/validation"
	"github.com/weirdoworks/warband-bot/internal/testutils"
)

var (
	knife       = entities.Weapon{ID: "knife", Name: "Knife", Category: entities.WeaponCategoryClose, BaseCost: 1}
	sword       = entities.Weapon{ID: "sword", Name: "Sword", Category: entities.WeaponCategoryClose, BaseCost: 2}
	powerClaw   = entities.Weapon{ID: "power-claw", Name: "Power Claw", Category: entities.WeaponCategoryClose, BaseCost: 4}
	rifle       = entities.Weapon{ID: "rifle", Name: "Rifle", Category: entities.WeaponCategoryRanged, BaseCost: 3}
	heavyRifle  = entities.Weapon{ID: "heavy-rifle", Name: "Heavy Rifle", Category: entities.WeaponCategoryRanged, BaseCost: 5}
	blastCannon = entities.Weapon{ID: "blast-cannon", Name: "Blast Cannon", Category: entities.WeaponCategoryRanged, BaseCost: 6}
	shield      = entities.Equipment{ID: "shield", Name: "Shield", Category: entities.EquipmentCategoryPassive, BaseCost: 1}
	medKit      = entities.Equipment{ID: "med-kit", Name: "Med Kit", Category: entities.EquipmentCategoryAction, BaseCost: 2}
	jetPack     = entities.Equipment{ID: "jet-pack", Name: "Jet Pack", Category: entities.EquipmentCategoryAction, BaseCost: 3}
	camoCloak   = entities.Equipment{ID: "camo-cloak", Name: "Camo Cloak", Category: entities.EquipmentCategoryPassive, BaseCost: 2}
)

// attrs16 prices to 16: speed 3 (6) + defense 2d10 (5) + prowess 2d8 (3) +
// willpower 2d8 (2) + firepower None (0).
func attrs16() *entities.Attributes {
	return entities.NewAttributes(3, entities.DiceTier2D10, entities.DiceTier2D8, entities.DiceTier2D8, entities.FirepowerNone)
}

// trooperAt builds a trooper at an exact true cost on top of attrs16.
func trooperAt(name string, weapons ...entities.Weapon) *entities.Weirdo {
	w := testutils.CreateTestWeirdo(name, entities.WeirdoTypeTrooper)
	w.Attributes = attrs16()
	w.CloseCombatWeapons = weapons
	return w
}

// leader40 prices to 40: maxed attributes (27) plus blast cannon, heavy rifle
// and sword.
func leader40() *entities.Weirdo {
	w := testutils.CreateTestWeirdo("Warboss", entities.WeirdoTypeLeader)
	w.Attributes = entities.NewAttributes(3, entities.DiceTier2D10, entities.DiceTier2D10, entities.DiceTier2D10, entities.Firepower2D10)
	w.CloseCombatWeapons = []entities.Weapon{sword}
	w.RangedWeapons = []entities.Weapon{blastCannon, heavyRifle}
	return w
}

func codesOf(errs []validation.ValidationError) []rulebook.Code {
	codes := make([]rulebook.Code, 0, len(errs))
	for _, e := range errs {
		codes = append(codes, e.Code)
	}
	return codes
}

func TestValidateWarband_ValidWarband(t *testing.T) {
	svc := validation.NewService(nil)

	result := svc.ValidateWarband(testutils.CreateTestWarband("wb-1", "owner-1", "The Regulars"))

	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
}

func TestValidateWarband_NilWarband(t *testing.T) {
	svc := validation.NewService(nil)

	result := svc.ValidateWarband(nil)

	require.False(t, result.Valid)
	assert.ElementsMatch(t, []rulebook.Code{
		rulebook.CodeMissingWarbandName,
		rulebook.CodeMissingWeirdosList,
		rulebook.CodeInvalidPointLimit,
	}, codesOf(result.Errors))
}

func TestValidateWarbandComprehensive_BucketsByLevel(t *testing.T) {
	svc := validation.NewService(nil)

	warband := testutils.CreateTestWarband("wb-1", "owner-1", "Mixed Bag")
	// Nameless, typeless, attributeless and unarmed.
	warband.Weirdos = append(warband.Weirdos, &entities.Weirdo{})

	result := svc.ValidateWarbandComprehensive(warband)

	require.False(t, result.Valid)
	assert.Equal(t, 4, result.ErrorCount())
	assert.ElementsMatch(t, []rulebook.Code{
		rulebook.CodeMissingWeirdoName,
		rulebook.CodeInvalidWeirdoType,
		rulebook.CodeMissingAttributes,
	}, codesOf(result.Structure))
	assert.Empty(t, result.Types)
	assert.ElementsMatch(t, []rulebook.Code{
		rulebook.CodeMissingCloseCombatWeapon,
	}, codesOf(result.References))
	assert.Empty(t, result.Rules)
}

func TestValidateWarband_SpeedDomain(t *testing.T) {
	svc := validation.NewService(nil)

	t.Run("zero is legal", func(t *testing.T) {
		warband := testutils.CreateTestWarband("wb-1", "owner-1", "Slowpokes")
		zero := 0
		warband.Weirdos[1].Attributes.Speed = &zero

		result := svc.ValidateWarband(warband)
		assert.True(t, result.Valid)
	})

	t.Run("out of range", func(t *testing.T) {
		warband := testutils.CreateTestWarband("wb-1", "owner-1", "Speedsters")
		five := 5
		warband.Weirdos[1].Attributes.Speed = &five

		result := svc.ValidateWarband(warband)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, rulebook.CodeInvalidAttributeValue, result.Errors[0].Code)
		assert.Equal(t, "weirdos[1].attributes.speed", result.Errors[0].Field)
	})

	t.Run("missing", func(t *testing.T) {
		warband := testutils.CreateTestWarband("wb-1", "owner-1", "Unmeasured")
		warband.Weirdos[1].Attributes.Speed = nil

		result := svc.ValidateWarband(warband)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, rulebook.CodeMissingAttribute, result.Errors[0].Code)
	})
}

func TestValidateWarband_InvalidDiceTier(t *testing.T) {
	svc := validation.NewService(nil)

	warband := testutils.CreateTestWarband("wb-1", "owner-1", "Homebrewers")
	warband.Weirdos[0].Attributes.Prowess = entities.DiceTier("3d6")

	result := svc.ValidateWarband(warband)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, rulebook.CodeInvalidAttributeValue, result.Errors[0].Code)
	assert.Equal(t, "weirdos[0].attributes.prowess", result.Errors[0].Field)
	assert.Equal(t, validation.CategoryType, result.Errors[0].Category)
}

func TestValidateWarband_WeaponRequirements(t *testing.T) {
	svc := validation.NewService(nil)

	t.Run("firepower without ranged weapon", func(t *testing.T) {
		warband := testutils.CreateTestWarband("wb-1", "owner-1", "All Bark")
		warband.Weirdos[1].Attributes.Firepower = entities.Firepower2D8

		result := svc.ValidateWarband(warband)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, rulebook.CodeFirepowerRequiresRangedWeapon, result.Errors[0].Code)
		assert.Equal(t, "weirdos[1].attributes.firepower", result.Errors[0].Field)
	})

	t.Run("ranged weapon without firepower", func(t *testing.T) {
		warband := testutils.CreateTestWarband("wb-1", "owner-1", "Paperweights")
		warband.Weirdos[1].RangedWeapons = []entities.Weapon{rifle}

		result := svc.ValidateWarband(warband)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, rulebook.CodeRangedWeaponRequiresFirepower, result.Errors[0].Code)
	})

	t.Run("no close combat weapon", func(t *testing.T) {
		warband := testutils.CreateTestWarband("wb-1", "owner-1", "Pacifists")
		warband.Weirdos[1].CloseCombatWeapons = nil

		result := svc.ValidateWarband(warband)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, rulebook.CodeMissingCloseCombatWeapon, result.Errors[0].Code)
		assert.NotEmpty(t, result.Errors[0].Suggestions)
	})
}

func TestValidateWarband_EquipmentLimits(t *testing.T) {
	svc := validation.NewService(nil)

	t.Run("trooper over cap", func(t *testing.T) {
		warband := testutils.CreateTestWarband("wb-1", "owner-1", "Packrats")
		warband.Weirdos[1].Equipment = []entities.Equipment{shield, medKit, camoCloak}

		result := svc.ValidateWarband(warband)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, rulebook.CodeEquipmentLimitExceeded, result.Errors[0].Code)
		assert.Equal(t, "weirdos[1].equipment", result.Errors[0].Field)
	})

	t.Run("cyborgs raise the cap", func(t *testing.T) {
		warband := testutils.CreateTestWarband("wb-1", "owner-1", "Chromed")
		warband.Ability = entities.AbilityCyborgs
		warband.Weirdos[1].Equipment = []entities.Equipment{shield, medKit, camoCloak, jetPack}

		result := svc.ValidateWarband(warband)
		assert.True(t, result.Valid)
	})

	t.Run("leader over raised cap", func(t *testing.T) {
		warband := testutils.CreateTestWarband("wb-1", "owner-1", "Hoarders")
		warband.Ability = entities.AbilityCyborgs
		warband.Weirdos[0].Equipment = []entities.Equipment{shield, medKit, camoCloak, jetPack, shield, medKit}

		result := svc.ValidateWarband(warband)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, rulebook.CodeEquipmentLimitExceeded, result.Errors[0].Code)
	})
}

func TestValidateWarband_LeaderTraitOnTrooper(t *testing.T) {
	svc := validation.NewService(nil)

	warband := testutils.CreateTestWarband("wb-1", "owner-1", "Usurpers")
	warband.Weirdos[1].LeaderTrait = "Inspiring"

	result := svc.ValidateWarband(warband)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, rulebook.CodeLeaderTraitOnTrooper, result.Errors[0].Code)
	assert.Equal(t, "weirdos[1].leaderTrait", result.Errors[0].Field)
}

func TestValidateWarband_TrooperPointLimit(t *testing.T) {
	svc := validation.NewService(nil)

	t.Run("sole band occupant gets the premium ceiling", func(t *testing.T) {
		warband := testutils.CreateTestWarband("wb-1", "owner-1", "One Big Guy")
		warband.Weirdos[1] = trooperAt("Champ", sword, powerClaw) // 22 points

		result := svc.ValidateWarband(warband)
		assert.True(t, result.Valid)
	})

	t.Run("two band occupants both fall back to the base ceiling", func(t *testing.T) {
		warband := testutils.CreateTestWarband("wb-1", "owner-1", "Two Big Guys")
		warband.PointLimit = entities.PointLimitBattle
		// Two 22-point troopers: both in the premium band.
		warband.Weirdos = append(warband.Weirdos,
			trooperAt("Champ", sword, powerClaw),
			trooperAt("Challenger", sword, powerClaw))

		result := svc.ValidateWarband(warband)
		require.False(t, result.Valid)
		assert.ElementsMatch(t, []rulebook.Code{
			rulebook.CodeMultiple25PointWeirdos,
			rulebook.CodeTrooperPointLimitExceeded,
			rulebook.CodeTrooperPointLimitExceeded,
		}, codesOf(result.Errors))
	})

	t.Run("above the premium ceiling", func(t *testing.T) {
		warband := testutils.CreateTestWarband("wb-1", "owner-1", "Too Big")
		over := trooperAt("Goliath", sword, powerClaw, powerClaw, knife) // 27 points
		warband.Weirdos[1] = over

		result := svc.ValidateWarband(warband)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, rulebook.CodeTrooperPointLimitExceeded, result.Errors[0].Code)
		assert.Equal(t, "weirdos[1].totalCost", result.Errors[0].Field)
	})

	t.Run("leaders are exempt", func(t *testing.T) {
		warband := testutils.CreateTestWarband("wb-1", "owner-1", "Top Heavy")
		warband.Weirdos[0] = leader40()

		result := svc.ValidateWarband(warband)
		assert.True(t, result.Valid)
	})
}

func TestValidateWarband_PointLimitExceeded(t *testing.T) {
	svc := validation.NewService(nil)

	warband := testutils.CreateTestWarband("wb-1", "owner-1", "Overdrafted")
	warband.Weirdos = []*entities.Weirdo{
		leader40(),
		trooperAt("Champ", sword, powerClaw), // 22, sole band occupant
		trooperAt("Grunt", sword),            // 18
	}

	result := svc.ValidateWarband(warband)

	require.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	err := result.Errors[0]
	assert.Equal(t, rulebook.CodeWarbandPointLimitExceeded, err.Code)
	assert.Equal(t, "totalCost", err.Field)
	assert.Equal(t, "Warband total cost 80 exceeds the 75 point limit", err.Message)
}

func TestValidateWarband_TotalSkippedWhenUnitUnpriceable(t *testing.T) {
	svc := validation.NewService(nil)

	warband := testutils.CreateTestWarband("wb-1", "owner-1", "Half Known")
	warband.Weirdos = []*entities.Weirdo{
		leader40(),
		leader40(), // duplicate leader keeps the total over 75 on its own
		trooperAt("Mystery", sword),
	}
	warband.Weirdos[1].Type = entities.WeirdoTypeTrooper
	warband.Weirdos[2].Attributes.Defense = entities.DiceTier("3d6")

	result := svc.ValidateWarband(warband)

	codes := codesOf(result.Errors)
	assert.NotContains(t, codes, rulebook.CodeWarbandPointLimitExceeded)
	assert.Contains(t, codes, rulebook.CodeInvalidAttributeValue)
}

func TestValidateWeirdo_FieldPrefix(t *testing.T) {
	svc := validation.NewService(nil)

	warband := testutils.CreateTestWarband("wb-1", "owner-1", "Prefixed")
	warband.Weirdos[1].CloseCombatWeapons = nil

	t.Run("member of the warband", func(t *testing.T) {
		result := svc.ValidateWeirdo(warband.Weirdos[1], warband)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "weirdos[1].closeCombatWeapons", result.Errors[0].Field)
	})

	t.Run("standalone", func(t *testing.T) {
		orphan := testutils.CreateTestWeirdo("Drifter", entities.WeirdoTypeTrooper)
		orphan.CloseCombatWeapons = nil

		result := svc.ValidateWeirdo(orphan, nil)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "closeCombatWeapons", result.Errors[0].Field)
	})
}

func TestValidateWeirdo_NilWeirdo(t *testing.T) {
	svc := validation.NewService(nil)

	result := svc.ValidateWeirdo(nil, nil)

	require.False(t, result.Valid)
	assert.Contains(t, codesOf(result.Errors), rulebook.CodeMissingWeirdoName)
	assert.Contains(t, codesOf(result.Errors), rulebook.CodeMissingAttributes)
}

func TestValidateWarband_ErrorsCarrySeverityError(t *testing.T) {
	svc := validation.NewService(nil)

	result := svc.ValidateWarband(nil)

	for _, err := range result.Errors {
		assert.Equal(t, validation.SeverityError, err.Severity)
	}
}
