package testutils

import (
	"github.com/weirdoworks/warband-bot/internal/entities"
)

// Unarmed is a zero-cost close combat weapon every fixture carries so the
// weapon-requirement rule passes by default.
var Unarmed = entities.Weapon{ID: "unarmed", Name: "Unarmed", Category: entities.WeaponCategoryClose, BaseCost: 0}

// CreateTestWeirdo builds a baseline unit: minimum attributes, one unarmed
// close combat weapon, no other gear. It prices to 0.
func CreateTestWeirdo(name string, unitType entities.WeirdoType) *entities.Weirdo {
	return &entities.Weirdo{
		ID:                 "weirdo-" + name,
		Name:               name,
		Type:               unitType,
		Attributes:         entities.NewAttributes(entities.SpeedMin, entities.DiceTier2D6, entities.DiceTier2D6, entities.DiceTier2D6, entities.FirepowerNone),
		CloseCombatWeapons: []entities.Weapon{Unarmed},
	}
}

// CreateTestWarband builds a valid two-unit warband: one leader and one
// trooper, both baseline.
func CreateTestWarband(id, ownerID, name string) *entities.Warband {
	return &entities.Warband{
		ID:         id,
		OwnerID:    ownerID,
		Name:       name,
		PointLimit: entities.PointLimitSkirmish,
		Weirdos: []*entities.Weirdo{
			CreateTestWeirdo("Boss", entities.WeirdoTypeLeader),
			CreateTestWeirdo("Grunt", entities.WeirdoTypeTrooper),
		},
	}
}
