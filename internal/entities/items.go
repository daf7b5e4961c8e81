package entities

// WeaponCategory separates close-combat weapons from ranged weapons.
type WeaponCategory string

const (
	WeaponCategoryClose  WeaponCategory = "close"
	WeaponCategoryRanged WeaponCategory = "ranged"
)

// EquipmentCategory distinguishes always-on gear from gear spent as an action.
type EquipmentCategory string

const (
	EquipmentCategoryPassive EquipmentCategory = "Passive"
	EquipmentCategoryAction  EquipmentCategory = "Action"
)

// Weapon is an immutable catalog entry attached to a weirdo. BaseCost is the
// unmodified point cost; warband abilities may discount it at pricing time.
type Weapon struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Category WeaponCategory `json:"category"`
	BaseCost int            `json:"base_cost"`
}

// IsRanged reports whether the weapon occupies a ranged slot.
func (w Weapon) IsRanged() bool {
	return w.Category == WeaponCategoryRanged
}

// Equipment is an immutable catalog entry attached to a weirdo.
type Equipment struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Category EquipmentCategory `json:"category"`
	BaseCost int               `json:"base_cost"`
}

// PsychicPower is an immutable catalog entry attached to a weirdo.
type PsychicPower struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Cost int    `json:"cost"`
}
