package entities

// WeirdoType says whether a unit is the warband leader or a trooper.
type WeirdoType string

const (
	WeirdoTypeLeader  WeirdoType = "leader"
	WeirdoTypeTrooper WeirdoType = "trooper"
)

// IsValid returns true for the two playable unit types.
func (t WeirdoType) IsValid() bool {
	return t == WeirdoTypeLeader || t == WeirdoTypeTrooper
}

// Weirdo is a single combatant entry in a warband.
//
// TotalCost is derived and never authoritative: it is recomputed from the
// current attributes and items on every write, and revalidation always
// re-derives it rather than trusting the stored value.
type Weirdo struct {
	ID   string     `json:"id"`
	Name string     `json:"name"`
	Type WeirdoType `json:"type"`

	// LeaderTrait is a perk exclusive to leaders. Troopers must leave it
	// empty.
	LeaderTrait string `json:"leader_trait,omitempty"`

	Attributes *Attributes `json:"attributes"`

	CloseCombatWeapons []Weapon       `json:"close_combat_weapons"`
	RangedWeapons      []Weapon       `json:"ranged_weapons"`
	Equipment          []Equipment    `json:"equipment"`
	PsychicPowers      []PsychicPower `json:"psychic_powers"`

	TotalCost int `json:"total_cost"`
}

// IsLeader reports whether the weirdo is the warband leader.
func (w *Weirdo) IsLeader() bool {
	return w.Type == WeirdoTypeLeader
}

// EquipmentCount returns the number of equipment items carried, the quantity
// checked against the equipment cap.
func (w *Weirdo) EquipmentCount() int {
	return len(w.Equipment)
}
