package rulebook

import (
	"fmt"
	"strings"
)

// Code identifies a validation finding. The set is closed so a switch over
// codes can be checked for exhaustiveness.
type Code string

const (
	// Structure
	CodeMissingWarbandName Code = "MISSING_WARBAND_NAME"
	CodeMissingWeirdosList Code = "MISSING_WEIRDOS_LIST"
	CodeMissingWeirdoName  Code = "MISSING_WEIRDO_NAME"
	CodeInvalidWeirdoType  Code = "INVALID_WEIRDO_TYPE"
	CodeMissingAttributes  Code = "MISSING_ATTRIBUTES"

	// Types
	CodeMissingAttribute      Code = "MISSING_ATTRIBUTE"
	CodeInvalidAttributeValue Code = "INVALID_ATTRIBUTE_VALUE"
	CodeInvalidPointLimit     Code = "INVALID_POINT_LIMIT"
	CodeInvalidAbility        Code = "INVALID_ABILITY"

	// Game-data references
	CodeMissingCloseCombatWeapon      Code = "MISSING_CLOSE_COMBAT_WEAPON"
	CodeFirepowerRequiresRangedWeapon Code = "FIREPOWER_REQUIRES_RANGED_WEAPON"
	CodeRangedWeaponRequiresFirepower Code = "RANGED_WEAPON_REQUIRES_FIREPOWER"

	// Business rules
	CodeEquipmentLimitExceeded    Code = "EQUIPMENT_LIMIT_EXCEEDED"
	CodeMultiple25PointWeirdos    Code = "MULTIPLE_25_POINT_WEIRDOS"
	CodeTrooperPointLimitExceeded Code = "TROOPER_POINT_LIMIT_EXCEEDED"
	CodeLeaderTraitOnTrooper      Code = "LEADER_TRAIT_ON_TROOPER"
	CodeWarbandPointLimitExceeded Code = "WARBAND_POINT_LIMIT_EXCEEDED"

	// Warnings
	CodeApproachingTrooperLimit Code = "APPROACHING_TROOPER_LIMIT"
	CodeApproachingPremiumLimit Code = "APPROACHING_PREMIUM_LIMIT"
)

// messageTemplates maps each code to a human-readable template. Placeholders
// use {key} tokens filled by Message.
var messageTemplates = map[Code]string{
	CodeMissingWarbandName: "Warband name is required",
	CodeMissingWeirdosList: "Warband must have a list of weirdos",
	CodeMissingWeirdoName:  "Weirdo name is required",
	CodeInvalidWeirdoType:  "Weirdo type must be leader or trooper, got {type}",
	CodeMissingAttributes:  "Weirdo must have an attribute block",

	CodeMissingAttribute:      "Missing value for {attribute}",
	CodeInvalidAttributeValue: "Invalid {attribute} value {value}",
	CodeInvalidPointLimit:     "Point limit must be 75 or 125, got {pointLimit}",
	CodeInvalidAbility:        "Unknown warband ability {ability}",

	CodeMissingCloseCombatWeapon:      "Every weirdo needs at least one close combat weapon",
	CodeFirepowerRequiresRangedWeapon: "Firepower {firepower} requires at least one ranged weapon",
	CodeRangedWeaponRequiresFirepower: "Ranged weapons require a firepower rating above None",

	CodeEquipmentLimitExceeded:    "{name} carries {count} equipment items, the limit is {limit}",
	CodeMultiple25PointWeirdos:    "Only one weirdo may cost between {min} and {max} points",
	CodeTrooperPointLimitExceeded: "{name} costs {cost} points, the trooper limit is {limit}",
	CodeLeaderTraitOnTrooper:      "Troopers cannot take a leader trait",
	CodeWarbandPointLimitExceeded: "Warband total cost {totalCost} exceeds the {pointLimit} point limit",

	CodeApproachingTrooperLimit: "{name} is at {cost} points, within {threshold} of the {limit} point limit",
	CodeApproachingPremiumLimit: "{name} is at {cost} points and could take the premium weirdo slot (up to {limit} points)",
}

// Message expands the template for a code with simple {key} substitution.
// Placeholders with no matching param are left unexpanded; params with no
// matching placeholder are ignored. An unknown code renders as the code
// itself so a finding is never silently blank.
func Message(code Code, params map[string]any) string {
	template, ok := messageTemplates[code]
	if !ok {
		return string(code)
	}

	msg := template
	for key, value := range params {
		msg = strings.ReplaceAll(msg, "{"+key+"}", fmt.Sprintf("%v", value))
	}
	return msg
}
