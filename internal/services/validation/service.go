// Package validation checks warbands against structural, type, referential
// and business rules, producing blocking errors and non-blocking proximity
// warnings. The service is pure and synchronous: it re-derives every cost
// through the cost engine, mutates nothing and performs no I/O.
package validation

import (
	"fmt"

	"github.com/weirdoworks/warband-bot/internal/entities"
	"github.com/weirdoworks/warband-bot/internal/rulebook"
	"github.com/weirdoworks/warband-bot/internal/services/cost"
)

// Service runs the four validation levels. The levels are independent and
// all run in sequence; findings accumulate rather than stopping early. A
// malformed input short-circuits only the sub-checks that depend on it.
type Service struct {
	engine *cost.Engine
	cfg    *rulebook.CostConfig
}

// ServiceConfig holds configuration for the validation service. Both fields
// are optional; defaults are the published ruleset.
type ServiceConfig struct {
	Engine *cost.Engine
	Config *rulebook.CostConfig
}

// NewService creates a validation service.
func NewService(cfg *ServiceConfig) *Service {
	if cfg == nil {
		cfg = &ServiceConfig{}
	}

	svc := &Service{
		engine: cfg.Engine,
		cfg:    cfg.Config,
	}
	if svc.engine == nil {
		svc.engine = cost.NewEngine()
	}
	if svc.cfg == nil {
		svc.cfg = rulebook.DefaultCostConfig()
	}

	return svc
}

// ValidateWarband runs every level over the whole warband and returns the
// flattened result.
func (s *Service) ValidateWarband(warband *entities.Warband) *Result {
	comp := s.ValidateWarbandComprehensive(warband)

	var errs []ValidationError
	errs = append(errs, comp.Structure...)
	errs = append(errs, comp.Types...)
	errs = append(errs, comp.References...)
	errs = append(errs, comp.Rules...)

	return newResult(errs, comp.Warnings)
}

// ValidateWarbandComprehensive runs every level and buckets findings per
// category.
func (s *Service) ValidateWarbandComprehensive(warband *entities.Warband) *ComprehensiveResult {
	if warband == nil {
		warband = &entities.Warband{}
	}

	result := &ComprehensiveResult{
		Structure:  s.validateStructure(warband),
		Types:      s.validateTypes(warband),
		References: s.validateReferences(warband),
		Rules:      s.validateRules(warband),
		Warnings:   s.warbandWarnings(warband),
	}
	result.Valid = result.ErrorCount() == 0

	return result
}

// ValidateWeirdo validates a single unit in the context of its warband:
// per-unit structure and type checks, weapon requirements, equipment cap,
// leader trait, the trooper point ceiling and proximity warnings. Field
// paths carry the weirdos[i] prefix when the unit is part of the warband.
func (s *Service) ValidateWeirdo(weirdo *entities.Weirdo, warband *entities.Warband) *Result {
	if warband == nil {
		warband = &entities.Warband{}
	}
	if weirdo == nil {
		weirdo = &entities.Weirdo{}
	}

	prefix := s.fieldPrefix(weirdo, warband)

	var errs []ValidationError
	errs = append(errs, s.weirdoStructure(weirdo, prefix)...)
	errs = append(errs, s.weirdoTypes(weirdo, prefix)...)
	errs = append(errs, s.ValidateWeaponRequirements(weirdo, prefix)...)
	errs = append(errs, s.ValidateEquipmentLimits(weirdo, warband.Ability, prefix)...)
	errs = append(errs, s.leaderTraitCheck(weirdo, prefix)...)
	errs = append(errs, s.ValidateWeirdoPointLimit(weirdo, warband, prefix)...)

	return newResult(errs, s.weirdoWarnings(weirdo, warband, prefix))
}

// Level 1: structure.

func (s *Service) validateStructure(warband *entities.Warband) []ValidationError {
	var errs []ValidationError

	if warband.Name == "" {
		errs = append(errs, s.errorAt("name", rulebook.CodeMissingWarbandName, CategoryStructure, nil,
			"Give the warband a name"))
	}

	if warband.Weirdos == nil {
		errs = append(errs, s.errorAt("weirdos", rulebook.CodeMissingWeirdosList, CategoryStructure, nil))
		return errs
	}

	for i, weirdo := range warband.Weirdos {
		if weirdo == nil {
			weirdo = &entities.Weirdo{}
		}
		errs = append(errs, s.weirdoStructure(weirdo, indexPrefix(i))...)
	}

	return errs
}

func (s *Service) weirdoStructure(weirdo *entities.Weirdo, prefix string) []ValidationError {
	var errs []ValidationError

	if weirdo.Name == "" {
		errs = append(errs, s.errorAt(prefix+"name", rulebook.CodeMissingWeirdoName, CategoryStructure, nil))
	}
	if !weirdo.Type.IsValid() {
		errs = append(errs, s.errorAt(prefix+"type", rulebook.CodeInvalidWeirdoType, CategoryStructure,
			map[string]any{"type": weirdo.Type}))
	}
	if weirdo.Attributes == nil {
		errs = append(errs, s.errorAt(prefix+"attributes", rulebook.CodeMissingAttributes, CategoryStructure, nil))
	}

	return errs
}

// Level 2: types.

func (s *Service) validateTypes(warband *entities.Warband) []ValidationError {
	var errs []ValidationError

	if !s.cfg.ValidPointLimit(warband.PointLimit) {
		errs = append(errs, s.errorAt("pointLimit", rulebook.CodeInvalidPointLimit, CategoryType,
			map[string]any{"pointLimit": warband.PointLimit}))
	}
	if !warband.Ability.IsValid() {
		errs = append(errs, s.errorAt("ability", rulebook.CodeInvalidAbility, CategoryType,
			map[string]any{"ability": warband.Ability}))
	}

	for i, weirdo := range warband.Weirdos {
		if weirdo == nil {
			continue
		}
		errs = append(errs, s.weirdoTypes(weirdo, indexPrefix(i))...)
	}

	return errs
}

func (s *Service) weirdoTypes(weirdo *entities.Weirdo, prefix string) []ValidationError {
	attrs := weirdo.Attributes
	if attrs == nil {
		// Missing block is a structural finding; nothing to type-check.
		return nil
	}

	var errs []ValidationError

	if attrs.Speed == nil {
		errs = append(errs, s.missingAttribute(prefix, entities.AttributeSpeed))
	} else if !attrs.SpeedValid() {
		// 0 is legal here: legacy rosters carry it and it prices as 0.
		errs = append(errs, s.invalidAttribute(prefix, entities.AttributeSpeed, *attrs.Speed))
	}

	dice := []struct {
		attr entities.Attribute
		tier entities.DiceTier
	}{
		{entities.AttributeDefense, attrs.Defense},
		{entities.AttributeProwess, attrs.Prowess},
		{entities.AttributeWillpower, attrs.Willpower},
	}
	for _, d := range dice {
		if d.tier == "" {
			errs = append(errs, s.missingAttribute(prefix, d.attr))
		} else if !d.tier.IsValid() {
			errs = append(errs, s.invalidAttribute(prefix, d.attr, d.tier))
		}
	}

	if attrs.Firepower == "" {
		errs = append(errs, s.missingAttribute(prefix, entities.AttributeFirepower))
	} else if !attrs.Firepower.IsValid() {
		errs = append(errs, s.invalidAttribute(prefix, entities.AttributeFirepower, attrs.Firepower))
	}

	return errs
}

func (s *Service) missingAttribute(prefix string, attr entities.Attribute) ValidationError {
	return s.errorAt(prefix+"attributes."+string(attr), rulebook.CodeMissingAttribute, CategoryType,
		map[string]any{"attribute": attr})
}

func (s *Service) invalidAttribute(prefix string, attr entities.Attribute, value any) ValidationError {
	return s.errorAt(prefix+"attributes."+string(attr), rulebook.CodeInvalidAttributeValue, CategoryType,
		map[string]any{"attribute": attr, "value": value})
}

// Level 3: game-data references.

func (s *Service) validateReferences(warband *entities.Warband) []ValidationError {
	var errs []ValidationError
	for i, weirdo := range warband.Weirdos {
		if weirdo == nil {
			continue
		}
		errs = append(errs, s.ValidateWeaponRequirements(weirdo, indexPrefix(i))...)
	}
	return errs
}

// ValidateWeaponRequirements checks the close-combat minimum and the
// reciprocal firepower/ranged-weapon agreement for one unit.
func (s *Service) ValidateWeaponRequirements(weirdo *entities.Weirdo, prefix string) []ValidationError {
	var errs []ValidationError

	if len(weirdo.CloseCombatWeapons) == 0 {
		errs = append(errs, s.errorAt(prefix+"closeCombatWeapons", rulebook.CodeMissingCloseCombatWeapon,
			CategoryReference, nil, "Add a close combat weapon (even Unarmed counts)"))
	}

	if attrs := weirdo.Attributes; attrs != nil {
		if attrs.Firepower.RequiresRangedWeapon() && len(weirdo.RangedWeapons) == 0 {
			errs = append(errs, s.errorAt(prefix+"attributes.firepower",
				rulebook.CodeFirepowerRequiresRangedWeapon, CategoryReference,
				map[string]any{"firepower": attrs.Firepower},
				"Add a ranged weapon or drop firepower to None"))
		}
		if len(weirdo.RangedWeapons) > 0 && attrs.Firepower == entities.FirepowerNone {
			errs = append(errs, s.errorAt(prefix+"attributes.firepower",
				rulebook.CodeRangedWeaponRequiresFirepower, CategoryReference, nil,
				"Raise firepower to 2d8 or remove the ranged weapons"))
		}
	}

	return errs
}

// Level 4: business rules.

func (s *Service) validateRules(warband *entities.Warband) []ValidationError {
	var errs []ValidationError

	for i, weirdo := range warband.Weirdos {
		if weirdo == nil {
			continue
		}
		prefix := indexPrefix(i)
		errs = append(errs, s.ValidateEquipmentLimits(weirdo, warband.Ability, prefix)...)
		errs = append(errs, s.leaderTraitCheck(weirdo, prefix)...)
		errs = append(errs, s.ValidateWeirdoPointLimit(weirdo, warband, prefix)...)
	}

	costs, priced := s.trueCosts(warband)

	// Special slot: at most one unit may price into the premium band.
	occupants := 0
	for i := range warband.Weirdos {
		if priced[i] && s.cfg.SpecialSlot.Contains(costs[i]) {
			occupants++
		}
	}
	if occupants > 1 {
		errs = append(errs, s.errorAt("weirdos", rulebook.CodeMultiple25PointWeirdos, CategoryBusiness,
			map[string]any{"min": s.cfg.SpecialSlot.Min, "max": s.cfg.SpecialSlot.Max},
			"Reduce all but one premium weirdo below 21 points"))
	}

	// Warband total, only when every unit could be priced and the limit is
	// a real one.
	if s.cfg.ValidPointLimit(warband.PointLimit) && allPriced(priced) {
		total := 0
		for _, c := range costs {
			total += c
		}
		if total > warband.PointLimit {
			errs = append(errs, s.errorAt("totalCost", rulebook.CodeWarbandPointLimitExceeded, CategoryBusiness,
				map[string]any{"totalCost": total, "pointLimit": warband.PointLimit}))
		}
	}

	return errs
}

// ValidateEquipmentLimits checks the equipment-count ceiling for one unit
// under the warband ability.
func (s *Service) ValidateEquipmentLimits(weirdo *entities.Weirdo, ability entities.Ability, prefix string) []ValidationError {
	if !weirdo.Type.IsValid() {
		return nil
	}

	limit := s.cfg.EquipmentCap(weirdo.Type, ability)
	count := weirdo.EquipmentCount()
	if count <= limit {
		return nil
	}

	suggestions := []string{fmt.Sprintf("Remove %d equipment item(s)", count-limit)}
	if ability != entities.AbilityCyborgs {
		suggestions = append(suggestions, "The Cyborgs ability raises the equipment cap")
	}

	return []ValidationError{s.errorAt(prefix+"equipment", rulebook.CodeEquipmentLimitExceeded, CategoryBusiness,
		map[string]any{"name": weirdo.Name, "count": count, "limit": limit}, suggestions...)}
}

// ValidateWeirdoPointLimit checks the trooper cost ceiling: 20 points, or 25
// when the trooper is the sole occupant of the special-slot band.
func (s *Service) ValidateWeirdoPointLimit(weirdo *entities.Weirdo, warband *entities.Warband, prefix string) []ValidationError {
	if weirdo.Type != entities.WeirdoTypeTrooper || !s.priceable(weirdo) {
		return nil
	}

	trueCost := s.engine.WeirdoCost(weirdo, warband.Ability)

	limit := s.cfg.TrooperPointLimit
	if s.cfg.SpecialSlot.Contains(trueCost) && !s.bandOccupiedByOther(weirdo, warband) {
		limit = s.cfg.TrooperPremiumLimit
	}

	if trueCost <= limit {
		return nil
	}

	return []ValidationError{s.errorAt(prefix+"totalCost", rulebook.CodeTrooperPointLimitExceeded, CategoryBusiness,
		map[string]any{"name": weirdo.Name, "cost": trueCost, "limit": limit},
		"Drop an attribute tier or remove items")}
}

func (s *Service) leaderTraitCheck(weirdo *entities.Weirdo, prefix string) []ValidationError {
	if weirdo.Type == entities.WeirdoTypeTrooper && weirdo.LeaderTrait != "" {
		return []ValidationError{s.errorAt(prefix+"leaderTrait", rulebook.CodeLeaderTraitOnTrooper,
			CategoryBusiness, nil, "Only the leader may take a trait")}
	}
	return nil
}

// Helpers.

// priceable reports whether a unit can go through the cost engine. Units
// that fail structure or type validation are not priced; the dependent
// business checks are skipped for them instead of tripping the engine's
// fail-fast panic.
func (s *Service) priceable(weirdo *entities.Weirdo) bool {
	return cost.Priceable(weirdo)
}

// trueCosts re-derives every unit's unclamped cost. priced[i] is false for
// units the engine cannot price.
func (s *Service) trueCosts(warband *entities.Warband) (costs []int, priced []bool) {
	costs = make([]int, len(warband.Weirdos))
	priced = make([]bool, len(warband.Weirdos))
	for i, weirdo := range warband.Weirdos {
		if s.priceable(weirdo) {
			costs[i] = s.engine.WeirdoCost(weirdo, warband.Ability)
			priced[i] = true
		}
	}
	return costs, priced
}

// bandOccupiedByOther reports whether any unit other than the given one
// prices into the special-slot band.
func (s *Service) bandOccupiedByOther(weirdo *entities.Weirdo, warband *entities.Warband) bool {
	for _, other := range warband.Weirdos {
		if other == nil || other == weirdo {
			continue
		}
		if s.priceable(other) && s.cfg.SpecialSlot.Contains(s.engine.WeirdoCost(other, warband.Ability)) {
			return true
		}
	}
	return false
}

func (s *Service) fieldPrefix(weirdo *entities.Weirdo, warband *entities.Warband) string {
	for i, candidate := range warband.Weirdos {
		if candidate == weirdo || (weirdo.ID != "" && candidate != nil && candidate.ID == weirdo.ID) {
			return indexPrefix(i)
		}
	}
	return ""
}

func indexPrefix(i int) string {
	return fmt.Sprintf("weirdos[%d].", i)
}

func allPriced(priced []bool) bool {
	for _, ok := range priced {
		if !ok {
			return false
		}
	}
	return true
}

func (s *Service) errorAt(field string, code rulebook.Code, category Category, params map[string]any, suggestions ...string) ValidationError {
	return ValidationError{
		Field:       field,
		Message:     rulebook.Message(code, params),
		Code:        code,
		Category:    category,
		Severity:    SeverityError,
		Suggestions: suggestions,
	}
}
