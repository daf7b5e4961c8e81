package validation

import (
	"github.com/weirdoworks/warband-bot/internal/entities"
	"github.com/weirdoworks/warband-bot/internal/rulebook"
)

// Proximity warnings. Soft findings computed per trooper, keyed off how
// close the unit's true cost sits to the trooper ceiling and the premium
// band, with the distance threshold taken from the injected config.
//
// Context rules:
//   - another unit already holds the special slot: this trooper is capped
//     at the baseline limit, warn when within the threshold of it;
//   - the trooper itself prices inside the band: warn when within the
//     threshold of the premium limit;
//   - the slot is still free: warn on both approaches at once, the
//     baseline-limit warning and the "premium weirdo slot available"
//     warning fire together.

func (s *Service) warbandWarnings(warband *entities.Warband) []ValidationError {
	var warnings []ValidationError
	for i, weirdo := range warband.Weirdos {
		if weirdo == nil {
			continue
		}
		warnings = append(warnings, s.weirdoWarnings(weirdo, warband, indexPrefix(i))...)
	}
	return warnings
}

func (s *Service) weirdoWarnings(weirdo *entities.Weirdo, warband *entities.Warband, prefix string) []ValidationError {
	if weirdo.Type != entities.WeirdoTypeTrooper || !s.priceable(weirdo) {
		return nil
	}

	trueCost := s.engine.WeirdoCost(weirdo, warband.Ability)
	baseLimit := s.cfg.TrooperPointLimit
	premiumLimit := s.cfg.TrooperPremiumLimit

	var warnings []ValidationError

	switch {
	case s.bandOccupiedByOther(weirdo, warband):
		if s.approaching(trueCost, baseLimit) {
			warnings = append(warnings, s.approachWarning(weirdo, prefix, rulebook.CodeApproachingTrooperLimit, trueCost, baseLimit))
		}
	case s.cfg.SpecialSlot.Contains(trueCost):
		if s.approaching(trueCost, premiumLimit) {
			warnings = append(warnings, s.approachWarning(weirdo, prefix, rulebook.CodeApproachingPremiumLimit, trueCost, premiumLimit))
		}
	default:
		if s.approaching(trueCost, baseLimit) {
			warnings = append(warnings,
				s.approachWarning(weirdo, prefix, rulebook.CodeApproachingTrooperLimit, trueCost, baseLimit),
				s.approachWarning(weirdo, prefix, rulebook.CodeApproachingPremiumLimit, trueCost, premiumLimit))
		}
	}

	return warnings
}

// approaching reports whether cost sits at or below the limit and strictly
// closer than the configured threshold (threshold 3 against limit 20 fires
// at 18, 19 and 20).
func (s *Service) approaching(cost, limit int) bool {
	return cost <= limit && limit-cost < s.cfg.WarningThreshold
}

func (s *Service) approachWarning(weirdo *entities.Weirdo, prefix string, code rulebook.Code, trueCost, limit int) ValidationError {
	return ValidationError{
		Field:    prefix + "totalCost",
		Message:  rulebook.Message(code, map[string]any{"name": weirdo.Name, "cost": trueCost, "threshold": s.cfg.WarningThreshold, "limit": limit}),
		Code:     code,
		Category: CategoryBusiness,
		Severity: SeverityWarning,
	}
}
