package warband

import (
	"fmt"
	"strings"

	"github.com/weirdoworks/warband-bot/internal/entities"
)

// Validator interface for input validation
type Validator interface {
	Validate() error
}

// ValidateInput validates any input that implements Validator
func ValidateInput(input Validator) error {
	if input == nil {
		return fmt.Errorf("input cannot be nil")
	}
	return input.Validate()
}

// Validate checks CreateWarbandInput for validity
func (i *CreateWarbandInput) Validate() error {
	if i == nil {
		return fmt.Errorf("CreateWarbandInput cannot be nil")
	}

	if strings.TrimSpace(i.OwnerID) == "" {
		return fmt.Errorf("owner ID is required")
	}

	if strings.TrimSpace(i.Name) == "" {
		return fmt.Errorf("warband name is required")
	}

	if len(i.Name) > 50 {
		return fmt.Errorf("warband name cannot exceed 50 characters")
	}

	if !i.Ability.IsValid() {
		return fmt.Errorf("unknown warband ability '%s'", i.Ability)
	}

	if !entities.ValidPointLimit(i.PointLimit) {
		return fmt.Errorf("point limit must be %d or %d, got %d",
			entities.PointLimitSkirmish, entities.PointLimitBattle, i.PointLimit)
	}

	return nil
}
