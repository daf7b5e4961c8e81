// Package warband orchestrates the warband lifecycle: persistence through
// the repository, cost recomputation through the cost engine, and rule
// checking through the validation service. Derived totals are refreshed on
// every write; stored totals are never trusted.
package warband

import (
	"context"

	"github.com/weirdoworks/warband-bot/internal/entities"
	wberr "github.com/weirdoworks/warband-bot/internal/errors"
	"github.com/weirdoworks/warband-bot/internal/repositories/warbands"
	"github.com/weirdoworks/warband-bot/internal/services/cost"
	"github.com/weirdoworks/warband-bot/internal/services/validation"
	"github.com/weirdoworks/warband-bot/internal/uuid"
)

// Repository is an alias for the warband repository interface
type Repository = warbands.Repository

// Service defines the warband service interface
type Service interface {
	// CreateWarband creates an empty warband for an owner
	CreateWarband(ctx context.Context, input *CreateWarbandInput) (*entities.Warband, error)

	// GetWarband retrieves a warband by ID with costs recomputed
	GetWarband(ctx context.Context, id string) (*entities.Warband, error)

	// ListWarbands lists all warbands for an owner
	ListWarbands(ctx context.Context, ownerID string) ([]*entities.Warband, error)

	// AddWeirdo appends a unit to a warband and persists the new totals
	AddWeirdo(ctx context.Context, warbandID string, weirdo *entities.Weirdo) (*entities.Warband, error)

	// UpdateWarband persists a modified warband with recomputed totals
	UpdateWarband(ctx context.Context, warband *entities.Warband) (*entities.Warband, error)

	// DeleteWarband removes a warband
	DeleteWarband(ctx context.Context, id string) error

	// ValidateWarband re-derives costs and runs the full rule check
	ValidateWarband(ctx context.Context, id string) (*validation.Result, error)
}

// CreateWarbandInput contains all data needed to create a warband
type CreateWarbandInput struct {
	OwnerID    string
	Name       string
	Ability    entities.Ability
	PointLimit int
}

// service implements the Service interface
type service struct {
	repository    Repository
	engine        *cost.Engine
	validator     *validation.Service
	uuidGenerator uuid.Generator
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository    Repository          // Required
	Engine        *cost.Engine        // Optional, default engine if nil
	Validator     *validation.Service // Optional, default ruleset if nil
	UUIDGenerator uuid.Generator      // Optional, google uuid if nil
}

// NewService creates a new warband service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		repository:    cfg.Repository,
		engine:        cfg.Engine,
		validator:     cfg.Validator,
		uuidGenerator: cfg.UUIDGenerator,
	}
	if svc.engine == nil {
		svc.engine = cost.NewEngine()
	}
	if svc.validator == nil {
		svc.validator = validation.NewService(&validation.ServiceConfig{Engine: svc.engine})
	}
	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return svc
}

// CreateWarband creates an empty warband
func (s *service) CreateWarband(ctx context.Context, input *CreateWarbandInput) (*entities.Warband, error) {
	if err := ValidateInput(input); err != nil {
		return nil, wberr.Wrap(err, "invalid warband creation input").
			WithMeta("operation", "CreateWarband")
	}

	warband := &entities.Warband{
		ID:         s.uuidGenerator.New(),
		OwnerID:    input.OwnerID,
		Name:       input.Name,
		Ability:    input.Ability,
		PointLimit: input.PointLimit,
		Weirdos:    []*entities.Weirdo{},
	}

	if err := s.repository.Create(ctx, warband); err != nil {
		return nil, wberr.Wrapf(err, "failed to create warband '%s'", input.Name)
	}

	return warband, nil
}

// GetWarband retrieves a warband and refreshes its derived totals
func (s *service) GetWarband(ctx context.Context, id string) (*entities.Warband, error) {
	warband, err := s.repository.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.refreshCosts(warband)
	return warband, nil
}

// ListWarbands lists an owner's warbands with refreshed totals
func (s *service) ListWarbands(ctx context.Context, ownerID string) ([]*entities.Warband, error) {
	warbandList, err := s.repository.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	for _, warband := range warbandList {
		s.refreshCosts(warband)
	}
	return warbandList, nil
}

// AddWeirdo appends a unit, assigns it an ID and persists recomputed totals
func (s *service) AddWeirdo(ctx context.Context, warbandID string, weirdo *entities.Weirdo) (*entities.Warband, error) {
	if weirdo == nil {
		return nil, wberr.InvalidArgument("weirdo cannot be nil")
	}

	warband, err := s.repository.Get(ctx, warbandID)
	if err != nil {
		return nil, err
	}

	if weirdo.ID == "" {
		weirdo.ID = s.uuidGenerator.New()
	}
	warband.Weirdos = append(warband.Weirdos, weirdo)

	s.refreshCosts(warband)

	if err := s.repository.Update(ctx, warband); err != nil {
		return nil, wberr.Wrapf(err, "failed to add weirdo to warband '%s'", warbandID)
	}

	return warband, nil
}

// UpdateWarband persists a modified warband with recomputed totals
func (s *service) UpdateWarband(ctx context.Context, warband *entities.Warband) (*entities.Warband, error) {
	if warband == nil {
		return nil, wberr.InvalidArgument("warband cannot be nil")
	}

	s.refreshCosts(warband)

	if err := s.repository.Update(ctx, warband); err != nil {
		return nil, wberr.Wrapf(err, "failed to update warband '%s'", warband.ID)
	}

	return warband, nil
}

// DeleteWarband removes a warband
func (s *service) DeleteWarband(ctx context.Context, id string) error {
	return s.repository.Delete(ctx, id)
}

// ValidateWarband re-derives every cost and runs all four validation levels
func (s *service) ValidateWarband(ctx context.Context, id string) (*validation.Result, error) {
	warband, err := s.repository.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.refreshCosts(warband)
	return s.validator.ValidateWarband(warband), nil
}

// refreshCosts recomputes every derived total from current contents. Units
// the engine cannot price (malformed attribute blocks caught later by
// validation) keep a zero total and are left out of the warband sum.
func (s *service) refreshCosts(warband *entities.Warband) {
	total := 0
	for _, weirdo := range warband.Weirdos {
		if weirdo == nil || !cost.Priceable(weirdo) {
			continue
		}
		weirdo.TotalCost = s.engine.WeirdoCost(weirdo, warband.Ability)
		total += weirdo.TotalCost
	}
	warband.TotalCost = total
}
