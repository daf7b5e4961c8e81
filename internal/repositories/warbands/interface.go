package warbands

//go:generate mockgen -destination=mock/mock.go -package=mockwarbands -source=interface.go

import (
	"context"
	"time"

	"github.com/weirdoworks/warband-bot/internal/entities"
)

// Repository defines the interface for warband persistence
type Repository interface {
	// Create stores a new warband
	Create(ctx context.Context, warband *entities.Warband) error

	// Get retrieves a warband by ID
	Get(ctx context.Context, id string) (*entities.Warband, error)

	// GetByOwner retrieves all warbands for a specific owner
	GetByOwner(ctx context.Context, ownerID string) ([]*entities.Warband, error)

	// Update updates an existing warband
	Update(ctx context.Context, warband *entities.Warband) error

	// Delete removes a warband
	Delete(ctx context.Context, id string) error
}

// TimeProvider supplies timestamps so tests can pin them
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider returns the wall clock in UTC
type RealTimeProvider struct{}

// Now returns the current UTC time
func (RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
