package warbands

import (
	"context"
	"sync"

	"github.com/weirdoworks/warband-bot/internal/entities"
	wberr "github.com/weirdoworks/warband-bot/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the warband
// repository. Useful for testing and development.
type InMemoryRepository struct {
	mu           sync.RWMutex
	warbands     map[string]*entities.Warband
	timeProvider TimeProvider
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		warbands:     make(map[string]*entities.Warband),
		timeProvider: RealTimeProvider{},
	}
}

// Create stores a new warband
func (r *InMemoryRepository) Create(ctx context.Context, warband *entities.Warband) error {
	if warband == nil {
		return wberr.InvalidArgument("warband cannot be nil")
	}
	if warband.ID == "" {
		return wberr.InvalidArgument("warband ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.warbands[warband.ID]; exists {
		return wberr.AlreadyExistsf("warband with ID '%s' already exists", warband.ID).
			WithMeta("warband_id", warband.ID)
	}

	now := r.timeProvider.Now()
	warband.CreatedAt = now
	warband.UpdatedAt = now

	// Store a copy to avoid external modifications
	wbCopy := *warband
	r.warbands[warband.ID] = &wbCopy

	return nil
}

// Get retrieves a warband by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*entities.Warband, error) {
	if id == "" {
		return nil, wberr.InvalidArgument("warband ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	warband, exists := r.warbands[id]
	if !exists {
		return nil, wberr.NotFoundf("warband with ID '%s' not found", id).
			WithMeta("warband_id", id)
	}

	wbCopy := *warband
	return &wbCopy, nil
}

// GetByOwner retrieves all warbands for a specific owner
func (r *InMemoryRepository) GetByOwner(ctx context.Context, ownerID string) ([]*entities.Warband, error) {
	if ownerID == "" {
		return nil, wberr.InvalidArgument("owner ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*entities.Warband
	for _, warband := range r.warbands {
		if warband.OwnerID == ownerID {
			wbCopy := *warband
			result = append(result, &wbCopy)
		}
	}

	return result, nil
}

// Update updates an existing warband
func (r *InMemoryRepository) Update(ctx context.Context, warband *entities.Warband) error {
	if warband == nil {
		return wberr.InvalidArgument("warband cannot be nil")
	}
	if warband.ID == "" {
		return wberr.InvalidArgument("warband ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.warbands[warband.ID]; !exists {
		return wberr.NotFoundf("warband with ID '%s' not found", warband.ID).
			WithMeta("warband_id", warband.ID)
	}

	warband.UpdatedAt = r.timeProvider.Now()

	wbCopy := *warband
	r.warbands[warband.ID] = &wbCopy

	return nil
}

// Delete removes a warband
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return wberr.InvalidArgument("warband ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.warbands[id]; !exists {
		return wberr.NotFoundf("warband with ID '%s' not found", id).
			WithMeta("warband_id", id)
	}

	delete(r.warbands, id)
	return nil
}
