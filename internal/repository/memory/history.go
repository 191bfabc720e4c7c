package memory

import (
	"context"
	"sync"

	"transverse/internal/domain"
	"transverse/internal/repository"
)

// RideHistoryRepository is an in-memory implementation of
// repository.RideHistoryRepository, optionally seeded with demo rides.
type RideHistoryRepository struct {
	mu    sync.RWMutex
	rides []*domain.Ride
}

// NewRideHistoryRepository creates a history repository seeded with the
// given rides, most recent first.
func NewRideHistoryRepository(seed []*domain.Ride) *RideHistoryRepository {
	rides := make([]*domain.Ride, len(seed))
	copy(rides, seed)
	return &RideHistoryRepository{rides: rides}
}

// Save archives a completed ride at the front of the history.
func (r *RideHistoryRepository) Save(ctx context.Context, ride *domain.Ride) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rideCopy := *ride
	r.rides = append([]*domain.Ride{&rideCopy}, r.rides...)
	return nil
}

// List retrieves archived rides, most recent first.
func (r *RideHistoryRepository) List(ctx context.Context) ([]*domain.Ride, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*domain.Ride, 0, len(r.rides))
	for _, ride := range r.rides {
		rideCopy := *ride
		result = append(result, &rideCopy)
	}
	return result, nil
}

// Ensure interfaces are satisfied.
var (
	_ repository.SessionRepository     = (*SessionRepository)(nil)
	_ repository.RideHistoryRepository = (*RideHistoryRepository)(nil)
)
