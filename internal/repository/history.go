package repository

import (
	"context"

	"transverse/internal/domain"
)

// RideHistoryRepository defines the persistence operations for completed rides.
type RideHistoryRepository interface {
	// Save archives a completed ride at the front of the history.
	Save(ctx context.Context, ride *domain.Ride) error

	// List retrieves archived rides, most recent first.
	List(ctx context.Context) ([]*domain.Ride, error)
}
