package postgres

import (
	"context"
	"database/sql"

	"transverse/internal/domain"
	"transverse/internal/repository"
)

// RideHistoryRepository is a PostgreSQL implementation of
// repository.RideHistoryRepository.
type RideHistoryRepository struct {
	q Querier
}

// NewRideHistoryRepository creates a new PostgreSQL ride history repository.
func NewRideHistoryRepository(db *sql.DB) *RideHistoryRepository {
	return &RideHistoryRepository{q: db}
}

// NewRideHistoryRepositoryWithTx creates a ride history repository using a transaction.
func NewRideHistoryRepositoryWithTx(tx *sql.Tx) *RideHistoryRepository {
	return &RideHistoryRepository{q: tx}
}

// Save archives a completed ride.
func (r *RideHistoryRepository) Save(ctx context.Context, ride *domain.Ride) error {
	query := `
		INSERT INTO ride_history (id, rider_id, pickup_lat, pickup_lng, pickup_address, pickup_address_en, dropoff_lat, dropoff_lng, dropoff_address, dropoff_address_en, vehicle_class, payment_method, status, price, distance_km, rating, requested_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	var rating sql.NullInt32
	if ride.Rating != 0 {
		rating = sql.NullInt32{Int32: int32(ride.Rating), Valid: true}
	}

	_, err := r.q.ExecContext(ctx, query,
		ride.ID,
		ride.RiderID,
		ride.Pickup.Lat,
		ride.Pickup.Lng,
		ride.Pickup.Address,
		ride.Pickup.AddressEn,
		ride.Dropoff.Lat,
		ride.Dropoff.Lng,
		ride.Dropoff.Address,
		ride.Dropoff.AddressEn,
		ride.VehicleClassID,
		ride.PaymentMethodID,
		ride.Status,
		ride.Price,
		ride.DistanceKm,
		rating,
		ride.RequestedAt,
		ride.CompletedAt,
	)

	return err
}

// List retrieves archived rides, most recent first.
func (r *RideHistoryRepository) List(ctx context.Context) ([]*domain.Ride, error) {
	query := `
		SELECT id, rider_id, pickup_lat, pickup_lng, pickup_address, pickup_address_en, dropoff_lat, dropoff_lng, dropoff_address, dropoff_address_en, vehicle_class, payment_method, status, price, distance_km, rating, requested_at, completed_at
		FROM ride_history
		ORDER BY completed_at DESC
	`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rides []*domain.Ride
	for rows.Next() {
		var ride domain.Ride
		var rating sql.NullInt32

		err := rows.Scan(
			&ride.ID,
			&ride.RiderID,
			&ride.Pickup.Lat,
			&ride.Pickup.Lng,
			&ride.Pickup.Address,
			&ride.Pickup.AddressEn,
			&ride.Dropoff.Lat,
			&ride.Dropoff.Lng,
			&ride.Dropoff.Address,
			&ride.Dropoff.AddressEn,
			&ride.VehicleClassID,
			&ride.PaymentMethodID,
			&ride.Status,
			&ride.Price,
			&ride.DistanceKm,
			&rating,
			&ride.RequestedAt,
			&ride.CompletedAt,
		)
		if err != nil {
			return nil, err
		}

		if rating.Valid {
			ride.Rating = int(rating.Int32)
		}

		rides = append(rides, &ride)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rides, nil
}

// Ensure interfaces are satisfied.
var _ repository.RideHistoryRepository = (*RideHistoryRepository)(nil)
