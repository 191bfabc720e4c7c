package domain

import "time"

// RideStatus represents the current status of a ride.
type RideStatus string

const (
	RideStatusSearching RideStatus = "searching"
	RideStatusAccepted  RideStatus = "accepted"
	RideStatusCompleted RideStatus = "completed"
)

// Location is an address with coordinates.
type Location struct {
	Lat       float64
	Lng       float64
	Address   string // Arabic address
	AddressEn string // English address
}

// IsZero reports whether the location is unset.
func (l Location) IsZero() bool {
	return l == Location{}
}

// Ride represents a ride request in the system.
type Ride struct {
	ID              string
	RiderID         string
	Pickup          Location
	Dropoff         Location
	VehicleClassID  string
	PaymentMethodID string
	Status          RideStatus
	Price           int
	DistanceKm      float64
	Rating          int
	RequestedAt     time.Time
	CompletedAt     time.Time
}
