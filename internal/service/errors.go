package service

import "errors"

var (
	// ErrMissingInput is returned when a required field is empty.
	ErrMissingInput = errors.New("missing required input")

	// ErrInvalidCredentials is returned when the reserved admin identifier
	// is supplied with the wrong secret.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNoActiveSession is returned when an operation requires a logged-in session.
	ErrNoActiveSession = errors.New("no active session")

	// ErrMissingLocation is returned when a ride request lacks pickup or dropoff.
	ErrMissingLocation = errors.New("pickup and dropoff locations are required")

	// ErrNoActiveRide is returned when an operation requires an active ride.
	ErrNoActiveRide = errors.New("no active ride")

	// ErrReservedUsername is returned when a profile id uses a reserved prefix.
	ErrReservedUsername = errors.New("username is not available")

	// ErrEmptyCart is returned when an order is placed with nothing in the cart.
	ErrEmptyCart = errors.New("cart is empty")
)
