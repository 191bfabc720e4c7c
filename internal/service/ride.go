package service

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"transverse/internal/domain"
	"transverse/internal/repository"
)

const (
	// defaultAcceptDelay is how long the simulated driver search runs
	// before the ride flips to accepted.
	defaultAcceptDelay = 3 * time.Second

	// Mock distance range for a requested ride, in kilometers.
	minDistanceKm = 5.0
	maxDistanceKm = 25.0
)

// QuotePrice computes the fare for a vehicle class over a distance.
// Pure function: round(basePrice + pricePerKm * distanceKm).
func QuotePrice(class domain.VehicleClass, distanceKm float64) int {
	return int(math.Round(class.BasePrice + class.PricePerKm*distanceKm))
}

// RideOptions configures a RideService. Zero values select defaults.
type RideOptions struct {
	AcceptDelay time.Duration
	Rand        *rand.Rand
	Now         func() time.Time
}

// RideService owns the active ride slot and the ride history. The only
// asynchronous behavior is the deferred searching-to-accepted transition,
// which is cancelable: it re-checks the active ride id at fire time so a
// cancelled or replaced ride is never resurrected.
type RideService struct {
	history     repository.RideHistoryRepository
	classes     []domain.VehicleClass
	classByID   map[string]domain.VehicleClass
	payments    []domain.PaymentMethod
	paymentByID map[string]domain.PaymentMethod
	acceptDelay time.Duration
	now         func() time.Time

	mu      sync.Mutex
	rng     *rand.Rand
	current *domain.Ride
	timer   *time.Timer
}

// NewRideService creates a RideService over the given catalogs and history.
func NewRideService(
	history repository.RideHistoryRepository,
	classes []domain.VehicleClass,
	payments []domain.PaymentMethod,
	opts RideOptions,
) *RideService {
	if opts.AcceptDelay == 0 {
		opts.AcceptDelay = defaultAcceptDelay
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	classByID := make(map[string]domain.VehicleClass, len(classes))
	for _, class := range classes {
		classByID[class.ID] = class
	}
	paymentByID := make(map[string]domain.PaymentMethod, len(payments))
	for _, method := range payments {
		paymentByID[method.ID] = method
	}

	return &RideService{
		history:     history,
		classes:     classes,
		classByID:   classByID,
		payments:    payments,
		paymentByID: paymentByID,
		acceptDelay: opts.AcceptDelay,
		now:         opts.Now,
		rng:         opts.Rand,
	}
}

// VehicleClasses returns the vehicle class catalog.
func (s *RideService) VehicleClasses() []domain.VehicleClass {
	return s.classes
}

// PaymentMethods returns the payment method catalog.
func (s *RideService) PaymentMethods() []domain.PaymentMethod {
	return s.payments
}

// VehicleClassByID looks up a catalog entry.
func (s *RideService) VehicleClassByID(id string) (domain.VehicleClass, error) {
	class, ok := s.classByID[id]
	if !ok {
		return domain.VehicleClass{}, repository.ErrNotFound
	}
	return class, nil
}

// RequestRideInput contains the parameters for requesting a ride.
type RequestRideInput struct {
	RiderID         string
	Pickup          domain.Location
	Dropoff         domain.Location
	VehicleClassID  string
	PaymentMethodID string
}

// RequestRide creates a ride in the searching state and schedules the
// deferred acceptance transition. An existing active ride is replaced and
// its pending transition cancelled.
func (s *RideService) RequestRide(ctx context.Context, input RequestRideInput) (*domain.Ride, error) {
	if input.Pickup.IsZero() || input.Dropoff.IsZero() {
		return nil, ErrMissingLocation
	}

	class, ok := s.classByID[input.VehicleClassID]
	if !ok {
		return nil, repository.ErrNotFound
	}

	paymentID := input.PaymentMethodID
	if paymentID == "" {
		paymentID = "cash"
	}
	if _, ok := s.paymentByID[paymentID]; !ok {
		return nil, repository.ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	distance := minDistanceKm + s.rng.Float64()*(maxDistanceKm-minDistanceKm)

	ride := &domain.Ride{
		ID:              uuid.New().String(),
		RiderID:         input.RiderID,
		Pickup:          input.Pickup,
		Dropoff:         input.Dropoff,
		VehicleClassID:  class.ID,
		PaymentMethodID: paymentID,
		Status:          domain.RideStatusSearching,
		Price:           QuotePrice(class, distance),
		DistanceKm:      distance,
		RequestedAt:     s.now(),
	}

	s.stopTimerLocked()
	s.current = ride
	rideID := ride.ID
	s.timer = time.AfterFunc(s.acceptDelay, func() {
		s.accept(rideID)
	})

	rideCopy := *ride
	return &rideCopy, nil
}

// accept advances the ride to accepted. The id captured at scheduling time
// must still match the active ride in the searching state, otherwise the
// transition is a no-op.
func (s *RideService) accept(rideID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil || s.current.ID != rideID {
		return
	}
	if s.current.Status != domain.RideStatusSearching {
		return
	}
	s.current.Status = domain.RideStatusAccepted
}

// CurrentRide returns a snapshot of the active ride, or nil when idle.
func (s *RideService) CurrentRide() *domain.Ride {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	rideCopy := *s.current
	return &rideCopy
}

// CancelRide clears the active ride slot unconditionally and invalidates
// any pending acceptance transition.
func (s *RideService) CancelRide() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTimerLocked()
	s.current = nil
}

// CompleteRide archives the active ride with the given rating and clears
// the slot. Fails with ErrNoActiveRide when idle.
func (s *RideService) CompleteRide(ctx context.Context, rating int) (*domain.Ride, error) {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return nil, ErrNoActiveRide
	}

	completed := *s.current
	completed.Status = domain.RideStatusCompleted
	completed.CompletedAt = s.now()
	completed.Rating = rating
	s.mu.Unlock()

	if err := s.history.Save(ctx, &completed); err != nil {
		return nil, err
	}

	s.mu.Lock()
	// The slot may only be cleared if it still holds the completed ride.
	if s.current != nil && s.current.ID == completed.ID {
		s.stopTimerLocked()
		s.current = nil
	}
	s.mu.Unlock()

	rideCopy := completed
	return &rideCopy, nil
}

// History retrieves archived rides, most recent first.
func (s *RideService) History(ctx context.Context) ([]*domain.Ride, error) {
	return s.history.List(ctx)
}

// stopTimerLocked cancels the pending acceptance timer. Callers must hold mu.
// Stopping is best effort: a timer that already fired is blocked by the
// ride-id check in accept.
func (s *RideService) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
