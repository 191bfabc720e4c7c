package tests

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"transverse/internal/domain"
	"transverse/internal/repository"
	"transverse/internal/seed"
	"transverse/internal/service"
)

var (
	testPickup = domain.Location{
		Lat: 24.7136, Lng: 46.6753,
		Address: "شارع الملك فهد، الرياض", AddressEn: "King Fahd Road, Riyadh",
	}
	testDropoff = domain.Location{
		Lat: 24.7736, Lng: 46.7353,
		Address: "العليا، الرياض", AddressEn: "Al Olaya, Riyadh",
	}
)

func newRideService(history repository.RideHistoryRepository, delay time.Duration) *service.RideService {
	return service.NewRideService(history, seed.VehicleClasses(), seed.PaymentMethods(), service.RideOptions{
		AcceptDelay: delay,
		Rand:        rand.New(rand.NewSource(1)),
	})
}

func requestTestRide(t *testing.T, rides *service.RideService) *domain.Ride {
	t.Helper()
	ride, err := rides.RequestRide(context.Background(), service.RequestRideInput{
		RiderID:        "user1",
		Pickup:         testPickup,
		Dropoff:        testDropoff,
		VehicleClassID: "economy",
	})
	if err != nil {
		t.Fatalf("request ride failed: %v", err)
	}
	return ride
}

func TestRequestRide_RequiresLocations(t *testing.T) {
	rides := newRideService(NewMockRideHistoryRepository(nil), time.Hour)

	testCases := []struct {
		name    string
		pickup  domain.Location
		dropoff domain.Location
	}{
		{"missing pickup", domain.Location{}, testDropoff},
		{"missing dropoff", testPickup, domain.Location{}},
		{"missing both", domain.Location{}, domain.Location{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := rides.RequestRide(context.Background(), service.RequestRideInput{
				RiderID:        "user1",
				Pickup:         tc.pickup,
				Dropoff:        tc.dropoff,
				VehicleClassID: "economy",
			})
			if err != service.ErrMissingLocation {
				t.Errorf("expected ErrMissingLocation, got %v", err)
			}
		})
	}
}

func TestRequestRide_UnknownCatalogEntries(t *testing.T) {
	rides := newRideService(NewMockRideHistoryRepository(nil), time.Hour)

	_, err := rides.RequestRide(context.Background(), service.RequestRideInput{
		RiderID:        "user1",
		Pickup:         testPickup,
		Dropoff:        testDropoff,
		VehicleClassID: "hoverboard",
	})
	if err != repository.ErrNotFound {
		t.Errorf("expected ErrNotFound for unknown vehicle class, got %v", err)
	}

	_, err = rides.RequestRide(context.Background(), service.RequestRideInput{
		RiderID:         "user1",
		Pickup:          testPickup,
		Dropoff:         testDropoff,
		VehicleClassID:  "economy",
		PaymentMethodID: "barter",
	})
	if err != repository.ErrNotFound {
		t.Errorf("expected ErrNotFound for unknown payment method, got %v", err)
	}
}

func TestRequestRide_DefaultsAndPricing(t *testing.T) {
	rides := newRideService(NewMockRideHistoryRepository(nil), time.Hour)

	ride := requestTestRide(t, rides)

	if ride.Status != domain.RideStatusSearching {
		t.Errorf("expected status searching, got %s", ride.Status)
	}
	if ride.PaymentMethodID != "cash" {
		t.Errorf("expected payment method to default to cash, got %s", ride.PaymentMethodID)
	}
	if ride.DistanceKm < 5 || ride.DistanceKm >= 25 {
		t.Errorf("expected distance in [5,25), got %v", ride.DistanceKm)
	}

	economy, err := rides.VehicleClassByID("economy")
	if err != nil {
		t.Fatalf("catalog lookup failed: %v", err)
	}
	if want := service.QuotePrice(economy, ride.DistanceKm); ride.Price != want {
		t.Errorf("expected price %d for distance %v, got %d", want, ride.DistanceKm, ride.Price)
	}
}

func TestRequestRide_DeferredAcceptance(t *testing.T) {
	rides := newRideService(NewMockRideHistoryRepository(nil), 20*time.Millisecond)

	ride := requestTestRide(t, rides)

	if current := rides.CurrentRide(); current == nil || current.Status != domain.RideStatusSearching {
		t.Fatal("expected ride to start in searching")
	}

	time.Sleep(80 * time.Millisecond)

	current := rides.CurrentRide()
	if current == nil {
		t.Fatal("expected an active ride")
	}
	if current.ID != ride.ID {
		t.Fatalf("active ride changed unexpectedly")
	}
	if current.Status != domain.RideStatusAccepted {
		t.Errorf("expected status accepted after delay, got %s", current.Status)
	}
}

func TestCancelRide_BeforeDelayBlocksTransition(t *testing.T) {
	rides := newRideService(NewMockRideHistoryRepository(nil), 20*time.Millisecond)

	requestTestRide(t, rides)
	rides.CancelRide()

	if rides.CurrentRide() != nil {
		t.Fatal("expected active slot cleared immediately")
	}

	// The deferred transition must not fire after cancellation.
	time.Sleep(80 * time.Millisecond)
	if rides.CurrentRide() != nil {
		t.Error("expected cancelled ride to stay gone after the original delay")
	}
}

func TestCancelRide_WithNoActiveRideIsNoop(t *testing.T) {
	rides := newRideService(NewMockRideHistoryRepository(nil), time.Hour)
	rides.CancelRide()
	if rides.CurrentRide() != nil {
		t.Error("expected no active ride")
	}
}

func TestRequestRide_ReplacementInvalidatesOldTimer(t *testing.T) {
	rides := newRideService(NewMockRideHistoryRepository(nil), 20*time.Millisecond)

	first := requestTestRide(t, rides)
	second := requestTestRide(t, rides)

	if first.ID == second.ID {
		t.Fatal("expected distinct ride ids")
	}

	time.Sleep(80 * time.Millisecond)

	current := rides.CurrentRide()
	if current == nil || current.ID != second.ID {
		t.Fatal("expected the replacement ride to own the slot")
	}
	if current.Status != domain.RideStatusAccepted {
		t.Errorf("expected replacement ride accepted, got %s", current.Status)
	}
}

func TestCompleteRide_ArchivesAndClearsSlot(t *testing.T) {
	history := NewMockRideHistoryRepository(seed.Rides())
	rides := newRideService(history, time.Hour)

	before := history.Count()
	ride := requestTestRide(t, rides)

	completed, err := rides.CompleteRide(context.Background(), 5)
	if err != nil {
		t.Fatalf("complete ride failed: %v", err)
	}

	if completed.Status != domain.RideStatusCompleted {
		t.Errorf("expected status completed, got %s", completed.Status)
	}
	if completed.Rating != 5 {
		t.Errorf("expected rating 5, got %d", completed.Rating)
	}
	if completed.CompletedAt.IsZero() {
		t.Error("expected completion timestamp")
	}

	if history.Count() != before+1 {
		t.Errorf("expected exactly one new history entry, got %d", history.Count()-before)
	}

	archived, err := rides.History(context.Background())
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if archived[0].ID != ride.ID {
		t.Error("expected completed ride at the front of history")
	}

	if rides.CurrentRide() != nil {
		t.Error("expected active slot cleared after completion")
	}
}

func TestCompleteRide_WithNoActiveRide(t *testing.T) {
	history := NewMockRideHistoryRepository(nil)
	rides := newRideService(history, time.Hour)

	_, err := rides.CompleteRide(context.Background(), 4)
	if err != service.ErrNoActiveRide {
		t.Fatalf("expected ErrNoActiveRide, got %v", err)
	}

	// Completing twice must not duplicate history.
	requestTestRide(t, rides)
	if _, err := rides.CompleteRide(context.Background(), 4); err != nil {
		t.Fatalf("first completion failed: %v", err)
	}
	if _, err := rides.CompleteRide(context.Background(), 4); err != service.ErrNoActiveRide {
		t.Errorf("expected ErrNoActiveRide on second completion, got %v", err)
	}
	if history.Count() != 1 {
		t.Errorf("expected a single history entry, got %d", history.Count())
	}
}

func TestCompleteRide_ArchiveFailureKeepsSlot(t *testing.T) {
	history := NewMockRideHistoryRepository(nil)
	history.SaveError = errors.New("archive unavailable")
	rides := newRideService(history, time.Hour)

	requestTestRide(t, rides)

	if _, err := rides.CompleteRide(context.Background(), 3); err == nil {
		t.Fatal("expected archive error to surface")
	}
	if rides.CurrentRide() == nil {
		t.Error("expected the ride to remain active when archiving fails")
	}
}

func TestHistory_SeededOrderPreserved(t *testing.T) {
	history := NewMockRideHistoryRepository(seed.Rides())
	rides := newRideService(history, time.Hour)

	archived, err := rides.History(context.Background())
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(archived) != 3 {
		t.Fatalf("expected 3 seeded rides, got %d", len(archived))
	}
	if archived[0].ID != "ride1" || archived[2].ID != "ride3" {
		t.Error("expected seeded history order to be preserved")
	}
}
