package tests

import (
	"testing"

	"transverse/internal/domain"
	"transverse/internal/seed"
	"transverse/internal/service"
)

func TestQuotePrice_ConcreteScenario(t *testing.T) {
	class := domain.VehicleClass{BasePrice: 10, PricePerKm: 2.5}

	if got := service.QuotePrice(class, 12); got != 40 {
		t.Errorf("expected price 40, got %d", got)
	}
}

func TestQuotePrice_AllClasses(t *testing.T) {
	testCases := []struct {
		classID  string
		distance float64
		want     int
	}{
		{"economy", 0, 10},
		{"economy", 12, 40},
		{"economy", 12.5, 41}, // 10 + 31.25 rounds to 41
		{"comfort", 10, 50},
		{"premium", 8.3, 67}, // 25 + 41.5 rounds to 67
		{"xl", 20, 100},
	}

	classes := make(map[string]domain.VehicleClass)
	for _, class := range seed.VehicleClasses() {
		classes[class.ID] = class
	}

	for _, tc := range testCases {
		t.Run(tc.classID, func(t *testing.T) {
			class, ok := classes[tc.classID]
			if !ok {
				t.Fatalf("catalog missing class %q", tc.classID)
			}
			if got := service.QuotePrice(class, tc.distance); got != tc.want {
				t.Errorf("QuotePrice(%s, %v) = %d, want %d", tc.classID, tc.distance, got, tc.want)
			}
		})
	}
}

func TestQuotePrice_IsPure(t *testing.T) {
	class := domain.VehicleClass{BasePrice: 15, PricePerKm: 3.5}

	first := service.QuotePrice(class, 7.7)
	for i := 0; i < 10; i++ {
		if got := service.QuotePrice(class, 7.7); got != first {
			t.Fatalf("expected stable result, got %d then %d", first, got)
		}
	}
}
