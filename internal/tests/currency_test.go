package tests

import (
	"context"
	"testing"

	"transverse/internal/repository"
	"transverse/internal/seed"
	"transverse/internal/service"
)

func TestCurrency_DefaultsToFirstCountry(t *testing.T) {
	repo := NewMockSessionRepository()
	currency := service.NewCurrencyService(repo, seed.Countries())

	if got := currency.Current().Code; got != "SA" {
		t.Errorf("expected default country SA, got %s", got)
	}
}

func TestChangeCountry_PersistsAndRehydrates(t *testing.T) {
	repo := NewMockSessionRepository()
	currency := service.NewCurrencyService(repo, seed.Countries())

	country, err := currency.ChangeCountry(context.Background(), "AE")
	if err != nil {
		t.Fatalf("change country failed: %v", err)
	}
	if country.Code != "AE" || currency.Current().Code != "AE" {
		t.Error("expected current country AE after change")
	}
	if stored, ok := repo.Stored("countryCode"); !ok || stored != "AE" {
		t.Errorf("expected countryCode AE persisted, got %q", stored)
	}

	// A fresh service over the same store picks the selection back up.
	restored := service.NewCurrencyService(repo, seed.Countries())
	if got := restored.Current().Code; got != "AE" {
		t.Errorf("expected restored country AE, got %s", got)
	}
}

func TestChangeCountry_UnknownCode(t *testing.T) {
	repo := NewMockSessionRepository()
	currency := service.NewCurrencyService(repo, seed.Countries())

	if _, err := currency.ChangeCountry(context.Background(), "XX"); err != repository.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if got := currency.Current().Code; got != "SA" {
		t.Errorf("expected current country unchanged, got %s", got)
	}
	if _, ok := repo.Stored("countryCode"); ok {
		t.Error("expected nothing persisted for an unknown code")
	}
}

func TestDetectCountry(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		want     string
	}{
		{"dubai", "Asia/Dubai", "AE"},
		{"cairo", "Africa/Cairo", "EG"},
		{"riyadh falls through to default", "Asia/Riyadh", "SA"},
		{"unknown zone", "Europe/Berlin", "SA"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewMockSessionRepository()
			currency := service.NewCurrencyService(repo, seed.Countries())

			country := currency.DetectCountry(context.Background(), tt.timezone)
			if country.Code != tt.want {
				t.Errorf("expected %s for %s, got %s", tt.want, tt.timezone, country.Code)
			}
			if stored, ok := repo.Stored("countryCode"); !ok || stored != tt.want {
				t.Errorf("expected detection persisted as %s, got %q", tt.want, stored)
			}
		})
	}
}

func TestFormatPrice(t *testing.T) {
	repo := NewMockSessionRepository()
	currency := service.NewCurrencyService(repo, seed.Countries())

	if got := currency.FormatPrice(40, "ar"); got != "ر.س 40" {
		t.Errorf("expected Arabic symbol, got %q", got)
	}
	if got := currency.FormatPrice(40, "en"); got != "SAR 40" {
		t.Errorf("expected Latin symbol, got %q", got)
	}

	if _, err := currency.ChangeCountry(context.Background(), "KW"); err != nil {
		t.Fatalf("change country failed: %v", err)
	}
	if got := currency.FormatPrice(12, "en"); got != "KWD 12" {
		t.Errorf("expected Kuwaiti symbol, got %q", got)
	}
}
