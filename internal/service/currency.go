package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"transverse/internal/domain"
	"transverse/internal/repository"
)

// Durable storage key for the selected country.
const keyCountryCode = "countryCode"

// timezoneCountry maps a timezone city fragment to a country code for
// best-effort detection.
var timezoneCountry = map[string]string{
	"Dubai":      "AE",
	"Kuwait":     "KW",
	"Qatar":      "QA",
	"Bahrain":    "BH",
	"Muscat":     "OM",
	"Amman":      "JO",
	"Cairo":      "EG",
	"Beirut":     "LB",
	"Casablanca": "MA",
	"Algiers":    "DZ",
	"Tunis":      "TN",
}

// CurrencyService owns the selected country and formats prices in its
// currency. The selection persists under the countryCode key; with nothing
// stored, the first catalog entry is the default.
type CurrencyService struct {
	repo      repository.SessionRepository
	countries []domain.Country
	byCode    map[string]domain.Country

	mu      sync.RWMutex
	current domain.Country
}

// NewCurrencyService creates a CurrencyService over the country catalog and
// rehydrates any stored selection. An unknown stored code falls back to the
// default.
func NewCurrencyService(repo repository.SessionRepository, countries []domain.Country) *CurrencyService {
	byCode := make(map[string]domain.Country, len(countries))
	for _, country := range countries {
		byCode[country.Code] = country
	}

	s := &CurrencyService{
		repo:      repo,
		countries: countries,
		byCode:    byCode,
		current:   countries[0],
	}

	if code, err := repo.Get(context.Background(), keyCountryCode); err == nil {
		if country, ok := byCode[code]; ok {
			s.current = country
		}
	}
	return s
}

// Countries returns the country catalog.
func (s *CurrencyService) Countries() []domain.Country {
	return s.countries
}

// Current returns the selected country.
func (s *CurrencyService) Current() domain.Country {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// ChangeCountry selects a country by code and persists the choice.
// Unknown codes fail with repository.ErrNotFound.
func (s *CurrencyService) ChangeCountry(ctx context.Context, code string) (domain.Country, error) {
	country, ok := s.byCode[code]
	if !ok {
		return domain.Country{}, repository.ErrNotFound
	}

	s.mu.Lock()
	s.current = country
	s.mu.Unlock()

	s.persistCode(ctx, code)
	return country, nil
}

// DetectCountry picks the country whose timezone city appears in the given
// zone name, defaulting to the catalog's first entry, and persists the
// result. A detected selection behaves exactly like an explicit one.
func (s *CurrencyService) DetectCountry(ctx context.Context, timezone string) domain.Country {
	detected := s.countries[0]
	for city, code := range timezoneCountry {
		if strings.Contains(timezone, city) {
			if country, ok := s.byCode[code]; ok {
				detected = country
			}
			break
		}
	}

	s.mu.Lock()
	s.current = detected
	s.mu.Unlock()

	s.persistCode(ctx, detected.Code)
	return detected
}

// FormatPrice renders a price with the selected country's currency mark.
// lang selects the Arabic or Latin symbol; anything but "en" means Arabic.
func (s *CurrencyService) FormatPrice(price int, lang string) string {
	s.mu.RLock()
	country := s.current
	s.mu.RUnlock()

	symbol := country.Symbol
	if lang == "en" {
		symbol = country.SymbolEn
	}
	return fmt.Sprintf("%s %d", symbol, price)
}

func (s *CurrencyService) persistCode(ctx context.Context, code string) {
	if err := s.repo.Set(ctx, keyCountryCode, code); err != nil {
		log.Printf("currency: persist %s: %v", keyCountryCode, err)
	}
}
