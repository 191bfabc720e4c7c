package domain

// VehicleClass is a static catalog entry describing a service tier
// and its pricing coefficients. Catalog entries are read-only.
type VehicleClass struct {
	ID            string
	Name          string
	NameEn        string
	Description   string
	DescriptionEn string
	BasePrice     float64
	PricePerKm    float64
	Capacity      int
}

// PaymentMethod is a static catalog entry for a way to pay.
type PaymentMethod struct {
	ID            string
	Name          string
	NameEn        string
	Description   string
	DescriptionEn string
}
