package domain

// Role represents the role a session acts under.
type Role string

const (
	RoleRider  Role = "rider"
	RoleDriver Role = "driver"
	RoleAdmin  Role = "admin"
)

// User represents an account identity in the system.
// Display names carry both Arabic and English variants.
type User struct {
	ID         string
	Name       string // Arabic display name
	NameEn     string // English display name
	Email      string
	Phone      string
	Photo      string
	Role       Role
	Points     int
	TotalRides int
	Rating     float64
}
