package domain

// Session represents the active authenticated session for a client.
// IsAdmin is true if and only if UserType is RoleAdmin.
type Session struct {
	User          *User
	Authenticated bool
	UserType      Role
	IsAdmin       bool
}

// Profile is the profile editor buffer persisted under the userProfile key.
// It is a transient edit surface, separate from the authoritative User record.
type Profile struct {
	Name     string `json:"name"`
	NameEn   string `json:"nameEn"`
	UniqueID string `json:"uniqueId"`
	Phone    string `json:"phone"`
	Bio      string `json:"bio"`
	Photo    string `json:"photo"`
}
