package domain

import "time"

const (
	RoleAdmin  = "ADMIN"
	RoleClient = "CLIENT"
)

// ValidRole reports whether s is one of the two portal roles.
func ValidRole(s string) bool {
	return s == RoleAdmin || s == RoleClient
}

// Profile models an authenticated actor in the portal. Exactly one profile
// row exists per auth user id; the id doubles as the session subject.
type Profile struct {
	ID           string    `json:"id" bson:"_id"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Role         string    `json:"role" bson:"role"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

// Identity is the resolved, read-only view of a profile published by the
// session resolver. It is what the rest of the application keys views on.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// IdentityOf projects a stored profile onto the session-facing shape.
func IdentityOf(p *Profile) *Identity {
	return &Identity{ID: p.ID, Name: p.Name, Email: p.Email, Role: p.Role}
}
