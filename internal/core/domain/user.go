package domain

import "time"

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// ValidRole reports whether role is one of the known role constants.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

// User models an account in the system. PasswordHash is never serialized.
type User struct {
	ID           string    `json:"id"`
	Login        string    `json:"login"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity is the narrow view of an authenticated caller that the
// authorization gate attaches to the request context. Handlers never see
// the full User.
type Identity struct {
	ID    string
	Login string
	Role  string
}

// IsAdmin reports whether the identity carries the ADMIN role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
