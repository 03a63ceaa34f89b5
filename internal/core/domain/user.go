package domain

import "time"

const (
	RoleOwner   = "owner"
	RoleAdmin   = "admin"
	RoleCashier = "cashier"
)

// ValidRole reports whether role (already case-folded by the caller) is one
// of the roles the system knows about.
func ValidRole(role string) bool {
	switch role {
	case RoleOwner, RoleAdmin, RoleCashier:
		return true
	}
	return false
}

// User models an operator account (owner, admin, or cashier).
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the claims record produced by verifying a bearer credential.
// It is scoped to a single request and never persisted.
type Identity struct {
	SubjectID string
	Email     string
	IssuedAt  time.Time
}
