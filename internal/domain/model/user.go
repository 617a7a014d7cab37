package model

import "time"

// Role controls access to the administrative API surface.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// User represents a registered store customer or administrator.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         Role
	CreatedAt    time.Time
}

// IsAdmin reports whether the user may access admin endpoints.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ProfileChange carries optional profile fields. Nil fields stay untouched.
type ProfileChange struct {
	FirstName       *string
	LastName        *string
	CurrentPassword *string
	NewPassword     *string
}

// UserSummary is the admin listing projection of a user.
type UserSummary struct {
	ID         int64
	Email      string
	FirstName  string
	LastName   string
	Role       Role
	CreatedAt  time.Time
	OrderCount int64
}
