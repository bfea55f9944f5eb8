package domain

import "time"

// Role determines which views and workflows a user can reach.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleEngineer Role = "ENGINEER"
	RoleFinance  Role = "FINANCE"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEngineer, RoleFinance:
		return true
	}
	return false
}

// User represents a member of staff.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
	Avatar       string `json:"avatar"`
	PasswordHash string `json:"-"`
}

// Session binds an authenticated user to their workspace.
type Session struct {
	ID        string    `json:"id"`
	User      User      `json:"user"`
	StartedAt time.Time `json:"startedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// LoginResult is returned after a successful login.
type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Session   Session   `json:"session"`
}
