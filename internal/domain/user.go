package domain

import "time"

// User is an administrative account that can sign in to the console.
type User struct {
	ID           int64
	Username     string
	FirstName    string
	LastName     string
	PasswordHash string
	RoleID       int64
	TeamID       *int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
