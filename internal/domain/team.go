package domain

import "time"

// Team is an organizational grouping users may optionally belong to.
type Team struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
