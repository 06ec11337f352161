package domain

import "time"

// Role groups permission flags assigned to users. The flags are plain data
// here; the service gates access on "holds a valid session", not on
// individual flags.
type Role struct {
	ID              int64
	Name            string
	Description     string
	Onboarding      bool
	EmployeeUpdates bool
	Offboarding     bool
	ManageModify    bool
	Admin           bool
	Payroll         bool
	APIReport       bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
