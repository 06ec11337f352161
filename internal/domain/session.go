package domain

import "time"

// Session describes the identity carried by a verified access token. It is
// a point-in-time snapshot: RoleID is the role the user held when the token
// was issued, so role changes only take effect at the next login.
type Session struct {
	Username  string
	RoleID    int64
	IssuedAt  time.Time
	ExpiresAt time.Time
}
