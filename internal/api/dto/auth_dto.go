package dto

import "time"

// LoginRequest carries credentials from the login form or JSON body. The
// shape is fixed; nothing is assembled field-by-field at runtime.
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// TokenResponse is the structured result of POST /admin/token.
type TokenResponse struct {
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}
