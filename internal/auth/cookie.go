package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// AccessTokenCookie is the cookie carrying the signed access token.
const AccessTokenCookie = "access_token"

// CookieBinding writes and reads the session cookie. Cookies are always
// HTTP-only with SameSite=Lax; the Secure flag is configuration so local
// development over plain HTTP keeps working.
type CookieBinding struct {
	secure bool
}

// NewCookieBinding constructs the binding.
func NewCookieBinding(secure bool) *CookieBinding {
	return &CookieBinding{secure: secure}
}

// Write stores the token in the session cookie. The cookie expiry mirrors
// the token's own expiry; the token remains the source of truth either way.
func (b *CookieBinding) Write(c *fiber.Ctx, token string, expiresAt time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     AccessTokenCookie,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HTTPOnly: true,
		Secure:   b.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// Clear deletes the session cookie by expiring it in the past.
func (b *CookieBinding) Clear(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     AccessTokenCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   b.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// Read returns the raw token from the request, or "" when the cookie is
// absent. An absent cookie is an absent session, not an error.
func (b *CookieBinding) Read(c *fiber.Ctx) string {
	return c.Cookies(AccessTokenCookie)
}
