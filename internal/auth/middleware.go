package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/admin-console/internal/domain"
)

const sessionKey = "session_identity"

// SessionMiddleware loads the session identity from the access token cookie.
// It is deliberately soft: a missing cookie, a bad signature, and an expired
// token all just leave the request without an identity. Redirect policy
// belongs to RequireSession, not here.
type SessionMiddleware struct {
	tokens  *TokenManager
	cookies *CookieBinding
}

// NewSessionMiddleware constructs middleware.
func NewSessionMiddleware(tokens *TokenManager, cookies *CookieBinding) *SessionMiddleware {
	return &SessionMiddleware{tokens: tokens, cookies: cookies}
}

// Handle extracts and verifies the cookie token, storing the session in
// request locals on success.
func (m *SessionMiddleware) Handle(c *fiber.Ctx) error {
	token := m.cookies.Read(c)
	if token == "" {
		return c.Next()
	}
	session, err := m.tokens.Verify(token)
	if err != nil {
		return c.Next()
	}
	c.Locals(sessionKey, session)
	return c.Next()
}

// SessionFromContext retrieves the verified session identity, if any.
func SessionFromContext(c *fiber.Ctx) (*domain.Session, bool) {
	val := c.Locals(sessionKey)
	if val == nil {
		return nil, false
	}
	session, ok := val.(*domain.Session)
	return session, ok
}

// RequireSession gates a route on a valid session, redirecting anonymous
// requests to the login page.
func RequireSession(loginURL string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := SessionFromContext(c); !ok {
			return c.Redirect(loginURL, fiber.StatusFound)
		}
		return c.Next()
	}
}
