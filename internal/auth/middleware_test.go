package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func newSessionTestApp(tm *TokenManager) *fiber.App {
	app := fiber.New()
	cookies := NewCookieBinding(false)
	app.Use(NewSessionMiddleware(tm, cookies).Handle)

	app.Get("/whoami", func(c *fiber.Ctx) error {
		session, ok := SessionFromContext(c)
		if !ok {
			return c.Status(http.StatusUnauthorized).SendString("anonymous")
		}
		return c.SendString(session.Username)
	})
	app.Get("/protected", RequireSession("/admin/login"), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestSessionMiddlewareValidCookie(t *testing.T) {
	tm := NewTokenManager("test-secret", 15*time.Minute)
	app := newSessionTestApp(tm)

	token, _, err := tm.Issue("alice", 2, 15*time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: token})

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSessionMiddlewareMissingCookie(t *testing.T) {
	tm := NewTokenManager("test-secret", 15*time.Minute)
	app := newSessionTestApp(tm)

	// no cookie: identity is simply absent, no error raised by the middleware
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSessionMiddlewareInvalidCookie(t *testing.T) {
	tm := NewTokenManager("test-secret", 15*time.Minute)
	app := newSessionTestApp(tm)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "garbage"})

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSessionMiddlewareExpiredCookie(t *testing.T) {
	tm := NewTokenManager("test-secret", 15*time.Minute)
	app := newSessionTestApp(tm)

	token, _, err := tm.Issue("alice", 2, time.Nanosecond)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)

	// expiry detected lazily; the request just appears unauthenticated
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: token})

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireSessionRedirectsAnonymous(t *testing.T) {
	tm := NewTokenManager("test-secret", 15*time.Minute)
	app := newSessionTestApp(tm)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/admin/login", resp.Header.Get("Location"))
}

func TestRequireSessionPassesAuthenticated(t *testing.T) {
	tm := NewTokenManager("test-secret", 15*time.Minute)
	app := newSessionTestApp(tm)

	token, _, err := tm.Issue("alice", 2, 15*time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: token})

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCookieBindingWriteAndClear(t *testing.T) {
	binding := NewCookieBinding(false)
	app := fiber.New()
	app.Get("/set", func(c *fiber.Ctx) error {
		binding.Write(c, "tok123", time.Now().Add(time.Hour))
		return c.SendString("ok")
	})
	app.Get("/clear", func(c *fiber.Ctx) error {
		binding.Clear(c)
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/set", nil))
	require.NoError(t, err)
	setCookie := resp.Header.Get("Set-Cookie")
	require.Contains(t, setCookie, AccessTokenCookie+"=tok123")
	require.Contains(t, strings.ToLower(setCookie), "httponly")
	require.Contains(t, strings.ToLower(setCookie), "samesite=lax")

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/clear", nil))
	require.NoError(t, err)
	cleared := resp.Header.Get("Set-Cookie")
	require.Contains(t, cleared, AccessTokenCookie+"=")
	require.NotContains(t, cleared, "tok123")
}
