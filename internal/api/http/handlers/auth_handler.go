package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/admin-console/internal/api/dto"
	"github.com/spec-kit/admin-console/internal/auth"
	"github.com/spec-kit/admin-console/internal/service"
	apperrors "github.com/spec-kit/admin-console/pkg/util"
)

const loginFailedMsg = "Incorrect username or password"

// AuthHandler exposes the login, token, and logout endpoints.
type AuthHandler struct {
	auth    *service.AuthService
	cookies *auth.CookieBinding
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, cookies *auth.CookieBinding) *AuthHandler {
	return &AuthHandler{auth: authService, cookies: cookies}
}

// Token handles POST /admin/token: authenticate, set the session cookie, and
// return a structured result instead of the bare boolean of old.
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "username and password required")
	}

	token, expiresAt, err := h.auth.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return apperrors.NewInvalidCredentials()
		}
		return apperrors.MapError(err)
	}

	h.cookies.Write(c, token, expiresAt)
	return c.JSON(fiber.Map{
		"data": dto.TokenResponse{Username: req.Username, ExpiresAt: expiresAt},
	})
}

// LoginPage handles GET /admin/login.
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{})
}

// Login handles POST /admin/login. On failure no cookie is set and the login
// page is re-rendered with one generic message regardless of the cause.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Render("login", fiber.Map{"msg": loginFailedMsg})
	}
	if req.Username == "" || req.Password == "" {
		return c.Render("login", fiber.Map{"msg": loginFailedMsg})
	}

	token, expiresAt, err := h.auth.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.Render("login", fiber.Map{"msg": loginFailedMsg})
		}
		return apperrors.MapError(err)
	}

	h.cookies.Write(c, token, expiresAt)
	return c.Redirect("/admin", fiber.StatusFound)
}

// Logout handles GET /admin/logout: clear the cookie and return to the login
// page. The token itself stays valid until expiry; only the client copy goes.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.cookies.Clear(c)
	return c.Redirect("/admin/login", fiber.StatusFound)
}
