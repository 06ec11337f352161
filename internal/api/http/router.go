package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/admin-console/internal/api/http/handlers"
	"github.com/spec-kit/admin-console/internal/auth"
)

const loginPath = "/admin/login"

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Auth      *handlers.AuthHandler
	Dashboard *handlers.DashboardHandler
	Users     *handlers.UsersHandler
	Roles     *handlers.RolesHandler
	Teams     *handlers.TeamsHandler
	Session   *auth.SessionMiddleware
}

// RegisterRoutes wires HTTP routes. The session middleware on the /admin
// group only loads identity; the redirect decision sits on the protected
// subgroup via RequireSession.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	admin := app.Group("/admin", cfg.Session.Handle)
	admin.Post("/token", cfg.Auth.Token)
	admin.Get("/login", cfg.Auth.LoginPage)
	admin.Post("/login", cfg.Auth.Login)
	admin.Get("/logout", cfg.Auth.Logout)

	protected := admin.Group("", auth.RequireSession(loginPath))
	protected.Get("/", cfg.Dashboard.Index)

	protected.Get("/add_role", cfg.Roles.AddPage)
	protected.Post("/add_role", cfg.Roles.Create)
	protected.Get("/edit_role/:id", cfg.Roles.EditPage)
	protected.Post("/edit_role/:id", cfg.Roles.Update)

	protected.Get("/add_team", cfg.Teams.AddPage)
	protected.Post("/add_team", cfg.Teams.Create)
	protected.Get("/edit_team/:id", cfg.Teams.EditPage)
	protected.Post("/edit_team/:id", cfg.Teams.Update)

	protected.Get("/add_user", cfg.Users.AddPage)
	protected.Post("/add_user", cfg.Users.Create)
	protected.Get("/edit_user/:id", cfg.Users.EditPage)
	protected.Post("/edit_user/:id", cfg.Users.Update)
}
