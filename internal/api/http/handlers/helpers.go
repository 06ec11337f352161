package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/admin-console/internal/auth"
	"github.com/spec-kit/admin-console/internal/events"
	"github.com/spec-kit/admin-console/internal/observability"
)

// actorFromCtx builds the audit actor from the verified session and the
// request id assigned by the logging middleware.
func actorFromCtx(c *fiber.Ctx) events.Actor {
	actor := events.Actor{RequestID: observability.RequestIDFromContext(c)}
	if session, ok := auth.SessionFromContext(c); ok {
		actor.Username = session.Username
	}
	return actor
}
