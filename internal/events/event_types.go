package events

import (
	"time"

	"github.com/spec-kit/admin-console/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserCreated EventType = "user_created"
	EventUserUpdated EventType = "user_updated"
	EventRoleCreated EventType = "role_created"
	EventRoleUpdated EventType = "role_updated"
	EventTeamCreated EventType = "team_created"
	EventTeamUpdated EventType = "team_updated"
)

// Actor identifies who performed a mutation and on behalf of which request.
type Actor struct {
	Username  string `json:"username"`
	RequestID string `json:"request_id,omitempty"`
}

// Event represents an admin mutation emitted by services.
type Event struct {
	ID         string             `json:"id"`
	Type       EventType          `json:"type"`
	Actor      Actor              `json:"actor"`
	Action     domain.AuditAction `json:"action"`
	EntityType string             `json:"entity_type"`
	EntityID   int64              `json:"entity_id"`
	Timestamp  time.Time          `json:"timestamp"`
}
