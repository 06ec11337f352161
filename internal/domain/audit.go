package domain

import "time"

// AuditAction enumerates recorded admin mutations.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
)

// AuditEntry is an immutable record of one admin mutation.
type AuditEntry struct {
	ID         int64
	RequestID  string
	Actor      string
	Action     AuditAction
	EntityType string
	EntityID   int64
	CreatedAt  time.Time
}
