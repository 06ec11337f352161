package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/admin-console/internal/domain"
)

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var seen []Event
	dispatcher.Subscribe(EventRoleCreated, func(_ context.Context, event Event) error {
		seen = append(seen, event)
		return nil
	})

	event := Event{
		ID:         "evt-1",
		Type:       EventRoleCreated,
		Actor:      Actor{Username: "root"},
		Action:     domain.AuditActionCreate,
		EntityType: "role",
		EntityID:   7,
	}
	require.NoError(t, dispatcher.Publish(context.Background(), event))
	require.Len(t, seen, 1)
	require.Equal(t, "evt-1", seen[0].ID)

	// unrelated event types are not delivered
	require.NoError(t, dispatcher.Publish(context.Background(), Event{Type: EventTeamCreated}))
	require.Len(t, seen, 1)
}

func TestDispatcherContinuesPastHandlerErrors(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	calls := 0
	dispatcher.Subscribe(EventUserCreated, func(context.Context, Event) error {
		calls++
		return errors.New("boom")
	})
	dispatcher.Subscribe(EventUserCreated, func(context.Context, Event) error {
		calls++
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), Event{Type: EventUserCreated}))
	require.Equal(t, 2, calls)
}
