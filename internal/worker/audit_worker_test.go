package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/admin-console/internal/domain"
	"github.com/spec-kit/admin-console/internal/events"
)

type memAuditRepo struct {
	mu      sync.Mutex
	entries []domain.AuditEntry
}

func (r *memAuditRepo) Create(_ context.Context, entry *domain.AuditEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry.ID = int64(len(r.entries) + 1)
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *memAuditRepo) ListRecent(_ context.Context, limit int) ([]domain.AuditEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if limit > len(r.entries) {
		limit = len(r.entries)
	}
	return append([]domain.AuditEntry(nil), r.entries[:limit]...), nil
}

func TestAuditWorkerPersistsPublishedEvents(t *testing.T) {
	repo := &memAuditRepo{}
	dispatcher := events.NewInMemoryDispatcher()
	auditWorker := NewAuditWorker(repo, zap.NewNop())
	auditWorker.Start(context.Background(), dispatcher)

	err := dispatcher.Publish(context.Background(), events.Event{
		ID:         "evt-1",
		Type:       events.EventUserCreated,
		Actor:      events.Actor{Username: "root", RequestID: "req-9"},
		Action:     domain.AuditActionCreate,
		EntityType: "user",
		EntityID:   42,
		Timestamp:  time.Now(),
	})
	require.NoError(t, err)

	auditWorker.Stop()

	entries, err := repo.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "root", entries[0].Actor)
	require.Equal(t, "req-9", entries[0].RequestID)
	require.Equal(t, domain.AuditActionCreate, entries[0].Action)
	require.Equal(t, "user", entries[0].EntityType)
	require.EqualValues(t, 42, entries[0].EntityID)
}
