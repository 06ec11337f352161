package worker

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/admin-console/internal/domain"
	"github.com/spec-kit/admin-console/internal/events"
	"github.com/spec-kit/admin-console/internal/repository"
)

// AuditWorker drains admin mutation events onto the audit_log table without
// blocking the request that produced them.
type AuditWorker struct {
	repo    repository.AuditRepository
	logger  *zap.Logger
	entries chan domain.AuditEntry
	wg      sync.WaitGroup
	once    sync.Once
}

// NewAuditWorker builds a worker with a buffered queue.
func NewAuditWorker(repo repository.AuditRepository, logger *zap.Logger) *AuditWorker {
	return &AuditWorker{
		repo:    repo,
		logger:  logger,
		entries: make(chan domain.AuditEntry, 64),
	}
}

// Start launches the drain goroutine and subscribes the worker to all admin
// mutation events.
func (w *AuditWorker) Start(ctx context.Context, dispatcher events.Dispatcher) {
	for _, eventType := range []events.EventType{
		events.EventUserCreated,
		events.EventUserUpdated,
		events.EventRoleCreated,
		events.EventRoleUpdated,
		events.EventTeamCreated,
		events.EventTeamUpdated,
	} {
		dispatcher.Subscribe(eventType, w.enqueue)
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for entry := range w.entries {
			if w.repo == nil {
				continue
			}
			if err := w.repo.Create(ctx, &entry); err != nil {
				w.logger.Warn("audit entry not persisted",
					zap.String("entity_type", entry.EntityType),
					zap.Int64("entity_id", entry.EntityID),
					zap.Error(err))
			}
		}
	}()
}

// Stop closes the queue and waits for remaining entries to drain.
func (w *AuditWorker) Stop() {
	w.once.Do(func() {
		close(w.entries)
	})
	w.wg.Wait()
}

func (w *AuditWorker) enqueue(_ context.Context, event events.Event) error {
	entry := domain.AuditEntry{
		RequestID:  event.Actor.RequestID,
		Actor:      event.Actor.Username,
		Action:     event.Action,
		EntityType: event.EntityType,
		EntityID:   event.EntityID,
		CreatedAt:  event.Timestamp,
	}
	select {
	case w.entries <- entry:
	default:
		w.logger.Warn("audit queue full; dropping entry",
			zap.String("entity_type", entry.EntityType),
			zap.Int64("entity_id", entry.EntityID))
	}
	return nil
}
