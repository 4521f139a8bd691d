package workers

import (
	"context"
	"log/slog"
	"time"

	application "atelier/contexts/commerce/cart-service/application"
	"atelier/contexts/commerce/cart-service/ports"
)

// OutboxRelay publishes committed cart events in enqueue order. A row is only
// acknowledged after a successful publish, so delivery is at-least-once.
type OutboxRelay struct {
	Outbox    ports.OutboxRepository
	Publisher ports.EventPublisher
	Clock     ports.Clock
	BatchSize int
	Logger    *slog.Logger
}

func (r OutboxRelay) RunOnce(ctx context.Context) error {
	logger := application.ResolveLogger(r.Logger)
	limit := r.BatchSize
	if limit <= 0 {
		limit = 100
	}

	pending, err := r.Outbox.ListPendingOutbox(ctx, limit)
	if err != nil {
		logger.Error("cart outbox list failed",
			"event", "cart_outbox_list_failed",
			"module", "commerce/cart-service",
			"layer", "worker",
			"error", err.Error(),
		)
		return err
	}

	now := time.Now().UTC()
	if r.Clock != nil {
		now = r.Clock.Now().UTC()
	}

	for _, row := range pending {
		if err := r.Publisher.PublishCartEvent(ctx, row.EventType, row.Payload); err != nil {
			logger.Error("cart outbox publish failed",
				"event", "cart_outbox_publish_failed",
				"module", "commerce/cart-service",
				"layer", "worker",
				"outbox_id", row.OutboxID,
				"error", err.Error(),
			)
			return err
		}
		if err := r.Outbox.MarkOutboxPublished(ctx, row.OutboxID, now); err != nil {
			return err
		}
	}
	return nil
}

// Run polls the outbox until the context is cancelled.
func (r OutboxRelay) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := r.RunOnce(ctx); err != nil {
				// Errors are logged inside RunOnce; keep polling.
				continue
			}
		}
	}
}
