package ports

import (
	"context"
	"time"

	"atelier/contexts/commerce/cart-service/domain/entities"
)

// Clock abstracts current time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts UUID generation for outbox rows.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// Repository is the persistence gateway for cart state. Save must persist the
// cart and append its drained events to the outbox atomically, so no event can
// be relayed before the state change that produced it is durable.
type Repository interface {
	Load(ctx context.Context, userID string) (*entities.ShoppingCart, bool, error)
	Save(ctx context.Context, cart *entities.ShoppingCart, events []entities.DomainEvent) error
}

// OutboxMessage represents a pending relay message.
type OutboxMessage struct {
	OutboxID  string
	EventType string
	Payload   []byte
	CreatedAt time.Time
}

// OutboxRepository supports worker relay polling and acknowledgement.
type OutboxRepository interface {
	ListPendingOutbox(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error
}

// EventPublisher hands committed cart events to the event bus adapter.
// Delivery is at-least-once, in enqueue order, only after commit.
type EventPublisher interface {
	PublishCartEvent(ctx context.Context, eventType string, payload []byte) error
}
