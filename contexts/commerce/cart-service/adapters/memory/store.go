package memory

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"atelier/contexts/commerce/cart-service/domain/entities"
	"atelier/contexts/commerce/cart-service/ports"
	"atelier/internal/shared/events"

	"github.com/google/uuid"
)

// Store is an in-memory adapter implementing the cart repository and outbox
// ports. It is intended for tests and local development wiring.
type Store struct {
	mu sync.RWMutex

	carts  map[string]cartRecord
	outbox map[string]outboxRow

	published []ports.OutboxMessage
}

type cartRecord struct {
	UserID    string
	Items     []entities.CartItem
	UpdatedAt time.Time
}

type outboxRow struct {
	ports.OutboxMessage
	PublishedAt *time.Time
}

func NewStore() *Store {
	return &Store{
		carts:  make(map[string]cartRecord),
		outbox: make(map[string]outboxRow),
	}
}

func (s *Store) Load(_ context.Context, userID string) (*entities.ShoppingCart, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.carts[userID]
	if !ok {
		return nil, false, nil
	}
	items := append([]entities.CartItem(nil), record.Items...)
	return entities.RestoreShoppingCart(record.UserID, items, record.UpdatedAt), true, nil
}

// Save persists cart state and appends drained events to the outbox under one
// lock, mirroring the transactional postgres adapter.
func (s *Store) Save(_ context.Context, cart *entities.ShoppingCart, drained []entities.DomainEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[cart.UserID] = cartRecord{
		UserID:    cart.UserID,
		Items:     cart.Items(),
		UpdatedAt: cart.UpdatedAt,
	}

	for i, event := range drained {
		payload, err := json.Marshal(events.Envelope{
			EventID:        uuid.NewString(),
			EventType:      event.EventType(),
			SourceService:  "commerce/cart-service",
			OccurredAtUTC:  cart.UpdatedAt,
			EntityType:     "cart",
			EntityID:       cart.ID,
			PayloadVersion: 1,
			Payload:        event,
		})
		if err != nil {
			return err
		}
		outboxID := uuid.NewString()
		s.outbox[outboxID] = outboxRow{
			OutboxMessage: ports.OutboxMessage{
				OutboxID:  outboxID,
				EventType: event.EventType(),
				Payload:   payload,
				// Nanosecond offsets keep same-save events ordered.
				CreatedAt: cart.UpdatedAt.Add(time.Duration(i)),
			},
		}
	}
	return nil
}

func (s *Store) ListPendingOutbox(_ context.Context, limit int) ([]ports.OutboxMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]ports.OutboxMessage, 0)
	for _, row := range s.outbox {
		if row.PublishedAt == nil {
			items = append(items, row.OutboxMessage)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (s *Store) MarkOutboxPublished(_ context.Context, outboxID string, publishedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.outbox[outboxID]
	if !ok {
		return nil
	}
	row.PublishedAt = &publishedAt
	s.outbox[outboxID] = row
	return nil
}

// PublishCartEvent records the publish so relay tests can assert delivery order.
func (s *Store) PublishCartEvent(_ context.Context, eventType string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.published = append(s.published, ports.OutboxMessage{
		EventType: eventType,
		Payload:   append([]byte(nil), payload...),
	})
	return nil
}

// Published returns the events delivered through PublishCartEvent, in order.
func (s *Store) Published() []ports.OutboxMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]ports.OutboxMessage(nil), s.published...)
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
