package workers

import (
	"context"
	"encoding/json"
	"testing"

	"atelier/contexts/commerce/cart-service/adapters/memory"
	application "atelier/contexts/commerce/cart-service/application"
	"atelier/internal/shared/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCartActivity(t *testing.T, store *memory.Store) {
	t.Helper()
	service := application.NewService(store, store, nil)
	ctx := context.Background()

	_, err := service.AddItem(ctx, "buyer-1", application.AddItemInput{
		ProductID: "art-1", Quantity: 1, UnitPrice: 10.00, Currency: "USD",
	})
	require.NoError(t, err)
	_, err = service.AddItem(ctx, "buyer-1", application.AddItemInput{
		ProductID: "art-2", Quantity: 2, UnitPrice: 5.00, Currency: "USD",
	})
	require.NoError(t, err)
	_, err = service.RemoveItem(ctx, "buyer-1", "art-1")
	require.NoError(t, err)
}

func TestCartOutboxRelayDeliversInEnqueueOrder(t *testing.T) {
	store := memory.NewStore()
	seedCartActivity(t, store)

	relay := OutboxRelay{Outbox: store, Publisher: store, Clock: store}
	require.NoError(t, relay.RunOnce(context.Background()))

	published := store.Published()
	require.Len(t, published, 3)
	assert.Equal(t, "cart.item_added", published[0].EventType)
	assert.Equal(t, "cart.item_added", published[1].EventType)
	assert.Equal(t, "cart.item_removed", published[2].EventType)

	pending, err := store.ListPendingOutbox(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, pending, "delivered rows must be acknowledged")
}

func TestCartOutboxRelaySecondRunIsIdempotent(t *testing.T) {
	store := memory.NewStore()
	seedCartActivity(t, store)

	relay := OutboxRelay{Outbox: store, Publisher: store, Clock: store}
	require.NoError(t, relay.RunOnce(context.Background()))
	require.NoError(t, relay.RunOnce(context.Background()))

	assert.Len(t, store.Published(), 3, "acknowledged rows must not be re-delivered")
}

func TestCartOutboxPayloadIsAnEnvelope(t *testing.T) {
	store := memory.NewStore()
	seedCartActivity(t, store)

	relay := OutboxRelay{Outbox: store, Publisher: store, Clock: store}
	require.NoError(t, relay.RunOnce(context.Background()))

	var envelope events.Envelope
	require.NoError(t, json.Unmarshal(store.Published()[0].Payload, &envelope))
	assert.Equal(t, "cart.item_added", envelope.EventType)
	assert.Equal(t, "commerce/cart-service", envelope.SourceService)
	assert.Equal(t, "cart", envelope.EntityType)
	assert.Equal(t, "buyer-1", envelope.EntityID)
	assert.NotEmpty(t, envelope.EventID)
}
