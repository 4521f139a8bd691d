package workers

import (
	"context"
	"errors"
	"testing"

	"atelier/contexts/identity-access/authorization-service/adapters/memory"
	"atelier/contexts/identity-access/authorization-service/application/commands"
	"atelier/contexts/identity-access/authorization-service/domain/entities"
)

type capturePublisher struct {
	eventTypes []string
	fail       bool
}

func (p *capturePublisher) PublishRoleChanged(_ context.Context, eventType string, _ []byte) error {
	if p.fail {
		return errors.New("broker unavailable")
	}
	p.eventTypes = append(p.eventTypes, eventType)
	return nil
}

func seedOneAssignment(t *testing.T, store *memory.Store) {
	t.Helper()
	store.SeedPrincipal(entities.Principal{
		UserID:   "admin-1",
		IsActive: true,
		Roles:    []entities.RoleKind{entities.RoleAdmin},
	})
	store.SeedPrincipal(entities.Principal{
		UserID:   "buyer-1",
		IsActive: true,
		Roles:    []entities.RoleKind{entities.RoleBuyer},
	})
	useCase := commands.AssignRoleUseCase{
		Roles:       store,
		Principals:  store,
		Clock:       store,
		IDGenerator: store,
	}
	if _, err := useCase.Execute(context.Background(), commands.AssignRoleCommand{
		UserID:     "buyer-1",
		Role:       entities.RoleSeller,
		AssignedBy: "admin-1",
	}); err != nil {
		t.Fatalf("seed assignment failed: %v", err)
	}
}

func TestOutboxRelayPublishesAndAcknowledges(t *testing.T) {
	store := memory.NewStore()
	seedOneAssignment(t, store)
	publisher := &capturePublisher{}

	relay := OutboxRelay{Outbox: store, Publisher: publisher, Clock: store}
	if err := relay.RunOnce(context.Background()); err != nil {
		t.Fatalf("run once failed: %v", err)
	}

	if len(publisher.eventTypes) != 1 || publisher.eventTypes[0] != "authorization.role_changed" {
		t.Fatalf("unexpected published events: %v", publisher.eventTypes)
	}
	pending, err := store.ListPendingOutbox(context.Background(), 10)
	if err != nil {
		t.Fatalf("list outbox failed: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("published rows must leave the pending set, %d remain", len(pending))
	}
}

func TestOutboxRelayKeepsRowOnPublishFailure(t *testing.T) {
	store := memory.NewStore()
	seedOneAssignment(t, store)
	publisher := &capturePublisher{fail: true}

	relay := OutboxRelay{Outbox: store, Publisher: publisher, Clock: store}
	if err := relay.RunOnce(context.Background()); err == nil {
		t.Fatal("expected publish failure to surface")
	}

	pending, err := store.ListPendingOutbox(context.Background(), 10)
	if err != nil {
		t.Fatalf("list outbox failed: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("failed publish must keep the row pending, got %d", len(pending))
	}
}
