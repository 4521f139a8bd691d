package ports

import (
	"context"
	"time"

	"atelier/contexts/identity-access/authorization-service/domain/entities"
)

// Clock abstracts current time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts UUID generation for assignments/outbox rows.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// PrincipalCache stores resolved principals with TTL semantics. Cached data is
// advisory: it is invalidated on every role mutation and expires on its own so
// decisions track the freshest active-status/role set available.
type PrincipalCache interface {
	Get(ctx context.Context, userID string, now time.Time) (entities.Principal, bool, error)
	Set(ctx context.Context, principal entities.Principal, expiresAt time.Time) error
	Invalidate(ctx context.Context, userID string) error
}

// PrincipalRepository resolves the freshest principal state for a user.
type PrincipalRepository interface {
	FindPrincipal(ctx context.Context, userID string) (entities.Principal, error)
}

// AssignRoleInput is persisted atomically with its outbox record.
type AssignRoleInput struct {
	AssignmentID string
	OutboxID     string
	UserID       string
	Role         entities.RoleKind
	AssignedBy   string
	Reason       string
	AssignedAt   time.Time
}

// RoleRepository is the write boundary for role state.
type RoleRepository interface {
	SaveRoleAssignment(ctx context.Context, input AssignRoleInput) (entities.RoleAssignment, error)
	ListUserRoles(ctx context.Context, userID string) ([]entities.RoleAssignment, error)
}

// OwnershipGateway answers instance-ownership questions for resources owned by
// other contexts. Absent ownership resolves to ("", false, nil).
type OwnershipGateway interface {
	OwnerOf(ctx context.Context, resourceID string, kind entities.ResourceKind) (string, bool, error)
	IsOrderParticipant(ctx context.Context, orderID string, userID string) (bool, error)
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

// RoleChangedPublisher emits role change events to the event bus adapter.
type RoleChangedPublisher interface {
	PublishRoleChanged(ctx context.Context, eventType string, payload []byte) error
}
