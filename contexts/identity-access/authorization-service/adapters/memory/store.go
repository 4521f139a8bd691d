package memory

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"atelier/contexts/identity-access/authorization-service/domain/entities"
	domainerrors "atelier/contexts/identity-access/authorization-service/domain/errors"
	"atelier/contexts/identity-access/authorization-service/ports"

	"github.com/google/uuid"
)

// Store is an in-memory adapter implementing the principal, role, ownership,
// cache, and outbox ports. It is intended for tests and local development wiring.
type Store struct {
	mu sync.RWMutex

	principals  map[string]entities.Principal
	assignments map[string]entities.RoleAssignment
	owners      map[string]string
	orderUsers  map[string]map[string]struct{}

	cache  map[string]cacheEntry
	outbox map[string]outboxRow
}

type cacheEntry struct {
	Principal entities.Principal
	ExpiresAt time.Time
}

type outboxRow struct {
	ports.OutboxMessage
	PublishedAt *time.Time
}

// NewStore builds a deterministic in-memory adapter.
func NewStore() *Store {
	return &Store{
		principals:  make(map[string]entities.Principal),
		assignments: make(map[string]entities.RoleAssignment),
		owners:      make(map[string]string),
		orderUsers:  make(map[string]map[string]struct{}),
		cache:       make(map[string]cacheEntry),
		outbox:      make(map[string]outboxRow),
	}
}

// SeedPrincipal registers a principal as the identity collaborator would
// supply it.
func (s *Store) SeedPrincipal(principal entities.Principal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.principals[principal.UserID] = principal
}

// SeedOwner records resource ownership for instance-access lookups.
func (s *Store) SeedOwner(resourceID string, kind entities.ResourceKind, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.owners[string(kind)+"/"+resourceID] = userID
}

// SeedOrderParticipant marks a user as involved in an order.
func (s *Store) SeedOrderParticipant(orderID, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.orderUsers[orderID] == nil {
		s.orderUsers[orderID] = make(map[string]struct{})
	}
	s.orderUsers[orderID][userID] = struct{}{}
}

func (s *Store) FindPrincipal(_ context.Context, userID string) (entities.Principal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	principal, ok := s.principals[userID]
	if !ok {
		return entities.Principal{}, domainerrors.ErrPrincipalNotFound
	}
	return principal, nil
}

func (s *Store) SaveRoleAssignment(_ context.Context, input ports.AssignRoleInput) (entities.RoleAssignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	assignment := entities.RoleAssignment{
		AssignmentID: input.AssignmentID,
		UserID:       input.UserID,
		Role:         input.Role,
		AssignedBy:   input.AssignedBy,
		Reason:       input.Reason,
		AssignedAt:   input.AssignedAt,
	}
	s.assignments[input.AssignmentID] = assignment

	principal := s.principals[input.UserID]
	principal.UserID = input.UserID
	if !principal.HasRole(input.Role) {
		principal.Roles = []entities.RoleKind{input.Role}
	}
	s.principals[input.UserID] = principal

	payload, _ := json.Marshal(assignment)
	s.outbox[input.OutboxID] = outboxRow{
		OutboxMessage: ports.OutboxMessage{
			OutboxID:  input.OutboxID,
			EventType: "authorization.role_changed",
			Payload:   payload,
			CreatedAt: input.AssignedAt,
		},
	}
	return assignment, nil
}

func (s *Store) ListUserRoles(_ context.Context, userID string) ([]entities.RoleAssignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.RoleAssignment, 0)
	for _, assignment := range s.assignments {
		if assignment.UserID == userID {
			items = append(items, assignment)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].AssignedAt.Before(items[j].AssignedAt)
	})
	return items, nil
}

func (s *Store) OwnerOf(_ context.Context, resourceID string, kind entities.ResourceKind) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	owner, ok := s.owners[string(kind)+"/"+resourceID]
	return owner, ok, nil
}

func (s *Store) IsOrderParticipant(_ context.Context, orderID string, userID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users, ok := s.orderUsers[orderID]
	if !ok {
		return false, nil
	}
	_, involved := users[userID]
	return involved, nil
}

func (s *Store) Get(_ context.Context, userID string, now time.Time) (entities.Principal, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.cache[userID]
	if !ok || !entry.ExpiresAt.After(now) {
		return entities.Principal{}, false, nil
	}
	return entry.Principal, true, nil
}

func (s *Store) Set(_ context.Context, principal entities.Principal, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache[principal.UserID] = cacheEntry{Principal: principal, ExpiresAt: expiresAt}
	return nil
}

func (s *Store) Invalidate(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cache, userID)
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

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
