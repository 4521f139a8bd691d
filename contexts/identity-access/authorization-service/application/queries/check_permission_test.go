package queries

import (
	"context"
	"testing"
	"time"

	"atelier/contexts/identity-access/authorization-service/adapters/memory"
	"atelier/contexts/identity-access/authorization-service/domain/entities"
	domainerrors "atelier/contexts/identity-access/authorization-service/domain/errors"
)

func newCheckPermission(store *memory.Store) CheckPermissionUseCase {
	return CheckPermissionUseCase{
		Principals:        store,
		PrincipalCache:    store,
		Clock:             store,
		PrincipalCacheTTL: 5 * time.Minute,
	}
}

func TestCheckPermissionAllowsGrantedRole(t *testing.T) {
	store := memory.NewStore()
	store.SeedPrincipal(entities.Principal{
		UserID:   "seller-1",
		IsActive: true,
		Roles:    []entities.RoleKind{entities.RoleSeller},
	})

	decision, err := newCheckPermission(store).Execute(context.Background(), CheckPermissionQuery{
		UserID:   "seller-1",
		Resource: entities.ResourceArtwork,
		Action:   entities.ActionCreate,
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !decision.Allowed || decision.Reason != "permission_granted" {
		t.Fatalf("unexpected decision: %+v", decision)
	}
	if decision.Permission != "artwork:create" {
		t.Fatalf("unexpected permission name %q", decision.Permission)
	}
}

func TestCheckPermissionDeniesMissingGrant(t *testing.T) {
	store := memory.NewStore()
	store.SeedPrincipal(entities.Principal{
		UserID:   "buyer-1",
		IsActive: true,
		Roles:    []entities.RoleKind{entities.RoleBuyer},
	})

	decision, err := newCheckPermission(store).Execute(context.Background(), CheckPermissionQuery{
		UserID:   "buyer-1",
		Resource: entities.ResourceArtwork,
		Action:   entities.ActionCreate,
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if decision.Allowed || decision.Reason != "permission_missing" {
		t.Fatalf("unexpected decision: %+v", decision)
	}
}

func TestCheckPermissionReportsInactivePrincipal(t *testing.T) {
	store := memory.NewStore()
	store.SeedPrincipal(entities.Principal{
		UserID:   "dormant-1",
		IsActive: false,
		Roles:    []entities.RoleKind{entities.RoleAdmin},
	})

	decision, err := newCheckPermission(store).Execute(context.Background(), CheckPermissionQuery{
		UserID:   "dormant-1",
		Resource: entities.ResourceUser,
		Action:   entities.ActionManage,
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if decision.Allowed || decision.Reason != "principal_inactive" {
		t.Fatalf("unexpected decision: %+v", decision)
	}
}

func TestCheckPermissionDeniesByDefaultOnUnknownUser(t *testing.T) {
	store := memory.NewStore()

	decision, err := newCheckPermission(store).Execute(context.Background(), CheckPermissionQuery{
		UserID:   "ghost-1",
		Resource: entities.ResourceCart,
		Action:   entities.ActionRead,
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if decision.Allowed || decision.Reason != "deny_by_default" {
		t.Fatalf("unexpected decision: %+v", decision)
	}
}

func TestCheckPermissionSecondLookupHitsCache(t *testing.T) {
	store := memory.NewStore()
	store.SeedPrincipal(entities.Principal{
		UserID:   "buyer-1",
		IsActive: true,
		Roles:    []entities.RoleKind{entities.RoleBuyer},
	})
	useCase := newCheckPermission(store)
	query := CheckPermissionQuery{
		UserID:   "buyer-1",
		Resource: entities.ResourceCart,
		Action:   entities.ActionRead,
	}

	first, err := useCase.Execute(context.Background(), query)
	if err != nil {
		t.Fatalf("first execute failed: %v", err)
	}
	if first.CacheHit {
		t.Fatal("first lookup should miss the cache")
	}
	second, err := useCase.Execute(context.Background(), query)
	if err != nil {
		t.Fatalf("second execute failed: %v", err)
	}
	if !second.CacheHit {
		t.Fatal("second lookup should hit the cache")
	}
}

func TestCheckPermissionRejectsBlankInput(t *testing.T) {
	store := memory.NewStore()
	useCase := newCheckPermission(store)

	if _, err := useCase.Execute(context.Background(), CheckPermissionQuery{
		Resource: entities.ResourceCart,
		Action:   entities.ActionRead,
	}); err != domainerrors.ErrInvalidUserID {
		t.Fatalf("blank user: got %v, want ErrInvalidUserID", err)
	}
	if _, err := useCase.Execute(context.Background(), CheckPermissionQuery{
		UserID: "user-1",
	}); err != domainerrors.ErrInvalidResource {
		t.Fatalf("blank resource: got %v, want ErrInvalidResource", err)
	}
}
