package queries

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "atelier/contexts/identity-access/authorization-service/application"
	"atelier/contexts/identity-access/authorization-service/domain/entities"
	domainerrors "atelier/contexts/identity-access/authorization-service/domain/errors"
	"atelier/contexts/identity-access/authorization-service/domain/services"
	"atelier/contexts/identity-access/authorization-service/ports"
)

// CheckPermissionQuery is the request model for single-permission evaluation.
type CheckPermissionQuery struct {
	UserID   string
	Resource entities.ResourceKind
	Action   entities.ActionKind
}

// CheckPermissionUseCase orchestrates cache-first permission evaluation.
type CheckPermissionUseCase struct {
	Principals        ports.PrincipalRepository
	PrincipalCache    ports.PrincipalCache
	Clock             ports.Clock
	PrincipalCacheTTL time.Duration
	Logger            *slog.Logger
}

// Execute evaluates a permission and returns deny-by-default on lookup failures.
func (u CheckPermissionUseCase) Execute(ctx context.Context, query CheckPermissionQuery) (entities.AccessDecision, error) {
	if strings.TrimSpace(query.UserID) == "" {
		return entities.AccessDecision{}, domainerrors.ErrInvalidUserID
	}
	if query.Resource == "" || query.Action == "" {
		return entities.AccessDecision{}, domainerrors.ErrInvalidResource
	}

	logger := application.ResolveLogger(u.Logger)
	now := u.now()
	permission := entities.NewPermission(query.Resource, query.Action)

	principal, cacheHit, err := u.loadPrincipal(ctx, query.UserID, now)
	if err != nil {
		logger.Error("principal lookup failed, deny by default",
			"event", "authz_principal_lookup_failed",
			"module", "identity-access/authorization-service",
			"layer", "application",
			"user_id", query.UserID,
			"permission", permission.Name(),
			"error", err.Error(),
		)
		return entities.AccessDecision{
			UserID:     query.UserID,
			Permission: permission.Name(),
			Allowed:    false,
			Reason:     "deny_by_default",
			CheckedAt:  now,
			CacheHit:   false,
		}, nil
	}

	allowed := services.HasPermission(principal, permission)
	reason := "permission_granted"
	if !allowed {
		reason = "permission_missing"
		if !principal.IsActive {
			reason = "principal_inactive"
		}
		logger.Warn("check permission denied",
			"event", "authz_check_denied",
			"module", "identity-access/authorization-service",
			"layer", "application",
			"user_id", query.UserID,
			"permission", permission.Name(),
			"reason", reason,
			"cache_hit", cacheHit,
		)
	} else {
		logger.Debug("check permission allowed",
			"event", "authz_check_allowed",
			"module", "identity-access/authorization-service",
			"layer", "application",
			"user_id", query.UserID,
			"permission", permission.Name(),
			"cache_hit", cacheHit,
		)
	}

	return entities.AccessDecision{
		UserID:     query.UserID,
		Permission: permission.Name(),
		Allowed:    allowed,
		Reason:     reason,
		CheckedAt:  now,
		CacheHit:   cacheHit,
	}, nil
}

func (u CheckPermissionUseCase) loadPrincipal(
	ctx context.Context,
	userID string,
	now time.Time,
) (entities.Principal, bool, error) {
	if u.PrincipalCache != nil {
		principal, hit, err := u.PrincipalCache.Get(ctx, userID, now)
		if err != nil {
			return entities.Principal{}, false, err
		}
		if hit {
			return principal, true, nil
		}
	}

	principal, err := u.Principals.FindPrincipal(ctx, userID)
	if err != nil {
		return entities.Principal{}, false, err
	}

	if u.PrincipalCache != nil {
		_ = u.PrincipalCache.Set(ctx, principal, now.Add(u.cacheTTL()))
	}
	return principal, false, nil
}

func (u CheckPermissionUseCase) cacheTTL() time.Duration {
	if u.PrincipalCacheTTL <= 0 {
		return 5 * time.Minute
	}
	return u.PrincipalCacheTTL
}

func (u CheckPermissionUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
