package queries

import (
	"context"
	"log/slog"
	"strings"

	application "atelier/contexts/identity-access/authorization-service/application"
	"atelier/contexts/identity-access/authorization-service/domain/entities"
	domainerrors "atelier/contexts/identity-access/authorization-service/domain/errors"
	"atelier/contexts/identity-access/authorization-service/domain/services"
	"atelier/contexts/identity-access/authorization-service/ports"
)

// CheckResourceAccessQuery asks whether a user may touch one resource instance.
type CheckResourceAccessQuery struct {
	UserID     string
	ResourceID string
	Resource   entities.ResourceKind
}

// CheckResourceAccessUseCase resolves the instance policy table, consulting the
// ownership gateway where the ruling requires it.
type CheckResourceAccessUseCase struct {
	CheckPermission CheckPermissionUseCase
	Ownership       ports.OwnershipGateway
	Logger          *slog.Logger
}

// Execute returns an allow/deny decision; gateway failures deny by default.
func (u CheckResourceAccessUseCase) Execute(ctx context.Context, query CheckResourceAccessQuery) (entities.AccessDecision, error) {
	if strings.TrimSpace(query.UserID) == "" {
		return entities.AccessDecision{}, domainerrors.ErrInvalidUserID
	}
	if strings.TrimSpace(query.ResourceID) == "" || query.Resource == "" {
		return entities.AccessDecision{}, domainerrors.ErrInvalidResource
	}

	logger := application.ResolveLogger(u.Logger)
	now := u.CheckPermission.now()
	decision := entities.AccessDecision{
		UserID:     query.UserID,
		Permission: string(query.Resource) + ":" + query.ResourceID,
		CheckedAt:  now,
	}

	principal, cacheHit, err := u.CheckPermission.loadPrincipal(ctx, query.UserID, now)
	if err != nil {
		logger.Error("principal lookup failed, deny by default",
			"event", "authz_principal_lookup_failed",
			"module", "identity-access/authorization-service",
			"layer", "application",
			"user_id", query.UserID,
			"resource", string(query.Resource),
			"resource_id", query.ResourceID,
			"error", err.Error(),
		)
		decision.Reason = "deny_by_default"
		return decision, nil
	}
	decision.CacheHit = cacheHit

	switch services.ResourceAccessPolicy(principal, query.ResourceID, query.Resource) {
	case services.RulingAllow:
		decision.Allowed = true
		decision.Reason = "resource_access_granted"
	case services.RulingNeedsOwnership:
		decision.Allowed, decision.Reason = u.resolveOwnership(ctx, query, logger)
	case services.RulingNeedsOrderInvolvement:
		decision.Allowed, decision.Reason = u.resolveOrderInvolvement(ctx, query, logger)
	default:
		decision.Reason = "resource_access_denied"
	}

	if !decision.Allowed {
		logger.Warn("resource access denied",
			"event", "authz_resource_denied",
			"module", "identity-access/authorization-service",
			"layer", "application",
			"user_id", query.UserID,
			"resource", string(query.Resource),
			"resource_id", query.ResourceID,
			"reason", decision.Reason,
		)
	}
	return decision, nil
}

// resolveOwnership checks the catalog's ownership record for the instance.
// Resources without a record stay accessible to sellers; the catalog only
// publishes records for resources it wants fenced.
func (u CheckResourceAccessUseCase) resolveOwnership(
	ctx context.Context,
	query CheckResourceAccessQuery,
	logger *slog.Logger,
) (bool, string) {
	if u.Ownership == nil {
		return false, "ownership_unavailable"
	}
	owner, found, err := u.Ownership.OwnerOf(ctx, query.ResourceID, query.Resource)
	if err != nil {
		logger.Error("ownership lookup failed, deny by default",
			"event", "authz_ownership_lookup_failed",
			"module", "identity-access/authorization-service",
			"layer", "application",
			"user_id", query.UserID,
			"resource_id", query.ResourceID,
			"error", err.Error(),
		)
		return false, "deny_by_default"
	}
	if !found {
		return true, "seller_access"
	}
	if owner != query.UserID {
		return false, "not_resource_owner"
	}
	return true, "resource_owner"
}

func (u CheckResourceAccessUseCase) resolveOrderInvolvement(
	ctx context.Context,
	query CheckResourceAccessQuery,
	logger *slog.Logger,
) (bool, string) {
	if u.Ownership == nil {
		return false, "order_involvement_unavailable"
	}
	involved, err := u.Ownership.IsOrderParticipant(ctx, query.ResourceID, query.UserID)
	if err != nil {
		logger.Error("order involvement lookup failed, deny by default",
			"event", "authz_order_lookup_failed",
			"module", "identity-access/authorization-service",
			"layer", "application",
			"user_id", query.UserID,
			"resource_id", query.ResourceID,
			"error", err.Error(),
		)
		return false, "deny_by_default"
	}
	if !involved {
		return false, "order_not_involved"
	}
	return true, "order_participant"
}
