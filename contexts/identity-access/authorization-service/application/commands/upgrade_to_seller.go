package commands

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

// UpgradeToSellerCommand is the self-service buyer to seller request.
type UpgradeToSellerCommand struct {
	UserID string
	Reason string
}

// UpgradeToSellerUseCase gates the upgrade on current buyer-only access and
// records the seller assignment under the requesting user's own identity.
type UpgradeToSellerUseCase struct {
	Roles          ports.RoleRepository
	Principals     ports.PrincipalRepository
	PrincipalCache ports.PrincipalCache
	Clock          ports.Clock
	IDGenerator    ports.IDGenerator
	Logger         *slog.Logger
}

func (u UpgradeToSellerUseCase) Execute(ctx context.Context, cmd UpgradeToSellerCommand) (AssignRoleResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if strings.TrimSpace(cmd.UserID) == "" {
		return AssignRoleResult{}, domainerrors.ErrInvalidUserID
	}

	principal, err := u.Principals.FindPrincipal(ctx, cmd.UserID)
	if err != nil {
		return AssignRoleResult{}, err
	}
	if !services.CanUpgradeToSeller(principal) {
		logger.Warn("seller upgrade rejected",
			"event", "authz_seller_upgrade_rejected",
			"module", "identity-access/authorization-service",
			"layer", "application",
			"user_id", cmd.UserID,
			"is_active", principal.IsActive,
		)
		return AssignRoleResult{}, domainerrors.ErrNotEligibleForSeller
	}

	assignmentID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return AssignRoleResult{}, err
	}
	outboxID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return AssignRoleResult{}, err
	}
	assignment, err := u.Roles.SaveRoleAssignment(ctx, ports.AssignRoleInput{
		AssignmentID: assignmentID,
		OutboxID:     outboxID,
		UserID:       strings.TrimSpace(cmd.UserID),
		Role:         entities.RoleSeller,
		AssignedBy:   strings.TrimSpace(cmd.UserID),
		Reason:       strings.TrimSpace(cmd.Reason),
		AssignedAt:   u.now(),
	})
	if err != nil {
		return AssignRoleResult{}, err
	}

	if u.PrincipalCache != nil {
		_ = u.PrincipalCache.Invalidate(ctx, cmd.UserID)
	}

	logger.Info("seller upgrade completed",
		"event", "authz_seller_upgrade_completed",
		"module", "identity-access/authorization-service",
		"layer", "application",
		"user_id", cmd.UserID,
		"assignment_id", assignment.AssignmentID,
	)
	return AssignRoleResult{Assignment: assignment}, nil
}

func (u UpgradeToSellerUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
