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

// AssignRoleCommand contains transport-agnostic input for a role change.
type AssignRoleCommand struct {
	UserID     string
	Role       entities.RoleKind
	AssignedBy string
	Reason     string
}

// AssignRoleResult captures the persisted assignment.
type AssignRoleResult struct {
	Assignment entities.RoleAssignment `json:"assignment"`
}

// AssignRoleUseCase coordinates the admin-gated role change workflow:
// assigner must hold admin, the (current, target) pair must be a legal
// transition, and the principal cache entry is dropped after the write.
type AssignRoleUseCase struct {
	Roles          ports.RoleRepository
	Principals     ports.PrincipalRepository
	PrincipalCache ports.PrincipalCache
	Clock          ports.Clock
	IDGenerator    ports.IDGenerator
	Logger         *slog.Logger
}

func (u AssignRoleUseCase) Execute(ctx context.Context, cmd AssignRoleCommand) (AssignRoleResult, error) {
	logger := application.ResolveLogger(u.Logger)
	logger.Info("assign role started",
		"event", "authz_assign_role_started",
		"module", "identity-access/authorization-service",
		"layer", "application",
		"user_id", cmd.UserID,
		"assigned_by", cmd.AssignedBy,
		"role", string(cmd.Role),
	)

	if strings.TrimSpace(cmd.UserID) == "" || strings.TrimSpace(cmd.AssignedBy) == "" {
		return AssignRoleResult{}, domainerrors.ErrInvalidUserID
	}
	if _, ok := entities.ParseRole(string(cmd.Role)); !ok {
		return AssignRoleResult{}, domainerrors.ErrInvalidRole
	}

	assigner, err := u.Principals.FindPrincipal(ctx, cmd.AssignedBy)
	if err != nil {
		return AssignRoleResult{}, err
	}
	if !services.CanAssignRole(assigner, cmd.Role) {
		logger.Warn("assign role forbidden",
			"event", "authz_assign_role_forbidden",
			"module", "identity-access/authorization-service",
			"layer", "application",
			"user_id", cmd.UserID,
			"assigned_by", cmd.AssignedBy,
			"role", string(cmd.Role),
		)
		return AssignRoleResult{}, domainerrors.ErrForbidden
	}

	target, err := u.Principals.FindPrincipal(ctx, cmd.UserID)
	if err != nil {
		return AssignRoleResult{}, err
	}
	if !transitionAllowed(target.Roles, cmd.Role) {
		return AssignRoleResult{}, domainerrors.ErrInvalidRoleTransition
	}

	assignment, err := u.persist(ctx, cmd)
	if err != nil {
		logger.Error("assign role persist failed",
			"event", "authz_assign_role_persist_failed",
			"module", "identity-access/authorization-service",
			"layer", "application",
			"user_id", cmd.UserID,
			"role", string(cmd.Role),
			"error", err.Error(),
		)
		return AssignRoleResult{}, err
	}

	if u.PrincipalCache != nil {
		_ = u.PrincipalCache.Invalidate(ctx, cmd.UserID)
	}

	logger.Info("assign role completed",
		"event", "authz_assign_role_completed",
		"module", "identity-access/authorization-service",
		"layer", "application",
		"user_id", cmd.UserID,
		"role", string(cmd.Role),
		"assignment_id", assignment.AssignmentID,
	)
	return AssignRoleResult{Assignment: assignment}, nil
}

func (u AssignRoleUseCase) persist(ctx context.Context, cmd AssignRoleCommand) (entities.RoleAssignment, error) {
	assignmentID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.RoleAssignment{}, err
	}
	outboxID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.RoleAssignment{}, err
	}
	result, err := u.Roles.SaveRoleAssignment(ctx, ports.AssignRoleInput{
		AssignmentID: assignmentID,
		OutboxID:     outboxID,
		UserID:       strings.TrimSpace(cmd.UserID),
		Role:         cmd.Role,
		AssignedBy:   strings.TrimSpace(cmd.AssignedBy),
		Reason:       strings.TrimSpace(cmd.Reason),
		AssignedAt:   u.now(),
	})
	if err != nil {
		return entities.RoleAssignment{}, err
	}
	return result, nil
}

// transitionAllowed checks the target's current roles against the fixed
// transition table; a user with no recorded role yet may be seated as buyer.
func transitionAllowed(current []entities.RoleKind, to entities.RoleKind) bool {
	if len(current) == 0 {
		return to == entities.RoleBuyer
	}
	for _, from := range current {
		if services.ValidateRoleTransition(from, to) {
			return true
		}
	}
	return false
}

func (u AssignRoleUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
