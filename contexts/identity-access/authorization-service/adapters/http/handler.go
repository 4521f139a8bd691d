package httpadapter

import (
	"context"
	"log/slog"

	application "atelier/contexts/identity-access/authorization-service/application"
	"atelier/contexts/identity-access/authorization-service/application/commands"
	"atelier/contexts/identity-access/authorization-service/application/queries"
	"atelier/contexts/identity-access/authorization-service/domain/entities"
	httptransport "atelier/contexts/identity-access/authorization-service/transport/http"
)

// Handler maps HTTP DTOs to application commands/queries.
type Handler struct {
	CheckPermission     queries.CheckPermissionUseCase
	CheckResourceAccess queries.CheckResourceAccessUseCase
	ListRoles           queries.ListUserRolesUseCase
	AssignRole          commands.AssignRoleUseCase
	UpgradeToSeller     commands.UpgradeToSellerUseCase
	Logger              *slog.Logger
}

// CheckPermissionHandler evaluates one permission for one user.
func (h Handler) CheckPermissionHandler(
	ctx context.Context,
	userID string,
	request httptransport.CheckPermissionRequest,
) (httptransport.AccessDecisionResponse, error) {
	logger := application.ResolveLogger(h.Logger)
	logger.Debug("http authz check received",
		"event", "authz_http_check_received",
		"module", "identity-access/authorization-service",
		"layer", "transport",
		"user_id", userID,
		"resource", request.Resource,
		"action", request.Action,
	)

	decision, err := h.CheckPermission.Execute(ctx, queries.CheckPermissionQuery{
		UserID:   userID,
		Resource: entities.ResourceKind(request.Resource),
		Action:   entities.ActionKind(request.Action),
	})
	if err != nil {
		return httptransport.AccessDecisionResponse{}, err
	}
	return decisionToResponse(decision), nil
}

// CheckResourceAccessHandler evaluates instance-level access.
func (h Handler) CheckResourceAccessHandler(
	ctx context.Context,
	userID string,
	request httptransport.CheckResourceAccessRequest,
) (httptransport.AccessDecisionResponse, error) {
	decision, err := h.CheckResourceAccess.Execute(ctx, queries.CheckResourceAccessQuery{
		UserID:     userID,
		ResourceID: request.ResourceID,
		Resource:   entities.ResourceKind(request.Resource),
	})
	if err != nil {
		return httptransport.AccessDecisionResponse{}, err
	}
	return decisionToResponse(decision), nil
}

// ListUserRolesHandler returns the persisted assignments for one user.
func (h Handler) ListUserRolesHandler(ctx context.Context, userID string) (httptransport.ListUserRolesResponse, error) {
	assignments, err := h.ListRoles.Execute(ctx, userID)
	if err != nil {
		return httptransport.ListUserRolesResponse{}, err
	}
	items := make([]httptransport.RoleAssignmentDTO, 0, len(assignments))
	for _, assignment := range assignments {
		items = append(items, assignmentToDTO(assignment))
	}
	return httptransport.ListUserRolesResponse{UserID: userID, Roles: items}, nil
}

// AssignRoleHandler applies an admin-gated role change.
func (h Handler) AssignRoleHandler(
	ctx context.Context,
	userID string,
	adminID string,
	request httptransport.AssignRoleRequest,
) (httptransport.AssignRoleResponse, error) {
	result, err := h.AssignRole.Execute(ctx, commands.AssignRoleCommand{
		UserID:     userID,
		Role:       entities.RoleKind(request.Role),
		AssignedBy: adminID,
		Reason:     request.Reason,
	})
	if err != nil {
		return httptransport.AssignRoleResponse{}, err
	}
	return httptransport.AssignRoleResponse{Assignment: assignmentToDTO(result.Assignment)}, nil
}

// UpgradeToSellerHandler applies the self-service buyer to seller path.
func (h Handler) UpgradeToSellerHandler(
	ctx context.Context,
	userID string,
	request httptransport.UpgradeToSellerRequest,
) (httptransport.AssignRoleResponse, error) {
	result, err := h.UpgradeToSeller.Execute(ctx, commands.UpgradeToSellerCommand{
		UserID: userID,
		Reason: request.Reason,
	})
	if err != nil {
		return httptransport.AssignRoleResponse{}, err
	}
	return httptransport.AssignRoleResponse{Assignment: assignmentToDTO(result.Assignment)}, nil
}

func decisionToResponse(decision entities.AccessDecision) httptransport.AccessDecisionResponse {
	return httptransport.AccessDecisionResponse{
		UserID:     decision.UserID,
		Permission: decision.Permission,
		Allowed:    decision.Allowed,
		Reason:     decision.Reason,
		CheckedAt:  decision.CheckedAt,
		CacheHit:   decision.CacheHit,
	}
}

func assignmentToDTO(assignment entities.RoleAssignment) httptransport.RoleAssignmentDTO {
	return httptransport.RoleAssignmentDTO{
		AssignmentID: assignment.AssignmentID,
		UserID:       assignment.UserID,
		Role:         string(assignment.Role),
		AssignedBy:   assignment.AssignedBy,
		Reason:       assignment.Reason,
		AssignedAt:   assignment.AssignedAt,
	}
}
