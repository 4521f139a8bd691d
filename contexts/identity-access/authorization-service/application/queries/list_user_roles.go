package queries

import (
	"context"
	"log/slog"
	"strings"

	"atelier/contexts/identity-access/authorization-service/domain/entities"
	domainerrors "atelier/contexts/identity-access/authorization-service/domain/errors"
	"atelier/contexts/identity-access/authorization-service/ports"
)

// ListUserRolesUseCase returns the persisted role assignments for a user.
type ListUserRolesUseCase struct {
	Roles  ports.RoleRepository
	Logger *slog.Logger
}

func (u ListUserRolesUseCase) Execute(ctx context.Context, userID string) ([]entities.RoleAssignment, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, domainerrors.ErrInvalidUserID
	}
	return u.Roles.ListUserRoles(ctx, strings.TrimSpace(userID))
}
