package authorization

import (
	"log/slog"
	"time"

	httpadapter "atelier/contexts/identity-access/authorization-service/adapters/http"
	"atelier/contexts/identity-access/authorization-service/adapters/memory"
	"atelier/contexts/identity-access/authorization-service/application/commands"
	"atelier/contexts/identity-access/authorization-service/application/queries"
	"atelier/contexts/identity-access/authorization-service/ports"
)

// Module is the authorization-service composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Principals        ports.PrincipalRepository
	Roles             ports.RoleRepository
	Ownership         ports.OwnershipGateway
	PrincipalCache    ports.PrincipalCache
	Clock             ports.Clock
	IDGenerator       ports.IDGenerator
	PrincipalCacheTTL time.Duration
	Logger            *slog.Logger
}

// NewModule wires authorization use-cases and the transport handler using explicit ports.
func NewModule(deps Dependencies) Module {
	checkPermission := queries.CheckPermissionUseCase{
		Principals:        deps.Principals,
		PrincipalCache:    deps.PrincipalCache,
		Clock:             deps.Clock,
		PrincipalCacheTTL: deps.PrincipalCacheTTL,
		Logger:            deps.Logger,
	}
	checkResource := queries.CheckResourceAccessUseCase{
		CheckPermission: checkPermission,
		Ownership:       deps.Ownership,
		Logger:          deps.Logger,
	}
	listRoles := queries.ListUserRolesUseCase{
		Roles:  deps.Roles,
		Logger: deps.Logger,
	}
	assignRole := commands.AssignRoleUseCase{
		Roles:          deps.Roles,
		Principals:     deps.Principals,
		PrincipalCache: deps.PrincipalCache,
		Clock:          deps.Clock,
		IDGenerator:    deps.IDGenerator,
		Logger:         deps.Logger,
	}
	upgradeToSeller := commands.UpgradeToSellerUseCase{
		Roles:          deps.Roles,
		Principals:     deps.Principals,
		PrincipalCache: deps.PrincipalCache,
		Clock:          deps.Clock,
		IDGenerator:    deps.IDGenerator,
		Logger:         deps.Logger,
	}

	handler := httpadapter.Handler{
		CheckPermission:     checkPermission,
		CheckResourceAccess: checkResource,
		ListRoles:           listRoles,
		AssignRole:          assignRole,
		UpgradeToSeller:     upgradeToSeller,
		Logger:              deps.Logger,
	}

	return Module{Handler: handler}
}

// NewInMemoryModule builds a development/testing module with in-memory adapters.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Principals:        store,
		Roles:             store,
		Ownership:         store,
		PrincipalCache:    store,
		Clock:             store,
		IDGenerator:       store,
		PrincipalCacheTTL: 5 * time.Minute,
		Logger:            logger,
	})
	module.Store = store
	return module
}
