package cart

import (
	"log/slog"

	httpadapter "atelier/contexts/commerce/cart-service/adapters/http"
	"atelier/contexts/commerce/cart-service/adapters/memory"
	application "atelier/contexts/commerce/cart-service/application"
	"atelier/contexts/commerce/cart-service/ports"
)

// Module is the cart-service composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Service *application.Service
	Store   *memory.Store
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Carts  ports.Repository
	Clock  ports.Clock
	Logger *slog.Logger
}

// NewModule wires the cart service and transport handler using explicit ports.
func NewModule(deps Dependencies) Module {
	service := application.NewService(deps.Carts, deps.Clock, deps.Logger)
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
		Service: service,
	}
}

// NewInMemoryModule builds a development/testing module with in-memory adapters.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Carts:  store,
		Clock:  store,
		Logger: logger,
	})
	module.Store = store
	return module
}
