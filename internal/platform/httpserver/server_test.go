package httpserver

import (
	"log/slog"

	listing "atelier/contexts/catalog/listing-service"
	cart "atelier/contexts/commerce/cart-service"
	authorization "atelier/contexts/identity-access/authorization-service"
)

func newTestServer() *Server {
	logger := slog.Default()
	return New(
		authorization.NewInMemoryModule(logger),
		cart.NewInMemoryModule(logger),
		listing.NewInMemoryModule(logger),
		logger,
		":0",
	)
}
