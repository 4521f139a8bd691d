package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	listing "atelier/contexts/catalog/listing-service"
	cart "atelier/contexts/commerce/cart-service"
	authorization "atelier/contexts/identity-access/authorization-service"
)

type Server struct {
	mux           *http.ServeMux
	logger        *slog.Logger
	addr          string
	authorization authorization.Module
	cart          cart.Module
	listing       listing.Module
}

func New(
	authorizationModule authorization.Module,
	cartModule cart.Module,
	listingModule listing.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:           http.NewServeMux(),
		logger:        logger,
		addr:          addr,
		authorization: authorizationModule,
		cart:          cartModule,
		listing:       listingModule,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the mux for httptest-based route tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("POST /api/authz/v1/check", s.handleAuthzCheck)
	s.mux.HandleFunc("POST /api/authz/v1/check-resource", s.handleAuthzCheckResource)
	s.mux.HandleFunc("GET /api/authz/v1/users/{user_id}/roles", s.handleAuthzListUserRoles)
	s.mux.HandleFunc("POST /api/authz/v1/users/{user_id}/roles/assign", s.handleAuthzAssignRole)
	s.mux.HandleFunc("POST /api/authz/v1/upgrade-to-seller", s.handleAuthzUpgradeToSeller)

	s.mux.HandleFunc("GET /api/cart/v1", s.handleGetCart)
	s.mux.HandleFunc("POST /api/cart/v1/items", s.handleAddCartItem)
	s.mux.HandleFunc("PATCH /api/cart/v1/items/{product_id}", s.handleUpdateCartItemQuantity)
	s.mux.HandleFunc("DELETE /api/cart/v1/items/{product_id}", s.handleRemoveCartItem)
	s.mux.HandleFunc("DELETE /api/cart/v1", s.handleClearCart)
	s.mux.HandleFunc("GET /api/cart/v1/checkout-readiness", s.handleCheckoutReadiness)

	s.mux.HandleFunc("POST /api/catalog/v1/artists", s.handleRegisterArtist)
	s.mux.HandleFunc("GET /api/catalog/v1/artists/{artist_id}", s.handleGetArtist)
	s.mux.HandleFunc("PATCH /api/catalog/v1/artists/{artist_id}", s.handleUpdateArtist)
	s.mux.HandleFunc("POST /api/catalog/v1/artists/{artist_id}/ratings", s.handleRateArtist)
	s.mux.HandleFunc("POST /api/catalog/v1/artists/{artist_id}/artworks", s.handleCreateArtwork)
	s.mux.HandleFunc("GET /api/catalog/v1/artists/{artist_id}/artworks", s.handleListArtworks)
	s.mux.HandleFunc("GET /api/catalog/v1/artworks/{artwork_id}", s.handleGetArtwork)
	s.mux.HandleFunc("PATCH /api/catalog/v1/artworks/{artwork_id}", s.handleUpdateArtwork)
	s.mux.HandleFunc("PUT /api/catalog/v1/artworks/{artwork_id}/price", s.handleChangeArtworkPrice)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func requestUserID(r *http.Request) string {
	if fromHeader := strings.TrimSpace(r.Header.Get("X-User-Id")); fromHeader != "" {
		return fromHeader
	}
	return strings.TrimSpace(r.Header.Get("X-Subject-Id"))
}
