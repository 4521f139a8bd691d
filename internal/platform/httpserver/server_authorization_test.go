package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"atelier/contexts/identity-access/authorization-service/domain/entities"
)

func TestAuthzCheckRequiresUserHeader(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/api/authz/v1/check", bytes.NewReader([]byte(`{"resource":"artwork","action":"create"}`)))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestAuthzCheckDeniesUnknownUser(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/api/authz/v1/check", bytes.NewReader([]byte(`{"resource":"artwork","action":"create"}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "user-unknown")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var resp struct {
		Allowed bool   `json:"allowed"`
		Reason  string `json:"reason"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Allowed {
		t.Fatalf("expected deny for unknown user, got allow (reason=%q)", resp.Reason)
	}
}

func TestAuthzCheckAllowsSellerArtworkCreate(t *testing.T) {
	server := newTestServer()
	server.authorization.Store.SeedPrincipal(entities.Principal{
		UserID:   "seller-1",
		IsActive: true,
		Roles:    []entities.RoleKind{entities.RoleSeller},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/authz/v1/check", bytes.NewReader([]byte(`{"resource":"artwork","action":"create"}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "seller-1")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var resp struct {
		Allowed bool `json:"allowed"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Allowed {
		t.Fatalf("expected seller to create artworks, body=%s", rr.Body.String())
	}
}

func TestAuthzAssignRoleRejectsNonAdminCaller(t *testing.T) {
	server := newTestServer()
	server.authorization.Store.SeedPrincipal(entities.Principal{
		UserID:   "buyer-1",
		IsActive: true,
		Roles:    []entities.RoleKind{entities.RoleBuyer},
	})
	server.authorization.Store.SeedPrincipal(entities.Principal{
		UserID:   "buyer-2",
		IsActive: true,
		Roles:    []entities.RoleKind{entities.RoleBuyer},
	})

	req := httptest.NewRequest(
		http.MethodPost,
		"/api/authz/v1/users/buyer-2/roles/assign",
		bytes.NewReader([]byte(`{"role":"seller"}`)),
	)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "buyer-1")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestAuthzUpgradeToSellerHappyPath(t *testing.T) {
	server := newTestServer()
	server.authorization.Store.SeedPrincipal(entities.Principal{
		UserID:   "buyer-1",
		IsActive: true,
		Roles:    []entities.RoleKind{entities.RoleBuyer},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/authz/v1/upgrade-to-seller", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "buyer-1")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var resp struct {
		Assignment struct {
			UserID string `json:"user_id"`
			Role   string `json:"role"`
		} `json:"assignment"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Assignment.Role != "seller" || resp.Assignment.UserID != "buyer-1" {
		t.Fatalf("unexpected assignment: %+v", resp.Assignment)
	}
}
