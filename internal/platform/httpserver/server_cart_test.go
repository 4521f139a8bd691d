package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCartRoutesRequireUserHeader(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/cart/v1", nil)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestCartAddItemRoundTrip(t *testing.T) {
	server := newTestServer()
	body := `{"product_id":"art-1","quantity":2,"unit_price":19.99,"currency":"USD","title":"Blue Nocturne"}`
	req := httptest.NewRequest(http.MethodPost, "/api/cart/v1/items", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "buyer-1")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var resp struct {
		UserID      string `json:"user_id"`
		ItemCount   int    `json:"item_count"`
		TotalAmount string `json:"total_amount"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.UserID != "buyer-1" || resp.ItemCount != 2 {
		t.Fatalf("unexpected cart: %+v", resp)
	}
	if resp.TotalAmount != "39.98" {
		t.Fatalf("expected total 39.98, got %s", resp.TotalAmount)
	}
}

func TestCartAddItemRejectsQuantityAboveCap(t *testing.T) {
	server := newTestServer()
	body := `{"product_id":"art-1","quantity":11,"unit_price":5.00,"currency":"USD"}`
	req := httptest.NewRequest(http.MethodPost, "/api/cart/v1/items", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "buyer-1")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestCheckoutReadinessReportsEmptyCart(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/cart/v1/checkout-readiness", nil)
	req.Header.Set("X-User-Id", "buyer-1")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var resp struct {
		Ready  bool   `json:"ready"`
		Reason string `json:"reason"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Ready || resp.Reason == "" {
		t.Fatalf("expected not-ready with reason, got %+v", resp)
	}
}

func TestCartRemoveMissingItemReturnsNotFound(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodDelete, "/api/cart/v1/items/art-unknown", nil)
	req.Header.Set("X-User-Id", "buyer-1")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}
