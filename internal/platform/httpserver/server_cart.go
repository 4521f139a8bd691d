package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	carterrors "atelier/contexts/commerce/cart-service/domain/errors"
	carthttp "atelier/contexts/commerce/cart-service/transport/http"
)

func (s *Server) handleGetCart(w http.ResponseWriter, r *http.Request) {
	userID := requestUserID(r)
	if userID == "" {
		writeCartError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	resp, err := s.cart.Handler.GetCartHandler(r.Context(), userID)
	if err != nil {
		writeCartDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAddCartItem(w http.ResponseWriter, r *http.Request) {
	userID := requestUserID(r)
	if userID == "" {
		writeCartError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req carthttp.AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCartError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.cart.Handler.AddItemHandler(r.Context(), userID, req)
	if err != nil {
		writeCartDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateCartItemQuantity(w http.ResponseWriter, r *http.Request) {
	userID := requestUserID(r)
	if userID == "" {
		writeCartError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req carthttp.UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCartError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.cart.Handler.UpdateQuantityHandler(r.Context(), userID, r.PathValue("product_id"), req)
	if err != nil {
		writeCartDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRemoveCartItem(w http.ResponseWriter, r *http.Request) {
	userID := requestUserID(r)
	if userID == "" {
		writeCartError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	resp, err := s.cart.Handler.RemoveItemHandler(r.Context(), userID, r.PathValue("product_id"))
	if err != nil {
		writeCartDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleClearCart(w http.ResponseWriter, r *http.Request) {
	userID := requestUserID(r)
	if userID == "" {
		writeCartError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	resp, err := s.cart.Handler.ClearHandler(r.Context(), userID)
	if err != nil {
		writeCartDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCheckoutReadiness(w http.ResponseWriter, r *http.Request) {
	userID := requestUserID(r)
	if userID == "" {
		writeCartError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	resp, err := s.cart.Handler.CheckoutReadinessHandler(r.Context(), userID)
	if err != nil {
		writeCartDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeCartDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, carterrors.ErrInvalidUserID),
		errors.Is(err, carterrors.ErrInvalidProductID),
		errors.Is(err, carterrors.ErrInvalidAmount),
		errors.Is(err, carterrors.ErrInvalidCurrency):
		writeCartError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, carterrors.ErrInvalidQuantity),
		errors.Is(err, carterrors.ErrQuantityCap):
		writeCartError(w, http.StatusUnprocessableEntity, "invalid_quantity", err.Error())
	case errors.Is(err, carterrors.ErrCurrencyMismatch):
		writeCartError(w, http.StatusUnprocessableEntity, "currency_mismatch", err.Error())
	case errors.Is(err, carterrors.ErrItemNotFound),
		errors.Is(err, carterrors.ErrCartNotFound):
		writeCartError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, carterrors.ErrCartEmpty),
		errors.Is(err, carterrors.ErrBelowMinimumOrder),
		errors.Is(err, carterrors.ErrAboveMaximumOrder):
		writeCartError(w, http.StatusConflict, "checkout_not_ready", err.Error())
	default:
		writeCartError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeCartError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, carthttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
