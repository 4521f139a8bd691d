package httpadapter

import (
	"context"
	"errors"
	"log/slog"

	application "atelier/contexts/commerce/cart-service/application"
	"atelier/contexts/commerce/cart-service/domain/entities"
	domainerrors "atelier/contexts/commerce/cart-service/domain/errors"
	httptransport "atelier/contexts/commerce/cart-service/transport/http"
)

// Handler maps HTTP DTOs to cart application commands.
type Handler struct {
	Service *application.Service
	Logger  *slog.Logger
}

func (h Handler) AddItemHandler(
	ctx context.Context,
	userID string,
	request httptransport.AddItemRequest,
) (httptransport.CartResponse, error) {
	cart, err := h.Service.AddItem(ctx, userID, application.AddItemInput{
		ProductID: request.ProductID,
		Quantity:  request.Quantity,
		UnitPrice: request.UnitPrice,
		Currency:  request.Currency,
		Title:     request.Title,
		ImageURL:  request.ImageURL,
	})
	if err != nil {
		return httptransport.CartResponse{}, err
	}
	return cartToResponse(cart)
}

func (h Handler) UpdateQuantityHandler(
	ctx context.Context,
	userID string,
	productID string,
	request httptransport.UpdateQuantityRequest,
) (httptransport.CartResponse, error) {
	cart, err := h.Service.UpdateItemQuantity(ctx, userID, productID, request.Quantity)
	if err != nil {
		return httptransport.CartResponse{}, err
	}
	return cartToResponse(cart)
}

func (h Handler) RemoveItemHandler(ctx context.Context, userID, productID string) (httptransport.CartResponse, error) {
	cart, err := h.Service.RemoveItem(ctx, userID, productID)
	if err != nil {
		return httptransport.CartResponse{}, err
	}
	return cartToResponse(cart)
}

func (h Handler) ClearHandler(ctx context.Context, userID string) (httptransport.CartResponse, error) {
	cart, err := h.Service.Clear(ctx, userID)
	if err != nil {
		return httptransport.CartResponse{}, err
	}
	return cartToResponse(cart)
}

func (h Handler) GetCartHandler(ctx context.Context, userID string) (httptransport.CartResponse, error) {
	cart, err := h.Service.GetCart(ctx, userID)
	if err != nil {
		return httptransport.CartResponse{}, err
	}
	return cartToResponse(cart)
}

// CheckoutReadinessHandler surfaces the gate verdict with the exact reason so
// the caller can render the cause.
func (h Handler) CheckoutReadinessHandler(ctx context.Context, userID string) (httptransport.CheckoutReadinessResponse, error) {
	err := h.Service.ValidateForCheckout(ctx, userID)
	if err == nil {
		return httptransport.CheckoutReadinessResponse{Ready: true}, nil
	}
	switch {
	case errors.Is(err, domainerrors.ErrCartEmpty),
		errors.Is(err, domainerrors.ErrBelowMinimumOrder),
		errors.Is(err, domainerrors.ErrAboveMaximumOrder):
		return httptransport.CheckoutReadinessResponse{Ready: false, Reason: err.Error()}, nil
	default:
		return httptransport.CheckoutReadinessResponse{}, err
	}
}

func cartToResponse(cart *entities.ShoppingCart) (httptransport.CartResponse, error) {
	total, err := cart.TotalAmount()
	if err != nil {
		return httptransport.CartResponse{}, err
	}

	items := cart.Items()
	dtos := make([]httptransport.CartItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, httptransport.CartItemDTO{
			ProductID: item.ProductID,
			Title:     item.Title,
			ImageURL:  item.ImageURL,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.Amount().StringFixed(2),
			Subtotal:  item.Subtotal().Amount().StringFixed(2),
			Currency:  item.UnitPrice.Currency(),
		})
	}
	return httptransport.CartResponse{
		CartID:      cart.ID,
		UserID:      cart.UserID,
		Items:       dtos,
		ItemCount:   cart.ItemCount(),
		TotalAmount: total.Amount().StringFixed(2),
		Currency:    total.Currency(),
		UpdatedAt:   cart.UpdatedAt,
	}, nil
}
