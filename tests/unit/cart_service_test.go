package unit

import (
	"context"
	"errors"
	"testing"

	cart "atelier/contexts/commerce/cart-service"
	domainerrors "atelier/contexts/commerce/cart-service/domain/errors"
	httptransport "atelier/contexts/commerce/cart-service/transport/http"
)

func TestCartLifecycleThroughModule(t *testing.T) {
	module := cart.NewInMemoryModule(nil)
	ctx := context.Background()

	added, err := module.Handler.AddItemHandler(ctx, "buyer-1", httptransport.AddItemRequest{
		ProductID: "art-1",
		Quantity:  2,
		UnitPrice: 19.99,
		Currency:  "usd",
		Title:     "Harbor Study",
	})
	if err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if added.TotalAmount != "39.98" || added.Currency != "USD" {
		t.Fatalf("unexpected cart totals: %+v", added)
	}

	readiness, err := module.Handler.CheckoutReadinessHandler(ctx, "buyer-1")
	if err != nil {
		t.Fatalf("readiness failed: %v", err)
	}
	if !readiness.Ready {
		t.Fatalf("cart within order limits must be ready: %+v", readiness)
	}

	updated, err := module.Handler.UpdateQuantityHandler(ctx, "buyer-1", "art-1", httptransport.UpdateQuantityRequest{Quantity: 0})
	if err != nil {
		t.Fatalf("quantity zero removal failed: %v", err)
	}
	if updated.ItemCount != 0 {
		t.Fatalf("cart should be empty after removal: %+v", updated)
	}

	readiness, err = module.Handler.CheckoutReadinessHandler(ctx, "buyer-1")
	if err != nil {
		t.Fatalf("readiness on empty cart failed: %v", err)
	}
	if readiness.Ready || readiness.Reason == "" {
		t.Fatalf("empty cart must not be ready: %+v", readiness)
	}
}

func TestCartCheckoutGateBelowMinimum(t *testing.T) {
	module := cart.NewInMemoryModule(nil)
	ctx := context.Background()

	if _, err := module.Handler.AddItemHandler(ctx, "buyer-1", httptransport.AddItemRequest{
		ProductID: "sticker-1",
		Quantity:  1,
		UnitPrice: 0.50,
		Currency:  "USD",
	}); err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	readiness, err := module.Handler.CheckoutReadinessHandler(ctx, "buyer-1")
	if err != nil {
		t.Fatalf("readiness failed: %v", err)
	}
	if readiness.Ready {
		t.Fatal("a 0.50 USD cart is under the order minimum")
	}
	if readiness.Reason != domainerrors.ErrBelowMinimumOrder.Error() {
		t.Fatalf("unexpected reason: %q", readiness.Reason)
	}
}

func TestCartQuantityCapThroughModule(t *testing.T) {
	module := cart.NewInMemoryModule(nil)
	ctx := context.Background()

	if _, err := module.Handler.AddItemHandler(ctx, "buyer-1", httptransport.AddItemRequest{
		ProductID: "art-1",
		Quantity:  8,
		UnitPrice: 10,
		Currency:  "USD",
	}); err != nil {
		t.Fatalf("seed add failed: %v", err)
	}

	_, err := module.Handler.AddItemHandler(ctx, "buyer-1", httptransport.AddItemRequest{
		ProductID: "art-1",
		Quantity:  3,
		UnitPrice: 10,
		Currency:  "USD",
	})
	if !errors.Is(err, domainerrors.ErrQuantityCap) {
		t.Fatalf("got %v, want ErrQuantityCap", err)
	}

	current, err := module.Handler.GetCartHandler(ctx, "buyer-1")
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if current.ItemCount != 8 {
		t.Fatalf("rejected merge must leave the line untouched: %+v", current)
	}
}
