package application

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"atelier/contexts/commerce/cart-service/domain/entities"
	domainerrors "atelier/contexts/commerce/cart-service/domain/errors"
	"atelier/contexts/commerce/cart-service/domain/valueobjects"
	"atelier/contexts/commerce/cart-service/ports"
)

// AddItemInput is the transport-agnostic add command.
type AddItemInput struct {
	ProductID string
	Quantity  int
	UnitPrice float64
	Currency  string
	Title     string
	ImageURL  string
}

// Service orchestrates cart commands: load, mutate through the aggregate,
// save together with the drained events. A per-user mutex serializes writes so
// at most one mutation per cart is in flight at a time; the aggregate itself
// carries no locking.
type Service struct {
	Carts  ports.Repository
	Clock  ports.Clock
	Logger *slog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewService(carts ports.Repository, clock ports.Clock, logger *slog.Logger) *Service {
	return &Service{
		Carts:  carts,
		Clock:  clock,
		Logger: logger,
		locks:  make(map[string]*sync.Mutex),
	}
}

// AddItem validates and applies an add command, creating the cart on first use.
func (s *Service) AddItem(ctx context.Context, userID string, input AddItemInput) (*entities.ShoppingCart, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, domainerrors.ErrInvalidUserID
	}

	unitPrice, err := valueobjects.NewMoneyFromFloat(input.UnitPrice, input.Currency)
	if err != nil {
		return nil, err
	}
	item, err := entities.NewCartItem(input.ProductID, input.Quantity, unitPrice, input.Title, input.ImageURL)
	if err != nil {
		return nil, err
	}

	return s.mutate(ctx, userID, true, "cart_add_item", func(cart *entities.ShoppingCart, now time.Time) error {
		return cart.AddItem(item, now)
	})
}

// UpdateItemQuantity replaces a line's quantity; zero or less removes the line.
func (s *Service) UpdateItemQuantity(ctx context.Context, userID, productID string, quantity int) (*entities.ShoppingCart, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, domainerrors.ErrInvalidProductID
	}
	return s.mutate(ctx, userID, false, "cart_update_quantity", func(cart *entities.ShoppingCart, now time.Time) error {
		return cart.UpdateItemQuantity(strings.TrimSpace(productID), quantity, now)
	})
}

// RemoveItem removes one line.
func (s *Service) RemoveItem(ctx context.Context, userID, productID string) (*entities.ShoppingCart, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, domainerrors.ErrInvalidProductID
	}
	return s.mutate(ctx, userID, false, "cart_remove_item", func(cart *entities.ShoppingCart, now time.Time) error {
		return cart.RemoveItem(strings.TrimSpace(productID), now)
	})
}

// Clear drops every line; clearing an absent or empty cart succeeds quietly.
func (s *Service) Clear(ctx context.Context, userID string) (*entities.ShoppingCart, error) {
	return s.mutate(ctx, userID, true, "cart_clear", func(cart *entities.ShoppingCart, now time.Time) error {
		cart.Clear(now)
		return nil
	})
}

// GetCart returns the current cart; an absent cart reads as a fresh empty one.
func (s *Service) GetCart(ctx context.Context, userID string) (*entities.ShoppingCart, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, domainerrors.ErrInvalidUserID
	}
	cart, found, err := s.Carts.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !found {
		return entities.NewShoppingCart(userID, s.now())
	}
	return cart, nil
}

// ValidateForCheckout runs the read-only checkout gate against current state.
func (s *Service) ValidateForCheckout(ctx context.Context, userID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return domainerrors.ErrInvalidUserID
	}
	cart, found, err := s.Carts.Load(ctx, userID)
	if err != nil {
		return err
	}
	if !found {
		return domainerrors.ErrCartEmpty
	}
	return cart.ValidateForCheckout()
}

func (s *Service) mutate(
	ctx context.Context,
	userID string,
	createIfAbsent bool,
	operation string,
	apply func(cart *entities.ShoppingCart, now time.Time) error,
) (*entities.ShoppingCart, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, domainerrors.ErrInvalidUserID
	}

	lock := s.cartLock(userID)
	lock.Lock()
	defer lock.Unlock()

	logger := ResolveLogger(s.Logger)
	now := s.now()

	cart, found, err := s.Carts.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !found {
		if !createIfAbsent {
			return nil, domainerrors.ErrCartNotFound
		}
		cart, err = entities.NewShoppingCart(userID, now)
		if err != nil {
			return nil, err
		}
	}

	if err := apply(cart, now); err != nil {
		logger.Warn("cart mutation rejected",
			"event", operation+"_rejected",
			"module", "commerce/cart-service",
			"layer", "application",
			"user_id", userID,
			"error", err.Error(),
		)
		return nil, err
	}

	events := cart.PullEvents()
	if err := s.Carts.Save(ctx, cart, events); err != nil {
		logger.Error("cart save failed",
			"event", operation+"_save_failed",
			"module", "commerce/cart-service",
			"layer", "application",
			"user_id", userID,
			"error", err.Error(),
		)
		return nil, err
	}

	logger.Info("cart mutation applied",
		"event", operation+"_applied",
		"module", "commerce/cart-service",
		"layer", "application",
		"user_id", userID,
		"item_count", cart.ItemCount(),
		"events", len(events),
	)
	return cart, nil
}

func (s *Service) cartLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[userID] = lock
	}
	return lock
}

func (s *Service) now() time.Time {
	if s.Clock != nil {
		return s.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
