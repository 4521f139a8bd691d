package entities

import (
	"sort"
	"strings"
	"time"

	domainerrors "atelier/contexts/commerce/cart-service/domain/errors"
	"atelier/contexts/commerce/cart-service/domain/valueobjects"
)

const (
	// MinQuantityPerItem and MaxQuantityPerItem bound every cart line at all
	// times, including the merged quantity when a product is re-added.
	MinQuantityPerItem = 1
	MaxQuantityPerItem = 10
)

// Checkout gate boundaries, inclusive on both ends.
var (
	MinOrderTotal = mustMoney(1.00)
	MaxOrderTotal = mustMoney(10_000.00)
)

func mustMoney(amount float64) valueobjects.Money {
	money, err := valueobjects.NewMoneyFromFloat(amount, "USD")
	if err != nil {
		panic(err)
	}
	return money
}

// CartItem is one product line inside a cart.
type CartItem struct {
	ProductID string
	Title     string
	ImageURL  string
	Quantity  int
	UnitPrice valueobjects.Money
}

// NewCartItem validates the line invariants at construction; a violated
// quantity or product id fails immediately with no partially-built state.
func NewCartItem(productID string, quantity int, unitPrice valueobjects.Money, title, imageURL string) (CartItem, error) {
	if strings.TrimSpace(productID) == "" {
		return CartItem{}, domainerrors.ErrInvalidProductID
	}
	if quantity < MinQuantityPerItem || quantity > MaxQuantityPerItem {
		return CartItem{}, domainerrors.ErrInvalidQuantity
	}
	return CartItem{
		ProductID: strings.TrimSpace(productID),
		Title:     strings.TrimSpace(title),
		ImageURL:  strings.TrimSpace(imageURL),
		Quantity:  quantity,
		UnitPrice: unitPrice,
	}, nil
}

// Subtotal is unit price times quantity.
func (i CartItem) Subtotal() valueobjects.Money {
	return i.UnitPrice.MulInt(i.Quantity)
}

// ShoppingCart is the aggregate root owning one user's line items. A cart id
// equals the owning user id; the aggregate is the only legal mutation surface
// for its items.
type ShoppingCart struct {
	ID        string
	UserID    string
	items     map[string]CartItem
	UpdatedAt time.Time
	events    []DomainEvent
}

// NewShoppingCart creates an empty cart for a user.
func NewShoppingCart(userID string, now time.Time) (*ShoppingCart, error) {
	trimmed := strings.TrimSpace(userID)
	if trimmed == "" {
		return nil, domainerrors.ErrInvalidUserID
	}
	return &ShoppingCart{
		ID:        trimmed,
		UserID:    trimmed,
		items:     make(map[string]CartItem),
		UpdatedAt: now.UTC(),
	}, nil
}

// RestoreShoppingCart rebuilds a persisted cart without emitting events.
func RestoreShoppingCart(userID string, items []CartItem, updatedAt time.Time) *ShoppingCart {
	byProduct := make(map[string]CartItem, len(items))
	for _, item := range items {
		byProduct[item.ProductID] = item
	}
	return &ShoppingCart{
		ID:        userID,
		UserID:    userID,
		items:     byProduct,
		UpdatedAt: updatedAt.UTC(),
	}
}

// AddItem upserts a product line. Re-adding merges quantities and validates
// the merged total against the per-item cap as a single check: exceeding it
// fails the whole operation and leaves the existing line untouched.
func (c *ShoppingCart) AddItem(item CartItem, now time.Time) error {
	existing, present := c.items[item.ProductID]
	merged := item
	if present {
		if existing.UnitPrice.Currency() != item.UnitPrice.Currency() {
			return domainerrors.ErrCurrencyMismatch
		}
		total := existing.Quantity + item.Quantity
		if total > MaxQuantityPerItem {
			return domainerrors.ErrQuantityCap
		}
		merged.Quantity = total
	} else if err := c.checkCurrency(item.UnitPrice); err != nil {
		return err
	}

	c.items[item.ProductID] = merged
	c.touch(now)
	c.record(CartItemAdded{
		CartID:        c.ID,
		ProductID:     item.ProductID,
		QuantityAdded: item.Quantity,
	})
	return nil
}

// UpdateItemQuantity replaces a line's quantity. A quantity of zero or less
// means "remove" and is delegated, not rejected. No event is emitted for a
// plain quantity edit; only add/remove/clear are event-worthy.
func (c *ShoppingCart) UpdateItemQuantity(productID string, quantity int, now time.Time) error {
	item, present := c.items[productID]
	if !present {
		return domainerrors.ErrItemNotFound
	}
	if quantity <= 0 {
		return c.RemoveItem(productID, now)
	}
	if quantity > MaxQuantityPerItem {
		return domainerrors.ErrInvalidQuantity
	}

	item.Quantity = quantity
	c.items[productID] = item
	c.touch(now)
	return nil
}

// RemoveItem deletes a line; removing an absent product is a caller logic
// error, distinct from a validation failure.
func (c *ShoppingCart) RemoveItem(productID string, now time.Time) error {
	if _, present := c.items[productID]; !present {
		return domainerrors.ErrItemNotFound
	}
	delete(c.items, productID)
	c.touch(now)
	c.record(CartItemRemoved{CartID: c.ID, ProductID: productID})
	return nil
}

// Clear drops all lines. Clearing an empty cart is a no-op and emits nothing.
func (c *ShoppingCart) Clear(now time.Time) {
	if len(c.items) == 0 {
		return
	}
	c.items = make(map[string]CartItem)
	c.touch(now)
	c.record(CartCleared{CartID: c.ID})
}

// ValidateForCheckout is a read-only precondition gate for the external
// checkout process. It never mutates state and may be called repeatedly.
func (c *ShoppingCart) ValidateForCheckout() error {
	if len(c.items) == 0 {
		return domainerrors.ErrCartEmpty
	}
	total, err := c.TotalAmount()
	if err != nil {
		return err
	}
	if total.LessThan(MinOrderTotal) {
		return domainerrors.ErrBelowMinimumOrder
	}
	if total.GreaterThan(MaxOrderTotal) {
		return domainerrors.ErrAboveMaximumOrder
	}
	return nil
}

// TotalAmount is recomputed from current lines on each read so it can never
// drift from the items.
func (c *ShoppingCart) TotalAmount() (valueobjects.Money, error) {
	items := c.Items()
	if len(items) == 0 {
		return valueobjects.Zero("USD"), nil
	}
	total := valueobjects.Zero(items[0].UnitPrice.Currency())
	for _, item := range items {
		sum, err := total.Add(item.Subtotal())
		if err != nil {
			return valueobjects.Money{}, err
		}
		total = sum
	}
	return total, nil
}

// ItemCount is the total unit count across lines, recomputed on each read.
func (c *ShoppingCart) ItemCount() int {
	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// Item returns one line by product id.
func (c *ShoppingCart) Item(productID string) (CartItem, bool) {
	item, ok := c.items[productID]
	return item, ok
}

// Items returns the lines ordered by product id.
func (c *ShoppingCart) Items() []CartItem {
	items := make([]CartItem, 0, len(c.items))
	for _, item := range c.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].ProductID < items[j].ProductID
	})
	return items
}

func (c *ShoppingCart) IsEmpty() bool { return len(c.items) == 0 }

// PullEvents drains the queued events in emission order and clears the queue.
func (c *ShoppingCart) PullEvents() []DomainEvent {
	events := c.events
	c.events = nil
	return events
}

func (c *ShoppingCart) checkCurrency(price valueobjects.Money) error {
	for _, item := range c.items {
		if item.UnitPrice.Currency() != price.Currency() {
			return domainerrors.ErrCurrencyMismatch
		}
	}
	return nil
}

func (c *ShoppingCart) touch(now time.Time) {
	c.UpdatedAt = now.UTC()
}

func (c *ShoppingCart) record(event DomainEvent) {
	c.events = append(c.events, event)
}
