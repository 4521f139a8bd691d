package entities

// DomainEvent is an immutable fact recorded by the cart aggregate. Events
// queue on the aggregate in emission order and are drained by the application
// layer after the state change that produced them is persisted.
type DomainEvent interface {
	EventType() string
}

// CartItemAdded records a successful add; QuantityAdded is the increment
// applied by that call, not the merged line total.
type CartItemAdded struct {
	CartID        string `json:"cart_id"`
	ProductID     string `json:"product_id"`
	QuantityAdded int    `json:"quantity_added"`
}

func (CartItemAdded) EventType() string { return "cart.item_added" }

// CartItemRemoved records a line removal, whether requested directly or
// coalesced from a zero-quantity update.
type CartItemRemoved struct {
	CartID    string `json:"cart_id"`
	ProductID string `json:"product_id"`
}

func (CartItemRemoved) EventType() string { return "cart.item_removed" }

// CartCleared records a full cart wipe. Clearing an already empty cart emits
// nothing.
type CartCleared struct {
	CartID string `json:"cart_id"`
}

func (CartCleared) EventType() string { return "cart.cleared" }
