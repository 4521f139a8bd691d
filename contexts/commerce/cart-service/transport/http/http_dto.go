package httptransport

import "time"

// AddItemRequest is the request body for adding a product to the cart.
type AddItemRequest struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Currency  string  `json:"currency"`
	Title     string  `json:"title,omitempty"`
	ImageURL  string  `json:"image_url,omitempty"`
}

// UpdateQuantityRequest replaces one line's quantity; zero removes the line.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type CartItemDTO struct {
	ProductID string  `json:"product_id"`
	Title     string  `json:"title,omitempty"`
	ImageURL  string  `json:"image_url,omitempty"`
	Quantity  int     `json:"quantity"`
	UnitPrice string  `json:"unit_price"`
	Subtotal  string  `json:"subtotal"`
	Currency  string  `json:"currency"`
}

type CartResponse struct {
	CartID      string        `json:"cart_id"`
	UserID      string        `json:"user_id"`
	Items       []CartItemDTO `json:"items"`
	ItemCount   int           `json:"item_count"`
	TotalAmount string        `json:"total_amount"`
	Currency    string        `json:"currency"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type CheckoutReadinessResponse struct {
	Ready  bool   `json:"ready"`
	Reason string `json:"reason,omitempty"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
