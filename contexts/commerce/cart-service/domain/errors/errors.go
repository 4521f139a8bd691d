package errors

import "errors"

var (
	ErrInvalidUserID    = errors.New("invalid user id")
	ErrInvalidProductID = errors.New("invalid product id")
	ErrInvalidQuantity  = errors.New("quantity must be between 1 and 10")
	ErrQuantityCap      = errors.New("quantity exceeds the 10 unit limit per product")
	ErrItemNotFound     = errors.New("item not found in cart")
	ErrCartNotFound     = errors.New("cart not found")

	ErrInvalidAmount    = errors.New("amount must be non-negative")
	ErrInvalidCurrency  = errors.New("invalid currency code")
	ErrCurrencyMismatch = errors.New("currency mismatch")

	ErrCartEmpty         = errors.New("cart is empty")
	ErrBelowMinimumOrder = errors.New("cart total is below the minimum order amount")
	ErrAboveMaximumOrder = errors.New("cart total is above the maximum order amount")
)
