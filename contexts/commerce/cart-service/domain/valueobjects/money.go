package valueobjects

import (
	"strings"

	domainerrors "atelier/contexts/commerce/cart-service/domain/errors"

	"github.com/shopspring/decimal"
)

// Money is an immutable, currency-tagged amount. The amount is rounded
// half-up to 2 decimal places at construction and every operation returns a
// new value; arithmetic between different currencies fails.
type Money struct {
	amount   decimal.Decimal
	currency string
}

// NewMoney validates and normalizes an amount/currency pair. 19.995 rounds
// to 20.00.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	code := strings.ToUpper(strings.TrimSpace(currency))
	if len(code) != 3 {
		return Money{}, domainerrors.ErrInvalidCurrency
	}
	rounded := amount.Round(2)
	if rounded.IsNegative() {
		return Money{}, domainerrors.ErrInvalidAmount
	}
	return Money{amount: rounded, currency: code}, nil
}

// NewMoneyFromFloat is a convenience constructor for transport boundaries.
func NewMoneyFromFloat(amount float64, currency string) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount), currency)
}

// Zero returns the zero amount in the given currency.
func Zero(currency string) Money {
	money, err := NewMoney(decimal.Zero, currency)
	if err != nil {
		return Money{amount: decimal.Zero, currency: "USD"}
	}
	return money
}

func (m Money) Amount() decimal.Decimal { return m.amount }
func (m Money) Currency() string        { return m.currency }
func (m Money) IsZero() bool            { return m.amount.IsZero() }

func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, domainerrors.ErrCurrencyMismatch
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

// MulInt scales the amount by a unit count, re-rounding to 2 decimal places.
func (m Money) MulInt(factor int) Money {
	return Money{
		amount:   m.amount.Mul(decimal.NewFromInt(int64(factor))).Round(2),
		currency: m.currency,
	}
}

func (m Money) Equals(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// LessThan compares amounts; it is only meaningful for same-currency values.
func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

func (m Money) String() string {
	return m.amount.StringFixed(2) + " " + m.currency
}
