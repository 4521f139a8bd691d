package valueobjects

import (
	"testing"

	domainerrors "atelier/contexts/commerce/cart-service/domain/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyNormalizesCurrencyCode(t *testing.T) {
	money, err := NewMoneyFromFloat(10.50, " usd ")
	require.NoError(t, err)
	assert.Equal(t, "USD", money.Currency())
	assert.Equal(t, "10.50 USD", money.String())
}

func TestNewMoneyRoundsHalfUp(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"19.995", "20.00"},
		{"19.994", "19.99"},
		{"0.005", "0.01"},
		{"2.675", "2.68"},
	}
	for _, tc := range cases {
		amount, err := decimal.NewFromString(tc.raw)
		require.NoError(t, err)
		money, err := NewMoney(amount, "USD")
		require.NoError(t, err, tc.raw)
		assert.Equal(t, tc.want, money.Amount().StringFixed(2), "rounding %s", tc.raw)
	}
}

func TestNewMoneyRejectsBadInput(t *testing.T) {
	_, err := NewMoneyFromFloat(-0.01, "USD")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidAmount)

	_, err = NewMoneyFromFloat(1.00, "US")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCurrency)

	_, err = NewMoneyFromFloat(1.00, "")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCurrency)
}

func TestNewMoneyAcceptsNegativeThatRoundsToZero(t *testing.T) {
	amount, err := decimal.NewFromString("-0.001")
	require.NoError(t, err)
	money, err := NewMoney(amount, "USD")
	require.NoError(t, err)
	assert.True(t, money.IsZero())
}

func TestMoneyAdd(t *testing.T) {
	a, err := NewMoneyFromFloat(1.10, "USD")
	require.NoError(t, err)
	b, err := NewMoneyFromFloat(2.15, "USD")
	require.NoError(t, err)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, "3.25 USD", sum.String())
	assert.Equal(t, "1.10 USD", a.String(), "operands stay unchanged")
}

func TestMoneyAddRejectsCurrencyMismatch(t *testing.T) {
	usd, err := NewMoneyFromFloat(1.00, "USD")
	require.NoError(t, err)
	eur, err := NewMoneyFromFloat(1.00, "EUR")
	require.NoError(t, err)

	_, err = usd.Add(eur)
	assert.ErrorIs(t, err, domainerrors.ErrCurrencyMismatch)
}

func TestMoneyMulInt(t *testing.T) {
	price, err := NewMoneyFromFloat(19.99, "USD")
	require.NoError(t, err)
	assert.Equal(t, "199.90 USD", price.MulInt(10).String())
	assert.Equal(t, "0.00 USD", price.MulInt(0).String())
}

func TestMoneyComparisons(t *testing.T) {
	low, err := NewMoneyFromFloat(0.99, "USD")
	require.NoError(t, err)
	high, err := NewMoneyFromFloat(1.00, "USD")
	require.NoError(t, err)
	same, err := NewMoneyFromFloat(1.00, "USD")
	require.NoError(t, err)

	assert.True(t, low.LessThan(high))
	assert.True(t, high.GreaterThan(low))
	assert.True(t, high.Equals(same))
	assert.False(t, high.LessThan(same))
	assert.False(t, high.GreaterThan(same))
}

func TestZero(t *testing.T) {
	zero := Zero("EUR")
	assert.True(t, zero.IsZero())
	assert.Equal(t, "EUR", zero.Currency())
}
