package valueobjects

import (
	domainerrors "atelier/contexts/catalog/listing-service/domain/errors"

	"github.com/shopspring/decimal"
)

// Rating is a 0..5 score kept to one decimal place.
type Rating struct {
	value decimal.Decimal
}

var maxRating = decimal.NewFromInt(5)

func NewRating(raw float64) (Rating, error) {
	value := decimal.NewFromFloat(raw).Round(1)
	if value.IsNegative() || value.GreaterThan(maxRating) {
		return Rating{}, domainerrors.ErrInvalidRating
	}
	return Rating{value: value}, nil
}

func (r Rating) Value() decimal.Decimal { return r.value }

func (r Rating) String() string { return r.value.StringFixed(1) }
