package entities

import (
	"strings"
	"time"

	domainerrors "atelier/contexts/catalog/listing-service/domain/errors"

	"github.com/shopspring/decimal"
)

type ArtworkStatus string

const (
	ArtworkStatusDraft    ArtworkStatus = "draft"
	ArtworkStatusListed   ArtworkStatus = "listed"
	ArtworkStatusSold     ArtworkStatus = "sold"
	ArtworkStatusArchived ArtworkStatus = "archived"
)

// Artwork is an immutable listing. As with Artist, every update is a pure
// (value, patch) -> value function.
type Artwork struct {
	ArtworkID   string
	ArtistID    string
	Title       string
	Description string
	PriceAmount decimal.Decimal
	Currency    string
	Status      ArtworkStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewArtwork(artworkID, artistID, title, description string, price decimal.Decimal, currency string, now time.Time) (Artwork, error) {
	if strings.TrimSpace(artworkID) == "" || strings.TrimSpace(artistID) == "" {
		return Artwork{}, domainerrors.ErrInvalidArtwork
	}
	if strings.TrimSpace(title) == "" || price.IsNegative() || len(strings.TrimSpace(currency)) != 3 {
		return Artwork{}, domainerrors.ErrInvalidArtwork
	}
	return Artwork{
		ArtworkID:   strings.TrimSpace(artworkID),
		ArtistID:    strings.TrimSpace(artistID),
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		PriceAmount: price.Round(2),
		Currency:    strings.ToUpper(strings.TrimSpace(currency)),
		Status:      ArtworkStatusDraft,
		CreatedAt:   now.UTC(),
		UpdatedAt:   now.UTC(),
	}, nil
}

// WithDetails returns a copy with replaced title/description.
func (a Artwork) WithDetails(title, description string, now time.Time) (Artwork, error) {
	if strings.TrimSpace(title) == "" {
		return Artwork{}, domainerrors.ErrInvalidArtwork
	}
	a.Title = strings.TrimSpace(title)
	a.Description = strings.TrimSpace(description)
	a.UpdatedAt = now.UTC()
	return a, nil
}

// WithPrice returns a copy with a replaced, re-rounded price.
func (a Artwork) WithPrice(price decimal.Decimal, now time.Time) (Artwork, error) {
	if price.IsNegative() {
		return Artwork{}, domainerrors.ErrInvalidArtwork
	}
	a.PriceAmount = price.Round(2)
	a.UpdatedAt = now.UTC()
	return a, nil
}

// WithStatus returns a copy in a new lifecycle state.
func (a Artwork) WithStatus(status ArtworkStatus, now time.Time) Artwork {
	a.Status = status
	a.UpdatedAt = now.UTC()
	return a
}
