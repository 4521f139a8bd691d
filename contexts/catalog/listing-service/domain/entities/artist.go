package entities

import (
	"strings"
	"time"

	domainerrors "atelier/contexts/catalog/listing-service/domain/errors"
	"atelier/contexts/catalog/listing-service/domain/valueobjects"
)

// Artist is an immutable seller profile. Updates go through wither-style
// functions returning a new instance; holders must treat the old value as
// stale after an update.
type Artist struct {
	ArtistID  string
	UserID    string
	Username  valueobjects.Username
	Email     valueobjects.Email
	Bio       string
	Rating    valueobjects.Rating
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewArtist(artistID, userID string, username valueobjects.Username, email valueobjects.Email, bio string, now time.Time) (Artist, error) {
	if strings.TrimSpace(artistID) == "" || strings.TrimSpace(userID) == "" {
		return Artist{}, domainerrors.ErrInvalidArtist
	}
	return Artist{
		ArtistID:  strings.TrimSpace(artistID),
		UserID:    strings.TrimSpace(userID),
		Username:  username,
		Email:     email,
		Bio:       strings.TrimSpace(bio),
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}, nil
}

// WithBio returns a copy with a replaced bio.
func (a Artist) WithBio(bio string, now time.Time) Artist {
	a.Bio = strings.TrimSpace(bio)
	a.UpdatedAt = now.UTC()
	return a
}

// WithEmail returns a copy with a replaced contact address.
func (a Artist) WithEmail(email valueobjects.Email, now time.Time) Artist {
	a.Email = email
	a.UpdatedAt = now.UTC()
	return a
}

// WithRating returns a copy carrying a recomputed aggregate rating.
func (a Artist) WithRating(rating valueobjects.Rating, now time.Time) Artist {
	a.Rating = rating
	a.UpdatedAt = now.UTC()
	return a
}
