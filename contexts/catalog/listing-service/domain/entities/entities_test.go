package entities

import (
	"errors"
	"testing"
	"time"

	domainerrors "atelier/contexts/catalog/listing-service/domain/errors"
	"atelier/contexts/catalog/listing-service/domain/valueobjects"

	"github.com/shopspring/decimal"
)

var (
	created = time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	updated = time.Date(2026, 2, 2, 9, 0, 0, 0, time.UTC)
)

func newTestArtist(t *testing.T) Artist {
	t.Helper()
	username, err := valueobjects.NewUsername("inkwell")
	if err != nil {
		t.Fatalf("username: %v", err)
	}
	email, err := valueobjects.NewEmail("ink@example.com")
	if err != nil {
		t.Fatalf("email: %v", err)
	}
	artist, err := NewArtist("artist-1", "user-1", username, email, "pen and ink", created)
	if err != nil {
		t.Fatalf("new artist: %v", err)
	}
	return artist
}

func TestNewArtistRequiresIDs(t *testing.T) {
	username, _ := valueobjects.NewUsername("inkwell")
	email, _ := valueobjects.NewEmail("ink@example.com")
	if _, err := NewArtist("", "user-1", username, email, "", created); !errors.Is(err, domainerrors.ErrInvalidArtist) {
		t.Fatalf("blank artist id: got %v", err)
	}
	if _, err := NewArtist("artist-1", "", username, email, "", created); !errors.Is(err, domainerrors.ErrInvalidArtist) {
		t.Fatalf("blank user id: got %v", err)
	}
}

func TestArtistWithersReturnCopies(t *testing.T) {
	artist := newTestArtist(t)

	withBio := artist.WithBio("landscapes only", updated)
	if artist.Bio != "pen and ink" {
		t.Fatal("wither must not mutate the receiver")
	}
	if withBio.Bio != "landscapes only" || !withBio.UpdatedAt.Equal(updated) {
		t.Fatalf("unexpected copy: %+v", withBio)
	}

	newEmail, err := valueobjects.NewEmail("studio@example.com")
	if err != nil {
		t.Fatalf("email: %v", err)
	}
	withEmail := artist.WithEmail(newEmail, updated)
	if artist.Email.String() != "ink@example.com" || withEmail.Email.String() != "studio@example.com" {
		t.Fatal("WithEmail must replace only on the copy")
	}

	rating, err := valueobjects.NewRating(4.5)
	if err != nil {
		t.Fatalf("rating: %v", err)
	}
	withRating := artist.WithRating(rating, updated)
	if artist.Rating.String() != "0.0" || withRating.Rating.String() != "4.5" {
		t.Fatalf("WithRating must replace only on the copy: %s vs %s", artist.Rating, withRating.Rating)
	}
}

func newTestArtwork(t *testing.T) Artwork {
	t.Helper()
	artwork, err := NewArtwork("art-1", "artist-1", "Blue Nocturne", "oil on canvas", decimal.NewFromFloat(250), "usd", created)
	if err != nil {
		t.Fatalf("new artwork: %v", err)
	}
	return artwork
}

func TestNewArtworkValidatesAndNormalizes(t *testing.T) {
	artwork := newTestArtwork(t)
	if artwork.Currency != "USD" {
		t.Fatalf("currency not upper-cased: %s", artwork.Currency)
	}
	if artwork.Status != ArtworkStatusDraft {
		t.Fatalf("new artwork must start as draft, got %s", artwork.Status)
	}

	if _, err := NewArtwork("art-2", "artist-1", "", "", decimal.NewFromInt(1), "USD", created); !errors.Is(err, domainerrors.ErrInvalidArtwork) {
		t.Fatalf("blank title: got %v", err)
	}
	if _, err := NewArtwork("art-2", "artist-1", "X", "", decimal.NewFromInt(-1), "USD", created); !errors.Is(err, domainerrors.ErrInvalidArtwork) {
		t.Fatalf("negative price: got %v", err)
	}
	if _, err := NewArtwork("art-2", "artist-1", "X", "", decimal.NewFromInt(1), "DOLLARS", created); !errors.Is(err, domainerrors.ErrInvalidArtwork) {
		t.Fatalf("bad currency: got %v", err)
	}
}

func TestArtworkWithPriceRounds(t *testing.T) {
	artwork := newTestArtwork(t)

	price, err := decimal.NewFromString("99.995")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	repriced, err := artwork.WithPrice(price, updated)
	if err != nil {
		t.Fatalf("with price: %v", err)
	}
	if repriced.PriceAmount.StringFixed(2) != "100.00" {
		t.Fatalf("expected 100.00, got %s", repriced.PriceAmount.StringFixed(2))
	}
	if artwork.PriceAmount.StringFixed(2) != "250.00" {
		t.Fatal("wither must not mutate the receiver")
	}

	if _, err := artwork.WithPrice(decimal.NewFromInt(-1), updated); !errors.Is(err, domainerrors.ErrInvalidArtwork) {
		t.Fatalf("negative reprice: got %v", err)
	}
}

func TestArtworkWithDetailsAndStatus(t *testing.T) {
	artwork := newTestArtwork(t)

	retitled, err := artwork.WithDetails("Red Nocturne", "reworked", updated)
	if err != nil {
		t.Fatalf("with details: %v", err)
	}
	if retitled.Title != "Red Nocturne" || artwork.Title != "Blue Nocturne" {
		t.Fatal("WithDetails must replace only on the copy")
	}
	if _, err := artwork.WithDetails("", "", updated); !errors.Is(err, domainerrors.ErrInvalidArtwork) {
		t.Fatalf("blank title: got %v", err)
	}

	listed := artwork.WithStatus(ArtworkStatusListed, updated)
	if listed.Status != ArtworkStatusListed || artwork.Status != ArtworkStatusDraft {
		t.Fatal("WithStatus must replace only on the copy")
	}
}
