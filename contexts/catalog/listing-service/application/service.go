package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"atelier/contexts/catalog/listing-service/domain/entities"
	domainerrors "atelier/contexts/catalog/listing-service/domain/errors"
	"atelier/contexts/catalog/listing-service/domain/valueobjects"
	"atelier/contexts/catalog/listing-service/ports"

	"github.com/shopspring/decimal"
)

type Service struct {
	Repo        ports.Repository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

type RegisterArtistInput struct {
	UserID   string
	Username string
	Email    string
	Bio      string
}

func (s Service) RegisterArtist(ctx context.Context, input RegisterArtistInput) (entities.Artist, error) {
	username, err := valueobjects.NewUsername(input.Username)
	if err != nil {
		return entities.Artist{}, err
	}
	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return entities.Artist{}, err
	}
	artistID, err := s.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Artist{}, err
	}

	artist, err := entities.NewArtist(artistID, input.UserID, username, email, input.Bio, s.now())
	if err != nil {
		return entities.Artist{}, err
	}
	if err := s.Repo.SaveArtist(ctx, artist); err != nil {
		return entities.Artist{}, err
	}
	return artist, nil
}

// UpdateArtistProfile applies wither updates and persists the new value; the
// previous value is treated as stale from here on.
func (s Service) UpdateArtistProfile(ctx context.Context, artistID, bio, email string) (entities.Artist, error) {
	artist, err := s.Repo.GetArtist(ctx, strings.TrimSpace(artistID))
	if err != nil {
		return entities.Artist{}, err
	}

	now := s.now()
	updated := artist.WithBio(bio, now)
	if strings.TrimSpace(email) != "" {
		address, err := valueobjects.NewEmail(email)
		if err != nil {
			return entities.Artist{}, err
		}
		updated = updated.WithEmail(address, now)
	}

	if err := s.Repo.SaveArtist(ctx, updated); err != nil {
		return entities.Artist{}, err
	}
	return updated, nil
}

func (s Service) RateArtist(ctx context.Context, artistID string, score float64) (entities.Artist, error) {
	rating, err := valueobjects.NewRating(score)
	if err != nil {
		return entities.Artist{}, err
	}
	artist, err := s.Repo.GetArtist(ctx, strings.TrimSpace(artistID))
	if err != nil {
		return entities.Artist{}, err
	}

	updated := artist.WithRating(rating, s.now())
	if err := s.Repo.SaveArtist(ctx, updated); err != nil {
		return entities.Artist{}, err
	}
	return updated, nil
}

type CreateArtworkInput struct {
	ArtistID    string
	Title       string
	Description string
	Price       float64
	Currency    string
}

func (s Service) CreateArtwork(ctx context.Context, input CreateArtworkInput) (entities.Artwork, error) {
	if _, err := s.Repo.GetArtist(ctx, strings.TrimSpace(input.ArtistID)); err != nil {
		return entities.Artwork{}, err
	}
	artworkID, err := s.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Artwork{}, err
	}

	artwork, err := entities.NewArtwork(
		artworkID,
		input.ArtistID,
		input.Title,
		input.Description,
		decimal.NewFromFloat(input.Price),
		input.Currency,
		s.now(),
	)
	if err != nil {
		return entities.Artwork{}, err
	}
	if err := s.Repo.SaveArtwork(ctx, artwork); err != nil {
		return entities.Artwork{}, err
	}
	return artwork, nil
}

func (s Service) UpdateArtworkDetails(ctx context.Context, artworkID, title, description string) (entities.Artwork, error) {
	artwork, err := s.Repo.GetArtwork(ctx, strings.TrimSpace(artworkID))
	if err != nil {
		return entities.Artwork{}, err
	}
	updated, err := artwork.WithDetails(title, description, s.now())
	if err != nil {
		return entities.Artwork{}, err
	}
	if err := s.Repo.SaveArtwork(ctx, updated); err != nil {
		return entities.Artwork{}, err
	}
	return updated, nil
}

func (s Service) ChangeArtworkPrice(ctx context.Context, artworkID string, price float64) (entities.Artwork, error) {
	artwork, err := s.Repo.GetArtwork(ctx, strings.TrimSpace(artworkID))
	if err != nil {
		return entities.Artwork{}, err
	}
	updated, err := artwork.WithPrice(decimal.NewFromFloat(price), s.now())
	if err != nil {
		return entities.Artwork{}, err
	}
	if err := s.Repo.SaveArtwork(ctx, updated); err != nil {
		return entities.Artwork{}, err
	}
	return updated, nil
}

func (s Service) GetArtist(ctx context.Context, artistID string) (entities.Artist, error) {
	if strings.TrimSpace(artistID) == "" {
		return entities.Artist{}, domainerrors.ErrInvalidArtist
	}
	return s.Repo.GetArtist(ctx, strings.TrimSpace(artistID))
}

func (s Service) GetArtwork(ctx context.Context, artworkID string) (entities.Artwork, error) {
	if strings.TrimSpace(artworkID) == "" {
		return entities.Artwork{}, domainerrors.ErrInvalidArtwork
	}
	return s.Repo.GetArtwork(ctx, strings.TrimSpace(artworkID))
}

func (s Service) ListArtworksByArtist(ctx context.Context, artistID string) ([]entities.Artwork, error) {
	if strings.TrimSpace(artistID) == "" {
		return nil, domainerrors.ErrInvalidArtist
	}
	return s.Repo.ListArtworksByArtist(ctx, strings.TrimSpace(artistID))
}

func (s Service) now() time.Time {
	if s.Clock != nil {
		return s.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
