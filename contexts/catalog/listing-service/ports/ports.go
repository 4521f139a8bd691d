package ports

import (
	"context"
	"time"

	"atelier/contexts/catalog/listing-service/domain/entities"
)

// Clock abstracts current time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts UUID generation for new artists/artworks.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// Repository is the persistence boundary for catalog state.
type Repository interface {
	GetArtist(ctx context.Context, artistID string) (entities.Artist, error)
	SaveArtist(ctx context.Context, artist entities.Artist) error
	GetArtwork(ctx context.Context, artworkID string) (entities.Artwork, error)
	SaveArtwork(ctx context.Context, artwork entities.Artwork) error
	ListArtworksByArtist(ctx context.Context, artistID string) ([]entities.Artwork, error)
}
