package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"atelier/contexts/catalog/listing-service/domain/entities"
	domainerrors "atelier/contexts/catalog/listing-service/domain/errors"

	"github.com/google/uuid"
)

// Store is an in-memory catalog adapter for tests and local development.
type Store struct {
	mu       sync.RWMutex
	artists  map[string]entities.Artist
	artworks map[string]entities.Artwork
}

func NewStore() *Store {
	return &Store{
		artists:  make(map[string]entities.Artist),
		artworks: make(map[string]entities.Artwork),
	}
}

func (s *Store) GetArtist(_ context.Context, artistID string) (entities.Artist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	artist, ok := s.artists[artistID]
	if !ok {
		return entities.Artist{}, domainerrors.ErrArtistNotFound
	}
	return artist, nil
}

func (s *Store) SaveArtist(_ context.Context, artist entities.Artist) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.artists[artist.ArtistID] = artist
	return nil
}

func (s *Store) GetArtwork(_ context.Context, artworkID string) (entities.Artwork, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	artwork, ok := s.artworks[artworkID]
	if !ok {
		return entities.Artwork{}, domainerrors.ErrArtworkNotFound
	}
	return artwork, nil
}

func (s *Store) SaveArtwork(_ context.Context, artwork entities.Artwork) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.artworks[artwork.ArtworkID] = artwork
	return nil
}

func (s *Store) ListArtworksByArtist(_ context.Context, artistID string) ([]entities.Artwork, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Artwork, 0)
	for _, artwork := range s.artworks {
		if artwork.ArtistID == artistID {
			items = append(items, artwork)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].ArtworkID < items[j].ArtworkID
	})
	return items, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
