package application

import (
	"context"
	"errors"
	"testing"

	"atelier/contexts/catalog/listing-service/adapters/memory"
	domainerrors "atelier/contexts/catalog/listing-service/domain/errors"
)

func newTestService(store *memory.Store) Service {
	return Service{Repo: store, Clock: store, IDGenerator: store}
}

func registerTestArtist(t *testing.T, service Service) string {
	t.Helper()
	artist, err := service.RegisterArtist(context.Background(), RegisterArtistInput{
		UserID:   "user-1",
		Username: "inkwell",
		Email:    "ink@example.com",
		Bio:      "pen and ink",
	})
	if err != nil {
		t.Fatalf("register artist failed: %v", err)
	}
	return artist.ArtistID
}

func TestRegisterThenGetArtist(t *testing.T) {
	store := memory.NewStore()
	service := newTestService(store)
	artistID := registerTestArtist(t, service)

	artist, err := service.GetArtist(context.Background(), artistID)
	if err != nil {
		t.Fatalf("get artist failed: %v", err)
	}
	if artist.Username.String() != "inkwell" || artist.UserID != "user-1" {
		t.Fatalf("unexpected artist: %+v", artist)
	}
}

func TestRegisterArtistRejectsInvalidInput(t *testing.T) {
	service := newTestService(memory.NewStore())

	_, err := service.RegisterArtist(context.Background(), RegisterArtistInput{
		UserID: "user-1", Username: "x", Email: "ink@example.com",
	})
	if !errors.Is(err, domainerrors.ErrInvalidUsername) {
		t.Fatalf("short username: got %v", err)
	}

	_, err = service.RegisterArtist(context.Background(), RegisterArtistInput{
		UserID: "user-1", Username: "inkwell", Email: "not-an-email",
	})
	if !errors.Is(err, domainerrors.ErrInvalidEmail) {
		t.Fatalf("bad email: got %v", err)
	}
}

func TestUpdateArtistProfile(t *testing.T) {
	service := newTestService(memory.NewStore())
	artistID := registerTestArtist(t, service)

	updated, err := service.UpdateArtistProfile(context.Background(), artistID, "landscapes only", "studio@example.com")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Bio != "landscapes only" || updated.Email.String() != "studio@example.com" {
		t.Fatalf("unexpected profile: %+v", updated)
	}

	reread, err := service.GetArtist(context.Background(), artistID)
	if err != nil {
		t.Fatalf("get artist failed: %v", err)
	}
	if reread.Bio != "landscapes only" {
		t.Fatal("update not persisted")
	}
}

func TestRateArtist(t *testing.T) {
	service := newTestService(memory.NewStore())
	artistID := registerTestArtist(t, service)

	rated, err := service.RateArtist(context.Background(), artistID, 4.26)
	if err != nil {
		t.Fatalf("rate failed: %v", err)
	}
	if rated.Rating.String() != "4.3" {
		t.Fatalf("expected 4.3, got %s", rated.Rating.String())
	}

	if _, err := service.RateArtist(context.Background(), artistID, 5.5); !errors.Is(err, domainerrors.ErrInvalidRating) {
		t.Fatalf("out-of-range score: got %v", err)
	}
}

func TestCreateArtworkRequiresExistingArtist(t *testing.T) {
	service := newTestService(memory.NewStore())

	_, err := service.CreateArtwork(context.Background(), CreateArtworkInput{
		ArtistID: "artist-ghost",
		Title:    "Blue Nocturne",
		Price:    250,
		Currency: "USD",
	})
	if !errors.Is(err, domainerrors.ErrArtistNotFound) {
		t.Fatalf("got %v, want ErrArtistNotFound", err)
	}
}

func TestArtworkLifecycle(t *testing.T) {
	service := newTestService(memory.NewStore())
	artistID := registerTestArtist(t, service)
	ctx := context.Background()

	artwork, err := service.CreateArtwork(ctx, CreateArtworkInput{
		ArtistID: artistID,
		Title:    "Blue Nocturne",
		Price:    250,
		Currency: "usd",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if artwork.Currency != "USD" {
		t.Fatalf("currency not normalized: %s", artwork.Currency)
	}

	retitled, err := service.UpdateArtworkDetails(ctx, artwork.ArtworkID, "Red Nocturne", "reworked")
	if err != nil {
		t.Fatalf("update details failed: %v", err)
	}
	if retitled.Title != "Red Nocturne" {
		t.Fatalf("unexpected title %s", retitled.Title)
	}

	repriced, err := service.ChangeArtworkPrice(ctx, artwork.ArtworkID, 99.995)
	if err != nil {
		t.Fatalf("change price failed: %v", err)
	}
	if repriced.PriceAmount.StringFixed(2) != "100.00" {
		t.Fatalf("expected 100.00, got %s", repriced.PriceAmount.StringFixed(2))
	}

	artworks, err := service.ListArtworksByArtist(ctx, artistID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(artworks) != 1 || artworks[0].Title != "Red Nocturne" {
		t.Fatalf("unexpected listing: %+v", artworks)
	}
}

func TestGetArtworkUnknownID(t *testing.T) {
	service := newTestService(memory.NewStore())
	if _, err := service.GetArtwork(context.Background(), "art-ghost"); !errors.Is(err, domainerrors.ErrArtworkNotFound) {
		t.Fatalf("got %v, want ErrArtworkNotFound", err)
	}
}
