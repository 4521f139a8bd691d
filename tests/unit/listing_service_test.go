package unit

import (
	"context"
	"errors"
	"testing"

	listing "atelier/contexts/catalog/listing-service"
	domainerrors "atelier/contexts/catalog/listing-service/domain/errors"
	httptransport "atelier/contexts/catalog/listing-service/transport/http"
)

func TestArtistAndArtworkLifecycleThroughModule(t *testing.T) {
	module := listing.NewInMemoryModule(nil)
	ctx := context.Background()

	artist, err := module.Handler.RegisterArtistHandler(ctx, "user-7", httptransport.RegisterArtistRequest{
		Username: "Inkwell",
		Email:    "INK@Example.Com",
		Bio:      "printmaker",
	})
	if err != nil {
		t.Fatalf("register artist failed: %v", err)
	}
	if artist.Username != "inkwell" || artist.Email != "ink@example.com" {
		t.Fatalf("identity fields must be normalized: %+v", artist)
	}

	rated, err := module.Handler.RateArtistHandler(ctx, artist.ArtistID, httptransport.RateArtistRequest{Score: 4.26})
	if err != nil {
		t.Fatalf("rate artist failed: %v", err)
	}
	if rated.Rating != "4.3" {
		t.Fatalf("rating must round to one decimal: %+v", rated)
	}

	artwork, err := module.Handler.CreateArtworkHandler(ctx, artist.ArtistID, httptransport.CreateArtworkRequest{
		Title:    "Harbor Study",
		Price:    250,
		Currency: "usd",
	})
	if err != nil {
		t.Fatalf("create artwork failed: %v", err)
	}
	if artwork.Price != "250.00" || artwork.Currency != "USD" || artwork.Status != "draft" {
		t.Fatalf("unexpected new artwork: %+v", artwork)
	}

	repriced, err := module.Handler.ChangeArtworkPriceHandler(ctx, artwork.ArtworkID, httptransport.ChangeArtworkPriceRequest{Price: 99.995})
	if err != nil {
		t.Fatalf("reprice failed: %v", err)
	}
	if repriced.Price != "100.00" {
		t.Fatalf("price must round half away from zero: %+v", repriced)
	}

	listed, err := module.Handler.ListArtworksHandler(ctx, artist.ArtistID)
	if err != nil {
		t.Fatalf("list artworks failed: %v", err)
	}
	if len(listed.Items) != 1 || listed.Items[0].ArtworkID != artwork.ArtworkID {
		t.Fatalf("unexpected artwork list: %+v", listed)
	}
}

func TestCreateArtworkRequiresExistingArtist(t *testing.T) {
	module := listing.NewInMemoryModule(nil)

	_, err := module.Handler.CreateArtworkHandler(context.Background(), "artist-missing", httptransport.CreateArtworkRequest{
		Title:    "Orphan",
		Price:    50,
		Currency: "USD",
	})
	if !errors.Is(err, domainerrors.ErrArtistNotFound) {
		t.Fatalf("got %v, want ErrArtistNotFound", err)
	}
}

func TestRegisterArtistRejectsMalformedEmail(t *testing.T) {
	module := listing.NewInMemoryModule(nil)

	_, err := module.Handler.RegisterArtistHandler(context.Background(), "user-7", httptransport.RegisterArtistRequest{
		Username: "inkwell",
		Email:    "Display Name <ink@example.com>",
	})
	if !errors.Is(err, domainerrors.ErrInvalidEmail) {
		t.Fatalf("got %v, want ErrInvalidEmail", err)
	}
}
