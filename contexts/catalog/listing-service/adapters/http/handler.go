package httpadapter

import (
	"context"
	"log/slog"

	"atelier/contexts/catalog/listing-service/application"
	"atelier/contexts/catalog/listing-service/domain/entities"
	httptransport "atelier/contexts/catalog/listing-service/transport/http"
)

// Handler maps HTTP DTOs to catalog application calls.
type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) RegisterArtistHandler(
	ctx context.Context,
	userID string,
	request httptransport.RegisterArtistRequest,
) (httptransport.ArtistResponse, error) {
	artist, err := h.Service.RegisterArtist(ctx, application.RegisterArtistInput{
		UserID:   userID,
		Username: request.Username,
		Email:    request.Email,
		Bio:      request.Bio,
	})
	if err != nil {
		return httptransport.ArtistResponse{}, err
	}
	return artistToResponse(artist), nil
}

func (h Handler) UpdateArtistHandler(
	ctx context.Context,
	artistID string,
	request httptransport.UpdateArtistRequest,
) (httptransport.ArtistResponse, error) {
	artist, err := h.Service.UpdateArtistProfile(ctx, artistID, request.Bio, request.Email)
	if err != nil {
		return httptransport.ArtistResponse{}, err
	}
	return artistToResponse(artist), nil
}

func (h Handler) GetArtistHandler(ctx context.Context, artistID string) (httptransport.ArtistResponse, error) {
	artist, err := h.Service.GetArtist(ctx, artistID)
	if err != nil {
		return httptransport.ArtistResponse{}, err
	}
	return artistToResponse(artist), nil
}

func (h Handler) CreateArtworkHandler(
	ctx context.Context,
	artistID string,
	request httptransport.CreateArtworkRequest,
) (httptransport.ArtworkResponse, error) {
	artwork, err := h.Service.CreateArtwork(ctx, application.CreateArtworkInput{
		ArtistID:    artistID,
		Title:       request.Title,
		Description: request.Description,
		Price:       request.Price,
		Currency:    request.Currency,
	})
	if err != nil {
		return httptransport.ArtworkResponse{}, err
	}
	return artworkToResponse(artwork), nil
}

func (h Handler) RateArtistHandler(
	ctx context.Context,
	artistID string,
	request httptransport.RateArtistRequest,
) (httptransport.ArtistResponse, error) {
	artist, err := h.Service.RateArtist(ctx, artistID, request.Score)
	if err != nil {
		return httptransport.ArtistResponse{}, err
	}
	return artistToResponse(artist), nil
}

func (h Handler) UpdateArtworkHandler(
	ctx context.Context,
	artworkID string,
	request httptransport.UpdateArtworkRequest,
) (httptransport.ArtworkResponse, error) {
	artwork, err := h.Service.UpdateArtworkDetails(ctx, artworkID, request.Title, request.Description)
	if err != nil {
		return httptransport.ArtworkResponse{}, err
	}
	return artworkToResponse(artwork), nil
}

func (h Handler) ChangeArtworkPriceHandler(
	ctx context.Context,
	artworkID string,
	request httptransport.ChangeArtworkPriceRequest,
) (httptransport.ArtworkResponse, error) {
	artwork, err := h.Service.ChangeArtworkPrice(ctx, artworkID, request.Price)
	if err != nil {
		return httptransport.ArtworkResponse{}, err
	}
	return artworkToResponse(artwork), nil
}

func (h Handler) GetArtworkHandler(ctx context.Context, artworkID string) (httptransport.ArtworkResponse, error) {
	artwork, err := h.Service.GetArtwork(ctx, artworkID)
	if err != nil {
		return httptransport.ArtworkResponse{}, err
	}
	return artworkToResponse(artwork), nil
}

func (h Handler) ListArtworksHandler(ctx context.Context, artistID string) (httptransport.ListArtworksResponse, error) {
	artworks, err := h.Service.ListArtworksByArtist(ctx, artistID)
	if err != nil {
		return httptransport.ListArtworksResponse{}, err
	}
	items := make([]httptransport.ArtworkResponse, 0, len(artworks))
	for _, artwork := range artworks {
		items = append(items, artworkToResponse(artwork))
	}
	return httptransport.ListArtworksResponse{ArtistID: artistID, Items: items}, nil
}

func artistToResponse(artist entities.Artist) httptransport.ArtistResponse {
	return httptransport.ArtistResponse{
		ArtistID:  artist.ArtistID,
		UserID:    artist.UserID,
		Username:  artist.Username.String(),
		Email:     artist.Email.String(),
		Bio:       artist.Bio,
		Rating:    artist.Rating.String(),
		CreatedAt: artist.CreatedAt,
		UpdatedAt: artist.UpdatedAt,
	}
}

func artworkToResponse(artwork entities.Artwork) httptransport.ArtworkResponse {
	return httptransport.ArtworkResponse{
		ArtworkID:   artwork.ArtworkID,
		ArtistID:    artwork.ArtistID,
		Title:       artwork.Title,
		Description: artwork.Description,
		Price:       artwork.PriceAmount.StringFixed(2),
		Currency:    artwork.Currency,
		Status:      string(artwork.Status),
		CreatedAt:   artwork.CreatedAt,
		UpdatedAt:   artwork.UpdatedAt,
	}
}
