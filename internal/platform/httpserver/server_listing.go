package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	listingerrors "atelier/contexts/catalog/listing-service/domain/errors"
	listinghttp "atelier/contexts/catalog/listing-service/transport/http"
)

func (s *Server) handleRegisterArtist(w http.ResponseWriter, r *http.Request) {
	userID := requestUserID(r)
	if userID == "" {
		writeListingError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req listinghttp.RegisterArtistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeListingError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.listing.Handler.RegisterArtistHandler(r.Context(), userID, req)
	if err != nil {
		writeListingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleGetArtist(w http.ResponseWriter, r *http.Request) {
	resp, err := s.listing.Handler.GetArtistHandler(r.Context(), r.PathValue("artist_id"))
	if err != nil {
		writeListingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateArtist(w http.ResponseWriter, r *http.Request) {
	var req listinghttp.UpdateArtistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeListingError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.listing.Handler.UpdateArtistHandler(r.Context(), r.PathValue("artist_id"), req)
	if err != nil {
		writeListingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRateArtist(w http.ResponseWriter, r *http.Request) {
	var req listinghttp.RateArtistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeListingError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.listing.Handler.RateArtistHandler(r.Context(), r.PathValue("artist_id"), req)
	if err != nil {
		writeListingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateArtwork(w http.ResponseWriter, r *http.Request) {
	var req listinghttp.CreateArtworkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeListingError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.listing.Handler.CreateArtworkHandler(r.Context(), r.PathValue("artist_id"), req)
	if err != nil {
		writeListingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListArtworks(w http.ResponseWriter, r *http.Request) {
	resp, err := s.listing.Handler.ListArtworksHandler(r.Context(), r.PathValue("artist_id"))
	if err != nil {
		writeListingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetArtwork(w http.ResponseWriter, r *http.Request) {
	resp, err := s.listing.Handler.GetArtworkHandler(r.Context(), r.PathValue("artwork_id"))
	if err != nil {
		writeListingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateArtwork(w http.ResponseWriter, r *http.Request) {
	var req listinghttp.UpdateArtworkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeListingError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.listing.Handler.UpdateArtworkHandler(r.Context(), r.PathValue("artwork_id"), req)
	if err != nil {
		writeListingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleChangeArtworkPrice(w http.ResponseWriter, r *http.Request) {
	var req listinghttp.ChangeArtworkPriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeListingError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.listing.Handler.ChangeArtworkPriceHandler(r.Context(), r.PathValue("artwork_id"), req)
	if err != nil {
		writeListingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeListingDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, listingerrors.ErrInvalidEmail),
		errors.Is(err, listingerrors.ErrInvalidUsername),
		errors.Is(err, listingerrors.ErrInvalidArtist),
		errors.Is(err, listingerrors.ErrInvalidArtwork):
		writeListingError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, listingerrors.ErrInvalidRating):
		writeListingError(w, http.StatusUnprocessableEntity, "invalid_rating", err.Error())
	case errors.Is(err, listingerrors.ErrArtistNotFound):
		writeListingError(w, http.StatusNotFound, "artist_not_found", err.Error())
	case errors.Is(err, listingerrors.ErrArtworkNotFound):
		writeListingError(w, http.StatusNotFound, "artwork_not_found", err.Error())
	default:
		writeListingError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeListingError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, listinghttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
