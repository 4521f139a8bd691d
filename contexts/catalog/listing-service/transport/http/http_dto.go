package httptransport

import "time"

type RegisterArtistRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Bio      string `json:"bio,omitempty"`
}

type UpdateArtistRequest struct {
	Bio   string `json:"bio,omitempty"`
	Email string `json:"email,omitempty"`
}

type ArtistResponse struct {
	ArtistID  string    `json:"artist_id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Bio       string    `json:"bio,omitempty"`
	Rating    string    `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateArtworkRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
}

type ArtworkResponse struct {
	ArtworkID   string    `json:"artwork_id"`
	ArtistID    string    `json:"artist_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Price       string    `json:"price"`
	Currency    string    `json:"currency"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ListArtworksResponse struct {
	ArtistID string            `json:"artist_id"`
	Items    []ArtworkResponse `json:"items"`
}

type RateArtistRequest struct {
	Score float64 `json:"score"`
}

type UpdateArtworkRequest struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

type ChangeArtworkPriceRequest struct {
	Price float64 `json:"price"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
