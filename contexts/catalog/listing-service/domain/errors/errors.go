package errors

import "errors"

var (
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrInvalidUsername = errors.New("invalid username")
	ErrInvalidRating   = errors.New("rating must be between 0 and 5")
	ErrInvalidArtist   = errors.New("invalid artist input")
	ErrInvalidArtwork  = errors.New("invalid artwork input")
	ErrArtistNotFound  = errors.New("artist not found")
	ErrArtworkNotFound = errors.New("artwork not found")
)
