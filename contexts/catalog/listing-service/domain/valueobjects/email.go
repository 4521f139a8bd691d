package valueobjects

import (
	"net/mail"
	"strings"

	domainerrors "atelier/contexts/catalog/listing-service/domain/errors"
)

// Email is a validated, normalized email address.
type Email string

func NewEmail(raw string) (Email, error) {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return "", domainerrors.ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(trimmed)
	if err != nil || addr.Address != trimmed {
		return "", domainerrors.ErrInvalidEmail
	}
	return Email(trimmed), nil
}

func (e Email) String() string { return string(e) }
