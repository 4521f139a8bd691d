package valueobjects

import (
	"regexp"
	"strings"

	domainerrors "atelier/contexts/catalog/listing-service/domain/errors"
)

// Username is 3-30 characters of lowercase letters, digits, underscores, and
// hyphens, starting with a letter.
type Username string

var usernamePattern = regexp.MustCompile(`^[a-z][a-z0-9_-]{2,29}$`)

func NewUsername(raw string) (Username, error) {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if !usernamePattern.MatchString(trimmed) {
		return "", domainerrors.ErrInvalidUsername
	}
	return Username(trimmed), nil
}

func (u Username) String() string { return string(u) }
