package validation

import (
	"errors"
	"net/mail"
)

// ValidateEmail checks format with Go's RFC 5322 parser and enforces
// the RFC 5321 length limit.
func ValidateEmail(email string) error {
	if email == "" {
		return errors.New("email address is required")
	}

	if len(email) > 254 {
		return errors.New("email address is too long (max 254 characters)")
	}

	_, err := mail.ParseAddress(email)
	if err != nil {
		return errors.New("invalid email address format")
	}

	return nil
}
