package common

import (
	"net/mail"
	"net/url"
	"strings"
)

const minPasswordLength = 6

func IsValidURL(rawurl string) bool {
	_, err := url.ParseRequestURI(rawurl)
	return err == nil
}

func IsValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

// ValidateCredentials checks login input before it goes anywhere near the
// wire. Password strength is the server's call; locally it only has to be
// present.
func ValidateCredentials(email string, password string) error {
	if !IsValidEmail(email) {
		return NewValidationError("invalid email address: %s", email)
	}
	if len(password) == 0 {
		return NewValidationError("password is required")
	}
	return nil
}

// ValidateRegistration checks sign-up input before it goes anywhere near the
// wire. New passwords do get a minimum length.
func ValidateRegistration(name string, email string, password string) error {
	if len(strings.TrimSpace(name)) == 0 {
		return NewValidationError("name is required")
	}
	if err := ValidateCredentials(email, password); err != nil {
		return err
	}
	if len(password) < minPasswordLength {
		return NewValidationError("password must be at least %d characters", minPasswordLength)
	}
	return nil
}
