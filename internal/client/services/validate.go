package services

import (
	"errors"
	"regexp"
	"unicode/utf8"
)

// ValidationError is a pre-flight rejection: nothing was sent to the server.
// The message is meant to be shown to the user as-is.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationErrorf(msg string) error {
	return &ValidationError{msg: msg}
}

// IsValidationError reports whether err is a client-side validation failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// emailRe is a UX convenience only; the server remains authoritative.
// It requires a local part, an @, and a dotted domain ("foo@bar" fails).
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minPasswordLen = 6

// maxIntentLen bounds the optional photo intent field.
const maxIntentLen = 140

func validateCredentials(email, password string) error {
	if email == "" || password == "" {
		return validationErrorf("email and password are required")
	}
	if !emailRe.MatchString(email) {
		return validationErrorf("enter a valid email address")
	}
	return nil
}

func validateRegistration(email, password, emailConfirm, passwordConfirm string) error {
	if err := validateCredentials(email, password); err != nil {
		return err
	}
	if email != emailConfirm {
		return validationErrorf("email confirmation does not match")
	}
	if utf8.RuneCountInString(password) < minPasswordLen {
		return validationErrorf("password must be at least 6 characters")
	}
	if password != passwordConfirm {
		return validationErrorf("password confirmation does not match")
	}
	return nil
}

func validateIntent(intent string) error {
	if utf8.RuneCountInString(intent) > maxIntentLen {
		return validationErrorf("intent must be at most 140 characters")
	}
	return nil
}
