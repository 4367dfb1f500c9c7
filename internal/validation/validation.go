// Package validation holds the credential strength rules applied at signup.
// The checks are pure functions so they can run before anything is persisted.
package validation

import (
	"errors"
	"strings"
)

const specialChars = "!@#$%^&*"

var (
	ErrPasswordTooShort = errors.New("Password must be at least 6 characters")
	ErrPasswordWeak     = errors.New("Password must contain at least one uppercase letter, one number, and one special character")
	ErrUsernameTooShort = errors.New("Username must be at least 3 characters")
	ErrUsernameWeak     = errors.New("Username must contain at least one uppercase letter, one number, and one special character")
)

// strong reports whether s contains an ASCII uppercase letter, an ASCII
// digit and one of the special characters. The three predicates are
// independent; position and order do not matter. Only A-Z and 0-9 count,
// not other scripts' letters or digits.
func strong(s string) bool {
	var upper, digit, special bool
	for _, r := range s {
		switch {
		case 'A' <= r && r <= 'Z':
			upper = true
		case '0' <= r && r <= '9':
			digit = true
		case strings.ContainsRune(specialChars, r):
			special = true
		}
	}
	return upper && digit && special
}

// Password checks the signup password rules. Length is checked first so the
// caller always gets the most specific failure.
func Password(candidate string) error {
	if len(candidate) < 6 {
		return ErrPasswordTooShort
	}
	if !strong(candidate) {
		return ErrPasswordWeak
	}
	return nil
}

// Username applies the same strength rule as Password on top of a shorter
// length floor. Usernames therefore need an uppercase letter, a digit and a
// special character too, matching the behavior users already rely on.
func Username(candidate string) error {
	if len(candidate) < 3 {
		return ErrUsernameTooShort
	}
	if !strong(candidate) {
		return ErrUsernameWeak
	}
	return nil
}
