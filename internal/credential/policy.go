// Package credential holds the account credential rules: the password
// and username policy validators and the one-way password hasher.
package credential

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	minPasswordLen = 12
	maxPasswordLen = 20
	maxUsernameLen = 10

	// specialChars are the characters that satisfy the password's
	// special-character requirement.
	specialChars = `!@#$%^&*(),.?":{}|<>`
)

// PolicyError reports which field violated the credential policy and why.
// Callers surface it as a 400-class error.
type PolicyError struct {
	Field  string
	Reason string
}

func (e *PolicyError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ValidatePassword checks the password policy: 12-20 characters with at
// least one lowercase Latin letter, one digit, and one special
// character. There is no uppercase requirement.
func ValidatePassword(password string) error {
	n := utf8.RuneCountInString(password)
	if n < minPasswordLen || n > maxPasswordLen {
		return &PolicyError{
			Field:  "password",
			Reason: fmt.Sprintf("must be between %d and %d characters", minPasswordLen, maxPasswordLen),
		}
	}

	var hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(specialChars, r):
			hasSpecial = true
		}
	}
	if !hasLower || !hasDigit || !hasSpecial {
		return &PolicyError{
			Field:  "password",
			Reason: "must include lowercase letters, numbers, and special characters",
		}
	}
	return nil
}

// ValidateUsername checks the username policy: 1-10 characters, each a
// precomposed Hangul syllable (U+AC00..U+D7A3). Latin letters, spaces,
// and punctuation are all rejected.
func ValidateUsername(username string) error {
	n := utf8.RuneCountInString(username)
	if n < 1 || n > maxUsernameLen {
		return &PolicyError{
			Field:  "username",
			Reason: fmt.Sprintf("must be between 1 and %d characters", maxUsernameLen),
		}
	}
	for _, r := range username {
		if r < '가' || r > '힣' {
			return &PolicyError{
				Field:  "username",
				Reason: "must consist of Hangul syllables only",
			}
		}
	}
	return nil
}
