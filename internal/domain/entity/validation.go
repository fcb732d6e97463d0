package entity

import (
	"fmt"
	"strings"
)

// Length limits for admin credentials and article fields.
const (
	MinUsernameLength = 3
	MaxUsernameLength = 100
	MinPasswordLength = 6
	MaxPasswordLength = 255
	MaxTitleLength    = 255
)

// ValidateUsername checks that a username satisfies the length constraints.
// Usernames are case-sensitive; no normalization is applied.
func ValidateUsername(username string) error {
	if username == "" {
		return &ValidationError{Field: "username", Message: "is required"}
	}
	if len(username) < MinUsernameLength {
		return &ValidationError{
			Field:   "username",
			Message: fmt.Sprintf("must be at least %d characters", MinUsernameLength),
		}
	}
	if len(username) > MaxUsernameLength {
		return &ValidationError{
			Field:   "username",
			Message: fmt.Sprintf("must not exceed %d characters", MaxUsernameLength),
		}
	}
	return nil
}

// ValidatePassword checks that a plaintext password satisfies the length constraints.
// The upper bound also keeps the input inside bcrypt's 72-byte effective range
// before the cost factor dominates.
func ValidatePassword(password string) error {
	if password == "" {
		return &ValidationError{Field: "password", Message: "is required"}
	}
	if len(password) < MinPasswordLength {
		return &ValidationError{
			Field:   "password",
			Message: fmt.Sprintf("must be at least %d characters", MinPasswordLength),
		}
	}
	if len(password) > MaxPasswordLength {
		return &ValidationError{
			Field:   "password",
			Message: fmt.Sprintf("must not exceed %d characters", MaxPasswordLength),
		}
	}
	return nil
}

// TrimTitle trims surrounding whitespace and validates the article title.
// Returns the trimmed value and a ValidationError if the result is empty or too long.
func TrimTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", &ValidationError{Field: "title", Message: "is required"}
	}
	if len(trimmed) > MaxTitleLength {
		return "", &ValidationError{
			Field:   "title",
			Message: fmt.Sprintf("must not exceed %d characters", MaxTitleLength),
		}
	}
	return trimmed, nil
}

// TrimDescription trims surrounding whitespace and validates the article description.
func TrimDescription(description string) (string, error) {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return "", &ValidationError{Field: "description", Message: "is required"}
	}
	return trimmed, nil
}
