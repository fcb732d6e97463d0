// Package auth provides the authentication use cases: admin registration,
// credential verification, password change, and issuance/validation of
// signed time-limited bearer tokens.
package auth

import "errors"

// Sentinel errors for authentication use case operations.
// All of these are terminal business outcomes, never transient; no retry
// logic applies to any of them.
var (
	// ErrUsernameTaken indicates that an active account with the requested
	// username already exists.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidCredentials indicates a failed login. It is deliberately
	// identical for unknown usernames and wrong passwords so that the error
	// surface cannot be used for username enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenInvalid indicates a malformed, tampered, or expired token.
	ErrTokenInvalid = errors.New("invalid or expired token")

	// ErrUserNotFound indicates that a token subject no longer resolves to
	// an active account, e.g. the account was soft-deleted after issuance.
	ErrUserNotFound = errors.New("user not found")

	// ErrRegisterFailed indicates that the insert reported success but
	// returned no row. Store invariant violation, not a user error.
	ErrRegisterFailed = errors.New("failed to create account")
)
