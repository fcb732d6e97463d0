// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Admin and News, along with
// their validation rules and domain-specific errors.
package entity

import "time"

// Admin represents an administrative account in the system.
// The password is stored only as a bcrypt hash and is never exposed
// outside the persistence layer.
type Admin struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

// IsActive reports whether the account has not been soft-deleted.
func (a *Admin) IsActive() bool {
	return a.DeletedAt == nil
}
