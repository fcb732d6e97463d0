// Package repository defines the persistence interfaces consumed by the use cases.
// Implementations live under internal/infra/adapter/persistence.
package repository

import (
	"context"

	"news-cms/internal/domain/entity"
)

// AdminRepository provides access to administrative account records.
//
// Lookups apply the soft-delete filter: only rows with an unset deleted_at
// are visible. Not-found is reported as (nil, nil); infrastructure failures
// are returned as errors.
type AdminRepository interface {
	// GetActiveByUsername retrieves the active account with the given username.
	// Usernames are matched case-sensitively.
	GetActiveByUsername(ctx context.Context, username string) (*entity.Admin, error)

	// GetActiveByID retrieves the active account with the given id.
	GetActiveByID(ctx context.Context, id string) (*entity.Admin, error)

	// Create inserts a new active account and returns the created row.
	// A racing insert that violates the active-username uniqueness constraint
	// returns entity.ErrConflict.
	Create(ctx context.Context, username, passwordHash string) (*entity.Admin, error)

	// UpdatePassword replaces the stored password hash of an active account.
	// Returns the updated row, or (nil, nil) if no active row matched.
	UpdatePassword(ctx context.Context, id, passwordHash string) (*entity.Admin, error)
}
