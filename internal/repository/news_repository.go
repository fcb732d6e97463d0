package repository

import (
	"context"

	"news-cms/internal/domain/entity"
)

// NewsUpdate describes a partial update to a news article.
// Nil fields are left untouched.
type NewsUpdate struct {
	Title       *string
	Description *string
}

// NewsRepository provides access to news article records.
//
// The soft-delete predicate (deleted_at IS NULL) is applied uniformly to
// every visible-path query, and the conditional writes repeat it in their
// WHERE clause so that a write racing a delete affects zero rows instead of
// reviving the row. Conditional operations return (nil, nil) when no row
// matched.
type NewsRepository interface {
	// Create inserts a new active article and returns the created row.
	Create(ctx context.Context, title, description string) (*entity.News, error)

	// List retrieves all active articles ordered by created_at ascending.
	List(ctx context.Context) ([]*entity.News, error)

	// Get retrieves the active article with the given id.
	Get(ctx context.Context, id string) (*entity.News, error)

	// Update applies a partial update to an active article, refreshing
	// updated_at, and returns the updated row. Returns (nil, nil) if the
	// row is missing or soft-deleted.
	Update(ctx context.Context, id string, patch NewsUpdate) (*entity.News, error)

	// SoftDelete marks an active article as deleted, setting deleted_at and
	// updated_at, and returns the updated row. Returns (nil, nil) if the
	// row is missing or already soft-deleted.
	SoftDelete(ctx context.Context, id string) (*entity.News, error)

	// HardDelete physically removes the row regardless of its soft-delete
	// state and returns it. Returns (nil, nil) if no row with that id exists.
	HardDelete(ctx context.Context, id string) (*entity.News, error)
}
