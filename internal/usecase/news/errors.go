// Package news provides use cases for the news article lifecycle.
// It implements creation, listing, partial updates, soft deletion, and
// permanent removal, delegating persistence to the news repository.
package news

import "errors"

// Sentinel errors for news use case operations.
var (
	// ErrNewsNotFound indicates that the id does not resolve to a visible
	// article (or, for ForceRemove, to any row at all).
	ErrNewsNotFound = errors.New("news not found")

	// ErrInvalidNewsID indicates that the provided article ID is invalid.
	ErrInvalidNewsID = errors.New("invalid news ID")

	// ErrCreateFailed indicates that the insert reported success but
	// returned no row. This is a store invariant violation, not a user error.
	ErrCreateFailed = errors.New("failed to create news")
)
