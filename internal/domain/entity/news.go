package entity

import "time"

// News represents a news article entity in the system.
// A nil DeletedAt marks the article as active; once DeletedAt is set the
// article is invisible to the normal read paths and can only be removed
// permanently.
type News struct {
	ID          string
	Title       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// IsActive reports whether the article has not been soft-deleted.
func (n *News) IsActive() bool {
	return n.DeletedAt == nil
}
