// Package news provides the HTTP handlers for the news article lifecycle:
// create, list, get, partial update, soft delete, and permanent delete.
package news

import (
	"time"

	"news-cms/internal/domain/entity"
)

// DTO is the JSON shape of a news article.
type DTO struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

func fromEntity(n *entity.News) DTO {
	return DTO{
		ID:          n.ID,
		Title:       n.Title,
		Description: n.Description,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
		DeletedAt:   n.DeletedAt,
	}
}
