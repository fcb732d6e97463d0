package news

import (
	"context"
	"fmt"

	"news-cms/internal/domain/entity"
	"news-cms/internal/repository"
)

// CreateInput represents the input parameters for creating a news article.
type CreateInput struct {
	Title       string
	Description string
}

// UpdateInput represents the input parameters for a partial update.
// Fields with nil values will not be updated.
type UpdateInput struct {
	ID          string
	Title       *string
	Description *string
}

// RemoveResult carries the confirmation message and the removed record
// returned by Remove and ForceRemove.
type RemoveResult struct {
	Message string
	News    *entity.News
}

// Service provides news article management use cases.
// It enforces the soft-delete state machine and delegates persistence to the
// repository. All consistency under concurrency is delegated to the store's
// conditional writes; the service holds no locks.
type Service struct {
	Repo repository.NewsRepository
}

// Create creates a new active article.
// Inputs are trimmed defensively even though the transport layer already
// validates them. Returns ErrCreateFailed if the insert returns no row.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.News, error) {
	title, err := entity.TrimTitle(in.Title)
	if err != nil {
		return nil, err
	}
	description, err := entity.TrimDescription(in.Description)
	if err != nil {
		return nil, err
	}

	created, err := s.Repo.Create(ctx, title, description)
	if err != nil {
		return nil, fmt.Errorf("create news: %w", err)
	}
	if created == nil {
		return nil, ErrCreateFailed
	}
	return created, nil
}

// List retrieves all active articles ordered by creation time ascending.
func (s *Service) List(ctx context.Context) ([]*entity.News, error) {
	list, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}
	return list, nil
}

// Get retrieves a single active article by its ID.
// Returns ErrNewsNotFound if the article is absent or soft-deleted. This is
// the single source of truth for visibility, reused by Update and Remove.
func (s *Service) Get(ctx context.Context, id string) (*entity.News, error) {
	if id == "" {
		return nil, ErrInvalidNewsID
	}

	item, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get news: %w", err)
	}
	if item == nil {
		return nil, ErrNewsNotFound
	}
	return item, nil
}

// Update applies a partial update to an active article.
// The target is resolved through Get first so that an update can never
// silently create or revive a row; the conditional write's WHERE clause is
// the real gate against a concurrent delete, and zero affected rows is
// reported as ErrNewsNotFound even though the earlier read succeeded.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.News, error) {
	if _, err := s.Get(ctx, in.ID); err != nil {
		return nil, err
	}

	patch := repository.NewsUpdate{}
	if in.Title != nil {
		title, err := entity.TrimTitle(*in.Title)
		if err != nil {
			return nil, err
		}
		patch.Title = &title
	}
	if in.Description != nil {
		description, err := entity.TrimDescription(*in.Description)
		if err != nil {
			return nil, err
		}
		patch.Description = &description
	}

	updated, err := s.Repo.Update(ctx, in.ID, patch)
	if err != nil {
		return nil, fmt.Errorf("update news: %w", err)
	}
	if updated == nil {
		return nil, ErrNewsNotFound
	}
	return updated, nil
}

// Remove soft-deletes an active article, setting deleted_at and updated_at.
// A second call on the same id returns ErrNewsNotFound because the filtered
// lookup no longer sees the row; deletion is intentionally not idempotent at
// the API level.
func (s *Service) Remove(ctx context.Context, id string) (*RemoveResult, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	deleted, err := s.Repo.SoftDelete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("remove news: %w", err)
	}
	if deleted == nil {
		return nil, ErrNewsNotFound
	}

	return &RemoveResult{
		Message: fmt.Sprintf("news %q deleted", existing.Title),
		News:    deleted,
	}, nil
}

// ForceRemove physically deletes the row regardless of its soft-delete state.
// Irreversible; an administrative escape hatch outside the normal lifecycle.
// Returns ErrNewsNotFound only if no row with that id exists at all.
func (s *Service) ForceRemove(ctx context.Context, id string) (*RemoveResult, error) {
	if id == "" {
		return nil, ErrInvalidNewsID
	}

	deleted, err := s.Repo.HardDelete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("force remove news: %w", err)
	}
	if deleted == nil {
		return nil, ErrNewsNotFound
	}

	return &RemoveResult{
		Message: fmt.Sprintf("news %q permanently deleted", deleted.Title),
		News:    deleted,
	}, nil
}
