package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"news-cms/internal/domain/entity"
	"news-cms/internal/repository"
)

type NewsRepo struct {
	db *sql.DB
}

func NewNewsRepo(db *sql.DB) repository.NewsRepository {
	return &NewsRepo{db: db}
}

func (repo *NewsRepo) Create(ctx context.Context, title, description string) (*entity.News, error) {
	const query = `
INSERT INTO news (title, description)
VALUES ($1, $2)
RETURNING id, title, description, created_at, updated_at, deleted_at`
	var news entity.News
	err := repo.db.QueryRowContext(ctx, query, title, description).
		Scan(&news.ID, &news.Title, &news.Description,
			&news.CreatedAt, &news.UpdatedAt, &news.DeletedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Create: %w", err)
	}
	return &news, nil
}

func (repo *NewsRepo) List(ctx context.Context) ([]*entity.News, error) {
	const query = `
SELECT id, title, description, created_at, updated_at, deleted_at
FROM news
WHERE deleted_at IS NULL
ORDER BY created_at ASC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	// パフォーマンス最適化: メモリ再割り当てを削減するため事前割り当て
	list := make([]*entity.News, 0, 100)
	for rows.Next() {
		var news entity.News
		if err := rows.Scan(&news.ID, &news.Title, &news.Description,
			&news.CreatedAt, &news.UpdatedAt, &news.DeletedAt); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		list = append(list, &news)
	}
	return list, rows.Err()
}

func (repo *NewsRepo) Get(ctx context.Context, id string) (*entity.News, error) {
	const query = `
SELECT id, title, description, created_at, updated_at, deleted_at
FROM news
WHERE id = $1 AND deleted_at IS NULL
LIMIT 1`
	var news entity.News
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&news.ID, &news.Title, &news.Description,
			&news.CreatedAt, &news.UpdatedAt, &news.DeletedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &news, nil
}

// Update applies a partial patch. COALESCE keeps unpatched columns, and the
// deleted_at predicate in the WHERE clause is the true gate against a race
// with a concurrent soft delete: zero matched rows means not-found, never a
// revived row.
func (repo *NewsRepo) Update(ctx context.Context, id string, patch repository.NewsUpdate) (*entity.News, error) {
	const query = `
UPDATE news SET
       title       = COALESCE($1, title),
       description = COALESCE($2, description),
       updated_at  = now()
WHERE id = $3 AND deleted_at IS NULL
RETURNING id, title, description, created_at, updated_at, deleted_at`
	var news entity.News
	err := repo.db.QueryRowContext(ctx, query, patch.Title, patch.Description, id).
		Scan(&news.ID, &news.Title, &news.Description,
			&news.CreatedAt, &news.UpdatedAt, &news.DeletedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Update: %w", err)
	}
	return &news, nil
}

func (repo *NewsRepo) SoftDelete(ctx context.Context, id string) (*entity.News, error) {
	const query = `
UPDATE news SET
       deleted_at = now(),
       updated_at = now()
WHERE id = $1 AND deleted_at IS NULL
RETURNING id, title, description, created_at, updated_at, deleted_at`
	var news entity.News
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&news.ID, &news.Title, &news.Description,
			&news.CreatedAt, &news.UpdatedAt, &news.DeletedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("SoftDelete: %w", err)
	}
	return &news, nil
}

func (repo *NewsRepo) HardDelete(ctx context.Context, id string) (*entity.News, error) {
	const query = `
DELETE FROM news
WHERE id = $1
RETURNING id, title, description, created_at, updated_at, deleted_at`
	var news entity.News
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&news.ID, &news.Title, &news.Description,
			&news.CreatedAt, &news.UpdatedAt, &news.DeletedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("HardDelete: %w", err)
	}
	return &news, nil
}
