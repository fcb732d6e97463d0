// Package postgres implements the repository interfaces against PostgreSQL
// using database/sql with the pgx stdlib driver.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"news-cms/internal/domain/entity"
	"news-cms/internal/repository"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

type AdminRepo struct {
	db *sql.DB
}

func NewAdminRepo(db *sql.DB) repository.AdminRepository {
	return &AdminRepo{db: db}
}

func (repo *AdminRepo) GetActiveByUsername(ctx context.Context, username string) (*entity.Admin, error) {
	const query = `
SELECT id, username, password_hash, created_at, updated_at, deleted_at
FROM admins
WHERE username = $1 AND deleted_at IS NULL
LIMIT 1`
	var admin entity.Admin
	err := repo.db.QueryRowContext(ctx, query, username).
		Scan(&admin.ID, &admin.Username, &admin.PasswordHash,
			&admin.CreatedAt, &admin.UpdatedAt, &admin.DeletedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetActiveByUsername: %w", err)
	}
	return &admin, nil
}

func (repo *AdminRepo) GetActiveByID(ctx context.Context, id string) (*entity.Admin, error) {
	const query = `
SELECT id, username, password_hash, created_at, updated_at, deleted_at
FROM admins
WHERE id = $1 AND deleted_at IS NULL
LIMIT 1`
	var admin entity.Admin
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&admin.ID, &admin.Username, &admin.PasswordHash,
			&admin.CreatedAt, &admin.UpdatedAt, &admin.DeletedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetActiveByID: %w", err)
	}
	return &admin, nil
}

// Create inserts a new account. The partial unique index on active usernames
// is the real enforcement point for the register race: a concurrent insert
// fails with 23505 and is surfaced as entity.ErrConflict.
func (repo *AdminRepo) Create(ctx context.Context, username, passwordHash string) (*entity.Admin, error) {
	const query = `
INSERT INTO admins (username, password_hash)
VALUES ($1, $2)
RETURNING id, username, password_hash, created_at, updated_at, deleted_at`
	var admin entity.Admin
	err := repo.db.QueryRowContext(ctx, query, username, passwordHash).
		Scan(&admin.ID, &admin.Username, &admin.PasswordHash,
			&admin.CreatedAt, &admin.UpdatedAt, &admin.DeletedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, entity.ErrConflict
		}
		return nil, fmt.Errorf("Create: %w", err)
	}
	return &admin, nil
}

func (repo *AdminRepo) UpdatePassword(ctx context.Context, id, passwordHash string) (*entity.Admin, error) {
	const query = `
UPDATE admins SET
       password_hash = $1,
       updated_at    = now()
WHERE id = $2 AND deleted_at IS NULL
RETURNING id, username, password_hash, created_at, updated_at, deleted_at`
	var admin entity.Admin
	err := repo.db.QueryRowContext(ctx, query, passwordHash, id).
		Scan(&admin.ID, &admin.Username, &admin.PasswordHash,
			&admin.CreatedAt, &admin.UpdatedAt, &admin.DeletedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("UpdatePassword: %w", err)
	}
	return &admin, nil
}
