package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// Inventory holds the aggregate row counts published as gauges.
type Inventory struct {
	ActiveNews   int
	DeletedNews  int
	ActiveAdmins int
}

// StatsRepo reads aggregate counts for the periodic metrics refresher.
type StatsRepo struct {
	db *sql.DB
}

func NewStatsRepo(db *sql.DB) *StatsRepo {
	return &StatsRepo{db: db}
}

func (repo *StatsRepo) Inventory(ctx context.Context) (*Inventory, error) {
	const query = `
SELECT
	(SELECT COUNT(*) FROM news WHERE deleted_at IS NULL),
	(SELECT COUNT(*) FROM news WHERE deleted_at IS NOT NULL),
	(SELECT COUNT(*) FROM admins WHERE deleted_at IS NULL)`
	var inv Inventory
	err := repo.db.QueryRowContext(ctx, query).
		Scan(&inv.ActiveNews, &inv.DeletedNews, &inv.ActiveAdmins)
	if err != nil {
		return nil, fmt.Errorf("Inventory: %w", err)
	}
	return &inv, nil
}
